package userstats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/business/yearaccumulator"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
	dataErrors "bikeshare/statistics/factory/calculator_type/errors"
	"bikeshare/statistics/factory/calculator_type/shared"
	"bikeshare/statistics/report"
)

const (
	userStatsType = "user-stats"
	title         = "Calculating User Stats..."
)

// UserStats calculates statistics about the users. Not every city has user type, gender and birth year,
// a column that is not in the file is reported with a note instead of an error
type UserStats struct{}

func NewUserStats() *UserStats {
	return &UserStats{}
}

func (us *UserStats) GetType() string {
	return userStatsType
}

func (us *UserStats) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[calculator: %s][city: %s][method: %s][status: ERROR] %s: %s", userStatsType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[calculator: %s][city: %s][method: %s][status: OK] %s", userStatsType, city, method, message)
}

// Calculate returns the counts of user types and genders and the earliest, most recent and most common birth year
func (us *UserStats) Calculate(dataset *loader.Dataset) (*report.Report, error) {
	startTime := time.Now()
	if err := shared.CheckDataset(userStatsType, dataset); err != nil {
		return nil, err
	}

	userReport := report.NewReport(userStatsType, title)

	err := us.addCategoryCounts(userReport, dataset, trip.UserType, "user_type", "user type", "user types")
	if err != nil {
		return nil, err
	}

	err = us.addCategoryCounts(userReport, dataset, trip.Gender, "gender", "gender", "gender")
	if err != nil {
		return nil, err
	}

	err = us.addBirthYears(userReport, dataset)
	if err != nil {
		log.Error(us.getLogMessage(dataset.City, "Calculate", "error getting birth years", err))
		return nil, err
	}

	userReport.Elapsed = time.Since(startTime)
	return userReport, nil
}

// addCategoryCounts adds the count of each value of the column, most frequent first. Missing values are counted as Unknown
func (us *UserStats) addCategoryCounts(userReport *report.Report, dataset *loader.Dataset, column string, metric string, singular string, plural string) error {
	columnState := dataset.ColumnState(column)
	if columnState == loader.ColumnAbsent {
		log.Debug(us.getLogMessage(dataset.City, "addCategoryCounts", fmt.Sprintf("column %s is %s", column, columnState), nil))
		userReport.AddNote(metric, fmt.Sprintf("There is no data for %s.", singular))
		return nil
	}

	values, err := dataset.ValuesWithDefault(column, trip.UnknownCategory)
	if err != nil {
		return err
	}

	counter := valuecounter.NewValueCounter(column)
	counter.UpdateCounters(values)

	var lines []string
	for _, valueCount := range counter.Counts() {
		lines = append(lines, fmt.Sprintf("%s: %v", valueCount.Value, valueCount.Count))
	}
	userReport.AddAnswer(metric, fmt.Sprintf("Displaying counts of %s:", plural), lines...)
	return nil
}

// addBirthYears adds the earliest, most recent and most common year of birth. Missing values are ignored
func (us *UserStats) addBirthYears(userReport *report.Report, dataset *loader.Dataset) error {
	columnState := dataset.ColumnState(trip.BirthYear)
	switch columnState {
	case loader.ColumnAbsent:
		userReport.AddNote("birth_year", "There is no data for birth year.")
		return nil
	case loader.ColumnPresentButEmpty:
		userReport.AddNote("birth_year", "There is no birth year data for the selected trips.")
		return nil
	}

	values, err := dataset.Values(trip.BirthYear)
	if err != nil {
		return err
	}

	accumulator := yearaccumulator.NewYearAccumulator(trip.BirthYear)
	for _, value := range values {
		if trip.IsMissing(value) {
			continue
		}

		year, err := parseYear(value)
		if err != nil {
			return err
		}
		accumulator.UpdateAccumulator(year)
	}

	earliest, err := accumulator.GetEarliest()
	if err != nil {
		return err
	}
	mostRecent, err := accumulator.GetMostRecent()
	if err != nil {
		return err
	}
	mostCommon, err := accumulator.GetMostCommon()
	if err != nil {
		return err
	}

	userReport.AddAnswer("earliest_birth_year", "The earliest year of birth was:", fmt.Sprintf("%v.", earliest))
	userReport.AddAnswer("most_recent_birth_year", "The most recent year of birth was:", fmt.Sprintf("%v.", mostRecent))
	userReport.AddAnswer("most_common_birth_year", "The most common year of birth was:", fmt.Sprintf("%v.", mostCommon))
	return nil
}

// parseYear accepts integer and float years, e.g: 1992 and 1992.0
func parseYear(value string) (int, error) {
	year, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w '%s': %w", dataErrors.ErrInvalidBirthYear, value, loader.ErrDataFormat)
	}
	return int(year), nil
}
