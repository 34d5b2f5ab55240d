package timestats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
	"bikeshare/statistics/factory/calculator_type/shared"
	"bikeshare/statistics/report"
)

const (
	timeStatsType = "time-stats"
	title         = "Calculating The Most Frequent Times of Travel..."
)

// TimeStats calculates the most frequent times of travel
type TimeStats struct{}

func NewTimeStats() *TimeStats {
	return &TimeStats{}
}

func (ts *TimeStats) GetType() string {
	return timeStatsType
}

func (ts *TimeStats) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[calculator: %s][city: %s][method: %s][status: ERROR] %s: %s", timeStatsType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[calculator: %s][city: %s][method: %s][status: OK] %s", timeStatsType, city, method, message)
}

// Calculate returns the most common month, day of week and start hour of the dataset
func (ts *TimeStats) Calculate(dataset *loader.Dataset) (*report.Report, error) {
	startTime := time.Now()
	if err := shared.CheckDataset(timeStatsType, dataset); err != nil {
		return nil, err
	}

	month, err := shared.MostCommon(dataset, trip.Month, nil)
	if err != nil {
		log.Error(ts.getLogMessage(dataset.City, "Calculate", "error getting most common month", err))
		return nil, err
	}

	day, err := shared.MostCommon(dataset, trip.DayOfWeek, nil)
	if err != nil {
		log.Error(ts.getLogMessage(dataset.City, "Calculate", "error getting most common day of week", err))
		return nil, err
	}

	hour, err := shared.MostCommon(dataset, trip.StartHour, valuecounter.NumericLess)
	if err != nil {
		log.Error(ts.getLogMessage(dataset.City, "Calculate", "error getting most common start hour", err))
		return nil, err
	}

	timeReport := report.NewReport(timeStatsType, title)
	timeReport.AddAnswer("most_common_month", "The most common month was:", month.Value)
	timeReport.AddAnswer("most_common_day_of_week", "The most common day of the week was:", day.Value)
	timeReport.AddAnswer("most_common_start_hour", "The most common start hour was:", hour.Value+":00")
	timeReport.Elapsed = time.Since(startTime)

	log.Debug(ts.getLogMessage(dataset.City, "Calculate", fmt.Sprintf("month: %s (%v trips), day: %s (%v trips), hour: %s (%v trips)", month.Value, month.Count, day.Value, day.Count, hour.Value, hour.Count), nil))
	return timeReport, nil
}
