package yearaccumulator

import (
	"errors"
	"strconv"

	"bikeshare/domain/business/valuecounter"
)

var ErrNoYears = errors.New("year accumulator has no years")

// YearAccumulator struct that collects birth years
// + Earliest: smallest year seen
// + MostRecent: biggest year seen
// + years: counter used to get the most common year
type YearAccumulator struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	years      *valuecounter.ValueCounter
}

func NewYearAccumulator(name string) *YearAccumulator {
	return &YearAccumulator{
		years: valuecounter.NewValueCounterWithOrder(name, valuecounter.NumericLess),
	}
}

func (ya *YearAccumulator) UpdateAccumulator(year int) {
	if ya.years.IsEmpty() || year < ya.Earliest {
		ya.Earliest = year
	}
	if ya.years.IsEmpty() || year > ya.MostRecent {
		ya.MostRecent = year
	}
	ya.years.UpdateCounter(strconv.Itoa(year))
}

func (ya *YearAccumulator) GetCounter() int {
	return ya.years.Total()
}

func (ya *YearAccumulator) GetEarliest() (int, error) {
	if ya.years.IsEmpty() {
		return 0, ErrNoYears
	}
	return ya.Earliest, nil
}

func (ya *YearAccumulator) GetMostRecent() (int, error) {
	if ya.years.IsEmpty() {
		return 0, ErrNoYears
	}
	return ya.MostRecent, nil
}

// GetMostCommon returns the most frequent year, the smallest one wins a tie
func (ya *YearAccumulator) GetMostCommon() (int, error) {
	mode, err := ya.years.Mode()
	if err != nil {
		return 0, ErrNoYears
	}
	return strconv.Atoi(mode.Value)
}
