package factory

import (
	"fmt"

	"bikeshare/loader"
	"bikeshare/statistics/factory/calculator_type/durationstats"
	"bikeshare/statistics/factory/calculator_type/stationstats"
	"bikeshare/statistics/factory/calculator_type/timestats"
	"bikeshare/statistics/factory/calculator_type/userstats"
	"bikeshare/statistics/report"
)

const (
	timeStatsType     = "time-stats"
	stationStatsType  = "station-stats"
	durationStatsType = "duration-stats"
	userStatsType     = "user-stats"
)

// calculatorsOrder order in which the statistics are shown to the user
var calculatorsOrder = []string{timeStatsType, stationStatsType, durationStatsType, userStatsType}

type Calculator interface {
	GetType() string
	Calculate(dataset *loader.Dataset) (*report.Report, error)
}

// NewCalculator initialize a calculator of some type.
// Possible calculator types are: time-stats, station-stats, duration-stats, user-stats
func NewCalculator(calculatorType string) (Calculator, error) {
	switch calculatorType {
	case timeStatsType:
		return timestats.NewTimeStats(), nil
	case stationStatsType:
		return stationstats.NewStationStats(), nil
	case durationStatsType:
		return durationstats.NewDurationStats(), nil
	case userStatsType:
		return userstats.NewUserStats(), nil
	}

	return nil, fmt.Errorf("[method: NewCalculator][status: error] Invalid calculator type %s", calculatorType)
}

// NewCalculators returns every calculator in the order the statistics are shown
func NewCalculators() []Calculator {
	calculators := make([]Calculator, 0, len(calculatorsOrder))
	for _, calculatorType := range calculatorsOrder {
		calculator, err := NewCalculator(calculatorType)
		if err != nil {
			panic(err)
		}
		calculators = append(calculators, calculator)
	}
	return calculators
}
