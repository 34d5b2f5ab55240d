package durationstats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
	"bikeshare/statistics/factory/calculator_type/shared"
	"bikeshare/statistics/report"
)

const (
	durationStatsType = "duration-stats"
	title             = "Calculating Trip Duration..."
)

// DurationStats calculates the total and mean travel time. The travel time of a trip is End Time - Start Time
type DurationStats struct{}

func NewDurationStats() *DurationStats {
	return &DurationStats{}
}

func (ds *DurationStats) GetType() string {
	return durationStatsType
}

func (ds *DurationStats) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[calculator: %s][city: %s][method: %s][status: ERROR] %s: %s", durationStatsType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[calculator: %s][city: %s][method: %s][status: OK] %s", durationStatsType, city, method, message)
}

// Calculate returns the total and mean travel time of the dataset. Any End Time that cannot be parsed
// fails the whole calculation
func (ds *DurationStats) Calculate(dataset *loader.Dataset) (*report.Report, error) {
	startTime := time.Now()
	if err := shared.CheckDataset(durationStatsType, dataset); err != nil {
		return nil, err
	}

	accumulator, err := ds.accumulateTravelTimes(dataset)
	if err != nil {
		log.Error(ds.getLogMessage(dataset.City, "Calculate", "error getting travel times", err))
		return nil, err
	}

	meanTravelTime, err := accumulator.GetAverageDuration()
	if err != nil {
		return nil, err
	}

	durationReport := report.NewReport(durationStatsType, title)
	durationReport.AddAnswer("total_travel_time", "Total travel time was:", durationaccumulator.Decompose(accumulator.GetTotalDuration()).String())
	durationReport.AddAnswer("mean_travel_time", "Mean travel time was:", durationaccumulator.Decompose(meanTravelTime).String())
	durationReport.Elapsed = time.Since(startTime)

	log.Debug(ds.getLogMessage(dataset.City, "Calculate", fmt.Sprintf("%v trips, total: %v, mean: %v", accumulator.Counter, accumulator.GetTotalDuration(), meanTravelTime), nil))
	return durationReport, nil
}

func (ds *DurationStats) accumulateTravelTimes(dataset *loader.Dataset) (*durationaccumulator.DurationAccumulator, error) {
	startTimes := dataset.StartTimes()
	endTimes, err := dataset.ParseTimes(trip.EndTime)
	if err != nil {
		return nil, err
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for idx := range startTimes {
		accumulator.UpdateAccumulator(endTimes[idx].Sub(startTimes[idx]))
	}
	return accumulator, nil
}
