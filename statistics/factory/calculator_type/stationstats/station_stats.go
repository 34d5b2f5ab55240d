package stationstats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
	"bikeshare/statistics/factory/calculator_type/shared"
	"bikeshare/statistics/report"
)

const (
	stationStatsType = "station-stats"
	title            = "Calculating The Most Popular Stations and Trip..."
)

// StationStats calculates the most popular stations and trip
type StationStats struct{}

func NewStationStats() *StationStats {
	return &StationStats{}
}

func (ss *StationStats) GetType() string {
	return stationStatsType
}

func (ss *StationStats) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[calculator: %s][city: %s][method: %s][status: ERROR] %s: %s", stationStatsType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[calculator: %s][city: %s][method: %s][status: OK] %s", stationStatsType, city, method, message)
}

// Calculate returns the most commonly used start station, end station and trip. The trip of each row is
// the string "{Start Station} to {End Station}" and the most frequent string wins
func (ss *StationStats) Calculate(dataset *loader.Dataset) (*report.Report, error) {
	startTime := time.Now()
	if err := shared.CheckDataset(stationStatsType, dataset); err != nil {
		return nil, err
	}

	startStation, err := shared.MostCommon(dataset, trip.StartStation, nil)
	if err != nil {
		log.Error(ss.getLogMessage(dataset.City, "Calculate", "error getting most common start station", err))
		return nil, err
	}

	endStation, err := shared.MostCommon(dataset, trip.EndStation, nil)
	if err != nil {
		log.Error(ss.getLogMessage(dataset.City, "Calculate", "error getting most common end station", err))
		return nil, err
	}

	trips, err := getTrips(dataset)
	if err != nil {
		return nil, err
	}

	mostFrequentTrip, err := shared.MostCommonValue("Trip", trips, nil)
	if err != nil {
		log.Error(ss.getLogMessage(dataset.City, "Calculate", "error getting most frequent trip", err))
		return nil, err
	}

	stationReport := report.NewReport(stationStatsType, title)
	stationReport.AddAnswer("most_common_start_station", "The most commonly used start station was:", startStation.Value)
	stationReport.AddAnswer("most_common_end_station", "The most commonly used end station was:", endStation.Value)
	stationReport.AddAnswer("most_frequent_trip", "The most frequent trip was:", mostFrequentTrip.Value)
	stationReport.Elapsed = time.Since(startTime)

	log.Debug(ss.getLogMessage(dataset.City, "Calculate", fmt.Sprintf("most frequent trip %s with %v trips", mostFrequentTrip.Value, mostFrequentTrip.Count), nil))
	return stationReport, nil
}

// getTrips returns the trip name of each row. Rows without start or end station get a missing value
func getTrips(dataset *loader.Dataset) ([]string, error) {
	startStations, err := dataset.Values(trip.StartStation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, loader.ErrDataFormat)
	}

	endStations, err := dataset.Values(trip.EndStation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, loader.ErrDataFormat)
	}

	trips := make([]string, len(startStations))
	for idx := range startStations {
		if trip.IsMissing(startStations[idx]) || trip.IsMissing(endStations[idx]) {
			continue
		}
		trips[idx] = trip.PairName(startStations[idx], endStations[idx])
	}
	return trips, nil
}
