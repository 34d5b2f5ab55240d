package stationstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/statistics/factory/calculator_type/errors"
	"bikeshare/testutil"
)

func TestCalculate(t *testing.T) {
	dataset := testutil.LoadDataset(t, testutil.ChicagoTrips, "chicago", "all", "all")

	stationReport, err := NewStationStats().Calculate(dataset)
	require.NoError(t, err)

	startStation, _ := stationReport.GetSection("most_common_start_station")
	endStation, _ := stationReport.GetSection("most_common_end_station")
	mostFrequentTrip, _ := stationReport.GetSection("most_frequent_trip")
	assert.Equal(t, []string{"Wood St"}, startStation.Lines)
	assert.Equal(t, []string{"Damen Ave"}, endStation.Lines)
	assert.Equal(t, []string{"Wood St to Damen Ave"}, mostFrequentTrip.Lines)
}

func TestMostFrequentTripIsTheModeOfThePairString(t *testing.T) {
	content := `Start Time,End Time,Start Station,End Station
2017-01-02 07:00:00,2017-01-02 07:20:00,A,B
2017-01-02 08:00:00,2017-01-02 08:20:00,A,C
2017-01-02 09:00:00,2017-01-02 09:20:00,D,C
2017-01-02 10:00:00,2017-01-02 10:20:00,A,C
2017-01-02 11:00:00,2017-01-02 11:20:00,,C
`
	dataset := testutil.LoadDataset(t, content, "chicago", "all", "all")

	stationReport, err := NewStationStats().Calculate(dataset)
	require.NoError(t, err)

	endStation, _ := stationReport.GetSection("most_common_end_station")
	mostFrequentTrip, _ := stationReport.GetSection("most_frequent_trip")
	assert.Equal(t, []string{"C"}, endStation.Lines)
	assert.Equal(t, []string{"A to C"}, mostFrequentTrip.Lines)
}

func TestCalculateEmptyDataset(t *testing.T) {
	dataset := testutil.LoadDataset(t, testutil.WashingtonTrips, "washington", "june", "all")

	_, err := NewStationStats().Calculate(dataset)
	assert.ErrorIs(t, err, dataErrors.ErrEmptyDataset)
}
