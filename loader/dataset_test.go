package loader_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
	"bikeshare/testutil"
)

func TestColumnState(t *testing.T) {
	chicago := testutil.LoadDataset(t, testutil.ChicagoTrips, "chicago", "all", "all")
	washington := testutil.LoadDataset(t, testutil.WashingtonTrips, "washington", "all", "all")
	newYork := testutil.LoadDataset(t, testutil.NewYorkCityTrips, "new york city", "all", "all")

	assert.Equal(t, loader.ColumnPresent, chicago.ColumnState(trip.Gender))
	assert.Equal(t, loader.ColumnAbsent, washington.ColumnState(trip.Gender))
	assert.Equal(t, loader.ColumnPresentButEmpty, newYork.ColumnState(trip.Gender))
	assert.Equal(t, loader.ColumnPresent, newYork.ColumnState(trip.UserType))
	assert.Equal(t, "present-but-empty", loader.ColumnPresentButEmpty.String())
	assert.Equal(t, "absent", loader.ColumnAbsent.String())
}

func TestValuesWithDefaultDoesNotChangeDataset(t *testing.T) {
	dataset := testutil.LoadDataset(t, testutil.ChicagoTrips, "chicago", "march", "all")

	filled, err := dataset.ValuesWithDefault(trip.Gender, trip.UnknownCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{trip.UnknownCategory, "Female"}, filled)

	raw, err := dataset.Values(trip.Gender)
	require.NoError(t, err)
	assert.True(t, trip.IsMissing(raw[0]))

	_, err = dataset.ValuesWithDefault(trip.BirthYear+"s", trip.UnknownCategory)
	assert.ErrorIs(t, err, loader.ErrColumnNotFound)
}

func TestParseTimes(t *testing.T) {
	dataset := testutil.LoadDataset(t, testutil.WashingtonTrips, "washington", "all", "all")

	endTimes, err := dataset.ParseTimes(trip.EndTime)
	require.NoError(t, err)
	require.Len(t, endTimes, 3)
	assert.Equal(t, time.Date(2017, time.March, 20, 17, 45, 30, 0, time.UTC), endTimes[2])

	_, err = dataset.ParseTimes(trip.BirthYear)
	assert.ErrorIs(t, err, loader.ErrDataFormat)
}

func TestParseTimesInvalidEndTime(t *testing.T) {
	content := "Start Time,End Time,Start Station,End Station\n2017-01-01 00:00:00,soon,A,B\n"
	dataset := testutil.LoadDataset(t, content, "chicago", "all", "all")

	_, err := dataset.ParseTimes(trip.EndTime)
	assert.ErrorIs(t, err, loader.ErrDataFormat)
	assert.ErrorIs(t, err, loader.ErrInvalidTimestamp)
}

func TestWindow(t *testing.T) {
	dataset := testutil.LoadDataset(t, testutil.ChicagoTrips, "chicago", "all", "all")

	rendered, rows := dataset.Window(0, 5)
	assert.Equal(t, 5, rows)
	assert.Contains(t, rendered, "Theater on the Lake")

	rendered, rows = dataset.Window(5, 5)
	assert.Equal(t, 3, rows)
	assert.Contains(t, rendered, "2017-06-26 18:05:00")

	rendered, rows = dataset.Window(10, 5)
	assert.Equal(t, 0, rows)
	assert.Empty(t, rendered)
}

func TestValuesErrors(t *testing.T) {
	dataset := testutil.LoadDataset(t, testutil.WashingtonTrips, "washington", "all", "all")

	_, err := dataset.Values(trip.Gender)
	assert.ErrorIs(t, err, loader.ErrColumnNotFound)

	_, err = dataset.ParseTimes(trip.Gender)
	assert.ErrorIs(t, err, loader.ErrColumnNotFound)
	assert.ErrorIs(t, err, loader.ErrDataFormat)
}

func TestWindowLabelsRowsWithFilePosition(t *testing.T) {
	dataset := testutil.LoadDataset(t, testutil.ChicagoTrips, "chicago", "march", "all")

	rendered, rows := dataset.Window(0, 5)
	assert.Equal(t, 2, rows)
	assert.Contains(t, rendered, "3  2017-03-06 13:49:38")
	assert.Contains(t, rendered, "5  2017-03-16 08:00:00")
	assert.NotContains(t, rendered, "0  2017-03-06 13:49:38")
	assert.NotContains(t, rendered, "row_label")
}

func TestUnnamedColumns(t *testing.T) {
	content := ",Start Time,End Time,Start Station,End Station\n1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,A,B\n"
	dataset := testutil.LoadDataset(t, content, "chicago", "all", "all")

	assert.Contains(t, dataset.Columns(), "Unnamed: 0")
	assert.False(t, dataset.HasColumn("X0"))

	values, err := dataset.Values("Unnamed: 0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1423854"}, values)

	rendered, rows := dataset.Window(0, 5)
	assert.Equal(t, 1, rows)
	assert.Contains(t, rendered, "Unnamed: 0")
	assert.NotContains(t, rendered, "X0")
}

func TestStartTimesFollowFilters(t *testing.T) {
	dataset := testutil.LoadDataset(t, testutil.ChicagoTrips, "chicago", "march", "all")

	startTimes := dataset.StartTimes()
	assert.Equal(t, []time.Time{
		time.Date(2017, time.March, 6, 13, 49, 38, 0, time.UTC),
		time.Date(2017, time.March, 16, 8, 0, 0, 0, time.UTC),
	}, startTimes)

	startTimes[0] = time.Time{}
	assert.Equal(t, time.Date(2017, time.March, 6, 13, 49, 38, 0, time.UTC), dataset.StartTimes()[0])
	assert.NotContains(t, dataset.Columns(), "__row_label__")
}
