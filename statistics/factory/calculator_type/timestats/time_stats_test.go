package timestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/statistics/factory/calculator_type/errors"
	"bikeshare/testutil"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		month         string
		day           string
		expectedMonth string
		expectedDay   string
		expectedHour  string
	}{
		{name: "all trips", month: "all", day: "all", expectedMonth: "June", expectedDay: "Thursday", expectedHour: "18:00"},
		{name: "single month", month: "march", day: "all", expectedMonth: "March", expectedDay: "Monday", expectedHour: "8:00"},
		{name: "single month and day", month: "june", day: "friday", expectedMonth: "June", expectedDay: "Friday", expectedHour: "15:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset := testutil.LoadDataset(t, testutil.ChicagoTrips, "chicago", tt.month, tt.day)

			timeReport, err := NewTimeStats().Calculate(dataset)
			require.NoError(t, err)

			month, _ := timeReport.GetSection("most_common_month")
			day, _ := timeReport.GetSection("most_common_day_of_week")
			hour, _ := timeReport.GetSection("most_common_start_hour")
			assert.Equal(t, []string{tt.expectedMonth}, month.Lines)
			assert.Equal(t, []string{tt.expectedDay}, day.Lines)
			assert.Equal(t, []string{tt.expectedHour}, hour.Lines)
		})
	}
}

func TestCalculateEmptyDataset(t *testing.T) {
	dataset := testutil.LoadDataset(t, testutil.ChicagoTrips, "chicago", "february", "all")

	_, err := NewTimeStats().Calculate(dataset)
	assert.ErrorIs(t, err, dataErrors.ErrEmptyDataset)
}
