package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/selection"
	"bikeshare/loader"
	"bikeshare/statistics/factory"
	"bikeshare/testutil"
)

var (
	testMonths = []string{"january", "february", "march", "april", "may", "june"}
	testDays   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

func newTestDriver(t *testing.T, input string, exportPath string) (*Driver, *bytes.Buffer) {
	t.Helper()
	output := &bytes.Buffer{}
	driverConfig := Config{
		Cities:           []string{"chicago", "new york city", "washington"},
		Months:           testMonths,
		Days:             testDays,
		RawRowsWindow:    5,
		ReportExportPath: exportPath,
	}
	tripsLoader := loader.NewLoader(testutil.WriteCityFiles(t))
	return NewDriver(driverConfig, tripsLoader, factory.NewCalculators(), strings.NewReader(input), output), output
}

func TestRunFullSession(t *testing.T) {
	input := strings.Join([]string{
		"boston",
		"Chicago",
		"july",
		"all",
		"ALL",
		"maybe",
		"yes",
		"yes",
		"yes",
		"no",
	}, "\n") + "\n"
	driver, output := newTestDriver(t, input, "")

	require.NoError(t, driver.Run())

	text := output.String()
	assert.Contains(t, text, "Hello! Let's explore some US bikeshare data!")
	assert.Contains(t, text, "Would you like to see data for Chicago, New York City or Washington?")
	assert.Contains(t, text, "Would you like to see data for January, February, March, April, May, June, or for all months?")
	assert.Equal(t, 3, strings.Count(text, "Invalid input. Please try again."))
	assert.Contains(t, text, "The most common month was:\nJune\n")
	assert.Contains(t, text, "The most frequent trip was:\nWood St to Damen Ave\n")
	assert.Contains(t, text, "Total travel time was:\n0 day(s), 2 hour(s), 5 minute(s) and 8 second(s)\n")
	assert.Contains(t, text, "Subscriber: 6\nCustomer: 1\nUnknown: 1\n")
	assert.Contains(t, text, "Theater on the Lake")
	assert.Contains(t, text, "There is no more raw data to display.")
	assert.Contains(t, text, "Thanks for your time and have a nice day! :)")
}

func TestRunRestartsWithNewFilters(t *testing.T) {
	input := "washington\nall\nall\nno\nyes\nchicago\nfebruary\nall\nno\n"
	driver, output := newTestDriver(t, input, "")

	require.NoError(t, driver.Run())

	text := output.String()
	assert.Contains(t, text, "There is no data for gender.")
	assert.Contains(t, text, "no trips match the selected filters")
	assert.Contains(t, text, "Thanks for your time and have a nice day! :)")
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	driver, output := newTestDriver(t, "chicago\n", "")

	require.NoError(t, driver.Run())
	assert.NotContains(t, output.String(), "Thanks for your time")
}

func TestRunPassShowsNothingOnFailure(t *testing.T) {
	driver, output := newTestDriver(t, "", "")

	_, err := driver.RunPass(selection.NewSelection("chicago", "april", "all"))
	assert.Error(t, err)
	assert.Empty(t, output.String())
}

func TestRunOnce(t *testing.T) {
	tests := []struct {
		name          string
		selection     selection.Selection
		expectedError error
	}{
		{name: "valid selection", selection: selection.NewSelection("New York City", "January", "Monday")},
		{name: "unknown city", selection: selection.NewSelection("boston", "all", "all"), expectedError: ErrInvalidSelection},
		{name: "month out of range", selection: selection.NewSelection("chicago", "july", "all"), expectedError: ErrInvalidSelection},
		{name: "unknown day", selection: selection.NewSelection("chicago", "all", "someday"), expectedError: ErrInvalidSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, output := newTestDriver(t, "", "")

			err := driver.RunOnce(tt.selection)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, output.String(), "The most common day of the week was:\nMonday\n")
		})
	}
}

func TestRunPassExportsReports(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "report.csv")
	driver, _ := newTestDriver(t, "", exportPath)

	require.NoError(t, driver.RunOnce(selection.NewSelection("washington", "all", "all")))
	require.NoError(t, driver.RunOnce(selection.NewSelection("chicago", "june", "all")))

	content, err := os.ReadFile(exportPath)
	require.NoError(t, err)

	text := string(content)
	assert.Equal(t, 1, strings.Count(text, "city,month,day,report,metric,value,elapsed_seconds"))
	assert.Contains(t, text, "washington,all,all,user-stats,gender,There is no data for gender.,")
	assert.Contains(t, text, "chicago,june,all,time-stats,most_common_month,June,")
}

func TestEnumerate(t *testing.T) {
	assert.Equal(t, "Chicago, New York City or Washington", enumerate([]string{"chicago", "new york city", "washington"}, " or "))
	assert.Equal(t, "Chicago", enumerate([]string{"chicago"}, " or "))
	assert.Equal(t, "", enumerate(nil, " or "))
}
