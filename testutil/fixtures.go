package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/selection"
	"bikeshare/loader"
)

// ChicagoTrips has every column. Expected statistics over all rows:
// month June, day Thursday, hour 18, start Wood St, end Damen Ave,
// total 7508s, mean 938.5s, birth years 1975..2001 with 1992 as the most common
const ChicagoTrips = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St,Damen Ave,Subscriber,Male,1992.0
2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave,Subscriber,Female,1992.0
2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St,Wood St,Subscriber,Male,1981.0
2017-03-06 13:49:38,2017-03-06 13:55:28,350,Wood St,Damen Ave,Subscriber,,
2017-05-11 18:45:14,2017-05-11 18:50:25,311,Wood St,Damen Ave,Customer,,
2017-03-16 08:00:00,2017-03-16 09:00:00,3600,Damen Ave,Wood St,,Female,1975.0
2017-06-26 18:05:00,2017-06-26 18:10:00,300,May St,Wood St,Subscriber,Male,2001.0
2017-06-23 18:30:00,2017-06-23 18:40:00,600,Wood St,Damen Ave,Subscriber,Male,1992.0
`

// WashingtonTrips has no Gender and no Birth Year columns
const WashingtonTrips = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-01-01 00:00:00,2017-01-01 00:15:00,900.0,Lincoln Memorial,Jefferson Memorial,Customer
2017-02-14 09:00:00,2017-02-14 09:10:00,600.0,Union Station,Lincoln Memorial,Subscriber
2017-03-20 17:30:00,2017-03-20 17:45:30,930.0,Lincoln Memorial,Jefferson Memorial,Subscriber
`

// NewYorkCityTrips has a Gender column without values and a Birth Year column without values
const NewYorkCityTrips = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
2017-01-02 07:00:00,2017-01-02 07:20:00,1200,W 21 St & 6 Ave,E 17 St & Broadway,Subscriber,,
2017-01-02 07:30:00,2017-01-02 07:35:00,300,E 17 St & Broadway,W 21 St & 6 Ave,,,
`

// TimestampLayouts used by the fixtures loaders
var TimestampLayouts = []string{"2006-01-02 15:04:05", "2006-01-02 15:04"}

// WriteCityFiles writes the fixtures in a temporary directory and returns a loader config pointing to them
func WriteCityFiles(t *testing.T) loader.Config {
	t.Helper()
	dataDir := t.TempDir()
	files := map[string]string{
		"chicago.csv":       ChicagoTrips,
		"new_york_city.csv": NewYorkCityTrips,
		"washington.csv":    WashingtonTrips,
	}
	for filename, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, filename), []byte(content), 0o644))
	}

	return loader.Config{
		DataDir: dataDir,
		Cities: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
		TimestampLayouts: TimestampLayouts,
	}
}

// LoadDataset loads csvContent as the trips of city with the given filters
func LoadDataset(t *testing.T, csvContent string, city string, month string, day string) *loader.Dataset {
	t.Helper()
	tripsLoader := loader.NewLoader(loader.Config{TimestampLayouts: TimestampLayouts})
	dataset, err := tripsLoader.LoadReader(strings.NewReader(csvContent), selection.NewSelection(city, month, day))
	require.NoError(t, err)
	return dataset
}
