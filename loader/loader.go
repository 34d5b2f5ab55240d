package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const (
	loaderType          = "dataset-loader"
	unnamedColumnPrefix = "Unnamed: "
	// rowLabelColumn keeps the position of each trip in the file, it is not visible outside the package
	rowLabelColumn = "__row_label__"
)

// Config immutable configuration of the Loader
// + DataDir: directory that contains the trips files
// + Cities: lower case city name to trips filename
// + TimestampLayouts: layouts tried in order when parsing timestamps
type Config struct {
	DataDir          string
	Cities           map[string]string
	TimestampLayouts []string
}

// Loader reads the trips file of a city and applies the month and day filters
type Loader struct {
	config Config
}

// NewLoader returns a Loader with its own copy of cfg, changes made to cfg after this call are not visible to the Loader
func NewLoader(cfg Config) *Loader {
	cities := make(map[string]string, len(cfg.Cities))
	for city, filename := range cfg.Cities {
		cities[city] = filename
	}

	return &Loader{
		config: Config{
			DataDir:          cfg.DataDir,
			Cities:           cities,
			TimestampLayouts: append([]string(nil), cfg.TimestampLayouts...),
		},
	}
}

func (l *Loader) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[loader: %s][city: %s][method: %s][status: ERROR] %s: %s", loaderType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[loader: %s][city: %s][method: %s][status: OK] %s", loaderType, city, method, message)
}

// GetFilepath returns the path to the trips file of the city
func (l *Loader) GetFilepath(city string) (string, error) {
	filename, ok := l.config.Cities[city]
	if !ok {
		return "", fmt.Errorf("%w '%s': %w", ErrUnknownCity, city, ErrConfiguration)
	}
	return filepath.Join(l.config.DataDir, filename), nil
}

// Load reads the trips file of the selected city and returns the trips that match the selection filters
func (l *Loader) Load(citySelection selection.Selection) (*Dataset, error) {
	citySelection = citySelection.Normalize()
	tripsFilepath, err := l.GetFilepath(citySelection.City)
	if err != nil {
		log.Error(l.getLogMessage(citySelection.City, "Load", "error resolving trips file", err))
		return nil, err
	}

	tripsFile, err := os.Open(tripsFilepath)
	if err != nil {
		log.Error(l.getLogMessage(citySelection.City, "Load", "error opening trips file", err))
		return nil, fmt.Errorf("error opening %s: %w", tripsFilepath, err)
	}

	defer func(tripsFile *os.File) {
		err := tripsFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", tripsFilepath, err.Error())
		}
	}(tripsFile)

	return l.LoadReader(tripsFile, citySelection)
}

// LoadReader builds the dataset from a CSV reader. The flow of this function is:
// 1. Read every row with all the columns as strings, naming the columns without header
// 2. Check that the required columns are present
// 3. Parse Start Time and derive Month, Day of Week and Start Hour
// 4. Keep only the rows that match the month and day filters, in file order
func (l *Loader) LoadReader(reader io.Reader, citySelection selection.Selection) (*Dataset, error) {
	citySelection = citySelection.Normalize()
	records, err := gocsv.DefaultCSVReader(reader).ReadAll()
	if err != nil {
		log.Error(l.getLogMessage(citySelection.City, "LoadReader", "error reading CSV", err))
		return nil, fmt.Errorf("%s: %w", err, ErrDataFormat)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMissingHeader, ErrDataFormat)
	}

	frame := newFrame(nameUnnamedColumns(records[0]), records[1:])
	if frame.Err != nil {
		log.Error(l.getLogMessage(citySelection.City, "LoadReader", "error building trips frame", frame.Err))
		return nil, fmt.Errorf("%s: %w", frame.Err, ErrDataFormat)
	}

	for _, column := range trip.RequiredColumns {
		if !utils.ContainsString(column, frame.Names()) {
			return nil, fmt.Errorf("%w '%s': %w", ErrMissingColumn, column, ErrDataFormat)
		}
	}

	startTimes, err := parseTimestamps(frame.Col(trip.StartTime).Records(), l.config.TimestampLayouts)
	if err != nil {
		log.Error(l.getLogMessage(citySelection.City, "LoadReader", "error parsing start times", err))
		return nil, fmt.Errorf("column '%s': %w", trip.StartTime, err)
	}

	frame, err = addDerivedColumns(frame, startTimes)
	if err != nil {
		return nil, err
	}
	rowsRead := frame.Nrow()

	if !citySelection.IsAllMonths() && frame.Nrow() > 0 {
		frame = frame.Filter(dataframe.F{Colname: trip.Month, Comparator: series.Eq, Comparando: utils.TitleCase(citySelection.Month)})
	}

	if !citySelection.IsAllDays() && frame.Nrow() > 0 {
		frame = frame.Filter(dataframe.F{Colname: trip.DayOfWeek, Comparator: series.Eq, Comparando: utils.TitleCase(citySelection.Day)})
	}

	if frame.Err != nil {
		log.Error(l.getLogMessage(citySelection.City, "LoadReader", "error filtering trips", frame.Err))
		return nil, frame.Err
	}

	rowLabels, err := frame.Col(rowLabelColumn).Int()
	if err != nil {
		return nil, fmt.Errorf("error reading row labels: %w", err)
	}

	keptStartTimes := make([]time.Time, len(rowLabels))
	for idx, rowLabel := range rowLabels {
		keptStartTimes[idx] = startTimes[rowLabel]
	}

	log.Debug(l.getLogMessage(citySelection.City, "LoadReader", fmt.Sprintf("%v rows read, %v rows kept for %s", rowsRead, frame.Nrow(), citySelection), nil))

	return &Dataset{
		City:       citySelection.City,
		Selection:  citySelection,
		frame:      frame,
		startTimes: keptStartTimes,
		layouts:    l.config.TimestampLayouts,
	}, nil
}

// nameUnnamedColumns names every column with an empty header "Unnamed: <position>"
func nameUnnamedColumns(header []string) []string {
	named := make([]string, len(header))
	for idx, name := range header {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("%s%d", unnamedColumnPrefix, idx)
		}
		named[idx] = name
	}
	return named
}

// newFrame returns a frame of string columns. A file with only the header is a frame without rows
func newFrame(header []string, rows [][]string) dataframe.DataFrame {
	if len(rows) == 0 {
		columns := make([]series.Series, len(header))
		for idx, name := range header {
			columns[idx] = series.New([]string{}, series.String, name)
		}
		return dataframe.New(columns...)
	}

	records := append([][]string{header}, rows...)
	return dataframe.LoadRecords(records, dataframe.DetectTypes(false), dataframe.HasHeader(true))
}

// addDerivedColumns returns a new frame with the file row, Month, Day of Week and Start Hour of each trip
func addDerivedColumns(frame dataframe.DataFrame, startTimes []time.Time) (dataframe.DataFrame, error) {
	rowLabels := make([]int, len(startTimes))
	months := make([]string, len(startTimes))
	days := make([]string, len(startTimes))
	hours := make([]int, len(startTimes))
	for idx, startTime := range startTimes {
		rowLabels[idx] = idx
		months[idx] = startTime.Month().String()
		days[idx] = startTime.Weekday().String()
		hours[idx] = startTime.Hour()
	}

	frame = frame.
		Mutate(series.New(rowLabels, series.Int, rowLabelColumn)).
		Mutate(series.New(months, series.String, trip.Month)).
		Mutate(series.New(days, series.String, trip.DayOfWeek)).
		Mutate(series.New(hours, series.Int, trip.StartHour))
	if frame.Err != nil {
		return frame, fmt.Errorf("error adding derived columns: %w", frame.Err)
	}
	return frame, nil
}
