package loader

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-gota/gota/dataframe"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// ColumnState result of asking a dataset for a column
type ColumnState int

const (
	ColumnAbsent ColumnState = iota
	ColumnPresent
	ColumnPresentButEmpty
)

func (cs ColumnState) String() string {
	switch cs {
	case ColumnPresent:
		return "present"
	case ColumnPresentButEmpty:
		return "present-but-empty"
	}
	return "absent"
}

// Dataset trips of one city after applying the filters of a selection. A Dataset is never
// modified after the loader returns it, derived data is always returned as new slices
// + City: city of the trips
// + Selection: filters used to build the dataset
// + frame: trips with the derived columns Month, Day of Week and Start Hour, plus the file row of each trip
// + startTimes: parsed Start Time of each trip, in frame order
// + layouts: layouts used to parse timestamps
type Dataset struct {
	City       string
	Selection  selection.Selection
	frame      dataframe.DataFrame
	startTimes []time.Time
	layouts    []string
}

func (d *Dataset) Len() int {
	return d.frame.Nrow()
}

func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

func (d *Dataset) Columns() []string {
	columns := make([]string, 0, d.frame.Ncol())
	for _, name := range d.frame.Names() {
		if name != rowLabelColumn {
			columns = append(columns, name)
		}
	}
	return columns
}

func (d *Dataset) HasColumn(name string) bool {
	return utils.ContainsString(name, d.Columns())
}

// StartTimes returns the Start Time of each trip as parsed by the loader
func (d *Dataset) StartTimes() []time.Time {
	return append([]time.Time(nil), d.startTimes...)
}

// ColumnState tells if the column exists and, in that case, if it has at least one non-missing value
func (d *Dataset) ColumnState(name string) ColumnState {
	if !d.HasColumn(name) {
		return ColumnAbsent
	}

	for _, value := range d.frame.Col(name).Records() {
		if !trip.IsMissing(value) {
			return ColumnPresent
		}
	}
	return ColumnPresentButEmpty
}

// Values returns the raw values of the column in row order
func (d *Dataset) Values(name string) ([]string, error) {
	if !d.HasColumn(name) {
		return nil, fmt.Errorf("%w '%s'", ErrColumnNotFound, name)
	}
	return d.frame.Col(name).Records(), nil
}

// ValuesWithDefault returns the values of the column with every missing value replaced by fill
func (d *Dataset) ValuesWithDefault(name string, fill string) ([]string, error) {
	values, err := d.Values(name)
	if err != nil {
		return nil, err
	}

	filled := make([]string, len(values))
	for idx, value := range values {
		if trip.IsMissing(value) {
			filled[idx] = fill
			continue
		}
		filled[idx] = value
	}
	return filled, nil
}

// ParseTimes parses every value of the column as a timestamp. A missing or invalid value is an ErrDataFormat
func (d *Dataset) ParseTimes(name string) ([]time.Time, error) {
	values, err := d.Values(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, ErrDataFormat)
	}

	timestamps, err := parseTimestamps(values, d.layouts)
	if err != nil {
		return nil, fmt.Errorf("column '%s': %w", name, err)
	}
	return timestamps, nil
}

// Window renders up to size rows starting at offset as an aligned table with a header. Each row is labelled
// with its position in the file. It returns the amount of rows rendered, zero when offset is past the last row
func (d *Dataset) Window(offset int, size int) (string, int) {
	if offset < 0 || size <= 0 || offset >= d.Len() {
		return "", 0
	}

	end := offset + size
	if end > d.Len() {
		end = d.Len()
	}

	indexes := make([]int, 0, end-offset)
	for idx := offset; idx < end; idx++ {
		indexes = append(indexes, idx)
	}

	window := d.frame.Subset(indexes)
	rowLabels := window.Col(rowLabelColumn).Records()
	records := window.Drop(rowLabelColumn).Records()
	var builder strings.Builder
	writer := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
	for idx, record := range records {
		rowLabel := ""
		if idx > 0 {
			rowLabel = rowLabels[idx-1]
		}
		fmt.Fprintf(writer, "%s\t%s\n", rowLabel, strings.Join(record, "\t"))
	}
	_ = writer.Flush()

	return builder.String(), len(indexes)
}
