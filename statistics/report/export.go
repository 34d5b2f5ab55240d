package report

import (
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"bikeshare/domain/entities/selection"
)

// Row one line of an exported report
type Row struct {
	City    string `csv:"city"`
	Month   string `csv:"month"`
	Day     string `csv:"day"`
	Report  string `csv:"report"`
	Metric  string `csv:"metric"`
	Value   string `csv:"value"`
	Elapsed string `csv:"elapsed_seconds"`
}

// GetRows flattens the reports of a pass, one row per answer line
func GetRows(citySelection selection.Selection, reports []*Report) []*Row {
	var rows []*Row
	for _, r := range reports {
		elapsed := strconv.FormatFloat(r.Elapsed.Seconds(), 'f', -1, 64)
		for _, section := range r.Sections {
			for _, line := range section.Lines {
				rows = append(rows, &Row{
					City:    citySelection.City,
					Month:   citySelection.Month,
					Day:     citySelection.Day,
					Report:  r.Type,
					Metric:  section.Metric,
					Value:   line,
					Elapsed: elapsed,
				})
			}
		}
	}
	return rows
}

// ExportCSV writes the rows of the reports as CSV. The header is written only when withHeader is true,
// which lets callers append several passes to the same file
func ExportCSV(writer io.Writer, citySelection selection.Selection, reports []*Report, withHeader bool) error {
	rows := GetRows(citySelection, reports)
	if withHeader {
		return gocsv.Marshal(rows, writer)
	}
	return gocsv.MarshalWithoutHeaders(rows, writer)
}
