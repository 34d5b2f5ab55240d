package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const ruleWidth = 40

// Section one answer of a report
// + Metric: short identifier of the answer, used when exporting
// + Heading: sentence printed before the answer. Sections without Heading are notes
// + Lines: lines of the answer
type Section struct {
	Metric  string
	Heading string
	Lines   []string
}

// Report result of a statistics calculator
// + Type: type of the calculator that built the report
// + Title: sentence printed when the report starts
// + Sections: answers in the order they are printed
// + Elapsed: time spent building the report
type Report struct {
	Type     string
	Title    string
	Sections []Section
	Elapsed  time.Duration
}

func NewReport(reportType string, title string) *Report {
	return &Report{
		Type:  reportType,
		Title: title,
	}
}

// AddAnswer adds a section with a heading and its answer lines
func (r *Report) AddAnswer(metric string, heading string, lines ...string) {
	r.Sections = append(r.Sections, Section{Metric: metric, Heading: heading, Lines: lines})
}

// AddNote adds a section without heading, e.g: a column that is not available for the city
func (r *Report) AddNote(metric string, note string) {
	r.Sections = append(r.Sections, Section{Metric: metric, Lines: []string{note}})
}

// GetSection returns the first section with the given metric
func (r *Report) GetSection(metric string) (Section, bool) {
	for _, section := range r.Sections {
		if section.Metric == metric {
			return section, true
		}
	}
	return Section{}, false
}

// Render writes the report in the format shown to the user
func (r *Report) Render(writer io.Writer) error {
	var builder strings.Builder
	builder.WriteString("\n" + r.Title + "\n")
	for _, section := range r.Sections {
		builder.WriteString("\n")
		if section.Heading != "" {
			builder.WriteString(section.Heading + "\n")
		}
		for _, line := range section.Lines {
			builder.WriteString(line + "\n")
		}
	}
	builder.WriteString(fmt.Sprintf("\nThis took %v seconds.\n\n", r.Elapsed.Seconds()))
	builder.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	_, err := io.WriteString(writer, builder.String())
	return err
}

// Rule returns the line printed between reports
func Rule() string {
	return strings.Repeat("-", ruleWidth)
}
