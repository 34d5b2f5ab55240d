package selection

import (
	"fmt"
	"strings"
)

// AllFilter disables the month or day filter
const AllFilter = "all"

// Selection struct with the filters chosen by the user for one analysis pass
// + City: city to analyze, one of the configured cities
// + Month: month name in lower case (january..june) or "all"
// + Day: weekday name in lower case (monday..sunday) or "all"
type Selection struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

func NewSelection(city string, month string, day string) Selection {
	return Selection{
		City:  city,
		Month: month,
		Day:   day,
	}.Normalize()
}

// Normalize returns a copy of the selection with every field trimmed and lower-cased
func (s Selection) Normalize() Selection {
	return Selection{
		City:  strings.ToLower(strings.TrimSpace(s.City)),
		Month: strings.ToLower(strings.TrimSpace(s.Month)),
		Day:   strings.ToLower(strings.TrimSpace(s.Day)),
	}
}

func (s Selection) IsAllMonths() bool {
	return s.Month == "" || s.Month == AllFilter
}

func (s Selection) IsAllDays() bool {
	return s.Day == "" || s.Day == AllFilter
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.City, s.Month, s.Day)
}
