package loader

import (
	"fmt"
	"strings"
	"time"
)

// parseTimestamp tries each layout in order and returns the first successful parse.
// Timestamps are naive, they are parsed as UTC so subtracting two of them never crosses a DST change
func parseTimestamp(value string, layouts []string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w '%s': %w", ErrInvalidTimestamp, value, ErrDataFormat)
}

func parseTimestamps(values []string, layouts []string) ([]time.Time, error) {
	timestamps := make([]time.Time, len(values))
	for idx, value := range values {
		parsed, err := parseTimestamp(value, layouts)
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", idx, err)
		}
		timestamps[idx] = parsed
	}
	return timestamps, nil
}
