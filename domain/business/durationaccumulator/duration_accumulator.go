package durationaccumulator

import (
	"errors"
	"fmt"
	"time"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

var ErrEmptyAccumulator = errors.New("cannot get average, counter is zero")

// DurationAccumulator struct that collects the travel time of the trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of the travel times
type DurationAccumulator struct {
	Counter       int           `json:"counter"`
	TotalDuration time.Duration `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration time.Duration) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetTotalDuration() time.Duration {
	return da.TotalDuration
}

func (da *DurationAccumulator) GetAverageDuration() (time.Duration, error) {
	if da.Counter == 0 {
		return 0, ErrEmptyAccumulator
	}
	return da.TotalDuration / time.Duration(da.Counter), nil
}

// Components duration split in days, hours, minutes and seconds. Only Days can be negative
type Components struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// Decompose splits the duration using floor division over whole seconds, sub-second precision is dropped
func Decompose(duration time.Duration) Components {
	totalSeconds := int64(duration / time.Second)
	if duration%time.Second < 0 {
		totalSeconds -= 1
	}

	days := floorDiv(totalSeconds, secondsPerDay)
	remainder := totalSeconds - days*secondsPerDay

	return Components{
		Days:    days,
		Hours:   remainder / secondsPerHour,
		Minutes: remainder % secondsPerHour / secondsPerMinute,
		Seconds: remainder % secondsPerMinute,
	}
}

func (c Components) String() string {
	return fmt.Sprintf("%d day(s), %d hour(s), %d minute(s) and %d second(s)", c.Days, c.Hours, c.Minutes, c.Seconds)
}

func floorDiv(a int64, b int64) int64 {
	quotient := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		quotient -= 1
	}
	return quotient
}
