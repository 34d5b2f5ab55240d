package valuecounter

import (
	"errors"
	"sort"
)

var ErrNoValues = errors.New("value counter has no values")

// LessFunc reports whether key a sorts before key b. It is used to break ties when looking for the mode
type LessFunc func(a string, b string) bool

// ValueCount pair of value and the amount of times it appeared
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounter struct that counts how many times each value appears in a column
// + Name: name of the counted column
// + counters: amount of appearances by value
// + order: values in the order they were first seen
// + less: sort order of the values, lexical if it is not set
type ValueCounter struct {
	Name     string
	counters map[string]int
	order    []string
	less     LessFunc
}

func NewValueCounter(name string) *ValueCounter {
	return &ValueCounter{
		Name:     name,
		counters: make(map[string]int),
	}
}

// NewValueCounterWithOrder returns a counter that uses less to sort keys when two of them have the same count
func NewValueCounterWithOrder(name string, less LessFunc) *ValueCounter {
	counter := NewValueCounter(name)
	counter.less = less
	return counter
}

func (vc *ValueCounter) UpdateCounter(value string) {
	if _, ok := vc.counters[value]; !ok {
		vc.order = append(vc.order, value)
	}
	vc.counters[value] += 1
}

func (vc *ValueCounter) UpdateCounters(values []string) {
	for _, value := range values {
		vc.UpdateCounter(value)
	}
}

func (vc *ValueCounter) GetCount(value string) int {
	return vc.counters[value]
}

// Total returns the amount of values counted
func (vc *ValueCounter) Total() int {
	total := 0
	for _, count := range vc.counters {
		total += count
	}
	return total
}

func (vc *ValueCounter) IsEmpty() bool {
	return len(vc.order) == 0
}

// Mode returns the most frequent value. If more than one value has the highest count,
// the one that sorts first is returned
func (vc *ValueCounter) Mode() (ValueCount, error) {
	if vc.IsEmpty() {
		return ValueCount{}, ErrNoValues
	}

	mode := ValueCount{Value: vc.order[0], Count: vc.counters[vc.order[0]]}
	for _, value := range vc.order[1:] {
		count := vc.counters[value]
		if count > mode.Count || (count == mode.Count && vc.sortsBefore(value, mode.Value)) {
			mode = ValueCount{Value: value, Count: count}
		}
	}
	return mode, nil
}

// Counts returns every value with its count, most frequent first. Values with the same count
// keep the order in which they were first seen
func (vc *ValueCounter) Counts() []ValueCount {
	counts := make([]ValueCount, 0, len(vc.order))
	for _, value := range vc.order {
		counts = append(counts, ValueCount{Value: value, Count: vc.counters[value]})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

func (vc *ValueCounter) sortsBefore(a string, b string) bool {
	if vc.less != nil {
		return vc.less(a, b)
	}
	return a < b
}
