package valuecounter

import "strconv"

// NumericLess sorts keys by their integer value. Keys that are not integers sort after the ones that are
func NumericLess(a string, b string) bool {
	numberA, errA := strconv.Atoi(a)
	numberB, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return numberA < numberB
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
