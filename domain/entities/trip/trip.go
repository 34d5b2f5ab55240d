package trip

// Source columns of a city trips file
const (
	StartTime    = "Start Time"
	EndTime      = "End Time"
	StartStation = "Start Station"
	EndStation   = "End Station"
	TripDuration = "Trip Duration"
	UserType     = "User Type"
	Gender       = "Gender"
	BirthYear    = "Birth Year"
)

// Columns derived by the loader for a single analysis pass
const (
	Month     = "Month"
	DayOfWeek = "Day of Week"
	StartHour = "Start Hour"
)

// UnknownCategory replaces missing User Type and Gender values
const UnknownCategory = "Unknown"

// RequiredColumns must be present in every trips file, otherwise the file cannot be analyzed
var RequiredColumns = []string{StartTime, EndTime, StartStation, EndStation}

// IsMissing returns true if the raw value of a cell must be treated as null
func IsMissing(value string) bool {
	switch value {
	case "", "NaN", "NA", "<nil>":
		return true
	}
	return false
}

// PairName returns the name of the trip between two stations, e.g: "A to B"
func PairName(startStation string, endStation string) string {
	return startStation + " to " + endStation
}
