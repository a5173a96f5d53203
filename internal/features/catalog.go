// Package features turns a flight itinerary into the fixed column layout the
// fare model was trained on.
package features

import "flightfare/internal/utils"

const (
	ColTotalStops      = "Total_Stops"
	ColDate            = "Date"
	ColMonth           = "Month"
	ColYear            = "Year"
	ColArrivalHour     = "Arrival_hour"
	ColArrivalMinute   = "Arrival_minute"
	ColDepartureHour   = "Departure_hour"
	ColDepartureMinute = "Departure_minute"
	ColDurationHour    = "Duration_hour"
	ColDurationMinute  = "Duration_minute"

	AirlinePrefix     = "Airline_"
	SourcePrefix      = "Source_"
	DestinationPrefix = "Destination_"

	// DefaultTrainingYear is the only year present in the training data.
	DefaultTrainingYear = 2019
)

var (
	airlines = []string{
		"Air Asia", "Air India", "GoAir", "IndiGo", "Jet Airways", "Jet Airways Business",
		"Multiple carriers", "Multiple carriers Premium economy", "SpiceJet", "Trujet",
		"Vistara", "Vistara Premium economy",
	}
	sources      = []string{"Banglore", "Chennai", "Delhi", "Kolkata", "Mumbai"}
	destinations = []string{"Banglore", "Cochin", "Delhi", "Hyderabad", "Kolkata", "New Delhi"}
	stopLabels   = []string{"non-stop", "1 stop", "2 stops", "3 stops", "4 stops"}

	numericColumns = []string{
		ColTotalStops, ColDate, ColMonth, ColYear,
		ColArrivalHour, ColArrivalMinute,
		ColDepartureHour, ColDepartureMinute,
		ColDurationHour, ColDurationMinute,
	}

	schema = buildSchema()
)

func buildSchema() []string {
	cols := make([]string, 0, len(numericColumns)+len(airlines)+len(sources)+len(destinations))
	cols = append(cols, numericColumns...)
	for _, a := range airlines {
		cols = append(cols, AirlinePrefix+a)
	}
	for _, s := range sources {
		cols = append(cols, SourcePrefix+s)
	}
	for _, d := range destinations {
		cols = append(cols, DestinationPrefix+d)
	}
	return cols
}

// Columns returns the model column list in training order.
func Columns() []string { return clone(schema) }

// Airlines returns the carriers seen in training, in column order.
func Airlines() []string { return clone(airlines) }

// Sources returns the departure cities seen in training.
func Sources() []string { return clone(sources) }

// Destinations returns the arrival cities seen in training.
func Destinations() []string { return clone(destinations) }

// StopLabels returns the stop labels ordered by their numeric code.
func StopLabels() []string { return clone(stopLabels) }

// CanonicalAirline matches v case-insensitively and returns the training spelling.
func CanonicalAirline(v string) (string, bool) { return utils.MatchFold(airlines, v) }

// CanonicalSource is CanonicalAirline for departure cities.
func CanonicalSource(v string) (string, bool) { return utils.MatchFold(sources, v) }

// CanonicalDestination is CanonicalAirline for arrival cities.
func CanonicalDestination(v string) (string, bool) { return utils.MatchFold(destinations, v) }

// CanonicalStops maps a stop label to its training spelling. Empty input means non-stop.
func CanonicalStops(v string) (string, bool) {
	if utils.NormalizeSpace(v) == "" {
		return stopLabels[0], true
	}
	return utils.MatchFold(stopLabels, v)
}

// StopCode maps a canonical stop label to 0..4.
func StopCode(label string) (int, bool) {
	for i, l := range stopLabels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}
