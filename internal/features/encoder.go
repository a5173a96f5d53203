package features

import (
	"time"

	"flightfare/internal/domain"
	"flightfare/internal/domain/models"
)

// Vector is a feature row keyed by column name, kept in schema order.
type Vector struct {
	columns []string
	values  map[string]float64
}

func newVector(columns []string) Vector {
	v := Vector{columns: columns, values: make(map[string]float64, len(columns))}
	for _, c := range columns {
		v.values[c] = 0
	}
	return v
}

func (v Vector) Columns() []string { return clone(v.columns) }

func (v Vector) Len() int { return len(v.columns) }

func (v Vector) Get(name string) (float64, bool) {
	val, ok := v.values[name]
	return val, ok
}

// Values returns the vector as name/value pairs in schema order.
func (v Vector) Values() []models.FeatureValue {
	out := make([]models.FeatureValue, 0, len(v.columns))
	for _, c := range v.columns {
		out = append(out, models.FeatureValue{Name: c, Value: v.values[c]})
	}
	return out
}

// Row lays the vector out in the given column order. Every name in order must
// exist in the vector.
func (v Vector) Row(order []string) ([]float64, error) {
	row := make([]float64, len(order))
	var missing []string
	for i, c := range order {
		val, ok := v.values[c]
		if !ok {
			missing = append(missing, c)
			continue
		}
		row[i] = val
	}
	if len(missing) > 0 {
		return nil, domain.SchemaMismatchError{Missing: missing}
	}
	return row, nil
}

func (v Vector) set(name string, val float64) bool {
	if _, ok := v.values[name]; !ok {
		return false
	}
	v.values[name] = val
	return true
}

// Duration returns the flight time in whole hours and remaining whole minutes.
// An arrival earlier than the departure is treated as landing the next day.
func Duration(date time.Time, dep, arr models.TimeOfDay) (int, int) {
	y, m, d := date.Date()
	depAt := time.Date(y, m, d, dep.Hour, dep.Minute, dep.Second, 0, time.UTC)
	arrAt := time.Date(y, m, d, arr.Hour, arr.Minute, arr.Second, 0, time.UTC)
	if arrAt.Before(depAt) {
		arrAt = arrAt.AddDate(0, 0, 1)
	}
	secs := int64(arrAt.Sub(depAt) / time.Second)
	return int(secs / 3600), int((secs % 3600) / 60)
}

// Encode builds the feature vector for req. year fills the Year column.
func Encode(req models.PredictionRequest, year int) (Vector, error) {
	if req.Source == req.Destination {
		return Vector{}, domain.ValidationError{Field: "destination", Msg: "source and destination cities cannot be the same"}
	}
	stops, ok := StopCode(req.TotalStops)
	if !ok {
		return Vector{}, domain.ValidationError{Field: "totalStops", Msg: "unknown stop count " + req.TotalStops}
	}

	durH, durM := Duration(req.JourneyDate, req.DepartureTime, req.ArrivalTime)

	v := newVector(Columns())
	v.set(ColTotalStops, float64(stops))
	v.set(ColDate, float64(req.JourneyDate.Day()))
	v.set(ColMonth, float64(req.JourneyDate.Month()))
	v.set(ColYear, float64(year))
	v.set(ColArrivalHour, float64(req.ArrivalTime.Hour))
	v.set(ColArrivalMinute, float64(req.ArrivalTime.Minute))
	v.set(ColDepartureHour, float64(req.DepartureTime.Hour))
	v.set(ColDepartureMinute, float64(req.DepartureTime.Minute))
	v.set(ColDurationHour, float64(durH))
	v.set(ColDurationMinute, float64(durM))

	if !v.set(AirlinePrefix+req.Airline, 1) {
		return Vector{}, domain.ValidationError{Field: "airline", Msg: "unknown airline " + req.Airline}
	}
	if !v.set(SourcePrefix+req.Source, 1) {
		return Vector{}, domain.ValidationError{Field: "source", Msg: "unknown source city " + req.Source}
	}
	if !v.set(DestinationPrefix+req.Destination, 1) {
		return Vector{}, domain.ValidationError{Field: "destination", Msg: "unknown destination city " + req.Destination}
	}
	return v, nil
}
