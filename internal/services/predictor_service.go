package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"flightfare/internal/domain"
	"flightfare/internal/domain/models"
	"flightfare/internal/features"
	"flightfare/internal/model"
	"flightfare/internal/utils"
)

// PredictInput is the raw form submission.
type PredictInput struct {
	Airline       string `json:"airline" binding:"required"`
	Source        string `json:"source" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	JourneyDate   string `json:"journeyDate" binding:"required"`
	DepartureTime string `json:"departureTime" binding:"required"`
	ArrivalTime   string `json:"arrivalTime" binding:"required"`
	TotalStops    string `json:"totalStops"`
}

// PredictionStore persists successful predictions.
type PredictionStore interface {
	Insert(ctx context.Context, rec models.PredictionRecord) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]models.PredictionRecord, error)
}

// PredictorService turns a form submission into a fare estimate using the
// model handle loaded at startup.
type PredictorService struct {
	Model        model.Regressor
	TrainingYear int
	History      PredictionStore
	Now          func() time.Time
	RequestID    string
}

// CheckModelSchema verifies at startup that the model expects exactly the
// encoder's columns. Models without names are checked by width only.
func CheckModelSchema(m model.Regressor) error {
	cols := features.Columns()
	if namer, ok := m.(model.FeatureNamer); ok {
		if names := namer.FeatureNames(); len(names) > 0 {
			return features.CheckSchema(names, cols)
		}
	}
	return checkWidth(m, len(cols))
}

func checkWidth(m model.Regressor, got int) error {
	if sizer, ok := m.(interface{ NumFeatures() int }); ok {
		return features.CheckWidth(sizer.NumFeatures(), got)
	}
	return nil
}

// ParseRequest validates raw fields and canonicalises enumerated values.
// Identical source and destination cities are rejected here, before any
// encoding work.
func (s PredictorService) ParseRequest(in PredictInput) (models.PredictionRequest, error) {
	var req models.PredictionRequest

	airline, ok := features.CanonicalAirline(in.Airline)
	if !ok {
		return req, domain.ValidationError{Field: "airline", Msg: fmt.Sprintf("unknown airline %q", strings.TrimSpace(in.Airline))}
	}
	source, ok := features.CanonicalSource(in.Source)
	if !ok {
		return req, domain.ValidationError{Field: "source", Msg: fmt.Sprintf("unknown source city %q", strings.TrimSpace(in.Source))}
	}
	destination, ok := features.CanonicalDestination(in.Destination)
	if !ok {
		return req, domain.ValidationError{Field: "destination", Msg: fmt.Sprintf("unknown destination city %q", strings.TrimSpace(in.Destination))}
	}
	if source == destination {
		return req, domain.ValidationError{Field: "destination", Msg: "source and destination cities cannot be the same"}
	}
	stops, ok := features.CanonicalStops(in.TotalStops)
	if !ok {
		return req, domain.ValidationError{Field: "totalStops", Msg: fmt.Sprintf("unknown stop count %q", strings.TrimSpace(in.TotalStops))}
	}

	date, err := utils.ParseDate(in.JourneyDate)
	if err != nil {
		return req, domain.ValidationError{Field: "journeyDate", Msg: "date must be YYYY-MM-DD", Err: err}
	}
	if date.Before(utils.StartOfDay(s.now())) {
		return req, domain.ValidationError{Field: "journeyDate", Msg: "journey date cannot be in the past"}
	}

	dep, err := parseTimeOfDay(in.DepartureTime)
	if err != nil {
		return req, domain.ValidationError{Field: "departureTime", Msg: err.Error(), Err: err}
	}
	arr, err := parseTimeOfDay(in.ArrivalTime)
	if err != nil {
		return req, domain.ValidationError{Field: "arrivalTime", Msg: err.Error(), Err: err}
	}

	req.Airline = airline
	req.Source = source
	req.Destination = destination
	req.JourneyDate = date
	req.DepartureTime = dep
	req.ArrivalTime = arr
	req.TotalStops = stops
	return req, nil
}

// Predict encodes req, checks the vector against the model's declared columns
// and runs exactly one inference.
func (s PredictorService) Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResult, error) {
	var out models.PredictionResult
	if s.Model == nil {
		return out, domain.InternalError{Msg: "model is not loaded"}
	}

	vec, err := features.Encode(req, s.year())
	if err != nil {
		return out, err
	}

	order := vec.Columns()
	if namer, ok := s.Model.(model.FeatureNamer); ok {
		if names := namer.FeatureNames(); len(names) > 0 {
			if err := features.CheckSchema(names, vec.Columns()); err != nil {
				utils.LogEvent(s.RequestID, "predict", "schema_mismatch", err.Error())
				return out, err
			}
			order = names
		}
	}
	if err := checkWidth(s.Model, len(order)); err != nil {
		utils.LogEvent(s.RequestID, "predict", "schema_mismatch", err.Error())
		return out, err
	}

	row, err := vec.Row(order)
	if err != nil {
		return out, err
	}

	raw, err := s.infer(row)
	if err != nil {
		utils.LogEvent(s.RequestID, "predict", "inference_failed", err.Error())
		return out, err
	}

	durH, durM := features.Duration(req.JourneyDate, req.DepartureTime, req.ArrivalTime)
	out.RawPrice = raw
	out.Price = int64(raw)
	out.Formatted = utils.FormatRupee(out.Price)
	out.DurationHours = durH
	out.DurationMinutes = durM
	out.ModelVersion = s.modelVersion()
	out.Features = vec.Values()

	utils.LogEvent(s.RequestID, "predict", "predicted", fmt.Sprintf("airline=%s route=%s-%s price=%d", req.Airline, req.Source, req.Destination, out.Price))
	s.record(ctx, req, out)
	return out, nil
}

// infer calls the model once; errors and panics both come back as InferenceError.
func (s PredictorService) infer(row []float64) (price float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.InferenceError{Err: fmt.Errorf("model panicked: %v", r)}
		}
	}()

	preds, err := s.Model.Predict([][]float64{row})
	if err != nil {
		return 0, domain.InferenceError{Err: err}
	}
	if len(preds) != 1 {
		return 0, domain.InferenceError{Err: fmt.Errorf("model returned %d values for one row", len(preds))}
	}
	if math.IsNaN(preds[0]) || math.IsInf(preds[0], 0) {
		return 0, domain.InferenceError{Err: fmt.Errorf("model returned non-finite value %v", preds[0])}
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if preds[0] >= math.MaxInt64 || preds[0] < math.MinInt64 {
		return 0, domain.InferenceError{Err: fmt.Errorf("model returned out-of-range value %v", preds[0])}
	}
	return preds[0], nil
}

func (s PredictorService) record(ctx context.Context, req models.PredictionRequest, res models.PredictionResult) {
	if s.History == nil {
		return
	}
	rec := models.PredictionRecord{
		RequestID:     s.RequestID,
		Airline:       req.Airline,
		Source:        req.Source,
		Destination:   req.Destination,
		JourneyDate:   utils.FormatDate(req.JourneyDate),
		DepartureTime: formatTimeOfDay(req.DepartureTime),
		ArrivalTime:   formatTimeOfDay(req.ArrivalTime),
		TotalStops:    req.TotalStops,
		Price:         res.Price,
		ModelVersion:  res.ModelVersion,
		CreatedAt:     s.now(),
	}
	if _, err := s.History.Insert(ctx, rec); err != nil {
		utils.LogEvent(s.RequestID, "predict", "history_insert_failed", err.Error())
	}
}

func (s PredictorService) year() int {
	if s.TrainingYear > 0 {
		return s.TrainingYear
	}
	return features.DefaultTrainingYear
}

func (s PredictorService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s PredictorService) modelVersion() string {
	if v, ok := s.Model.(interface{ Version() string }); ok {
		return v.Version()
	}
	return ""
}

func parseTimeOfDay(raw string) (models.TimeOfDay, error) {
	h, m, sec, err := utils.ParseClock(raw)
	if err != nil {
		return models.TimeOfDay{}, err
	}
	return models.TimeOfDay{Hour: h, Minute: m, Second: sec}, nil
}

func formatTimeOfDay(t models.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
