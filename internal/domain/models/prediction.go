package models

import "time"

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// PredictionRequest is one validated form submission. Enumerated fields hold
// the canonical training spelling.
type PredictionRequest struct {
	Airline       string
	Source        string
	Destination   string
	JourneyDate   time.Time
	DepartureTime TimeOfDay
	ArrivalTime   TimeOfDay
	TotalStops    string
}

type FeatureValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type PredictionResult struct {
	RawPrice        float64        `json:"rawPrice"`
	Price           int64          `json:"price"`
	Formatted       string         `json:"formatted"`
	DurationHours   int            `json:"durationHours"`
	DurationMinutes int            `json:"durationMinutes"`
	ModelVersion    string         `json:"modelVersion,omitempty"`
	Features        []FeatureValue `json:"features"`
}

// PredictionRecord is a stored copy of a successful prediction.
type PredictionRecord struct {
	ID            int64     `json:"id"`
	RequestID     string    `json:"requestId"`
	Airline       string    `json:"airline"`
	Source        string    `json:"source"`
	Destination   string    `json:"destination"`
	JourneyDate   string    `json:"journeyDate"`
	DepartureTime string    `json:"departureTime"`
	ArrivalTime   string    `json:"arrivalTime"`
	TotalStops    string    `json:"totalStops"`
	Price         int64     `json:"price"`
	ModelVersion  string    `json:"modelVersion"`
	CreatedAt     time.Time `json:"createdAt"`
}
