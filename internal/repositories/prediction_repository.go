package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intdb "flightfare/internal/db"
	"flightfare/internal/domain/models"
)

const predictionTable = "prediction_history"

const createPredictionTable = `
CREATE TABLE IF NOT EXISTS prediction_history (
	id             BIGINT AUTO_INCREMENT PRIMARY KEY,
	request_id     VARCHAR(64)  NOT NULL DEFAULT '',
	airline        VARCHAR(64)  NOT NULL,
	source         VARCHAR(32)  NOT NULL,
	destination    VARCHAR(32)  NOT NULL,
	journey_date   DATE         NOT NULL,
	departure_time VARCHAR(8)   NOT NULL,
	arrival_time   VARCHAR(8)   NOT NULL,
	total_stops    VARCHAR(16)  NOT NULL,
	price          BIGINT       NOT NULL,
	model_version  VARCHAR(64)  NOT NULL DEFAULT '',
	created_at     DATETIME     NOT NULL,
	INDEX idx_prediction_history_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

type PredictionRepository struct {
	DB *sql.DB
}

// EnsureTable creates prediction_history when it does not exist yet.
func (r PredictionRepository) EnsureTable(ctx context.Context) error {
	if intdb.HasTable(ctx, r.DB, predictionTable) {
		return nil
	}
	if _, err := r.DB.ExecContext(ctx, createPredictionTable); err != nil {
		return fmt.Errorf("create %s: %w", predictionTable, err)
	}
	return nil
}

func (r PredictionRepository) Insert(ctx context.Context, rec models.PredictionRecord) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO prediction_history
			(request_id, airline, source, destination, journey_date, departure_time,
			 arrival_time, total_stops, price, model_version, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.RequestID, rec.Airline, rec.Source, rec.Destination, rec.JourneyDate, rec.DepartureTime,
		rec.ArrivalTime, rec.TotalStops, rec.Price, rec.ModelVersion, rec.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert prediction: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// ListRecent returns the newest records first.
func (r PredictionRepository) ListRecent(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, request_id, airline, source, destination,
		       DATE_FORMAT(journey_date, '%Y-%m-%d'), departure_time, arrival_time,
		       total_stops, price, model_version, created_at
		FROM prediction_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	out := []models.PredictionRecord{}
	for rows.Next() {
		var rec models.PredictionRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.RequestID,
			&rec.Airline,
			&rec.Source,
			&rec.Destination,
			&rec.JourneyDate,
			&rec.DepartureTime,
			&rec.ArrivalTime,
			&rec.TotalStops,
			&rec.Price,
			&rec.ModelVersion,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	return out, nil
}
