package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"flightfare/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEnsureTableCreatesWhenAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("prediction_history").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS prediction_history").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := PredictionRepository{DB: db}
	if err := repo.EnsureTable(context.Background()); err != nil {
		t.Fatalf("EnsureTable returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnsureTableSkipsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("prediction_history").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("prediction_history"))

	repo := PredictionRepository{DB: db}
	if err := repo.EnsureTable(context.Background()); err != nil {
		t.Fatalf("EnsureTable returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertPrediction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2019, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO prediction_history").
		WithArgs("req-1", "IndiGo", "Delhi", "Cochin", "2019-03-15", "10:00", "13:45", "non-stop", int64(5787), "v1", created).
		WillReturnResult(sqlmock.NewResult(42, 1))

	repo := PredictionRepository{DB: db}
	id, err := repo.Insert(context.Background(), models.PredictionRecord{
		RequestID:     "req-1",
		Airline:       "IndiGo",
		Source:        "Delhi",
		Destination:   "Cochin",
		JourneyDate:   "2019-03-15",
		DepartureTime: "10:00",
		ArrivalTime:   "13:45",
		TotalStops:    "non-stop",
		Price:         5787,
		ModelVersion:  "v1",
		CreatedAt:     created,
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertPredictionError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO prediction_history").WillReturnError(errors.New("disk full"))

	repo := PredictionRepository{DB: db}
	if _, err := repo.Insert(context.Background(), models.PredictionRecord{Airline: "GoAir"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2019, 3, 1, 9, 0, 0, 0, time.UTC)
	cols := []string{"id", "request_id", "airline", "source", "destination", "journey_date",
		"departure_time", "arrival_time", "total_stops", "price", "model_version", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM prediction_history").WithArgs(2).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, "req-2", "Vistara", "Mumbai", "Hyderabad", "2019-04-02", "06:10", "07:40", "non-stop", 4100, "v1", now).
			AddRow(1, "req-1", "IndiGo", "Delhi", "Cochin", "2019-03-15", "10:00", "13:45", "non-stop", 5787, "v1", now.Add(-time.Hour)))

	repo := PredictionRepository{DB: db}
	recs, err := repo.ListRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != 2 || recs[1].Price != 5787 {
		t.Fatalf("unexpected records: %+v", recs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
