// Package database persists a compact audit row per served prediction.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"

	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

// DB represents a database connection
type DB struct {
	*sql.DB
}

// New opens a PostgreSQL connection and prepares the schema. The initial ping
// is retried with exponential backoff so the service survives a database that
// comes up slightly later than it does.
func New(dsn string) (*DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(db.Ping, bo); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &DB{db}, nil
}

// createTables creates the necessary tables if they don't exist
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS predictions (
			id SERIAL PRIMARY KEY,
			patient_id TEXT NOT NULL,
			patient_name TEXT NOT NULL,
			probability DOUBLE PRECISION NOT NULL,
			will_benefit BOOLEAN NOT NULL,
			confidence TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

// SaveResult stores the audit row for a served prediction.
func (db *DB) SaveResult(ctx context.Context, r *models.PredictionResult) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO predictions (
			patient_id, patient_name, probability, will_benefit, confidence, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`,
		r.PatientID, r.PatientName, r.Ensemble.Probability,
		r.Ensemble.WillBenefit, r.Ensemble.Confidence, r.Timestamp)
	return err
}

// RecentResults returns the newest audit rows, most recent first.
func (db *DB) RecentResults(ctx context.Context, limit int) ([]models.StoredPrediction, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT patient_id, patient_name, probability, will_benefit, confidence, created_at
		FROM predictions
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.StoredPrediction, 0, limit)
	for rows.Next() {
		var p models.StoredPrediction
		if err := rows.Scan(&p.PatientID, &p.PatientName, &p.Probability,
			&p.WillBenefit, &p.Confidence, &p.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}
