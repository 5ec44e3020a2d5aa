package models

import "context"

// PredictionStore persists prediction audit rows. Implementations must be
// safe for concurrent use; a nil store disables persistence.
type PredictionStore interface {
	SaveResult(ctx context.Context, result *PredictionResult) error
	RecentResults(ctx context.Context, limit int) ([]StoredPrediction, error)
	Close() error
}
