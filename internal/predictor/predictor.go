// Package predictor runs the full prediction pipeline for one patient
// record: domain validation, scoring, risk labeling, progression projection,
// recommendation, and analytics, assembled into a single result.
package predictor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Gokulakrishnxn/Stellest-AI/internal/analytics"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/ensemble"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/linear"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/progression"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/recommend"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/risk"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/scoring"
	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

// Predictor orchestrates the pipeline. The zero value works; options attach
// the optional linear model, audit store, and display jitter.
type Predictor struct {
	linearModel *linear.Model
	store       models.PredictionStore
	jitter      bool
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithLinearModel attaches the logistic-regression variant; its probability
// is reported alongside the rule-based one.
func WithLinearModel(m *linear.Model) Option {
	return func(p *Predictor) { p.linearModel = m }
}

// WithStore attaches the prediction audit store.
func WithStore(s models.PredictionStore) Option {
	return func(p *Predictor) { p.store = s }
}

// WithDisplayJitter enables the cosmetic per-model noise in the
// individual-models breakdown. Display-only; see the ensemble package.
func WithDisplayJitter(enabled bool) Option {
	return func(p *Predictor) { p.jitter = enabled }
}

// New builds a Predictor.
func New(opts ...Option) *Predictor {
	p := &Predictor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LinearModelLoaded reports whether the optional linear variant is active.
func (p *Predictor) LinearModelLoaded() bool {
	return p.linearModel != nil
}

// LinearModel returns the loaded linear variant, or nil.
func (p *Predictor) LinearModel() *linear.Model {
	return p.linearModel
}

// validate applies the domain rules that field-level binding cannot express.
func validate(rec models.PatientRecord) error {
	if rec.AgeAtDiagnosis > rec.Age {
		return &models.ValidationError{
			Field:  "age_myopia_diagnosis",
			Reason: "diagnosis age cannot exceed current age",
		}
	}
	return nil
}

// Predict runs the pipeline. Errors are typed: *models.ValidationError for
// bad input, *models.ComputationError for pipeline failures. There is no
// fallback prediction on error.
func (p *Predictor) Predict(ctx context.Context, rec models.PatientRecord) (*models.PredictionResult, error) {
	start := time.Now()

	if err := validate(rec); err != nil {
		return nil, err
	}

	pred := scoring.Predict(rec)
	factors := risk.Analyze(rec)

	result := &models.PredictionResult{
		PatientName:        rec.PatientName,
		Ensemble:           pred,
		IndividualModels:   ensemble.Votes(pred.Probability, p.jitter),
		RiskFactors:        factors,
		Recommendation:     recommend.Recommendation(pred.Probability, rec, factors),
		LifestyleAdvice:    recommend.LifestyleAdvice(rec),
		MonitoringSchedule: recommend.MonitoringSchedule(pred.Probability, factors),
		Progression:        progression.Project(rec),
		Analytics:          analytics.Analyze(pred.Probability, rec),
		PatientID:          "patient_" + uuid.NewString(),
		Timestamp:          time.Now().UTC(),
	}

	if p.linearModel != nil {
		prob, err := p.linearModel.Predict(rec)
		if err != nil {
			return nil, &models.ComputationError{Stage: "linear model inference", Err: err}
		}
		result.LinearModel = &models.Prediction{
			WillBenefit: prob > 0.5,
			Probability: prob,
			Confidence:  scoring.Confidence(prob),
		}
	}

	result.ProcessingTime = time.Since(start).Seconds()

	if p.store != nil {
		// Audit write is best-effort; a storage outage must not fail
		// the prediction.
		if err := p.store.SaveResult(ctx, result); err != nil {
			log.Warn().Err(err).Str("patient_id", result.PatientID).Msg("failed to persist prediction")
		}
	}

	return result, nil
}
