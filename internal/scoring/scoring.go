// Package scoring computes the benefit probability for a patient record.
//
// The score starts at a base probability and accumulates independent deltas
// from a declarative band table, one row per clinical feature. The table is
// the single source of truth for thresholds and weights; evaluation order
// does not matter because the terms simply sum.
package scoring

import (
	"math"

	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

// Probability bounds. The score is always clamped into this band so the
// service never claims absolute certainty either way.
const (
	BaseProbability = 0.5
	MinProbability  = 0.10
	MaxProbability  = 0.95
)

// Confidence tiers by distance from the decision boundary.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// band pairs a threshold predicate with the delta applied when it matches.
// Within a rule the first matching band wins; no match contributes zero.
type band struct {
	when  func(v float64) bool
	delta float64
}

// rule binds one clinical feature to its threshold bands.
type rule struct {
	feature string
	value   func(p models.PatientRecord) float64
	bands   []band
}

func lt(x float64) func(float64) bool  { return func(v float64) bool { return v < x } }
func gt(x float64) func(float64) bool  { return func(v float64) bool { return v > x } }
func gte(x float64) func(float64) bool { return func(v float64) bool { return v >= x } }

func otherwise(float64) bool { return true }

// rules is the canonical rule set. Younger patients, milder myopia, more
// outdoor time, less screen time, and better wearing compliance all raise
// the probability; family history lowers it.
var rules = []rule{
	{
		feature: "age",
		value:   func(p models.PatientRecord) float64 { return p.Age },
		bands: []band{
			{lt(12), +0.20},
			{lt(15), +0.10},
			{otherwise, -0.10},
		},
	},
	{
		feature: "average_power",
		value:   models.PatientRecord.AveragePower,
		bands: []band{
			{lt(2), +0.15},
			{lt(4), +0.05},
			{otherwise, -0.10},
		},
	},
	{
		feature: "outdoor_time",
		value:   func(p models.PatientRecord) float64 { return p.OutdoorTime },
		bands: []band{
			{gte(2), +0.10},
			{lt(1), -0.05},
		},
	},
	{
		feature: "screen_time",
		value:   func(p models.PatientRecord) float64 { return p.ScreenTime },
		bands: []band{
			{gt(6), -0.10},
			{lt(3), +0.05},
		},
	},
	{
		feature: "family_history",
		value:   func(p models.PatientRecord) float64 { return float64(p.FamilyHistory) },
		bands: []band{
			{gte(1), -0.05},
		},
	},
	{
		feature: "wearing_time",
		value:   func(p models.PatientRecord) float64 { return p.WearingTime },
		bands: []band{
			{gte(12), +0.10},
			{lt(10), -0.05},
		},
	},
}

// Score returns the clamped benefit probability for the record. It is a
// pure function: identical input always yields the identical score.
func Score(p models.PatientRecord) float64 {
	score := BaseProbability
	for _, r := range rules {
		v := r.value(p)
		for _, b := range r.bands {
			if b.when(v) {
				score += b.delta
				break
			}
		}
	}
	return Clamp(score)
}

// Clamp bounds a probability to [MinProbability, MaxProbability].
func Clamp(p float64) float64 {
	return math.Max(MinProbability, math.Min(MaxProbability, p))
}

// Confidence maps a probability to its tier by distance from 0.5.
func Confidence(p float64) string {
	switch d := math.Abs(p - 0.5); {
	case d > 0.3:
		return ConfidenceHigh
	case d > 0.15:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Predict bundles the score with its benefit flag and confidence tier.
func Predict(p models.PatientRecord) models.Prediction {
	score := Score(p)
	return models.Prediction{
		WillBenefit: score > 0.5,
		Probability: score,
		Confidence:  Confidence(score),
	}
}
