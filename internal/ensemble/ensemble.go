// Package ensemble renders the per-model breakdown shown alongside the
// ensemble prediction.
//
// The breakdown is cosmetic: each "model" is the authoritative score plus a
// small Gaussian jitter, so the entries look like independent classifiers.
// With jitter enabled the output is NON-DETERMINISTIC and display-only; it
// must never feed the probability, benefit flag, or risk contract. Disable
// jitter to make every vote echo the score exactly.
package ensemble

import (
	"math"
	"math/rand"

	"github.com/Gokulakrishnxn/Stellest-AI/internal/scoring"
	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

// memberSigmas lists the displayed models with their jitter spreads.
var memberSigmas = []struct {
	name  string
	sigma float64
}{
	{"random_forest", 0.05},
	{"gradient_boosting", 0.03},
	{"logistic_regression", 0.04},
	{"svm", 0.06},
}

// Votes builds the display breakdown for a score. The prediction flag and
// confidence always come from the un-jittered score.
func Votes(score float64, jitter bool) map[string]models.ModelVote {
	votes := make(map[string]models.ModelVote, len(memberSigmas))
	prediction := 0
	if score > 0.5 {
		prediction = 1
	}
	confidence := scoring.Confidence(score)

	for _, m := range memberSigmas {
		p := score
		if jitter {
			p = clamp01(score + rand.NormFloat64()*m.sigma)
		}
		votes[m.name] = models.ModelVote{
			Probability: round3(p),
			Prediction:  prediction,
			Confidence:  confidence,
		}
	}
	return votes
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
