package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVotesWithoutJitterEchoScore(t *testing.T) {
	votes := Votes(0.70, false)
	assert.Len(t, votes, 4)
	for name, v := range votes {
		assert.InDelta(t, 0.70, v.Probability, 1e-9, name)
		assert.Equal(t, 1, v.Prediction)
		assert.Equal(t, "Medium", v.Confidence)
	}
}

func TestVotesJitterStaysInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		for name, v := range Votes(0.95, true) {
			assert.GreaterOrEqual(t, v.Probability, 0.0, name)
			assert.LessOrEqual(t, v.Probability, 1.0, name)
			// the flag and tier must not be affected by jitter
			assert.Equal(t, 1, v.Prediction, name)
			assert.Equal(t, "High", v.Confidence, name)
		}
	}
}

func TestVotesNegativePrediction(t *testing.T) {
	for _, v := range Votes(0.30, false) {
		assert.Equal(t, 0, v.Prediction)
	}
}
