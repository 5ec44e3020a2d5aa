package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

func patient() models.PatientRecord {
	return models.PatientRecord{
		Age:           12,
		OutdoorTime:   1.5,
		ScreenTime:    4.0,
		FamilyHistory: 1,
		PowerRE:       -3.5,
		PowerLE:       -3.25,
		AxialLengthRE: 24.5,
		AxialLengthLE: 24.4,
		WearingTime:   14.0,
	}
}

func TestPercentileClamped(t *testing.T) {
	assert.Equal(t, 100.0, percentile(100, 10, 1))
	assert.Equal(t, 0.0, percentile(-100, 10, 1))
	assert.InDelta(t, 50.0, percentile(10, 10, 1), 1e-9)
}

func TestPopulationComparisonFields(t *testing.T) {
	comp := PopulationComparison(patient())
	assert.Len(t, comp, 4)
	for _, key := range []string{"age", "myopia_severity", "screen_time", "outdoor_time"} {
		c, ok := comp[key]
		assert.True(t, ok, "missing %s", key)
		assert.NotEmpty(t, c.Interpretation)
		assert.GreaterOrEqual(t, c.Percentile, 0.0)
		assert.LessOrEqual(t, c.Percentile, 100.0)
	}
	assert.InDelta(t, 3.375, comp["myopia_severity"].Value, 1e-9)
}

func TestProfileCategories(t *testing.T) {
	lowRisk := models.PatientRecord{
		Age: 10, PowerRE: -1, PowerLE: -1, ScreenTime: 1, OutdoorTime: 3,
	}
	p := Profile(lowRisk)
	// -1 (age) -1 (low myopia) -1 (screen) -1 (outdoor) = -4
	assert.Equal(t, -4, p.RiskScore)
	assert.Equal(t, CategoryLow, p.Category)
	assert.Len(t, p.ProtectiveFactors, 4)
	assert.Empty(t, p.RiskFactors)

	highRisk := models.PatientRecord{
		Age: 16, PowerRE: -5, PowerLE: -5, ScreenTime: 8, OutdoorTime: 0.5, FamilyHistory: 1,
	}
	p = Profile(highRisk)
	// +2 +2 +2 +1 +1 = 8
	assert.Equal(t, 8, p.RiskScore)
	assert.Equal(t, CategoryHigh, p.Category)
	assert.Len(t, p.RiskFactors, 5)

	p = Profile(patient())
	// 0 (age 12) 0 (power 3.375) 0 (screen 4) 0 (outdoor 1.5) +1 (family)
	assert.Equal(t, 1, p.RiskScore)
	assert.Equal(t, CategoryMedium, p.Category)
}

func TestRecommendationsTiers(t *testing.T) {
	recs := Recommendations(0.8, patient())
	assert.Equal(t, "Stellest lens is highly recommended as first-line therapy", recs[0].Recommendation)
	assert.Equal(t, "Monitoring", recs[1].Category)
	assert.Len(t, recs, 2) // screen time 4 is not > 4

	p := patient()
	p.ScreenTime = 5
	recs = Recommendations(0.4, p)
	assert.Equal(t, "Consider alternative treatments or combination therapy", recs[0].Recommendation)
	assert.Equal(t, "Lifestyle", recs[2].Category)
}

func TestScenarios(t *testing.T) {
	s := Scenarios(0.9)
	assert.InDelta(t, 0.95, s["best_case"].Probability, 1e-9)
	assert.InDelta(t, 0.9, s["expected_case"].Probability, 1e-9)
	assert.InDelta(t, 0.6, s["worst_case"].Probability, 1e-9)

	s = Scenarios(0.2)
	assert.InDelta(t, 0.1, s["worst_case"].Probability, 1e-9)
}

func TestInsights(t *testing.T) {
	young := models.PatientRecord{Age: 10, PowerRE: -1, PowerLE: -1}
	got := Insights(0.8, young)
	assert.Contains(t, got, "Young age provides excellent opportunity for myopia control")
	assert.Contains(t, got, "Low myopia severity is associated with better treatment outcomes")

	older := models.PatientRecord{Age: 17, PowerRE: -5, PowerLE: -5}
	got = Insights(0.3, older)
	assert.Contains(t, got, "Older age may require more aggressive treatment approach")
	assert.Contains(t, got, "High myopia severity may require additional interventions")
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := Analyze(0.7, patient())
	b := Analyze(0.7, patient())
	assert.Equal(t, a, b)
}
