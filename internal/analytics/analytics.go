// Package analytics compares a patient against reference population
// statistics and summarizes the risk profile and outcome scenarios. All of
// it is deterministic decision-table arithmetic over the same inputs as the
// scoring rules.
package analytics

import (
	"fmt"
	"math"

	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

// Reference population statistics from the retrospective cohort.
type populationStat struct {
	mean, std float64
}

var population = map[string]populationStat{
	"age":             {mean: 11.334, std: 3.2},
	"myopia_severity": {mean: 3.3585, std: 1.8},
	"screen_time":     {mean: 2.757, std: 1.5},
	"outdoor_time":    {mean: 1.228, std: 0.8},
}

// Risk categories for the integer risk score.
const (
	CategoryLow    = "Low Risk"
	CategoryMedium = "Medium Risk"
	CategoryHigh   = "High Risk"
)

// percentile is a simplified normal-approximation percentile, clamped to
// [0, 100].
func percentile(value, mean, std float64) float64 {
	z := (value - mean) / std
	p := 50 + z*15
	return math.Max(0, math.Min(100, p))
}

func compare(value float64, stat populationStat, interp string) models.FieldComparison {
	return models.FieldComparison{
		Value:          value,
		PopulationMean: stat.mean,
		Percentile:     percentile(value, stat.mean, stat.std),
		Interpretation: interp,
	}
}

// PopulationComparison positions the patient's age, severity, and lifestyle
// values against the reference cohort.
func PopulationComparison(p models.PatientRecord) map[string]models.FieldComparison {
	out := make(map[string]models.FieldComparison, len(population))

	ageStat := population["age"]
	ageWord := "older"
	if p.Age < ageStat.mean {
		ageWord = "younger"
	}
	out["age"] = compare(p.Age, ageStat,
		fmt.Sprintf("Patient is %s than %.1f%% of the population", ageWord, percentile(p.Age, ageStat.mean, ageStat.std)))

	sevStat := population["myopia_severity"]
	sevWord := "less severe"
	if p.AveragePower() > sevStat.mean {
		sevWord = "more severe"
	}
	out["myopia_severity"] = compare(p.AveragePower(), sevStat,
		fmt.Sprintf("Myopia is %s than %.1f%% of patients", sevWord, percentile(p.AveragePower(), sevStat.mean, sevStat.std)))

	screenStat := population["screen_time"]
	screenWord := "lower"
	if p.ScreenTime > screenStat.mean {
		screenWord = "higher"
	}
	out["screen_time"] = compare(p.ScreenTime, screenStat,
		fmt.Sprintf("Screen time %s than %.1f%% of patients", screenWord, percentile(p.ScreenTime, screenStat.mean, screenStat.std)))

	outdoorStat := population["outdoor_time"]
	outdoorWord := "more"
	if p.OutdoorTime < outdoorStat.mean {
		outdoorWord = "less"
	}
	out["outdoor_time"] = compare(p.OutdoorTime, outdoorStat,
		fmt.Sprintf("Outdoor time %s than %.1f%% of patients", outdoorWord, 100-percentile(p.OutdoorTime, outdoorStat.mean, outdoorStat.std)))

	return out
}

// Profile computes the integer risk score and its category. Risk points and
// protective points are independent; the category comes from the net score.
func Profile(p models.PatientRecord) models.RiskProfile {
	score := 0
	risks := []string{}
	protects := []string{}

	if p.Age > 15 {
		score += 2
		risks = append(risks, "Advanced age (>15 years)")
	} else if p.Age < 12 {
		score--
		protects = append(protects, "Optimal age for myopia control")
	}

	if avg := p.AveragePower(); avg > 4 {
		score += 2
		risks = append(risks, "High myopia (>4D)")
	} else if avg < 2 {
		score--
		protects = append(protects, "Low myopia has better prognosis")
	}

	if p.ScreenTime > 6 {
		score += 2
		risks = append(risks, "Excessive screen time")
	} else if p.ScreenTime < 3 {
		score--
		protects = append(protects, "Limited screen time")
	}

	if p.OutdoorTime >= 2 {
		score--
		protects = append(protects, "Good outdoor time is protective")
	} else if p.OutdoorTime < 1 {
		score++
		risks = append(risks, "Limited outdoor time")
	}

	if p.FamilyHistory == 1 {
		score++
		risks = append(risks, "Family history of myopia")
	}

	category := CategoryHigh
	switch {
	case score <= -2:
		category = CategoryLow
	case score <= 1:
		category = CategoryMedium
	}

	return models.RiskProfile{
		RiskScore:         score,
		Category:          category,
		RiskFactors:       risks,
		ProtectiveFactors: protects,
	}
}

// Recommendations builds the prioritized recommendation list for the
// probability and record.
func Recommendations(probability float64, p models.PatientRecord) []models.DetailedRecommendation {
	recs := []models.DetailedRecommendation{}

	switch {
	case probability > 0.7:
		recs = append(recs, models.DetailedRecommendation{
			Category:       "Primary Treatment",
			Recommendation: "Stellest lens is highly recommended as first-line therapy",
			EvidenceLevel:  "Strong",
			Priority:       "High",
		})
	case probability > 0.5:
		recs = append(recs, models.DetailedRecommendation{
			Category:       "Primary Treatment",
			Recommendation: "Stellest lens is recommended with close monitoring",
			EvidenceLevel:  "Moderate",
			Priority:       "High",
		})
	default:
		recs = append(recs, models.DetailedRecommendation{
			Category:       "Primary Treatment",
			Recommendation: "Consider alternative treatments or combination therapy",
			EvidenceLevel:  "Limited",
			Priority:       "Medium",
		})
	}

	recs = append(recs, models.DetailedRecommendation{
		Category:       "Monitoring",
		Recommendation: "Schedule 6-month follow-ups with axial length measurement",
		EvidenceLevel:  "Moderate",
		Priority:       "Medium",
	})

	if p.ScreenTime > 4 {
		recs = append(recs, models.DetailedRecommendation{
			Category:       "Lifestyle",
			Recommendation: "Reduce screen time and increase outdoor activities",
			EvidenceLevel:  "Strong",
			Priority:       "High",
		})
	}

	return recs
}

// Scenarios returns the best/expected/worst outcome branches around the
// computed probability.
func Scenarios(probability float64) map[string]models.Scenario {
	return map[string]models.Scenario{
		"best_case": {
			Probability:     math.Min(0.95, probability+0.2),
			Description:     "Optimal compliance and lifestyle modifications",
			ExpectedOutcome: "Significant myopia control (>50% reduction in progression)",
		},
		"expected_case": {
			Probability:     probability,
			Description:     "Current patient profile and compliance",
			ExpectedOutcome: "Moderate myopia control (30-50% reduction in progression)",
		},
		"worst_case": {
			Probability:     math.Max(0.1, probability-0.3),
			Description:     "Poor compliance or lifestyle factors",
			ExpectedOutcome: "Limited myopia control (<30% reduction in progression)",
		},
	}
}

// Insights derives short clinical observations from the probability and the
// dominant record features.
func Insights(probability float64, p models.PatientRecord) []string {
	insights := []string{}

	switch {
	case probability > 0.7:
		insights = append(insights, "High probability of treatment success suggests Stellest lens as optimal choice")
	case probability > 0.5:
		insights = append(insights, "Moderate probability suggests careful monitoring and lifestyle modifications")
	default:
		insights = append(insights, "Lower probability suggests considering alternative or combination treatments")
	}

	if p.Age < 12 {
		insights = append(insights, "Young age provides excellent opportunity for myopia control")
	} else if p.Age > 15 {
		insights = append(insights, "Older age may require more aggressive treatment approach")
	}

	if avg := p.AveragePower(); avg < 2 {
		insights = append(insights, "Low myopia severity is associated with better treatment outcomes")
	} else if avg > 4 {
		insights = append(insights, "High myopia severity may require additional interventions")
	}

	return insights
}

// Analyze bundles every analytics view for the record.
func Analyze(probability float64, p models.PatientRecord) models.Analytics {
	return models.Analytics{
		PopulationComparison: PopulationComparison(p),
		RiskProfile:          Profile(p),
		Recommendations:      Recommendations(probability, p),
		Scenarios:            Scenarios(probability),
		ClinicalInsights:     Insights(probability, p),
	}
}
