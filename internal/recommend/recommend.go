// Package recommend maps the computed probability and risk profile to the
// clinical recommendation text, lifestyle advice, and monitoring schedule.
// Each mapping is an ordered decision table over probability thresholds.
package recommend

import "github.com/Gokulakrishnxn/Stellest-AI/models"

// ladder is the probability-ordered recommendation table; the first row
// whose threshold the probability exceeds wins.
var ladder = []struct {
	above float64
	text  string
}{
	{0.7, "Highly recommended for Stellest lens treatment. Patient shows excellent potential for successful myopia control."},
	{0.5, "Recommended for Stellest lens treatment with close monitoring. Consider lifestyle modifications to improve outcomes."},
	{0.3, "Consider Stellest lens treatment with additional interventions. Monitor closely and adjust treatment as needed."},
	{-1, "Alternative treatments may be more suitable. Consider other myopia control options or combination therapy."},
}

// Recommendation returns the ladder text plus targeted add-ons for the
// modifiable factors in the record.
func Recommendation(probability float64, p models.PatientRecord, rf models.RiskFactors) string {
	var text string
	for _, row := range ladder {
		if probability > row.above {
			text = row.text
			break
		}
	}

	if len(rf.HighRisk) > 2 {
		text += " Address high-risk factors before treatment."
	}
	if p.OutdoorTime < 1 {
		text += " Increase outdoor activities to ≥2 hours/day."
	}
	if p.ScreenTime > 6 {
		text += " Implement screen time restrictions."
	}
	if p.WearingTime < 10 {
		text += " Ensure proper lens wearing schedule (12-16 hours/day)."
	}
	return text
}

// LifestyleAdvice lists the actionable lifestyle changes for the record.
func LifestyleAdvice(p models.PatientRecord) []string {
	advice := []string{}
	if p.OutdoorTime < 2 {
		advice = append(advice, "Increase outdoor time to at least 2 hours per day")
	}
	if p.ScreenTime > 3 {
		advice = append(advice, "Reduce recreational screen time and take regular near-work breaks")
	}
	if p.WearingTime < 12 {
		advice = append(advice, "Build up to 12-16 hours of daily lens wear")
	}
	if len(advice) == 0 {
		advice = append(advice, "Maintain current outdoor and screen habits")
	}
	return advice
}

// MonitoringSchedule returns the follow-up plan. Low probability or an
// accumulation of high-risk factors tightens the long-term interval from
// six months to three.
func MonitoringSchedule(probability float64, rf models.RiskFactors) []models.Visit {
	interval := "Every 6 months"
	if probability <= 0.5 || len(rf.HighRisk) > 2 {
		interval = "Every 3 months"
	}
	return []models.Visit{
		{When: "Week 1-2", Focus: "Initial fitting and comfort assessment"},
		{When: "Month 1", Focus: "Visual acuity and comfort evaluation"},
		{When: "Month 3", Focus: "Comprehensive examination with axial length measurement"},
		{When: "Month 6", Focus: "Full assessment including progression analysis"},
		{When: interval, Focus: "Ongoing monitoring and treatment adjustment"},
	}
}
