// Package risk derives heuristic risk-factor labels from a patient record.
// The labels are recomputed per request from a single decision table so the
// thresholds cannot drift from the documented rule set.
package risk

import "github.com/Gokulakrishnxn/Stellest-AI/models"

type tier int

const (
	high tier = iota
	medium
	protective
)

// entry maps one threshold condition to its label and tier. Entries are
// independent; every matching entry contributes its label.
type entry struct {
	tier  tier
	label string
	when  func(p models.PatientRecord) bool
}

var table = []entry{
	// Age
	{high, "Advanced age (>15 years)",
		func(p models.PatientRecord) bool { return p.Age > 15 }},
	{protective, "Optimal age for myopia control",
		func(p models.PatientRecord) bool { return p.Age < 12 }},

	// Myopia severity
	{high, "High myopia (>4D)",
		func(p models.PatientRecord) bool { return p.AveragePower() > 4 }},
	{protective, "Low myopia has better prognosis",
		func(p models.PatientRecord) bool { return p.AveragePower() < 2 }},

	// Screen time
	{high, "Excessive screen time (>6 hours/day)",
		func(p models.PatientRecord) bool { return p.ScreenTime > 6 }},
	{medium, "High screen time (3-6 hours/day)",
		func(p models.PatientRecord) bool { return p.ScreenTime > 3 && p.ScreenTime <= 6 }},

	// Outdoor time
	{protective, "Good outdoor time (≥2 hours/day)",
		func(p models.PatientRecord) bool { return p.OutdoorTime >= 2 }},
	{medium, "Limited outdoor time (<1 hour/day)",
		func(p models.PatientRecord) bool { return p.OutdoorTime < 1 }},

	// Family history
	{medium, "Family history of myopia",
		func(p models.PatientRecord) bool { return p.FamilyHistory == 1 }},

	// Compliance potential
	{protective, "Good compliance potential (≥12 hours/day)",
		func(p models.PatientRecord) bool { return p.WearingTime >= 12 }},
	{medium, "Limited compliance potential (<10 hours/day)",
		func(p models.PatientRecord) bool { return p.WearingTime < 10 }},
}

// Analyze evaluates the full decision table against the record. The returned
// slices are never nil so the JSON encoding is always three arrays.
func Analyze(p models.PatientRecord) models.RiskFactors {
	rf := models.RiskFactors{
		HighRisk:   []string{},
		MediumRisk: []string{},
		Protective: []string{},
	}
	for _, e := range table {
		if !e.when(p) {
			continue
		}
		switch e.tier {
		case high:
			rf.HighRisk = append(rf.HighRisk, e.label)
		case medium:
			rf.MediumRisk = append(rf.MediumRisk, e.label)
		case protective:
			rf.Protective = append(rf.Protective, e.label)
		}
	}
	return rf
}
