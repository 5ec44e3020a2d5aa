package models

import (
	"math"
	"time"
)

// Gender codes as used in the intake form.
const (
	GenderMale   = 1
	GenderFemale = 2
)

// PatientRecord is the flat clinical record a prediction is computed from.
// Refractive powers are in diopters (negative for myopia), axial lengths in
// millimeters, time fields in hours per day. The record is immutable once
// received; nothing is persisted beyond an optional audit row.
type PatientRecord struct {
	PatientName       string  `json:"patient_name" binding:"required,min=1,max=100"`
	Age               float64 `json:"age" binding:"required,gte=4,lte=25"`
	AgeAtDiagnosis    float64 `json:"age_myopia_diagnosis" binding:"required,gte=2,lte=20"`
	Gender            int     `json:"gender" binding:"required,oneof=1 2"`
	FamilyHistory     int     `json:"family_history_myopia" binding:"oneof=0 1"`
	OutdoorTime       float64 `json:"outdoor_time" binding:"gte=0,lte=12"`
	ScreenTime        float64 `json:"screen_time" binding:"gte=0,lte=16"`
	PreviousTreatment int     `json:"previous_myopia_control" binding:"oneof=0 1"`
	PowerRE           float64 `json:"initial_power_re" binding:"lte=0"`
	PowerLE           float64 `json:"initial_power_le" binding:"lte=0"`
	AxialLengthRE     float64 `json:"initial_axial_length_re" binding:"required,gte=20,lte=30"`
	AxialLengthLE     float64 `json:"initial_axial_length_le" binding:"required,gte=20,lte=30"`
	WearingTime       float64 `json:"stellest_wearing_time" binding:"required,gte=8,lte=18"`

	// Optional refinement of the per-eye power into sphere/cylinder
	// components. When present, spherical equivalents are derived from
	// these instead of the plain powers.
	SphereRE   float64 `json:"right_eye_spherical,omitempty"`
	CylinderRE float64 `json:"right_eye_cylinder,omitempty"`
	SphereLE   float64 `json:"left_eye_spherical,omitempty"`
	CylinderLE float64 `json:"left_eye_cylinder,omitempty"`

	// Optional keratometry readings (diopters).
	K1RE float64 `json:"keratometry_k1_re,omitempty"`
	K2RE float64 `json:"keratometry_k2_re,omitempty"`
	K1LE float64 `json:"keratometry_k1_le,omitempty"`
	K2LE float64 `json:"keratometry_k2_le,omitempty"`
}

// AveragePower returns the mean of the absolute per-eye refractive powers.
func (p PatientRecord) AveragePower() float64 {
	return (math.Abs(p.PowerRE) + math.Abs(p.PowerLE)) / 2
}

// AverageAxialLength returns the mean per-eye axial length in mm.
func (p PatientRecord) AverageAxialLength() float64 {
	return (p.AxialLengthRE + p.AxialLengthLE) / 2
}

// MyopiaDuration returns years since diagnosis, never negative.
func (p PatientRecord) MyopiaDuration() float64 {
	d := p.Age - p.AgeAtDiagnosis
	if d < 0 {
		return 0
	}
	return d
}

// SphericalEquivalentRE returns sphere + cylinder/2 for the right eye,
// falling back to the plain power when no sphere/cylinder split was given.
func (p PatientRecord) SphericalEquivalentRE() float64 {
	if p.SphereRE != 0 || p.CylinderRE != 0 {
		return p.SphereRE + p.CylinderRE/2
	}
	return p.PowerRE
}

// SphericalEquivalentLE is the left-eye counterpart of SphericalEquivalentRE.
func (p PatientRecord) SphericalEquivalentLE() float64 {
	if p.SphereLE != 0 || p.CylinderLE != 0 {
		return p.SphereLE + p.CylinderLE/2
	}
	return p.PowerLE
}

// AverageKeratometry returns the mean of all provided K readings, or 0 when
// keratometry was not measured.
func (p PatientRecord) AverageKeratometry() float64 {
	sum, n := 0.0, 0
	for _, k := range []float64{p.K1RE, p.K2RE, p.K1LE, p.K2LE} {
		if k != 0 {
			sum += k
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// RiskFactors groups the heuristic factor labels derived from the record.
type RiskFactors struct {
	HighRisk   []string `json:"high_risk"`
	MediumRisk []string `json:"medium_risk"`
	Protective []string `json:"protective"`
}

// Prediction is a probability with its derived benefit flag and confidence
// tier (High/Medium/Low by distance from 0.5).
type Prediction struct {
	WillBenefit bool    `json:"will_benefit"`
	Probability float64 `json:"probability"`
	Confidence  string  `json:"confidence"`
}

// ModelVote is one display-only entry of the pseudo-ensemble. The
// probability carries cosmetic per-model noise and is not part of any
// scoring contract; the authoritative number is the ensemble prediction.
type ModelVote struct {
	Probability float64 `json:"probability"`
	Prediction  int     `json:"prediction"`
	Confidence  string  `json:"confidence"`
}

// EyeProjection holds projected per-eye values at the 1 and 2 year marks.
type EyeProjection struct {
	SphericalEquivalent1Y float64 `json:"spherical_equivalent_1y"`
	SphericalEquivalent2Y float64 `json:"spherical_equivalent_2y"`
	AxialLength1Y         float64 `json:"axial_length_1y"`
	AxialLength2Y         float64 `json:"axial_length_2y"`
}

// Projection is the closed-form progression forecast: age-banded base rates,
// scaled by the environmental modifier and reduced by treatment
// effectiveness. Prevented values compare treated against the untreated
// baseline over two years.
type Projection struct {
	UntreatedSERate        float64       `json:"untreated_se_rate"`
	UntreatedAxialRate     float64       `json:"untreated_axial_rate"`
	TreatedSERate          float64       `json:"treated_se_rate"`
	TreatedAxialRate       float64       `json:"treated_axial_rate"`
	KeratometryRate        float64       `json:"keratometry_rate"`
	EnvironmentalModifier  float64       `json:"environmental_modifier"`
	TreatmentEffectiveness float64       `json:"treatment_effectiveness"`
	RightEye               EyeProjection `json:"right_eye"`
	LeftEye                EyeProjection `json:"left_eye"`
	PreventedSE2Y          float64       `json:"prevented_se_2y"`
	PreventedAxial2Y       float64       `json:"prevented_axial_2y"`
}

// Visit is one row of the monitoring schedule.
type Visit struct {
	When  string `json:"when"`
	Focus string `json:"focus"`
}

// FieldComparison positions one patient value against the reference
// population.
type FieldComparison struct {
	Value          float64 `json:"value"`
	PopulationMean float64 `json:"population_mean"`
	Percentile     float64 `json:"percentile"`
	Interpretation string  `json:"interpretation"`
}

// RiskProfile is the integer-scored risk summary.
type RiskProfile struct {
	RiskScore         int      `json:"risk_score"`
	Category          string   `json:"risk_category"`
	RiskFactors       []string `json:"risk_factors"`
	ProtectiveFactors []string `json:"protective_factors"`
}

// Scenario describes one branch of the outcome analysis.
type Scenario struct {
	Probability     float64 `json:"probability"`
	Description     string  `json:"description"`
	ExpectedOutcome string  `json:"expected_outcome"`
}

// DetailedRecommendation is one prioritized clinical recommendation.
type DetailedRecommendation struct {
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
	EvidenceLevel  string `json:"evidence_level"`
	Priority       string `json:"priority"`
}

// Analytics bundles the population comparison, risk profile, and outcome
// scenarios computed alongside the prediction.
type Analytics struct {
	PopulationComparison map[string]FieldComparison `json:"population_comparison"`
	RiskProfile          RiskProfile                `json:"risk_profile"`
	Recommendations      []DetailedRecommendation   `json:"detailed_recommendations"`
	Scenarios            map[string]Scenario        `json:"outcome_scenarios"`
	ClinicalInsights     []string                   `json:"clinical_insights"`
}

// PredictionResult is the full response for one prediction request.
type PredictionResult struct {
	PatientName        string               `json:"patient_name"`
	Ensemble           Prediction           `json:"ensemble_prediction"`
	IndividualModels   map[string]ModelVote `json:"individual_models,omitempty"`
	LinearModel        *Prediction          `json:"linear_model,omitempty"`
	RiskFactors        RiskFactors          `json:"risk_factors"`
	Recommendation     string               `json:"recommendation"`
	LifestyleAdvice    []string             `json:"lifestyle_advice"`
	MonitoringSchedule []Visit              `json:"monitoring_schedule"`
	Progression        Projection           `json:"progression"`
	Analytics          Analytics            `json:"analytics"`
	PatientID          string               `json:"patient_id"`
	Timestamp          time.Time            `json:"timestamp"`
	ProcessingTime     float64              `json:"processing_time"`
}

// StoredPrediction is the audit-log view of a past prediction.
type StoredPrediction struct {
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	Probability float64   `json:"probability"`
	WillBenefit bool      `json:"will_benefit"`
	Confidence  string    `json:"confidence"`
	CreatedAt   time.Time `json:"created_at"`
}
