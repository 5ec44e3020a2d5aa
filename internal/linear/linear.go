// Package linear runs inference for the exported logistic-regression model:
// standardize the feature vector, take the dot product with the trained
// coefficients, and pass the result through a sigmoid. The model file is an
// immutable JSON export loaded once at startup.
package linear

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

// Model mirrors the JSON export produced by the training script: feature
// order, standardization parameters, coefficients, and intercept.
type Model struct {
	FeatureOrder []string           `json:"feature_order"`
	ScalerMean   []float64          `json:"scaler_mean"`
	ScalerScale  []float64          `json:"scaler_scale"`
	Coefficients []float64          `json:"coefficients"`
	Intercept    float64            `json:"intercept"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
	Version      string             `json:"version"`
}

// Load reads and validates a model file.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model file: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Model) validate() error {
	n := len(m.FeatureOrder)
	if n == 0 {
		return fmt.Errorf("model has no features")
	}
	if len(m.ScalerMean) != n || len(m.ScalerScale) != n || len(m.Coefficients) != n {
		return fmt.Errorf("model arrays disagree: %d features, %d means, %d scales, %d coefficients",
			n, len(m.ScalerMean), len(m.ScalerScale), len(m.Coefficients))
	}
	for i, s := range m.ScalerScale {
		if s == 0 {
			return fmt.Errorf("zero scale for feature %s", m.FeatureOrder[i])
		}
	}
	return nil
}

// Predict returns the logistic probability for the record using the trained
// feature order.
func (m *Model) Predict(p models.PatientRecord) (float64, error) {
	z := m.Intercept
	for i, name := range m.FeatureOrder {
		v, err := featureValue(p, name)
		if err != nil {
			return 0, err
		}
		z += m.Coefficients[i] * (v - m.ScalerMean[i]) / m.ScalerScale[i]
	}
	return sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// featureValue maps a trained feature name onto the record. Sphere values
// fall back to the plain per-eye power when no sphere/cylinder split was
// provided; unmeasured optional fields contribute zero.
func featureValue(p models.PatientRecord, name string) (float64, error) {
	switch name {
	case "age":
		return p.Age, nil
	case "age_myopia_diagnosis":
		return p.AgeAtDiagnosis, nil
	case "gender":
		return float64(p.Gender), nil
	case "family_history_myopia":
		return float64(p.FamilyHistory), nil
	case "outdoor_time":
		return p.OutdoorTime, nil
	case "screen_time":
		return p.ScreenTime, nil
	case "previous_myopia_control":
		return float64(p.PreviousTreatment), nil
	case "right_eye_spherical":
		if p.SphereRE != 0 {
			return p.SphereRE, nil
		}
		return p.PowerRE, nil
	case "right_eye_cylinder":
		return p.CylinderRE, nil
	case "left_eye_spherical":
		if p.SphereLE != 0 {
			return p.SphereLE, nil
		}
		return p.PowerLE, nil
	case "left_eye_cylinder":
		return p.CylinderLE, nil
	case "right_eye_axial_length":
		return p.AxialLengthRE, nil
	case "left_eye_axial_length":
		return p.AxialLengthLE, nil
	case "keratometry_k1_re":
		return p.K1RE, nil
	case "keratometry_k2_re":
		return p.K2RE, nil
	case "keratometry_k1_le":
		return p.K1LE, nil
	case "keratometry_k2_le":
		return p.K2LE, nil
	case "new_stellest_lenses":
		// Every request through this service is an evaluation for new
		// Stellest lenses.
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown model feature %q", name)
	}
}
