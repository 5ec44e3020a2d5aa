// Package progression projects myopia progression with and without lens
// treatment. Everything is closed-form: an age-banded base annual rate,
// scaled by an environmental modifier, reduced by the treatment
// effectiveness factor.
package progression

import (
	"math"

	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

// Environmental modifier bounds. The modifier starts at 1.0 and moves by
// additive lifestyle penalties/relief before clamping.
const (
	minModifier = 0.7
	maxModifier = 1.5
)

// MaxEffectiveness caps the treatment effect; no compliance profile gets
// credited with more than a 70% reduction in progression.
const MaxEffectiveness = 0.70

// rates holds the annual progression rates for one age band: spherical
// equivalent in D/year, axial length in mm/year, keratometry in D/year.
type rates struct {
	se    float64
	axial float64
	kerat float64
}

// baseRates returns the untreated annual progression for the age band.
// Younger eyes progress faster.
func baseRates(age float64) rates {
	switch {
	case age < 10:
		return rates{se: 0.80, axial: 0.35, kerat: 0.10}
	case age < 13:
		return rates{se: 0.60, axial: 0.25, kerat: 0.08}
	case age < 16:
		return rates{se: 0.40, axial: 0.18, kerat: 0.05}
	default:
		return rates{se: 0.25, axial: 0.10, kerat: 0.03}
	}
}

// environmentalModifier scales the base rate for lifestyle and hereditary
// risk. Penalties accumulate additively; generous outdoor time gives relief.
func environmentalModifier(p models.PatientRecord) float64 {
	m := 1.0
	if p.ScreenTime > 6 {
		m += 0.15
	}
	if p.OutdoorTime < 1 {
		m += 0.10
	}
	if p.FamilyHistory == 1 {
		m += 0.10
	}
	if p.OutdoorTime >= 2 {
		m -= 0.10
	}
	return math.Max(minModifier, math.Min(maxModifier, m))
}

// Effectiveness returns the fraction of progression the treatment is
// expected to prevent. Younger patients respond better; good compliance
// (wearing time, outdoor time, limited screens, prior treatment experience)
// adds a boost, capped at MaxEffectiveness.
func Effectiveness(p models.PatientRecord) float64 {
	var e float64
	switch {
	case p.Age < 10:
		e = 0.60
	case p.Age < 13:
		e = 0.55
	case p.Age < 16:
		e = 0.45
	default:
		e = 0.35
	}

	switch {
	case p.WearingTime >= 14:
		e += 0.08
	case p.WearingTime >= 12:
		e += 0.05
	}
	if p.OutdoorTime >= 2 {
		e += 0.03
	}
	if p.ScreenTime < 3 {
		e += 0.03
	}
	if p.PreviousTreatment == 1 {
		e += 0.02
	}

	return math.Min(MaxEffectiveness, e)
}

// Project computes the treated and untreated annual rates and the 1-year and
// 2-year per-eye projections. Spherical equivalents grow more negative;
// axial lengths grow longer.
func Project(p models.PatientRecord) models.Projection {
	base := baseRates(p.Age)
	mod := environmentalModifier(p)
	eff := Effectiveness(p)

	untreatedSE := base.se * mod
	untreatedAxial := base.axial * mod
	treatedSE := untreatedSE * (1 - eff)
	treatedAxial := untreatedAxial * (1 - eff)
	treatedKerat := base.kerat * mod * (1 - eff)

	project := func(se, axial float64) models.EyeProjection {
		return models.EyeProjection{
			SphericalEquivalent1Y: se - treatedSE,
			SphericalEquivalent2Y: se - 2*treatedSE,
			AxialLength1Y:         axial + treatedAxial,
			AxialLength2Y:         axial + 2*treatedAxial,
		}
	}

	return models.Projection{
		UntreatedSERate:        untreatedSE,
		UntreatedAxialRate:     untreatedAxial,
		TreatedSERate:          treatedSE,
		TreatedAxialRate:       treatedAxial,
		KeratometryRate:        treatedKerat,
		EnvironmentalModifier:  mod,
		TreatmentEffectiveness: eff,
		RightEye:               project(p.SphericalEquivalentRE(), p.AxialLengthRE),
		LeftEye:                project(p.SphericalEquivalentLE(), p.AxialLengthLE),
		PreventedSE2Y:          2 * (untreatedSE - treatedSE),
		PreventedAxial2Y:       2 * (untreatedAxial - treatedAxial),
	}
}
