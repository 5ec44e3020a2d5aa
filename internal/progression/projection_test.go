package progression

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

func TestEffectivenessAgeBands(t *testing.T) {
	tests := []struct {
		age  float64
		want float64
	}{
		{8, 0.60 + 0.08},  // wearing 14 boost
		{12, 0.55 + 0.08},
		{14, 0.45 + 0.08},
		{17, 0.35 + 0.08},
	}
	for _, tt := range tests {
		p := patient()
		p.Age = tt.age
		assert.InDelta(t, tt.want, Effectiveness(p), 1e-9, "age %v", tt.age)
	}
}

func TestEffectivenessCapped(t *testing.T) {
	p := patient()
	p.Age = 8
	p.OutdoorTime = 3
	p.ScreenTime = 1
	p.PreviousTreatment = 1
	p.WearingTime = 16
	// 0.60 + 0.08 + 0.03 + 0.03 + 0.02 = 0.76, capped
	assert.InDelta(t, MaxEffectiveness, Effectiveness(p), 1e-9)
}

func TestEffectivenessComplianceBoosts(t *testing.T) {
	low := patient()
	low.WearingTime = 10
	mid := patient()
	mid.WearingTime = 12
	high := patient()
	high.WearingTime = 14
	assert.Less(t, Effectiveness(low), Effectiveness(mid))
	assert.Less(t, Effectiveness(mid), Effectiveness(high))
}

func TestEnvironmentalModifier(t *testing.T) {
	p := patient() // family history only
	proj := Project(p)
	assert.InDelta(t, 1.10, proj.EnvironmentalModifier, 1e-9)

	p.ScreenTime = 8
	p.OutdoorTime = 0.5
	proj = Project(p)
	// 1.0 + 0.15 + 0.10 + 0.10
	assert.InDelta(t, 1.35, proj.EnvironmentalModifier, 1e-9)

	p.FamilyHistory = 0
	p.ScreenTime = 2
	p.OutdoorTime = 3
	proj = Project(p)
	assert.InDelta(t, 0.90, proj.EnvironmentalModifier, 1e-9)
}

func TestProjectTreatedBelowUntreated(t *testing.T) {
	proj := Project(patient())
	assert.Less(t, proj.TreatedSERate, proj.UntreatedSERate)
	assert.Less(t, proj.TreatedAxialRate, proj.UntreatedAxialRate)
	assert.Positive(t, proj.PreventedSE2Y)
	assert.Positive(t, proj.PreventedAxial2Y)
}

func TestProjectEyeValues(t *testing.T) {
	p := patient()
	proj := Project(p)

	// SE grows more negative, axial length grows longer.
	assert.Less(t, proj.RightEye.SphericalEquivalent1Y, p.PowerRE)
	assert.Less(t, proj.RightEye.SphericalEquivalent2Y, proj.RightEye.SphericalEquivalent1Y)
	assert.Greater(t, proj.LeftEye.AxialLength1Y, p.AxialLengthLE)
	assert.Greater(t, proj.LeftEye.AxialLength2Y, proj.LeftEye.AxialLength1Y)

	// Two-year change is exactly twice the annual treated rate.
	assert.InDelta(t, p.AxialLengthRE+2*proj.TreatedAxialRate, proj.RightEye.AxialLength2Y, 1e-9)
	assert.InDelta(t, p.PowerRE-2*proj.TreatedSERate, proj.RightEye.SphericalEquivalent2Y, 1e-9)
}

func TestProjectWorkedNumbers(t *testing.T) {
	p := patient()
	proj := Project(p)

	// Age 12 band: base SE 0.60 D/yr; modifier 1.10 (family history);
	// effectiveness 0.55 + 0.08 (wearing >= 14) = 0.63.
	assert.InDelta(t, 0.66, proj.UntreatedSERate, 1e-9)
	assert.InDelta(t, 0.63, proj.TreatmentEffectiveness, 1e-9)
	assert.InDelta(t, 0.66*0.37, proj.TreatedSERate, 1e-9)
	assert.InDelta(t, 2*(0.66-0.66*0.37), proj.PreventedSE2Y, 1e-9)
}

func TestProjectUsesSphericalEquivalentSplit(t *testing.T) {
	p := patient()
	p.SphereRE = -3.0
	p.CylinderRE = -1.0
	proj := Project(p)
	// SE = -3.0 + (-1.0)/2 = -3.5 as the starting point
	assert.InDelta(t, -3.5-proj.TreatedSERate, proj.RightEye.SphericalEquivalent1Y, 1e-9)
}
