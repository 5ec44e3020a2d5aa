package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

func neutralPatient() models.PatientRecord {
	// Sits between every threshold: no label should fire except the
	// wearing-time one, which has no neutral zone above 12.
	return models.PatientRecord{
		Age:           13,
		OutdoorTime:   1.5,
		ScreenTime:    3.0,
		PowerRE:       -3.0,
		PowerLE:       -3.0,
		AxialLengthRE: 24.0,
		AxialLengthLE: 24.0,
		WearingTime:   11.0,
	}
}

func TestAnalyzeNeutralPatient(t *testing.T) {
	rf := Analyze(neutralPatient())
	assert.Empty(t, rf.HighRisk)
	assert.Empty(t, rf.MediumRisk)
	assert.Empty(t, rf.Protective)
}

func TestAnalyzeLabels(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.PatientRecord)
		wantHigh   []string
		wantMedium []string
		wantProt   []string
	}{
		{
			name:     "advanced age",
			mutate:   func(p *models.PatientRecord) { p.Age = 16 },
			wantHigh: []string{"Advanced age (>15 years)"},
		},
		{
			name:     "age 15 is not advanced",
			mutate:   func(p *models.PatientRecord) { p.Age = 15 },
			wantHigh: []string{},
		},
		{
			name:     "optimal age",
			mutate:   func(p *models.PatientRecord) { p.Age = 11 },
			wantProt: []string{"Optimal age for myopia control"},
		},
		{
			name:     "high myopia",
			mutate:   func(p *models.PatientRecord) { p.PowerRE, p.PowerLE = -4.5, -4.5 },
			wantHigh: []string{"High myopia (>4D)"},
		},
		{
			name:     "low myopia protective",
			mutate:   func(p *models.PatientRecord) { p.PowerRE, p.PowerLE = -1.5, -1.5 },
			wantProt: []string{"Low myopia has better prognosis"},
		},
		{
			name:     "excessive screen time",
			mutate:   func(p *models.PatientRecord) { p.ScreenTime = 7 },
			wantHigh: []string{"Excessive screen time (>6 hours/day)"},
		},
		{
			name:       "high screen time band",
			mutate:     func(p *models.PatientRecord) { p.ScreenTime = 4 },
			wantMedium: []string{"High screen time (3-6 hours/day)"},
		},
		{
			name:       "screen time exactly 6 stays in medium band",
			mutate:     func(p *models.PatientRecord) { p.ScreenTime = 6 },
			wantMedium: []string{"High screen time (3-6 hours/day)"},
		},
		{
			name:     "good outdoor time",
			mutate:   func(p *models.PatientRecord) { p.OutdoorTime = 2 },
			wantProt: []string{"Good outdoor time (≥2 hours/day)"},
		},
		{
			name:       "limited outdoor time",
			mutate:     func(p *models.PatientRecord) { p.OutdoorTime = 0.5 },
			wantMedium: []string{"Limited outdoor time (<1 hour/day)"},
		},
		{
			name:       "family history",
			mutate:     func(p *models.PatientRecord) { p.FamilyHistory = 1 },
			wantMedium: []string{"Family history of myopia"},
		},
		{
			name:     "good compliance",
			mutate:   func(p *models.PatientRecord) { p.WearingTime = 12 },
			wantProt: []string{"Good compliance potential (≥12 hours/day)"},
		},
		{
			name:       "limited compliance",
			mutate:     func(p *models.PatientRecord) { p.WearingTime = 9 },
			wantMedium: []string{"Limited compliance potential (<10 hours/day)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := neutralPatient()
			tt.mutate(&p)
			rf := Analyze(p)
			if tt.wantHigh != nil {
				assert.Equal(t, tt.wantHigh, rf.HighRisk)
			}
			if tt.wantMedium != nil {
				assert.Equal(t, tt.wantMedium, rf.MediumRisk)
			}
			if tt.wantProt != nil {
				assert.Equal(t, tt.wantProt, rf.Protective)
			}
		})
	}
}

func TestAnalyzeCombinedProfile(t *testing.T) {
	p := models.PatientRecord{
		Age:           16,
		FamilyHistory: 1,
		OutdoorTime:   0.5,
		ScreenTime:    8,
		PowerRE:       -5,
		PowerLE:       -5,
		WearingTime:   9,
	}
	rf := Analyze(p)
	assert.Len(t, rf.HighRisk, 3)
	assert.Len(t, rf.MediumRisk, 3)
	assert.Empty(t, rf.Protective)
}
