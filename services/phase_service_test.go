package services

import (
	"testing"

	"github.com/Geraxi/Flight-Fuel-sub000/models"

	"github.com/stretchr/testify/assert"
)

func phaseNames(phases []models.Phase) []string {
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.Name
	}
	return names
}

func TestGeneratePhasePlan_ShortHaul(t *testing.T) {
	svc := NewPhaseService()

	plan := svc.GeneratePhasePlan(7, 45)
	assert.Equal(t, []string{
		"Pre-Duty Fueling",
		"Cruise Operations",
		"Post-Landing Recovery",
		"Rest Period",
	}, phaseNames(plan))
}

func TestGeneratePhasePlan_LongHaul(t *testing.T) {
	svc := NewPhaseService()

	plan := svc.GeneratePhasePlan(9, 15)
	assert.Equal(t, []string{
		"Pre-Duty Fueling",
		"Cruise Operations",
		"Mid-Flight Fuel",
		"Post-Landing Recovery",
		"Rest Period",
	}, phaseNames(plan))
}

func TestGeneratePhasePlan_ThresholdIsExclusive(t *testing.T) {
	svc := NewPhaseService()

	// Exactly eight hours is still short haul, whatever the minutes say.
	assert.Len(t, svc.GeneratePhasePlan(8, 0), 4)
	assert.Len(t, svc.GeneratePhasePlan(8, 59), 4)
	assert.Len(t, svc.GeneratePhasePlan(9, 0), 5)
}

func TestGeneratePhasePlan_EmbedsDuration(t *testing.T) {
	svc := NewPhaseService()

	plan := svc.GeneratePhasePlan(10, 0)
	assert.Contains(t, plan[1].Guidance, "10:00")
}

func TestGenerateDefaultPlan_SharesFixtures(t *testing.T) {
	svc := NewPhaseService()

	defaultPlan := svc.GenerateDefaultPlan()
	flightPlan := svc.GeneratePhasePlan(5, 30)

	assert.Equal(t, phaseNames(flightPlan), phaseNames(defaultPlan))

	// The default plan carries no duration string; everything else matches.
	assert.NotContains(t, defaultPlan[1].Guidance, "05:30")
	assert.Equal(t, flightPlan[0], defaultPlan[0])
	assert.Equal(t, flightPlan[2], defaultPlan[2])
	assert.Equal(t, flightPlan[3], defaultPlan[3])
}

func TestPhases_MacroSplitsSumToHundred(t *testing.T) {
	svc := NewPhaseService()

	for _, p := range svc.GeneratePhasePlan(12, 0) {
		sum := p.MacroSplit.ProteinPct + p.MacroSplit.CarbsPct + p.MacroSplit.FatPct
		assert.Equal(t, 100, sum, "phase %s", p.Name)
		assert.NotEmpty(t, p.FoodOptions, "phase %s", p.Name)
		assert.NotEmpty(t, p.Guidance, "phase %s", p.Name)
		assert.NotEmpty(t, p.TimeLabel, "phase %s", p.Name)
	}
}
