package services

import (
	"fmt"

	"github.com/Geraxi/Flight-Fuel-sub000/models"
)

// longHaulThresholdHours is the flight length above which an extra mid-flight
// fuelling phase is inserted.
const longHaulThresholdHours = 8

// PhaseService builds the ordered feeding-phase plan for a duty day. Phase
// content is static; only the extra long-haul phase and the embedded
// duration string vary per flight.
type PhaseService interface {
	GeneratePhasePlan(hours, minutes int) []models.Phase
	GenerateDefaultPlan() []models.Phase
}

type phaseService struct{}

// NewPhaseService creates a new instance of PhaseService.
func NewPhaseService() PhaseService {
	return &phaseService{}
}

// GeneratePhasePlan returns the phase sequence for a flight of the given
// estimated duration. Flights longer than eight hours get a fifth
// "Mid-Flight Fuel" phase between cruise and landing.
func (s *phaseService) GeneratePhasePlan(hours, minutes int) []models.Phase {
	duration := fmt.Sprintf("%02d:%02d", hours, minutes)

	plan := []models.Phase{
		preDutyPhase(),
		cruisePhase(fmt.Sprintf("Estimated flight time %s. ", duration)),
	}
	if hours > longHaulThresholdHours {
		plan = append(plan, midFlightPhase())
	}
	plan = append(plan, postLandingPhase(), restPhase())
	return plan
}

// GenerateDefaultPlan returns the duration-agnostic daily plan shown when no
// flight is being calculated. It shares the same phase fixtures.
func (s *phaseService) GenerateDefaultPlan() []models.Phase {
	return []models.Phase{
		preDutyPhase(),
		cruisePhase(""),
		postLandingPhase(),
		restPhase(),
	}
}

func preDutyPhase() models.Phase {
	return models.Phase{
		TimeLabel: "2-3h before duty",
		Name:      "Pre-Duty Fueling",
		Guidance:  "Eat a slow-digesting meal built around lean protein and complex carbs. Hydrate early: cabin air will dehydrate you faster than you notice.",
		MacroSplit: models.MacroSplit{
			ProteinPct: 30,
			CarbsPct:   45,
			FatPct:     25,
		},
		FoodOptions: []string{
			"Oats with greek yogurt and berries",
			"Eggs on wholegrain toast with avocado",
			"Chicken and quinoa bowl",
		},
	}
}

func cruisePhase(durationNote string) models.Phase {
	return models.Phase{
		TimeLabel: "In cruise",
		Name:      "Cruise Operations",
		Guidance:  durationNote + "Keep intake light and frequent. Avoid heavy refined-carb crew meals that spike and crash blood sugar at altitude.",
		MacroSplit: models.MacroSplit{
			ProteinPct: 35,
			CarbsPct:   35,
			FatPct:     30,
		},
		FoodOptions: []string{
			"Nuts and a banana",
			"Tuna wrap",
			"Cottage cheese pot with fruit",
		},
	}
}

func midFlightPhase() models.Phase {
	return models.Phase{
		TimeLabel: "Mid-flight",
		Name:      "Mid-Flight Fuel",
		Guidance:  "Long-haul sector: take a proper second meal around the halfway point to keep decision-making sharp through descent and approach.",
		MacroSplit: models.MacroSplit{
			ProteinPct: 30,
			CarbsPct:   40,
			FatPct:     30,
		},
		FoodOptions: []string{
			"Chicken and rice crew meal",
			"Salmon salad with couscous",
			"Turkey sandwich on wholegrain",
		},
	}
}

func postLandingPhase() models.Phase {
	return models.Phase{
		TimeLabel: "0-2h after landing",
		Name:      "Post-Landing Recovery",
		Guidance:  "Refuel with protein and carbs to recover from the duty period. Rehydrate aggressively before considering caffeine or alcohol.",
		MacroSplit: models.MacroSplit{
			ProteinPct: 40,
			CarbsPct:   40,
			FatPct:     20,
		},
		FoodOptions: []string{
			"Protein shake and a banana",
			"Steak with sweet potato",
			"Tofu stir-fry with noodles",
		},
	}
}

func restPhase() models.Phase {
	return models.Phase{
		TimeLabel: "Evening / rest",
		Name:      "Rest Period",
		Guidance:  "Light, early dinner to protect sleep quality. Prioritize foods that support overnight recovery and avoid eating within two hours of sleep.",
		MacroSplit: models.MacroSplit{
			ProteinPct: 35,
			CarbsPct:   25,
			FatPct:     40,
		},
		FoodOptions: []string{
			"Greek yogurt with almonds",
			"Cod with mixed vegetables",
			"Cottage cheese with berries",
		},
	}
}
