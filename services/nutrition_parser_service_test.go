package services

import (
	"testing"

	"github.com/Geraxi/Flight-Fuel-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNutritionFromText_ExplicitGrams(t *testing.T) {
	svc := NewNutritionParserService()

	result := svc.CalculateNutritionFromText("130g cous cous and 200g chicken")

	// cous cous: 112 kcal/100g * 1.3 = 145.6 -> 146; chicken: 165 * 2 = 330
	assert.Equal(t, 476, result.Calories)
	assert.InDelta(t, 66.9, result.ProteinG, 0.001) // 4.9 + 62.0
	assert.InDelta(t, 30.2, result.CarbsG, 0.001)   // 30.2 + 0
	assert.InDelta(t, 7.5, result.FatG, 0.001)      // 0.3 + 7.2
}

func TestCalculateNutritionFromText_GramUnitVariants(t *testing.T) {
	svc := NewNutritionParserService()

	// "grams of" phrasing resolves the same as the bare unit.
	withOf := svc.CalculateNutritionFromText("150 grams of rice")
	bare := svc.CalculateNutritionFromText("150g rice")
	assert.Equal(t, withOf, bare)
	assert.Equal(t, 195, withOf.Calories) // 130 * 1.5
}

func TestCalculateNutritionFromText_BareNumberHeuristic(t *testing.T) {
	svc := NewNutritionParserService()

	t.Run("plausible gram weight accepted", func(t *testing.T) {
		result := svc.CalculateNutritionFromText("200 chicken")
		assert.Equal(t, 330, result.Calories)
	})

	t.Run("small counts rejected", func(t *testing.T) {
		// "2" is below the 10-2000 bound: a count, not a weight. No default
		// portion is ever assumed.
		assert.True(t, svc.CalculateNutritionFromText("2 eggs").IsZero())
	})

	t.Run("huge numbers rejected", func(t *testing.T) {
		assert.True(t, svc.CalculateNutritionFromText("5000 rice").IsZero())
	})
}

func TestCalculateNutritionFromText_TrailingNumberFallback(t *testing.T) {
	svc := NewNutritionParserService()

	// Number appears after the food name; the fallback strips it and treats
	// the rest as the name.
	result := svc.CalculateNutritionFromText("chicken 150")
	assert.Equal(t, 248, result.Calories) // 165 * 1.5 = 247.5
}

func TestCalculateNutritionFromText_NoSignal(t *testing.T) {
	svc := NewNutritionParserService()

	assert.True(t, svc.CalculateNutritionFromText("").IsZero())
	assert.True(t, svc.CalculateNutritionFromText("just a big salad").IsZero())
	assert.True(t, svc.CalculateNutritionFromText("100g of unicorn meat").IsZero())
}

func TestCalculateNutritionFromText_SubstringResolution(t *testing.T) {
	svc := NewNutritionParserService()

	// "grilled chicken breast" is not an exact key but contains one.
	result := svc.CalculateNutritionFromText("100g grilled chicken breast")
	assert.Equal(t, 165, result.Calories)
	assert.InDelta(t, 31.0, result.ProteinG, 0.001)
}

func TestCalculateNutritionFromText_MixedSegments(t *testing.T) {
	svc := NewNutritionParserService()

	// The unmatched segment contributes nothing; the matched one still counts.
	result := svc.CalculateNutritionFromText("a handful of spinach, 100g rice")
	assert.Equal(t, 130, result.Calories)
}

func TestCalculateNutritionFromText_Idempotent(t *testing.T) {
	svc := NewNutritionParserService()

	inputs := []string{
		"130g cous cous and 200g chicken",
		"2 eggs",
		"",
		"250g salmon, 150g sweet potato and 50g spinach",
	}
	for _, input := range inputs {
		first := svc.CalculateNutritionFromText(input)
		second := svc.CalculateNutritionFromText(input)
		assert.Equal(t, first, second, "input %q", input)
	}
}

func TestCalculateNutritionFromText_NeverNegative(t *testing.T) {
	svc := NewNutritionParserService()

	inputs := []string{"100g chicken", "15 rice", "nothing here", "0g rice"}
	for _, input := range inputs {
		result := svc.CalculateNutritionFromText(input)
		assert.GreaterOrEqual(t, result.Calories, 0)
		assert.GreaterOrEqual(t, result.ProteinG, 0.0)
		assert.GreaterOrEqual(t, result.CarbsG, 0.0)
		assert.GreaterOrEqual(t, result.FatG, 0.0)
	}
}

func TestFoodTable_StableOrderAndCopy(t *testing.T) {
	svc := NewNutritionParserService()

	table := svc.FoodTable()
	assert.NotEmpty(t, table)

	// Mutating the returned slice must not affect resolution.
	table[0] = models.FoodItem{Name: "mutated"}
	result := svc.CalculateNutritionFromText("100g " + getDefaultFoodTable()[0].Name)
	assert.Equal(t, int(getDefaultFoodTable()[0].Calories), result.Calories)
}
