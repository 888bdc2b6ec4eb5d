package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Geraxi/Flight-Fuel-sub000/models"
)

const (
	// minPlausibleGrams/maxPlausibleGrams bound bare numbers that carry no
	// unit: "200 chicken" reads as grams, "2 eggs" is a count and is ignored.
	minPlausibleGrams = 10
	maxPlausibleGrams = 2000
)

var (
	segmentSplitRe = regexp.MustCompile(`,|\band\b`)
	gramsRe        = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:grams?|g)\b\s*(?:of\s+)?`)
	leadingNumRe   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(.+)$`)
	anyNumRe       = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// NutritionParserService turns free-form meal descriptions like
// "130g cous cous and 200g chicken" into an aggregate macro estimate.
// Parsing is pure and deterministic: no I/O, same text in, same result out.
type NutritionParserService interface {
	CalculateNutritionFromText(text string) models.ParsedNutrition
	FoodTable() []models.FoodItem
}

type nutritionParserService struct {
	// foods is ordered: name resolution is first-match-wins, so iteration
	// order must stay stable.
	foods []models.FoodItem
}

// NewNutritionParserService creates a new instance of NutritionParserService
// backed by the static food table.
func NewNutritionParserService() NutritionParserService {
	return &nutritionParserService{foods: getDefaultFoodTable()}
}

// FoodTable returns the static food table, macros per 100 g.
func (s *nutritionParserService) FoodTable() []models.FoodItem {
	out := make([]models.FoodItem, len(s.foods))
	copy(out, s.foods)
	return out
}

// CalculateNutritionFromText parses text into aggregate macros. A food
// mention only contributes when an explicit weight is recognized; no default
// portion size is ever assumed. Unparseable text yields all-zero, which is a
// legitimate "nothing detected" result rather than an error.
func (s *nutritionParserService) CalculateNutritionFromText(text string) models.ParsedNutrition {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return models.ParsedNutrition{}
	}

	var result models.ParsedNutrition
	matched := false
	for _, segment := range segmentSplitRe.Split(normalized, -1) {
		if s.parseSegment(segment, &result) {
			matched = true
		}
	}

	// Last resort: the delimiters may have chopped a single food description
	// apart. Try the whole string as one segment before giving up.
	if !matched {
		s.parseSegment(normalized, &result)
	}

	result.ProteinG = round1(result.ProteinG)
	result.CarbsG = round1(result.CarbsG)
	result.FatG = round1(result.FatG)
	return result
}

// parseSegment extracts one (weight, food) pair from a segment and
// accumulates its macros into result. Reports whether anything matched.
func (s *nutritionParserService) parseSegment(segment string, result *models.ParsedNutrition) bool {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return false
	}

	grams, foodText, ok := extractWeight(segment)
	if !ok {
		return false
	}

	food := s.resolveFood(foodText)
	if food == nil {
		return false
	}

	multiplier := grams / 100
	result.Calories += int(math.Round(food.Calories * multiplier))
	result.ProteinG += round1(food.ProteinG * multiplier)
	result.CarbsG += round1(food.CarbsG * multiplier)
	result.FatG += round1(food.FatG * multiplier)
	return true
}

// extractWeight pulls a gram weight and the remaining food text out of a
// segment, in priority order: explicit gram unit, bare leading number within
// plausible gram bounds, then any number in the segment within those bounds.
func extractWeight(segment string) (grams float64, foodText string, ok bool) {
	// 1. Explicit unit: "130g cous cous", "200 grams of chicken".
	if loc := gramsRe.FindStringSubmatchIndex(segment); loc != nil {
		n, _ := strconv.ParseFloat(segment[loc[2]:loc[3]], 64)
		rest := strings.TrimSpace(segment[:loc[0]] + " " + segment[loc[1]:])
		if rest != "" {
			return n, rest, true
		}
		return 0, "", false
	}

	// 2. Bare leading number: only plausible gram weights are accepted,
	// counts like "2 eggs" are not converted.
	if m := leadingNumRe.FindStringSubmatch(segment); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		if n >= minPlausibleGrams && n <= maxPlausibleGrams {
			return n, strings.TrimSpace(m[2]), true
		}
	}

	// 3. Fallback: first number anywhere, same bounds, rest of the text is
	// the food name.
	if loc := anyNumRe.FindStringIndex(segment); loc != nil {
		n, _ := strconv.ParseFloat(segment[loc[0]:loc[1]], 64)
		if n >= minPlausibleGrams && n <= maxPlausibleGrams {
			rest := strings.TrimSpace(segment[:loc[0]] + " " + segment[loc[1]:])
			if rest != "" {
				return n, rest, true
			}
		}
	}

	return 0, "", false
}

// resolveFood looks a name up in the food table: exact match first, then
// substring containment in either direction, first match wins.
func (s *nutritionParserService) resolveFood(name string) *models.FoodItem {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range s.foods {
		if s.foods[i].Name == name {
			return &s.foods[i]
		}
	}
	for i := range s.foods {
		if strings.Contains(name, s.foods[i].Name) || strings.Contains(s.foods[i].Name, name) {
			return &s.foods[i]
		}
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
