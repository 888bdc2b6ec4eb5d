package services

import "github.com/Geraxi/Flight-Fuel-sub000/models"

// getDefaultFoodTable defines the static nutrition lookup table, macros per
// 100 g. The order matters: the free-text parser resolves ambiguous names by
// first substring match, so more specific entries come before generic ones.
// Note: These are currently hardcoded. A real nutrition database is out of
// scope; this table covers the foods pilots most commonly log.
func getDefaultFoodTable() []models.FoodItem {
	return []models.FoodItem{
		// Proteins
		{Name: "chicken breast", Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6},
		{Name: "chicken", Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6},
		{Name: "turkey", Calories: 135, ProteinG: 29, CarbsG: 0, FatG: 1.7},
		{Name: "beef", Calories: 250, ProteinG: 26, CarbsG: 0, FatG: 15},
		{Name: "steak", Calories: 271, ProteinG: 25, CarbsG: 0, FatG: 19},
		{Name: "pork", Calories: 242, ProteinG: 27, CarbsG: 0, FatG: 14},
		{Name: "salmon", Calories: 208, ProteinG: 20, CarbsG: 0, FatG: 13},
		{Name: "tuna", Calories: 132, ProteinG: 28, CarbsG: 0, FatG: 1.3},
		{Name: "cod", Calories: 82, ProteinG: 18, CarbsG: 0, FatG: 0.7},
		{Name: "prawns", Calories: 99, ProteinG: 24, CarbsG: 0.2, FatG: 0.3},
		{Name: "egg", Calories: 155, ProteinG: 13, CarbsG: 1.1, FatG: 11},
		{Name: "tofu", Calories: 76, ProteinG: 8, CarbsG: 1.9, FatG: 4.8},
		{Name: "greek yogurt", Calories: 59, ProteinG: 10, CarbsG: 3.6, FatG: 0.4},
		{Name: "yogurt", Calories: 61, ProteinG: 3.5, CarbsG: 4.7, FatG: 3.3},
		{Name: "cottage cheese", Calories: 98, ProteinG: 11, CarbsG: 3.4, FatG: 4.3},
		{Name: "protein powder", Calories: 375, ProteinG: 75, CarbsG: 10, FatG: 5},
		{Name: "whey", Calories: 375, ProteinG: 75, CarbsG: 10, FatG: 5},

		// Carbs
		{Name: "cous cous", Calories: 112, ProteinG: 3.8, CarbsG: 23.2, FatG: 0.2},
		{Name: "couscous", Calories: 112, ProteinG: 3.8, CarbsG: 23.2, FatG: 0.2},
		{Name: "brown rice", Calories: 111, ProteinG: 2.6, CarbsG: 23, FatG: 0.9},
		{Name: "rice", Calories: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3},
		{Name: "quinoa", Calories: 120, ProteinG: 4.4, CarbsG: 21.3, FatG: 1.9},
		{Name: "pasta", Calories: 131, ProteinG: 5, CarbsG: 25, FatG: 1.1},
		{Name: "sweet potato", Calories: 86, ProteinG: 1.6, CarbsG: 20, FatG: 0.1},
		{Name: "potato", Calories: 77, ProteinG: 2, CarbsG: 17, FatG: 0.1},
		{Name: "oats", Calories: 389, ProteinG: 16.9, CarbsG: 66, FatG: 6.9},
		{Name: "porridge", Calories: 68, ProteinG: 2.4, CarbsG: 12, FatG: 1.4},
		{Name: "bread", Calories: 265, ProteinG: 9, CarbsG: 49, FatG: 3.2},
		{Name: "bagel", Calories: 250, ProteinG: 10, CarbsG: 49, FatG: 1.5},
		{Name: "tortilla", Calories: 310, ProteinG: 8.5, CarbsG: 52, FatG: 7.5},
		{Name: "noodles", Calories: 138, ProteinG: 4.5, CarbsG: 25, FatG: 2.1},

		// Fruit and vegetables
		{Name: "banana", Calories: 89, ProteinG: 1.1, CarbsG: 23, FatG: 0.3},
		{Name: "apple", Calories: 52, ProteinG: 0.3, CarbsG: 14, FatG: 0.2},
		{Name: "berries", Calories: 57, ProteinG: 0.7, CarbsG: 14, FatG: 0.3},
		{Name: "orange", Calories: 47, ProteinG: 0.9, CarbsG: 12, FatG: 0.1},
		{Name: "avocado", Calories: 160, ProteinG: 2, CarbsG: 9, FatG: 15},
		{Name: "broccoli", Calories: 34, ProteinG: 2.8, CarbsG: 7, FatG: 0.4},
		{Name: "spinach", Calories: 23, ProteinG: 2.9, CarbsG: 3.6, FatG: 0.4},
		{Name: "salad", Calories: 20, ProteinG: 1.2, CarbsG: 3.3, FatG: 0.2},
		{Name: "mixed vegetables", Calories: 65, ProteinG: 2.9, CarbsG: 13, FatG: 0.5},

		// Fats and extras
		{Name: "peanut butter", Calories: 588, ProteinG: 25, CarbsG: 20, FatG: 50},
		{Name: "almonds", Calories: 579, ProteinG: 21, CarbsG: 22, FatG: 50},
		{Name: "nuts", Calories: 607, ProteinG: 20, CarbsG: 21, FatG: 54},
		{Name: "olive oil", Calories: 884, ProteinG: 0, CarbsG: 0, FatG: 100},
		{Name: "butter", Calories: 717, ProteinG: 0.9, CarbsG: 0.1, FatG: 81},
		{Name: "cheese", Calories: 402, ProteinG: 25, CarbsG: 1.3, FatG: 33},
		{Name: "hummus", Calories: 166, ProteinG: 8, CarbsG: 14, FatG: 10},
		{Name: "dark chocolate", Calories: 546, ProteinG: 4.9, CarbsG: 61, FatG: 31},
		{Name: "granola", Calories: 471, ProteinG: 10, CarbsG: 64, FatG: 20},
		{Name: "milk", Calories: 64, ProteinG: 3.4, CarbsG: 4.8, FatG: 3.6},
	}
}
