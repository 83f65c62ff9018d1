package services

import "github.com/abeercodezyra-ops/Nutrivision-AI/models"

type foodRecord struct {
	name    string
	profile models.NutrientProfile
}

// foodRecords is the nutrient reference table, all values per 100g. The
// slice order is semantic: partial-name matching scans it top to bottom and
// the first match wins, so more specific entries must precede the broader
// ones they overlap with.
var foodRecords = []foodRecord{
	// Proteins
	{"chicken", models.NutrientProfile{Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Fiber: 0, Sodium: 74, VitaminC: 0, Iron: 0.9}},
	{"chicken breast", models.NutrientProfile{Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Fiber: 0, Sodium: 74, VitaminC: 0, Iron: 0.9}},
	{"grilled chicken", models.NutrientProfile{Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Fiber: 0, Sodium: 74, VitaminC: 0, Iron: 0.9}},
	{"fish", models.NutrientProfile{Calories: 206, Protein: 22, Carbs: 0, Fats: 12, Fiber: 0, Sodium: 61, VitaminC: 0, Iron: 0.8}},
	{"salmon", models.NutrientProfile{Calories: 208, Protein: 20, Carbs: 0, Fats: 13, Fiber: 0, Sodium: 44, VitaminC: 0, Iron: 0.8}},
	{"egg", models.NutrientProfile{Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11, Fiber: 0, Sodium: 124, VitaminC: 0, Iron: 1.2}},
	{"eggs", models.NutrientProfile{Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11, Fiber: 0, Sodium: 124, VitaminC: 0, Iron: 1.2}},
	{"paneer", models.NutrientProfile{Calories: 265, Protein: 18, Carbs: 1.2, Fats: 20, Fiber: 0, Sodium: 15, VitaminC: 0, Iron: 0.2}},
	{"tofu", models.NutrientProfile{Calories: 76, Protein: 8, Carbs: 1.9, Fats: 4.8, Fiber: 0.3, Sodium: 7, VitaminC: 0, Iron: 1.1}},

	// Grains
	{"rice", models.NutrientProfile{Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3, Fiber: 0.4, Sodium: 1, VitaminC: 0, Iron: 0.8}},
	{"biryani", models.NutrientProfile{Calories: 250, Protein: 8, Carbs: 35, Fats: 8, Fiber: 1, Sodium: 500, VitaminC: 2, Iron: 1.5}},
	{"roti", models.NutrientProfile{Calories: 297, Protein: 9, Carbs: 46, Fats: 9, Fiber: 2.7, Sodium: 536, VitaminC: 0, Iron: 2.9}},
	{"chapati", models.NutrientProfile{Calories: 297, Protein: 9, Carbs: 46, Fats: 9, Fiber: 2.7, Sodium: 536, VitaminC: 0, Iron: 2.9}},
	{"naan", models.NutrientProfile{Calories: 310, Protein: 8, Carbs: 50, Fats: 8, Fiber: 2, Sodium: 600, VitaminC: 0, Iron: 2}},
	{"bread", models.NutrientProfile{Calories: 265, Protein: 9, Carbs: 49, Fats: 3.2, Fiber: 2.7, Sodium: 491, VitaminC: 0, Iron: 3.6}},
	{"pasta", models.NutrientProfile{Calories: 131, Protein: 5, Carbs: 25, Fats: 1.1, Fiber: 1.8, Sodium: 1, VitaminC: 0, Iron: 1.3}},
	{"noodles", models.NutrientProfile{Calories: 138, Protein: 4.5, Carbs: 25, Fats: 2.1, Fiber: 1.2, Sodium: 5, VitaminC: 0, Iron: 0.6}},
	{"quinoa", models.NutrientProfile{Calories: 120, Protein: 4.4, Carbs: 22, Fats: 1.9, Fiber: 2.8, Sodium: 7, VitaminC: 0, Iron: 1.5}},

	// Vegetables
	{"broccoli", models.NutrientProfile{Calories: 34, Protein: 2.8, Carbs: 7, Fats: 0.4, Fiber: 2.6, Sodium: 33, VitaminC: 89, Iron: 0.7}},
	{"carrot", models.NutrientProfile{Calories: 41, Protein: 0.9, Carbs: 10, Fats: 0.2, Fiber: 2.8, Sodium: 69, VitaminC: 6, Iron: 0.3}},
	{"tomato", models.NutrientProfile{Calories: 18, Protein: 0.9, Carbs: 3.9, Fats: 0.2, Fiber: 1.2, Sodium: 5, VitaminC: 14, Iron: 0.3}},
	{"onion", models.NutrientProfile{Calories: 40, Protein: 1.1, Carbs: 9.3, Fats: 0.1, Fiber: 1.7, Sodium: 4, VitaminC: 7, Iron: 0.2}},
	{"potato", models.NutrientProfile{Calories: 77, Protein: 2, Carbs: 17, Fats: 0.1, Fiber: 2.2, Sodium: 6, VitaminC: 20, Iron: 0.8}},
	{"spinach", models.NutrientProfile{Calories: 23, Protein: 2.9, Carbs: 3.6, Fats: 0.4, Fiber: 2.2, Sodium: 79, VitaminC: 28, Iron: 2.7}},
	{"cabbage", models.NutrientProfile{Calories: 25, Protein: 1.3, Carbs: 6, Fats: 0.1, Fiber: 2.5, Sodium: 18, VitaminC: 37, Iron: 0.5}},
	{"cauliflower", models.NutrientProfile{Calories: 25, Protein: 1.9, Carbs: 5, Fats: 0.3, Fiber: 2, Sodium: 30, VitaminC: 48, Iron: 0.4}},
	{"pepper", models.NutrientProfile{Calories: 31, Protein: 1, Carbs: 7, Fats: 0.3, Fiber: 2.5, Sodium: 4, VitaminC: 142, Iron: 0.4}},
	{"bell pepper", models.NutrientProfile{Calories: 31, Protein: 1, Carbs: 7, Fats: 0.3, Fiber: 2.5, Sodium: 4, VitaminC: 142, Iron: 0.4}},

	// Fruits
	{"apple", models.NutrientProfile{Calories: 52, Protein: 0.3, Carbs: 14, Fats: 0.2, Fiber: 2.4, Sodium: 1, VitaminC: 4.6, Iron: 0.1}},
	{"banana", models.NutrientProfile{Calories: 89, Protein: 1.1, Carbs: 23, Fats: 0.3, Fiber: 2.6, Sodium: 1, VitaminC: 8.7, Iron: 0.3}},
	{"orange", models.NutrientProfile{Calories: 47, Protein: 0.9, Carbs: 12, Fats: 0.1, Fiber: 2.4, Sodium: 0, VitaminC: 53, Iron: 0.1}},
	{"mango", models.NutrientProfile{Calories: 60, Protein: 0.8, Carbs: 15, Fats: 0.4, Fiber: 1.6, Sodium: 1, VitaminC: 36, Iron: 0.2}},
	{"avocado", models.NutrientProfile{Calories: 160, Protein: 2, Carbs: 9, Fats: 15, Fiber: 7, Sodium: 7, VitaminC: 10, Iron: 0.6}},
	{"strawberry", models.NutrientProfile{Calories: 32, Protein: 0.7, Carbs: 8, Fats: 0.3, Fiber: 2, Sodium: 1, VitaminC: 59, Iron: 0.4}},

	// Dairy
	{"milk", models.NutrientProfile{Calories: 42, Protein: 3.4, Carbs: 5, Fats: 1, Fiber: 0, Sodium: 44, VitaminC: 0, Iron: 0}},
	{"yogurt", models.NutrientProfile{Calories: 59, Protein: 10, Carbs: 3.6, Fats: 0.4, Fiber: 0, Sodium: 36, VitaminC: 0, Iron: 0}},
	{"cheese", models.NutrientProfile{Calories: 402, Protein: 25, Carbs: 1.3, Fats: 33, Fiber: 0, Sodium: 621, VitaminC: 0, Iron: 0.7}},

	// Nuts & seeds
	{"almond", models.NutrientProfile{Calories: 579, Protein: 21, Carbs: 22, Fats: 50, Fiber: 12, Sodium: 1, VitaminC: 0, Iron: 3.7}},
	{"peanut", models.NutrientProfile{Calories: 567, Protein: 26, Carbs: 16, Fats: 49, Fiber: 8.5, Sodium: 18, VitaminC: 0, Iron: 4.6}},
	{"walnut", models.NutrientProfile{Calories: 654, Protein: 15, Carbs: 14, Fats: 65, Fiber: 6.7, Sodium: 2, VitaminC: 0, Iron: 2.9}},

	// Legumes
	{"dal", models.NutrientProfile{Calories: 116, Protein: 7.8, Carbs: 20, Fats: 0.4, Fiber: 7.9, Sodium: 2, VitaminC: 1, Iron: 2.5}},
	{"lentil", models.NutrientProfile{Calories: 116, Protein: 7.8, Carbs: 20, Fats: 0.4, Fiber: 7.9, Sodium: 2, VitaminC: 1, Iron: 2.5}},
	{"chickpea", models.NutrientProfile{Calories: 164, Protein: 8.9, Carbs: 27, Fats: 2.6, Fiber: 7.6, Sodium: 7, VitaminC: 1.3, Iron: 2.9}},
	{"rajma", models.NutrientProfile{Calories: 127, Protein: 8.7, Carbs: 23, Fats: 0.5, Fiber: 6.4, Sodium: 2, VitaminC: 0.8, Iron: 2.1}},

	// Oils & fats
	{"oil", models.NutrientProfile{Calories: 884, Protein: 0, Carbs: 0, Fats: 100, Fiber: 0, Sodium: 0, VitaminC: 0, Iron: 0}},
	{"butter", models.NutrientProfile{Calories: 717, Protein: 0.9, Carbs: 0.1, Fats: 81, Fiber: 0, Sodium: 11, VitaminC: 0, Iron: 0}},
	{"ghee", models.NutrientProfile{Calories: 900, Protein: 0, Carbs: 0, Fats: 100, Fiber: 0, Sodium: 0, VitaminC: 0, Iron: 0}},
}

// foodIndex backs the O(1) exact lookup. Built once at init; the table is
// read-only afterwards, so concurrent analysis requests need no locking.
var foodIndex = make(map[string]int, len(foodRecords))

func init() {
	for i, rec := range foodRecords {
		foodIndex[rec.name] = i
	}
}

// LookupFood returns the per-100g profile for a canonical food name. The
// second return value is false when the name is not in the table; absence is
// not an error.
func LookupFood(name string) (models.NutrientProfile, bool) {
	if i, ok := foodIndex[name]; ok {
		return foodRecords[i].profile, true
	}
	return models.NutrientProfile{}, false
}
