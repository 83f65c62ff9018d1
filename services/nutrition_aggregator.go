package services

import (
	"math"
	"strings"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
)

// genericFoodTerms are labels too vague to estimate nutrition for; items
// named exactly one of these never reach estimation.
var genericFoodTerms = []string{"food item", "food", "dish", "meal", "item", "object"}

func isGenericFoodTerm(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, t := range genericFoodTerms {
		if n == t {
			return true
		}
	}
	return false
}

// AggregateNutrition resolves and scales every detected item and accumulates
// the eight nutrient totals. Items with generic names are skipped; items
// missing from the reference table contribute heuristic macro estimates and
// zero micronutrients. Deterministic: identical input yields identical
// output, no randomness, no I/O.
func AggregateNutrition(items []models.DetectedItem) models.NutritionSummary {
	var totals models.NutrientTotals
	foods := make([]models.NutritionBreakdown, 0, len(items))

	for _, item := range items {
		name := strings.ToLower(strings.TrimSpace(item.Name))
		if isGenericFoodTerm(name) {
			continue
		}

		confidence := clampConfidence(item.Confidence)
		var nut models.ItemNutrition
		if profile, kind := ResolveFood(name); kind != MatchUnmatched {
			nut = scaleProfile(*profile, name, confidence)
		} else {
			nut = estimateUnmatched(name, confidence)
		}

		totals.Calories += nut.Calories
		totals.Protein += nut.Protein
		totals.Carbs += nut.Carbs
		totals.Fats += nut.Fats
		if nut.Fiber != nil {
			totals.Fiber += *nut.Fiber
		}
		if nut.Sodium != nil {
			totals.Sodium += *nut.Sodium
		}
		if nut.VitaminC != nil {
			totals.VitaminC += *nut.VitaminC
		}
		if nut.Iron != nil {
			totals.Iron += *nut.Iron
		}

		foods = append(foods, models.NutritionBreakdown{Name: item.Name, Nutrition: nut})
	}

	// A non-empty item list that nets to exactly zero calories gets a fixed
	// conservative estimate instead of a degenerate all-zero summary. This
	// triggers only on exact zero, so legitimate very-low-calorie meals pass
	// through untouched.
	if totals.Calories == 0 && len(items) > 0 {
		totals = conservativeTotals()
	}

	return models.NutritionSummary{
		Totals:          clampAndRound(totals),
		IdentifiedFoods: foods,
		Confidence:      meanConfidence(items),
	}
}

func conservativeTotals() models.NutrientTotals {
	const avgCalories = 300
	return models.NutrientTotals{
		Calories: avgCalories,
		Protein:  math.Round(avgCalories * 0.12),
		Carbs:    math.Round(avgCalories * 0.55),
		Fats:     math.Round(avgCalories * 0.10),
		Fiber:    math.Round(avgCalories * 0.03),
		Sodium:   250,
		VitaminC: 20,
		Iron:     2.0,
	}
}

func clampAndRound(t models.NutrientTotals) models.NutrientTotals {
	return models.NutrientTotals{
		Calories: math.Max(0, math.Round(t.Calories)),
		Protein:  math.Max(0, round1(t.Protein)),
		Carbs:    math.Max(0, round1(t.Carbs)),
		Fats:     math.Max(0, round1(t.Fats)),
		Fiber:    math.Max(0, round1(t.Fiber)),
		Sodium:   math.Max(0, math.Round(t.Sodium)),
		VitaminC: math.Max(0, round1(t.VitaminC)),
		Iron:     math.Max(0, round1(t.Iron)),
	}
}

func meanConfidence(items []models.DetectedItem) int {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range items {
		sum += clampConfidence(item.Confidence)
	}
	return int(math.Round(sum / float64(len(items))))
}
