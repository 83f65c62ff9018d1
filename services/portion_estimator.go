package services

import (
	"math"
	"strings"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
)

// portionRule maps name keywords to an assumed serving size in grams.
type portionRule struct {
	keywords []string
	grams    float64
}

// portionRules is evaluated top to bottom, first match wins: large composed
// dishes, then single flatbreads, then side portions, then whole fruits.
var portionRules = []portionRule{
	{[]string{"biryani", "curry", "pulao"}, 250},
	{[]string{"roti", "naan", "chapati"}, 50},
	{[]string{"dal", "sabzi"}, 150},
	{[]string{"fruit", "apple", "banana"}, 100},
}

const defaultPortionGrams = 150

func basePortionGrams(name string) float64 {
	for _, r := range portionRules {
		if containsAny(name, r.keywords...) {
			return r.grams
		}
	}
	return defaultPortionGrams
}

// confidenceMultiplier maps 0–100% detection confidence onto a 0.7–1.0
// band: low confidence attenuates a portion estimate but never zeroes it.
func confidenceMultiplier(confidence float64) float64 {
	return 0.7 + (confidence/100)*0.3
}

// scaleProfile converts a 100g reference profile into an estimated-serving
// estimate for the named item. Calories and sodium round to integers, the
// remaining fields to one decimal.
func scaleProfile(p models.NutrientProfile, name string, confidence float64) models.ItemNutrition {
	mult := (basePortionGrams(name) / 100) * confidenceMultiplier(confidence)
	return models.ItemNutrition{
		Calories: math.Round(p.Calories * mult),
		Protein:  round1(p.Protein * mult),
		Carbs:    round1(p.Carbs * mult),
		Fats:     round1(p.Fats * mult),
		Fiber:    f64ptr(round1(p.Fiber * mult)),
		Sodium:   f64ptr(math.Round(p.Sodium * mult)),
		VitaminC: f64ptr(round1(p.VitaminC * mult)),
		Iron:     f64ptr(round1(p.Iron * mult)),
	}
}

// macroBaseline is a four-nutrient estimate for a broad food category.
type macroBaseline struct {
	calories, protein, carbs, fats float64
}

type heuristicRule struct {
	keywords []string
	baseline macroBaseline
}

// heuristicRules backs estimation for foods absent from the reference
// table. Evaluated top to bottom, first match wins.
var heuristicRules = []heuristicRule{
	{[]string{"chicken", "meat", "fish"}, macroBaseline{250, 25, 5, 12}},
	{[]string{"rice", "biryani", "pulao"}, macroBaseline{300, 6, 60, 5}},
	{[]string{"roti", "naan", "bread"}, macroBaseline{150, 5, 25, 4}},
	{[]string{"dal", "lentil"}, macroBaseline{120, 8, 20, 0.5}},
	{[]string{"fruit", "apple", "banana"}, macroBaseline{80, 0.5, 20, 0.3}},
}

var defaultBaseline = macroBaseline{200, 10, 30, 5}

// estimateUnmatched produces a macro-only estimate for an unrecognized food:
// strictly less detail than a table hit, but better than nothing. The
// micronutrient fields stay nil.
func estimateUnmatched(name string, confidence float64) models.ItemNutrition {
	baseline := defaultBaseline
	for _, r := range heuristicRules {
		if containsAny(name, r.keywords...) {
			baseline = r.baseline
			break
		}
	}
	mult := confidenceMultiplier(confidence)
	return models.ItemNutrition{
		Calories: math.Round(baseline.calories * mult),
		Protein:  round1(baseline.protein * mult),
		Carbs:    round1(baseline.carbs * mult),
		Fats:     round1(baseline.fats * mult),
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func f64ptr(f float64) *float64 { return &f }

func clampConfidence(c float64) float64 {
	return math.Min(100, math.Max(0, c))
}
