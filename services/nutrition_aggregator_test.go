package services

import (
	"testing"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateNutritionEmptyInput(t *testing.T) {
	summary := AggregateNutrition(nil)

	assert.Equal(t, models.NutrientTotals{}, summary.Totals)
	assert.Empty(t, summary.IdentifiedFoods)
	assert.Equal(t, 0, summary.Confidence)
}

func TestAggregateNutritionSkipsGenericTerms(t *testing.T) {
	items := []models.DetectedItem{
		{Name: "food item", Confidence: 80},
		{Name: "chicken", Confidence: 90},
	}
	summary := AggregateNutrition(items)

	require.Len(t, summary.IdentifiedFoods, 1)
	assert.Equal(t, "chicken", summary.IdentifiedFoods[0].Name)
	assert.Equal(t, 240.0, summary.Totals.Calories)
	// confidence averages over every detected item, generic ones included
	assert.Equal(t, 85, summary.Confidence)
}

func TestAggregateNutritionAllGenericFallsBack(t *testing.T) {
	items := []models.DetectedItem{{Name: "food", Confidence: 50}}
	summary := AggregateNutrition(items)

	assert.Empty(t, summary.IdentifiedFoods)
	assert.Equal(t, 300.0, summary.Totals.Calories)
	assert.Equal(t, 36.0, summary.Totals.Protein)
	assert.Equal(t, 165.0, summary.Totals.Carbs)
	assert.Equal(t, 30.0, summary.Totals.Fats)
	assert.Equal(t, 9.0, summary.Totals.Fiber)
	assert.Equal(t, 250.0, summary.Totals.Sodium)
	assert.Equal(t, 50, summary.Confidence)
}

func TestAggregateNutritionUnmatchedContributesNoMicros(t *testing.T) {
	items := []models.DetectedItem{{Name: "xyzfood", Confidence: 80}}
	summary := AggregateNutrition(items)

	assert.Equal(t, 188.0, summary.Totals.Calories)
	assert.Equal(t, 0.0, summary.Totals.Fiber)
	assert.Equal(t, 0.0, summary.Totals.Sodium)
	assert.Equal(t, 0.0, summary.Totals.VitaminC)
	assert.Equal(t, 0.0, summary.Totals.Iron)

	require.Len(t, summary.IdentifiedFoods, 1)
	assert.Nil(t, summary.IdentifiedFoods[0].Nutrition.Fiber)
}

func TestAggregateNutritionClampsNegativeConfidence(t *testing.T) {
	items := []models.DetectedItem{{Name: "chicken", Confidence: -10}}
	summary := AggregateNutrition(items)

	// clamped to 0 confidence: 165 * 1.5 * 0.7
	assert.Equal(t, 173.0, summary.Totals.Calories)
	assert.Equal(t, 0, summary.Confidence)
}

func TestAggregateNutritionNonNegativeTotals(t *testing.T) {
	items := []models.DetectedItem{
		{Name: "chicken", Confidence: 90},
		{Name: "xyzfood", Confidence: 10},
		{Name: "rice", Confidence: 85},
	}
	summary := AggregateNutrition(items)

	for _, v := range []float64{
		summary.Totals.Calories, summary.Totals.Protein, summary.Totals.Carbs,
		summary.Totals.Fats, summary.Totals.Fiber, summary.Totals.Sodium,
		summary.Totals.VitaminC, summary.Totals.Iron,
	} {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestAggregateNutritionDeterministic(t *testing.T) {
	items := []models.DetectedItem{
		{Name: "chicken biryani", Confidence: 88},
		{Name: "raita", Confidence: 72},
		{Name: "naan", Confidence: 65},
	}
	first := AggregateNutrition(items)
	second := AggregateNutrition(items)

	assert.Equal(t, first, second)
}

func TestIsGenericFoodTerm(t *testing.T) {
	assert.True(t, isGenericFoodTerm("Food Item"))
	assert.True(t, isGenericFoodTerm(" dish "))
	assert.False(t, isGenericFoodTerm("food truck pizza"))
	assert.False(t, isGenericFoodTerm("chicken"))
}

func TestMeanConfidence(t *testing.T) {
	items := []models.DetectedItem{
		{Confidence: 90}, {Confidence: 85},
	}
	assert.Equal(t, 88, meanConfidence(items))
	assert.Equal(t, 0, meanConfidence(nil))
}
