package models

// NutrientProfile is a per-100g nutrient reference entry. Values are never
// negative; the table always describes a fixed 100g serving and portion
// scaling happens in the estimator, never here.
type NutrientProfile struct {
	Calories float64 `json:"calories"` // kcal/100g
	Protein  float64 `json:"protein"`  // g/100g
	Carbs    float64 `json:"carbs"`    // g/100g
	Fats     float64 `json:"fats"`     // g/100g
	Fiber    float64 `json:"fiber"`    // g/100g
	Sodium   float64 `json:"sodium"`   // mg/100g
	VitaminC float64 `json:"vitaminC"` // mg/100g
	Iron     float64 `json:"iron"`     // mg/100g
}

// BoundingBox locates a detection within the image, all values percentages
// of the image dimensions (0–100).
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetectedItem is one food candidate reported by a recognition provider.
type DetectedItem struct {
	Name        string      `json:"name"`
	Confidence  float64     `json:"confidence"` // 0–100
	BoundingBox BoundingBox `json:"boundingBox"`
}

// ItemNutrition is the scaled estimate for a single detected item. The
// micronutrient fields are nil when the item could not be matched against
// the reference table and was estimated heuristically.
type ItemNutrition struct {
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fats     float64  `json:"fats"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"`
	VitaminC *float64 `json:"vitaminC,omitempty"`
	Iron     *float64 `json:"iron,omitempty"`
}

// NutritionBreakdown pairs the item's original name with its estimate.
type NutritionBreakdown struct {
	Name      string        `json:"name"`
	Nutrition ItemNutrition `json:"nutrition"`
}

// NutrientTotals accumulates the eight nutrient fields across a meal.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
	VitaminC float64 `json:"vitaminC"`
	Iron     float64 `json:"iron"`
}

// NutritionSummary is the aggregator's output for one analysis request.
type NutritionSummary struct {
	Totals          NutrientTotals
	IdentifiedFoods []NutritionBreakdown
	Confidence      int // integer mean of item confidences
}

// AnalysisResult is the pipeline's externally visible output; the meal
// logging, history and chat subsystems consume this shape verbatim.
type AnalysisResult struct {
	DetectedItems   []DetectedItem       `json:"detectedItems"`
	Nutrients       NutrientTotals       `json:"nutrients"`
	Calories        float64              `json:"calories"`
	Confidence      int                  `json:"confidence"`
	Recommendations []string             `json:"recommendations"`
	IdentifiedFoods []NutritionBreakdown `json:"identifiedFoods"`
}
