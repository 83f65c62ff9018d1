package services

import (
	"context"
	"fmt"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
)

// AnalysisService is the pipeline entry point: detection chain, nutrition
// aggregation and recommendation generation for one meal image.
type AnalysisService struct {
	detector *DetectionService
}

func NewAnalysisService(detector *DetectionService) *AnalysisService {
	return &AnalysisService{detector: detector}
}

// Ready reports whether at least one recognition provider is configured.
func (s *AnalysisService) Ready() bool {
	return s.detector.Ready()
}

// retryRecommendations are returned whenever nothing edible was identified;
// user guidance, not an error.
var retryRecommendations = []string{
	"Please try again with a clearer image of food items",
	"Ensure good lighting and focus",
	"Make sure food items are clearly visible in the image",
}

// Analyze runs detection, filtering and aggregation over one image. The
// second return value reports whether any food was detected; false is a
// well-defined terminal outcome with a zeroed result and retry guidance,
// distinct from a pipeline error.
func (s *AnalysisService) Analyze(ctx context.Context, image []byte) (*models.AnalysisResult, bool) {
	detected := s.detector.DetectFoods(ctx, image)
	if len(detected) == 0 {
		return noFoodResult(), false
	}

	// Defense in depth beyond the orchestrator's threshold filter: drop
	// items whose name is exactly a generic term. If that empties the list,
	// keep the raw detections rather than returning nothing.
	valid := make([]models.DetectedItem, 0, len(detected))
	for _, item := range detected {
		if !isGenericFoodTerm(item.Name) {
			valid = append(valid, item)
		}
	}
	final := valid
	if len(final) == 0 {
		final = detected
	}

	// If even the fallback list holds nothing but generic terms there is
	// nothing to estimate; treat it the same as no detection.
	if len(valid) == 0 {
		return noFoodResult(), false
	}

	summary := AggregateNutrition(final)

	return &models.AnalysisResult{
		DetectedItems:   final,
		Nutrients:       summary.Totals,
		Calories:        summary.Totals.Calories,
		Confidence:      summary.Confidence,
		Recommendations: buildRecommendations(summary),
		IdentifiedFoods: summary.IdentifiedFoods,
	}, true
}

// buildRecommendations derives user-facing notes from the summary. The rule
// order is fixed so identical summaries always produce identical output.
func buildRecommendations(summary models.NutritionSummary) []string {
	recs := []string{}
	t := summary.Totals

	if t.Protein > 20 {
		recs = append(recs, "High protein meal")
	}
	if t.Fats > 15 {
		recs = append(recs, "Contains healthy fats")
	}
	if t.Fiber > 5 {
		recs = append(recs, "Good source of fiber")
	}
	if t.Calories > 600 {
		recs = append(recs, "High calorie meal - consider portion size")
	} else if t.Calories < 200 {
		recs = append(recs, "Light meal - may need additional calories")
	}
	if n := len(summary.IdentifiedFoods); n > 0 {
		recs = append(recs, fmt.Sprintf("%d food items identified", n))
	}
	if len(recs) == 0 {
		recs = append(recs, "Balanced meal detected")
	}
	return recs
}

func noFoodResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		DetectedItems:   []models.DetectedItem{},
		Nutrients:       models.NutrientTotals{},
		Calories:        0,
		Confidence:      0,
		Recommendations: append([]string(nil), retryRecommendations...),
		IdentifiedFoods: []models.NutritionBreakdown{},
	}
}
