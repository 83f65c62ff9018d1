package controllers

import (
	"io"
	"net/http"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
	"github.com/abeercodezyra-ops/Nutrivision-AI/services"

	"github.com/gin-gonic/gin"
)

// maxImageBytes caps uploads before they reach the recognition providers.
const maxImageBytes = 10 << 20

type AnalysisController struct {
	Analysis *services.AnalysisService
	Hub      *services.RealtimeHub
}

func NewAnalysisController(analysis *services.AnalysisService, hub *services.RealtimeHub) *AnalysisController {
	return &AnalysisController{Analysis: analysis, Hub: hub}
}

// Analyze accepts a multipart image and runs the full detection and
// nutrition pipeline. A no-food outcome is a 200 with success=false, not an
// error status; the client distinguishes it by the flag.
func (ac *AnalysisController) Analyze(c *gin.Context) {
	if !ac.Analysis.Ready() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "API key is required. Please configure a recognition provider.",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No image file provided"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Image too large (max 10MB)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Could not read image file"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil || int64(len(image)) > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Could not read image file"})
		return
	}

	result, foodFound := ac.Analysis.Analyze(c.Request.Context(), image)
	if !foodFound {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "No food items detected in the image",
			"data":    result,
		})
		return
	}

	if uid := c.GetUint("userID"); uid != 0 {
		ac.Hub.Broadcast(uid, services.Event{Type: "analysis_complete", Data: result})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// AnalyzeMock returns a fixed successful analysis for frontend development
// and demos; no provider credentials needed.
func (ac *AnalysisController) AnalyzeMock(c *gin.Context) {
	result := models.AnalysisResult{
		DetectedItems: []models.DetectedItem{
			{Name: "Grilled Chicken", Confidence: 94, BoundingBox: models.BoundingBox{X: 20, Y: 25, Width: 35, Height: 40}},
			{Name: "Quinoa", Confidence: 88, BoundingBox: models.BoundingBox{X: 35, Y: 35, Width: 35, Height: 40}},
			{Name: "Avocado", Confidence: 92, BoundingBox: models.BoundingBox{X: 50, Y: 45, Width: 35, Height: 40}},
		},
		Nutrients: models.NutrientTotals{
			Calories: 520, Protein: 42, Carbs: 38, Fats: 22,
			Fiber: 12, Sodium: 480, VitaminC: 25, Iron: 4.2,
		},
		Calories:   520,
		Confidence: 91,
		Recommendations: []string{
			"High protein meal",
			"Contains healthy fats",
			"Good source of fiber",
			"3 food items identified",
		},
		IdentifiedFoods: []models.NutritionBreakdown{
			{Name: "Grilled Chicken", Nutrition: models.ItemNutrition{Calories: 248, Protein: 46.5, Carbs: 0, Fats: 5.4}},
			{Name: "Quinoa", Nutrition: models.ItemNutrition{Calories: 172, Protein: 6.3, Carbs: 30.7, Fats: 2.8}},
			{Name: "Avocado", Nutrition: models.ItemNutrition{Calories: 100, Protein: 1.2, Carbs: 5.6, Fats: 9.2}},
		},
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
