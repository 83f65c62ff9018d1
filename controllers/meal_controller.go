package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
	"github.com/abeercodezyra-ops/Nutrivision-AI/services"
	"github.com/abeercodezyra-ops/Nutrivision-AI/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
	Hub   *services.RealtimeHub
}

func NewMealController(meals *services.MealService, hub *services.RealtimeHub) *MealController {
	return &MealController{Meals: meals, Hub: hub}
}

// LogMeal stores one meal, typically the output of a prior analysis. The
// optional photo is a data URI; upload failures only cost the photo, never
// the meal.
func (mc *MealController) LogMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Name        string                `json:"name" binding:"required"`
		ImageBase64 string                `json:"image_base64"`
		Nutrients   models.NutrientTotals `json:"nutrients"`
		AteAt       time.Time             `json:"ate_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL := ""
	if body.ImageBase64 != "" && utils.S3Enabled() {
		url, err := utils.UploadMealPhoto(body.ImageBase64, strconv.FormatUint(uint64(uid), 10))
		if err != nil {
			log.Printf("meal photo upload failed: %v", err)
		} else {
			imageURL = url
		}
	}

	meal, err := mc.Meals.LogMeal(uid, body.Name, imageURL, body.Nutrients, body.AteAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save meal"})
		return
	}

	mc.Hub.Broadcast(uid, services.Event{Type: "meal_logged", Data: meal})
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) History(c *gin.Context) {
	meals, err := mc.Meals.History(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// Stats summarizes one day of meals; ?date=YYYY-MM-DD, defaulting to today.
func (mc *MealController) Stats(c *gin.Context) {
	day := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	stats, err := mc.Meals.StatsForDay(c.GetUint("userID"), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (mc *MealController) Delete(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	found, err := mc.Meals.Delete(c.GetUint("userID"), uint(mealID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
