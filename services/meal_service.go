package services

import (
	"time"

	"github.com/abeercodezyra-ops/Nutrivision-AI/config"
	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
)

// MealService persists analysis results as logged meals and answers
// history/stats queries.
type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// LogMeal stores one meal for the user. Totals arrive pre-rounded from the
// aggregator and are stored verbatim.
func (s *MealService) LogMeal(userID uint, name, imageURL string, totals models.NutrientTotals, ateAt time.Time) (*models.Meal, error) {
	if ateAt.IsZero() {
		ateAt = time.Now()
	}
	meal := &models.Meal{
		UserID:   userID,
		Name:     name,
		ImageURL: imageURL,
		Calories: totals.Calories,
		Protein:  totals.Protein,
		Carbs:    totals.Carbs,
		Fats:     totals.Fats,
		Fiber:    totals.Fiber,
		Sodium:   totals.Sodium,
		VitaminC: totals.VitaminC,
		Iron:     totals.Iron,
		AteAt:    ateAt,
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// History returns the user's meals, newest first.
func (s *MealService) History(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

// Delete removes one of the user's meals. Scoping the delete by user_id
// keeps one user from deleting another's rows.
func (s *MealService) Delete(userID, mealID uint) (bool, error) {
	res := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	return res.RowsAffected > 0, res.Error
}

// DailyStats summarizes one calendar day of meals.
type DailyStats struct {
	Date     string  `json:"date"`
	Meals    int     `json:"meals"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func (s *MealService) StatsForDay(userID uint, day time.Time) (*DailyStats, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	if err := config.DB.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	stats := &DailyStats{Date: start.Format("2006-01-02"), Meals: len(meals)}
	for _, m := range meals {
		stats.Calories += m.Calories
		stats.Protein += m.Protein
		stats.Carbs += m.Carbs
		stats.Fats += m.Fats
	}
	return stats, nil
}
