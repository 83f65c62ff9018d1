package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is the persisted snapshot of one analyzed (or manually entered) meal.
// The nutrient columns mirror AnalysisResult.Nutrients so a result can be
// stored verbatim.
type Meal struct {
	gorm.Model
	UserID   uint   `gorm:"index" json:"userId"`
	Name     string `gorm:"not null" json:"name"`
	ImageURL string `json:"imageUrl"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
	VitaminC float64 `json:"vitaminC"`
	Iron     float64 `json:"iron"`

	AteAt time.Time `gorm:"index" json:"ateAt"`
}
