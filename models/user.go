package models

import (
	"gorm.io/gorm"
)

// User holds the local profile for an identity issued by the external auth
// service. Rows are provisioned on first authenticated request.
type User struct {
	gorm.Model
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
}
