package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UserPreference is the stored recommendation profile for a user. Every field
// is independently optional; an absent field imposes no constraint.
type UserPreference struct {
	gorm.Model

	UserID uint `json:"user_id" gorm:"uniqueIndex"`

	PreferredCategories  pq.Int64Array  `json:"preferred_categories" gorm:"type:integer[]"`
	PreferredDifficulty  pq.StringArray `json:"preferred_difficulty" gorm:"type:varchar(20)[]"`
	PreferredCostMin     *float64       `json:"preferred_cost_min,omitempty"`
	PreferredCostMax     *float64       `json:"preferred_cost_max,omitempty"`
	PreferredDurationMin *int           `json:"preferred_duration_min,omitempty"`
	PreferredDurationMax *int           `json:"preferred_duration_max,omitempty"`
	MaxDistance          *float64       `json:"max_distance,omitempty"`
}
