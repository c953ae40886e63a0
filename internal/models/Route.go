package models

import (
	"gorm.io/gorm"
)

// Route is a curated travel itinerary: descriptive metadata plus an ordered
// set of points of interest. Mutable only by its creator.
type Route struct {
	gorm.Model

	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	CreatorID       uint     `json:"creator_id" gorm:"index"`
	Duration        int      `json:"duration"` // days, >= 1
	Distance        *float64 `json:"distance,omitempty"` // km
	DifficultyLevel *string  `json:"difficulty_level,omitempty"`
	EstimatedCost   *float64 `json:"estimated_cost,omitempty"`
	IsPublic        bool     `json:"is_public" gorm:"default:true"`

	// Optional path geometry stored as WKB (LINESTRING, SRID 4326).
	// The API accepts and returns GeoJSON.
	Geometry []byte `gorm:"type:bytea" json:"-"`

	// Associations
	Creator    User         `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Categories []Category   `gorm:"many2many:route_categories;" json:"categories,omitempty"`
	Points     []RoutePoint `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"points,omitempty"`
	Reviews    []Review     `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`
	Images     []RouteImage `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
}

// DifficultyLevels enumerates the accepted difficulty_level values.
var DifficultyLevels = []string{"Easy", "Moderate", "Hard", "Extreme"}

// ValidDifficulty reports whether s is one of the accepted difficulty levels.
func ValidDifficulty(s string) bool {
	for _, d := range DifficultyLevels {
		if s == d {
			return true
		}
	}
	return false
}
