package models

import (
	"gorm.io/gorm"
)

// PointOfInterest is a geocoded place shared between routes. Route-specific
// annotation (order, stay duration, notes) lives on RoutePoint.
type PointOfInterest struct {
	gorm.Model

	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Address      string  `json:"address"`
	Type         string  `json:"type"`
	ContactInfo  string  `json:"contact_info"`
	WebsiteURL   string  `json:"website_url"`
	OpeningHours string  `json:"opening_hours"`
}
