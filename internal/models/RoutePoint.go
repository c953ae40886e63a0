package models

import (
	"gorm.io/gorm"
)

// RoutePoint attaches a point of interest to a route at a position in the
// itinerary, with the route's own annotation of that point.
type RoutePoint struct {
	gorm.Model

	RouteID       uint   `json:"route_id" gorm:"index"`
	PointID       uint   `json:"point_id" gorm:"index"`
	SequenceOrder int    `json:"sequence_order"`
	StayDuration  int    `json:"stay_duration"` // minutes at this stop
	Notes         string `json:"notes"`

	Point PointOfInterest `gorm:"foreignKey:PointID" json:"point,omitempty"`
}
