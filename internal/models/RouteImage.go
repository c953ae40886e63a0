package models

import (
	"gorm.io/gorm"
)

// RouteImage is one image attached to a route. At most one row per route is
// expected to carry IsPrimary; list views fall back to the first image when
// none is flagged.
type RouteImage struct {
	gorm.Model

	RouteID       uint   `json:"route_id" gorm:"index"`
	ImageURL      string `json:"image_url" binding:"required"`
	Caption       string `json:"caption"`
	IsPrimary     bool   `json:"is_primary"`
	SequenceOrder int    `json:"sequence_order"`
}
