package models

import (
	"time"

	"gorm.io/gorm"
)

// ShareLink lets a route be opened through a short code, optionally expiring.
type ShareLink struct {
	gorm.Model

	RouteID   uint       `json:"route_id" gorm:"index"`
	ShareCode string     `json:"share_code" gorm:"uniqueIndex;not null"`
	CreatedBy uint       `json:"created_by"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the link is past its expiry time, if it has one.
func (s ShareLink) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
