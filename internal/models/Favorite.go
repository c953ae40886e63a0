package models

import "time"

// Favorite is a pure membership relation between a user and a route. The
// unique index is the safety net for concurrent toggles: insert and let the
// database reject the duplicate instead of reading first.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RouteID uint `json:"route_id" gorm:"uniqueIndex:idx_favorites_route_user;not null"`
	UserID  uint `json:"user_id" gorm:"uniqueIndex:idx_favorites_route_user;not null"`
}
