package models

import "time"

// Review holds one user's rating of a route. The composite unique index
// enforces at most one review per (route, user) pair; rows are hard-deleted
// so a removed review does not block re-reviewing.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RouteID     uint       `json:"route_id" gorm:"uniqueIndex:idx_reviews_route_user;not null"`
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_reviews_route_user;not null"`
	Rating      int        `json:"rating"` // 1..5 inclusive
	Comment     string     `json:"comment"`
	VisitedDate *time.Time `json:"visited_date,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
