package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// currentUserID returns the authenticated user's id. Only valid behind
// RequireAuth; JWT numeric claims arrive as float64.
func currentUserID(c *gin.Context) uint {
	return uint(c.MustGet("user_id").(float64))
}

// viewerID returns the viewing user's id, or 0 for anonymous requests.
// Valid behind OptionalAuth.
func viewerID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if f, ok := v.(float64); ok {
			return uint(f)
		}
	}
	return 0
}

// isUniqueViolation reports whether err is a unique-constraint violation,
// either translated by gorm or surfaced as a raw postgres error.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
