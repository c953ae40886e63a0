package controllers

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"journey_compass/internal/config"
	"journey_compass/internal/models"
	"journey_compass/internal/views"
	"journey_compass/pkg/resp"
)

// newShareCode derives a short random code from a UUID.
func newShareCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// CreateShareLink issues a share code for a route, optionally expiring after
// expires_in hours.
func CreateShareLink(c *gin.Context) {
	uid := currentUserID(c)
	rID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.ValidationFailed(c, "invalid route id")
		return
	}

	var route models.Route
	if err := config.DB.First(&route, rID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "route not found")
		} else {
			resp.ServerError(c, "could not load route")
		}
		return
	}
	if !route.IsPublic && route.CreatorID != uid {
		resp.NotFound(c, "route not found")
		return
	}

	var input struct {
		ExpiresIn *int `json:"expires_in"` // hours
	}
	// A missing body means no expiry; only malformed JSON is rejected.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		resp.ValidationFailed(c, err.Error())
		return
	}

	var expiresAt *time.Time
	if input.ExpiresIn != nil {
		if *input.ExpiresIn < 1 {
			resp.ValidationFailed(c, "expires_in must be at least 1 hour")
			return
		}
		t := time.Now().Add(time.Duration(*input.ExpiresIn) * time.Hour)
		expiresAt = &t
	}

	// Regenerate on the unlikely code collision.
	var link models.ShareLink
	for attempt := 0; attempt < 3; attempt++ {
		link = models.ShareLink{
			RouteID:   route.ID,
			ShareCode: newShareCode(),
			CreatedBy: uid,
			ExpiresAt: expiresAt,
		}
		err = config.DB.Create(&link).Error
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		logrus.WithError(err).Error("CreateShareLink: insert failed")
		resp.ServerError(c, "could not create share link")
		return
	}

	resp.Created(c, link)
}

// ResolveShareLink opens the shared route by code; expired or unknown codes
// are indistinguishable from missing routes.
func ResolveShareLink(c *gin.Context) {
	code := c.Param("code")

	var link models.ShareLink
	if err := config.DB.Where("share_code = ?", code).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "share link not found or expired")
		} else {
			resp.ServerError(c, "could not resolve share link")
		}
		return
	}
	if link.Expired(time.Now()) {
		resp.NotFound(c, "share link not found or expired")
		return
	}

	var route models.Route
	if err := routeQuery(config.DB).
		Preload("Points", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_order ASC") }).
		Preload("Points.Point").
		First(&route, link.RouteID).Error; err != nil {
		resp.NotFound(c, "route not found")
		return
	}

	resp.OK(c, views.Assemble(route, false))
}
