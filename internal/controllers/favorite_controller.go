package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"journey_compass/internal/config"
	"journey_compass/internal/models"
	"journey_compass/internal/views"
	"journey_compass/pkg/resp"
)

// ListFavorites returns the user's favorited routes as assembled views.
func ListFavorites(c *gin.Context) {
	uid := currentUserID(c)

	var favs []models.Favorite
	if err := config.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&favs).Error; err != nil {
		logrus.WithError(err).Error("ListFavorites: fetch failed")
		resp.ServerError(c, "could not load favorites")
		return
	}
	if len(favs) == 0 {
		resp.OK(c, []views.RouteDetails{})
		return
	}

	ids := make([]uint, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.RouteID)
	}

	var routes []models.Route
	if err := routeQuery(config.DB).Find(&routes, ids).Error; err != nil {
		logrus.WithError(err).Error("ListFavorites: route fetch failed")
		resp.ServerError(c, "could not load favorites")
		return
	}

	details := make([]views.RouteDetails, 0, len(routes))
	for _, r := range routes {
		details = append(details, views.Assemble(r, true))
	}
	resp.OK(c, details)
}

// ToggleFavorite flips the (user, route) membership. Insert first and let
// the unique constraint decide: a duplicate means the favorite existed, so
// remove it instead. No read-then-write window.
func ToggleFavorite(c *gin.Context) {
	uid := currentUserID(c)
	rID, err := strconv.ParseUint(c.Param("routeId"), 10, 64)
	if err != nil {
		resp.ValidationFailed(c, "invalid route id")
		return
	}

	exists, err := routeExists(rID)
	if err != nil {
		resp.ServerError(c, "could not load route")
		return
	}
	if !exists {
		resp.NotFound(c, "route not found")
		return
	}

	fav := models.Favorite{RouteID: uint(rID), UserID: uid}
	err = config.DB.Create(&fav).Error
	if err == nil {
		resp.OK(c, gin.H{"favorited": true})
		return
	}
	if !isUniqueViolation(err) {
		logrus.WithError(err).Error("ToggleFavorite: insert failed")
		resp.ServerError(c, "could not update favorite")
		return
	}

	if err := config.DB.Where("route_id = ? AND user_id = ?", rID, uid).
		Delete(&models.Favorite{}).Error; err != nil {
		logrus.WithError(err).Error("ToggleFavorite: delete failed")
		resp.ServerError(c, "could not update favorite")
		return
	}
	resp.OK(c, gin.H{"favorited": false})
}
