package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"journey_compass/internal/config"
	"journey_compass/internal/models"
	"journey_compass/internal/views"
	"journey_compass/pkg/resp"
)

// routeQuery is the base query for assembled route views: every association
// the aggregation pipeline needs in one fetch.
func routeQuery(db *gorm.DB) *gorm.DB {
	return db.Preload("Categories").Preload("Creator").Preload("Reviews").Preload("Images")
}

// favoriteSet returns the ids of routes the user has favorited. Anonymous
// viewers get an empty set, as does a failed lookup - the favorite flag
// degrades rather than failing the whole listing.
func favoriteSet(userID uint) map[uint]bool {
	set := map[uint]bool{}
	if userID == 0 {
		return set
	}
	var favs []models.Favorite
	if err := config.DB.Where("user_id = ?", userID).Find(&favs).Error; err != nil {
		logrus.WithError(err).Warn("favoriteSet: lookup failed")
		return set
	}
	for _, f := range favs {
		set[f.RouteID] = true
	}
	return set
}

// filterFromQuery builds the view filter from list query parameters.
func filterFromQuery(c *gin.Context) views.Filter {
	f := views.Filter{SearchQuery: c.Query("search")}
	for _, v := range c.QueryArray("category") {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			f.Categories = append(f.Categories, uint(id))
		}
	}
	if v := c.Query("difficulty"); v != "" {
		d := v
		f.Difficulty = &d
	}
	if v := c.Query("min_duration"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.DurationMin = &n
		}
	}
	if v := c.Query("max_duration"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.DurationMax = &n
		}
	}
	if v := c.Query("min_cost"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.CostMin = &n
		}
	}
	if v := c.Query("max_cost"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.CostMax = &n
		}
	}
	if v := c.Query("max_distance"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxDistance = &n
		}
	}
	return f
}

// ListRoutes returns public routes (plus the viewer's own private ones)
// filtered and sorted per query parameters.
func ListRoutes(c *gin.Context) {
	viewer := viewerID(c)

	q := routeQuery(config.DB)
	if viewer != 0 {
		q = q.Where("is_public = ? OR creator_id = ?", true, viewer)
	} else {
		q = q.Where("is_public = ?", true)
	}

	var routes []models.Route
	if err := q.Find(&routes).Error; err != nil {
		logrus.WithError(err).Error("ListRoutes: fetch failed")
		resp.ServerError(c, "could not load routes")
		return
	}

	favorited := favoriteSet(viewer)
	details := make([]views.RouteDetails, 0, len(routes))
	for _, r := range routes {
		details = append(details, views.Assemble(r, favorited[r.ID]))
	}

	details = views.Apply(details, filterFromQuery(c))
	details = views.SortBy(details, c.DefaultQuery("sort", views.SortNewest))
	resp.OK(c, details)
}

// GetRoute returns one route with its ordered points. Private routes are
// only visible to their creator and 404 otherwise.
func GetRoute(c *gin.Context) {
	viewer := viewerID(c)
	rID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.ValidationFailed(c, "invalid route id")
		return
	}

	var route models.Route
	if err := routeQuery(config.DB).
		Preload("Points", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_order ASC") }).
		Preload("Points.Point").
		First(&route, rID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "route not found")
		} else {
			logrus.WithError(err).Error("GetRoute: fetch failed")
			resp.ServerError(c, "could not load route")
		}
		return
	}
	if !route.IsPublic && route.CreatorID != viewer {
		resp.NotFound(c, "route not found")
		return
	}

	favorited := false
	if viewer != 0 {
		var n int64
		config.DB.Model(&models.Favorite{}).
			Where("route_id = ? AND user_id = ?", route.ID, viewer).Count(&n)
		favorited = n > 0
	}

	resp.OK(c, views.Assemble(route, favorited))
}

type createRouteInput struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Duration        int      `json:"duration" binding:"required,min=1"`
	Distance        *float64 `json:"distance"`
	DifficultyLevel *string  `json:"difficulty_level"`
	EstimatedCost   *float64 `json:"estimated_cost"`
	IsPublic        *bool    `json:"is_public"`
	Geometry        string   `json:"geometry"`
	ImageURL        string   `json:"image_url"`
	Categories      []uint   `json:"categories"`
	Points          []struct {
		ID           uint    `json:"id"`
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		Latitude     float64 `json:"latitude"`
		Longitude    float64 `json:"longitude"`
		Address      string  `json:"address"`
		Type         string  `json:"type"`
		WebsiteURL   string  `json:"website_url"`
		OpeningHours string  `json:"opening_hours"`
		StayDuration int     `json:"stay_duration"`
		Notes        string  `json:"notes"`
	} `json:"points"`
}

func (in createRouteInput) validate() error {
	if in.DifficultyLevel != nil && !models.ValidDifficulty(*in.DifficultyLevel) {
		return errors.New("invalid difficulty level")
	}
	if in.Distance != nil && *in.Distance < 0 {
		return errors.New("distance must be non-negative")
	}
	if in.EstimatedCost != nil && *in.EstimatedCost < 0 {
		return errors.New("estimated_cost must be non-negative")
	}
	return nil
}

// CreateRoute inserts a route with its categories, image and points in one
// transaction: all child rows commit with the route, or none do.
func CreateRoute(c *gin.Context) {
	uid := currentUserID(c)

	var input createRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		resp.ValidationFailed(c, err.Error())
		return
	}
	if err := input.validate(); err != nil {
		resp.ValidationFailed(c, err.Error())
		return
	}

	wkbGeom, err := views.GeometryFromGeoJSON(input.Geometry)
	if err != nil {
		resp.ValidationFailed(c, "invalid geometry: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		resp.ServerError(c, "failed to start transaction")
		return
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}
	route := models.Route{
		Title:           input.Title,
		Description:     input.Description,
		CreatorID:       uid,
		Duration:        input.Duration,
		Distance:        input.Distance,
		DifficultyLevel: input.DifficultyLevel,
		EstimatedCost:   input.EstimatedCost,
		IsPublic:        isPublic,
		Geometry:        wkbGeom,
	}
	if err := tx.Create(&route).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateRoute: insert failed")
		resp.ServerError(c, "could not create route")
		return
	}

	if len(input.Categories) > 0 {
		var cats []models.Category
		if err := tx.Find(&cats, input.Categories).Error; err != nil {
			tx.Rollback()
			resp.ServerError(c, "could not resolve categories")
			return
		}
		if len(cats) != len(input.Categories) {
			tx.Rollback()
			resp.ValidationFailed(c, "unknown category id")
			return
		}
		if err := tx.Model(&route).Association("Categories").Append(&cats); err != nil {
			tx.Rollback()
			resp.ServerError(c, "could not attach categories")
			return
		}
	}

	if input.ImageURL != "" {
		image := models.RouteImage{
			RouteID:   route.ID,
			ImageURL:  input.ImageURL,
			Caption:   input.Title,
			IsPrimary: true,
		}
		if err := tx.Create(&image).Error; err != nil {
			tx.Rollback()
			resp.ServerError(c, "could not attach image")
			return
		}
	}

	for i, p := range input.Points {
		pointID := p.ID
		if pointID == 0 {
			if p.Name == "" {
				tx.Rollback()
				resp.ValidationFailed(c, "point name is required")
				return
			}
			point := models.PointOfInterest{
				Name:         p.Name,
				Description:  p.Description,
				Latitude:     p.Latitude,
				Longitude:    p.Longitude,
				Address:      p.Address,
				Type:         p.Type,
				WebsiteURL:   p.WebsiteURL,
				OpeningHours: p.OpeningHours,
			}
			if err := tx.Create(&point).Error; err != nil {
				tx.Rollback()
				resp.ServerError(c, "could not create point of interest")
				return
			}
			pointID = point.ID
		} else {
			var existing models.PointOfInterest
			if err := tx.First(&existing, pointID).Error; err != nil {
				tx.Rollback()
				resp.ValidationFailed(c, "unknown point of interest id")
				return
			}
		}
		rp := models.RoutePoint{
			RouteID:       route.ID,
			PointID:       pointID,
			SequenceOrder: i + 1,
			StayDuration:  p.StayDuration,
			Notes:         p.Notes,
		}
		if err := tx.Create(&rp).Error; err != nil {
			tx.Rollback()
			resp.ServerError(c, "could not attach point")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		resp.ServerError(c, "transaction commit failed")
		return
	}

	routeQuery(config.DB).
		Preload("Points", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_order ASC") }).
		Preload("Points.Point").
		First(&route, route.ID)
	resp.Created(c, views.Assemble(route, false))
}

// UpdateRoute applies a partial update; only the creator may modify a route.
func UpdateRoute(c *gin.Context) {
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
			logrus.WithError(err).Error("UpdateRoute: fetch failed")
			resp.ServerError(c, "could not load route")
		}
		return
	}
	if route.CreatorID != uid {
		resp.Forbidden(c, "only the creator can update this route")
		return
	}

	var input struct {
		Title           *string  `json:"title"`
		Description     *string  `json:"description"`
		Duration        *int     `json:"duration"`
		Distance        *float64 `json:"distance"`
		DifficultyLevel *string  `json:"difficulty_level"`
		EstimatedCost   *float64 `json:"estimated_cost"`
		IsPublic        *bool    `json:"is_public"`
		Geometry        *string  `json:"geometry"`
		Categories      *[]uint  `json:"categories"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateRoute: invalid input payload")
		resp.ValidationFailed(c, err.Error())
		return
	}

	if input.Title != nil {
		route.Title = *input.Title
	}
	if input.Description != nil {
		route.Description = *input.Description
	}
	if input.Duration != nil {
		if *input.Duration < 1 {
			resp.ValidationFailed(c, "duration must be at least 1")
			return
		}
		route.Duration = *input.Duration
	}
	if input.Distance != nil {
		if *input.Distance < 0 {
			resp.ValidationFailed(c, "distance must be non-negative")
			return
		}
		route.Distance = input.Distance
	}
	if input.DifficultyLevel != nil {
		if !models.ValidDifficulty(*input.DifficultyLevel) {
			resp.ValidationFailed(c, "invalid difficulty level")
			return
		}
		route.DifficultyLevel = input.DifficultyLevel
	}
	if input.EstimatedCost != nil {
		if *input.EstimatedCost < 0 {
			resp.ValidationFailed(c, "estimated_cost must be non-negative")
			return
		}
		route.EstimatedCost = input.EstimatedCost
	}
	if input.IsPublic != nil {
		route.IsPublic = *input.IsPublic
	}
	if input.Geometry != nil {
		if *input.Geometry == "" {
			route.Geometry = nil
		} else {
			wkbGeom, err := views.GeometryFromGeoJSON(*input.Geometry)
			if err != nil {
				resp.ValidationFailed(c, "invalid geometry: "+err.Error())
				return
			}
			route.Geometry = wkbGeom
		}
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		resp.ServerError(c, "failed to start transaction")
		return
	}

	if err := tx.Save(&route).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("UpdateRoute: save failed")
		resp.ServerError(c, "could not update route")
		return
	}

	if input.Categories != nil {
		var cats []models.Category
		if len(*input.Categories) > 0 {
			if err := tx.Find(&cats, *input.Categories).Error; err != nil {
				tx.Rollback()
				resp.ServerError(c, "could not resolve categories")
				return
			}
			if len(cats) != len(*input.Categories) {
				tx.Rollback()
				resp.ValidationFailed(c, "unknown category id")
				return
			}
		}
		if err := tx.Model(&route).Association("Categories").Replace(&cats); err != nil {
			tx.Rollback()
			resp.ServerError(c, "could not replace categories")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		resp.ServerError(c, "transaction commit failed")
		return
	}

	routeQuery(config.DB).First(&route, route.ID)
	resp.OK(c, views.Assemble(route, false))
}

// DeleteRoute removes a route and all of its child rows in one transaction.
func DeleteRoute(c *gin.Context) {
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
	if route.CreatorID != uid {
		resp.Forbidden(c, "only the creator can delete this route")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		resp.ServerError(c, "failed to start transaction")
		return
	}

	for _, child := range []any{
		&models.RoutePoint{}, &models.Review{}, &models.Favorite{},
		&models.RouteImage{}, &models.ShareLink{},
	} {
		if err := tx.Where("route_id = ?", route.ID).Delete(child).Error; err != nil {
			tx.Rollback()
			logrus.WithError(err).Error("DeleteRoute: child delete failed")
			resp.ServerError(c, "could not delete route")
			return
		}
	}
	if err := tx.Model(&route).Association("Categories").Clear(); err != nil {
		tx.Rollback()
		resp.ServerError(c, "could not delete route")
		return
	}
	if err := tx.Delete(&route).Error; err != nil {
		tx.Rollback()
		resp.ServerError(c, "could not delete route")
		return
	}

	if err := tx.Commit().Error; err != nil {
		resp.ServerError(c, "transaction commit failed")
		return
	}

	resp.OK(c, gin.H{"message": "route deleted"})
}

// RecommendedRoutes derives a filter from the user's stored preferences and
// returns the best-rated matching public routes by other creators. Users
// without a preference record get the unfiltered candidate set.
func RecommendedRoutes(c *gin.Context) {
	uid := currentUserID(c)

	limit := views.DefaultRecommendLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	var prefPtr *models.UserPreference
	var pref models.UserPreference
	if err := config.DB.Where("user_id = ?", uid).First(&pref).Error; err == nil {
		prefPtr = &pref
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Warn("RecommendedRoutes: preference lookup failed")
	}

	var routes []models.Route
	if err := routeQuery(config.DB).
		Where("is_public = ? AND creator_id <> ?", true, uid).
		Find(&routes).Error; err != nil {
		logrus.WithError(err).Error("RecommendedRoutes: fetch failed")
		resp.ServerError(c, "could not load routes")
		return
	}

	favorited := favoriteSet(uid)
	details := make([]views.RouteDetails, 0, len(routes))
	for _, r := range routes {
		details = append(details, views.Assemble(r, favorited[r.ID]))
	}

	resp.OK(c, views.Recommend(details, prefPtr, limit))
}
