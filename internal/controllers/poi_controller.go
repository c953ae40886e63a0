package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"journey_compass/internal/config"
	"journey_compass/internal/models"
	"journey_compass/pkg/resp"
)

// ListPoints returns points of interest, optionally narrowed by type tag or
// a name/address substring.
func ListPoints(c *gin.Context) {
	q := config.DB.Model(&models.PointOfInterest{})
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}
	if s := c.Query("search"); s != "" {
		like := "%" + s + "%"
		q = q.Where("name ILIKE ? OR address ILIKE ?", like, like)
	}

	var points []models.PointOfInterest
	if err := q.Order("name").Find(&points).Error; err != nil {
		logrus.WithError(err).Error("ListPoints: fetch failed")
		resp.ServerError(c, "could not load points of interest")
		return
	}
	resp.OK(c, points)
}

func GetPoint(c *gin.Context) {
	pID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.ValidationFailed(c, "invalid point id")
		return
	}

	var point models.PointOfInterest
	if err := config.DB.First(&point, pID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "point of interest not found")
		} else {
			resp.ServerError(c, "could not load point of interest")
		}
		return
	}
	resp.OK(c, point)
}

// CreatePoint registers a shared point of interest.
func CreatePoint(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required"`
		Description  string  `json:"description"`
		Latitude     float64 `json:"latitude" binding:"min=-90,max=90"`
		Longitude    float64 `json:"longitude" binding:"min=-180,max=180"`
		Address      string  `json:"address"`
		Type         string  `json:"type"`
		ContactInfo  string  `json:"contact_info"`
		WebsiteURL   string  `json:"website_url"`
		OpeningHours string  `json:"opening_hours"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.ValidationFailed(c, err.Error())
		return
	}

	point := models.PointOfInterest{
		Name:         input.Name,
		Description:  input.Description,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Address:      input.Address,
		Type:         input.Type,
		ContactInfo:  input.ContactInfo,
		WebsiteURL:   input.WebsiteURL,
		OpeningHours: input.OpeningHours,
	}
	if err := config.DB.Create(&point).Error; err != nil {
		logrus.WithError(err).Error("CreatePoint: insert failed")
		resp.ServerError(c, "could not create point of interest")
		return
	}
	resp.Created(c, point)
}
