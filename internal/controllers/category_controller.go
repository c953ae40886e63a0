package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"journey_compass/internal/config"
	"journey_compass/internal/models"
	"journey_compass/pkg/resp"
)

// ListCategories returns the reference category set, ordered by name.
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		logrus.WithError(err).Error("ListCategories: fetch failed")
		resp.ServerError(c, "could not load categories")
		return
	}
	resp.OK(c, categories)
}
