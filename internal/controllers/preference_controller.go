package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"journey_compass/internal/config"
	"journey_compass/internal/models"
	"journey_compass/pkg/resp"
)

// GetPreferences returns the user's recommendation profile, or null when no
// record exists - a valid state, not an error.
func GetPreferences(c *gin.Context) {
	uid := currentUserID(c)

	var pref models.UserPreference
	if err := config.DB.Where("user_id = ?", uid).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.OK(c, nil)
			return
		}
		logrus.WithError(err).Error("GetPreferences: fetch failed")
		resp.ServerError(c, "could not load preferences")
		return
	}
	resp.OK(c, pref)
}

// UpdatePreferences upserts the user's recommendation profile. Supplied
// fields replace stored values; omitted fields are left untouched.
func UpdatePreferences(c *gin.Context) {
	uid := currentUserID(c)

	var input struct {
		PreferredCategories  *[]int64  `json:"preferred_categories"`
		PreferredDifficulty  *[]string `json:"preferred_difficulty"`
		PreferredCostMin     *float64  `json:"preferred_cost_min"`
		PreferredCostMax     *float64  `json:"preferred_cost_max"`
		PreferredDurationMin *int      `json:"preferred_duration_min"`
		PreferredDurationMax *int      `json:"preferred_duration_max"`
		MaxDistance          *float64  `json:"max_distance"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.ValidationFailed(c, err.Error())
		return
	}
	if input.PreferredDifficulty != nil {
		for _, d := range *input.PreferredDifficulty {
			if !models.ValidDifficulty(d) {
				resp.ValidationFailed(c, "invalid difficulty level: "+d)
				return
			}
		}
	}

	var pref models.UserPreference
	err := config.DB.Where("user_id = ?", uid).First(&pref).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("UpdatePreferences: fetch failed")
		resp.ServerError(c, "could not load preferences")
		return
	}
	pref.UserID = uid

	if input.PreferredCategories != nil {
		pref.PreferredCategories = pq.Int64Array(*input.PreferredCategories)
	}
	if input.PreferredDifficulty != nil {
		pref.PreferredDifficulty = pq.StringArray(*input.PreferredDifficulty)
	}
	if input.PreferredCostMin != nil {
		pref.PreferredCostMin = input.PreferredCostMin
	}
	if input.PreferredCostMax != nil {
		pref.PreferredCostMax = input.PreferredCostMax
	}
	if input.PreferredDurationMin != nil {
		pref.PreferredDurationMin = input.PreferredDurationMin
	}
	if input.PreferredDurationMax != nil {
		pref.PreferredDurationMax = input.PreferredDurationMax
	}
	if input.MaxDistance != nil {
		pref.MaxDistance = input.MaxDistance
	}

	if err := config.DB.Save(&pref).Error; err != nil {
		logrus.WithError(err).Error("UpdatePreferences: save failed")
		resp.ServerError(c, "could not save preferences")
		return
	}
	resp.OK(c, pref)
}
