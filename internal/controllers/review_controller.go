package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"journey_compass/internal/config"
	"journey_compass/internal/models"
	"journey_compass/pkg/resp"
)

// reviewView is the API shape for one review with its author summary.
type reviewView struct {
	ID          uint       `json:"id"`
	RouteID     uint       `json:"route_id"`
	Rating      int        `json:"rating"`
	Comment     string     `json:"comment"`
	VisitedDate *time.Time `json:"visited_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        gin.H      `json:"user"`
}

func toReviewView(r models.Review) reviewView {
	return reviewView{
		ID:          r.ID,
		RouteID:     r.RouteID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		VisitedDate: r.VisitedDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		User: gin.H{
			"id":                r.User.ID,
			"username":          r.User.Username,
			"profile_image_url": r.User.ProfileImageURL,
		},
	}
}

func routeExists(routeID uint64) (bool, error) {
	var n int64
	err := config.DB.Model(&models.Route{}).Where("id = ?", routeID).Count(&n).Error
	return n > 0, err
}

// ListReviews returns a route's reviews, newest first, paginated.
func ListReviews(c *gin.Context) {
	rID, err := strconv.ParseUint(c.Param("id"), 10, 64)
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

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	config.DB.Model(&models.Review{}).Where("route_id = ?", rID).Count(&total)

	var reviews []models.Review
	if err := config.DB.Preload("User").
		Where("route_id = ?", rID).
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&reviews).Error; err != nil {
		logrus.WithError(err).Error("ListReviews: fetch failed")
		resp.ServerError(c, "could not load reviews")
		return
	}

	out := make([]reviewView, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewView(r))
	}

	resp.OK(c, gin.H{
		"reviews": out,
		"pagination": gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// CreateReview adds the authenticated user's review of a route. The unique
// constraint on (route, user) turns a repeat review into a conflict.
func CreateReview(c *gin.Context) {
	uid := currentUserID(c)
	rID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.ValidationFailed(c, "invalid route id")
		return
	}

	var input struct {
		Rating      int        `json:"rating" binding:"required,min=1,max=5"`
		Comment     string     `json:"comment"`
		VisitedDate *time.Time `json:"visited_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.ValidationFailed(c, "rating is required and must be between 1 and 5")
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

	review := models.Review{
		RouteID:     uint(rID),
		UserID:      uid,
		Rating:      input.Rating,
		Comment:     input.Comment,
		VisitedDate: input.VisitedDate,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		if isUniqueViolation(err) {
			resp.Conflict(c, "you have already reviewed this route")
			return
		}
		logrus.WithError(err).Error("CreateReview: insert failed")
		resp.ServerError(c, "could not create review")
		return
	}

	config.DB.Preload("User").First(&review, review.ID)
	resp.Created(c, toReviewView(review))
}

// UpdateReview lets the author amend their rating, comment or visited date.
func UpdateReview(c *gin.Context) {
	uid := currentUserID(c)
	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 64)
	if err != nil {
		resp.ValidationFailed(c, "invalid review id")
		return
	}

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "review not found")
		} else {
			resp.ServerError(c, "could not load review")
		}
		return
	}
	if review.UserID != uid {
		resp.Forbidden(c, "only the author can update this review")
		return
	}

	var input struct {
		Rating      *int       `json:"rating"`
		Comment     *string    `json:"comment"`
		VisitedDate *time.Time `json:"visited_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.ValidationFailed(c, err.Error())
		return
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			resp.ValidationFailed(c, "rating must be between 1 and 5")
			return
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	if input.VisitedDate != nil {
		review.VisitedDate = input.VisitedDate
	}

	if err := config.DB.Save(&review).Error; err != nil {
		logrus.WithError(err).Error("UpdateReview: save failed")
		resp.ServerError(c, "could not update review")
		return
	}

	config.DB.Preload("User").First(&review, review.ID)
	resp.OK(c, toReviewView(review))
}

// DeleteReview removes the author's review.
func DeleteReview(c *gin.Context) {
	uid := currentUserID(c)
	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 64)
	if err != nil {
		resp.ValidationFailed(c, "invalid review id")
		return
	}

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "review not found")
		} else {
			resp.ServerError(c, "could not load review")
		}
		return
	}
	if review.UserID != uid {
		resp.Forbidden(c, "only the author can delete this review")
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		resp.ServerError(c, "could not delete review")
		return
	}
	resp.OK(c, gin.H{"message": "review deleted"})
}
