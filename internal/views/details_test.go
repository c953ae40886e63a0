package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"journey_compass/internal/models"
)

func review(rating int) models.Review {
	return models.Review{Rating: rating}
}

func image(url string, primary bool) models.RouteImage {
	return models.RouteImage{ImageURL: url, IsPrimary: primary}
}

func TestAggregate_NoReviews(t *testing.T) {
	rating, count, imageURL := Aggregate(nil, nil)

	assert.Equal(t, 0.0, rating)
	assert.Equal(t, 0, count)
	assert.Equal(t, "", imageURL)
}

func TestAggregate_ExactMean(t *testing.T) {
	rating, count, _ := Aggregate([]models.Review{review(5), review(3), review(4)}, nil)

	assert.Equal(t, 4.0, rating)
	assert.Equal(t, 3, count)
}

func TestAggregate_SingleReview(t *testing.T) {
	rating, count, _ := Aggregate([]models.Review{review(2)}, nil)

	assert.Equal(t, 2.0, rating)
	assert.Equal(t, 1, count)
}

func TestAggregate_PrimaryImageWins(t *testing.T) {
	images := []models.RouteImage{
		image("first.jpg", false),
		image("flagged.jpg", true),
		image("later.jpg", false),
	}
	_, _, imageURL := Aggregate(nil, images)

	assert.Equal(t, "flagged.jpg", imageURL)
}

func TestAggregate_FallsBackToFirstImage(t *testing.T) {
	images := []models.RouteImage{
		image("first.jpg", false),
		image("second.jpg", false),
	}
	_, _, imageURL := Aggregate(nil, images)

	assert.Equal(t, "first.jpg", imageURL)
}

func TestAssemble_BasicFields(t *testing.T) {
	cost := 150.0
	difficulty := "Easy"
	route := models.Route{
		Model:           gorm.Model{ID: 7, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		Title:           "Old Town Walk",
		Description:     "Two days through the historic center",
		CreatorID:       3,
		Duration:        2,
		EstimatedCost:   &cost,
		DifficultyLevel: &difficulty,
		IsPublic:        true,
		Creator:         models.User{Model: gorm.Model{ID: 3}, Username: "ana", FullName: "Ana"},
		Reviews:         []models.Review{review(4), review(5)},
		Images:          []models.RouteImage{image("cover.jpg", true)},
	}

	d := Assemble(route, true)

	assert.Equal(t, uint(7), d.ID)
	assert.Equal(t, "Old Town Walk", d.Title)
	assert.Equal(t, 4.5, d.Rating)
	assert.Equal(t, 2, d.ReviewCount)
	assert.Equal(t, "cover.jpg", d.ImageURL)
	assert.True(t, d.IsFavorited)
	assert.Equal(t, "ana", d.Creator.Username)
	assert.Empty(t, d.Points)
}

func TestAssemble_AnonymousNeverFavorited(t *testing.T) {
	d := Assemble(models.Route{}, false)
	assert.False(t, d.IsFavorited)
}

func TestAssemble_DeduplicatesCategories(t *testing.T) {
	route := models.Route{
		Categories: []models.Category{
			{ID: 1, Name: "Nature"},
			{ID: 2, Name: "History"},
			{ID: 1, Name: "Nature"},
		},
	}

	d := Assemble(route, false)

	require.Len(t, d.Categories, 2)
	assert.Equal(t, uint(1), d.Categories[0].ID)
	assert.Equal(t, uint(2), d.Categories[1].ID)
}

func TestAssemble_PointsSortedBySequence(t *testing.T) {
	route := models.Route{
		Points: []models.RoutePoint{
			{SequenceOrder: 3, Notes: "finish", Point: models.PointOfInterest{Name: "Harbor"}},
			{SequenceOrder: 1, StayDuration: 45, Point: models.PointOfInterest{Name: "Castle"}},
			{SequenceOrder: 2, Point: models.PointOfInterest{Name: "Market"}},
		},
	}

	d := Assemble(route, false)

	require.Len(t, d.Points, 3)
	assert.Equal(t, "Castle", d.Points[0].Name)
	assert.Equal(t, 45, d.Points[0].StayDuration)
	assert.Equal(t, "Market", d.Points[1].Name)
	assert.Equal(t, "Harbor", d.Points[2].Name)
	assert.Equal(t, "finish", d.Points[2].Notes)

	// the input order on the route itself is untouched
	assert.Equal(t, 3, route.Points[0].SequenceOrder)
}
