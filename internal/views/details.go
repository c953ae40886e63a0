package views

import (
	"sort"
	"time"

	"journey_compass/internal/models"
)

// RouteDetails is the view-model consumed by the API and the bot: a route
// record merged with its aggregated rating, resolved primary image, category
// list, creator summary and the viewer's favorite flag. Points are only
// populated on single-route detail fetches.
type RouteDetails struct {
	ID              uint              `json:"id"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	CreatorID       uint              `json:"creator_id"`
	Duration        int               `json:"duration"`
	Distance        *float64          `json:"distance,omitempty"`
	DifficultyLevel *string           `json:"difficulty_level,omitempty"`
	EstimatedCost   *float64          `json:"estimated_cost,omitempty"`
	IsPublic        bool              `json:"is_public"`
	Geometry        string            `json:"geometry,omitempty"`
	Rating          float64           `json:"rating"`
	ReviewCount     int               `json:"review_count"`
	ImageURL        string            `json:"image_url,omitempty"`
	IsFavorited     bool              `json:"is_favorited"`
	Categories      []models.Category `json:"categories"`
	Creator         CreatorSummary    `json:"creator"`
	Points          []PointDetails    `json:"points,omitempty"`
}

// CreatorSummary is the slice of the creator's profile exposed on route views.
type CreatorSummary struct {
	ID              uint   `json:"id"`
	Username        string `json:"username"`
	FullName        string `json:"full_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// PointDetails is a point of interest augmented with the route's own
// annotation of that point.
type PointDetails struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Address       string  `json:"address"`
	Type          string  `json:"type"`
	ContactInfo   string  `json:"contact_info,omitempty"`
	WebsiteURL    string  `json:"website_url,omitempty"`
	OpeningHours  string  `json:"opening_hours,omitempty"`
	SequenceOrder int     `json:"sequence_order"`
	StayDuration  int     `json:"stay_duration"`
	Notes         string  `json:"notes,omitempty"`
}

// Aggregate computes the display rating, review count and primary image URL
// for a route from its attached review and image rows. The rating is exactly
// 0 when there are no reviews. The primary image is the first row flagged
// is_primary, falling back to the first row in arrival order, then "".
func Aggregate(reviews []models.Review, images []models.RouteImage) (rating float64, reviewCount int, imageURL string) {
	reviewCount = len(reviews)
	if reviewCount > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		rating = float64(total) / float64(reviewCount)
	}
	for _, img := range images {
		if img.IsPrimary {
			imageURL = img.ImageURL
			return
		}
	}
	if len(images) > 0 {
		imageURL = images[0].ImageURL
	}
	return
}

// Assemble builds the RouteDetails view for a loaded route. The route is
// expected to carry its preloaded Reviews, Images, Categories and Creator;
// Points are included when loaded, sorted ascending by sequence order.
// favorited reports whether the viewing user has favorited the route and is
// always false for anonymous views.
func Assemble(route models.Route, favorited bool) RouteDetails {
	rating, reviewCount, imageURL := Aggregate(route.Reviews, route.Images)
	geometry, _ := GeometryToGeoJSON(route.Geometry)

	d := RouteDetails{
		ID:              route.ID,
		CreatedAt:       route.CreatedAt,
		UpdatedAt:       route.UpdatedAt,
		Title:           route.Title,
		Description:     route.Description,
		CreatorID:       route.CreatorID,
		Duration:        route.Duration,
		Distance:        route.Distance,
		DifficultyLevel: route.DifficultyLevel,
		EstimatedCost:   route.EstimatedCost,
		IsPublic:        route.IsPublic,
		Geometry:        geometry,
		Rating:          rating,
		ReviewCount:     reviewCount,
		ImageURL:        imageURL,
		IsFavorited:     favorited,
		Categories:      dedupCategories(route.Categories),
		Creator: CreatorSummary{
			ID:              route.Creator.ID,
			Username:        route.Creator.Username,
			FullName:        route.Creator.FullName,
			ProfileImageURL: route.Creator.ProfileImageURL,
		},
	}

	if len(route.Points) > 0 {
		points := make([]models.RoutePoint, len(route.Points))
		copy(points, route.Points)
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].SequenceOrder < points[j].SequenceOrder
		})
		for _, rp := range points {
			d.Points = append(d.Points, PointDetails{
				ID:            rp.Point.ID,
				Name:          rp.Point.Name,
				Description:   rp.Point.Description,
				Latitude:      rp.Point.Latitude,
				Longitude:     rp.Point.Longitude,
				Address:       rp.Point.Address,
				Type:          rp.Point.Type,
				ContactInfo:   rp.Point.ContactInfo,
				WebsiteURL:    rp.Point.WebsiteURL,
				OpeningHours:  rp.Point.OpeningHours,
				SequenceOrder: rp.SequenceOrder,
				StayDuration:  rp.StayDuration,
				Notes:         rp.Notes,
			})
		}
	}

	return d
}

// dedupCategories removes duplicate category links by id, keeping first
// occurrence order.
func dedupCategories(categories []models.Category) []models.Category {
	out := make([]models.Category, 0, len(categories))
	seen := make(map[uint]bool, len(categories))
	for _, c := range categories {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}
