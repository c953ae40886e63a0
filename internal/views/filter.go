package views

import (
	"strings"

	"journey_compass/internal/models"
)

// Filter is the specification matched against assembled route views. Zero
// values impose no constraint; dimensions combine with AND, the category set
// with OR. Difficulty is the single-value UI filter; Difficulties is the
// looser set match used by preference-derived filters.
type Filter struct {
	Categories   []uint
	Difficulty   *string
	Difficulties []string
	DurationMin  *int
	DurationMax  *int
	CostMin      *float64
	CostMax      *float64
	MaxDistance  *float64
	SearchQuery  string
}

// Matches reports whether r satisfies every constraint in f. Routes with no
// estimated cost always pass the cost bounds, and routes with no distance
// always pass the distance cap.
func (f Filter) Matches(r RouteDetails) bool {
	if len(f.Categories) > 0 && !hasAnyCategory(r.Categories, f.Categories) {
		return false
	}
	if f.Difficulty != nil {
		if r.DifficultyLevel == nil || *r.DifficultyLevel != *f.Difficulty {
			return false
		}
	}
	if len(f.Difficulties) > 0 {
		if r.DifficultyLevel == nil || !containsString(f.Difficulties, *r.DifficultyLevel) {
			return false
		}
	}
	if f.DurationMin != nil && r.Duration < *f.DurationMin {
		return false
	}
	if f.DurationMax != nil && r.Duration > *f.DurationMax {
		return false
	}
	if r.EstimatedCost != nil {
		if f.CostMin != nil && *r.EstimatedCost < *f.CostMin {
			return false
		}
		if f.CostMax != nil && *r.EstimatedCost > *f.CostMax {
			return false
		}
	}
	if f.MaxDistance != nil && r.Distance != nil && *r.Distance > *f.MaxDistance {
		return false
	}
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(r.Title), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) {
			return false
		}
	}
	return true
}

// Apply returns the routes matching f, preserving relative order. The input
// slice is never modified.
func Apply(routes []RouteDetails, f Filter) []RouteDetails {
	out := make([]RouteDetails, 0, len(routes))
	for _, r := range routes {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func hasAnyCategory(have []models.Category, want []uint) bool {
	for _, c := range have {
		for _, id := range want {
			if c.ID == id {
				return true
			}
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
