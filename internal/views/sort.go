package views

import "sort"

// Sort keys accepted by SortBy.
const (
	SortPopular      = "popular"
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortDurationAsc  = "duration_asc"
	SortDurationDesc = "duration_desc"
	SortRating       = "rating"
)

// SortBy returns a new slice ordered by the named key. Ties keep their
// original relative order. Unrecognized keys leave the input order unchanged.
func SortBy(routes []RouteDetails, key string) []RouteDetails {
	out := make([]RouteDetails, len(routes))
	copy(out, routes)

	switch key {
	case SortPopular, SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case SortDurationAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Duration < out[j].Duration })
	case SortDurationDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Duration > out[j].Duration })
	}
	return out
}
