package views

import "journey_compass/internal/models"

// DefaultRecommendLimit caps recommendation results when the caller does not
// supply a limit.
const DefaultRecommendLimit = 10

// Recommend filters candidates by the user's stored preference record, sorts
// by rating descending and truncates to limit. Candidates must already be
// restricted to public routes not created by the viewer. A nil preference
// record means the unfiltered candidate set is used.
func Recommend(candidates []RouteDetails, pref *models.UserPreference, limit int) []RouteDetails {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}
	out := candidates
	if pref != nil {
		out = Apply(out, PreferenceFilter(*pref))
	}
	out = SortBy(out, SortRating)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PreferenceFilter derives the implicit filter specification for a stored
// preference record: each present field becomes a constraint, absent fields
// constrain nothing. Preferred difficulty is a set match, looser than the
// single-value UI filter.
func PreferenceFilter(pref models.UserPreference) Filter {
	f := Filter{
		Difficulties: []string(pref.PreferredDifficulty),
		CostMin:      pref.PreferredCostMin,
		CostMax:      pref.PreferredCostMax,
		DurationMin:  pref.PreferredDurationMin,
		DurationMax:  pref.PreferredDurationMax,
		MaxDistance:  pref.MaxDistance,
	}
	for _, id := range pref.PreferredCategories {
		f.Categories = append(f.Categories, uint(id))
	}
	return f
}
