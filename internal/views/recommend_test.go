package views

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journey_compass/internal/models"
)

func TestRecommend_NoPreferenceRecord(t *testing.T) {
	candidates := []RouteDetails{
		{ID: 1, Rating: 2},
		{ID: 2, Rating: 5},
		{ID: 3, Rating: 4},
	}

	out := Recommend(candidates, nil, 0)

	require.Len(t, out, 3)
	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(3), out[1].ID)
	assert.Equal(t, uint(1), out[2].ID)
}

func TestRecommend_DefaultLimit(t *testing.T) {
	var candidates []RouteDetails
	for i := 1; i <= 15; i++ {
		candidates = append(candidates, RouteDetails{ID: uint(i)})
	}

	out := Recommend(candidates, nil, 0)
	assert.Len(t, out, DefaultRecommendLimit)
}

func TestRecommend_ExplicitLimit(t *testing.T) {
	candidates := []RouteDetails{{ID: 1}, {ID: 2}, {ID: 3}}

	out := Recommend(candidates, nil, 2)
	assert.Len(t, out, 2)
}

func TestRecommend_DifficultySetMatch(t *testing.T) {
	pref := models.UserPreference{
		PreferredDifficulty: pq.StringArray{"Easy", "Moderate"},
	}
	candidates := []RouteDetails{
		{ID: 1, DifficultyLevel: strPtr("Easy")},
		{ID: 2, DifficultyLevel: strPtr("Hard")},
		{ID: 3, DifficultyLevel: strPtr("Moderate")},
		{ID: 4}, // no difficulty recorded
	}

	out := Recommend(candidates, &pref, 0)

	require.Len(t, out, 2)
	ids := []uint{out[0].ID, out[1].ID}
	assert.Contains(t, ids, uint(1))
	assert.Contains(t, ids, uint(3))
}

func TestRecommend_PreferredCategories(t *testing.T) {
	pref := models.UserPreference{
		PreferredCategories: pq.Int64Array{2, 3},
	}
	candidates := []RouteDetails{
		{ID: 1, Categories: []models.Category{{ID: 1}}},
		{ID: 2, Categories: []models.Category{{ID: 3}}},
	}

	out := Recommend(candidates, &pref, 0)

	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)
}

func TestRecommend_MaxDistanceCap(t *testing.T) {
	pref := models.UserPreference{MaxDistance: floatPtr(50)}
	candidates := []RouteDetails{
		{ID: 1, Distance: floatPtr(30)},
		{ID: 2, Distance: floatPtr(80)},
		{ID: 3}, // no distance recorded passes the cap
	}

	out := Recommend(candidates, &pref, 0)

	require.Len(t, out, 2)
	ids := []uint{out[0].ID, out[1].ID}
	assert.Contains(t, ids, uint(1))
	assert.Contains(t, ids, uint(3))
}

func TestRecommend_DurationAndCostBounds(t *testing.T) {
	pref := models.UserPreference{
		PreferredDurationMin: intPtr(2),
		PreferredDurationMax: intPtr(7),
		PreferredCostMin:     floatPtr(100),
		PreferredCostMax:     floatPtr(1000),
	}
	candidates := []RouteDetails{
		{ID: 1, Duration: 3, EstimatedCost: floatPtr(500)},
		{ID: 2, Duration: 10, EstimatedCost: floatPtr(500)},
		{ID: 3, Duration: 3, EstimatedCost: floatPtr(5000)},
	}

	out := Recommend(candidates, &pref, 0)

	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestRecommend_EmptyPreferenceConstrainsNothing(t *testing.T) {
	pref := models.UserPreference{}
	candidates := []RouteDetails{{ID: 1}, {ID: 2}}

	out := Recommend(candidates, &pref, 0)
	assert.Len(t, out, 2)
}

func TestPreferenceFilter_FieldMapping(t *testing.T) {
	pref := models.UserPreference{
		PreferredCategories: pq.Int64Array{1, 2},
		PreferredDifficulty: pq.StringArray{"Hard"},
		MaxDistance:         floatPtr(100),
	}

	f := PreferenceFilter(pref)

	assert.Equal(t, []uint{1, 2}, f.Categories)
	assert.Equal(t, []string{"Hard"}, f.Difficulties)
	assert.Nil(t, f.Difficulty)
	require.NotNil(t, f.MaxDistance)
	assert.Equal(t, 100.0, *f.MaxDistance)
	assert.Nil(t, f.DurationMin)
	assert.Nil(t, f.CostMin)
}

func TestRecommend_SortsFilteredSetByRating(t *testing.T) {
	pref := models.UserPreference{
		PreferredDifficulty: pq.StringArray{"Easy"},
	}
	var candidates []RouteDetails
	for i := 1; i <= 4; i++ {
		candidates = append(candidates, RouteDetails{
			ID:              uint(i),
			Rating:          float64(i),
			DifficultyLevel: strPtr("Easy"),
			Title:           fmt.Sprintf("route %d", i),
		})
	}

	out := Recommend(candidates, &pref, 2)

	require.Len(t, out, 2)
	assert.Equal(t, uint(4), out[0].ID)
	assert.Equal(t, uint(3), out[1].ID)
}
