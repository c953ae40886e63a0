package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortBy_RatingDescending(t *testing.T) {
	routes := []RouteDetails{
		{ID: 1, Rating: 2.5},
		{ID: 2, Rating: 4.8},
		{ID: 3, Rating: 3.1},
	}

	out := SortBy(routes, SortRating)

	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(3), out[1].ID)
	assert.Equal(t, uint(1), out[2].ID)
}

func TestSortBy_PopularIsRatingAlias(t *testing.T) {
	routes := []RouteDetails{{ID: 1, Rating: 1}, {ID: 2, Rating: 5}}

	assert.Equal(t, SortBy(routes, SortRating), SortBy(routes, SortPopular))
}

func TestSortBy_RatingTiesKeepOriginalOrder(t *testing.T) {
	routes := []RouteDetails{
		{ID: 1, Rating: 4},
		{ID: 2, Rating: 4},
		{ID: 3, Rating: 4},
	}

	out := SortBy(routes, SortRating)

	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(2), out[1].ID)
	assert.Equal(t, uint(3), out[2].ID)
}

func TestSortBy_NewestAndOldest(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	routes := []RouteDetails{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(48 * time.Hour)},
		{ID: 3, CreatedAt: base.Add(24 * time.Hour)},
	}

	newest := SortBy(routes, SortNewest)
	require.Equal(t, uint(2), newest[0].ID)
	require.Equal(t, uint(3), newest[1].ID)
	require.Equal(t, uint(1), newest[2].ID)

	oldest := SortBy(routes, SortOldest)
	assert.Equal(t, uint(1), oldest[0].ID)
	assert.Equal(t, uint(3), oldest[1].ID)
	assert.Equal(t, uint(2), oldest[2].ID)
}

func TestSortBy_DurationAscDescAreReversed(t *testing.T) {
	routes := []RouteDetails{
		{ID: 1, Duration: 7},
		{ID: 2, Duration: 2},
		{ID: 3, Duration: 14},
	}

	asc := SortBy(routes, SortDurationAsc)
	desc := SortBy(routes, SortDurationDesc)

	require.Len(t, asc, 3)
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortBy_EqualDurationsStableBothDirections(t *testing.T) {
	routes := []RouteDetails{
		{ID: 1, Duration: 5},
		{ID: 2, Duration: 5},
	}

	asc := SortBy(routes, SortDurationAsc)
	desc := SortBy(routes, SortDurationDesc)

	assert.Equal(t, uint(1), asc[0].ID)
	assert.Equal(t, uint(1), desc[0].ID)
}

func TestSortBy_UnknownKeyPreservesOrder(t *testing.T) {
	routes := []RouteDetails{{ID: 3}, {ID: 1}, {ID: 2}}

	out := SortBy(routes, "definitely_not_a_key")

	assert.Equal(t, routes, out)
}

func TestSortBy_DoesNotMutateInput(t *testing.T) {
	routes := []RouteDetails{{ID: 1, Rating: 1}, {ID: 2, Rating: 5}}

	SortBy(routes, SortRating)

	assert.Equal(t, uint(1), routes[0].ID)
}
