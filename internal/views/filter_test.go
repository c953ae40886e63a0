package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journey_compass/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func sampleRoutes() []RouteDetails {
	return []RouteDetails{
		{
			ID:              1,
			Title:           "Coastal Stroll",
			Description:     "Easy walk along the shore",
			Duration:        3,
			EstimatedCost:   floatPtr(500),
			DifficultyLevel: strPtr("Easy"),
			Categories:      []models.Category{{ID: 1, Name: "Nature"}},
		},
		{
			ID:              2,
			Title:           "Mountain Trek",
			Description:     "Ten hard days in the high country",
			Duration:        10,
			EstimatedCost:   floatPtr(2000),
			DifficultyLevel: strPtr("Hard"),
			Categories:      []models.Category{{ID: 2, Name: "Adventure"}},
		},
	}
}

func TestApply_DurationWindow(t *testing.T) {
	out := Apply(sampleRoutes(), Filter{DurationMin: intPtr(1), DurationMax: intPtr(5)})

	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestApply_CategoryMembership(t *testing.T) {
	out := Apply(sampleRoutes(), Filter{Categories: []uint{2}})

	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)
}

func TestApply_CategorySetIsOrSemantics(t *testing.T) {
	out := Apply(sampleRoutes(), Filter{Categories: []uint{1, 2}})
	assert.Len(t, out, 2)
}

func TestApply_SearchNoMatch(t *testing.T) {
	out := Apply(sampleRoutes(), Filter{SearchQuery: "zzz"})
	assert.Empty(t, out)
}

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	out := Apply(sampleRoutes(), Filter{SearchQuery: "MOUNTAIN"})
	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)

	// matches description as well as title
	out = Apply(sampleRoutes(), Filter{SearchQuery: "shore"})
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestApply_DifficultyExactMatch(t *testing.T) {
	out := Apply(sampleRoutes(), Filter{Difficulty: strPtr("Hard")})
	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)

	// case-sensitive, as stored
	out = Apply(sampleRoutes(), Filter{Difficulty: strPtr("hard")})
	assert.Empty(t, out)
}

func TestApply_MissingCostPassesCostFilter(t *testing.T) {
	routes := []RouteDetails{
		{ID: 1, Duration: 2, EstimatedCost: nil},
		{ID: 2, Duration: 2, EstimatedCost: floatPtr(5000)},
	}

	out := Apply(routes, Filter{CostMin: floatPtr(0), CostMax: floatPtr(100)})

	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestApply_CostBoundsInclusive(t *testing.T) {
	routes := []RouteDetails{{ID: 1, EstimatedCost: floatPtr(100)}}

	assert.Len(t, Apply(routes, Filter{CostMax: floatPtr(100)}), 1)
	assert.Len(t, Apply(routes, Filter{CostMin: floatPtr(100)}), 1)
	assert.Empty(t, Apply(routes, Filter{CostMax: floatPtr(99.99)}))
}

func TestApply_DimensionsCombineWithAnd(t *testing.T) {
	// duration matches route 1, category matches route 2: nothing survives
	out := Apply(sampleRoutes(), Filter{
		DurationMax: intPtr(5),
		Categories:  []uint{2},
	})
	assert.Empty(t, out)
}

func TestApply_Idempotent(t *testing.T) {
	f := Filter{DurationMin: intPtr(1), DurationMax: intPtr(5), SearchQuery: "coastal"}

	once := Apply(sampleRoutes(), f)
	twice := Apply(once, f)

	assert.Equal(t, once, twice)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := sampleRoutes()
	Apply(in, Filter{SearchQuery: "zzz"})

	assert.Equal(t, sampleRoutes(), in)
}

func TestApply_PreservesRelativeOrder(t *testing.T) {
	routes := []RouteDetails{{ID: 3}, {ID: 1}, {ID: 2}}

	out := Apply(routes, Filter{})

	require.Len(t, out, 3)
	assert.Equal(t, uint(3), out[0].ID)
	assert.Equal(t, uint(1), out[1].ID)
	assert.Equal(t, uint(2), out[2].ID)
}

func TestApply_EmptyFilterKeepsEverything(t *testing.T) {
	assert.Len(t, Apply(sampleRoutes(), Filter{}), 2)
}
