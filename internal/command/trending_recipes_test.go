package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/recipe-recommender/internal/domain"
)

func TestTrendingRecipes_RanksByRecentPopularity(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-24 * time.Hour)
	stale := now.Add(-31 * 24 * time.Hour)

	store := newFakeStore()
	// r1 and r2 tie on recent weight; r1's stale events must not count.
	store.act("a", "r1", domain.ActivityCooked, recent)
	store.act("b", "r1", domain.ActivityCooked, recent)
	store.act("a", "r1", domain.ActivityCooked, stale)
	store.act("a", "r1", domain.ActivityCooked, stale)
	store.act("a", "r2", domain.ActivityCooked, recent)
	store.act("b", "r2", domain.ActivityFavorited, recent)
	store.act("c", "r2", domain.ActivityViewed, recent)
	store.act("a", "r3", domain.ActivityViewed, recent)
	store.act("b", "r3", domain.ActivityViewed, recent)
	store.act("a", "r4", domain.ActivityCooked, stale)

	cmd := NewTrendingRecipes(store, domain.DefaultTrendingConfig())
	cmd.Now = func() time.Time { return now }

	results, err := cmd.Execute(context.Background(), TrendingRecipesRequest{
		CandidateRecipeIDs: []string{"r1", "r2", "r3", "r4"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, scoredIDs(results))
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	assert.InDelta(t, 1.0, results[1].Score, 1e-9)
	assert.InDelta(t, 2.0/6.0, results[2].Score, 1e-9)
	assert.InDelta(t, 0, results[3].Score, 1e-9)
}

func TestTrendingRecipes_EmptyCandidates(t *testing.T) {
	cmd := NewTrendingRecipes(newFakeStore(), domain.DefaultTrendingConfig())

	results, err := cmd.Execute(context.Background(), TrendingRecipesRequest{})
	require.NoError(t, err)
	assert.Equal(t, []ScoredRecipe{}, results)
}

func TestTrendingRecipes_Limit(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-time.Hour)

	store := newFakeStore()
	store.act("a", "r1", domain.ActivityCooked, recent)
	store.act("a", "r2", domain.ActivityViewed, recent)
	store.act("a", "r3", domain.ActivityViewed, recent)

	cmd := NewTrendingRecipes(store, domain.DefaultTrendingConfig())
	cmd.Now = func() time.Time { return now }

	results, err := cmd.Execute(context.Background(), TrendingRecipesRequest{
		CandidateRecipeIDs: []string{"r1", "r2", "r3", "r1"},
		Limit:              2,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "r2"}, scoredIDs(results))
}
