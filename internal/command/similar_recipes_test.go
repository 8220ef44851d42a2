package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/recipe-recommender/internal/domain"
)

func scoredIDs(results []ScoredRecipe) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.RecipeID)
	}
	return ids
}

func TestSimilarRecipes_RanksByContent(t *testing.T) {
	store := newFakeStore(
		recipe("r1", "italian", "pasta", "tomato"),
		recipe("r2", "italian", "pasta", "cream"),
		recipe("r3", "italian", "rice"),
		recipe("r4", "salad", "lettuce"),
	)
	cmd := NewSimilarRecipes(store, domain.DefaultFeatureWeights())

	results, err := cmd.Execute(context.Background(), SimilarRecipesRequest{
		RecipeID:           "r1",
		CandidateRecipeIDs: []string{"r2", "r3", "r4"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"r2", "r3", "r4"}, scoredIDs(results))
	assert.Greater(t, results[0].Score, results[1].Score)
	// r4 shares only the default time bucket with the target.
	assert.Greater(t, results[1].Score, results[2].Score)
}

func TestSimilarRecipes_TargetExcludedFromResults(t *testing.T) {
	store := newFakeStore(
		recipe("r1", "italian", "pasta"),
		recipe("r2", "italian", "pasta"),
	)
	cmd := NewSimilarRecipes(store, domain.DefaultFeatureWeights())

	results, err := cmd.Execute(context.Background(), SimilarRecipesRequest{
		RecipeID:           "r1",
		CandidateRecipeIDs: []string{"r1", "r2", "r2"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"r2"}, scoredIDs(results))
}

func TestSimilarRecipes_UnknownTarget(t *testing.T) {
	store := newFakeStore(recipe("r1", "italian", "pasta"))
	cmd := NewSimilarRecipes(store, domain.DefaultFeatureWeights())

	_, err := cmd.Execute(context.Background(), SimilarRecipesRequest{
		RecipeID:           "ghost",
		CandidateRecipeIDs: []string{"r1"},
	})

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.RecipeID)
}

func TestSimilarRecipes_Limit(t *testing.T) {
	store := newFakeStore(
		recipe("r1", "italian", "pasta"),
		recipe("r2", "italian", "pasta"),
		recipe("r3", "italian", "pasta"),
		recipe("r4", "italian", "pasta"),
	)
	cmd := NewSimilarRecipes(store, domain.DefaultFeatureWeights())

	results, err := cmd.Execute(context.Background(), SimilarRecipesRequest{
		RecipeID:           "r1",
		CandidateRecipeIDs: []string{"r2", "r3", "r4"},
		Limit:              2,
	})
	require.NoError(t, err)

	// All candidates tie; the tiebreak is alphabetical.
	assert.Equal(t, []string{"r2", "r3"}, scoredIDs(results))
}
