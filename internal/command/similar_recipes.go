package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// SimilarRecipesRequest is the request for the SimilarRecipes command.
type SimilarRecipesRequest struct {
	RecipeID           string
	CandidateRecipeIDs []string
	Limit              int
}

// ScoredRecipe is a ranked result without personalization context.
type ScoredRecipe struct {
	RecipeID string  `json:"recipe_id"`
	Score    float64 `json:"score"`
}

// SimilarRecipes ranks candidates by pure content similarity to a target
// recipe. No user context is involved.
type SimilarRecipes struct {
	Catalog  datasources.RecipeFetcher
	Features domain.FeatureWeights
}

// NewSimilarRecipes creates a properly initialized SimilarRecipes command.
func NewSimilarRecipes(
	catalog datasources.RecipeFetcher,
	features domain.FeatureWeights,
) *SimilarRecipes {
	return &SimilarRecipes{Catalog: catalog, Features: features}
}

func (c *SimilarRecipes) Execute(
	ctx context.Context, req SimilarRecipesRequest,
) ([]ScoredRecipe, error) {
	targets, err := c.Catalog.FetchRecipesByID(ctx, []string{req.RecipeID})
	if err != nil {
		return nil, fmt.Errorf("fetching target recipe: %w", err)
	}
	if len(targets) == 0 {
		return nil, &domain.NotFoundError{RecipeID: req.RecipeID}
	}
	targetVector := domain.Featurize(targets[0], c.Features)

	candidates, err := c.Catalog.FetchRecipesByID(ctx, req.CandidateRecipeIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching candidate recipes: %w", err)
	}

	scored := make([]ScoredRecipe, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == req.RecipeID {
			continue
		}
		if _, dup := seen[candidate.ID]; dup {
			continue
		}
		seen[candidate.ID] = struct{}{}

		scored = append(scored, ScoredRecipe{
			RecipeID: candidate.ID,
			Score:    domain.Cosine(targetVector, domain.Featurize(candidate, c.Features)),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].RecipeID < scored[j].RecipeID
	})

	if req.Limit > 0 && len(scored) > req.Limit {
		scored = scored[:req.Limit]
	}
	return scored, nil
}
