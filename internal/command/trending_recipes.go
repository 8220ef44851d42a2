package command

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

// TrendingRecipesRequest is the request for the TrendingRecipes command.
type TrendingRecipesRequest struct {
	CandidateRecipeIDs []string
	Limit              int
}

// TrendingRecipes ranks candidates by recency-weighted popularity across
// all users; no personalization is involved.
type TrendingRecipes struct {
	Activity datasources.RecipeActivityLister
	Config   domain.TrendingConfig
	Now      func() time.Time
}

// NewTrendingRecipes creates a properly initialized TrendingRecipes command.
func NewTrendingRecipes(
	activity datasources.RecipeActivityLister,
	config domain.TrendingConfig,
) *TrendingRecipes {
	return &TrendingRecipes{
		Activity: activity,
		Config:   config,
		Now:      time.Now,
	}
}

func (c *TrendingRecipes) Execute(
	ctx context.Context, req TrendingRecipesRequest,
) ([]ScoredRecipe, error) {
	if len(req.CandidateRecipeIDs) == 0 {
		return []ScoredRecipe{}, nil
	}

	eventsByRecipe := make(map[string][]domain.ActivityEvent, len(req.CandidateRecipeIDs))
	for _, recipeID := range req.CandidateRecipeIDs {
		if _, dup := eventsByRecipe[recipeID]; dup {
			continue
		}
		events, err := c.Activity.ListRecipeActivity(ctx, recipeID)
		if err != nil {
			return nil, fmt.Errorf("listing recipe activity: %w", err)
		}
		eventsByRecipe[recipeID] = events
	}

	scores := domain.TrendingScores(eventsByRecipe, c.Now().UTC(), c.Config)

	scored := make([]ScoredRecipe, 0, len(scores))
	for recipeID, score := range scores {
		scored = append(scored, ScoredRecipe{RecipeID: recipeID, Score: score})
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
