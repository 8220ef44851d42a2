package controller

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/jbeshir/recipe-recommender/internal/command"
	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

type TrendingList struct {
	RecipeIDs          datasources.RecipeIDsLister
	TrendingRecipesCmd command.Command[command.TrendingRecipesRequest, []command.ScoredRecipe]
}

func (c TrendingList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	candidates := candidatesFromQuery(r.URL.Query())
	if candidates == nil {
		candidates, err = c.RecipeIDs.ListRecipeIDs(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "unable to list catalog recipe ids", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	trending, err := c.TrendingRecipesCmd.Execute(ctx, command.TrendingRecipesRequest{
		CandidateRecipeIDs: candidates,
		Limit:              limit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to rank trending recipes", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ScoredRecipesResponse{
		Data:     trending,
		Metadata: ScoredRecipesMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write trending recipes to response", "error", err)
	}
}
