package controller

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/jbeshir/recipe-recommender/internal/command"
	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

type SimilarRecipesList struct {
	RecipeIDs         datasources.RecipeIDsLister
	SimilarRecipesCmd command.Command[command.SimilarRecipesRequest, []command.ScoredRecipe]
}

type ScoredRecipesResponse struct {
	Data     []command.ScoredRecipe `json:"data"`
	Metadata ScoredRecipesMetadata  `json:"metadata"`
}

type ScoredRecipesMetadata struct{}

func (c SimilarRecipesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["recipe_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("recipe_id", recipeID))

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

	similar, err := c.SimilarRecipesCmd.Execute(ctx, command.SimilarRecipesRequest{
		RecipeID:           recipeID,
		CandidateRecipeIDs: candidates,
		Limit:              limit,
	})
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			logger.ErrorContext(ctx, "recipe has no catalog record", "error", err)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "failed to rank similar recipes", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ScoredRecipesResponse{
		Data:     similar,
		Metadata: ScoredRecipesMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write similar recipes to response", "error", err)
	}
}
