package controller

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/jbeshir/recipe-recommender/internal/command"
	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

type RecommendationsList struct {
	RecipeIDs           datasources.RecipeIDsLister
	RecommendRecipesCmd command.Command[command.RecommendRecipesRequest, []command.RecommendedRecipe]
}

type RecommendationsListResponse struct {
	Data     []command.RecommendedRecipe `json:"data"`
	Metadata RecommendationsListMetadata `json:"metadata"`
}

type RecommendationsListMetadata struct{}

func (c RecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	recommendations, err := c.RecommendRecipesCmd.Execute(ctx, command.RecommendRecipesRequest{
		UserID:             domain.UserIDFromContext(ctx),
		CandidateRecipeIDs: candidates,
		Limit:              limit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate recommendations", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendationsListResponse{
		Data:     recommendations,
		Metadata: RecommendationsListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommendations to response", "error", err)
	}
}
