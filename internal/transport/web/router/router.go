package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jbeshir/recipe-recommender/internal/command"
	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/domain"
	"github.com/jbeshir/recipe-recommender/internal/transport/web/controller"
)

func MakeRouter(
	catalog datasources.CatalogRepository,
	recordActivityCmd command.Command[command.RecordActivityRequest, command.Empty],
	submitFeedbackCmd command.Command[command.SubmitFeedbackRequest, command.Empty],
	recommendRecipesCmd command.Command[command.RecommendRecipesRequest, []command.RecommendedRecipe],
	similarRecipesCmd command.Command[command.SimilarRecipesRequest, []command.ScoredRecipe],
	trendingRecipesCmd command.Command[command.TrendingRecipesRequest, []command.ScoredRecipe],
	analyzePreferencesCmd command.Command[command.AnalyzePreferencesRequest, domain.UserPreferenceProfile],
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(identityMiddleware)

	r.Handle("/v1/activity", requireUserMiddleware(controller.ActivityRecord{
		RecordActivityCmd: recordActivityCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/recipes/{recipe_id}/feedback/{feedback_type}",
		requireUserMiddleware(controller.FeedbackSubmit{
			SubmitFeedbackCmd: submitFeedbackCmd,
		})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/recipes/{recipe_id}/similar", controller.SimilarRecipesList{
		RecipeIDs:         catalog,
		SimilarRecipesCmd: similarRecipesCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recommendations", requireUserMiddleware(controller.RecommendationsList{
		RecipeIDs:           catalog,
		RecommendRecipesCmd: recommendRecipesCmd,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/trending", controller.TrendingList{
		RecipeIDs:          catalog,
		TrendingRecipesCmd: trendingRecipesCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/preferences", requireUserMiddleware(controller.PreferencesGet{
		AnalyzePreferencesCmd: analyzePreferencesCmd,
	})).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
