package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jbeshir/recipe-recommender/internal/command"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

type FeedbackSubmit struct {
	SubmitFeedbackCmd command.Command[command.SubmitFeedbackRequest, command.Empty]
}

func (c FeedbackSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recipeID := vars["recipe_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("recipe_id", recipeID))

	req := command.SubmitFeedbackRequest{
		UserID:       domain.UserIDFromContext(ctx),
		RecipeID:     recipeID,
		FeedbackType: vars["feedback_type"],
	}

	if _, err := c.SubmitFeedbackCmd.Execute(ctx, req); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			logger.ErrorContext(ctx, "invalid feedback event",
				"field", validationErr.Field, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		logger.ErrorContext(ctx, "failed to submit feedback", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
