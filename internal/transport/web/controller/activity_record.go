package controller

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/jbeshir/recipe-recommender/internal/command"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

type ActivityRecord struct {
	RecordActivityCmd command.Command[command.RecordActivityRequest, command.Empty]
}

type ActivityRecordRequestBody struct {
	RecipeID     string   `json:"recipe_id"`
	ActivityType string   `json:"activity_type"`
	Rating       *float64 `json:"rating,omitempty"`
}

func (c ActivityRecord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body ActivityRecordRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode activity body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := command.RecordActivityRequest{
		UserID:       domain.UserIDFromContext(ctx),
		RecipeID:     body.RecipeID,
		ActivityType: body.ActivityType,
		Rating:       body.Rating,
	}

	if _, err := c.RecordActivityCmd.Execute(ctx, req); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			logger.ErrorContext(ctx, "invalid activity event",
				"field", validationErr.Field, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		logger.ErrorContext(ctx, "failed to record activity", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
