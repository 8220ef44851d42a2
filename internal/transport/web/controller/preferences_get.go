package controller

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/jbeshir/recipe-recommender/internal/command"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

type PreferencesGet struct {
	AnalyzePreferencesCmd command.Command[command.AnalyzePreferencesRequest, domain.UserPreferenceProfile]
}

type PreferencesGetResponse struct {
	Data domain.UserPreferenceProfile `json:"data"`
}

func (c PreferencesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	profile, err := c.AnalyzePreferencesCmd.Execute(ctx, command.AnalyzePreferencesRequest{
		UserID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to analyze preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(PreferencesGetResponse{Data: profile}); err != nil {
		logger.ErrorContext(ctx, "unable to write preference profile to response", "error", err)
	}
}
