package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/recipe-recommender/internal/command"
	cmdmocks "github.com/jbeshir/recipe-recommender/internal/command/mocks"
	"github.com/jbeshir/recipe-recommender/internal/datasources/mocks"
)

func TestRecommendationsList_ServeHTTP(t *testing.T) {
	recommendations := []command.RecommendedRecipe{
		{RecipeID: "r1", Score: 0.9, Reasons: []string{command.ReasonMatchesTastes}},
		{RecipeID: "r2", Score: 0.4, Reasons: []string{command.ReasonTrending}},
	}

	cases := []struct {
		name         string
		target       string
		userID       string
		catalogIDs   []string
		catalogErr   error
		skipCatalog  bool
		wantReq      *command.RecommendRecipesRequest
		executeErr   error
		wantStatus   int
		wantRecipeID string
	}{
		{
			name:        "explicit candidates",
			target:      "/v1/recommendations?candidates=r1,r2&limit=5",
			userID:      "user456",
			skipCatalog: true,
			wantReq: &command.RecommendRecipesRequest{
				UserID:             "user456",
				CandidateRecipeIDs: []string{"r1", "r2"},
				Limit:              5,
			},
			wantStatus:   http.StatusOK,
			wantRecipeID: "r1",
		},
		{
			name:       "defaults to whole catalog",
			target:     "/v1/recommendations",
			userID:     "user456",
			catalogIDs: []string{"r1", "r2", "r3"},
			wantReq: &command.RecommendRecipesRequest{
				UserID:             "user456",
				CandidateRecipeIDs: []string{"r1", "r2", "r3"},
				Limit:              defaultListLimit,
			},
			wantStatus:   http.StatusOK,
			wantRecipeID: "r1",
		},
		{
			name:        "invalid limit",
			target:      "/v1/recommendations?limit=zero",
			userID:      "user456",
			skipCatalog: true,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:       "catalog error",
			target:     "/v1/recommendations",
			userID:     "user456",
			catalogErr: errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:        "command error",
			target:      "/v1/recommendations?candidates=r1",
			userID:      "user456",
			skipCatalog: true,
			wantReq: &command.RecommendRecipesRequest{
				UserID:             "user456",
				CandidateRecipeIDs: []string{"r1"},
				Limit:              defaultListLimit,
			},
			executeErr: errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recipeIDs := mocks.NewMockRecipeIDsLister(t)
			recommendCmd := cmdmocks.NewMockCommand[
				command.RecommendRecipesRequest, []command.RecommendedRecipe,
			](t)

			if !tc.skipCatalog && tc.wantStatus != http.StatusBadRequest {
				recipeIDs.On("ListRecipeIDs", mock.Anything).
					Return(tc.catalogIDs, tc.catalogErr).
					Once()
			}
			if tc.wantReq != nil {
				var result []command.RecommendedRecipe
				if tc.executeErr == nil {
					result = recommendations
				}
				recommendCmd.On("Execute", mock.Anything, *tc.wantReq).
					Return(result, tc.executeErr).
					Once()
			}

			ctrl := RecommendationsList{
				RecipeIDs:           recipeIDs,
				RecommendRecipesCmd: recommendCmd,
			}

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			req = testContextWithUserID(tc.userID)(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantRecipeID != "" {
				var resp RecommendationsListResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				require.NotEmpty(t, resp.Data)
				assert.Equal(t, tc.wantRecipeID, resp.Data[0].RecipeID)
			}
		})
	}
}
