package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jbeshir/recipe-recommender/internal/command"
	cmdmocks "github.com/jbeshir/recipe-recommender/internal/command/mocks"
	"github.com/jbeshir/recipe-recommender/internal/domain"
)

func TestActivityRecord_ServeHTTP(t *testing.T) {
	rating := func(v float64) *float64 { return &v }

	cases := []struct {
		name       string
		userID     string
		body       string
		wantReq    *command.RecordActivityRequest
		executeErr error
		wantStatus int
	}{
		{
			name:   "cooked",
			userID: "user456",
			body:   `{"recipe_id":"r1","activity_type":"cooked"}`,
			wantReq: &command.RecordActivityRequest{
				UserID:       "user456",
				RecipeID:     "r1",
				ActivityType: "cooked",
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "rated",
			userID: "user456",
			body:   `{"recipe_id":"r1","activity_type":"rated","rating":4.5}`,
			wantReq: &command.RecordActivityRequest{
				UserID:       "user456",
				RecipeID:     "r1",
				ActivityType: "rated",
				Rating:       rating(4.5),
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "malformed body",
			userID:     "user456",
			body:       `{"recipe_id":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "validation error",
			userID: "user456",
			body:   `{"recipe_id":"r1","activity_type":"licked"}`,
			wantReq: &command.RecordActivityRequest{
				UserID:       "user456",
				RecipeID:     "r1",
				ActivityType: "licked",
			},
			executeErr: &domain.ValidationError{Field: "activity_type", Reason: "unknown"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "storage error",
			userID: "user456",
			body:   `{"recipe_id":"r1","activity_type":"cooked"}`,
			wantReq: &command.RecordActivityRequest{
				UserID:       "user456",
				RecipeID:     "r1",
				ActivityType: "cooked",
			},
			executeErr: errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recordCmd := cmdmocks.NewMockCommand[command.RecordActivityRequest, command.Empty](t)
			if tc.wantReq != nil {
				recordCmd.On("Execute", mock.Anything, *tc.wantReq).
					Return(command.Empty{}, tc.executeErr).
					Once()
			}

			ctrl := ActivityRecord{RecordActivityCmd: recordCmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/activity", strings.NewReader(tc.body))
			req = testContextWithUserID(tc.userID)(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
