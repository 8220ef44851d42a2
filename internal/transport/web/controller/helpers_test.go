package controller

import (
	"net/http"

	"github.com/jbeshir/recipe-recommender/internal/domain"
)

func testContextWithUserID(userID string) func(*http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		if userID == "" {
			return r
		}
		return r.WithContext(domain.ContextWithUserID(r.Context(), userID))
	}
}
