package router

import (
	"net/http"

	"github.com/jbeshir/recipe-recommender/internal/domain"
)

const userIDHeader = "X-User-ID"

// identityMiddleware attaches the caller identity from the X-User-ID header
// to the request context. Requests without the header stay anonymous;
// endpoints that need an identity enforce it with requireUserMiddleware.
func identityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID != "" {
			r = r.WithContext(domain.ContextWithUserID(r.Context(), userID))
		}

		next.ServeHTTP(w, r)
	})
}
