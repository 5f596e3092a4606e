package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS allows the storefront to be served from any origin. It wraps the
// whole router so preflight requests never reach route matching.
func CORS() func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
	)
}
