package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS applies the cross-origin policy from process configuration: an origin
// allow-list (["*"] allows all), every method and header the API uses, and
// credentials. The policy is static for the process lifetime.
func CORS(origins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.AllowCredentials(),
	)
}
