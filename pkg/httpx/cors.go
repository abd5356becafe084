package httpx

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows browser clients from origins to call the API with credentials.
// A single "*" allows any origin, which also disables credentials.
func CORS(origins []string) Middleware {
	anyOrigin := len(origins) == 1 && origins[0] == "*"

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: !anyOrigin,
		MaxAge:           600,
	})
	return c.Handler
}
