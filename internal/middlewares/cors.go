package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// Cors allows the configured origins (comma separated, or "*"). Credentials
// are only allowed when every origin is explicit.
func Cors(allowed string) func(http.Handler) http.Handler {
	var origins []string
	wildcard := false
	for _, o := range strings.Split(allowed, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			wildcard = true
		}
		origins = append(origins, o)
	}
	if len(origins) == 0 {
		origins = []string{"*"}
		wildcard = true
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}
