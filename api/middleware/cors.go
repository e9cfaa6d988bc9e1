package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/yobeidat/obeidat-motors-backend/pkg/config"
)

var defaultCORSOrigins = []string{
	"http://localhost:5173", // local storefront dev server
	"http://localhost:3000",
}

// CORS returns middleware that applies the storefront's allowed origin policy.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
