package middleware

import (
	"net/http"

	"github.com/hive-community/backend/config"
	"github.com/rs/cors"
)

// AllowCors wraps the API handler with the configured CORS policy.
func AllowCors(cfg config.Configs, handler http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{cfg.ApiServer.AllowedOrigin},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(handler)
}
