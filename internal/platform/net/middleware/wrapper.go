// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"
	"time"

	pstrings "falnama/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RequestID injects a request id into the context
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Forwarded-For / X-Real-IP
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// NoCache sets response headers that disable client caching
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Compress enables response compression at the given level
func Compress(level int) func(http.Handler) http.Handler {
	return chimw.Compress(level)
}

// Heartbeat answers 200 on path for load balancer probes
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// RedirectSlashes redirects paths with a trailing slash to the clean form
func RedirectSlashes() func(http.Handler) http.Handler { return chimw.RedirectSlashes }

// StripSlashes removes a trailing slash before routing
func StripSlashes() func(http.Handler) http.Handler { return chimw.StripSlashes }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS wraps go-chi/cors with sane defaults applied
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(
			o.AllowedHeaders,
			[]string{
				"Accept",
				"Authorization",
				"Content-Type",
				"X-Request-ID",
			},
		),
		ExposedHeaders:   o.ExposedHeaders,
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
