package middleware

import (
	"net/http"

	"falnama/internal/platform/logger"
	pnet "falnama/internal/platform/net"
)

// RequestScope copies the request id into the logger context so handlers
// and the access log pick it up via logger.C
func RequestScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := pnet.RequestID(r.Context()); id != "" {
			r = r.WithContext(logger.WithRequest(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
