package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"falnama/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
// compose with extra middleware as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestScope,

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
