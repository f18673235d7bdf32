// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"falnama/internal/modkit/httpkit"
	"falnama/internal/services/api/stats/domain"
	svc "falnama/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/systems", h.systems)
	httpkit.PostJSON[domain.DailyInput](r, "/daily", h.daily)
}

type handlers struct{ svc svc.Service }

// @Summary Reading counts per numerology system
// @Tags Stats
// @Produce json
// @Success 200 {array} domain.SystemCount "ok"
// @Router /stats/systems [get]
func (h *handlers) systems(r *stdhttp.Request) (any, error) {
	return h.svc.Systems(r.Context())
}

// @Summary Reading counts per day
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.DailyInput true "Window"
// @Success 200 {array} domain.DailyCount "ok"
// @Router /stats/daily [post]
func (h *handlers) daily(r *stdhttp.Request, in domain.DailyInput) (any, error) {
	return h.svc.Daily(r.Context(), in)
}
