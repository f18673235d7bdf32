// Package http provides http transport for readings
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"falnama/internal/modkit/httpkit"
	"falnama/internal/services/api/readings/domain"
	svc "falnama/internal/services/api/readings/service"
)

// Register mounts readings endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.RecentInput](r, "/recent", h.recent)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// @Summary Compute and persist a numerology reading
// @Tags Readings
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Reading"
// @Success 200 {object} domain.Reading "ok"
// @Router /readings [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary List recent readings
// @Tags Readings
// @Accept json
// @Produce json
// @Param payload body domain.RecentInput true "Filter"
// @Success 200 {array} domain.Reading "ok"
// @Router /readings/recent [post]
func (h *handlers) recent(r *stdhttp.Request, in domain.RecentInput) (any, error) {
	return h.svc.Recent(r.Context(), in)
}

// @Summary Fetch one reading by id
// @Tags Readings
// @Produce json
// @Param id path string true "Reading id"
// @Success 200 {object} domain.Reading "ok"
// @Router /readings/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}
