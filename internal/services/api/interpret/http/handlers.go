// Package http provides http transport for interpretation
package http

import (
	stdhttp "net/http"

	"falnama/internal/modkit/httpkit"
	"falnama/internal/services/api/interpret/domain"
	svc "falnama/internal/services/api/interpret/service"
)

// Register mounts interpret endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SectionsInput](r, "/sections", h.sections)
	httpkit.PostJSON[domain.ReadingInput](r, "/reading", h.reading)
}

type handlers struct{ svc svc.Service }

// @Summary Segment freeform prose into display sections
// @Tags Interpret
// @Accept json
// @Produce json
// @Param payload body domain.SectionsInput true "Text"
// @Success 200 {object} domain.SectionsResult "ok"
// @Router /interpret/sections [post]
func (h *handlers) sections(_ *stdhttp.Request, in domain.SectionsInput) (any, error) {
	return h.svc.Sections(in), nil
}

// @Summary Generate and segment interpretation text for a reading
// @Tags Interpret
// @Accept json
// @Produce json
// @Param payload body domain.ReadingInput true "Reading"
// @Success 200 {object} domain.ReadingResult "ok"
// @Router /interpret/reading [post]
func (h *handlers) reading(r *stdhttp.Request, in domain.ReadingInput) (any, error) {
	return h.svc.Reading(r.Context(), in)
}
