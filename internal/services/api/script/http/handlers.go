// Package http provides http transport for script detection
package http

import (
	stdhttp "net/http"

	"falnama/internal/modkit/httpkit"
	"falnama/internal/services/api/script/domain"
	svc "falnama/internal/services/api/script/service"
)

// Register mounts script endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DetectInput](r, "/detect", h.detect)
	httpkit.PostJSON[domain.SystemInput](r, "/system", h.system)
}

type handlers struct{ svc svc.Service }

// @Summary Classify the writing system of a text
// @Tags Script
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text"
// @Success 200 {object} domain.DetectResult "ok"
// @Router /script/detect [post]
func (h *handlers) detect(_ *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(in), nil
}

// @Summary Recommend a numerology system for a name
// @Tags Script
// @Accept json
// @Produce json
// @Param payload body domain.SystemInput true "Name"
// @Success 200 {object} domain.SystemResult "ok"
// @Router /script/system [post]
func (h *handlers) system(_ *stdhttp.Request, in domain.SystemInput) (any, error) {
	return h.svc.System(in), nil
}
