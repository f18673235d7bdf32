// Package http provides http transport for localization
package http

import (
	stdhttp "net/http"

	"falnama/internal/modkit/httpkit"
	"falnama/internal/services/api/localize/domain"
	svc "falnama/internal/services/api/localize/service"
)

// Register mounts localize endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DigitsInput](r, "/digits", h.digits)
	httpkit.PostJSON[domain.NumberInput](r, "/number", h.number)
	httpkit.PostJSON[domain.OrdinalInput](r, "/ordinal", h.ordinal)
	httpkit.PostJSON[domain.DateInput](r, "/date", h.date)
}

type handlers struct{ svc svc.Service }

// @Summary Convert ASCII digits to Persian digits
// @Tags Localize
// @Accept json
// @Produce json
// @Param payload body domain.DigitsInput true "Text"
// @Success 200 {object} domain.DigitsResult "ok"
// @Router /localize/digits [post]
func (h *handlers) digits(_ *stdhttp.Request, in domain.DigitsInput) (any, error) {
	return h.svc.Digits(in), nil
}

// @Summary Render an integer with Persian digits
// @Tags Localize
// @Accept json
// @Produce json
// @Param payload body domain.NumberInput true "Number"
// @Success 200 {object} domain.NumberResult "ok"
// @Router /localize/number [post]
func (h *handlers) number(_ *stdhttp.Request, in domain.NumberInput) (any, error) {
	return h.svc.Number(in), nil
}

// @Summary Render a Persian ordinal
// @Tags Localize
// @Accept json
// @Produce json
// @Param payload body domain.OrdinalInput true "Ordinal"
// @Success 200 {object} domain.OrdinalResult "ok"
// @Router /localize/ordinal [post]
func (h *handlers) ordinal(_ *stdhttp.Request, in domain.OrdinalInput) (any, error) {
	return h.svc.Ordinal(in), nil
}

// @Summary Format an ISO date in the Jalaali calendar
// @Tags Localize
// @Accept json
// @Produce json
// @Param payload body domain.DateInput true "Date"
// @Success 200 {object} domain.DateResult "ok"
// @Router /localize/date [post]
func (h *handlers) date(_ *stdhttp.Request, in domain.DateInput) (any, error) {
	return h.svc.Date(in), nil
}
