package module

import (
	"falnama/internal/services/api/localize/domain"
)

// Ports exposes the localize service for cross module wiring
type Ports struct {
	Localizer domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
