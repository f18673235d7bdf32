package module

import (
	"falnama/internal/services/api/stats/domain"
)

// Ports exposes the stats service for cross module wiring
type Ports struct {
	Stats domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
