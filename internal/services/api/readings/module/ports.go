package module

import (
	"falnama/internal/services/api/readings/domain"
)

// Ports exposes the readings service for cross module wiring
type Ports struct {
	Readings domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
