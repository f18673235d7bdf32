package module

import (
	"falnama/internal/services/api/interpret/domain"
)

// Ports exposes the interpret service for cross module wiring
type Ports struct {
	Interpreter domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
