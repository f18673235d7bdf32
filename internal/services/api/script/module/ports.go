package module

import (
	"falnama/internal/services/api/script/domain"
)

// Ports exposes the script service for cross module wiring
type Ports struct {
	Detector domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
