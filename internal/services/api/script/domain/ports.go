package domain

// ServicePort defines the service contract for script detection
type ServicePort interface {
	Detect(in DetectInput) DetectResult
	System(in SystemInput) SystemResult
}
