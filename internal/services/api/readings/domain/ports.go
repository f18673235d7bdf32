package domain

import "context"

// ServicePort defines the service contract for readings
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Reading, error)
	Get(ctx context.Context, id string) (Reading, error)
	Recent(ctx context.Context, in RecentInput) ([]Reading, error)
}
