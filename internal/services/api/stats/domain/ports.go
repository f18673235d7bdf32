package domain

import "context"

// ServicePort defines the service contract for stats
type ServicePort interface {
	Systems(ctx context.Context) ([]SystemCount, error)
	Daily(ctx context.Context, in DailyInput) ([]DailyCount, error)
}
