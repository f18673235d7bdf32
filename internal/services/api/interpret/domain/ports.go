package domain

import "context"

// ServicePort defines the service contract for interpretation
type ServicePort interface {
	Sections(in SectionsInput) SectionsResult
	Reading(ctx context.Context, in ReadingInput) (ReadingResult, error)
}
