package employee

import "context"

// Directory is the read-only employee directory backing name lookups and headcount.
type Directory interface {
	// GetByID returns ErrEmployeeNotFound when no employee has the id
	GetByID(ctx context.Context, id string) (Employee, error)

	// Count returns the number of active employees
	Count(ctx context.Context) (int, error)
}
