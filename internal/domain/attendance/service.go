package attendance

import (
	"context"
)

// AttendanceService exposes the normalized attendance views
type AttendanceService interface {
	// GetWindow builds one page of reconciled daily summaries
	GetWindow(ctx context.Context, req WindowRequest) (WindowResult, error)

	// GetDailyFacts returns the deduplicated facts recorded on date
	GetDailyFacts(ctx context.Context, date string) ([]Fact, error)

	// GetEmployeeFacts returns one employee's deduplicated facts for a date range
	GetEmployeeFacts(ctx context.Context, filter EmployeeAttendanceFilter) ([]Fact, error)

	// DefaultRange fills an empty date range with the configured window ending today
	DefaultRange(filter EmployeeAttendanceFilter) EmployeeAttendanceFilter
}
