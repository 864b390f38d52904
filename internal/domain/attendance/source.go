package attendance

import "context"

// HeadcountSource reports the number of active employees.
type HeadcountSource interface {
	Headcount(ctx context.Context) (int, error)
}

// EventSource reads raw events from the source of record. Events are returned
// in the order the source recorded them.
type EventSource interface {
	// DailyEvents returns every raw event recorded for date (YYYY-MM-DD)
	DailyEvents(ctx context.Context, date string) ([]RawEvent, error)

	// EmployeeEvents returns one employee's raw events between start and end, inclusive
	EmployeeEvents(ctx context.Context, employeeID string, start, end string) ([]RawEvent, error)
}

// NameResolver looks up an employee's display name.
type NameResolver interface {
	EmployeeName(ctx context.Context, employeeID string) (string, error)
}
