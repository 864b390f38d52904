package employee

import (
	"context"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
)

// EmployeeService exposes employee profiles and their attendance history
type EmployeeService interface {
	// GetProfile returns an employee's directory entry
	GetProfile(ctx context.Context, id string) (EmployeeResponse, error)

	// GetAttendance returns the employee's deduplicated facts and statistics
	GetAttendance(ctx context.Context, filter attendance.EmployeeAttendanceFilter) (EmployeeAttendanceResponse, error)
}
