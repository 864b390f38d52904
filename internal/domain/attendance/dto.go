package attendance

import (
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/validator"
)

// ========================================
// SUMMARY DTOs
// ========================================

// DailySummary is the headcount-consistent status breakdown for one day
type DailySummary struct {
	Date           string `json:"date"`
	Day            string `json:"day"`
	TotalPresent   int    `json:"total_present"`
	TotalLate      int    `json:"total_late"`
	TotalAbsent    int    `json:"total_absent"`
	TotalLeave     int    `json:"total_leave"`
	TotalEmployees int    `json:"total_employees"`
}

// Counts returns the status buckets of the summary
func (s DailySummary) Counts() StatusCounts {
	return StatusCounts{
		Present: s.TotalPresent,
		Late:    s.TotalLate,
		Absent:  s.TotalAbsent,
		Leave:   s.TotalLeave,
	}
}

// WindowResult is one page of daily summaries, most recent date first
type WindowResult struct {
	Items      []DailySummary `json:"items"`
	TotalPages int            `json:"total_pages"`
	Page       int            `json:"page,omitempty"`
	PageSize   int            `json:"page_size,omitempty"`
	WindowDays int            `json:"window_days,omitempty"`
	Degraded   []string       `json:"degraded_dates,omitempty"` // dates whose events could not be fetched
}

// EmptyWindow is returned when a window cannot be built at all
func EmptyWindow() WindowResult {
	return WindowResult{Items: []DailySummary{}, TotalPages: 0}
}

// WindowRequest selects a page of the rolling window ending today.
// Zero values are replaced by the configured defaults.
type WindowRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Days     int `json:"days"`
}

const (
	MaxPageSize   = 100
	MaxWindowDays = 366
)

func (r *WindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}

	if r.PageSize < 1 || r.PageSize > MaxPageSize {
		errs = append(errs, validator.ValidationError{
			Field:   "page_size",
			Message: "page_size must be between 1 and " + validator.Itoa(MaxPageSize),
		})
	}

	if r.Days < 1 || r.Days > MaxWindowDays {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be between 1 and " + validator.Itoa(MaxWindowDays),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// DETAIL DTOs
// ========================================

// EmployeeAttendanceFilter selects an employee's facts over a date range
type EmployeeAttendanceFilter struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *EmployeeAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
