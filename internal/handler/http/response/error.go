package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/validator"
)

// Error codes
const (
	CodeHeadcountUnavailable = "HEADCOUNT_UNAVAILABLE"
	CodeUpstreamUnavailable  = "UPSTREAM_UNAVAILABLE"
)

// HeadcountUnavailableMessage is shown when summaries cannot be built
const HeadcountUnavailableMessage = "Employee headcount is unavailable, attendance summaries cannot be shown right now"

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, attendance.ErrHeadcountFetch):
		ServiceUnavailable(w, CodeHeadcountUnavailable, HeadcountUnavailableMessage, nil)
	case errors.Is(err, attendance.ErrUpstreamFetch):
		BadGateway(w, "Attendance source is unavailable")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidShiftHours):
		BadGateway(w, "Employee record has malformed shift hours")

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		ServiceUnavailable(w, CodeUpstreamUnavailable, "Request timed out", nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
