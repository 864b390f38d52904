package attendance

import "errors"

// Attendance pipeline errors
var (
	// Source errors
	ErrUpstreamFetch  = errors.New("failed to fetch attendance events")
	ErrHeadcountFetch = errors.New("failed to fetch employee headcount")
	ErrNameResolution = errors.New("failed to resolve employee name")

	// Request errors
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
)
