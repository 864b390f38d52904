package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidShiftHours = errors.New("shift hours must be a string or a shift object")
)
