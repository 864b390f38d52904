package employee

import (
	"fmt"
	"strings"
)

// ShiftHours describes an employee's working hours. It is either a ShiftText
// or a ShiftSchedule.
type ShiftHours interface {
	isShiftHours()
}

// ShiftText is a free-form shift description, e.g. "09:00 - 17:00".
type ShiftText struct {
	Text string
}

// ShiftSchedule is a structured shift definition.
type ShiftSchedule struct {
	DaysPerWeek int
	StartTime   string
	EndTime     string
	HoursPerDay float64
	ShiftType   string
	WeekendWork bool
}

func (ShiftText) isShiftHours()     {}
func (ShiftSchedule) isShiftHours() {}

// ShiftKind names the variant held by a ShiftHours value
type ShiftKind string

const (
	ShiftKindNone     ShiftKind = "none"
	ShiftKindText     ShiftKind = "text"
	ShiftKindSchedule ShiftKind = "schedule"
)

// KindOf reports which variant s holds.
func KindOf(s ShiftHours) ShiftKind {
	switch s.(type) {
	case ShiftText:
		return ShiftKindText
	case ShiftSchedule:
		return ShiftKindSchedule
	default:
		return ShiftKindNone
	}
}

// Describe renders a shift for display. Text shifts are returned as-is,
// schedules as "<start> - <end> (<Type> Shift)".
func Describe(s ShiftHours) string {
	switch v := s.(type) {
	case ShiftText:
		return v.Text
	case ShiftSchedule:
		return fmt.Sprintf("%s - %s (%s Shift)", v.StartTime, v.EndTime, capitalize(v.ShiftType))
	case nil:
		return ""
	default:
		panic(fmt.Sprintf("employee: unhandled shift variant %T", s))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
