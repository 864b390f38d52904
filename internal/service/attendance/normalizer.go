package attendance

import (
	"strings"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
)

// MapStatus maps a raw status code to its canonical status. Unknown codes are present.
func MapStatus(code string) attendance.Status {
	switch code {
	case attendance.CodeInvalidLocation:
		return attendance.StatusLate
	case attendance.CodeAbsent:
		return attendance.StatusAbsent
	case attendance.CodeLeave:
		return attendance.StatusLeave
	default:
		return attendance.StatusPresent
	}
}

// TimeOfDay extracts HH:MM from an ISO-8601 timestamp. Timestamps without a
// time component yield "".
func TimeOfDay(timestamp string) string {
	_, clock, ok := strings.Cut(timestamp, "T")
	if !ok {
		return ""
	}
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}

// ClassifyLocation reports whether a sample was taken inside the reference radius.
func ClassifyLocation(sample attendance.LocationSample) attendance.Location {
	locType := attendance.LocationOutside
	if sample.DistanceKM < attendance.InsideRadiusKM {
		locType = attendance.LocationInside
	}
	return attendance.Location{
		Type:       locType,
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
		DistanceKM: sample.DistanceKM,
	}
}

// PlaceholderName is used when an employee's display name is unavailable.
func PlaceholderName(employeeID string) string {
	return "Employee " + employeeID
}

// Normalize converts one raw event into a fact. It never fails.
func Normalize(raw attendance.RawEvent, name string) attendance.Fact {
	if name == "" {
		name = PlaceholderName(raw.EmployeeID)
	}

	fact := attendance.Fact{
		ID:              raw.ID,
		EmployeeID:      raw.EmployeeID,
		EmployeeName:    name,
		Date:            raw.Date,
		ClockIn:         TimeOfDay(raw.ClockIn),
		ClockInLocation: ClassifyLocation(raw.ClockInLocation),
		Status:          MapStatus(raw.StatusCode),
	}

	if raw.ClockOut != nil {
		clockOut := TimeOfDay(*raw.ClockOut)
		fact.ClockOut = &clockOut
		if raw.ClockOutLocation != nil {
			loc := ClassifyLocation(*raw.ClockOutLocation)
			fact.ClockOutLocation = &loc
		}
	}

	return fact
}

// NormalizeAll normalizes raws in order. names may be nil or missing entries,
// in which case placeholder names are used.
func NormalizeAll(raws []attendance.RawEvent, names map[string]string) []attendance.Fact {
	facts := make([]attendance.Fact, 0, len(raws))
	for _, raw := range raws {
		facts = append(facts, Normalize(raw, names[raw.EmployeeID]))
	}
	return facts
}
