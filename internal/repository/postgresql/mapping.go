package postgresql

import (
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/utils"
)

// Statuses stored in attendances.status
const (
	storeStatusAbsent  = "absent"
	storeStatusOnLeave = "on_leave"
	storeStatusLate    = "late"
)

const employmentStatusActive = "active"

// scheduleLocation is one allowed clock location of a work schedule
type scheduleLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// scheduleTime is one weekday rule of a work schedule
type scheduleTime struct {
	DayOfWeek    int    `json:"day_of_week"` // ISO: 1 = Monday, 7 = Sunday
	ClockInTime  string `json:"clock_in_time"`
	ClockOutTime string `json:"clock_out_time"`
}

// eventRow is one attendances row joined with its employee's schedule locations
type eventRow struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	ClockIn     *time.Time
	ClockOut    *time.Time
	ClockInLat  *float64
	ClockInLng  *float64
	ClockOutLat *float64
	ClockOutLng *float64
	Status      string
	Locations   []scheduleLocation
}

// nearestLocation returns the distance in km to the closest allowed location and
// whether the point lies within that location's radius. Schedules without
// locations or rows without coordinates are treated as on-site at distance 0.
func nearestLocation(lat, lng *float64, locations []scheduleLocation) (float64, bool) {
	if lat == nil || lng == nil || len(locations) == 0 {
		return 0, true
	}

	best := math.Inf(1)
	within := false
	for _, loc := range locations {
		meters := utils.HaversineMeters(*lat, *lng, loc.Latitude, loc.Longitude)
		if meters <= loc.RadiusMeters {
			within = true
		}
		if meters < best {
			best = meters
		}
	}
	return best / 1000, within
}

func sampleOf(lat, lng *float64, distanceKM float64) attendance.LocationSample {
	sample := attendance.LocationSample{DistanceKM: distanceKM}
	if lat != nil {
		sample.Latitude = *lat
	}
	if lng != nil {
		sample.Longitude = *lng
	}
	return sample
}

// statusCode translates a stored status into the source status code
func statusCode(storeStatus string, withinRadius bool) string {
	switch storeStatus {
	case storeStatusAbsent:
		return attendance.CodeAbsent
	case storeStatusOnLeave:
		return attendance.CodeLeave
	case storeStatusLate:
		return attendance.CodeInvalidLocation
	}
	if !withinRadius {
		return attendance.CodeInvalidLocation
	}
	return attendance.CodeValid
}

func (r eventRow) toRawEvent(loc *time.Location) attendance.RawEvent {
	inKM, inWithin := nearestLocation(r.ClockInLat, r.ClockInLng, r.Locations)

	event := attendance.RawEvent{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Date:            r.Date.Format(time.DateOnly),
		ClockInLocation: sampleOf(r.ClockInLat, r.ClockInLng, inKM),
		StatusCode:      statusCode(r.Status, inWithin),
	}
	if r.ClockIn != nil {
		event.ClockIn = r.ClockIn.In(loc).Format(time.RFC3339)
	}

	if r.ClockOut != nil {
		clockOut := r.ClockOut.In(loc).Format(time.RFC3339)
		event.ClockOut = &clockOut

		outKM, outWithin := nearestLocation(r.ClockOutLat, r.ClockOutLng, r.Locations)
		sample := sampleOf(r.ClockOutLat, r.ClockOutLng, outKM)
		event.ClockOutLocation = &sample

		code := attendance.CodeValid
		if !outWithin {
			code = attendance.CodeInvalidLocation
		}
		event.ClockOutStatusCode = &code
	}

	return event
}

// shiftFromSchedule builds shift hours from a work schedule. A schedule without
// weekday rules is described by its name only.
func shiftFromSchedule(name *string, times []scheduleTime) employee.ShiftHours {
	if name == nil {
		return nil
	}
	if len(times) == 0 {
		return employee.ShiftText{Text: *name}
	}

	first := times[0]
	shift := employee.ShiftSchedule{
		DaysPerWeek: len(times),
		StartTime:   first.ClockInTime,
		EndTime:     first.ClockOutTime,
		HoursPerDay: shiftLength(first.ClockInTime, first.ClockOutTime),
		ShiftType:   strings.ToLower(*name),
	}
	for _, t := range times {
		if t.DayOfWeek >= 6 {
			shift.WeekendWork = true
		}
	}
	return shift
}

// shiftLength returns the hours between two HH:MM clock times, wrapping past midnight.
func shiftLength(start, end string) float64 {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return 0
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return 0
	}
	d := e.Sub(s)
	if d <= 0 {
		d += 24 * time.Hour
	}
	return d.Hours()
}

// ageOn returns the age in whole years at the given day
func ageOn(dob *time.Time, day time.Time) int {
	if dob == nil {
		return 0
	}
	age := day.Year() - dob.Year()
	if day.Month() < dob.Month() || (day.Month() == dob.Month() && day.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
