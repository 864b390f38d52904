package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
)

type apiLocation struct {
	DistanceKM float64 `json:"distance_km"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (l apiLocation) sample() attendance.LocationSample {
	return attendance.LocationSample{
		DistanceKM: l.DistanceKM,
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
	}
}

type apiAttendanceRecord struct {
	ID               string       `json:"id"`
	EmployeeID       string       `json:"employee_id"`
	Date             string       `json:"date"`
	ClockIn          string       `json:"clock_in"`
	ClockOut         *string      `json:"clock_out"`
	Location         apiLocation  `json:"location"`
	ClockOutLocation *apiLocation `json:"clock_out_location"`
	Status           string       `json:"status"`
	ClockOutStatus   *string      `json:"clock_out_status"`
}

func (r apiAttendanceRecord) toRawEvent() attendance.RawEvent {
	event := attendance.RawEvent{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		Date:               r.Date,
		ClockIn:            r.ClockIn,
		ClockInLocation:    r.Location.sample(),
		StatusCode:         r.Status,
		ClockOutStatusCode: r.ClockOutStatus,
	}
	if r.ClockOut != nil && *r.ClockOut != "" {
		event.ClockOut = r.ClockOut
		if r.ClockOutLocation != nil {
			sample := r.ClockOutLocation.sample()
			event.ClockOutLocation = &sample
		}
	}
	return event
}

type apiShiftSchedule struct {
	DaysPerWeek int     `json:"days_per_week"`
	EndTime     string  `json:"end_time"`
	HoursPerDay float64 `json:"hours_per_day"`
	ShiftType   string  `json:"shift_type"`
	StartTime   string  `json:"start_time"`
	WeekendWork bool    `json:"weekend_work"`
}

// apiShiftHours decodes employee_shift_hours, which is either a JSON string or an object
type apiShiftHours struct {
	value employee.ShiftHours
}

func (s *apiShiftHours) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		s.value = nil
	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		s.value = employee.ShiftText{Text: text}
	case data[0] == '{':
		var sched apiShiftSchedule
		if err := json.Unmarshal(data, &sched); err != nil {
			return err
		}
		s.value = employee.ShiftSchedule{
			DaysPerWeek: sched.DaysPerWeek,
			StartTime:   sched.StartTime,
			EndTime:     sched.EndTime,
			HoursPerDay: sched.HoursPerDay,
			ShiftType:   sched.ShiftType,
			WeekendWork: sched.WeekendWork,
		}
	default:
		return fmt.Errorf("%w: %s", employee.ErrInvalidShiftHours, data)
	}
	return nil
}

// flexString accepts a JSON string or number
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type apiEmployee struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Designation string        `json:"designation"`
	DateOfBirth string        `json:"date_of_birth"`
	PhoneNumber string        `json:"phone_number"`
	Address     string        `json:"address"`
	Age         int           `json:"age"`
	BloodType   string        `json:"blood_type"`
	CTC         flexString    `json:"ctc"`
	ShiftHours  apiShiftHours `json:"employee_shift_hours"`
}

func (e apiEmployee) toEmployee() employee.Employee {
	return employee.Employee{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Designation: e.Designation,
		DateOfBirth: e.DateOfBirth,
		PhoneNumber: e.PhoneNumber,
		Address:     e.Address,
		Age:         e.Age,
		BloodType:   e.BloodType,
		CTC:         string(e.CTC),
		ShiftHours:  e.ShiftHours.value,
	}
}
