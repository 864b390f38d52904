package postgresql

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var office = []scheduleLocation{
	{Latitude: -6.175392, Longitude: 106.827153, RadiusMeters: 100},
	{Latitude: -6.195015, Longitude: 106.823066, RadiusMeters: 50},
}

func TestNearestLocation(t *testing.T) {
	km, within := nearestLocation(ptr(-6.175392), ptr(106.827153), office)
	assert.InDelta(t, 0, km, 1e-9)
	assert.True(t, within)

	// about 2.2 km from the first office, next to the second
	km, within = nearestLocation(ptr(-6.1951), ptr(106.8231), office)
	assert.Less(t, km, 0.05)
	assert.True(t, within)

	km, within = nearestLocation(ptr(-6.30), ptr(106.90), office)
	assert.Greater(t, km, 10.0)
	assert.False(t, within)

	km, within = nearestLocation(nil, nil, office)
	assert.Zero(t, km)
	assert.True(t, within)

	_, within = nearestLocation(ptr(-6.30), ptr(106.90), nil)
	assert.True(t, within)
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		store  string
		within bool
		want   string
	}{
		{"absent", false, attendance.CodeAbsent},
		{"on_leave", true, attendance.CodeLeave},
		{"late", true, attendance.CodeInvalidLocation},
		{"on_time", false, attendance.CodeInvalidLocation},
		{"on_time", true, attendance.CodeValid},
		{"early_leave", true, attendance.CodeValid},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, statusCode(c.store, c.within), "%s within=%v", c.store, c.within)
	}
}

func TestEventRow_ToRawEvent(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	clockIn := time.Date(2025, 3, 12, 1, 55, 0, 0, time.UTC)
	clockOut := time.Date(2025, 3, 12, 10, 5, 0, 0, time.UTC)

	row := eventRow{
		ID:          "att-1",
		EmployeeID:  "emp-1",
		Date:        time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		ClockIn:     &clockIn,
		ClockOut:    &clockOut,
		ClockInLat:  ptr(-6.175392),
		ClockInLng:  ptr(106.827153),
		ClockOutLat: ptr(-6.30),
		ClockOutLng: ptr(106.90),
		Status:      "on_time",
		Locations:   office,
	}

	event := row.toRawEvent(jakarta)

	assert.Equal(t, "2025-03-12", event.Date)
	assert.Equal(t, "2025-03-12T08:55:00+07:00", event.ClockIn)
	assert.Equal(t, attendance.CodeValid, event.StatusCode)
	require.NotNil(t, event.ClockOut)
	assert.Equal(t, "2025-03-12T17:05:00+07:00", *event.ClockOut)
	require.NotNil(t, event.ClockOutLocation)
	assert.Greater(t, event.ClockOutLocation.DistanceKM, 10.0)
	require.NotNil(t, event.ClockOutStatusCode)
	assert.Equal(t, attendance.CodeInvalidLocation, *event.ClockOutStatusCode)
}

func TestEventRow_AbsentWithoutClock(t *testing.T) {
	row := eventRow{
		ID:         "att-2",
		EmployeeID: "emp-2",
		Date:       time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:     "absent",
	}

	event := row.toRawEvent(time.UTC)

	assert.Empty(t, event.ClockIn)
	assert.Nil(t, event.ClockOut)
	assert.Nil(t, event.ClockOutStatusCode)
	assert.Equal(t, attendance.CodeAbsent, event.StatusCode)
}

func TestShiftFromSchedule(t *testing.T) {
	assert.Nil(t, shiftFromSchedule(nil, nil))
	assert.Equal(t, employee.ShiftText{Text: "Flexible"}, shiftFromSchedule(ptr("Flexible"), nil))

	weekdays := []scheduleTime{
		{DayOfWeek: 1, ClockInTime: "08:00", ClockOutTime: "17:00"},
		{DayOfWeek: 2, ClockInTime: "08:00", ClockOutTime: "17:00"},
		{DayOfWeek: 3, ClockInTime: "08:00", ClockOutTime: "17:00"},
	}
	got := shiftFromSchedule(ptr("Morning"), weekdays)
	assert.Equal(t, employee.ShiftSchedule{
		DaysPerWeek: 3,
		StartTime:   "08:00",
		EndTime:     "17:00",
		HoursPerDay: 9,
		ShiftType:   "morning",
	}, got)
	assert.Equal(t, "08:00 - 17:00 (Morning Shift)", employee.Describe(got))

	night := shiftFromSchedule(ptr("Night"), []scheduleTime{{DayOfWeek: 6, ClockInTime: "22:00", ClockOutTime: "06:00"}})
	sched, ok := night.(employee.ShiftSchedule)
	require.True(t, ok)
	assert.Equal(t, 8.0, sched.HoursPerDay)
	assert.True(t, sched.WeekendWork)
}

func TestAgeOn(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 34, ageOn(&dob, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 35, ageOn(&dob, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 35, ageOn(&dob, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Zero(t, ageOn(nil, time.Now()))
}
