package postgresql_test

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recap/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seed = []string{
	`INSERT INTO users VALUES ('u1', 'ana@example.com')`,
	`INSERT INTO positions VALUES ('p1', 'Engineer')`,
	`INSERT INTO work_schedules VALUES ('ws1', 'Morning', NULL)`,
	`INSERT INTO work_schedule_times VALUES
		('ws1', 1, '08:00', '17:00'), ('ws1', 2, '08:00', '17:00'), ('ws1', 3, '08:00', '17:00'),
		('ws1', 4, '08:00', '17:00'), ('ws1', 5, '08:00', '17:00')`,
	`INSERT INTO work_schedule_locations VALUES ('ws1', -6.175392, 106.827153, 100)`,
	`INSERT INTO employees VALUES
		('e1', 'u1', 'p1', 'ws1', 'Ana', '1990-06-15', '0811', 'Jakarta', 12000000, 'active', NULL),
		('e2', NULL, NULL, 'ws1', 'Budi', NULL, '0812', NULL, NULL, 'active', NULL),
		('e3', NULL, NULL, NULL, 'Citra', NULL, '0813', NULL, NULL, 'resigned', NULL)`,
	`INSERT INTO attendances (id, employee_id, date, clock_in, clock_out,
			clock_in_latitude, clock_in_longitude, clock_out_latitude, clock_out_longitude, status)
		VALUES
		('a2', 'e2', '2025-03-12', '2025-03-12T09:30:00Z', NULL, -6.30, 106.90, NULL, NULL, 'on_time'),
		('a1', 'e1', '2025-03-12', '2025-03-12T08:55:00Z', '2025-03-12T17:00:00Z',
			-6.175392, 106.827153, -6.175392, 106.827153, 'on_time'),
		('a3', 'e1', '2025-03-11', NULL, NULL, NULL, NULL, NULL, NULL, 'on_leave')`,
}

func TestAttendanceRepository_DailyEvents(t *testing.T) {
	ctx, db := withTestTx(t, seed...)
	repo := postgresql.NewAttendanceRepository(db, time.UTC)

	events, err := repo.DailyEvents(ctx, "2025-03-12")
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "a1", events[0].ID)
	assert.Equal(t, attendance.CodeValid, events[0].StatusCode)
	assert.Equal(t, "2025-03-12T08:55:00Z", events[0].ClockIn)
	require.NotNil(t, events[0].ClockOut)

	assert.Equal(t, "a2", events[1].ID)
	assert.Equal(t, attendance.CodeInvalidLocation, events[1].StatusCode)
	assert.Nil(t, events[1].ClockOut)
}

func TestAttendanceRepository_EmployeeEvents(t *testing.T) {
	ctx, db := withTestTx(t, seed...)
	repo := postgresql.NewAttendanceRepository(db, time.UTC)

	events, err := repo.EmployeeEvents(ctx, "e1", "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "2025-03-12", events[0].Date)
	assert.Equal(t, "2025-03-11", events[1].Date)
	assert.Equal(t, attendance.CodeLeave, events[1].StatusCode)
}

func TestEmployeeRepository(t *testing.T) {
	ctx, db := withTestTx(t, seed...)
	repo := postgresql.NewEmployeeRepository(db)

	count, err := repo.Headcount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	name, err := repo.EmployeeName(ctx, "e2")
	require.NoError(t, err)
	assert.Equal(t, "Budi", name)

	emp, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", emp.Email)
	assert.Equal(t, "Engineer", emp.Designation)
	assert.Equal(t, "1990-06-15", emp.DateOfBirth)
	assert.Equal(t, "12000000.00", emp.CTC)
	assert.Equal(t, "08:00 - 17:00 (Morning Shift)", employee.Describe(emp.ShiftHours))

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = repo.EmployeeName(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
