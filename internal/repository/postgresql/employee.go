package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db  *database.DB
	now func() time.Time
}

// EmployeeRepository serves the employee directory, headcount and name lookups.
type EmployeeRepository interface {
	employee.Directory
	Headcount(ctx context.Context) (int, error)
	EmployeeName(ctx context.Context, employeeID string) (string, error)
}

func NewEmployeeRepository(db *database.DB) EmployeeRepository {
	return &employeeRepositoryImpl{db: db, now: time.Now}
}

// Count implements employee.Directory.
func (e *employeeRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COUNT(*)
		FROM employees
		WHERE employment_status = $1 AND deleted_at IS NULL
	`

	var count int
	if err := q.QueryRow(ctx, query, employmentStatusActive).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// Headcount implements attendance.HeadcountSource.
func (e *employeeRepositoryImpl) Headcount(ctx context.Context) (int, error) {
	return e.Count(ctx)
}

// EmployeeName implements attendance.NameResolver.
func (e *employeeRepositoryImpl) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	q := GetQuerier(ctx, e.db)

	var name string
	err := q.QueryRow(ctx, `SELECT full_name FROM employees WHERE id = $1`, employeeID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", employee.ErrEmployeeNotFound
		}
		return "", fmt.Errorf("failed to get employee name: %w", err)
	}
	return name, nil
}

// GetByID implements employee.Directory.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.full_name, COALESCE(u.email, ''), COALESCE(p.name, ''),
			e.dob, e.phone_number, COALESCE(e.address, ''), e.base_salary,
			ws.name,
			(
				SELECT json_agg(json_build_object(
					'day_of_week', wst.day_of_week,
					'clock_in_time', to_char(wst.clock_in_time, 'HH24:MI'),
					'clock_out_time', to_char(wst.clock_out_time, 'HH24:MI')
				) ORDER BY wst.day_of_week)
				FROM work_schedule_times wst
				WHERE wst.work_schedule_id = ws.id
			) AS schedule_times
		FROM employees e
		LEFT JOIN users u ON u.id = e.user_id
		LEFT JOIN positions p ON p.id = e.position_id
		LEFT JOIN work_schedules ws ON ws.id = e.work_schedule_id AND ws.deleted_at IS NULL
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var (
		found        employee.Employee
		dob          *time.Time
		baseSalary   *decimal.Decimal
		scheduleName *string
		timesJSON    []byte
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Name, &found.Email, &found.Designation,
		&dob, &found.PhoneNumber, &found.Address, &baseSalary,
		&scheduleName, &timesJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, id)
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var times []scheduleTime
	if len(timesJSON) > 0 {
		if err := json.Unmarshal(timesJSON, &times); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to decode schedule times: %w", err)
		}
	}

	if dob != nil {
		found.DateOfBirth = dob.Format(time.DateOnly)
	}
	found.Age = ageOn(dob, e.now())
	if baseSalary != nil {
		found.CTC = baseSalary.StringFixed(2)
	}
	found.ShiftHours = shiftFromSchedule(scheduleName, times)

	return found, nil
}
