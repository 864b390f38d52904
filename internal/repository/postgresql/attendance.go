package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/pkg/database"
)

type attendanceRepository struct {
	db       *database.DB
	location *time.Location
}

// NewAttendanceRepository reads raw events from the attendances table.
// Clock times are rendered in loc.
func NewAttendanceRepository(db *database.DB, loc *time.Location) attendance.EventSource {
	if loc == nil {
		loc = time.UTC
	}
	return &attendanceRepository{db: db, location: loc}
}

const eventColumns = `
	SELECT a.id, a.employee_id, a.date, a.clock_in, a.clock_out,
		   a.clock_in_latitude, a.clock_in_longitude,
		   a.clock_out_latitude, a.clock_out_longitude,
		   a.status,
		   COALESCE(
			   (
				   SELECT json_agg(json_build_object(
					   'latitude', wsl.latitude,
					   'longitude', wsl.longitude,
					   'radius_meters', wsl.radius_meters
				   ))
				   FROM work_schedule_locations wsl
				   WHERE wsl.work_schedule_id = e.work_schedule_id
			   ),
			   '[]'::json
		   ) AS allowed_locations
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
`

// DailyEvents implements attendance.EventSource.
func (a *attendanceRepository) DailyEvents(ctx context.Context, date string) ([]attendance.RawEvent, error) {
	query := eventColumns + `
		WHERE a.date = $1
		ORDER BY a.clock_in NULLS LAST, a.created_at
	`
	return a.queryEvents(ctx, query, date)
}

// EmployeeEvents implements attendance.EventSource.
func (a *attendanceRepository) EmployeeEvents(ctx context.Context, employeeID string, start, end string) ([]attendance.RawEvent, error) {
	query := eventColumns + `
		WHERE a.employee_id = $1
		  AND a.date BETWEEN $2 AND $3
		ORDER BY a.date DESC, a.clock_in NULLS LAST, a.created_at
	`
	return a.queryEvents(ctx, query, employeeID, start, end)
}

func (a *attendanceRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]attendance.RawEvent, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var events []attendance.RawEvent
	for rows.Next() {
		var (
			row           eventRow
			locationsJSON []byte
		)
		if err := rows.Scan(
			&row.ID, &row.EmployeeID, &row.Date, &row.ClockIn, &row.ClockOut,
			&row.ClockInLat, &row.ClockInLng,
			&row.ClockOutLat, &row.ClockOutLng,
			&row.Status,
			&locationsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		if err := json.Unmarshal(locationsJSON, &row.Locations); err != nil {
			return nil, fmt.Errorf("failed to decode schedule locations: %w", err)
		}
		events = append(events, row.toRawEvent(a.location))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return events, nil
}
