package upstream

import (
	"context"
	"net/url"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
)

// DailyEvents implements attendance.EventSource.
func (c *Client) DailyEvents(ctx context.Context, date string) ([]attendance.RawEvent, error) {
	endpoint := c.attendanceURL + "/api/attendance/date?" + url.Values{"date": {date}}.Encode()

	var records []apiAttendanceRecord
	if err := c.getData(ctx, endpoint, &records); err != nil {
		return nil, err
	}
	return toRawEvents(records), nil
}

// EmployeeEvents implements attendance.EventSource.
func (c *Client) EmployeeEvents(ctx context.Context, employeeID string, start, end string) ([]attendance.RawEvent, error) {
	endpoint := c.attendanceURL + "/api/attendance/employee/" + url.PathEscape(employeeID) + "?" +
		url.Values{"start_date": {start}, "end_date": {end}}.Encode()

	var records []apiAttendanceRecord
	if err := c.getData(ctx, endpoint, &records); err != nil {
		return nil, err
	}
	return toRawEvents(records), nil
}

func toRawEvents(records []apiAttendanceRecord) []attendance.RawEvent {
	events := make([]attendance.RawEvent, 0, len(records))
	for _, r := range records {
		events = append(events, r.toRawEvent())
	}
	return events
}
