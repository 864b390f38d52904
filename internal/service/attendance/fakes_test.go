package attendance

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
)

var errUpstreamDown = errors.New("upstream unavailable")

type fakeHeadcount struct {
	total int
	err   error
	calls atomic.Int32
}

func (f *fakeHeadcount) Headcount(ctx context.Context) (int, error) {
	f.calls.Add(1)
	return f.total, f.err
}

type fakeEvents struct {
	mu        sync.Mutex
	byDate    map[string][]attendance.RawEvent
	failDates map[string]bool
	delay     time.Duration
	inFlight  atomic.Int32
	maxFlight atomic.Int32
	requested []string

	employeeEvents []attendance.RawEvent
	employeeErr    error
	lastRange      [3]string
}

func (f *fakeEvents) DailyEvents(ctx context.Context, date string) ([]attendance.RawEvent, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		cur := f.maxFlight.Load()
		if n <= cur || f.maxFlight.CompareAndSwap(cur, n) {
			break
		}
	}

	f.mu.Lock()
	f.requested = append(f.requested, date)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.failDates[date] {
		return nil, errUpstreamDown
	}
	return f.byDate[date], nil
}

func (f *fakeEvents) EmployeeEvents(ctx context.Context, employeeID string, start, end string) ([]attendance.RawEvent, error) {
	f.lastRange = [3]string{employeeID, start, end}
	return f.employeeEvents, f.employeeErr
}

type fakeNames struct {
	names map[string]string
	calls atomic.Int32
}

func (f *fakeNames) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	f.calls.Add(1)
	if name, ok := f.names[employeeID]; ok {
		return name, nil
	}
	return "", errors.New("employee not found")
}

func raw(employeeID, date, code string) attendance.RawEvent {
	return attendance.RawEvent{
		ID:         employeeID + "-" + date,
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    date + "T08:00:00Z",
		StatusCode: code,
	}
}

// fixedClock pins "today" to 2025-03-12 10:00 UTC, a Wednesday
func fixedClock() time.Time {
	return time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
}
