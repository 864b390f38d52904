package cron

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsJobUntilStopped(t *testing.T) {
	s := NewScheduler(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	var runs atomic.Int32
	s.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_DisabledInterval(t *testing.T) {
	s := NewScheduler(nil)
	s.AddJob("off", 0, func(ctx context.Context) error { return nil })
	assert.Empty(t, s.Jobs())
}

func TestScheduler_RunOnceLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(slog.New(slog.NewTextHandler(&buf, nil)))
	s.AddJob("broken", time.Hour, func(ctx context.Context) error { return errors.New("boom") })

	s.RunOnce(context.Background())

	assert.Contains(t, buf.String(), "Cron job failed")
	assert.Contains(t, buf.String(), "boom")
}

type stubWindow struct {
	window attendance.WindowResult
	err    error
	req    attendance.WindowRequest
}

func (s *stubWindow) GetWindow(_ context.Context, req attendance.WindowRequest) (attendance.WindowResult, error) {
	s.req = req
	return s.window, s.err
}

func (s *stubWindow) GetDailyFacts(context.Context, string) ([]attendance.Fact, error) {
	return nil, nil
}

func (s *stubWindow) GetEmployeeFacts(context.Context, attendance.EmployeeAttendanceFilter) ([]attendance.Fact, error) {
	return nil, nil
}

func (s *stubWindow) DefaultRange(f attendance.EmployeeAttendanceFilter) attendance.EmployeeAttendanceFilter {
	return f
}

func TestRecap(t *testing.T) {
	var buf bytes.Buffer
	svc := &stubWindow{window: attendance.WindowResult{
		Items:      []attendance.DailySummary{{Date: "2025-03-12", TotalPresent: 4, TotalLate: 1, TotalEmployees: 6}},
		TotalPages: 1,
	}}
	jobs := NewRecapJobs(svc, slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, jobs.Recap(context.Background()))

	assert.Equal(t, attendance.WindowRequest{Page: 1, PageSize: 1, Days: 1}, svc.req)
	assert.Contains(t, buf.String(), "date=2025-03-12")
	assert.Contains(t, buf.String(), "present=4")
	assert.Contains(t, buf.String(), "total_employees=6")
}

func TestRecap_HeadcountFailure(t *testing.T) {
	jobs := NewRecapJobs(&stubWindow{err: attendance.ErrHeadcountFetch}, nil)
	assert.ErrorIs(t, jobs.Recap(context.Background()), attendance.ErrHeadcountFetch)
}

func TestRecapJobs_Register(t *testing.T) {
	s := NewScheduler(nil)
	NewRecapJobs(&stubWindow{}, nil).RegisterJobs(s, time.Minute)

	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "attendance_recap", jobs[0].Name)
	assert.Equal(t, time.Minute, jobs[0].Interval)
}
