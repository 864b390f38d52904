package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
)

const recapJobName = "attendance_recap"

// RecapJobs periodically logs today's reconciled attendance summary
type RecapJobs struct {
	attendanceService attendance.AttendanceService
	logger            *slog.Logger
}

func NewRecapJobs(attendanceService attendance.AttendanceService, logger *slog.Logger) *RecapJobs {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecapJobs{attendanceService: attendanceService, logger: logger}
}

func (j *RecapJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(recapJobName, interval, j.Recap)
}

// Recap builds the one-day window ending today and logs its counts
func (j *RecapJobs) Recap(ctx context.Context) error {
	window, err := j.attendanceService.GetWindow(ctx, attendance.WindowRequest{Page: 1, PageSize: 1, Days: 1})
	if err != nil {
		return fmt.Errorf("recap: %w", err)
	}
	if len(window.Items) == 0 {
		return nil
	}

	today := window.Items[0]
	j.logger.Info("Cron: Attendance recap",
		"date", today.Date,
		"present", today.TotalPresent,
		"late", today.TotalLate,
		"absent", today.TotalAbsent,
		"leave", today.TotalLeave,
		"total_employees", today.TotalEmployees,
		"degraded", len(window.Degraded) > 0,
	)
	return nil
}
