package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/dashboard"
	employeeservice "github.com/cmlabs-hris/attendance-recap/internal/service/employee"
	"golang.org/x/sync/errgroup"
)

const (
	weekDays            = 7
	recentActivityLimit = 5
)

type DashboardServiceImpl struct {
	attendance attendance.AttendanceService
}

func NewDashboardService(attendanceService attendance.AttendanceService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendance: attendanceService,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	var (
		summary  dashboard.AttendanceSummaryResponse
		weekly   []dashboard.WeeklyOverviewItem
		activity []dashboard.RecentActivityItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Last 7 days; the most recent item is today's reconciled summary
	g.Go(func() error {
		window, err := s.attendance.GetWindow(gCtx, attendance.WindowRequest{Page: 1, PageSize: weekDays, Days: weekDays})
		if err != nil {
			return fmt.Errorf("weekly overview: %w", err)
		}
		if len(window.Items) > 0 {
			summary = BuildSummary(window.Items[0])
		}
		weekly = BuildWeeklyOverview(window.Items)
		return nil
	})

	// 2. Today's clock actions
	g.Go(func() error {
		facts, err := s.attendance.GetDailyFacts(gCtx, "")
		if err != nil {
			return fmt.Errorf("recent activity: %w", err)
		}
		activity = BuildRecentActivity(facts, recentActivityLimit)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		AttendanceSummary: summary,
		WeeklyOverview:    weekly,
		RecentActivity:    activity,
	}, nil
}

// BuildSummary converts a daily summary into counts with shares of the headcount
func BuildSummary(day attendance.DailySummary) dashboard.AttendanceSummaryResponse {
	total := day.TotalEmployees
	return dashboard.AttendanceSummaryResponse{
		Date:              day.Date,
		TotalEmployees:    total,
		PresentCount:      day.TotalPresent,
		LateCount:         day.TotalLate,
		AbsentCount:       day.TotalAbsent,
		LeaveCount:        day.TotalLeave,
		PresentPercentage: employeeservice.Percentage(day.TotalPresent, total),
		LatePercentage:    employeeservice.Percentage(day.TotalLate, total),
		AbsentPercentage:  employeeservice.Percentage(day.TotalAbsent, total),
		LeavePercentage:   employeeservice.Percentage(day.TotalLeave, total),
	}
}

// BuildWeeklyOverview turns a most-recent-first window into chart bars, oldest first
func BuildWeeklyOverview(days []attendance.DailySummary) []dashboard.WeeklyOverviewItem {
	items := make([]dashboard.WeeklyOverviewItem, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		day := days[i]
		display := day.Date
		if t, err := time.Parse(time.DateOnly, day.Date); err == nil {
			display = t.Format("Mon, Jan 2")
		}
		items = append(items, dashboard.WeeklyOverviewItem{
			Date:        day.Date,
			DisplayDate: display,
			Present:     day.TotalPresent + day.TotalLate,
			Total:       day.TotalEmployees,
		})
	}
	return items
}

// BuildRecentActivity lists the latest clock actions, newest first
func BuildRecentActivity(facts []attendance.Fact, limit int) []dashboard.RecentActivityItem {
	items := make([]dashboard.RecentActivityItem, 0, len(facts)*2)
	for _, f := range facts {
		isLate := f.Status == attendance.StatusLate
		if f.ClockIn != "" {
			items = append(items, dashboard.RecentActivityItem{
				EmployeeID: f.EmployeeID,
				Name:       f.EmployeeName,
				Action:     dashboard.ActionClockedIn,
				Time:       f.ClockIn,
				IsLate:     isLate,
			})
		}
		if f.ClockOut != nil && *f.ClockOut != "" {
			items = append(items, dashboard.RecentActivityItem{
				EmployeeID: f.EmployeeID,
				Name:       f.EmployeeName,
				Action:     dashboard.ActionClockedOut,
				Time:       *f.ClockOut,
				IsLate:     isLate,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time > items[j].Time
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
