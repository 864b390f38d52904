package dashboard

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	AttendanceSummary AttendanceSummaryResponse `json:"attendance_summary"`
	WeeklyOverview    []WeeklyOverviewItem      `json:"weekly_overview"`
	RecentActivity    []RecentActivityItem      `json:"recent_activity"`
}

// ========== ATTENDANCE SUMMARY (today) ==========

// AttendanceSummaryResponse is today's reconciled breakdown with shares of the headcount
type AttendanceSummaryResponse struct {
	Date              string  `json:"date"`
	TotalEmployees    int     `json:"total_employees"`
	PresentCount      int     `json:"present_count"`
	LateCount         int     `json:"late_count"`
	AbsentCount       int     `json:"absent_count"`
	LeaveCount        int     `json:"leave_count"`
	PresentPercentage float64 `json:"present_percentage"`
	LatePercentage    float64 `json:"late_percentage"`
	AbsentPercentage  float64 `json:"absent_percentage"`
	LeavePercentage   float64 `json:"leave_percentage"`
}

// ========== WEEKLY OVERVIEW ==========

// WeeklyOverviewItem is one bar of the 7-day chart, oldest day first
type WeeklyOverviewItem struct {
	Date        string `json:"date"`
	DisplayDate string `json:"display_date"` // e.g. "Wed, Mar 12"
	Present     int    `json:"present"`      // on time + late
	Total       int    `json:"total"`
}

// ========== RECENT ACTIVITY ==========

const (
	ActionClockedIn  = "clocked in"
	ActionClockedOut = "clocked out"
)

// RecentActivityItem is one clock action taken today
type RecentActivityItem struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Action     string `json:"action"`
	Time       string `json:"time"` // HH:MM
	IsLate     bool   `json:"is_late"`
}
