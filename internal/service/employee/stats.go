package employee

import (
	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeStats counts facts per status and derives attendance and punctuality rates
func ComputeStats(facts []attendance.Fact) employee.AttendanceStats {
	var stats employee.AttendanceStats
	for _, f := range facts {
		switch f.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusLate:
			stats.LateDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		case attendance.StatusLeave:
			stats.LeaveDays++
		}
	}
	stats.TotalDays = len(facts)

	attended := stats.PresentDays + stats.LateDays
	stats.AttendanceRate = Percentage(attended, stats.TotalDays)
	stats.PunctualityRate = Percentage(stats.PresentDays, attended)
	return stats
}

// Percentage returns part/whole*100 rounded to 2 decimals, or 0 when whole is 0
func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(2).
		InexactFloat64()
}
