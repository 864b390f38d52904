package attendance

import "github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"

// Aggregate counts distinct employees per status.
func Aggregate(facts []attendance.Fact) attendance.StatusCounts {
	buckets := map[attendance.Status]map[string]struct{}{
		attendance.StatusPresent: {},
		attendance.StatusLate:    {},
		attendance.StatusAbsent:  {},
		attendance.StatusLeave:   {},
	}
	for _, f := range facts {
		if ids, ok := buckets[f.Status]; ok {
			ids[f.EmployeeID] = struct{}{}
		}
	}

	return attendance.StatusCounts{
		Present: len(buckets[attendance.StatusPresent]),
		Late:    len(buckets[attendance.StatusLate]),
		Absent:  len(buckets[attendance.StatusAbsent]),
		Leave:   len(buckets[attendance.StatusLeave]),
	}
}
