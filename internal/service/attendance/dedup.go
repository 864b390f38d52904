package attendance

import "github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"

type dedupKey struct {
	employeeID string
	date       string
}

// Deduplicate keeps the first fact seen for each employee on each day and
// drops the rest, preserving input order. For a single day's facts this
// leaves at most one fact per employee.
func Deduplicate(facts []attendance.Fact) []attendance.Fact {
	seen := make(map[dedupKey]struct{}, len(facts))
	out := make([]attendance.Fact, 0, len(facts))
	for _, f := range facts {
		key := dedupKey{employeeID: f.EmployeeID, date: f.Date}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}
