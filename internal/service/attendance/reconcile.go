package attendance

import (
	"sort"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Reconcile scales counts down so they sum to total when they exceed it.
//
// Each bucket becomes round(bucket*total/sum), rounded half away from zero.
// Whatever rounding leaves over is added to the largest scaled bucket, with
// ties going to present, then late, absent, leave. A negative remainder never
// drives a bucket below zero: whatever the largest bucket cannot absorb moves
// on to the next largest. Counts that already fit, or a zero total, are
// returned unchanged.
func Reconcile(raw attendance.StatusCounts, total int) attendance.StatusCounts {
	sum := raw.Total()
	if total <= 0 || sum <= total {
		return raw
	}

	scaled := attendance.StatusCounts{
		Present: scale(raw.Present, total, sum),
		Late:    scale(raw.Late, total, sum),
		Absent:  scale(raw.Absent, total, sum),
		Leave:   scale(raw.Leave, total, sum),
	}

	diff := total - scaled.Total()
	for _, bucket := range bucketsBySize(&scaled) {
		if diff == 0 {
			break
		}
		if diff > 0 {
			*bucket += diff
			break
		}
		take := min(*bucket, -diff)
		*bucket -= take
		diff += take
	}

	return scaled
}

func scale(count, total, sum int) int {
	return int(decimal.NewFromInt(int64(count)).
		Mul(decimal.NewFromInt(int64(total))).
		Div(decimal.NewFromInt(int64(sum))).
		Round(0).
		IntPart())
}

// bucketsBySize orders the buckets largest first, ties in priority order.
func bucketsBySize(c *attendance.StatusCounts) []*int {
	buckets := []*int{&c.Present, &c.Late, &c.Absent, &c.Leave}
	sort.SliceStable(buckets, func(i, j int) bool {
		return *buckets[i] > *buckets[j]
	})
	return buckets
}
