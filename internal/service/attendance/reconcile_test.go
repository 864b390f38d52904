package attendance

import (
	"testing"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func counts(p, l, a, v int) attendance.StatusCounts {
	return attendance.StatusCounts{Present: p, Late: l, Absent: a, Leave: v}
}

func TestReconcile_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		raw   attendance.StatusCounts
		total int
		want  attendance.StatusCounts
	}{
		{"scaled without remainder", counts(60, 10, 5, 0), 70, counts(56, 9, 5, 0)},
		{"remainder taken from largest", counts(3, 1, 1, 1), 5, counts(2, 1, 1, 1)},
		{"sum equals total", counts(10, 0, 0, 0), 10, counts(10, 0, 0, 0)},
		{"sum below total", counts(4, 2, 1, 0), 20, counts(4, 2, 1, 0)},
		{"zero total", counts(4, 2, 1, 0), 0, counts(4, 2, 1, 0)},
		{"positive remainder to largest", counts(4, 4, 4, 0), 10, counts(4, 3, 3, 0)},
		{"tie goes to present", counts(2, 2, 0, 0), 3, counts(1, 2, 0, 0)},
		{"tie goes to late before absent", counts(0, 5, 5, 0), 5, counts(0, 2, 3, 0)},
		{"largest bucket wins over priority", counts(1, 1, 1, 2), 4, counts(1, 1, 1, 1)},
		{"remainder never goes negative", counts(1, 1, 1, 1), 2, counts(0, 0, 1, 1)},
		{"single bucket", counts(0, 0, 9, 0), 4, counts(0, 0, 4, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Reconcile(c.raw, c.total))
		})
	}
}

func TestReconcile_ConservesAndStaysNonNegative(t *testing.T) {
	for p := 0; p <= 6; p++ {
		for l := 0; l <= 6; l++ {
			for a := 0; a <= 6; a++ {
				for v := 0; v <= 6; v++ {
					raw := counts(p, l, a, v)
					sum := raw.Total()
					for total := 1; total <= 26; total++ {
						got := Reconcile(raw, total)

						if sum <= total {
							if got != raw {
								t.Fatalf("Reconcile(%+v, %d) = %+v, want unchanged", raw, total, got)
							}
							continue
						}
						if got.Total() != total {
							t.Fatalf("Reconcile(%+v, %d) sums to %d, want %d", raw, total, got.Total(), total)
						}
						if got.Present < 0 || got.Late < 0 || got.Absent < 0 || got.Leave < 0 {
							t.Fatalf("Reconcile(%+v, %d) = %+v has a negative bucket", raw, total, got)
						}
					}
				}
			}
		}
	}
}

func TestReconcile_Deterministic(t *testing.T) {
	raw := counts(17, 8, 3, 5)
	first := Reconcile(raw, 29)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Reconcile(raw, 29))
	}
}

func TestReconcile_DoesNotModifyInput(t *testing.T) {
	raw := counts(3, 1, 1, 1)
	_ = Reconcile(raw, 5)
	assert.Equal(t, counts(3, 1, 1, 1), raw)
}
