package mandel

import "testing"

func TestEscapeTimeOrigin(t *testing.T) {
	// c = 0 is a fixed point of the iteration and never escapes.
	for _, limit := range []int{1, 10, 255, 10000} {
		if count, escaped := EscapeTime(0, limit); escaped {
			t.Errorf("EscapeTime(0, %d) escaped at %d, want no escape", limit, count)
		}
	}
}

func TestEscapeTimeFarPoint(t *testing.T) {
	// A point far outside the set escapes after the very first update:
	// the check precedes the update, so z is still 0 at iteration 0 and
	// the count of completed updates is 1.
	count, escaped := EscapeTime(complex(5, 5), 255)
	if !escaped || count != 1 {
		t.Errorf("EscapeTime(5+5i, 255) = (%d, %v), want (1, true)", count, escaped)
	}
}

func TestEscapeTimeCheckBeforeStep(t *testing.T) {
	// c = 2: z walks 0, 2, 6. |2|^2 = 4 is not beyond the bailout, so the
	// second update still runs and the escape is recorded at count 2.
	count, escaped := EscapeTime(complex(2, 0), 255)
	if !escaped || count != 2 {
		t.Errorf("EscapeTime(2, 255) = (%d, %v), want (2, true)", count, escaped)
	}
}

func TestEscapeTimeMonotonic(t *testing.T) {
	// Raising the limit never un-escapes a point and never changes the
	// recorded count of a point that already escaped.
	points := []complex128{
		complex(0.3, 0.5),
		complex(-0.75, 0.2),
		complex(0.25, 0.75),
		complex(-1.2, 0.3),
		complex(0.1, 0.9),
		complex(-2.1, 0),
	}
	for _, c := range points {
		small, escapedSmall := EscapeTime(c, 64)
		large, escapedLarge := EscapeTime(c, 255)
		if escapedSmall {
			if !escapedLarge {
				t.Errorf("EscapeTime(%v): escaped with limit 64 but not with 255", c)
			}
			if small != large {
				t.Errorf("EscapeTime(%v): count changed from %d to %d when raising the limit", c, small, large)
			}
		}
	}
}
