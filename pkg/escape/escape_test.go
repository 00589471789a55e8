package escape

import (
	"testing"

	"github.com/willbeason/almond/pkg/cplx"
)

func TestOriginNeverEscapes(t *testing.T) {
	for _, max := range []int{1, 10, 100, 1000} {
		if got := Iterations(cplx.FromReal(0), max); got != max {
			t.Errorf("Iterations(0, %d) = %d, want %d", max, got, max)
		}
		if !Bounded(cplx.FromReal(0), max) {
			t.Errorf("Bounded(0, %d) = false", max)
		}
	}
}

func TestOutsideRadiusEscapesFirst(t *testing.T) {
	// |c| > 2 means z₁ = c is already out; the first tested value escapes.
	tests := []*cplx.Complex{
		cplx.FromCartesian(3, 0),
		cplx.FromCartesian(0, -3),
		cplx.FromCartesian(2, 2),
		cplx.FromCartesian(-2.1, 0),
	}

	for _, c := range tests {
		if got := Iterations(c, 100); got != 1 {
			t.Errorf("Iterations(%v, 100) = %d, want 1", c, got)
		}
	}
}

func TestKnownOrbits(t *testing.T) {
	tests := []struct {
		name string
		c    *cplx.Complex
		max  int
		want int
	}{
		// 0, 1, 2, 5: |2|² = 4 is still inside, |5|² is not.
		{name: "one", c: cplx.FromReal(1), max: 50, want: 3},
		// 0, -2, 2, 2, ... sits exactly on the boundary forever.
		{name: "minus two", c: cplx.FromReal(-2), max: 50, want: 50},
		// Period-2 interior point.
		{name: "minus one", c: cplx.FromReal(-1), max: 50, want: 50},
		{name: "near center", c: cplx.FromCartesian(-2.0/3.0, -2.0/3.0), max: 1000, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Iterations(tt.c, tt.max); got != tt.want {
				t.Errorf("Iterations = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	first := Iterations(cplx.FromCartesian(0.3, 0.5), 100)
	second := Iterations(cplx.FromCartesian(0.3, 0.5), 100)

	if first != second {
		t.Errorf("same input gave %d then %d", first, second)
	}
}
