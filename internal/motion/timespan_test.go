package motion

import (
	"math"
	"slices"
	"testing"
)

func TestTimeRange_LocalTime(t *testing.T) {
	r := TimeRange{Start: 1, End: 3}

	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{1, 0},
		{2, 0.5},
		{3, 1},
		{10, 1},
	}

	for _, tt := range tests {
		if got := r.LocalTime(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LocalTime(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestTimeRange_Degenerate(t *testing.T) {
	r := TimeRange{Start: 2, End: 2}
	if got := r.LocalTime(1.9); got != 0 {
		t.Errorf("LocalTime before instant = %v, want 0", got)
	}
	if got := r.LocalTime(2.1); got != 1 {
		t.Errorf("LocalTime after instant = %v, want 1", got)
	}
}

func TestPeriodic_LocalTime(t *testing.T) {
	p := Periodic{Period: 1, Asymmetry: 0.5}

	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1.25, 0.5},   // phase wraps into the next period
		{-0.25, 0.5},  // negative instants wrap too
	}

	for _, tt := range tests {
		if got := p.LocalTime(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LocalTime(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPeriodic_Asymmetric(t *testing.T) {
	p := Periodic{Period: 10, Asymmetry: 0.2}

	if got := p.LocalTime(1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("rising edge LocalTime(1) = %v, want 0.5", got)
	}
	if got := p.LocalTime(2); math.Abs(got-1) > 1e-12 {
		t.Errorf("peak LocalTime(2) = %v, want 1", got)
	}
	if got := p.LocalTime(6); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("falling edge LocalTime(6) = %v, want 0.5", got)
	}
}

func TestSpanTimes(t *testing.T) {
	r := TimeRange{Start: 0.5, End: 2}
	if !slices.Equal(r.Times(), []float64{0.5, 2}) {
		t.Errorf("TimeRange.Times() = %v", r.Times())
	}

	p := Periodic{Period: 4, Asymmetry: 0.25}
	if !slices.Equal(p.Times(), []float64{0, 1, 4}) {
		t.Errorf("Periodic.Times() = %v", p.Times())
	}
}

func TestSpanEquality(t *testing.T) {
	a := TimeRange{Start: 0, End: 1}
	b := TimeRange{Start: 0, End: 1 + 1e-9}

	if a.EqualSpan(b, 0) {
		t.Error("exact comparison should fail on jittered end")
	}
	if !a.EqualSpan(b, 1e-6) {
		t.Error("tolerant comparison should accept jittered end")
	}
	if a.EqualSpan(Periodic{Period: 1}, 1) {
		t.Error("different span kinds should never be equal")
	}
}
