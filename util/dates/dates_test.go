package dates

import (
	"testing"
	"time"
)

func TestFirstDayOfMonth(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2024, time.February, 29, 23, 59, 59, 0, loc)

	got := FirstDayOfMonth(in)
	want := time.Date(2024, time.February, 1, 0, 0, 0, 0, loc)

	if !got.Equal(want) || got.Location() != loc {
		t.Errorf("FirstDayOfMonth(%v) = %v, want %v", in, got, want)
	}
}

func TestEqualMonth(t *testing.T) {
	tests := []struct {
		lhs, rhs time.Time
		want     bool
	}{
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		if got := EqualMonth(tt.lhs, tt.rhs); got != tt.want {
			t.Errorf("EqualMonth(%v, %v) = %v, want %v", tt.lhs, tt.rhs, got, tt.want)
		}
	}
}

func TestDateString(t *testing.T) {
	in := time.Date(2024, time.July, 4, 15, 0, 0, 0, time.UTC)
	if got := DateString(in); got != "2024-07-04" {
		t.Errorf("DateString = %q, want %q", got, "2024-07-04")
	}
}
