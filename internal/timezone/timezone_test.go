package timezone

import (
	"testing"
	"time"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	if loc.String() != DefaultTimezone && loc != time.UTC {
		t.Fatalf("expected default location, got %s", loc)
	}
}

func TestStartOfDay_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("test", -6*3600)
	in := time.Date(2026, 3, 14, 17, 45, 12, 99, loc)

	got := StartOfDay(in)

	want := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)
	if !got.Equal(want) || got.Location() != loc {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMonthRange(t *testing.T) {
	loc := Location(DefaultTimezone)
	from, to := MonthRange(2025, time.December, loc)

	if from.Day() != 1 || from.Month() != time.December || from.Location() != loc {
		t.Fatalf("unexpected start %s", from)
	}
	if to.Year() != 2026 || to.Month() != time.January || to.Day() != 1 {
		t.Fatalf("unexpected end %s", to)
	}
}
