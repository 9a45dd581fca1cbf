package schedule

import (
	"strings"
	"testing"
	"time"
	_ "time/tzdata"
)

func kyiv(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return loc
}

func TestGateIsSendTime(t *testing.T) {
	loc := kyiv(t)
	g, err := NewGate(loc, 9, 59)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		hh, mm int
		want   bool
	}{
		{9, 0, true},
		{9, 15, true},
		{9, 58, true},
		{9, 59, false},
		{10, 0, false},
		{8, 59, false},
	}
	for _, c := range cases {
		at := time.Date(2026, 10, 16, c.hh, c.mm, 0, 0, loc)
		if got := g.IsSendTime(at); got != c.want {
			t.Errorf("%02d:%02d: got %v, want %v", c.hh, c.mm, got, c.want)
		}
	}
}

func TestGateUsesConfiguredZone(t *testing.T) {
	loc := kyiv(t)
	g, _ := NewGate(loc, 9, 59)

	// 06:15 UTC == 09:15 в Киеве (летнее время, UTC+3)
	at := time.Date(2026, 7, 1, 6, 15, 0, 0, time.UTC)
	if !g.IsSendTime(at) {
		t.Errorf("%v should be inside the window", at.In(loc))
	}
}

func TestGateNextWindow(t *testing.T) {
	loc := kyiv(t)
	g, _ := NewGate(loc, 9, 59)

	before := time.Date(2026, 10, 16, 7, 30, 0, 0, loc)
	if got, want := g.NextWindow(before), time.Date(2026, 10, 16, 9, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("NextWindow(%v) = %v, want %v", before, got, want)
	}

	after := time.Date(2026, 10, 16, 9, 15, 0, 0, loc)
	if got, want := g.NextWindow(after), time.Date(2026, 10, 17, 9, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("NextWindow(%v) = %v, want %v", after, got, want)
	}
}

func TestNewGateValidates(t *testing.T) {
	if _, err := NewGate(time.UTC, 24, 59); err == nil {
		t.Error("expected error for hour 24")
	}
	if _, err := NewGate(time.UTC, 9, 61); err == nil {
		t.Error("expected error for window 61")
	}
	if _, err := NewGate(nil, 9, 59); err == nil {
		t.Error("expected error for nil location")
	}
}

func TestGateSkipMessage(t *testing.T) {
	loc := kyiv(t)
	g, _ := NewGate(loc, 9, 59)

	msg := g.SkipMessage(time.Date(2026, 10, 16, 10, 0, 0, 0, loc))
	for _, want := range []string{"2026-10-16 10:00", "Europe/Kyiv", "target hour=9", "window=59m", "from now"} {
		if !strings.Contains(msg, want) {
			t.Errorf("%q does not contain %q", msg, want)
		}
	}
}
