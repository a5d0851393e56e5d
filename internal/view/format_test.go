package view

import (
	"strings"
	"testing"

	"pomobar/internal/model"
)

func TestFormatTime(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		59:   "00:59",
		60:   "01:00",
		125:  "02:05",
		1500: "25:00",
		3599: "59:59",
		3600: "60:00",
		-5:   "00:00",
	}
	for secs, want := range cases {
		if got := FormatTime(secs); got != want {
			t.Fatalf("FormatTime(%d) = %q, want %q", secs, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	cases := []struct {
		state model.TimerState
		want  string
	}{
		{model.Idle(), "🍅"},
		{model.BreakFinished(), "🍅"},
		{model.PomodoroActive(1432, 1500), "🍅 23:52"},
		{model.PomodoroPaused(600, 1500), "⏸ 10:00"},
		{model.BreakActive(false, 272, 300), "☕ 04:32"},
	}
	for _, tc := range cases {
		if got := Title(tc.state); got != tc.want {
			t.Fatalf("Title(%s) = %q, want %q", tc.state.Phase, got, tc.want)
		}
	}
}

func TestStatus(t *testing.T) {
	if got := Status(model.Idle()); got != "Ready to focus" {
		t.Fatalf("unexpected idle status %q", got)
	}
	if got := Status(model.PomodoroPaused(600, 1500)); !strings.Contains(got, "10:00 (paused)") {
		t.Fatalf("unexpected paused status %q", got)
	}
	if got := Status(model.BreakActive(true, 900, 900)); !strings.Contains(got, "Long break - 15:00") {
		t.Fatalf("unexpected long break status %q", got)
	}
	if got := Status(model.BreakActive(false, 300, 300)); !strings.Contains(got, "Short break") {
		t.Fatalf("unexpected short break status %q", got)
	}
	if got := Status(model.BreakFinished()); !strings.Contains(got, "Break complete") {
		t.Fatalf("unexpected break finished status %q", got)
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(model.Idle()); got != strings.Repeat("░", 20)+"  0%" {
		t.Fatalf("unexpected idle progress %q", got)
	}
	half := Progress(model.PomodoroActive(750, 1500))
	if half != strings.Repeat("█", 10)+strings.Repeat("░", 10)+"  50%" {
		t.Fatalf("unexpected half progress %q", half)
	}
	if got := Progress(model.PomodoroActive(0, 1500)); got != strings.Repeat("█", 20)+"  100%" {
		t.Fatalf("unexpected full progress %q", got)
	}
}

func TestStats(t *testing.T) {
	if got := Stats(model.Session{}); got != "Today: —  0 (0 min)" {
		t.Fatalf("unexpected empty stats %q", got)
	}
	if got := Stats(model.Session{PomodorosCompletedToday: 3, TotalFocusMinsToday: 75}); got != "Today: 🍅🍅🍅  3 (75 min)" {
		t.Fatalf("unexpected stats %q", got)
	}
	many := Stats(model.Session{PomodorosCompletedToday: 12, TotalFocusMinsToday: 300})
	if !strings.Contains(many, "+2  12 (300 min)") || strings.Count(many, "🍅") != 10 {
		t.Fatalf("unexpected capped stats %q", many)
	}
}
