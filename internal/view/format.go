// Package view renders timer state as short human-readable lines for tray
// titles, menus and API clients.
package view

import (
	"fmt"
	"math"
	"strings"

	"pomobar/internal/model"
)

const (
	tomato        = "🍅"
	pauseGlyph    = "⏸"
	coffee        = "☕"
	progressCells = 20
	maxTomatoes   = 10
)

// FormatTime renders seconds as MM:SS. Minutes are not wrapped at 60.
func FormatTime(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func Title(state model.TimerState) string {
	switch state.Phase {
	case model.PhasePomodoroActive:
		return tomato + " " + FormatTime(state.RemainingSecs)
	case model.PhasePomodoroPaused:
		return pauseGlyph + " " + FormatTime(state.RemainingSecs)
	case model.PhaseBreakActive:
		return coffee + " " + FormatTime(state.RemainingSecs)
	default:
		return tomato
	}
}

func Status(state model.TimerState) string {
	switch state.Phase {
	case model.PhasePomodoroActive:
		return fmt.Sprintf("⏱  %s remaining", FormatTime(state.RemainingSecs))
	case model.PhasePomodoroPaused:
		return fmt.Sprintf("%s  %s (paused)", pauseGlyph, FormatTime(state.RemainingSecs))
	case model.PhaseBreakActive:
		kind := "Short break"
		if state.IsLongBreak {
			kind = "Long break"
		}
		return fmt.Sprintf("%s  %s - %s", coffee, kind, FormatTime(state.RemainingSecs))
	case model.PhaseBreakFinished:
		return "Break complete - ready for next"
	default:
		return "Ready to focus"
	}
}

// Progress renders a fixed-width bar followed by the rounded percentage.
func Progress(state model.TimerState) string {
	fraction, ok := state.Progress()
	if !ok {
		fraction = 0
	}
	filled := int(math.Round(fraction * progressCells))
	return fmt.Sprintf(
		"%s%s  %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", progressCells-filled),
		int(math.Round(fraction*100)),
	)
}

func Stats(session model.Session) string {
	count := session.PomodorosCompletedToday
	if count <= 0 {
		return "Today: —  0 (0 min)"
	}

	tomatoes := strings.Repeat(tomato, min(count, maxTomatoes))
	extra := ""
	if count > maxTomatoes {
		extra = fmt.Sprintf("+%d", count-maxTomatoes)
	}
	return fmt.Sprintf("Today: %s%s  %d (%d min)", tomatoes, extra, count, session.TotalFocusMinsToday)
}
