package model

type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhasePomodoroActive Phase = "pomodoro_active"
	PhasePomodoroPaused Phase = "pomodoro_paused"
	PhaseBreakActive    Phase = "break_active"
	PhaseBreakFinished  Phase = "break_finished"
)

// TimerState is a closed set of phases. Countdown fields are only meaningful
// for PhasePomodoroActive, PhasePomodoroPaused and PhaseBreakActive;
// IsLongBreak only for PhaseBreakActive.
type TimerState struct {
	Phase         Phase `json:"phase"`
	RemainingSecs int   `json:"remainingSecs"`
	TotalSecs     int   `json:"totalSecs"`
	IsLongBreak   bool  `json:"isLongBreak"`
}

func Idle() TimerState {
	return TimerState{Phase: PhaseIdle}
}

func PomodoroActive(remainingSecs, totalSecs int) TimerState {
	return TimerState{Phase: PhasePomodoroActive, RemainingSecs: remainingSecs, TotalSecs: totalSecs}
}

func PomodoroPaused(remainingSecs, totalSecs int) TimerState {
	return TimerState{Phase: PhasePomodoroPaused, RemainingSecs: remainingSecs, TotalSecs: totalSecs}
}

func BreakActive(isLongBreak bool, remainingSecs, totalSecs int) TimerState {
	return TimerState{
		Phase:         PhaseBreakActive,
		RemainingSecs: remainingSecs,
		TotalSecs:     totalSecs,
		IsLongBreak:   isLongBreak,
	}
}

func BreakFinished() TimerState {
	return TimerState{Phase: PhaseBreakFinished}
}

// IsIdle reports whether a pomodoro can be started without interrupting anything.
func (s TimerState) IsIdle() bool {
	return s.Phase == PhaseIdle || s.Phase == PhaseBreakFinished || s.Phase == ""
}

func (s TimerState) IsPaused() bool {
	return s.Phase == PhasePomodoroPaused
}

func (s TimerState) IsPomodoro() bool {
	return s.Phase == PhasePomodoroActive || s.Phase == PhasePomodoroPaused
}

func (s TimerState) IsBreak() bool {
	return s.Phase == PhaseBreakActive
}

// HasCountdown reports whether the phase carries remaining/total seconds.
func (s TimerState) HasCountdown() bool {
	return s.IsPomodoro() || s.IsBreak()
}

// Progress returns the completed fraction of the current countdown and false
// when the phase has no countdown. A zero-length phase counts as complete.
func (s TimerState) Progress() (float64, bool) {
	if !s.HasCountdown() {
		return 0, false
	}
	if s.TotalSecs <= 0 {
		return 1, true
	}
	progress := 1 - float64(s.RemainingSecs)/float64(s.TotalSecs)
	if progress < 0 {
		return 0, true
	}
	if progress > 1 {
		return 1, true
	}
	return progress, true
}
