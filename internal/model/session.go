package model

import "time"

// DateLayout is the ISO calendar date used as the per-day storage key.
const DateLayout = "2006-01-02"

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Session holds the daily counters and the intra-cycle pomodoro count.
// PomodorosInCycle survives day rollover but not a process restart.
type Session struct {
	PomodorosCompletedToday int    `json:"pomodorosCompletedToday"`
	TotalFocusMinsToday     int    `json:"totalFocusMinsToday"`
	PomodorosInCycle        int    `json:"pomodorosInCycle"`
	LastDate                string `json:"lastDate"`
}

func NewSession(date string) Session {
	return Session{LastDate: date}
}

// CheckDayRollover zeroes the daily counters when now falls on another date
// than LastDate. It reports whether a rollover happened.
func (s *Session) CheckDayRollover(now time.Time) bool {
	today := DateOf(now)
	if s.LastDate == today {
		return false
	}
	s.PomodorosCompletedToday = 0
	s.TotalFocusMinsToday = 0
	s.LastDate = today
	return true
}

func (s *Session) CompletePomodoro(durationMins int, now time.Time) {
	s.CheckDayRollover(now)
	s.PomodorosCompletedToday++
	s.TotalFocusMinsToday += durationMins
	s.PomodorosInCycle++
}

func (s Session) IsLongBreakDue(threshold int) bool {
	return s.PomodorosInCycle >= threshold
}

func (s *Session) ResetCycle() {
	s.PomodorosInCycle = 0
}

// ResetToday zeroes every counter and leaves LastDate untouched.
func (s *Session) ResetToday() {
	s.PomodorosCompletedToday = 0
	s.TotalFocusMinsToday = 0
	s.PomodorosInCycle = 0
}
