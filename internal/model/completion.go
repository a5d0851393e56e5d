package model

import "time"

type CompletionKind string

const (
	CompletionPomodoro CompletionKind = "pomodoro_complete"
	CompletionBreak    CompletionKind = "break_complete"
)

// CompletionEvent is emitted exactly once when a countdown reaches zero or a
// pomodoro is completed early. Count and IsLongBreak are only set for
// CompletionPomodoro.
type CompletionEvent struct {
	ID          string         `json:"id"`
	Kind        CompletionKind `json:"kind"`
	Count       int            `json:"count,omitempty"`
	IsLongBreak bool           `json:"isLongBreak,omitempty"`
	At          time.Time      `json:"at"`
}

// CompletionRecord is the stored history row of a CompletionEvent.
type CompletionRecord struct {
	ID           string         `json:"id"`
	Kind         CompletionKind `json:"kind"`
	Count        int            `json:"count"`
	IsLongBreak  bool           `json:"isLongBreak"`
	FocusMinutes int            `json:"focusMinutes"`
	Day          string         `json:"day"`
	CompletedAt  time.Time      `json:"completedAt"`
}
