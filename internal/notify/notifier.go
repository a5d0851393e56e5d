package notify

import (
	"fmt"
	"io"
	"log"

	"pomobar/internal/model"
)

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier delivers a user-visible notification.
type Notifier interface {
	Notify(notification Notification) error
}

// Chime plays the completion sound.
type Chime interface {
	Play() error
}

// Compose builds the notification for a completion event. longBreakMins is
// only used when a long break starts.
func Compose(event model.CompletionEvent, longBreakMins int) Notification {
	if event.Kind == model.CompletionBreak {
		return Notification{
			Title: "Break Over! ☕",
			Body:  "Ready to start another pomodoro?",
		}
	}
	if event.IsLongBreak {
		return Notification{
			Title: "Long Break Time! 🎉",
			Body:  fmt.Sprintf("You've earned a %d minute break. Great job staying focused!", longBreakMins),
		}
	}

	noun := "pomodoros"
	if event.Count == 1 {
		noun = "pomodoro"
	}
	return Notification{
		Title: "Pomodoro Complete! 🍅",
		Body:  fmt.Sprintf("Great work! You've completed %d %s today.\nTime for a break.", event.Count, noun),
	}
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(notification Notification) error {
	log.Printf("notify: %s: %s", notification.Title, notification.Body)
	return nil
}

// BellChime rings the terminal bell on w.
type BellChime struct {
	W io.Writer
}

func (c BellChime) Play() error {
	if c.W == nil {
		return nil
	}
	if _, err := io.WriteString(c.W, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}
