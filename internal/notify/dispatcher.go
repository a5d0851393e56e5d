package notify

import (
	"context"
	"log"

	"pomobar/internal/model"
	"pomobar/internal/ticker"
)

// SettingsSource supplies the toggles that gate completion side effects.
type SettingsSource interface {
	Settings() model.Settings
}

// Dispatcher is the single consumer of the tick loop queue.
type Dispatcher struct {
	settings SettingsSource
	hub      *Hub
	notifier Notifier
	chime    Chime
}

func NewDispatcher(settings SettingsSource, hub *Hub, notifier Notifier, chime Chime) *Dispatcher {
	return &Dispatcher{
		settings: settings,
		hub:      hub,
		notifier: notifier,
		chime:    chime,
	}
}

// Run drains queue on every ready signal until ctx is done.
func (d *Dispatcher) Run(ctx context.Context, queue *ticker.Queue) {
	for {
		select {
		case <-ctx.Done():
			d.Drain(queue)
			return
		case <-queue.Ready():
			d.Drain(queue)
		}
	}
}

// Drain handles every queued message in order and returns how many it saw.
func (d *Dispatcher) Drain(queue *ticker.Queue) int {
	messages := queue.Drain()
	for _, msg := range messages {
		d.Handle(msg)
	}
	return len(messages)
}

func (d *Dispatcher) Handle(msg ticker.Message) {
	if d.hub != nil {
		d.hub.Publish(msg)
	}
	if msg.Kind == ticker.MessageCompleted && msg.Completion != nil {
		d.complete(*msg.Completion)
	}
}

func (d *Dispatcher) complete(event model.CompletionEvent) {
	settings := d.settings.Settings()

	if settings.SoundEnabled && d.chime != nil {
		if err := d.chime.Play(); err != nil {
			log.Printf("dispatcher: play chime: %v", err)
		}
	}
	if settings.NotificationsEnabled && d.notifier != nil {
		if err := d.notifier.Notify(Compose(event, settings.LongBreakMins)); err != nil {
			log.Printf("dispatcher: notify: %v", err)
		}
	}
}
