package ticker

import (
	"context"
	"time"

	"pomobar/internal/service"
	"pomobar/internal/view"
)

// Advancer is the engine operation the loop drives once per interval.
type Advancer interface {
	Advance(ctx context.Context) service.TickResult
}

type Config struct {
	Interval time.Duration
}

// Loop calls Advance on a fixed cadence and forwards the results to a queue.
type Loop struct {
	engine Advancer
	queue  *Queue
	config Config
}

func NewLoop(engine Advancer, queue *Queue, config Config) *Loop {
	if config.Interval <= 0 {
		config.Interval = time.Second
	}
	return &Loop{engine: engine, queue: queue, config: config}
}

// Run sleeps one interval between iterations until ctx is done. Iterations
// are never skipped or merged; drift is accepted.
func (l *Loop) Run(ctx context.Context) {
	timer := time.NewTimer(l.config.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			l.Step(ctx)
			timer.Reset(l.config.Interval)
		}
	}
}

// Step runs one iteration. The title is rendered from the state copy taken
// under the engine lock; pushes happen after the lock is released.
func (l *Loop) Step(ctx context.Context) {
	result := l.engine.Advance(ctx)

	if result.Completion != nil {
		l.queue.Push(Message{
			Kind:       MessageCompleted,
			State:      result.State,
			Completion: result.Completion,
		})
	}
	if result.Changed {
		l.queue.Push(Message{
			Kind:  MessageStateChanged,
			Title: view.Title(result.State),
			State: result.State,
		})
	}
}
