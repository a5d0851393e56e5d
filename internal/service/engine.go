package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"pomobar/internal/model"
)

// Store is the durable side of the engine. Implementations must return
// defaults or zero values for absent records.
type Store interface {
	LoadSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, settings model.Settings) error
	LoadTodaySession(ctx context.Context, today string) (model.Session, error)
	SaveSession(ctx context.Context, session model.Session) error
	GetDailyStats(ctx context.Context, date string) (model.DailyStats, error)
	StatsRange(ctx context.Context, from, to string) ([]model.DailyStats, error)
	ResetDay(ctx context.Context, date string) error
	RecordCompletion(ctx context.Context, record model.CompletionRecord) error
	ListCompletions(ctx context.Context, limit int) ([]model.CompletionRecord, error)
	GetCompletion(ctx context.Context, id string) (*model.CompletionRecord, error)
}

// Engine owns the timer state, the live session and the settings. Every
// exported method takes the same lock for its whole duration, so the tick
// loop and command handlers observe each operation atomically.
type Engine struct {
	mu       sync.Mutex
	store    Store
	now      func() time.Time
	state    model.TimerState
	settings model.Settings
	session  model.Session
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(engine *Engine) {
		engine.now = now
	}
}

// Snapshot is a consistent copy of the engine's state.
type Snapshot struct {
	State    model.TimerState `json:"state"`
	Settings model.Settings   `json:"settings"`
	Session  model.Session    `json:"session"`
}

// TickResult is what one tick loop iteration observed under the lock.
type TickResult struct {
	Changed    bool
	Completion *model.CompletionEvent
	State      model.TimerState
}

// NewEngine loads settings and today's session. Unlike later writes, a
// storage failure here is returned to the caller.
func NewEngine(ctx context.Context, store Store, opts ...Option) (*Engine, error) {
	engine := &Engine{
		store: store,
		now:   time.Now,
		state: model.Idle(),
	}
	for _, opt := range opts {
		opt(engine)
	}

	settings, err := store.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	session, err := store.LoadTodaySession(ctx, model.DateOf(engine.now()))
	if err != nil {
		return nil, fmt.Errorf("load today session: %w", err)
	}

	engine.settings = settings
	engine.session = session
	return engine, nil
}

// StartPomodoro enters a fresh work countdown from any state. A pomodoro
// already in flight is discarded without a completion.
func (e *Engine) StartPomodoro() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := e.settings.PomodoroMins * 60
	e.state = model.PomodoroActive(total, total)
	return e.snapshotLocked()
}

func (e *Engine) Pause() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Phase == model.PhasePomodoroActive {
		e.state = model.PomodoroPaused(e.state.RemainingSecs, e.state.TotalSecs)
	}
	return e.snapshotLocked()
}

func (e *Engine) Resume() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Phase == model.PhasePomodoroPaused {
		e.state = model.PomodoroActive(e.state.RemainingSecs, e.state.TotalSecs)
	}
	return e.snapshotLocked()
}

// Stop returns to idle from any state without recording anything.
func (e *Engine) Stop() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = model.Idle()
	return e.snapshotLocked()
}

// CompleteEarly finishes an active pomodoro now, crediting the full
// configured length. The event is nil in any other state.
func (e *Engine) CompleteEarly(ctx context.Context) (Snapshot, *model.CompletionEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Phase != model.PhasePomodoroActive {
		return e.snapshotLocked(), nil
	}
	event := e.finishPomodoroLocked(ctx)
	return e.snapshotLocked(), &event
}

// SkipBreak ends an active break without touching the session.
func (e *Engine) SkipBreak() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Phase == model.PhaseBreakActive {
		e.state = model.BreakFinished()
	}
	return e.snapshotLocked()
}

// Tick advances the active countdown by one second.
func (e *Engine) Tick(ctx context.Context) (bool, *model.CompletionEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.tickLocked(ctx)
}

// Advance is one tick loop iteration: day rollover, tick and a copy of the
// resulting state, all under a single lock acquisition.
func (e *Engine) Advance(ctx context.Context) TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.CheckDayRollover(e.now())
	changed, completion := e.tickLocked(ctx)
	return TickResult{
		Changed:    changed,
		Completion: completion,
		State:      e.state,
	}
}

// UpdateSetting applies mutate and persists the whole settings record.
// A phase already in flight keeps its total.
func (e *Engine) UpdateSetting(ctx context.Context, mutate func(*model.Settings)) model.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()

	mutate(&e.settings)
	if err := e.store.SaveSettings(ctx, e.settings); err != nil {
		log.Printf("engine: save settings: %v", err)
	}
	return e.settings
}

// ResetToday zeroes the session counters and deletes today's stored record.
func (e *Engine) ResetToday(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.ResetToday()
	if err := e.store.ResetDay(ctx, model.DateOf(e.now())); err != nil {
		log.Printf("engine: reset today: %v", err)
	}
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	e.session.CheckDayRollover(e.now())
	return Snapshot{
		State:    e.state,
		Settings: e.settings,
		Session:  e.session,
	}
}

func (e *Engine) State() model.TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Settings() model.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// DailyStats reads stored statistics for date. Today is served from the live
// session, which may be ahead of a failed write.
func (e *Engine) DailyStats(ctx context.Context, date string) (model.DailyStats, error) {
	e.mu.Lock()
	e.session.CheckDayRollover(e.now())
	session := e.session
	e.mu.Unlock()

	if date == session.LastDate {
		return model.DailyStats{
			Date:               date,
			CompletedPomodoros: session.PomodorosCompletedToday,
			TotalFocusMinutes:  session.TotalFocusMinsToday,
		}, nil
	}
	return e.store.GetDailyStats(ctx, date)
}

func (e *Engine) StatsRange(ctx context.Context, from, to string) ([]model.DailyStats, error) {
	return e.store.StatsRange(ctx, from, to)
}

func (e *Engine) History(ctx context.Context, limit int) ([]model.CompletionRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return e.store.ListCompletions(ctx, limit)
}

// Completion looks up one history entry. Absent ids surface the store's
// not-found error.
func (e *Engine) Completion(ctx context.Context, id string) (*model.CompletionRecord, error) {
	return e.store.GetCompletion(ctx, id)
}

// Today returns the engine's current calendar date.
func (e *Engine) Today() string {
	return model.DateOf(e.now())
}

func (e *Engine) tickLocked(ctx context.Context) (bool, *model.CompletionEvent) {
	switch e.state.Phase {
	case model.PhasePomodoroActive:
		if e.state.RemainingSecs > 0 {
			e.state.RemainingSecs--
			return true, nil
		}
		event := e.finishPomodoroLocked(ctx)
		return true, &event
	case model.PhaseBreakActive:
		if e.state.RemainingSecs > 0 {
			e.state.RemainingSecs--
			return true, nil
		}
		event := e.finishBreakLocked(ctx)
		return true, &event
	default:
		return false, nil
	}
}

func (e *Engine) finishPomodoroLocked(ctx context.Context) model.CompletionEvent {
	now := e.now()
	e.session.CompletePomodoro(e.settings.PomodoroMins, now)
	if err := e.store.SaveSession(ctx, e.session); err != nil {
		log.Printf("engine: save session: %v", err)
	}

	isLong := e.session.IsLongBreakDue(e.settings.PomodorosForLongBreak)
	if isLong {
		e.session.ResetCycle()
	}

	total := e.settings.BreakMins(isLong) * 60
	e.state = model.BreakActive(isLong, total, total)

	event := model.CompletionEvent{
		ID:          uuid.NewString(),
		Kind:        model.CompletionPomodoro,
		Count:       e.session.PomodorosCompletedToday,
		IsLongBreak: isLong,
		At:          now,
	}
	e.recordLocked(ctx, event, e.settings.PomodoroMins)
	return event
}

func (e *Engine) finishBreakLocked(ctx context.Context) model.CompletionEvent {
	e.state = model.BreakFinished()

	event := model.CompletionEvent{
		ID:   uuid.NewString(),
		Kind: model.CompletionBreak,
		At:   e.now(),
	}
	e.recordLocked(ctx, event, 0)
	return event
}

func (e *Engine) recordLocked(ctx context.Context, event model.CompletionEvent, focusMins int) {
	record := model.CompletionRecord{
		ID:           event.ID,
		Kind:         event.Kind,
		Count:        event.Count,
		IsLongBreak:  event.IsLongBreak,
		FocusMinutes: focusMins,
		Day:          model.DateOf(event.At),
		CompletedAt:  event.At,
	}
	if err := e.store.RecordCompletion(ctx, record); err != nil {
		log.Printf("engine: record completion: %v", err)
	}
}
