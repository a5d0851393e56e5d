package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pomobar/internal/model"
	"pomobar/internal/notify"
	"pomobar/internal/service"
	"pomobar/internal/ticker"
	"pomobar/internal/view"
)

const eventBuffer = 32

// Publisher receives the messages produced by commands so that event streams
// and notifications see them the same way as tick loop output.
type Publisher interface {
	Push(msg ticker.Message) bool
}

type TimerHandler struct {
	engine    *service.Engine
	publisher Publisher
	hub       *notify.Hub
}

type stateView struct {
	Phase         model.Phase   `json:"phase"`
	RemainingSecs int           `json:"remainingSecs"`
	TotalSecs     int           `json:"totalSecs"`
	IsLongBreak   bool          `json:"isLongBreak"`
	Progress      *float64      `json:"progress"`
	Title         string        `json:"title"`
	Status        string        `json:"status"`
	ProgressBar   string        `json:"progressBar,omitempty"`
	StatsLine     string        `json:"statsLine"`
	Session       model.Session `json:"session"`
}

func NewTimerHandler(engine *service.Engine, publisher Publisher, hub *notify.Hub) *TimerHandler {
	return &TimerHandler{engine: engine, publisher: publisher, hub: hub}
}

func newStateView(snapshot service.Snapshot) stateView {
	state := snapshot.State
	result := stateView{
		Phase:         state.Phase,
		RemainingSecs: state.RemainingSecs,
		TotalSecs:     state.TotalSecs,
		IsLongBreak:   state.IsLongBreak,
		Title:         view.Title(state),
		Status:        view.Status(state),
		ProgressBar:   view.Progress(state),
		StatsLine:     view.Stats(snapshot.Session),
		Session:       snapshot.Session,
	}
	if progress, ok := state.Progress(); ok {
		result.Progress = &progress
	}
	return result
}

func (h *TimerHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": newStateView(h.engine.Snapshot())})
}

func (h *TimerHandler) Start(c *gin.Context) {
	snapshot := h.engine.StartPomodoro()
	c.JSON(http.StatusOK, gin.H{"state": h.publish(snapshot, nil)})
}

func (h *TimerHandler) Pause(c *gin.Context) {
	snapshot := h.engine.Pause()
	c.JSON(http.StatusOK, gin.H{"state": h.publish(snapshot, nil)})
}

func (h *TimerHandler) Resume(c *gin.Context) {
	snapshot := h.engine.Resume()
	c.JSON(http.StatusOK, gin.H{"state": h.publish(snapshot, nil)})
}

func (h *TimerHandler) Stop(c *gin.Context) {
	snapshot := h.engine.Stop()
	c.JSON(http.StatusOK, gin.H{"state": h.publish(snapshot, nil)})
}

func (h *TimerHandler) SkipBreak(c *gin.Context) {
	snapshot := h.engine.SkipBreak()
	c.JSON(http.StatusOK, gin.H{"state": h.publish(snapshot, nil)})
}

func (h *TimerHandler) Complete(c *gin.Context) {
	snapshot, completion := h.engine.CompleteEarly(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"state":      h.publish(snapshot, completion),
		"completion": completion,
	})
}

// Events streams queue messages as server-sent events until the client goes
// away. The first event is the current state.
func (h *TimerHandler) Events(c *gin.Context) {
	messages := h.hub.Subscribe(eventBuffer)
	defer h.hub.Unsubscribe(messages)

	state := h.engine.State()
	c.SSEvent(string(ticker.MessageStateChanged), ticker.Message{
		Kind:  ticker.MessageStateChanged,
		Title: view.Title(state),
		State: state,
	})
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case msg, ok := <-messages:
			if !ok {
				return false
			}
			c.SSEvent(string(msg.Kind), msg)
			return true
		}
	})
}

// publish queues the snapshot a command produced under the engine lock and
// returns the view the caller reports back.
func (h *TimerHandler) publish(snapshot service.Snapshot, completion *model.CompletionEvent) stateView {
	state := snapshot.State
	if h.publisher == nil {
		return newStateView(snapshot)
	}
	if completion != nil {
		h.publisher.Push(ticker.Message{
			Kind:       ticker.MessageCompleted,
			State:      state,
			Completion: completion,
		})
	}
	h.publisher.Push(ticker.Message{
		Kind:  ticker.MessageStateChanged,
		Title: view.Title(state),
		State: state,
	})
	return newStateView(snapshot)
}
