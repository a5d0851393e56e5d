package ticker

import (
	"sync"

	"pomobar/internal/model"
)

type MessageKind string

const (
	MessageStateChanged MessageKind = "state_changed"
	MessageCompleted    MessageKind = "completed"
)

// Message is one notice from the tick loop to its consumer. Title and State
// are set for MessageStateChanged, Completion for MessageCompleted.
type Message struct {
	Kind       MessageKind            `json:"kind"`
	Title      string                 `json:"title,omitempty"`
	State      model.TimerState       `json:"state"`
	Completion *model.CompletionEvent `json:"completion,omitempty"`
}

// Queue is an unbounded FIFO. Push never blocks and nothing is dropped or
// coalesced, so a slow consumer sees every completion.
type Queue struct {
	mu     sync.Mutex
	items  []Message
	ready  chan struct{}
	closed bool
}

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends msg. It reports false once the queue is closed.
func (q *Queue) Push(msg Message) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, msg)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
	return true
}

// Drain removes and returns every queued message in push order.
func (q *Queue) Drain() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

// Ready is signalled after a push; one signal may cover several messages.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}
