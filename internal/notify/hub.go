package notify

import (
	"sync"

	"pomobar/internal/ticker"
)

// Hub fans queue messages out to live subscribers such as event streams.
// A subscriber that falls behind misses messages rather than stalling the
// dispatcher.
type Hub struct {
	mu          sync.Mutex
	subscribers map[chan ticker.Message]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan ticker.Message]struct{})}
}

func (h *Hub) Subscribe(buffer int) chan ticker.Message {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan ticker.Message, buffer)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan ticker.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
}

func (h *Hub) Publish(msg ticker.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Close unsubscribes everyone.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		delete(h.subscribers, ch)
		close(ch)
	}
}
