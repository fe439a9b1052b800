package preview

import "sync"

// Hub fans each published render out to connected browsers. Publish never
// blocks: a client that has not drained its previous render gets only the
// newest one.
type Hub struct {
	mu      sync.Mutex
	current string
	clients map[*subscriber]struct{}
	closed  bool
}

type subscriber struct {
	send chan string
}

func NewHub() *Hub {
	return &Hub{clients: map[*subscriber]struct{}{}}
}

// Publish records html as the current render and offers it to every client.
func (h *Hub) Publish(html string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.current = html
	for c := range h.clients {
		offerLatest(c.send, html)
	}
}

func offerLatest(ch chan string, v string) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

// Current is the last published render.
func (h *Hub) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Clients reports how many browsers are subscribed.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) subscribe() (*subscriber, string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, "", false
	}
	s := &subscriber{send: make(chan string, 1)}
	h.clients[s] = struct{}{}
	return s, h.current, true
}

func (h *Hub) unsubscribe(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[s]; ok {
		delete(h.clients, s)
		close(s.send)
	}
}

// Close disconnects every client and ignores later publishes.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for s := range h.clients {
		delete(h.clients, s)
		close(s.send)
	}
}
