package refresh

import "sync"

// Hub is an in-process publish/subscribe keyed by entity type. Signals carry no payload;
// subscribers re-fetch the entity themselves. A slow subscriber misses duplicate
// signals but never blocks a publisher.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscription
}

type subscription struct {
	entities map[string]bool
	ch       chan string
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]*subscription)}
}

// Subscribe returns a channel of changed entity names. No entities means all of them.
// The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe(entities ...string) (<-chan string, func()) {
	sub := &subscription{ch: make(chan string, 16)}
	if len(entities) > 0 {
		sub.entities = make(map[string]bool, len(entities))
		for _, e := range entities {
			sub.entities[e] = true
		}
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = sub
	h.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(sub.ch)
		})
	}
}

func (h *Hub) Publish(entity string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		if sub.entities != nil && !sub.entities[entity] {
			continue
		}
		select {
		case sub.ch <- entity:
		default:
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
