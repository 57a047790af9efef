package realtime

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Publisher is the side of the hub handed to services. Publication is
// fire-and-forget, at-most-once: a disconnected subscriber simply misses
// the event and reconciles by re-fetching state on reconnect.
type Publisher interface {
	Publish(sessionID uint, event string, payload any)
}

// Event is a named message on a session channel.
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"data"`
}

// Subscription is one listener's membership in session rooms. Events
// arrive on C; Close leaves all rooms and releases the channel.
type Subscription struct {
	hub *Hub
	C   chan Event
}

// Hub fans events out to per-session rooms. Membership is process-local
// and rebuilt on reconnect; there is no replay or backlog.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uint]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[uint]map[*Subscription]struct{})}
}

const subscriptionBuffer = 16

func (h *Hub) Subscribe() *Subscription {
	return &Subscription{hub: h, C: make(chan Event, subscriptionBuffer)}
}

// Join adds the subscription to a session room. Joining twice is a no-op.
func (h *Hub) Join(sub *Subscription, sessionID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[sessionID]
	if !ok {
		room = make(map[*Subscription]struct{})
		h.rooms[sessionID] = room
	}
	room[sub] = struct{}{}
}

func (h *Hub) Publish(sessionID uint, event string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.rooms[sessionID] {
		select {
		case sub.C <- Event{Name: event, Payload: payload}:
		default:
			// Slow consumer; drop rather than block the request path.
			log.Warn().Uint("session_id", sessionID).Str("event", event).Msg("Dropping event for slow subscriber")
		}
	}
}

func (s *Subscription) Close() {
	h := s.hub
	h.mu.Lock()
	for sessionID, room := range h.rooms {
		delete(room, s)
		if len(room) == 0 {
			delete(h.rooms, sessionID)
		}
	}
	h.mu.Unlock()
	close(s.C)
}
