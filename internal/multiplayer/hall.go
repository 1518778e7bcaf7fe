package multiplayer

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/whack-arcade/internal/whack"
)

// Hall tracks the connected sessions and relays events between them.
// It is safe for concurrent use.
type Hall struct {
	mu       sync.RWMutex
	sessions map[SessionID]SessionHandle
}

// NewHall creates an empty hall.
func NewHall() *Hall {
	return &Hall{sessions: make(map[SessionID]SessionHandle)}
}

// Join registers a new session for player and tells everyone else.
func (h *Hall) Join(player string) *ChannelSession {
	s := NewChannelSession(SessionID(uuid.NewString()), player, defaultEventBuffer)
	h.Register(s)
	return s
}

// Register adds a session and announces it to the others.
func (h *Hall) Register(s SessionHandle) {
	h.mu.Lock()
	h.sessions[s.ID()] = s
	online := len(h.sessions)
	h.mu.Unlock()

	h.broadcast(s.ID(), PlayerJoinedEvent{Player: s.Player(), Online: online})
}

// Leave removes a session and announces its departure. Unknown IDs are
// ignored.
func (h *Hall) Leave(id SessionID) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	online := len(h.sessions)
	h.mu.Unlock()

	if !ok {
		return
	}
	if c, isChan := s.(*ChannelSession); isChan {
		c.Close()
	}
	h.broadcast(id, PlayerLeftEvent{Player: s.Player(), Online: online})
}

// Announce tells everyone except the sender about a finished round.
func (h *Hall) Announce(from SessionID, s whack.Summary) {
	h.broadcast(from, RoundFinished(s))
}

// Count returns the number of connected sessions.
func (h *Hall) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Players returns the names of the connected players, sorted.
func (h *Hall) Players() []string {
	h.mu.RLock()
	names := make([]string, 0, len(h.sessions))
	for _, s := range h.sessions {
		names = append(names, s.Player())
	}
	h.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (h *Hall) broadcast(except SessionID, evt SessionEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, s := range h.sessions {
		if id != except {
			s.Send(evt)
		}
	}
}
