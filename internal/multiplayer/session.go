package multiplayer

import "sync"

const defaultEventBuffer = 16

// SessionHandle is how the hall reaches a session without depending on
// Wish or Bubble Tea.
type SessionHandle interface {
	ID() SessionID
	Player() string

	// Send delivers evt without blocking.
	Send(evt SessionEvent)

	// Done is closed when the session ends.
	Done() <-chan struct{}
}

// ChannelSession is a SessionHandle backed by a buffered channel. The UI
// reads Events from a Bubble Tea command.
type ChannelSession struct {
	id     SessionID
	player string
	events chan SessionEvent
	done   chan struct{}
	once   sync.Once
	sendMu sync.Mutex // Serialises Send so a refill cannot evict the newest
}

// NewChannelSession creates a session handle that buffers up to size events.
func NewChannelSession(id SessionID, player string, size int) *ChannelSession {
	if size < 1 {
		size = defaultEventBuffer
	}
	return &ChannelSession{
		id:     id,
		player: player,
		events: make(chan SessionEvent, size),
		done:   make(chan struct{}),
	}
}

func (s *ChannelSession) ID() SessionID  { return s.id }
func (s *ChannelSession) Player() string { return s.player }

// Send queues evt. A full buffer drops its oldest event; a closed session
// drops evt.
func (s *ChannelSession) Send(evt SessionEvent) {
	select {
	case <-s.done:
		return
	default:
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	for {
		select {
		case s.events <- evt:
			return
		default:
		}
		select {
		case <-s.events:
		default:
		}
	}
}

// Events returns the channel the UI reads from.
func (s *ChannelSession) Events() <-chan SessionEvent {
	return s.events
}

// Done returns a channel closed by Close.
func (s *ChannelSession) Done() <-chan struct{} {
	return s.done
}

// Close ends the session. It is safe to call more than once.
func (s *ChannelSession) Close() {
	s.once.Do(func() { close(s.done) })
}
