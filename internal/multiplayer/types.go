// Package multiplayer connects the players of one SSH server: every session
// joins a shared hall and hears when others arrive, leave or finish a round.
// Rounds themselves stay single-player; each session runs its own engine.
package multiplayer

import (
	"fmt"

	"github.com/vovakirdan/whack-arcade/internal/whack"
)

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// SessionEvent represents an event sent from the hall to a session.
type SessionEvent interface {
	sessionEvent()
	fmt.Stringer
}

// PlayerJoinedEvent is sent to everyone else when a player connects.
type PlayerJoinedEvent struct {
	Player string
	Online int
}

func (PlayerJoinedEvent) sessionEvent() {}

func (e PlayerJoinedEvent) String() string {
	return fmt.Sprintf("%s joined (%d online)", e.Player, e.Online)
}

// PlayerLeftEvent is sent to everyone else when a player disconnects.
type PlayerLeftEvent struct {
	Player string
	Online int
}

func (PlayerLeftEvent) sessionEvent() {}

func (e PlayerLeftEvent) String() string {
	return fmt.Sprintf("%s left (%d online)", e.Player, e.Online)
}

// RoundFinishedEvent is sent to everyone else when a player finishes a round.
type RoundFinishedEvent struct {
	Player       string
	Variant      string
	Score        int
	NewHighScore bool
}

func (RoundFinishedEvent) sessionEvent() {}

func (e RoundFinishedEvent) String() string {
	s := fmt.Sprintf("%s scored %d on %s", e.Player, e.Score, e.Variant)
	if e.NewHighScore {
		s += " - new high score!"
	}
	return s
}

// RoundFinished builds the announcement of a finished round.
func RoundFinished(s whack.Summary) RoundFinishedEvent {
	player := s.Player
	if player == "" {
		player = "Someone"
	}
	return RoundFinishedEvent{
		Player:       player,
		Variant:      s.Variant,
		Score:        s.Score,
		NewHighScore: s.NewHighScore,
	}
}
