package whack

import "github.com/vovakirdan/whack-arcade/internal/config"

// Listener receives engine notifications. Callbacks run synchronously on the
// engine's goroutine and must not call back into the engine.
type Listener interface {
	SlotSpawned(slot int, occupant config.OccupantType)
	SlotVacated(slot int)
	InteractionResult(slot int, result Result)
	PhaseChanged(from, to Phase)
	Tick(remaining int)
	RoundEnded(summary Summary)
}

// NopListener ignores every notification. Embed it to implement only the
// callbacks you need.
type NopListener struct{}

func (NopListener) SlotSpawned(int, config.OccupantType) {}
func (NopListener) SlotVacated(int)                      {}
func (NopListener) InteractionResult(int, Result)        {}
func (NopListener) PhaseChanged(Phase, Phase)            {}
func (NopListener) Tick(int)                             {}
func (NopListener) RoundEnded(Summary)                   {}

// Listeners fans notifications out in order.
type Listeners []Listener

func (ls Listeners) SlotSpawned(slot int, occupant config.OccupantType) {
	for _, l := range ls {
		l.SlotSpawned(slot, occupant)
	}
}

func (ls Listeners) SlotVacated(slot int) {
	for _, l := range ls {
		l.SlotVacated(slot)
	}
}

func (ls Listeners) InteractionResult(slot int, result Result) {
	for _, l := range ls {
		l.InteractionResult(slot, result)
	}
}

func (ls Listeners) PhaseChanged(from, to Phase) {
	for _, l := range ls {
		l.PhaseChanged(from, to)
	}
}

func (ls Listeners) Tick(remaining int) {
	for _, l := range ls {
		l.Tick(remaining)
	}
}

func (ls Listeners) RoundEnded(summary Summary) {
	for _, l := range ls {
		// Each listener gets its own copy of the tallies.
		s := summary
		s.TypeHits = append([]TypeCount(nil), summary.TypeHits...)
		l.RoundEnded(s)
	}
}

// SummaryRecorder persists finished rounds.
type SummaryRecorder interface {
	RecordSummary(s Summary) error
}

// SummaryCollector is a Listener that keeps every finished round. It is
// handy for headless hosts and tests.
type SummaryCollector struct {
	NopListener
	Summaries []Summary
}

// RoundEnded appends the summary.
func (c *SummaryCollector) RoundEnded(s Summary) {
	c.Summaries = append(c.Summaries, s)
}

// Last returns the most recent summary.
func (c *SummaryCollector) Last() (Summary, bool) {
	if len(c.Summaries) == 0 {
		return Summary{}, false
	}
	return c.Summaries[len(c.Summaries)-1], true
}
