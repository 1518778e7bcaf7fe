package whack

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/sched"
)

// ErrInvalidSlot is returned for a slot index outside the board or an
// occupancy operation on a slot in the wrong state.
var ErrInvalidSlot = errors.New("whack: invalid slot")

// Slot is a read-only view of one hole.
type Slot struct {
	Index    int
	Occupied bool
	Type     int           // Occupant type index, -1 when vacant
	Expires  time.Duration // Time left before the occupant leaves
}

type slot struct {
	occupied bool
	typ      int
	expiry   *sched.Task
	frozen   time.Duration // Remaining visibility while frozen
}

// Board holds the slots and the expiry timer of every occupied one.
// An occupied slot always has exactly one pending expiry, except while the
// board is frozen, when its remaining time is parked instead.
type Board struct {
	sched    sched.Scheduler
	slots    []slot
	frozen   bool
	onVacate func(slot int)
}

// NewBoard creates a board of count vacant slots. onVacate, if set, is called
// every time an occupied slot becomes vacant.
func NewBoard(s sched.Scheduler, count int, onVacate func(slot int)) *Board {
	b := &Board{sched: s, onVacate: onVacate}
	b.Build(count)
	return b
}

// Build discards the current slots, cancelling their expiries, and creates
// count fresh vacant ones.
func (b *Board) Build(count int) {
	for i := range b.slots {
		b.slots[i].expiry.Cancel()
	}
	b.slots = make([]slot, count)
	for i := range b.slots {
		b.slots[i].typ = -1
	}
	b.frozen = false
}

// Len returns the number of slots.
func (b *Board) Len() int {
	return len(b.slots)
}

// Occupy places an occupant of type typ in slot i for d.
func (b *Board) Occupy(i, typ int, d time.Duration) error {
	if i < 0 || i >= len(b.slots) {
		return fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSlot, i, len(b.slots))
	}
	s := &b.slots[i]
	if s.occupied {
		return fmt.Errorf("%w: slot %d already occupied", ErrInvalidSlot, i)
	}
	s.occupied = true
	s.typ = typ
	if b.frozen {
		s.frozen = d
		return nil
	}
	b.arm(i, d)
	return nil
}

func (b *Board) arm(i int, d time.Duration) {
	b.slots[i].expiry = b.sched.AfterFunc(d, func() {
		b.slots[i].expiry = nil
		b.Vacate(i)
	})
}

// Vacate clears slot i and cancels its expiry. It reports whether the slot
// was occupied; vacating a vacant or unknown slot does nothing.
func (b *Board) Vacate(i int) bool {
	if i < 0 || i >= len(b.slots) || !b.slots[i].occupied {
		return false
	}
	s := &b.slots[i]
	s.expiry.Cancel()
	*s = slot{typ: -1}
	if b.onVacate != nil {
		b.onVacate(i)
	}
	return true
}

// Clear vacates every slot and returns how many were occupied.
func (b *Board) Clear() int {
	n := 0
	for i := range b.slots {
		if b.Vacate(i) {
			n++
		}
	}
	b.frozen = false
	return n
}

// Freeze suspends every expiry, remembering the time each occupant had left.
func (b *Board) Freeze() {
	if b.frozen {
		return
	}
	for i := range b.slots {
		s := &b.slots[i]
		if !s.occupied {
			continue
		}
		s.frozen = s.expiry.Remaining()
		s.expiry.Cancel()
		s.expiry = nil
	}
	b.frozen = true
}

// Thaw re-arms the expiries suspended by Freeze.
func (b *Board) Thaw() {
	if !b.frozen {
		return
	}
	b.frozen = false
	for i := range b.slots {
		s := &b.slots[i]
		if !s.occupied {
			continue
		}
		d := s.frozen
		s.frozen = 0
		b.arm(i, d)
	}
}

// Frozen reports whether expiries are suspended.
func (b *Board) Frozen() bool {
	return b.frozen
}

// Vacant returns the indexes of vacant slots in ascending order.
func (b *Board) Vacant() []int {
	out := make([]int, 0, len(b.slots))
	for i, s := range b.slots {
		if !s.occupied {
			out = append(out, i)
		}
	}
	return out
}

// OccupiedCount returns how many slots are occupied.
func (b *Board) OccupiedCount() int {
	return len(b.slots) - len(b.Vacant())
}

// Armed returns how many expiry timers are pending.
func (b *Board) Armed() int {
	n := 0
	for _, s := range b.slots {
		if s.expiry.Pending() {
			n++
		}
	}
	return n
}

// Slot returns a view of slot i.
func (b *Board) Slot(i int) (Slot, bool) {
	if i < 0 || i >= len(b.slots) {
		return Slot{}, false
	}
	return b.view(i), true
}

// Slots returns a view of every slot.
func (b *Board) Slots() []Slot {
	out := make([]Slot, len(b.slots))
	for i := range b.slots {
		out[i] = b.view(i)
	}
	return out
}

func (b *Board) view(i int) Slot {
	s := b.slots[i]
	v := Slot{Index: i, Occupied: s.occupied, Type: s.typ}
	if s.occupied {
		if b.frozen {
			v.Expires = s.frozen
		} else {
			v.Expires = s.expiry.Remaining()
		}
	}
	return v
}
