package whack

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/sched"
)

func TestBoardOccupyVacate(t *testing.T) {
	v := sched.NewVirtual()
	var vacated []int
	b := NewBoard(v, 9, func(i int) { vacated = append(vacated, i) })

	if err := b.Occupy(3, 1, time.Second); err != nil {
		t.Fatalf("Occupy() failed: %v", err)
	}
	if err := b.Occupy(3, 0, time.Second); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("Occupy() on an occupied slot = %v, expected ErrInvalidSlot", err)
	}
	if err := b.Occupy(9, 0, time.Second); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("Occupy() out of range = %v, expected ErrInvalidSlot", err)
	}
	if err := b.Occupy(-1, 0, time.Second); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("Occupy(-1) = %v, expected ErrInvalidSlot", err)
	}

	s, _ := b.Slot(3)
	if !s.Occupied || s.Type != 1 || s.Expires != time.Second {
		t.Errorf("Slot(3) = %+v, expected occupied by type 1 with 1s left", s)
	}

	if !b.Vacate(3) {
		t.Error("Vacate() of an occupied slot should return true")
	}
	if b.Vacate(3) {
		t.Error("Vacate() should be idempotent")
	}
	if b.Armed() != 0 {
		t.Errorf("Armed() = %d after vacate, expected 0", b.Armed())
	}
	if len(vacated) != 1 || vacated[0] != 3 {
		t.Errorf("vacate callbacks = %v, expected [3]", vacated)
	}
}

func TestBoardExpiry(t *testing.T) {
	v := sched.NewVirtual()
	var vacated []int
	b := NewBoard(v, 4, func(i int) { vacated = append(vacated, i) })

	_ = b.Occupy(0, 0, 500*time.Millisecond)
	_ = b.Occupy(2, 0, 300*time.Millisecond)

	v.Advance(299 * time.Millisecond)
	if b.OccupiedCount() != 2 {
		t.Fatalf("OccupiedCount() = %d before expiry, expected 2", b.OccupiedCount())
	}

	v.Advance(time.Millisecond)
	if s, _ := b.Slot(2); s.Occupied {
		t.Error("slot 2 should have expired at 300ms")
	}

	v.Advance(200 * time.Millisecond)
	if b.OccupiedCount() != 0 {
		t.Errorf("OccupiedCount() = %d, expected 0", b.OccupiedCount())
	}
	if len(vacated) != 2 || vacated[0] != 2 || vacated[1] != 0 {
		t.Errorf("vacate order = %v, expected [2 0]", vacated)
	}
	if v.Pending() != 0 {
		t.Errorf("scheduler still has %d tasks", v.Pending())
	}
}

func TestBoardBuildCancelsExpiries(t *testing.T) {
	v := sched.NewVirtual()
	fired := 0
	b := NewBoard(v, 9, func(int) { fired++ })

	for i := 0; i < 9; i++ {
		_ = b.Occupy(i, 0, time.Second)
	}
	b.Build(5)

	if b.Len() != 5 || b.OccupiedCount() != 0 {
		t.Errorf("Build(5): len=%d occupied=%d", b.Len(), b.OccupiedCount())
	}
	if v.Pending() != 0 {
		t.Errorf("Build() left %d timers armed", v.Pending())
	}
	v.Advance(2 * time.Second)
	if fired != 0 {
		t.Errorf("%d expiries fired after Build()", fired)
	}
}

func TestBoardFreezeThaw(t *testing.T) {
	v := sched.NewVirtual()
	b := NewBoard(v, 3, nil)

	_ = b.Occupy(1, 0, time.Second)
	v.Advance(400 * time.Millisecond)

	b.Freeze()
	if v.Pending() != 0 {
		t.Fatalf("Freeze() left %d timers armed", v.Pending())
	}
	s, _ := b.Slot(1)
	if s.Expires != 600*time.Millisecond {
		t.Errorf("frozen Expires = %v, expected 600ms", s.Expires)
	}

	v.Advance(5 * time.Second)
	if s, _ := b.Slot(1); !s.Occupied {
		t.Fatal("occupant left while the board was frozen")
	}

	b.Thaw()
	v.Advance(599 * time.Millisecond)
	if s, _ := b.Slot(1); !s.Occupied {
		t.Error("occupant left before its remaining time")
	}
	v.Advance(time.Millisecond)
	if s, _ := b.Slot(1); s.Occupied {
		t.Error("occupant should leave once its remaining time is spent")
	}
}

// Random occupy/vacate/advance sequences never leave a slot with two
// occupants or a vacant slot with an armed expiry.
func TestBoardOccupancyInvariant(t *testing.T) {
	v := sched.NewVirtual()
	b := NewBoard(v, 9, nil)
	rng := rand.New(rand.NewSource(42))

	for step := 0; step < 5000; step++ {
		i := rng.Intn(9)
		switch rng.Intn(3) {
		case 0:
			s, _ := b.Slot(i)
			err := b.Occupy(i, rng.Intn(3), time.Duration(rng.Intn(2000)+1)*time.Millisecond)
			if s.Occupied != (err != nil) {
				t.Fatalf("step %d: Occupy(%d) on occupied=%v returned %v", step, i, s.Occupied, err)
			}
		case 1:
			b.Vacate(i)
		case 2:
			v.Advance(time.Duration(rng.Intn(500)) * time.Millisecond)
		}

		for j, s := range b.slots {
			if !s.occupied && s.expiry.Pending() {
				t.Fatalf("step %d: vacant slot %d has an armed expiry", step, j)
			}
			if s.occupied && !s.expiry.Pending() {
				t.Fatalf("step %d: occupied slot %d has no armed expiry", step, j)
			}
		}
		if b.Armed() != b.OccupiedCount() {
			t.Fatalf("step %d: %d armed for %d occupied", step, b.Armed(), b.OccupiedCount())
		}
	}
}
