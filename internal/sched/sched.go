// Package sched provides the timers that drive a round: a virtual-time
// scheduler whose callbacks fire in deadline order on the goroutine that
// advances it, cancellable task handles, and task groups that can be swept
// in one call.
//
// Nothing in this package starts goroutines except Loop, which exists for
// hosts that have no update loop of their own.
package sched

import (
	"container/heap"
	"time"
)

// Clock is a monotonic time source measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// Scheduler arms one-shot callbacks relative to its clock.
type Scheduler interface {
	Clock

	// AfterFunc arranges for fn to run once d has elapsed on the scheduler's
	// clock. Negative durations are treated as zero.
	AfterFunc(d time.Duration, fn func()) *Task
}

type taskState uint8

const (
	taskPending taskState = iota
	taskFired
	taskCancelled
)

// Task is a handle to one armed callback.
type Task struct {
	v     *Virtual
	when  time.Duration
	seq   uint64
	fn    func()
	index int // position in the heap, -1 once removed
	state taskState
}

// Cancel disarms the task. It returns true if the task was still pending.
// Cancelling a fired or already cancelled task is a no-op.
func (t *Task) Cancel() bool {
	if t == nil || t.state != taskPending {
		return false
	}
	heap.Remove(&t.v.queue, t.index)
	t.state = taskCancelled
	return true
}

// Pending reports whether the task is armed and has not fired yet.
func (t *Task) Pending() bool {
	return t != nil && t.state == taskPending
}

// Deadline returns the clock reading at which the task fires.
func (t *Task) Deadline() time.Duration {
	return t.when
}

// Remaining returns the time left before the task fires, or zero if it is
// no longer pending.
func (t *Task) Remaining() time.Duration {
	if !t.Pending() {
		return 0
	}
	if rem := t.when - t.v.now; rem > 0 {
		return rem
	}
	return 0
}

// Virtual is a Scheduler whose clock only moves when Advance is called.
// It is not safe for concurrent use.
type Virtual struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// NewVirtual creates a scheduler with its clock at zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// Now returns the current virtual time.
func (v *Virtual) Now() time.Duration {
	return v.now
}

// AfterFunc implements Scheduler.
func (v *Virtual) AfterFunc(d time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	v.seq++
	t := &Task{
		v:    v,
		when: v.now + d,
		seq:  v.seq,
		fn:   fn,
	}
	heap.Push(&v.queue, t)
	return t
}

// Advance moves the clock forward by d, firing every task that falls due on
// the way. Returns the number of callbacks run.
func (v *Virtual) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return v.AdvanceTo(v.now + d)
}

// AdvanceTo moves the clock to target, firing due tasks in deadline order.
// Tasks scheduled by a callback fire in the same call if they fall due before
// target. The clock never moves backwards.
func (v *Virtual) AdvanceTo(target time.Duration) int {
	fired := 0
	for len(v.queue) > 0 && v.queue[0].when <= target {
		t := heap.Pop(&v.queue).(*Task)
		if t.when > v.now {
			v.now = t.when
		}
		t.state = taskFired
		t.fn()
		fired++
	}
	if target > v.now {
		v.now = target
	}
	return fired
}

// Pending returns the number of armed tasks.
func (v *Virtual) Pending() int {
	return len(v.queue)
}

// NextDeadline returns the deadline of the earliest armed task.
func (v *Virtual) NextDeadline() (time.Duration, bool) {
	if len(v.queue) == 0 {
		return 0, false
	}
	return v.queue[0].when, true
}

// taskQueue orders tasks by deadline, then by arming order.
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].when != q[j].when {
		return q[i].when < q[j].when
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
