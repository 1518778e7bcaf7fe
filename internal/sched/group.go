package sched

// Group tracks the tasks armed by one owner so they can be cancelled together.
// The zero value is ready to use.
type Group struct {
	tasks []*Task
}

// Add records t and returns it, pruning tasks that already fired or were
// cancelled.
func (g *Group) Add(t *Task) *Task {
	g.prune()
	g.tasks = append(g.tasks, t)
	return t
}

// CancelAll disarms every pending task in the group and forgets them all.
// Returns how many were still pending.
func (g *Group) CancelAll() int {
	n := 0
	for _, t := range g.tasks {
		if t.Cancel() {
			n++
		}
	}
	clear(g.tasks)
	g.tasks = g.tasks[:0]
	return n
}

// Len returns the number of pending tasks in the group.
func (g *Group) Len() int {
	n := 0
	for _, t := range g.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

func (g *Group) prune() {
	kept := g.tasks[:0]
	for _, t := range g.tasks {
		if t.Pending() {
			kept = append(kept, t)
		}
	}
	clear(g.tasks[len(kept):])
	g.tasks = kept
}
