// File: constraint.go
// Role: Constraint and the per-run scratch state Propagate needs. The two
// transient flags relinked/propagated live on this auxiliary per-run table
// keyed by task, rather than on the task itself, since they are only ever
// meaningful within a single Propagate call.

package relink

import "github.com/katalvlaran/topoblend/task"

// Constraint records "respect LinkID when repositioning To, using From as
// the anchor."
type Constraint struct {
	LinkID string
	From   *task.Task
	To     *task.Task
}

// run holds one timestep's worth of constraint-propagation bookkeeping.
// A run is single-use: Propagate constructs a fresh one on every call, so
// relinked/propagated never leak across timesteps (unlike LinkDeltas,
// which is intentionally cached for a task's whole lifetime).
type run struct {
	// constraints is keyed by the to-be-fixed task; order-preserving
	// insertion is mandatory since constraint order feeds the two-handle
	// tie-break in fixTask.
	constraints map[*task.Task][]Constraint
	relinked    map[*task.Task]bool
	propagated  map[*task.Task]bool
}

func newRun() *run {
	return &run{
		constraints: make(map[*task.Task][]Constraint),
		relinked:    make(map[*task.Task]bool),
		propagated:  make(map[*task.Task]bool),
	}
}
