// File: task.go
// Role: Task type, Timeline math, and the named-field property bag: a fixed
// record of optional fields in place of a heterogeneous string-keyed map;
// the two transient flags Relinked/Propagated live on relink.run instead.
// Determinism:
//   - LocalT is a pure function of globalT, Start, and Length.

package task

import (
	"math"

	"github.com/katalvlaran/topoblend/geom"
	"github.com/katalvlaran/topoblend/graph"
)

// Type is the kind of topological operation a Task drives.
type Type int

const (
	// Shrink collapses a source-graph node to a null-size point.
	Shrink Type = iota
	// Grow expands a target-graph node from a null-size point.
	Grow
	// Morph interpolates a node's skeleton between its source and target
	// bases.
	Morph
)

// String renders the task type for logs and test failure messages.
func (t Type) String() string {
	switch t {
	case Shrink:
		return "SHRINK"
	case Grow:
		return "GROW"
	case Morph:
		return "MORPH"
	default:
		return "UNKNOWN"
	}
}

// Task is the lifecycle of one corresponded node: what transformation it
// undergoes, its absolute timeline on the shared schedule, and the
// bookkeeping the Scheduler/Executor/Relinker attach to it.
//
// Tasks are created once per corresponded node pair (BuildTasks), before
// scheduling; the scheduler writes Start, the executor mutates IsDone and
// prepared/relink bookkeeping, and tasks are destroyed with the engine.
type Task struct {
	// Type is fixed at construction.
	Type Type

	// node is the active-graph part this task owns.
	node *graph.Part
	// targetNode is the corresponding target-graph part, non-nil only for
	// Grow and Morph.
	targetNode *graph.Part

	// Start is the task's absolute start time on the shared integer
	// timeline, written once by the Scheduler.
	Start int
	// Length is the task's duration on the shared timeline.
	Length int

	// IsDone is set true the first step localT >= 1 is observed.
	IsDone bool

	// IsCutNode flags that this task's node participates in the engine's
	// cut-node special casing: for Shrink, the node is a cut node of the
	// source graph (CutNodeShrink); for Grow, the target node is a cut node
	// of the target graph (CutNodeGrow).
	IsCutNode bool
	// IsCrossing flags a task whose correspondence crosses graph topology
	// in a way that defers its relinkability until it is done.
	IsCrossing bool
	// Shrunk marks a Shrink task's node as fully collapsed; relinkable
	// checks exclude shrunk nodes from propagation.
	Shrunk bool
	// CutNodeGrow is set by the executor's pre-pass when this is a Grow
	// task whose target node is a cut node of the target graph.
	CutNodeGrow bool
	// CutNodeShrink is set by the executor's pre-pass when this is a Shrink
	// task whose node is a cut node of the source graph.
	CutNodeShrink bool

	// LinkDeltas caches, per incident link ID, the world-space delta this
	// task's per-task local relink (relink.Local) should apply; computed
	// once by relink.Local's internal prepare step and left untouched after.
	// nil means "not yet computed"; a non-nil map (possibly empty) means the
	// one-time computation ran.
	LinkDeltas map[string]geom.Vec3

	prepared bool

	// handles are the reference parametric coordinates this task drives
	// during Execute (see handles.go). origin/anchor are captured once in
	// Prepare and interpolated by LocalT thereafter.
	handles []geom.Coord
	origin  []geom.Vec3
	anchor  []geom.Vec3
}

// DefaultLength is the task duration BuildTasks assigns to every new task:
// every task gets the same fixed local timeline width, since this engine
// has no GUI item whose visual size would otherwise drive it (see
// DESIGN.md Open Questions).
const DefaultLength = 100

// New constructs a Task with its Length preset to DefaultLength. node must
// be non-nil; targetNode may be nil only for Shrink tasks.
func New(typ Type, node, targetNode *graph.Part) *Task {
	return &Task{
		Type:       typ,
		node:       node,
		targetNode: targetNode,
		Length:     DefaultLength,
	}
}

// Node returns the active-graph part this task owns.
func (t *Task) Node() *graph.Part { return t.node }

// TargetNode returns the corresponding target-graph part, or nil for Shrink.
func (t *Task) TargetNode() *graph.Part { return t.targetNode }

// EndTime returns Start + Length.
func (t *Task) EndTime() int { return t.Start + t.Length }

// LocalT maps an absolute globalT onto this task's local [0,1] timeline,
// clamped into (-inf, 1]. Values < 0 mean "not yet started".
//
// Complexity: O(1).
func (t *Task) LocalT(globalT float64) float64 {
	if t.Length <= 0 {
		if globalT >= float64(t.Start) {
			return 1
		}
		return -1
	}
	lt := (globalT - float64(t.Start)) / float64(t.Length)
	return math.Min(lt, 1)
}

// IsActive reports 0 <= localT < 1.
func IsActive(localT float64) bool { return localT >= 0 && localT < 1 }
