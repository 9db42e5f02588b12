// File: execute.go
// Role: Task.Prepare/Execute — the per-type deformation drivers. Task types
// differ only in Execute: Shrink collapses the node to a null-size point by
// localT=1; Grow is the reverse, requiring targetNode to exist; Morph
// interpolates the skeleton between source and target bases.
// Determinism:
//   - Prepare is idempotent: a second call is a no-op.

package task

import (
	"errors"

	"github.com/katalvlaran/topoblend/geom"
)

// ErrNoTargetNode is returned by Prepare when a Grow or Morph task has no
// TargetNode — a fatal precondition violation, reported before the first
// timestep.
var ErrNoTargetNode = errors.New("task: Grow/Morph task has no target node")

// Prepare resolves this task's internal geometry bases (origin/anchor per
// reference handle). Idempotent: a second call is a no-op.
//
// Complexity: O(h) where h is the part's handle count (2 or 4).
func (t *Task) Prepare() error {
	if t.prepared {
		return nil
	}
	if (t.Type == Grow || t.Type == Morph) && t.targetNode == nil {
		return ErrNoTargetNode
	}

	t.handles = referenceHandles(t.node.Geometry.Type())
	cur := make([]geom.Vec3, len(t.handles))
	for i, h := range t.handles {
		cur[i] = t.node.Geometry.Position(h)
	}

	switch t.Type {
	case Shrink:
		// Spread -> collapse point.
		collapse := centroid(cur)
		t.origin = cur
		t.anchor = repeat(collapse, len(t.handles))
	case Grow:
		// Collapse point -> the node's already-placed target spread.
		collapse := centroid(cur)
		t.origin = repeat(collapse, len(t.handles))
		t.anchor = cur
	case Morph:
		// Source basis -> target basis.
		target := make([]geom.Vec3, len(t.handles))
		for i, h := range t.handles {
			target[i] = t.targetNode.Geometry.Position(h)
		}
		t.origin = cur
		t.anchor = target
	}

	t.prepared = true
	return nil
}

// repeat returns a slice of n copies of v.
func repeat(v geom.Vec3, n int) []geom.Vec3 {
	out := make([]geom.Vec3, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Execute advances this task's deformation to local time localT in [0,1]
// (values are clamped defensively; the executor is responsible for only
// calling Execute when 0 <= localT).
//
// Complexity: O(h).
func (t *Task) Execute(localT float64) {
	clamped := localT
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 1 {
		clamped = 1
	}
	fixed := localT >= 1

	for i, h := range t.handles {
		target := lerp(t.origin[i], t.anchor[i], clamped)
		t.node.Geometry.DeformTo(h, target, fixed)
	}

	if localT >= 1 {
		t.IsDone = true
		if t.Type == Shrink {
			t.Shrunk = true
		}
	}
}

// GeometryMorph updates the node's attached sample geometry for rendering:
// re-evaluates every sample's world position at its stored coordinate.
// Called twice per step: once during relinking of upstream tasks (with
// clamped localT) and once at end-of-step.
//
// Complexity: O(s) where s is the part's attached sample count.
func (t *Task) GeometryMorph(localT float64) {
	samples := t.node.Geometry.Samples()
	if len(samples) == 0 {
		return
	}
	updated := make([]geom.GeometrySample, len(samples))
	for i, s := range samples {
		updated[i] = geom.GeometrySample{
			Coord:    s.Coord,
			Position: t.node.Geometry.Position(s.Coord),
		}
	}
	t.node.Geometry.SetSamples(updated)
}
