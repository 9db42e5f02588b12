// File: propagate.go
// Role: Propagate — the global constraint-propagation relink.
// Determinism:
//   - Seed order follows the caller-supplied activeNodeIDs order; edge
//     iteration within propagateFrom follows graph.Edges' sorted order.
//     Both together fix the BFS enqueue order, which in turn fixes
//     constraint insertion order.

package relink

import (
	"github.com/katalvlaran/topoblend/geom"
	"github.com/katalvlaran/topoblend/graph"
	"github.com/katalvlaran/topoblend/task"
)

// Propagate runs the global constraint-propagation relink for one timestep:
// seed every relinkable task whose node is in activeNodeIDs, breadth-first
// propagate LinkConstraints to relinkable neighbors, and fix up every
// enqueued task exactly once via fixTask's case table.
//
// byNodeID must map every active-graph part ID to its owning task.
//
// Complexity: O(V + E) over the tasks/links reachable from the seed set.
func Propagate(activeNodeIDs []string, active *graph.Graph, byNodeID map[string]*task.Task) {
	r := newRun()

	var queue []*task.Task
	for _, nodeID := range activeNodeIDs {
		t, ok := byNodeID[nodeID]
		if !ok || r.propagated[t] || !isRelinkable(t) {
			continue
		}
		r.propagated[t] = true
		queue = append(queue, t)
	}

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		fixTask(r, t, active)
		queue = append(queue, propagateFrom(r, t, active, byNodeID)...)
	}
}

// isRelinkable reports whether t currently participates in constraint
// propagation.
func isRelinkable(t *task.Task) bool {
	if t.Type != task.Morph && t.IsCutNode {
		return true
	}
	if t.Shrunk {
		return false
	}
	if t.Type == task.Grow && !t.IsDone {
		return false
	}
	if t.Type != task.Morph {
		return false
	}
	if t.IsCrossing && !t.IsDone {
		return false
	}
	return true
}

// propagateFrom walks every edge of t's node, enqueuing relinkable
// neighbors not yet seen this run and recording a Constraint against any
// neighbor not yet fixed. Returns the tasks newly enqueued.
func propagateFrom(r *run, t *task.Task, active *graph.Graph, byNodeID map[string]*task.Task) []*task.Task {
	selfID := t.Node().ID()
	linkIDs, err := active.Edges(selfID)
	if err != nil {
		return nil
	}

	var enqueued []*task.Task
	for _, linkID := range linkIDs {
		link, err := active.GetLink(linkID)
		if err != nil {
			continue
		}
		otherID := link.OtherNode(selfID)
		otherTask, ok := byNodeID[otherID]
		if !ok || !isRelinkable(otherTask) {
			continue
		}

		if !r.propagated[otherTask] {
			r.propagated[otherTask] = true
			enqueued = append(enqueued, otherTask)
		}
		if !r.relinked[otherTask] {
			r.constraints[otherTask] = append(r.constraints[otherTask], Constraint{LinkID: linkID, From: t, To: otherTask})
		}
	}
	return enqueued
}

// fixTask applies the N=0/1/≥2-constraint case table to t, using the
// constraints accumulated against it so far this run.
func fixTask(r *run, t *task.Task, active *graph.Graph) {
	r.relinked[t] = true

	consts := r.constraints[t]
	n := len(consts)
	if n == 0 {
		return
	}

	selfID := t.Node().ID()

	switch {
	case t.IsDone:
		var sum geom.Vec3
		for _, c := range consts {
			d, ok := translationDelta(c.LinkID, active, selfID)
			if !ok {
				continue
			}
			sum = geom.AddVec(sum, d)
		}
		t.Node().Geometry.MoveBy(geom.ScaleVec(1/float64(n), sum))

	case n == 1:
		if d, ok := translationDelta(consts[0].LinkID, active, selfID); ok {
			t.Node().Geometry.MoveBy(d)
		}

	default:
		first, last := consts[0], consts[n-1]
		linkA, errA := active.GetLink(first.LinkID)
		linkB, errB := active.GetLink(last.LinkID)
		if errA != nil || errB != nil {
			return
		}
		newPosA, okA := linkNewPos(active, linkA, selfID)
		newPosB, okB := linkNewPos(active, linkB, selfID)
		if !okA || !okB {
			return
		}
		t.Node().Geometry.DeformTwoHandles(
			linkA.GetCoord(selfID), newPosA,
			linkB.GetCoord(selfID), newPosB,
		)
	}
}

// translationDelta returns newPos-oldPos for the link named linkID, from
// selfID's perspective.
func translationDelta(linkID string, active *graph.Graph, selfID string) (geom.Vec3, bool) {
	link, err := active.GetLink(linkID)
	if err != nil {
		return geom.ZeroVec3, false
	}
	oldPos, err := active.Position(link, selfID)
	if err != nil {
		return geom.ZeroVec3, false
	}
	newPos, ok := linkNewPos(active, link, selfID)
	if !ok {
		return geom.ZeroVec3, false
	}
	return geom.SubVec(newPos, oldPos), true
}

// linkNewPos returns anchor+delta for link from selfID's perspective:
// anchor is the link's position on the opposite endpoint, delta is the
// link's blended-delta value toward selfID.
func linkNewPos(active *graph.Graph, link *graph.Link, selfID string) (geom.Vec3, bool) {
	anchor, err := active.PositionOther(link, selfID)
	if err != nil {
		return geom.ZeroVec3, false
	}
	return geom.AddVec(anchor, link.GetToDelta(selfID)), true
}
