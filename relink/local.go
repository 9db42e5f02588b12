// File: local.go
// Role: Local — the per-task forward-propagation relink: caches a
// one-time world-space delta per incident link, then reapplies it to each
// neighbor's geometry every step. A cut-node GROW task's prepare pass
// forces every neighbor task's IsDone false first, so its deltas are
// always computed regardless of the neighbors' prior completion state.
// Determinism:
//   - linkDeltas keys are link IDs; Local iterates them sorted ascending
//     so two runs over an unchanged graph apply deltas in the same order.

package relink

import (
	"sort"

	"github.com/katalvlaran/topoblend/geom"
	"github.com/katalvlaran/topoblend/graph"
	"github.com/katalvlaran/topoblend/task"
)

// PrepareDeltas computes t's one-time linkDeltas cache if not already
// computed. The executor calls this before t.Execute so the captured
// deltas reflect the node's pre-deformation position; Local also calls
// this lazily for callers that
// invoke it standalone (e.g. tests), where the ordering nuance does not
// apply.
//
// Complexity: O(d) where d is t's valence in active; a no-op after the
// first call for a given task.
func PrepareDeltas(t *task.Task, active *graph.Graph, byNodeID map[string]*task.Task) error {
	if t.LinkDeltas != nil {
		return nil
	}
	deltas, err := prepareDeltas(t, active, byNodeID)
	if err != nil {
		return err
	}
	t.LinkDeltas = deltas
	return nil
}

// Local applies task t's per-task local relink for the current step.
//
// byNodeID must map every active-graph part ID present in active to its
// owning task. lt is the local time the caller already computed for t via
// task.LocalT for this step.
//
// Complexity: O(d) where d is t's valence in active, plus the one-time
// O(d) prepare pass on the first call.
func Local(t *task.Task, active *graph.Graph, byNodeID map[string]*task.Task, lt float64) error {
	if err := PrepareDeltas(t, active, byNodeID); err != nil {
		return err
	}
	if len(t.LinkDeltas) == 0 {
		return nil
	}
	if t.Type != task.Morph && !t.CutNodeGrow && !t.CutNodeShrink {
		return nil
	}

	selfID := t.Node().ID()
	linkIDs := make([]string, 0, len(t.LinkDeltas))
	for id := range t.LinkDeltas {
		linkIDs = append(linkIDs, id)
	}
	sort.Strings(linkIDs)

	clamped := clamp01(lt)

	for _, linkID := range linkIDs {
		link, err := active.GetLink(linkID)
		if err != nil {
			continue // link removed since prepare
		}
		if !link.HasNode(selfID) {
			continue
		}
		otherID := link.OtherNode(selfID)
		otherTask, ok := byNodeID[otherID]
		if !ok {
			continue
		}

		handle := link.GetCoordOther(selfID)
		selfPos, err := active.Position(link, selfID)
		if err != nil {
			continue
		}
		newPos := geom.AddVec(selfPos, t.LinkDeltas[linkID])

		otherTask.Node().Geometry.DeformTo(handle, newPos, otherTask.IsDone)
		otherTask.GeometryMorph(clamped)
	}
	return nil
}

// prepareDeltas computes t's one-time linkDeltas cache: for every edge
// whose other task is not done, the world-space delta between the other
// endpoint's position and this node's own position on the link, snapped
// to zero under the negligible-delta threshold.
func prepareDeltas(t *task.Task, active *graph.Graph, byNodeID map[string]*task.Task) (map[string]geom.Vec3, error) {
	selfID := t.Node().ID()
	linkIDs, err := active.Edges(selfID)
	if err != nil {
		return nil, err
	}

	if t.CutNodeGrow {
		for _, linkID := range linkIDs {
			link, err := active.GetLink(linkID)
			if err != nil {
				continue
			}
			otherID := link.OtherNode(selfID)
			if otherTask, ok := byNodeID[otherID]; ok {
				otherTask.IsDone = false
			}
		}
	}

	deltas := make(map[string]geom.Vec3, len(linkIDs))
	for _, linkID := range linkIDs {
		link, err := active.GetLink(linkID)
		if err != nil {
			continue
		}
		otherID := link.OtherNode(selfID)
		if otherTask, ok := byNodeID[otherID]; ok && otherTask.IsDone {
			continue
		}

		selfPos, err := active.Position(link, selfID)
		if err != nil {
			continue
		}
		otherPos, err := active.PositionOther(link, selfID)
		if err != nil {
			continue
		}
		deltas[linkID] = geom.SnapNegligible(geom.SubVec(otherPos, selfPos))
	}
	return deltas, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
