package relink_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topoblend/blendtest"
	"github.com/katalvlaran/topoblend/geom"
	"github.com/katalvlaran/topoblend/graph"
	"github.com/katalvlaran/topoblend/relink"
	"github.com/katalvlaran/topoblend/task"
)

func TestLocalAppliesCachedDeltaAcrossSteps(t *testing.T) {
	active := graph.NewGraph()
	a := blendtest.NewCurve("a", geom.ZeroVec3, geom.Vec3{X: 1})
	b := blendtest.NewCurve("b", geom.Vec3{X: 2}, geom.Vec3{X: 3})
	require.NoError(t, active.AddPart(a))
	require.NoError(t, active.AddPart(b))
	_, err := active.AddLink("a", "b", geom.CurveCoord(1), geom.CurveCoord(0), geom.ZeroVec3)
	require.NoError(t, err)

	pa, _ := active.GetPart("a")
	pb, _ := active.GetPart("b")
	ta := task.New(task.Morph, pa, pa)
	tb := task.New(task.Shrink, pb, nil)
	byNodeID := map[string]*task.Task{"a": ta, "b": tb}

	// First call: linkDeltas not yet cached. a.P1=1, b.P0=2, so the captured
	// delta is (1,0,0) and applying it against a's unmoved endpoint leaves b
	// exactly where it already was.
	require.NoError(t, relink.Local(ta, active, byNodeID, 0.2))
	require.Len(t, ta.LinkDeltas, 1)
	require.InDelta(t, 2, b.P0.X, 1e-9)

	// Simulate the task's own Execute moving its endpoint later in the run;
	// the cached delta (not recomputed) should still be applied relative to
	// the new position.
	a.P1 = geom.Vec3{X: 10}
	require.NoError(t, relink.Local(ta, active, byNodeID, 0.6))
	require.InDelta(t, 11, b.P0.X, 1e-9)
}

func TestLocalSkipsNonQualifyingTaskButStillCachesDeltas(t *testing.T) {
	active := graph.NewGraph()
	a := blendtest.NewCurve("a", geom.ZeroVec3, geom.Vec3{X: 1})
	b := blendtest.NewCurve("b", geom.Vec3{X: 2}, geom.Vec3{X: 3})
	require.NoError(t, active.AddPart(a))
	require.NoError(t, active.AddPart(b))
	_, err := active.AddLink("a", "b", geom.CurveCoord(1), geom.CurveCoord(0), geom.ZeroVec3)
	require.NoError(t, err)

	pa, _ := active.GetPart("a")
	pb, _ := active.GetPart("b")
	// Plain SHRINK, not a cut node: relink.Local's prepare step still caches
	// linkDeltas (spec step 3b runs unconditionally), but the apply step
	// (3d) is gated on MORPH/cutNodeGrow/cutNodeShrink and must no-op here.
	ta := task.New(task.Shrink, pa, nil)
	tb := task.New(task.Shrink, pb, nil)
	byNodeID := map[string]*task.Task{"a": ta, "b": tb}

	require.NoError(t, relink.Local(ta, active, byNodeID, 0.3))
	require.Len(t, ta.LinkDeltas, 1)
	require.InDelta(t, 2, b.P0.X, 1e-9) // untouched
}
