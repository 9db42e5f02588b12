// SPDX-License-Identifier: MIT
package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topoblend/blendtest"
	"github.com/katalvlaran/topoblend/geom"
	"github.com/katalvlaran/topoblend/graph"
	"github.com/katalvlaran/topoblend/schedule"
	"github.com/katalvlaran/topoblend/task"
)

func chainGraph(t *testing.T, ids ...string) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for i, id := range ids {
		require.NoError(t, g.AddPart(blendtest.NewCurve(id, geom.Vec3{X: float64(i)}, geom.Vec3{X: float64(i) + 1})))
	}
	for i := 0; i+1 < len(ids); i++ {
		_, err := g.AddLink(ids[i], ids[i+1], geom.CurveCoord(1), geom.CurveCoord(0), geom.ZeroVec3)
		require.NoError(t, err)
	}
	return g
}

func TestScheduleShrinkChainLayering(t *testing.T) {
	active := chainGraph(t, "a", "b", "c")
	target := graph.NewGraph()

	var tasks []*task.Task
	for _, id := range []string{"a", "b", "c"} {
		p, err := active.GetPart(id)
		require.NoError(t, err)
		tasks = append(tasks, task.New(task.Shrink, p, nil))
	}

	result, err := schedule.Schedule(tasks, active, target)
	require.NoError(t, err)
	require.Greater(t, result.TotalExecutionTime, 0)

	// The chain's middle node (b, degree 2) should be peeled last and so,
	// after the SHRINK bucket's layer reversal, start earliest.
	byID := map[string]*task.Task{}
	for _, tk := range tasks {
		byID[tk.Node().ID()] = tk
	}
	require.LessOrEqual(t, byID["b"].Start, byID["a"].Start)
	require.LessOrEqual(t, byID["b"].Start, byID["c"].Start)
}

func TestScheduleMorphSequential(t *testing.T) {
	active := graph.NewGraph()
	target := graph.NewGraph()
	require.NoError(t, active.AddPart(blendtest.NewCurve("a", geom.ZeroVec3, geom.Vec3{X: 1})))
	require.NoError(t, active.AddPart(blendtest.NewCurve("b", geom.Vec3{X: 2}, geom.Vec3{X: 3})))
	require.NoError(t, target.AddPart(blendtest.NewCurve("a", geom.Vec3{X: 5}, geom.Vec3{X: 6})))
	require.NoError(t, target.AddPart(blendtest.NewCurve("b", geom.Vec3{X: 7}, geom.Vec3{X: 8})))

	pa, err := active.GetPart("a")
	require.NoError(t, err)
	pb, err := active.GetPart("b")
	require.NoError(t, err)
	ta, err := target.GetPart("a")
	require.NoError(t, err)
	tb, err := target.GetPart("b")
	require.NoError(t, err)

	t1 := task.New(task.Morph, pa, ta)
	t2 := task.New(task.Morph, pb, tb)

	result, err := schedule.Schedule([]*task.Task{t1, t2}, active, target)
	require.NoError(t, err)
	// Equal-valence MORPH tasks run strictly back to back (order between
	// them is priority-sort's own tie-break, not asserted here).
	starts := []int{t1.Start, t2.Start}
	require.ElementsMatch(t, []int{0, task.DefaultLength}, starts)
	require.Equal(t, task.DefaultLength*2, result.TotalExecutionTime)
}

func TestScheduleGroupAlignment(t *testing.T) {
	active := graph.NewGraph()
	require.NoError(t, active.AddPart(blendtest.NewCurve("a", geom.ZeroVec3, geom.Vec3{X: 1})))
	require.NoError(t, active.AddPart(blendtest.NewCurve("b", geom.Vec3{X: 2}, geom.Vec3{X: 3})))
	require.NoError(t, active.AddPart(blendtest.NewCurve("iso", geom.Vec3{X: 10}, geom.Vec3{X: 11})))

	grouped := graph.NewGraph(graph.WithGroups([][]string{{"a", "b"}}))
	for _, id := range []string{"a", "b", "iso"} {
		p, err := active.GetPart(id)
		require.NoError(t, err)
		require.NoError(t, grouped.AddPart(p.Geometry))
	}

	pa, _ := active.GetPart("a")
	pb, _ := active.GetPart("b")
	piso, _ := active.GetPart("iso")

	ta := task.New(task.Shrink, pa, nil)
	tb := task.New(task.Shrink, pb, nil)
	tiso := task.New(task.Shrink, piso, nil)

	_, err := schedule.Schedule([]*task.Task{ta, tb, tiso}, grouped, graph.NewGraph())
	require.NoError(t, err)
	require.Equal(t, ta.Start, tb.Start, "grouped tasks must share a start time")
}

func TestScheduleMissingTargetNodeErrors(t *testing.T) {
	active := graph.NewGraph()
	require.NoError(t, active.AddPart(blendtest.NewCurve("a", geom.ZeroVec3, geom.Vec3{X: 1})))
	p, _ := active.GetPart("a")
	broken := task.New(task.Morph, p, nil)

	_, err := schedule.Schedule([]*task.Task{broken}, active, graph.NewGraph())
	require.ErrorIs(t, err, schedule.ErrMissingTargetNode)
}

func TestScheduleGapCompressionRemovesIdleSpace(t *testing.T) {
	active := graph.NewGraph()
	require.NoError(t, active.AddPart(blendtest.NewCurve("a", geom.ZeroVec3, geom.Vec3{X: 1})))
	require.NoError(t, active.AddPart(blendtest.NewCurve("b", geom.Vec3{X: 2}, geom.Vec3{X: 3})))
	pa, _ := active.GetPart("a")
	pb, _ := active.GetPart("b")

	ta := task.New(task.Shrink, pa, nil)
	tb := task.New(task.Shrink, pb, nil)

	result, err := schedule.Schedule([]*task.Task{ta, tb}, active, graph.NewGraph(), schedule.WithStride(10))
	require.NoError(t, err)
	// Two unrelated single-node components land back to back with no gap.
	require.Equal(t, result.TotalExecutionTime, ta.Length+tb.Length)
}
