// SPDX-License-Identifier: MIT
package task_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topoblend/blendtest"
	"github.com/katalvlaran/topoblend/geom"
	"github.com/katalvlaran/topoblend/graph"
	"github.com/katalvlaran/topoblend/task"
)

func TestLocalTClampingAndNotYetStarted(t *testing.T) {
	tk := task.New(task.Morph, nil, nil)
	tk.Start = 10
	tk.Length = 20

	require.Less(t, tk.LocalT(5), 0.0, "before start should be negative")
	require.Equal(t, 0.0, tk.LocalT(10))
	require.Equal(t, 0.5, tk.LocalT(20))
	require.Equal(t, 1.0, tk.LocalT(30))
	require.Equal(t, 1.0, tk.LocalT(100), "localT clamps to <= 1")
}

func TestIsActive(t *testing.T) {
	require.True(t, task.IsActive(0))
	require.True(t, task.IsActive(0.5))
	require.False(t, task.IsActive(1))
	require.False(t, task.IsActive(-0.1))
}

func TestShrinkExecuteCollapsesToCentroid(t *testing.T) {
	curve := blendtest.NewCurve("a", geom.Vec3{X: 0}, geom.Vec3{X: 10})
	part := &graph.Part{Geometry: curve}
	tk := task.New(task.Shrink, part, nil)
	require.NoError(t, tk.Prepare())

	tk.Execute(0)
	require.Equal(t, geom.Vec3{X: 0}, curve.P0)
	require.Equal(t, geom.Vec3{X: 10}, curve.P1)

	tk.Execute(1)
	require.True(t, tk.IsDone)
	require.True(t, tk.Shrunk)
	// Both ends collapse to the original centroid (x=5).
	require.InDelta(t, 5, curve.P0.X, 1e-9)
	require.InDelta(t, 5, curve.P1.X, 1e-9)
}

func TestGrowExecuteExpandsFromCentroid(t *testing.T) {
	targetCurve := blendtest.NewCurve("t", geom.Vec3{X: 0}, geom.Vec3{X: 10})
	growCurve := blendtest.NewCurve("t", geom.Vec3{X: 0}, geom.Vec3{X: 10})
	node := &graph.Part{Geometry: growCurve}
	targetNode := &graph.Part{Geometry: targetCurve}

	tk := task.New(task.Grow, node, targetNode)
	require.NoError(t, tk.Prepare())

	tk.Execute(0)
	require.InDelta(t, 5, growCurve.P0.X, 1e-9)
	require.InDelta(t, 5, growCurve.P1.X, 1e-9)

	tk.Execute(1)
	require.True(t, tk.IsDone)
	require.InDelta(t, 0, growCurve.P0.X, 1e-9)
	require.InDelta(t, 10, growCurve.P1.X, 1e-9)
}

func TestMorphRequiresTargetNode(t *testing.T) {
	curve := blendtest.NewCurve("a", geom.ZeroVec3, geom.Vec3{X: 1})
	node := &graph.Part{Geometry: curve}
	tk := task.New(task.Morph, node, nil)
	require.ErrorIs(t, tk.Prepare(), task.ErrNoTargetNode)
}

func TestMorphExecuteInterpolatesTowardTarget(t *testing.T) {
	source := blendtest.NewCurve("a", geom.ZeroVec3, geom.Vec3{X: 1})
	target := blendtest.NewCurve("b", geom.Vec3{X: 10}, geom.Vec3{X: 11})
	node := &graph.Part{Geometry: source}
	targetNode := &graph.Part{Geometry: target}

	tk := task.New(task.Morph, node, targetNode)
	require.NoError(t, tk.Prepare())

	tk.Execute(0.5)
	require.InDelta(t, 5, source.P0.X, 1e-9)
	require.InDelta(t, 6, source.P1.X, 1e-9)
	require.False(t, tk.IsDone)

	tk.Execute(1)
	require.True(t, tk.IsDone)
	require.InDelta(t, 10, source.P0.X, 1e-9)
	require.InDelta(t, 11, source.P1.X, 1e-9)
}
