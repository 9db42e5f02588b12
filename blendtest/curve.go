// File: curve.go
// Role: a minimal geom.GeometryPart implementing a 1-D skeleton as a line
// segment between two control points. Deformation is a direct move of the
// nearer endpoint — a stand-in for the real ARAP-like solve, which lives
// behind the (out-of-scope) geometry-primitives collaborator.

package blendtest

import "github.com/katalvlaran/topoblend/geom"

// Curve is a rigid line segment with two control points P0 (t=0) and P1
// (t=1).
type Curve struct {
	PartID   string
	P0, P1   geom.Vec3
	CutNode  bool
	samples  []geom.GeometrySample
}

// NewCurve constructs a Curve part with the given ID and endpoints.
func NewCurve(id string, p0, p1 geom.Vec3) *Curve {
	return &Curve{PartID: id, P0: p0, P1: p1}
}

func (c *Curve) ID() string          { return c.PartID }
func (c *Curve) Type() geom.PartType { return geom.Curve }

// Position linearly interpolates between P0 and P1 using coord[0].
func (c *Curve) Position(coord geom.Coord) geom.Vec3 {
	return geom.AddVec(c.P0, geom.ScaleVec(coord[0], geom.SubVec(c.P1, c.P0)))
}

// MoveBy rigidly translates both control points.
func (c *Curve) MoveBy(delta geom.Vec3) {
	c.P0 = geom.AddVec(c.P0, delta)
	c.P1 = geom.AddVec(c.P1, delta)
}

// DeformTo moves the endpoint nearest handle's parameter directly to
// target. fixed has no bearing on this minimal stand-in — both the rigid
// and in-progress cases resolve to the same assignment, since there is no
// partial-solve state to distinguish here.
func (c *Curve) DeformTo(handle geom.Coord, target geom.Vec3, fixed bool) {
	_ = fixed
	if handle[0] <= 0.5 {
		c.P0 = target
	} else {
		c.P1 = target
	}
}

// DeformTwoHandles moves each named endpoint to its target, falling back to
// a single-handle translation when the two targets are coincident.
func (c *Curve) DeformTwoHandles(handleA geom.Coord, targetA geom.Vec3, handleB geom.Coord, targetB geom.Vec3) {
	if geom.CoincidentHandles(targetA, targetB) {
		c.MoveBy(geom.SubVec(targetA, c.Position(handleA)))
		return
	}
	c.DeformTo(handleA, targetA, true)
	c.DeformTo(handleB, targetB, true)
}

func (c *Curve) IsCutNode() bool { return c.CutNode }

func (c *Curve) Samples() []geom.GeometrySample { return c.samples }

func (c *Curve) SetSamples(s []geom.GeometrySample) { c.samples = s }

// Clone returns a deep, independent copy.
func (c *Curve) Clone() geom.GeometryPart {
	clone := &Curve{PartID: c.PartID, P0: c.P0, P1: c.P1, CutNode: c.CutNode}
	clone.samples = append([]geom.GeometrySample(nil), c.samples...)
	return clone
}
