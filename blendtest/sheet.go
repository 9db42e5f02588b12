// File: sheet.go
// Role: a minimal geom.GeometryPart implementing a 2-D skeleton as a
// bilinear-corner patch. Deformation moves the nearer corner directly — a
// stand-in for the real bilinear-warp solve, which lives behind the
// (out-of-scope) geometry-primitives collaborator.

package blendtest

import "github.com/katalvlaran/topoblend/geom"

// Sheet is a bilinear patch defined by four corners: C00 (u=0,v=0), C10
// (u=1,v=0), C01 (u=0,v=1), C11 (u=1,v=1).
type Sheet struct {
	PartID               string
	C00, C10, C01, C11   geom.Vec3
	CutNode              bool
	samples              []geom.GeometrySample
}

// NewSheet constructs a Sheet part with the given ID and four corners.
func NewSheet(id string, c00, c10, c01, c11 geom.Vec3) *Sheet {
	return &Sheet{PartID: id, C00: c00, C10: c10, C01: c01, C11: c11}
}

func (s *Sheet) ID() string          { return s.PartID }
func (s *Sheet) Type() geom.PartType { return geom.Sheet }

// Position bilinearly interpolates the four corners using coord[0]=u,
// coord[1]=v.
func (s *Sheet) Position(coord geom.Coord) geom.Vec3 {
	u, v := coord[0], coord[1]
	top := lerpVec(s.C00, s.C10, u)
	bottom := lerpVec(s.C01, s.C11, u)
	return lerpVec(top, bottom, v)
}

// MoveBy rigidly translates all four corners.
func (s *Sheet) MoveBy(delta geom.Vec3) {
	s.C00 = geom.AddVec(s.C00, delta)
	s.C10 = geom.AddVec(s.C10, delta)
	s.C01 = geom.AddVec(s.C01, delta)
	s.C11 = geom.AddVec(s.C11, delta)
}

// DeformTo moves the corner nearest handle's (u,v) directly to target.
func (s *Sheet) DeformTo(handle geom.Coord, target geom.Vec3, fixed bool) {
	_ = fixed
	switch nearestCorner(handle) {
	case 0:
		s.C00 = target
	case 1:
		s.C10 = target
	case 2:
		s.C01 = target
	default:
		s.C11 = target
	}
}

// DeformTwoHandles moves each named corner to its target, falling back to
// a single-handle translation when the two targets are coincident.
func (s *Sheet) DeformTwoHandles(handleA geom.Coord, targetA geom.Vec3, handleB geom.Coord, targetB geom.Vec3) {
	if geom.CoincidentHandles(targetA, targetB) {
		s.MoveBy(geom.SubVec(targetA, s.Position(handleA)))
		return
	}
	s.DeformTo(handleA, targetA, true)
	s.DeformTo(handleB, targetB, true)
}

func (s *Sheet) IsCutNode() bool { return s.CutNode }

func (s *Sheet) Samples() []geom.GeometrySample { return s.samples }

func (s *Sheet) SetSamples(v []geom.GeometrySample) { s.samples = v }

// Clone returns a deep, independent copy.
func (s *Sheet) Clone() geom.GeometryPart {
	clone := &Sheet{PartID: s.PartID, C00: s.C00, C10: s.C10, C01: s.C01, C11: s.C11, CutNode: s.CutNode}
	clone.samples = append([]geom.GeometrySample(nil), s.samples...)
	return clone
}

// lerpVec returns a + t*(b-a).
func lerpVec(a, b geom.Vec3, t float64) geom.Vec3 {
	return geom.AddVec(a, geom.ScaleVec(t, geom.SubVec(b, a)))
}

// nearestCorner maps a handle's (u,v) to the index of the nearest of the
// four corners: 0=C00, 1=C10, 2=C01, 3=C11.
func nearestCorner(handle geom.Coord) int {
	u, v := handle[0], handle[1]
	idx := 0
	if u > 0.5 {
		idx |= 1
	}
	if v > 0.5 {
		idx |= 2
	}
	// Bit layout (v<<1 | u) maps to 0=C00,1=C10,2=C01,3=C11 directly.
	return idx
}
