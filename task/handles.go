// File: handles.go
// Role: the small geometric deformation primitive the engine itself owns.
// Task drives a fixed set of reference handles on its node's skeleton
// through GeometryPart.DeformTo; the actual curve/sheet math stays behind
// GeometryPart.
//
// Curve parts expose two handles (their two ends); Sheet parts expose four
// (their four corners).

package task

import "github.com/katalvlaran/topoblend/geom"

// referenceHandles returns the fixed handle coordinates this task drives
// for a part of the given type.
func referenceHandles(t geom.PartType) []geom.Coord {
	if t == geom.Sheet {
		return []geom.Coord{
			geom.SheetCoord(0, 0),
			geom.SheetCoord(1, 0),
			geom.SheetCoord(0, 1),
			geom.SheetCoord(1, 1),
		}
	}
	return []geom.Coord{geom.CurveCoord(0), geom.CurveCoord(1)}
}

// centroid returns the mean of vs, or the zero vector for an empty slice.
func centroid(vs []geom.Vec3) geom.Vec3 {
	if len(vs) == 0 {
		return geom.ZeroVec3
	}
	sum := geom.ZeroVec3
	for _, v := range vs {
		sum = geom.AddVec(sum, v)
	}
	return geom.ScaleVec(1/float64(len(vs)), sum)
}

// lerp returns a + t*(b-a).
func lerp(a, b geom.Vec3, t float64) geom.Vec3 {
	return geom.AddVec(a, geom.ScaleVec(t, geom.SubVec(b, a)))
}
