// File: vec.go
// Role: Vec3 type and arithmetic used by task execution and relinking.
// Determinism:
//   - All operations are pure functions of their inputs; no hidden state.
// Concurrency:
//   - Vec3 is a value type; safe to share across goroutines by copy.

package geom

import "gonum.org/v1/gonum/spatial/r3"

// Vec3 is a world-space point or displacement. It is a value type backed by
// gonum's r3.Vec so the engine gets well-tested vector arithmetic instead of
// a hand-rolled reimplementation.
type Vec3 = r3.Vec

// ZeroVec3 is the additive identity.
var ZeroVec3 = Vec3{X: 0, Y: 0, Z: 0}

// AddVec returns a+b.
//
// Complexity: O(1).
func AddVec(a, b Vec3) Vec3 { return r3.Add(a, b) }

// SubVec returns a-b.
//
// Complexity: O(1).
func SubVec(a, b Vec3) Vec3 { return r3.Sub(a, b) }

// ScaleVec returns f*v.
//
// Complexity: O(1).
func ScaleVec(f float64, v Vec3) Vec3 { return r3.Scale(f, v) }

// NormVec returns the Euclidean length of v.
//
// Complexity: O(1).
func NormVec(v Vec3) float64 { return r3.Norm(v) }

// negligibleDelta is the geometric-degeneracy threshold: deltas smaller
// than this are treated as noise and snapped to zero rather than propagated
// as a "real" translation.
const negligibleDelta = 1e-7

// SnapNegligible zeroes v if its norm is within negligibleDelta of zero.
//
// Rationale: stored link deltas and constraint translations derived from
// floating point geometry frequently carry sub-epsilon noise; without this
// snap, the propagation relink would translate parts by imperceptible,
// non-zero amounts on every step, defeating translation idempotence for
// tasks whose true delta is zero.
//
// Complexity: O(1).
func SnapNegligible(v Vec3) Vec3 {
	if scalarEqualWithinAbs(NormVec(v), 0, negligibleDelta) {
		return ZeroVec3
	}
	return v
}
