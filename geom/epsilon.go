// File: epsilon.go
// Role: numeric-tolerance helpers backing the geometric-degeneracy rules.

package geom

import "gonum.org/v1/gonum/floats/scalar"

// scalarEqualWithinAbs reports whether a and b differ by no more than tol,
// delegating to gonum's floats/scalar rather than a hand-rolled
// math.Abs(a-b) <= tol comparison.
func scalarEqualWithinAbs(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// CoincidentHandles reports whether two world-space targets are close
// enough that a two-handle deformation should fall back to a
// single-handle translation.
func CoincidentHandles(a, b Vec3) bool {
	return scalarEqualWithinAbs(NormVec(SubVec(a, b)), 0, negligibleDelta)
}
