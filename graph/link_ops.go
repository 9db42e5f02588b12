// File: link_ops.go
// Role: Link convenience accessors: endpoint queries, local coordinate
// lookup, and the delta-symmetry operation getToDelta.
// Determinism:
//   - GetToDelta is a pure function of BlendedDelta and the endpoint asked
//     for; GetToDelta(l, n1) == -GetToDelta(l, n2) always.

package graph

import "github.com/katalvlaran/topoblend/geom"

// HasNode reports whether id is one of this link's two endpoints.
func (l *Link) HasNode(id string) bool { return l.N1 == id || l.N2 == id }

// OtherNode returns the endpoint opposite id. Callers must only call this
// with an id that HasNode(id) reports true for; otherwise the empty string
// is returned.
func (l *Link) OtherNode(id string) string {
	switch id {
	case l.N1:
		return l.N2
	case l.N2:
		return l.N1
	default:
		return ""
	}
}

// GetCoord returns the local parametric coordinate on endpoint id.
func (l *Link) GetCoord(id string) geom.Coord {
	if id == l.N1 {
		return l.Coord1
	}
	return l.Coord2
}

// GetCoordOther returns the local parametric coordinate on the endpoint
// opposite id.
func (l *Link) GetCoordOther(id string) geom.Coord {
	if id == l.N1 {
		return l.Coord2
	}
	return l.Coord1
}

// GetToDelta returns the desired offset pointing from the opposite endpoint
// toward towardID: BlendedDelta is defined as position(N2) - position(N1),
// so the delta is returned as-is when towardID is N2 and negated when
// towardID is N1.
func (l *Link) GetToDelta(towardID string) geom.Vec3 {
	if towardID == l.N1 {
		return geom.ScaleVec(-1, l.BlendedDelta)
	}
	return l.BlendedDelta
}

// Position resolves the world-space position of this link's attachment on
// endpoint id, by evaluating id's part at its local coordinate.
func (g *Graph) Position(l *Link, id string) (geom.Vec3, error) {
	part, err := g.GetPart(id)
	if err != nil {
		return geom.ZeroVec3, err
	}
	return part.Geometry.Position(l.GetCoord(id)), nil
}

// PositionOther resolves the world-space position of this link's
// attachment on the endpoint opposite id.
func (g *Graph) PositionOther(l *Link, id string) (geom.Vec3, error) {
	return g.Position(l, l.OtherNode(id))
}
