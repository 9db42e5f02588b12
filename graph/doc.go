// Package graph defines the central Part, Link, and Graph types used by the
// blend engine, and provides thread-safe primitives for building, querying,
// and cloning the active graph as it deforms.
//
// All graph APIs use separate sync.RWMutex locks internally (muParts for
// the part catalog, muLinksAdj for links and adjacency), so a reader such as
// a UI goroutine can safely inspect a published snapshot while the executor
// holds its own logical write lock on a different (mutable) instance.
//
// types.go declares Part, Link, Graph, GraphOption, sentinel errors, and
// the NewGraph constructor. Links carry part-local parametric coordinates
// (geom.Coord) rather than world positions, so moving an endpoint's
// skeleton moves the link's attachment with it automatically — see Link.
//
// Errors:
//
//	ErrEmptyPartID    - part ID is the empty string.
//	ErrPartNotFound   - requested part does not exist.
//	ErrLinkNotFound   - requested link does not exist.
//	ErrSelfLink       - a link's two endpoints are the same part.
//	ErrNilGeometryPart - AddPart was given a nil GeometryPart.
package graph
