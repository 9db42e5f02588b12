// File: types.go
// Role: Part, Link, Graph struct definitions, GraphOption, sentinel errors,
// and the NewGraph constructor.
// Determinism:
//   - Parts()/Links() (methods_*.go) return IDs sorted lexicographically.
// Concurrency:
//   - muParts guards the part catalog; muLinksAdj guards links + adjacency.
//   - Locks are always acquired in that order to avoid lock-ordering cycles.

package graph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/topoblend/geom"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyPartID indicates an operation was given an empty part ID.
	ErrEmptyPartID = errors.New("graph: part ID is empty")

	// ErrPartNotFound indicates an operation referenced a non-existent part.
	ErrPartNotFound = errors.New("graph: part not found")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("graph: link not found")

	// ErrSelfLink indicates an attempt to link a part to itself.
	ErrSelfLink = errors.New("graph: link endpoints must be distinct parts")

	// ErrNilGeometryPart indicates AddPart was given a nil GeometryPart.
	ErrNilGeometryPart = errors.New("graph: nil GeometryPart")
)

// Part is a node of the graph: a geom.GeometryPart plus the engine-owned
// bookkeeping flags the executor toggles during a timestep (every step
// starts by marking every part isActive=false).
type Part struct {
	// Geometry is the underlying parametric skeleton, owned by the
	// geometry-primitives collaborator.
	Geometry geom.GeometryPart

	// IsActive is true while some task owning this part has
	// 0 <= localT < 1 during the current timestep.
	IsActive bool
}

// ID returns the part's stable identifier, delegating to Geometry.
func (p *Part) ID() string { return p.Geometry.ID() }

// Link is an undirected edge between two distinct parts, expressed in
// part-local parametric coordinates so that moving an endpoint's skeleton
// moves the link's attachment automatically.
type Link struct {
	// N1, N2 are the IDs of the two distinct parts this link connects.
	N1, N2 string

	// Coord1 is the local coordinate on the N1 endpoint.
	Coord1 geom.Coord
	// Coord2 is the local coordinate on the N2 endpoint.
	Coord2 geom.Coord

	// BlendedDelta is the target world-space offset position(N2) -
	// position(N1) this link should exhibit at the end of the blend,
	// precomputed by the (out-of-scope) pre-blend correspondence stage.
	BlendedDelta geom.Vec3
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithGroups seeds the graph's semantic groups property: symmetric parts,
// etc. Source graph groups govern SHRINK; target graph groups govern GROW.
func WithGroups(groups [][]string) GraphOption {
	return func(g *Graph) { g.groups = groups }
}

// Graph is the in-memory active (or source/target) shape graph: a set of
// parts and the links between them.
//
// Graphs are deep-copyable (Clone); each executor timestep publishes an
// independent snapshot by cloning the active graph, so each deep-copied
// frame graph owns its own part and link storage.
type Graph struct {
	muParts sync.RWMutex
	parts   map[string]*Part

	muLinksAdj    sync.RWMutex
	links         map[string]*Link   // linkID -> Link
	adjacency     map[string]map[string]struct{} // partID -> set of incident linkIDs
	nextLinkID    uint64

	// groups is a whole-graph property: sets of node IDs that belong to a
	// semantic group. Read-only after construction from the
	// caller's perspective; Clone copies the slice header (group sets are
	// treated as immutable once attached).
	groups [][]string
}

// NewGraph constructs an empty Graph and applies the given options in order.
//
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		parts:     make(map[string]*Part),
		links:     make(map[string]*Link),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Groups returns the graph's semantic groups. The returned slice shares
// storage with the graph; callers must not mutate it.
func (g *Graph) Groups() [][]string {
	g.muParts.RLock()
	defer g.muParts.RUnlock()
	return g.groups
}
