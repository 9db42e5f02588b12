// File: methods_parts.go
// Role: Part lifecycle & queries.
// Determinism:
//   - Parts() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Part catalog protected by muParts.
//   - Adjacency bootstrap under muLinksAdj (to keep adjacency invariants
//     consistent with methods_links.go).

package graph

import (
	"sort"

	"github.com/katalvlaran/topoblend/geom"
)

// AddPart inserts a part backed by geometry if missing (idempotent on ID).
//
// Behavior highlights:
//   - Idempotent: adding a part whose ID is already present is a no-op,
//     even if a different GeometryPart value is supplied.
//   - Initializes the part's adjacency bucket so link methods can rely on
//     its presence.
//
// Complexity: O(1) amortized.
func (g *Graph) AddPart(geometry geom.GeometryPart) error {
	if geometry == nil {
		return ErrNilGeometryPart
	}
	id := geometry.ID()
	if id == "" {
		return ErrEmptyPartID
	}

	g.muParts.Lock()
	if _, ok := g.parts[id]; ok {
		g.muParts.Unlock()
		return nil // idempotent
	}
	g.parts[id] = &Part{Geometry: geometry}
	g.muParts.Unlock()

	g.muLinksAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
	g.muLinksAdj.Unlock()

	return nil
}

// HasPart reports whether id names a part in this graph.
//
// Complexity: O(1).
func (g *Graph) HasPart(id string) bool {
	g.muParts.RLock()
	defer g.muParts.RUnlock()
	_, ok := g.parts[id]
	return ok
}

// GetPart returns the part named id, or ErrPartNotFound.
//
// Complexity: O(1).
func (g *Graph) GetPart(id string) (*Part, error) {
	g.muParts.RLock()
	defer g.muParts.RUnlock()
	p, ok := g.parts[id]
	if !ok {
		return nil, ErrPartNotFound
	}
	return p, nil
}

// RemovePart removes a part and every link incident to it.
//
// Complexity: O(d) where d is the part's valence.
func (g *Graph) RemovePart(id string) error {
	if id == "" {
		return ErrEmptyPartID
	}
	if !g.HasPart(id) {
		return ErrPartNotFound
	}

	// Drop incident links first so the adjacency catalog never references a
	// missing part.
	incident, _ := g.Edges(id)
	for _, linkID := range incident {
		_ = g.removeLinkByID(linkID)
	}

	g.muParts.Lock()
	delete(g.parts, id)
	g.muParts.Unlock()

	g.muLinksAdj.Lock()
	delete(g.adjacency, id)
	g.muLinksAdj.Unlock()

	return nil
}

// Parts returns every part ID in this graph, sorted lexicographically for
// reproducible iteration order.
//
// Complexity: O(V log V).
func (g *Graph) Parts() []string {
	g.muParts.RLock()
	defer g.muParts.RUnlock()

	out := make([]string, 0, len(g.parts))
	for id := range g.parts {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// PartCount returns the number of parts in the graph.
//
// Complexity: O(1).
func (g *Graph) PartCount() int {
	g.muParts.RLock()
	defer g.muParts.RUnlock()
	return len(g.parts)
}
