// File: methods_adjacent.go
// Role: Neighborhood APIs (Edges, NeighborIDs, Valence) and adjacency
// helpers used by the Scheduler and Relinker.
// Determinism:
//   - Edges(id) returns link IDs sorted lexicographically ascending.
//   - NeighborIDs(id) returns unique neighbor part IDs, sorted ascending.

package graph

import "sort"

// Edges returns every link ID incident to id, sorted lexicographically so
// edge iteration order over the active graph is deterministic.
//
// Complexity: O(d log d) where d is id's valence.
func (g *Graph) Edges(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyPartID
	}
	if !g.HasPart(id) {
		return nil, ErrPartNotFound
	}

	g.muLinksAdj.RLock()
	defer g.muLinksAdj.RUnlock()

	bucket := g.adjacency[id]
	out := make([]string, 0, len(bucket))
	for linkID := range bucket {
		out = append(out, linkID)
	}
	sort.Strings(out)
	return out, nil
}

// NeighborIDs returns the unique set of part IDs adjacent to id via some
// link, sorted lexicographically.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	linkIDs, err := g.Edges(id)
	if err != nil {
		return nil, err
	}

	g.muLinksAdj.RLock()
	seen := make(map[string]struct{}, len(linkIDs))
	out := make([]string, 0, len(linkIDs))
	for _, lid := range linkIDs {
		link := g.links[lid]
		other := link.OtherNode(id)
		if other == "" {
			continue
		}
		if _, ok := seen[other]; !ok {
			seen[other] = struct{}{}
			out = append(out, other)
		}
	}
	g.muLinksAdj.RUnlock()

	sort.Strings(out)
	return out, nil
}

// Valence returns the number of links incident to id (its degree in the
// active graph), used by the Scheduler's priority sort.
//
// Complexity: O(1).
func (g *Graph) Valence(id string) int {
	g.muLinksAdj.RLock()
	defer g.muLinksAdj.RUnlock()
	return len(g.adjacency[id])
}
