// File: methods_clone.go
// Role: Cloning graph instances. Every executor timestep publishes an
// independent deep copy: each snapshot owns its own part and link storage.
// Determinism:
//   - Clone carries over nextLinkID to keep textual link IDs monotonic on
//     the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package graph

import "sync/atomic"

// Clone returns a deep copy of the Graph: groups, parts (with their
// geometry cloned via GeometryPart.Clone), links, and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muParts.RLock()
	defer g.muParts.RUnlock()
	g.muLinksAdj.RLock()
	defer g.muLinksAdj.RUnlock()

	clone := &Graph{
		parts:     make(map[string]*Part, len(g.parts)),
		links:     make(map[string]*Link, len(g.links)),
		adjacency: make(map[string]map[string]struct{}, len(g.adjacency)),
	}
	if g.groups != nil {
		clone.groups = append([][]string(nil), g.groups...)
	}
	atomic.StoreUint64(&clone.nextLinkID, atomic.LoadUint64(&g.nextLinkID))

	for id, p := range g.parts {
		clone.parts[id] = &Part{Geometry: p.Geometry.Clone(), IsActive: p.IsActive}
	}
	for id, bucket := range g.adjacency {
		nb := make(map[string]struct{}, len(bucket))
		for lid := range bucket {
			nb[lid] = struct{}{}
		}
		clone.adjacency[id] = nb
	}
	for id, l := range g.links {
		nl := *l // Link is a plain value type; shallow copy is a deep copy.
		clone.links[id] = &nl
	}

	return clone
}
