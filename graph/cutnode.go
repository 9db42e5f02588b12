// File: cutnode.go
// Role: Cut-node (articulation point) detection: removing the node would
// disconnect the graph.
// Determinism:
//   - CutParts visits parts in Parts()'s sorted order, so the DFS tree
//     (and therefore low-link values) is reproducible across runs on an
//     unchanged graph.
//
// No third-party graph library in reach here implements articulation-point
// detection, so this is a direct DFS low-link scan (Tarjan's algorithm).

package graph

// cutWalker holds the DFS state for Tarjan's articulation-point algorithm.
type cutWalker struct {
	g         *Graph
	visited   map[string]bool
	disc      map[string]int
	low       map[string]int
	parent    map[string]string
	isCut     map[string]bool
	timer     int
}

// IsCutNode reports whether removing id would disconnect the active graph.
// It recomputes articulation points for the whole graph on each call;
// callers that need this for many parts should prefer CutParts.
//
// Complexity: O(V + E).
func (g *Graph) IsCutNode(id string) bool {
	cuts := g.CutParts()
	_, ok := cuts[id]
	return ok
}

// CutParts returns the set of every articulation point in the active graph.
//
// Complexity: O(V + E).
func (g *Graph) CutParts() map[string]struct{} {
	w := &cutWalker{
		g:       g,
		visited: make(map[string]bool),
		disc:    make(map[string]int),
		low:     make(map[string]int),
		parent:  make(map[string]string),
		isCut:   make(map[string]bool),
	}

	ids := g.Parts() // deterministic order
	for _, id := range ids {
		if !w.visited[id] {
			children := 0
			w.dfs(id, &children, true)
		}
	}

	out := make(map[string]struct{}, len(w.isCut))
	for id, cut := range w.isCut {
		if cut {
			out[id] = struct{}{}
		}
	}
	return out
}

// dfs runs the standard articulation-point recursion rooted at u.
func (w *cutWalker) dfs(u string, rootChildren *int, isRoot bool) {
	w.visited[u] = true
	w.disc[u] = w.timer
	w.low[u] = w.timer
	w.timer++

	parentOfU, hasParent := w.parent[u]
	skippedParent := false

	neighbors, _ := w.g.NeighborIDs(u)
	for _, v := range neighbors {
		if hasParent && !skippedParent && v == parentOfU {
			// Skip the tree edge back to u's immediate parent. NeighborIDs
			// lists each neighbor once, so parallel links to the parent
			// collapse into this one edge; they do not change which parts
			// are articulation points.
			skippedParent = true
			continue
		}
		if !w.visited[v] {
			if isRoot {
				*rootChildren++
			}
			w.parent[v] = u
			w.dfs(v, rootChildren, false)

			if w.low[v] < w.low[u] {
				w.low[u] = w.low[v]
			}
			if !isRoot && w.low[v] >= w.disc[u] {
				w.isCut[u] = true
			}
		} else {
			if w.disc[v] < w.low[u] {
				w.low[u] = w.disc[v]
			}
		}
	}

	if isRoot && *rootChildren > 1 {
		w.isCut[u] = true
	}
}
