// File: layers.go
// Role: connected-component split + degree peeling for the SHRINK and GROW
// buckets.
//
// The peeling order is this module's own degree-peel construction (an Open
// Question decision recorded in DESIGN.md), grounded on a BFS-flood-fill
// connected-components shape generalized from 2-D grid cells to
// graph.Graph node-ID adjacency, plus a standard k-core-style min-degree
// peel for the layer ordering within a component.

package schedule

import (
	"sort"

	"github.com/katalvlaran/topoblend/graph"
	"github.com/katalvlaran/topoblend/task"
)

// layoutLayers assigns Start times to tasks by connected component (in
// active, restricted to the tasks' own node IDs) and, within each
// component, by degree-peeled layer, cascading start times across
// components and layers via a shared, never-reset startTime accumulator.
// Returns the tasks in layer-emission order and the final start time.
func layoutLayers(tasks []*task.Task, active *graph.Graph, startTime int) ([]*task.Task, int) {
	byID := make(map[string]*task.Task, len(tasks))
	nodeIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		id := t.Node().ID()
		byID[id] = t
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)

	components := splitComponents(nodeIDs, active)

	out := make([]*task.Task, 0, len(tasks))
	for _, comp := range components {
		for _, layer := range peelLayers(comp, active) {
			end := startTime
			for _, id := range layer {
				t := byID[id]
				t.Start = startTime
				if e := t.EndTime(); e > end {
					end = e
				}
			}
			startTime = end
			for _, id := range layer {
				out = append(out, byID[id])
			}
		}
	}
	return out, startTime
}

// splitComponents partitions nodeIDs (already sorted) into connected
// components under active's adjacency, following only edges whose other
// endpoint is itself in nodeIDs — tasks outside this bucket never merge two
// components together.
func splitComponents(nodeIDs []string, active *graph.Graph) [][]string {
	member := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		member[id] = true
	}

	visited := make(map[string]bool, len(nodeIDs))
	var components [][]string

	for _, start := range nodeIDs {
		if visited[start] {
			continue
		}
		queue := []string{start}
		visited[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			id := queue[qi]
			comp = append(comp, id)

			neighbors, err := active.NeighborIDs(id)
			if err != nil {
				continue
			}
			for _, n := range neighbors {
				if !member[n] || visited[n] {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
		}

		sort.Strings(comp)
		components = append(components, comp)
	}
	return components
}

// peelLayers returns comp's nodes grouped into ordered layers by iterated
// minimum-degree peeling, restricted to edges within comp: each round
// strips every node currently at the component's minimum remaining degree,
// ties broken by ascending node ID.
func peelLayers(comp []string, active *graph.Graph) [][]string {
	member := make(map[string]bool, len(comp))
	for _, id := range comp {
		member[id] = true
	}

	degree := make(map[string]int, len(comp))
	neighborsOf := make(map[string][]string, len(comp))
	for _, id := range comp {
		all, err := active.NeighborIDs(id)
		if err != nil {
			continue
		}
		var within []string
		for _, n := range all {
			if member[n] {
				within = append(within, n)
			}
		}
		neighborsOf[id] = within
		degree[id] = len(within)
	}

	remaining := make(map[string]bool, len(comp))
	for _, id := range comp {
		remaining[id] = true
	}

	var layers [][]string
	for len(remaining) > 0 {
		minDeg := -1
		for id := range remaining {
			if minDeg == -1 || degree[id] < minDeg {
				minDeg = degree[id]
			}
		}

		var layer []string
		for _, id := range comp {
			if remaining[id] && degree[id] == minDeg {
				layer = append(layer, id)
			}
		}

		for _, id := range layer {
			delete(remaining, id)
			for _, n := range neighborsOf[id] {
				if remaining[n] {
					degree[n]--
				}
			}
		}

		layers = append(layers, layer)
	}
	return layers
}

// reverseLayerStarts swaps Start values symmetrically about the list's
// midpoint (the SHRINK bucket's post-layering reversal): the first task in
// layer-emission order takes the last task's start, the second the
// second-to-last's, and so on. The swap is by task position, not by layer,
// so when layers differ in size the members of one layer can end up with
// different starts.
func reverseLayerStarts(tasks []*task.Task) {
	n := len(tasks)
	for k := 0; k < n/2; k++ {
		j := n - 1 - k
		tasks[k].Start, tasks[j].Start = tasks[j].Start, tasks[k].Start
	}
}
