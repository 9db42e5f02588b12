// File: priority.go
// Role: within-bucket priority ordering: partition by node geometry kind,
// sort each partition by ascending active-graph valence, concatenate
// curve-then-sheet, then reverse the whole list. Net effect: sheets before
// curves, each ordered by descending valence. sort.SliceStable plus an
// explicit tie-break keeps the ordering deterministic.

package schedule

import (
	"sort"

	"github.com/katalvlaran/topoblend/geom"
	"github.com/katalvlaran/topoblend/graph"
	"github.com/katalvlaran/topoblend/task"
)

// sortByPriority returns tasks reordered by geometry kind then valence,
// using active's valence for every task regardless of bucket (GROW nodes
// already live in active per task.BuildTasks).
func sortByPriority(tasks []*task.Task, active *graph.Graph) []*task.Task {
	var curves, sheets []*task.Task
	for _, t := range tasks {
		n := t.Node()
		if n == nil || n.Geometry == nil {
			continue
		}
		switch n.Geometry.Type() {
		case geom.Curve:
			curves = append(curves, t)
		case geom.Sheet:
			sheets = append(sheets, t)
		}
	}

	sortByValenceAsc(curves, active)
	sortByValenceAsc(sheets, active)

	combined := make([]*task.Task, 0, len(curves)+len(sheets))
	combined = append(combined, curves...)
	combined = append(combined, sheets...)
	reverseTasks(combined)
	return combined
}

// sortByValenceAsc stably sorts ts by ascending active.Valence(node ID), tie
// broken by node ID for determinism.
func sortByValenceAsc(ts []*task.Task, active *graph.Graph) {
	sort.SliceStable(ts, func(i, j int) bool {
		vi := active.Valence(ts[i].Node().ID())
		vj := active.Valence(ts[j].Node().ID())
		if vi != vj {
			return vi < vj
		}
		return ts[i].Node().ID() < ts[j].Node().ID()
	})
}

// reverseTasks reverses ts in place.
func reverseTasks(ts []*task.Task) {
	for i, j := 0, len(ts)-1; i < j; i, j = i+1, j-1 {
		ts[i], ts[j] = ts[j], ts[i]
	}
}
