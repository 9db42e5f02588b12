// File: scheduler.go
// Role: Schedule — the public entry point that lays out every task's Start
// on the shared integer timeline.
//
// Bucket order is fixed: SHRINK, then MORPH, then GROW. MORPH lays out
// sequentially; SHRINK and GROW split into connected components and
// degree-peel into layers (layers.go), with SHRINK's layer order then
// reversed. Each bucket's group-alignment pass runs against the relevant
// side's semantic groups (layers.go/groups.go), and a final fixed-stride
// pass (compress.go) removes idle gaps across the whole timeline.

package schedule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/topoblend/graph"
	"github.com/katalvlaran/topoblend/task"
)

// ErrMissingTargetNode is returned when a MORPH or GROW task reaches
// Schedule with a nil TargetNode — a precondition task.BuildTasks already
// enforces, checked again here since Schedule is a public entry point in
// its own right.
var ErrMissingTargetNode = errors.New("schedule: task has no target node")

// Result is Schedule's output.
type Result struct {
	// TotalExecutionTime is the maximum EndTime across every scheduled task,
	// after gap compression.
	TotalExecutionTime int
}

// Schedule lays out tasks in place (mutating each Task.Start) and returns
// the resulting total execution time. active must be the graph
// task.BuildTasks returned alongside tasks; target is the blend's target
// graph, consulted for MORPH/GROW group membership.
//
// Complexity: O(V log V + E) for the layering/priority passes, plus
// O((T/stride)·N) for gap compression, where T is total execution time and
// N is the task count.
func Schedule(tasks []*task.Task, active, target *graph.Graph, opts ...Option) (*Result, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for _, t := range tasks {
		if (t.Type == task.Morph || t.Type == task.Grow) && t.TargetNode() == nil {
			return nil, fmt.Errorf("%w: %s task for node %q", ErrMissingTargetNode, t.Type, t.Node().ID())
		}
	}

	buckets := map[task.Type][]*task.Task{}
	for _, t := range tasks {
		buckets[t.Type] = append(buckets[t.Type], t)
	}

	curStart := 0
	var morphEndTime int

	for _, bucketType := range []task.Type{task.Shrink, task.Morph, task.Grow} {
		bucketTasks := buckets[bucketType]
		if len(bucketTasks) == 0 {
			continue
		}

		sorted := sortByPriority(bucketTasks, active)

		var futureStart int
		if bucketType == task.Morph {
			futureStart = curStart
			for _, t := range sorted {
				t.Start = curStart
				if e := t.EndTime(); e > futureStart {
					futureStart = e
				}
				curStart = futureStart
			}
		} else {
			sorted, futureStart = layoutLayers(sorted, active, curStart)
			if bucketType == task.Shrink {
				reverseLayerStarts(sorted)
			}
			for _, t := range sorted {
				if e := t.EndTime(); e > futureStart {
					futureStart = e
				}
			}
		}

		groupGraph := active
		nodeID := func(t *task.Task) string { return t.Node().ID() }
		if bucketType != task.Shrink {
			groupGraph = target
			nodeID = func(t *task.Task) string {
				if tn := t.TargetNode(); tn != nil {
					return tn.ID()
				}
				return ""
			}
		}

		futureStart = alignGroups(sorted, groupGraph.Groups(), nodeID, futureStart)
		curStart = futureStart

		if bucketType == task.Morph {
			morphEndTime = futureStart
		}
	}

	floor := boundedStart{}
	if cfg.strictBucketSeparation {
		floor = boundedStart{ok: true, value: morphEndTime}
	}
	compress(tasks, cfg.stride, floor)

	total := 0
	for _, t := range tasks {
		if e := t.EndTime(); e > total {
			total = e
		}
	}

	return &Result{TotalExecutionTime: total}, nil
}
