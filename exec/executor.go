// File: executor.go
// Role: Executor — the per-timestep execution loop: a one-time cut-node
// pre-pass, then a fixed-step loop that advances every task, relinks its
// immediate neighbors, propagates constraints across the whole active
// graph, and refreshes render geometry — in that order, so the global
// propagation pass always sees the step's execute+relink results before
// geometryMorph runs. See DESIGN.md for why the propagation pass is wired
// in here.

package exec

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/topoblend/graph"
	"github.com/katalvlaran/topoblend/relink"
	"github.com/katalvlaran/topoblend/task"
)

// Executor drives one rendering timeline for a built, scheduled task set.
type Executor struct {
	active    *graph.Graph
	tasks     []*task.Task // sorted by Start ascending, a stable/deterministic run order
	byNodeID  map[string]*task.Task
	totalTime int
	cfg       *config
}

// NewExecutor runs the one-time cut-node pre-pass and returns an Executor
// ready to Run.
//
// source and target are the blend's endpoints, consulted only for the
// pre-pass cut-node checks (SHRINK against source, GROW against target);
// active is the graph task.BuildTasks constructed — the one the executor
// mutates and snapshots every step. totalTime is the Scheduler's reported
// Result.TotalExecutionTime.
func NewExecutor(sourceGraph, targetGraph, active *graph.Graph, tasks []*task.Task, totalTime int, opts ...Option) (*Executor, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	sorted := append([]*task.Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	byNodeID := make(map[string]*task.Task, len(sorted))
	for _, t := range sorted {
		byNodeID[t.Node().ID()] = t
	}

	for _, t := range sorted {
		switch t.Type {
		case task.Grow:
			tn := t.TargetNode()
			if tn == nil {
				return nil, fmt.Errorf("exec: %w: GROW task for node %q", task.ErrNoTargetNode, t.Node().ID())
			}
			if targetGraph.IsCutNode(tn.ID()) {
				if err := t.Prepare(); err != nil {
					return nil, err
				}
				t.CutNodeGrow = true
			}
		case task.Shrink:
			if sourceGraph.IsCutNode(t.Node().ID()) {
				t.CutNodeShrink = true
			}
		}
	}

	return &Executor{
		active:    active,
		tasks:     sorted,
		byNodeID:  byNodeID,
		totalTime: totalTime,
		cfg:       cfg,
	}, nil
}

// Run drives globalTime from 0 to 1+Δ in fixed steps, calling task.Prepare
// on every task first. ctx cancellation is honored only between
// timesteps: an in-flight step always completes and publishes its
// snapshot before Run returns.
//
// Complexity: O((1/Δ) · (V + E)).
func (e *Executor) Run(ctx context.Context) ([]Snapshot, error) {
	for _, t := range e.tasks {
		if err := t.Prepare(); err != nil {
			return nil, err
		}
	}

	const epsilon = 1e-9
	step := e.cfg.step
	last := 1 + step

	var snapshots []Snapshot
	for globalT := 0.0; globalT <= last+epsilon; globalT += step {
		select {
		case <-ctx.Done():
			return snapshots, ctx.Err()
		default:
		}

		e.stepOnce(globalT)
		snapshots = append(snapshots, Snapshot{GlobalT: globalT, Active: e.active.Clone()})

		e.cfg.onProgress(progressPercent(globalT))
	}
	return snapshots, nil
}

// stepOnce runs one timestep: clear per-step state, record the running
// (relink seed) set, execute every active task plus its local relink, run
// the global constraint-propagation relink, then the geometryMorph second
// pass.
func (e *Executor) stepOnce(globalT float64) {
	scaledT := globalT * float64(e.totalTime)

	for _, id := range e.active.Parts() {
		if p, err := e.active.GetPart(id); err == nil {
			p.IsActive = false
		}
	}

	runningNodeIDs := make([]string, 0, len(e.tasks))
	for _, t := range e.tasks {
		if task.IsActive(t.LocalT(scaledT)) {
			runningNodeIDs = append(runningNodeIDs, t.Node().ID())
		}
	}
	sort.Strings(runningNodeIDs)

	for _, t := range e.tasks {
		lt := t.LocalT(scaledT)
		if lt < 0 || t.IsDone {
			continue
		}

		_ = relink.PrepareDeltas(t, e.active, e.byNodeID)
		t.Execute(lt)
		_ = relink.Local(t, e.active, e.byNodeID, lt)

		if task.IsActive(lt) {
			t.Node().IsActive = true
		}
	}

	relink.Propagate(runningNodeIDs, e.active, e.byNodeID)

	for _, t := range e.tasks {
		lt := t.LocalT(scaledT)
		if lt >= 0 {
			t.GeometryMorph(clamp01(lt))
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// progressPercent converts globalT into a whole-number percent, clamped
// into [0,100] for globalT's [0,1+Δ] overrun.
func progressPercent(globalT float64) int {
	pct := int(globalT * 100)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
