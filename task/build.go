// File: build.go
// Role: BuildTasks — the public orchestrator that turns a source graph, a
// target graph, and a Correspondence into the active graph plus one Task
// per corresponded node pair.
//
// A single public entry point resolves the active graph, then runs one
// constructor per source-graph part and one per unmatched target-graph
// part, in deterministic ID order; the first precondition failure aborts
// the whole build and is wrapped with %w so it can be reported to the
// caller before the first timestep.

package task

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/topoblend/graph"
)

// ErrOrphanLink is returned when a target-graph link has an endpoint
// absent from the constructed active graph — a fatal precondition
// violation.
var ErrOrphanLink = errors.New("task: link references a part absent from its graph")

// ErrUnmatchedTargetIsActive is returned when BuildTasks is asked to grow a
// target part whose ID collides with an existing active-graph part that is
// not itself the Grow task's node (a correspondence/ID-space bug upstream).
var ErrUnmatchedTargetIsActive = errors.New("task: grow target ID collides with an existing active-graph part")

// Result is BuildTasks' output: the constructed active graph (source graph
// cloned, then augmented with every unmatched target part so Grow chains
// have somewhere to live) and one Task per corresponded node.
type Result struct {
	Active *graph.Graph
	Tasks  []*Task
}

// BuildTasks builds the active graph and its tasks from source, target, and
// corr. Every task is returned in source-then-target, ID-sorted order for
// reproducible downstream scheduling.
//
// Complexity: O((Vs + Vt)·log(Vs+Vt) + E) where Vs/Vt are source/target
// part counts and E is target link count (the only graph whose links are
// rescanned to attach Grow connectivity).
func BuildTasks(source, target *graph.Graph, corr Correspondence) (*Result, error) {
	active := source.Clone()

	tasks := make([]*Task, 0, source.PartCount()+target.PartCount())
	mappedTargetIDs := make(map[string]struct{})

	for _, sid := range source.Parts() {
		sourcePart, err := active.GetPart(sid)
		if err != nil {
			return nil, fmt.Errorf("task: BuildTasks: active graph missing cloned source part %q: %w", sid, err)
		}

		tid, ok := corr.Map(sid)
		if !ok {
			t := New(Shrink, sourcePart, nil)
			t.IsCutNode = corr.IsCutNode(SourceGraph, sid)
			tasks = append(tasks, t)
			continue
		}

		targetPart, err := target.GetPart(tid)
		if err != nil {
			return nil, fmt.Errorf("%w: Morph source %q maps to missing target %q", ErrNoTargetNode, sid, tid)
		}
		mappedTargetIDs[tid] = struct{}{}

		t := New(Morph, sourcePart, targetPart)
		t.IsCrossing = corr.IsCrossing(sid)
		tasks = append(tasks, t)
	}

	for _, tid := range target.Parts() {
		if _, mapped := mappedTargetIDs[tid]; mapped {
			continue
		}

		targetPart, err := target.GetPart(tid)
		if err != nil {
			return nil, fmt.Errorf("task: BuildTasks: %w", err)
		}

		if active.HasPart(tid) {
			return nil, fmt.Errorf("%w: %q", ErrUnmatchedTargetIsActive, tid)
		}
		if err := active.AddPart(targetPart.Geometry.Clone()); err != nil {
			return nil, fmt.Errorf("task: BuildTasks: adding grow part %q: %w", tid, err)
		}

		growNode, err := active.GetPart(tid)
		if err != nil {
			return nil, fmt.Errorf("task: BuildTasks: %w", err)
		}

		t := New(Grow, growNode, targetPart)
		t.IsCutNode = corr.IsCutNode(TargetGraph, tid)
		tasks = append(tasks, t)
	}

	if err := attachGrowLinks(active, target, mappedTargetIDs); err != nil {
		return nil, err
	}

	return &Result{Active: active, Tasks: tasks}, nil
}

// attachGrowLinks imports every target-graph link whose endpoints are both
// present in the active graph but not already linked there — the
// connectivity a newly grown chain (e.g. a whole a-b-c run of Grow tasks)
// needs, since those links never existed in the source graph that seeded
// the active graph's clone.
func attachGrowLinks(active, target *graph.Graph, _ map[string]struct{}) error {
	for _, lid := range target.Links() {
		link, err := target.GetLink(lid)
		if err != nil {
			return fmt.Errorf("task: BuildTasks: %w", err)
		}
		if !active.HasPart(link.N1) || !active.HasPart(link.N2) {
			return fmt.Errorf("%w: link %q endpoints %q/%q", ErrOrphanLink, lid, link.N1, link.N2)
		}
		if hasLinkBetween(active, link.N1, link.N2) {
			continue
		}
		if _, err := active.AddLink(link.N1, link.N2, link.Coord1, link.Coord2, link.BlendedDelta); err != nil {
			return fmt.Errorf("task: BuildTasks: attaching grow link %q: %w", lid, err)
		}
	}
	return nil
}

// hasLinkBetween reports whether a and b are already directly linked in g.
func hasLinkBetween(g *graph.Graph, a, b string) bool {
	neighbors, err := g.NeighborIDs(a)
	if err != nil {
		return false
	}
	for _, n := range neighbors {
		if n == b {
			return true
		}
	}
	return false
}
