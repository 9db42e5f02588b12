// File: correspondence.go
// Role: a fixture Correspondence (task.Correspondence) for tests: an
// explicit source->target ID map plus crossing flags and per-side cut-node
// overrides.

package blendtest

import "github.com/katalvlaran/topoblend/task"

// Correspondence is a fixture implementation of task.Correspondence built
// from explicit maps, rather than a real shape-correspondence solve.
type Correspondence struct {
	SourceToTarget map[string]string
	Crossing       map[string]bool
	SourceCutNodes map[string]bool
	TargetCutNodes map[string]bool
}

// NewCorrespondence returns an empty fixture Correspondence ready for its
// maps to be populated by the caller.
func NewCorrespondence() *Correspondence {
	return &Correspondence{
		SourceToTarget: make(map[string]string),
		Crossing:       make(map[string]bool),
		SourceCutNodes: make(map[string]bool),
		TargetCutNodes: make(map[string]bool),
	}
}

func (c *Correspondence) Map(sourceID string) (string, bool) {
	id, ok := c.SourceToTarget[sourceID]
	return id, ok
}

func (c *Correspondence) IsCrossing(id string) bool { return c.Crossing[id] }

func (c *Correspondence) IsCutNode(side task.GraphSide, id string) bool {
	if side == task.SourceGraph {
		return c.SourceCutNodes[id]
	}
	return c.TargetCutNodes[id]
}
