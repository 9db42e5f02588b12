// File: groups.go
// Role: group alignment pass: tasks whose node belongs to the same
// semantic group are all snapped to the earliest start time already
// assigned to any member of that group. Only the group's own member tasks
// are touched — every other task already placed in this bucket keeps its
// Start untouched.

package schedule

import "github.com/katalvlaran/topoblend/task"

// alignGroups realigns each group's member tasks to their shared minimum
// start time, in group order. nodeID extracts the node ID a group
// membership test should use for t (t.Node().ID() for the SHRINK bucket,
// t.TargetNode().ID() for MORPH/GROW). Returns the updated futureStart
// (the max end time seen across every group member).
func alignGroups(tasks []*task.Task, groups [][]string, nodeID func(*task.Task) string, futureStart int) int {
	for _, group := range groups {
		membership := make(map[string]bool, len(group))
		for _, id := range group {
			membership[id] = true
		}

		var members []*task.Task
		for _, t := range tasks {
			id := nodeID(t)
			if id != "" && membership[id] {
				members = append(members, t)
			}
		}
		if len(members) == 0 {
			continue
		}

		curStart := futureStart
		for _, t := range members {
			if t.Start < curStart {
				curStart = t.Start
			}
		}
		for _, t := range members {
			t.Start = curStart
			if e := t.EndTime(); e > futureStart {
				futureStart = e
			}
		}
	}
	return futureStart
}
