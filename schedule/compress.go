// File: compress.go
// Role: fixed-stride gap compression, run once over every task after
// bucket layout, removing idle spaces between tasks.
//
// At each stride checkpoint, tasks are split into those already started
// (before) and those not yet started (after); if the gap between the
// latest end among before and the earliest start among after is positive,
// every after-task slides earlier by that gap. The checkpoint advances by
// stride until no task remains unstarted at the checkpoint.

package schedule

import "github.com/katalvlaran/topoblend/task"

// compress closes idle gaps in tasks' Start times in place, at the given
// stride. floor, when floor.ok is true, keeps a sliding GROW task's Start
// from dropping below floor.value (other task types slide unfloored) — the
// WithStrictBucketSeparation deviation (DESIGN.md Open Questions).
func compress(tasks []*task.Task, stride int, floor boundedStart) {
	curTime := 0
	for {
		var before, after []*task.Task
		for _, t := range tasks {
			if t.Start < curTime {
				before = append(before, t)
			} else {
				after = append(after, t)
			}
		}
		if len(after) == 0 {
			break
		}

		if len(before) > 0 {
			end := maxEndTime(before)
			start := minStartTime(after)
			delta := end - start
			if delta < 0 {
				slide(after, delta, floor)
			}
		}

		curTime += stride
	}
}

// boundedStart optionally floors a slide operation at a fixed start time.
type boundedStart struct {
	ok    bool
	value int
}

func slide(tasks []*task.Task, delta int, floor boundedStart) {
	for _, t := range tasks {
		newStart := t.Start + delta
		if floor.ok && t.Type == task.Grow && newStart < floor.value {
			newStart = floor.value
		}
		t.Start = newStart
	}
}

func maxEndTime(tasks []*task.Task) int {
	end := tasks[0].EndTime()
	for _, t := range tasks[1:] {
		if e := t.EndTime(); e > end {
			end = e
		}
	}
	return end
}

func minStartTime(tasks []*task.Task) int {
	start := tasks[0].Start
	for _, t := range tasks[1:] {
		if t.Start < start {
			start = t.Start
		}
	}
	return start
}
