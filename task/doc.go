// Package task defines the per-part blend task: a state machine describing
// what transformation a corresponded node undergoes (SHRINK, GROW, or
// MORPH), together with its local timeline and the cached link-delta
// snapshot the Relinker consumes.
//
// Tasks are created once per corresponded node pair via BuildTasks, before
// scheduling begins; the scheduler writes Start, the executor mutates
// IsDone and the task's bookkeeping flags, and tasks are destroyed with the
// engine that owns them.
package task
