// Package relink implements the two link-consistency passes the executor
// runs against the active graph every timestep:
//
//   - Local (local.go) — a per-task, one-time-cached forward propagation
//     invoked inline from the executor's per-task loop for MORPH tasks and
//     cut-node GROW/SHRINK tasks.
//   - Propagate (propagate.go) — the whole-graph, once-per-timestep
//     breadth-first constraint propagation.
//
// The two passes are architecturally distinct: Local only ever touches a
// task's immediate neighbors and runs once per active task per step;
// Propagate walks the entire reachable set of relinkable tasks from the
// current step's seed set and resolves each exactly once via fixTask's
// case table.
package relink
