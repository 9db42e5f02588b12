// Package topoblend builds and drives continuous deformations between two
// part/link shape graphs (a "blend"): every source part either shrinks
// away or morphs into its corresponded target part, every unmatched target
// part grows in, and the links between them stay attached throughout.
//
// The engine is organized as one package per concern:
//
//	geom/      GeometryPart contract + Vec3 math
//	graph/     Part/Link/Graph data layer
//	task/      Task state machine + BuildTasks
//	schedule/  lays every task's Start on the shared timeline
//	exec/      drives globalTime forward, one fixed step at a time
//	relink/    keeps links attached as their endpoints deform
//	blendtest/ fixture GeometryPart/Correspondence implementations for tests
//
// A typical run:
//
//	result, err := task.BuildTasks(source, target, correspondence)
//	sched, err := schedule.Schedule(result.Tasks, result.Active, target)
//	ex, err := exec.NewExecutor(source, target, result.Active, result.Tasks, sched.TotalExecutionTime)
//	snapshots, err := ex.Run(ctx)
//	frame := exec.Seek(snapshots, 0.5)
package topoblend
