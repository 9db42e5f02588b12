// Package schedule lays out a set of task.Task on a shared integer timeline:
// bucketed by type (SHRINK, then MORPH, then GROW), ordered by priority and
// topology within a bucket, aligned across semantic node groups, and
// compressed to remove idle gaps.
//
// This is the blend engine's own timeline builder, not a general-purpose
// DAG scheduler.
package schedule
