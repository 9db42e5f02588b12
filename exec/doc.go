// Package exec drives the per-timestep execution loop: the Executor walks
// globalTime from 0 to 1 in fixed steps, advances every task's
// deformation, runs both relink passes, and publishes a deep-copied
// snapshot per step.
package exec
