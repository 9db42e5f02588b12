// File: options.go
// Role: functional options for Schedule: a validate-and-panic-on-nonsense
// shape, since options are rare enough that a config struct plus two
// constructors covers them.

package schedule

// Option customizes Schedule's behavior by mutating a config before layout
// begins.
type Option func(*config)

// config holds Schedule's tunables, defaulted by newConfig.
type config struct {
	// stride is the fixed step at which the gap-compression pass rechecks
	// for idle gaps between tasks.
	stride int

	// strictBucketSeparation, when true, refuses to let gap compression pull
	// a GROW task's start earlier than the MORPH bucket's last end time — a
	// deliberate deviation from a literal compression loop that would not
	// special-case bucket boundaries (see DESIGN.md Open Questions).
	strictBucketSeparation bool
}

// newConfig returns the default schedule configuration: stride 50.
func newConfig() *config {
	return &config{stride: 50}
}

// WithStride overrides the gap-compression step size. Panics if n <= 0,
// since a non-positive stride would never terminate the compression loop.
func WithStride(n int) Option {
	if n <= 0 {
		panic("schedule: WithStride(n<=0)")
	}
	return func(c *config) { c.stride = n }
}

// WithStrictBucketSeparation opts into the deviation documented in
// DESIGN.md: gap compression will not slide a GROW task earlier than the
// MORPH bucket's final end time, even when a literal compression loop
// would allow it.
func WithStrictBucketSeparation() Option {
	return func(c *config) { c.strictBucketSeparation = true }
}
