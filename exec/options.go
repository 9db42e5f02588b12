// File: options.go
// Role: functional options for Executor construction.

package exec

// defaultStep is the Executor's fixed timestep (Δ = 0.01).
const defaultStep = 0.01

// Option configures Executor behavior.
type Option func(*config)

type config struct {
	step       float64
	onProgress func(percent int)
}

func newConfig() *config {
	return &config{
		step:       defaultStep,
		onProgress: func(int) {},
	}
}

// WithStep overrides the fixed timestep Δ. Values <= 0 are ignored.
func WithStep(step float64) Option {
	return func(c *config) {
		if step > 0 {
			c.step = step
		}
	}
}

// WithProgress registers a hook called once per step with the run's
// percent complete (0–100).
func WithProgress(fn func(percent int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onProgress = fn
		}
	}
}
