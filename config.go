package rdft1d

// ThresholdConfig holds the runtime-tunable worker-count thresholds used by
// the Bluestein driver's parallel chunker. These are not compile-time
// constants: a host that knows its own core count and cache sizes can
// override them per Plan.
type ThresholdConfig struct {
	// Threshold2 is the minimum n at which the Bluestein driver uses 2
	// workers for its element-wise passes.
	Threshold2 int
	// Threshold4 is the minimum n at which it uses 4 workers, provided at
	// least 4 are available.
	Threshold4 int
}

// DefaultThresholds returns the engine's reasonable defaults (8192 and
// 65536), matching the values suggested by spec.md.
func DefaultThresholds() ThresholdConfig {
	return ThresholdConfig{
		Threshold2: 8192,
		Threshold4: 65536,
	}
}

// Option configures a Plan at construction time.
type Option func(*options)

type options struct {
	thresholds  ThresholdConfig
	maxWorkers  int
}

func defaultOptions() options {
	return options{
		thresholds: DefaultThresholds(),
		maxWorkers: 4,
	}
}

// WithThresholds overrides the parallel chunker's worker-count thresholds.
func WithThresholds(cfg ThresholdConfig) Option {
	return func(o *options) {
		o.thresholds = cfg
	}
}

// WithMaxWorkers caps the number of workers the Bluestein driver's chunker
// may use (the configured maximum T referenced by spec.md's chunker
// worker-count selection). Values below 2 disable parallelism entirely.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}
