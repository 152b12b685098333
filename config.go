package spread

import (
	"math"
	"math/rand/v2"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/spread/metrics"
)

// DefaultSpread is the number of areas used when WithSpread is not given.
const DefaultSpread = 100

// config holds the settings of one render pass.
type config struct {
	// Spread is the number of areas the surface is divided into.
	// Default: 100.
	Spread int

	// Scale multiplies the surface before partitioning; paint coordinates are divided by it again.
	// Default: 1.
	Scale float64

	// Partitioner turns the render width into area boundaries.
	// Default: EvenPartition.
	Partitioner Partitioner

	// Rand drives the visitation order. Nil uses the process-wide source.
	Rand *rand.Rand

	// StopOnError aborts the pass on the first compute failure.
	// Default: false (other workers keep going after a failure).
	StopOnError bool

	// ErrorTagging wraps compute errors with area and worker metadata.
	// Default: true.
	ErrorTagging bool

	// RegionsBuffer is the capacity of the RenderStream channel. Zero means Spread,
	// which never blocks a commit.
	// Default: 0.
	RegionsBuffer uint

	Logger  Logger
	Metrics metrics.Provider
}

func defaultConfig() config {
	return config{
		Spread:       DefaultSpread,
		Scale:        1,
		Partitioner:  EvenPartition,
		ErrorTagging: true,
		Logger:       nopLogger{},
		Metrics:      metrics.NewNoopProvider(),
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// validateConfig rejects settings that would corrupt the cursor or the boundaries.
func validateConfig(cfg *config) error {
	if cfg.Spread <= 0 {
		return errorc.With(ErrInvalidConfig, errorc.String("", "spread must be > 0"))
	}
	if cfg.Scale <= 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) {
		return errorc.With(ErrInvalidConfig, errorc.String("", "scale must be a finite number > 0"))
	}
	return nil
}

// Option configures a render pass.
type Option func(*config) error

// WithSpread sets the number of areas the surface is divided into (must be > 0).
func WithSpread(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithSpread requires n > 0"))
		}
		cfg.Spread = n
		return nil
	}
}

// WithScale sets the resolution multiplier (must be > 0).
func WithScale(s float64) Option {
	return func(cfg *config) error {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithScale requires a finite s > 0"))
		}
		cfg.Scale = s
		return nil
	}
}

// WithPartitioner replaces EvenPartition.
func WithPartitioner(p Partitioner) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithPartitioner requires a non-nil partitioner"))
		}
		cfg.Partitioner = p
		return nil
	}
}

// WithRand sets the random source used to order the areas, e.g. a seeded one for reproducible passes.
// The source is used only while the pass is being set up.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) error { cfg.Rand = r; return nil }
}

// WithStopOnError aborts the pass as soon as any compute call fails.
func WithStopOnError() Option {
	return func(cfg *config) error { cfg.StopOnError = true; return nil }
}

// WithErrorTagging toggles wrapping compute errors with area metadata (enabled by default).
func WithErrorTagging(enabled bool) Option {
	return func(cfg *config) error { cfg.ErrorTagging = enabled; return nil }
}

// WithRegionsBuffer sets the capacity of the channel returned by RenderStream.
func WithRegionsBuffer(size uint) Option {
	return func(cfg *config) error { cfg.RegionsBuffer = size; return nil }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			l = nopLogger{}
		}
		cfg.Logger = l
		return nil
	}
}

// WithMetrics sets the metrics provider. A nil provider disables metrics.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			p = metrics.NewNoopProvider()
		}
		cfg.Metrics = p
		return nil
	}
}
