package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Settings selects what is profiled and where the results are written.
type Settings struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option applies a configuration option to Settings.
type Option func(Settings) Settings

// Make returns Settings with opts applied in order.
func Make(opts ...Option) Settings {
	var s Settings

	for _, opt := range opts {
		if opt != nil {
			s = opt(s)
		}
	}

	return s
}

// WithMode selects the profiling mode. See [Modes].
func WithMode(mode string) Option {
	return func(s Settings) Settings {
		s.Mode = mode

		return s
	}
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(s Settings) Settings {
		s.Path = path

		return s
	}
}

// WithQuiet suppresses the profiler's informational output.
func WithQuiet(quiet bool) Option {
	return func(s Settings) Settings {
		s.Quiet = quiet

		return s
	}
}

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Start starts profiling and returns the [Stopper] that ends it. An empty or
// unsupported mode, or a build without the pprof tag, yields a no-op.
// Both Start and Stop are always safely callable.
func (s Settings) Start() Stopper {
	if s.Mode == "" {
		return ignore{}
	}

	return start(s)
}

type ignore struct{}

func (ignore) Stop() {}
