package ldraw

// Default configuration values.
const (
	DefaultLogLevel    = 0
	DefaultConcurrency = 1
)

// Config holds the options for one parse session. It is a plain value:
// copies never share state, and NewConfig starts from fresh defaults on
// every call.
type Config struct {
	// Skip lists the line types that contribute no records to documents.
	// Comments are still scanned for the part type when COMMENT is skipped.
	Skip LineTypeSet

	// LogLevel is the verbosity threshold, 0 (errors only) through 5 (trace).
	LogLevel int

	// Concurrency is the number of parts parsed at once. Values below 2
	// parse sequentially.
	Concurrency int
}

// ConfigOption configures a Config.
type ConfigOption func(*Config)

// WithSkip sets the line types to exclude from documents.
func WithSkip(skip LineTypeSet) ConfigOption {
	return func(c *Config) {
		c.Skip = skip
	}
}

// WithLogLevel sets the verbosity threshold.
func WithLogLevel(level int) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithConcurrency sets the number of parts parsed at once.
func WithConcurrency(n int) ConfigOption {
	return func(c *Config) {
		c.Concurrency = n
	}
}

// NewConfig returns a Config with defaults overridden by opts.
func NewConfig(opts ...ConfigOption) Config {
	c := Config{
		LogLevel:    DefaultLogLevel,
		Concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if c.LogLevel < 0 || c.LogLevel > 5 {
		return Errorf(EINVALID, "log level must be between 0 and 5, got %d", c.LogLevel)
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}
