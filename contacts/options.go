package contacts

import "log/slog"

type config struct {
	file      string
	exclusive bool
	autoLoad  bool
	logger    *slog.Logger
}

type Option func(*config)

func WithFile(path string) Option {
	return func(c *config) {
		c.file = path
	}
}

// WithExclusive makes Open fail when another exclusive store holds the file.
func WithExclusive(exclusive bool) Option {
	return func(c *config) {
		c.exclusive = exclusive
	}
}

// WithAutoLoad controls whether Open reads the file. It is on by default.
func WithAutoLoad(autoLoad bool) Option {
	return func(c *config) {
		c.autoLoad = autoLoad
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
