package fgbconvert

import "log/slog"

type config struct {
	logger    *slog.Logger
	joinBoxes bool
}

// Option configures FromFlat and ToBuilder.
type Option func(*config)

// WithLogger sets the logger used to report header content that cannot be
// carried across. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithJoinBoxes makes ToBuilder write the joined box of a header that has
// several bounding boxes instead of failing with ErrMultipleBoxes.
func WithJoinBoxes() Option {
	return func(c *config) { c.joinBoxes = true }
}

func newConfig(opts []Option) config {
	c := config{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
