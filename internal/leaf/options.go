package leaf

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures the dynamic leaves (Expr, Script).
type Option func(*options)

// WithLogger sets the logger used to report evaluation failures. The default
// is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
