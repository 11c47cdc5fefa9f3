package magnet

import "log/slog"

type Option func(*containerConfig)

// WithLogger sets the logger used for per-node lifecycle and resolution
// debug lines. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *containerConfig) {
		cfg.logger = logger
	}
}
