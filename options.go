package gdsii

import "github.com/rs/zerolog"

// parseConfig accumulates the effect of every ParseOption applied to a
// Parse call.
type parseConfig struct {
	workers          int
	logger           zerolog.Logger
	strictLayerRange bool
}

func defaultParseConfig() parseConfig {
	return parseConfig{
		workers: 0, // 0 means pipeline.DefaultWorkers()
		logger:  zerolog.Nop(),
	}
}

// ParseOption configures a single Parse call.
type ParseOption func(*parseConfig)

// WithWorkers overrides stage 2's decode concurrency. n <= 0 restores
// the default (one worker per logical CPU).
func WithWorkers(n int) ParseOption {
	return func(c *parseConfig) { c.workers = n }
}

// WithLogger attaches a structured logger; Parse emits a debug event per
// stage and a warn event for each layer/datatype value outside the
// conventional 0-255 range when WithStrictLayerRange is not set. A
// property key repeated within one element is overwritten (the last
// value is kept) without any log event.
func WithLogger(logger zerolog.Logger) ParseOption {
	return func(c *parseConfig) { c.logger = logger }
}

// WithStrictLayerRange makes an out-of-range layer or datatype value
// (outside 0-255) a NameConstraint parse failure instead of a logged
// warning.
func WithStrictLayerRange(strict bool) ParseOption {
	return func(c *parseConfig) { c.strictLayerRange = strict }
}
