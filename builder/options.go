// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • No hidden globals; everything flows through config.

package builder

// Option customizes Build.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all knobs used by Build.
type config struct {
	// requireConnected rejects networks with more than one component.
	requireConnected bool
}

// newConfig applies options in order over the zero-value defaults.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRequireConnected makes Build fail with ErrDisconnected when some node
// cannot reach another. Off by default: a disconnected network is legal and
// surfaces as "no route" at query time.
func WithRequireConnected() Option {
	return func(c *config) { c.requireConnected = true }
}
