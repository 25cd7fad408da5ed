// SPDX-License-Identifier: MIT

package revenue

// Option configures an Adapter.
type Option func(*adapterConfig)

type adapterConfig struct {
	prediction bool
	progress   func(value int, final bool)
	manager    *Manager
	visitSets  [][]string
}

func newAdapterConfig(opts ...Option) adapterConfig {
	cfg := adapterConfig{prediction: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.manager == nil {
		cfg.manager = NewManager()
	}

	return cfg
}

// WithPrediction enables or disables bound pruning. It is enabled by default;
// disabling it only makes the search slower.
func WithPrediction(enabled bool) Option {
	return func(c *adapterConfig) { c.prediction = enabled }
}

// WithProgress registers a callback fired on every strict improvement and
// once more with the final value. The callback runs on the search goroutine
// and must not call back into the adapter.
func WithProgress(fn func(value int, final bool)) Option {
	return func(c *adapterConfig) { c.progress = fn }
}

// WithManager attaches the modifier registry consulted by Initialize and
// CalculateRevenue.
func WithManager(m *Manager) Option {
	return func(c *adapterConfig) { c.manager = m }
}

// WithVisitSets declares groups of vertices of which a train may visit at most one.
func WithVisitSets(sets ...[]string) Option {
	return func(c *adapterConfig) {
		for _, s := range sets {
			c.visitSets = append(c.visitSets, append([]string(nil), s...))
		}
	}
}
