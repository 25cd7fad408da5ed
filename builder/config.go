// SPDX-License-Identifier: MIT
// Package: railrev/builder
//
// config.go — internal configuration and options.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/railrev/core"
)

// GraphModifier lets game rules rewrite graphs as they are built.
// ModifyMapGraph runs on the network produced by BuildNetwork;
// ModifyRouteGraph runs on every company graph.
type GraphModifier interface {
	ModifyMapGraph(g *core.Graph)
	ModifyRouteGraph(g *core.Graph, company string)
}

// builderConfig aggregates all knobs used by the builder entry points.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	ctx       context.Context
	modifiers []GraphModifier
	simplify  bool
}

// Option customizes a builder entry point.
type Option func(*builderConfig)

// WithContext sets the context used for cancellation and tracing.
// Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("builder: WithContext(nil)")
	}
	return func(c *builderConfig) { c.ctx = ctx }
}

// WithGraphModifiers appends graph modifiers, run in the given order.
func WithGraphModifiers(mods ...GraphModifier) Option {
	return func(c *builderConfig) { c.modifiers = append(c.modifiers, mods...) }
}

// WithoutSimplify makes BuildNetwork return the raw network.
func WithoutSimplify() Option {
	return func(c *builderConfig) { c.simplify = false }
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		ctx:      context.Background(),
		simplify: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// StationID is the vertex ID of station slot slot in hex hex.
func StationID(hex string, slot int) string { return fmt.Sprintf("%s.%d", hex, slot) }

// SideID is the vertex ID of side side of hex hex.
func SideID(hex string, side int) string { return fmt.Sprintf("%s:%d", hex, side) }

// OppositeSide returns the side of the neighbouring hex that faces side.
func OppositeSide(side int) int { return (side + 3) % 6 }
