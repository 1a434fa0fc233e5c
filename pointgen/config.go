// SPDX-License-Identifier: MIT
// Package: closestpair/pointgen
//
// config.go - generator configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • seed       = 0      (resolved to defaultSeed by rngFromSeed)
//   • width      = 1000.0 (x range [0, width))
//   • height     = 1000.0 (y range [0, height))
//   • spacing    = 1.0    (grid step / line gap)
//   • clusters   = 8
//   • radius     = 5.0    (cluster spread)
//   • duplicates = 0.0    (fraction of points replaced by copies)
//   • shuffled   = true   (output order randomized)

package pointgen

import "fmt"

// Option customizes a Generate call. Options apply in order, last wins.
type Option func(*config)

// config aggregates all generator knobs.
type config struct {
	seed       int64
	width      float64
	height     float64
	spacing    float64
	clusters   int
	radius     float64
	duplicates float64
	shuffled   bool

	err error
}

const (
	defaultWidth    = 1000.0
	defaultHeight   = 1000.0
	defaultSpacing  = 1.0
	defaultClusters = 8
	defaultRadius   = 5.0
)

// newConfig constructs a config with defaults and applies opts in order.
// The first invalid option wins and is reported by Generate.
func newConfig(opts ...Option) config {
	cfg := config{
		width:    defaultWidth,
		height:   defaultHeight,
		spacing:  defaultSpacing,
		clusters: defaultClusters,
		radius:   defaultRadius,
		shuffled: true,
	}
	for _, opt := range opts {
		if cfg.err != nil {
			break
		}
		opt(&cfg)
	}
	return cfg
}

// WithSeed fixes the RNG seed. 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithBounds sets the bounding box [0,w)×[0,h) for Uniform and Cluster.
func WithBounds(w, h float64) Option {
	return func(c *config) {
		if !(w > 0) || !(h > 0) {
			c.err = fmt.Errorf("%w: bounds must be positive (%g×%g)", ErrBadParameter, w, h)
			return
		}
		c.width, c.height = w, h
	}
}

// WithSpacing sets the step between neighbours for Grid, Line and Column.
func WithSpacing(s float64) Option {
	return func(c *config) {
		if !(s > 0) {
			c.err = fmt.Errorf("%w: spacing must be positive (%g)", ErrBadParameter, s)
			return
		}
		c.spacing = s
	}
}

// WithClusters sets the number of cluster centres and their spread.
func WithClusters(k int, radius float64) Option {
	return func(c *config) {
		if k < 1 || radius < 0 {
			c.err = fmt.Errorf("%w: clusters=%d radius=%g", ErrBadParameter, k, radius)
			return
		}
		c.clusters, c.radius = k, radius
	}
}

// WithDuplicates replaces the given fraction of points with copies of
// earlier points, so the result contains coincident pairs.
func WithDuplicates(fraction float64) Option {
	return func(c *config) {
		if fraction < 0 || fraction > 1 {
			c.err = fmt.Errorf("%w: duplicate fraction %g not in [0,1]", ErrBadParameter, fraction)
			return
		}
		c.duplicates = fraction
	}
}

// WithOrdered keeps the generator's natural order instead of shuffling.
func WithOrdered() Option {
	return func(c *config) { c.shuffled = false }
}
