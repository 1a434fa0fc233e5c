// Package pointgen builds deterministic 2-D point sets for tests,
// benchmarks, examples and the command-line tool.
//
// Kinds:
//
//	uniform - n points uniformly distributed in the bounding box
//	grid    - ⌈√n⌉ columns on a regular lattice with the configured spacing
//	line    - n collinear points (i·spacing, 0)
//	column  - n points on two vertical lines x = 0 and x = spacing, stacked
//	          spacing apart; many points share the dividing coordinate
//	cluster - n points scattered around a few random centres
//
// Every kind is reproducible for a given seed.
package pointgen

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/closestpair/closestpair"
)

// Kind names a generator.
type Kind string

const (
	Uniform Kind = "uniform"
	Grid    Kind = "grid"
	Line    Kind = "line"
	Column  Kind = "column"
	Cluster Kind = "cluster"
)

// Kinds lists every supported generator in a stable order.
func Kinds() []Kind {
	return []Kind{Uniform, Grid, Line, Column, Cluster}
}

// ParseKind resolves a case-insensitive generator name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Generate returns n points of the given kind.
//
// Errors:
//   - ErrUnknownKind  - kind is not one of Kinds().
//   - ErrBadParameter - n < 0 or an option is out of range.
func Generate(kind Kind, n int, opts ...Option) ([]closestpair.Point, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrBadParameter, n)
	}

	r := rngFromSeed(cfg.seed)
	pts := make([]closestpair.Point, n)
	switch kind {
	case Uniform:
		for i := range pts {
			pts[i] = closestpair.Point{X: r.Float64() * cfg.width, Y: r.Float64() * cfg.height}
		}
	case Grid:
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		for i := range pts {
			pts[i] = closestpair.Point{
				X: float64(i%cols) * cfg.spacing,
				Y: float64(i/cols) * cfg.spacing,
			}
		}
	case Line:
		for i := range pts {
			pts[i] = closestpair.Point{X: float64(i) * cfg.spacing}
		}
	case Column:
		for i := range pts {
			pts[i] = closestpair.Point{X: float64(i%2) * cfg.spacing, Y: float64(i/2) * cfg.spacing}
		}
	case Cluster:
		centres := make([]closestpair.Point, cfg.clusters)
		for i := range centres {
			centres[i] = closestpair.Point{X: r.Float64() * cfg.width, Y: r.Float64() * cfg.height}
		}
		for i := range pts {
			c := centres[r.Intn(len(centres))]
			pts[i] = closestpair.Point{
				X: c.X + r.NormFloat64()*cfg.radius,
				Y: c.Y + r.NormFloat64()*cfg.radius,
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if cfg.duplicates > 0 && n > 1 {
		dups := int(cfg.duplicates * float64(n))
		for k := 0; k < dups; k++ {
			i := 1 + r.Intn(n-1)
			pts[i] = pts[r.Intn(i)]
		}
	}
	if cfg.shuffled {
		shuffle(pts, r)
	}
	return pts, nil
}
