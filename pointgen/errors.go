// SPDX-License-Identifier: MIT
// Package: closestpair/pointgen
//
// errors.go - sentinel errors for the pointgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the failure site.
//   • Generators never panic; invalid parameters return ErrBadParameter.

package pointgen

import "errors"

// ErrUnknownKind indicates an unsupported generator name was requested.
var ErrUnknownKind = errors.New("pointgen: unknown generator kind")

// ErrBadParameter indicates a numeric parameter (count, bounds, fraction) is
// outside its allowed range.
var ErrBadParameter = errors.New("pointgen: invalid parameter")
