// SPDX-License-Identifier: MIT

// Package subspace: functional configuration shared by every operation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state; options are resolved per call.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package subspace

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvspace/linalg"
)

// DefaultEpsilon is the cosine tolerance under which a principal angle counts
// as zero in IntersectionDim: θ is zero when 1 − cos θ ≤ eps.
const DefaultEpsilon = 1e-9

const (
	panicEpsilonInvalid = "subspace: WithEpsilon: eps must be finite, non-negative"
	panicBackendNil     = "subspace: WithBackend: backend must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	backend linalg.Backend // numerical primitives; DefaultBackend
	eps     float64        // zero-angle cosine tolerance; DefaultEpsilon
	logger  zerolog.Logger // diagnostics sink; zerolog.Nop()
}

// DefaultBackend returns the backend used when WithBackend is not supplied.
func DefaultBackend() linalg.Backend { return linalg.Gonum{} }

// WithBackend selects the numerical backend (QR, SVD, rank, norm, projection).
// Panics when b is nil.
func WithBackend(b linalg.Backend) Option {
	if b == nil {
		panic(panicBackendNil)
	}

	return func(o *Options) { o.backend = b }
}

// WithEpsilon sets the zero-angle cosine tolerance used by IntersectionDim.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - The tolerance applies to 1 − cos θ, not to θ: eps=1e-9 accepts angles
//     up to roughly √(2·1e-9) ≈ 4.5e-5 rad, which absorbs the √ε loss of
//     arccos near 1.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger installs a zerolog logger for diagnostics. The default discards
// everything. Debug events mark conventional short-circuits; Warn events mark
// rejected inputs and clamped values.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults. Nil options are ignored.
func gatherOptions(opts ...Option) Options {
	o := Options{
		backend: DefaultBackend(),
		eps:     DefaultEpsilon,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
