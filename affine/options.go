// SPDX-License-Identifier: MIT

// Package affine: functional configuration for construction and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - One Options type serves every entry point. NewFromOptions reads the
//     coefficient setters and the finite-value policy; Invert and IsInvertible
//     read eps and the finite-value policy. Setters irrelevant to an entry
//     point are ignored there.
//   - Coefficient setters that are never applied leave the identity default,
//     so each coefficient is independently optional.

package affine

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the singularity tolerance used by Invert: a matrix is
	// singular when |det| <= eps. Zero means only an exact zero determinant
	// is rejected.
	DefaultEpsilon = 0.0

	// DefaultValidateFinite toggles rejection of NaN/±Inf coefficients.
	// Off by default: non-finite values propagate through the arithmetic.
	DefaultValidateFinite = false
)

// Identity coefficients used when a coefficient is not supplied.
const (
	DefaultA  = 1.0
	DefaultB  = 0.0
	DefaultC  = 0.0
	DefaultD  = 1.0
	DefaultTx = 0.0
	DefaultTy = 0.0
)

const panicEpsilonInvalid = "affine: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateFinite bool    // DefaultValidateFinite

	// construction
	coeffs Matrix
}

// WithEpsilon sets the singularity tolerance used by Invert and IsInvertible.
//
// Panics when eps is negative or non-finite (programmer error).
//
// Notes:
//   - A tolerance such as 1e-12 rejects matrices that are numerically
//     singular but whose determinant is not an exact zero.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateFinite enables (true) or disables (false) rejection of NaN and
// ±Inf coefficients in NewFromOptions and Invert.
func WithValidateFinite(enabled bool) Option {
	return func(o *Options) { o.validateFinite = enabled }
}

// WithA sets the a coefficient (x-axis scale / first column, first row).
func WithA(v float64) Option { return func(o *Options) { o.coeffs.A = v } }

// WithB sets the b coefficient.
func WithB(v float64) Option { return func(o *Options) { o.coeffs.B = v } }

// WithC sets the c coefficient.
func WithC(v float64) Option { return func(o *Options) { o.coeffs.C = v } }

// WithD sets the d coefficient.
func WithD(v float64) Option { return func(o *Options) { o.coeffs.D = v } }

// WithTx sets the x translation.
func WithTx(v float64) Option { return func(o *Options) { o.coeffs.Tx = v } }

// WithTy sets the y translation.
func WithTy(v float64) Option { return func(o *Options) { o.coeffs.Ty = v } }

// WithCoefficients sets all six coefficients at once.
func WithCoefficients(a, b, c, d, tx, ty float64) Option {
	return func(o *Options) { o.coeffs = Matrix{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty} }
}

// defaultOptions returns the documented defaults. Keep in sync with the
// constants above.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateFinite: DefaultValidateFinite,
		coeffs: Matrix{
			A: DefaultA, B: DefaultB,
			C: DefaultC, D: DefaultD,
			Tx: DefaultTx, Ty: DefaultTy,
		},
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
