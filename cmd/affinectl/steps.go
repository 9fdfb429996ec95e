// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/katalvlaran/affine2d/affine"
)

var (
	// ErrUnknownStep is returned for a step name affinectl does not know.
	ErrUnknownStep = errors.New("affinectl: unknown step")

	// ErrBadArguments is returned when a step has the wrong number of
	// arguments or an argument is not a number.
	ErrBadArguments = errors.New("affinectl: bad step arguments")
)

// step is one parsed command-line operation, e.g. "scale:2,3".
type step struct {
	name string
	args []float64
}

// arity is the number of numeric arguments each step takes.
var arity = map[string]int{
	"identity":  0,
	"invert":    0,
	"rotate":    1,
	"rotdeg":    1,
	"scale":     2,
	"translate": 2,
	"concat":    6,
	"point":     2,
	"delta":     2,
}

// parseSteps parses "name" or "name:v1,v2,..." arguments.
func parseSteps(raw []string) ([]step, error) {
	steps := make([]step, 0, len(raw))
	for _, r := range raw {
		name, rest, _ := strings.Cut(r, ":")
		n, ok := arity[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", r, ErrUnknownStep)
		}
		args, err := parseFloats(rest)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", r, err)
		}
		if len(args) != n {
			return nil, fmt.Errorf("%q: want %d arguments, got %d: %w", r, n, len(args), ErrBadArguments)
		}
		steps = append(steps, step{name: name, args: args})
	}

	return steps, nil
}

// parseFloats splits a comma-separated list of numbers. An empty string
// yields no numbers.
func parseFloats(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, ErrBadArguments)
		}
		out[i] = v
	}

	return out, nil
}

// parseMatrix builds the starting matrix. An empty string is the identity.
func parseMatrix(coeffs string, opts ...affine.Option) (*affine.Matrix, error) {
	if coeffs == "" {
		return affine.NewIdentity(), nil
	}
	v, err := parseFloats(coeffs)
	if err != nil {
		return nil, err
	}
	if len(v) != 6 {
		return nil, fmt.Errorf("matrix wants 6 coefficients, got %d: %w", len(v), ErrBadArguments)
	}

	return affine.NewFromOptions(append(opts, affine.WithCoefficients(v[0], v[1], v[2], v[3], v[4], v[5]))...)
}

// run applies steps to m in order. Matrix steps print the resulting matrix,
// point steps print the mapped point. It stops at the first failing step.
func run(m *affine.Matrix, steps []step, w io.Writer, opts ...affine.Option) error {
	for i, s := range steps {
		var out fmt.Stringer = m
		switch s.name {
		case "identity":
			m.Identity()
		case "invert":
			if err := m.Invert(opts...); err != nil {
				return fmt.Errorf("step %d (%s): %w", i, s.name, err)
			}
		case "rotate":
			m.Rotate(s.args[0])
		case "rotdeg":
			m.Rotate(s.args[0] * math.Pi / 180)
		case "scale":
			m.Scale(s.args[0], s.args[1])
		case "translate":
			m.Translate(s.args[0], s.args[1])
		case "concat":
			a := s.args
			m.Concat(affine.Matrix{A: a[0], B: a[1], C: a[2], D: a[3], Tx: a[4], Ty: a[5]})
		case "point":
			out = m.TransformPoint(affine.Point{X: s.args[0], Y: s.args[1]})
		case "delta":
			out = m.DeltaTransformPoint(affine.Point{X: s.args[0], Y: s.args[1]})
		default:
			return fmt.Errorf("step %d (%s): %w", i, s.name, ErrUnknownStep)
		}
		if glog.V(1) {
			glog.Infof("step %d %s%v -> %v", i, s.name, s.args, m)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}

	return nil
}
