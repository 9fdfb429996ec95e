// SPDX-License-Identifier: MIT

// Command affinectl applies a sequence of affine operations to a matrix and
// prints each intermediate result in the matrix debug format.
//
// Usage:
//
//	affinectl [-m a,b,c,d,tx,ty] [-eps E] [-strict] step...
//
// Steps, applied left to right:
//
//	identity | invert | rotate:<rad> | rotdeg:<deg> | scale:<sx>,<sy>
//	translate:<dx>,<dy> | concat:<a>,<b>,<c>,<d>,<tx>,<ty>
//	point:<x>,<y> | delta:<x>,<y>
//
// Example:
//
//	$ affinectl scale:2,3 translate:5,7 point:1,1
//	(a=2, b=0, c=0, d=3, tx=0, ty=0)
//	(a=2, b=0, c=0, d=3, tx=5, ty=7)
//	(7, 10)
//
// Logging goes through glog; pass -v=1 -logtostderr to trace every step.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/golang/glog"

	"github.com/katalvlaran/affine2d/affine"
)

var (
	matrixFlag = flag.String("m", "", "starting matrix as a,b,c,d,tx,ty (default: identity)")
	epsFlag    = flag.Float64("eps", affine.DefaultEpsilon, "invert fails when |det| <= eps")
	strictFlag = flag.Bool("strict", false, "reject NaN and Inf coefficients")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] step...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if e := *epsFlag; math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
		glog.Exitf("-eps must be finite and non-negative, got %v", e)
	}
	opts := []affine.Option{
		affine.WithEpsilon(*epsFlag),
		affine.WithValidateFinite(*strictFlag),
	}

	m, err := parseMatrix(*matrixFlag, opts...)
	if err != nil {
		glog.Exitf("-m: %v", err)
	}
	steps, err := parseSteps(flag.Args())
	if err != nil {
		glog.Exitf("%v", err)
	}
	glog.Infof("applying %d steps to %v", len(steps), m)

	if err := run(m, steps, os.Stdout, opts...); err != nil {
		glog.Exitf("%v", err)
	}
}
