// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// CheckDeriv compares an analytic derivative tensor against central finite
// differences of fcn, component by component.
//  dfdx -- analytic derivative; Dims must be fcn-output dims followed by x dims
//  x    -- point at which dfdx was computed (not modified)
//  h    -- step size for the numerical differentiation
//  fcn  -- evaluates f at a perturbed copy of x
func CheckDeriv(tst *testing.T, msg string, tol float64, dfdx, x *Tensor, h float64, verbose bool, fcn func(xp *Tensor) *Tensor) {

	// f at the unperturbed point fixes the output shape
	f0 := fcn(x)
	nf := len(f0.V)
	nx := len(x.V)
	if len(dfdx.V) != nf*nx {
		chk.Panic("CheckDeriv: dfdx with dims %v does not map %v to %v", dfdx.Dims, x.Dims, f0.Dims)
	}

	xtmp := x.GetCopy()
	for jf := 0; jf < nf; jf++ {
		for jx := 0; jx < nx; jx++ {
			dnum, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
				copy(xtmp.V, x.V)
				xtmp.V[jx] = t
				return fcn(xtmp).V[jf]
			}, x.V[jx], h)
			ana := dfdx.V[jf*nx+jx]
			if verbose {
				io.Pfgrey2("  %s[%d,%d] = %v (num: %v)\n", msg, jf, jx, ana, dnum)
			}
			if math.Abs(ana-dnum) > tol {
				tst.Errorf("%s[%d,%d] failed with err = %g\n", msg, jf, jx, math.Abs(ana-dnum))
				return
			}
		}
	}
}

// CheckPanic runs fcn and reports an error unless it panics.
// Index-mapper preconditions are enforced with panics; this helper lets
// tests assert those preconditions without crashing the test binary.
func CheckPanic(tst *testing.T, msg string, fcn func()) {
	defer func() {
		if recover() == nil {
			tst.Errorf("%s: expected panic did not happen\n", msg)
		}
	}()
	fcn()
}
