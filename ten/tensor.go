// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ten implements flat-storage tensors of arbitrary order together
// with the canonical bijection between multi-indices and flat positions.
// Every tensor in this project is stored and addressed through this package;
// there is no second (nested) representation.
package ten

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// MINDET is the smallest acceptable determinant when inverting matrices
const MINDET = 1e-14

// T2V maps a tuple of per-axis indices into the flat storage position.
// The first index varies slowest (lexicographic / row-major order):
//  flat = t[0]·d1·d2·…·d(n-1) + t[1]·d2·…·d(n-1) + … + t[n-1]
// All closed-form index formulas in msolid assume exactly this ordering;
// it must never change. Out-of-range indices indicate a caller bug and panic.
func T2V(t, dims []int) (flat int) {
	if len(t) != len(dims) {
		chk.Panic("T2V: tuple has %d indices but dims has %d axes", len(t), len(dims))
	}
	for k, i := range t {
		if i < 0 || i >= dims[k] {
			chk.Panic("T2V: index t[%d]=%d is outside [0,%d)", k, i, dims[k])
		}
		flat = flat*dims[k] + i
	}
	return
}

// V2T maps a flat storage position back into the tuple of per-axis indices.
// It is the exact inverse of T2V for all valid inputs.
func V2T(flat int, dims []int) (t []int) {
	size := 1
	for _, d := range dims {
		size *= d
	}
	if flat < 0 || flat >= size {
		chk.Panic("V2T: flat index %d is outside [0,%d)", flat, size)
	}
	t = make([]int, len(dims))
	for k := len(dims) - 1; k >= 0; k-- {
		t[k] = flat % dims[k]
		flat /= dims[k]
	}
	return
}

// Tensor holds an order-n tensor in flat storage addressed via T2V
type Tensor struct {
	Dims []int     // per-axis sizes
	V    []float64 // flat components; len = product of Dims
}

// New returns a new zeroed tensor with the given per-axis sizes
func New(dims ...int) (o *Tensor) {
	if len(dims) < 1 {
		chk.Panic("New: at least one axis is required")
	}
	size := 1
	for k, d := range dims {
		if d < 1 {
			chk.Panic("New: dims[%d]=%d is invalid", k, d)
		}
		size *= d
	}
	o = new(Tensor)
	o.Dims = make([]int, len(dims))
	copy(o.Dims, dims)
	o.V = make([]float64, size)
	return
}

// Order returns the tensorial order (number of axes)
func (o *Tensor) Order() int {
	return len(o.Dims)
}

// At returns the component addressed by the given indices
func (o *Tensor) At(t ...int) float64 {
	return o.V[T2V(t, o.Dims)]
}

// Set assigns v to the component addressed by the given indices
func (o *Tensor) Set(v float64, t ...int) {
	o.V[T2V(t, o.Dims)] = v
}

// Add accumulates v into the component addressed by the given indices
func (o *Tensor) Add(v float64, t ...int) {
	o.V[T2V(t, o.Dims)] += v
}

// GetCopy returns a deep copy of this tensor
func (o *Tensor) GetCopy() (cp *Tensor) {
	cp = New(o.Dims...)
	copy(cp.V, o.V)
	return
}

// Eye returns the order-2 identity tensor (flattened Kronecker delta)
func Eye(d int) (o *Tensor) {
	o = New(d, d)
	for i := 0; i < d; i++ {
		o.Set(1, i, i)
	}
	return
}

// Inv computes the inverse of a square order-2 tensor.
// A near-singular input is reported as an error, never as NaN components.
func Inv(a *Tensor) (det float64, ai *Tensor, err error) {
	if a.Order() != 2 || a.Dims[0] != a.Dims[1] {
		chk.Panic("Inv: tensor with dims %v is not a square order-2 tensor", a.Dims)
	}
	n := a.Dims[0]
	am := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			am[i][j] = a.At(i, j)
		}
	}
	aim := la.MatAlloc(n, n)
	det, err = la.MatInv(aim, am, MINDET)
	if err != nil {
		return
	}
	ai = New(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ai.Set(aim[i][j], i, j)
		}
	}
	return
}
