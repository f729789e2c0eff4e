// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msolid implements constitutive models for micromorphic solids.
// Stress measures and their tangent operators are computed in the reference
// configuration from the deformation measures C, Ψ (Phi) and Γ (Gamma).
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/UCBoulder/tardigrade-micromorphic-element/ten"
)

// Model defines the interface for micromorphic constitutive models
type Model interface {

	// Init initialises the model with material parameters
	Init(ndim int, prms fun.Prms) error

	// GetPrms gets (an example) of parameters
	GetPrms() fun.Prms

	// Stresses computes the stress measures for the given deformation
	// measures and stores them in the state
	//  c     -- right Cauchy-Green deformation tensor [3,3]
	//  phi   -- micro-deformation tensor Ψ [3,3]
	//  gamma -- micro-deformation gradient Γ [3,3,3]
	Stresses(s *State, c, phi, gamma *ten.Tensor) error

	// Tangents computes the derivatives of all stress measures with
	// respect to each deformation measure
	Tangents(t *Tangents, c, phi, gamma *ten.Tensor) error
}

// New returns a new model from the database
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model named %q is not available in msolid database", name)
	}
	return allocator(), nil
}

// allocators holds the available models
var allocators = map[string]func() Model{}
