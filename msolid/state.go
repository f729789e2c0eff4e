// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/UCBoulder/tardigrade-micromorphic-element/ten"

// State holds the stress measures at one evaluation (integration) point.
// All tensors are recomputed from scratch for every evaluation; nothing here
// is shared between points.
type State struct {
	PK2 *ten.Tensor // second Piola-Kirchhoff stress [3,3] (non-symmetric)
	Sig *ten.Tensor // symmetric micro-stress Σ [3,3]
	M   *ten.Tensor // higher-order (couple) stress [3,3,3]
}

// NewState allocates a new state with zeroed stress measures
func NewState() (s *State) {
	s = new(State)
	s.PK2 = ten.New(3, 3)
	s.Sig = ten.New(3, 3)
	s.M = ten.New(3, 3, 3)
	return
}

// Set copies the stress measures from another state into this one
func (o *State) Set(other *State) {
	copy(o.PK2.V, other.PK2.V)
	copy(o.Sig.V, other.Sig.V)
	copy(o.M.V, other.M.V)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() (s *State) {
	s = NewState()
	s.Set(o)
	return
}

// Tangents holds the nine derivative tensors of the stress measures with
// respect to the deformation measures
type Tangents struct {
	DPk2DC     *ten.Tensor // ∂PK2/∂C   [3,3,3,3]
	DPk2DPhi   *ten.Tensor // ∂PK2/∂Ψ   [3,3,3,3]
	DPk2DGamma *ten.Tensor // ∂PK2/∂Γ   [3,3,3,3,3]
	DSigDC     *ten.Tensor // ∂Σ/∂C     [3,3,3,3]
	DSigDPhi   *ten.Tensor // ∂Σ/∂Ψ     [3,3,3,3]
	DSigDGamma *ten.Tensor // ∂Σ/∂Γ     [3,3,3,3,3]
	DMDC       *ten.Tensor // ∂M/∂C     [3,3,3,3,3]
	DMDPhi     *ten.Tensor // ∂M/∂Ψ     [3,3,3,3,3]
	DMDGamma   *ten.Tensor // ∂M/∂Γ     [3,3,3,3,3,3]
}

// NewTangents allocates all nine tangent tensors
func NewTangents() (t *Tangents) {
	t = new(Tangents)
	t.DPk2DC = ten.New(3, 3, 3, 3)
	t.DPk2DPhi = ten.New(3, 3, 3, 3)
	t.DPk2DGamma = ten.New(3, 3, 3, 3, 3)
	t.DSigDC = ten.New(3, 3, 3, 3)
	t.DSigDPhi = ten.New(3, 3, 3, 3)
	t.DSigDGamma = ten.New(3, 3, 3, 3, 3)
	t.DMDC = ten.New(3, 3, 3, 3, 3)
	t.DMDPhi = ten.New(3, 3, 3, 3, 3)
	t.DMDGamma = ten.New(3, 3, 3, 3, 3, 3)
	return
}
