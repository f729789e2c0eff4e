// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/UCBoulder/tardigrade-micromorphic-element/ten"
)

// Micromorphic implements a linear-elastic constitutive model for a
// micromorphic continuum. The model is derived from a quadratic form of the
// Helmholtz free energy and relates the deformation measures C, Ψ and Γ to
// the second Piola-Kirchhoff stress, the symmetric micro-stress and the
// higher-order stress.
type Micromorphic struct {

	// parameters
	Lam   float64   // λ -- first Lamé modulus
	Mu    float64   // μ -- second Lamé modulus
	Eta   float64   // η
	Tau   float64   // τ
	Kappa float64   // κ
	Nu    float64   // ν
	Sig   float64   // σ
	Taus  []float64 // τ1..τ11 -- higher-order moduli

	// stiffness tensors (built once per material)
	A  *ten.Tensor // fourth order, from λ and μ
	B  *ten.Tensor // fourth order, from η, τ, κ, ν, σ
	C6 *ten.Tensor // sixth order, from τ1..τ11
	D  *ten.Tensor // fourth order, from τ and σ
}

// add model to factory
func init() {
	allocators["micromorphic"] = func() Model { return new(Micromorphic) }
}

// Init initialises model and builds the stiffness tensors
func (o *Micromorphic) Init(ndim int, prms fun.Prms) (err error) {

	// this model is inherently three-dimensional
	if ndim != 3 {
		return chk.Err("micromorphic: ndim=%d is invalid; model is 3D only", ndim)
	}

	// parameters
	o.Taus = make([]float64, 11)
	for _, p := range prms {
		switch p.N {
		case "lam":
			o.Lam = p.V
		case "mu":
			o.Mu = p.V
		case "eta":
			o.Eta = p.V
		case "tau":
			o.Tau = p.V
		case "kap":
			o.Kappa = p.V
		case "nu":
			o.Nu = p.V
		case "sig":
			o.Sig = p.V
		case "tau1":
			o.Taus[0] = p.V
		case "tau2":
			o.Taus[1] = p.V
		case "tau3":
			o.Taus[2] = p.V
		case "tau4":
			o.Taus[3] = p.V
		case "tau5":
			o.Taus[4] = p.V
		case "tau6":
			o.Taus[5] = p.V
		case "tau7":
			o.Taus[6] = p.V
		case "tau8":
			o.Taus[7] = p.V
		case "tau9":
			o.Taus[8] = p.V
		case "tau10":
			o.Taus[9] = p.V
		case "tau11":
			o.Taus[10] = p.V
		default:
			return chk.Err("micromorphic: parameter named %q is incorrect", p.N)
		}
	}

	// stiffness tensors
	o.A = FormA(o.Lam, o.Mu)
	o.B = FormB(o.Eta, o.Tau, o.Kappa, o.Nu, o.Sig)
	o.C6 = FormC(o.Taus)
	o.D = FormD(o.Tau, o.Sig)
	return
}

// GetPrms gets (an example) of parameters
func (o Micromorphic) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "lam", V: 2.4},
		&fun.Prm{N: "mu", V: 6.7},
		&fun.Prm{N: "eta", V: 2.4},
		&fun.Prm{N: "tau", V: 5.1},
		&fun.Prm{N: "kap", V: 5.6},
		&fun.Prm{N: "nu", V: 8.2},
		&fun.Prm{N: "sig", V: 2.0},
		&fun.Prm{N: "tau1", V: 4.5},
		&fun.Prm{N: "tau2", V: 1.3},
		&fun.Prm{N: "tau3", V: 9.2},
		&fun.Prm{N: "tau4", V: 1.1},
		&fun.Prm{N: "tau5", V: 6.4},
		&fun.Prm{N: "tau6", V: 2.4},
		&fun.Prm{N: "tau7", V: 7.11},
		&fun.Prm{N: "tau8", V: 5.5},
		&fun.Prm{N: "tau9", V: 1.5},
		&fun.Prm{N: "tau10", V: 3.8},
		&fun.Prm{N: "tau11", V: 2.7},
	}
}

// Stresses computes PK2, Σ and M for the given deformation measures
func (o *Micromorphic) Stresses(s *State, c, phi, gamma *ten.Tensor) (err error) {
	emacro, emicro := StrainMeasures(c, phi)
	pk2, term1, term2, err := PK2Stress(o.A, o.B, o.C6, o.D, emacro, emicro, c, gamma)
	if err != nil {
		return
	}
	copy(s.PK2.V, pk2.V)
	copy(s.Sig.V, SymmetricStress(term1, term2).V)
	copy(s.M.V, HigherOrderStress(o.C6, gamma).V)
	return
}

// Tangents computes the derivatives of PK2, Σ and M with respect to each
// deformation measure. M depends on Γ alone through a linear map, so
// ∂M/∂C and ∂M/∂Ψ are zero and ∂M/∂Γ is the C6 stiffness itself.
func (o *Micromorphic) Tangents(t *Tangents, c, phi, gamma *ten.Tensor) (err error) {

	// shared terms
	emacro, emicro := StrainMeasures(c, phi)
	_, cinv, err := ten.Inv(c)
	if err != nil {
		return chk.Err("Tangents: cannot invert C:\n%v", err)
	}
	dcinvdc := DCinvDC(cinv)
	s1 := weightedStrain(o.B, o.D, emacro, emicro)
	m := HigherOrderStress(o.C6, gamma)

	// stress derivatives
	stressDerivsWrtC(t.DPk2DC, t.DSigDC, o.A, o.D, s1, m, emicro, gamma, cinv, dcinvdc)
	stressDerivsWrtPhi(t.DPk2DPhi, t.DSigDPhi, o.B, o.D, s1, emicro, cinv)
	stressDerivsWrtGamma(t.DPk2DGamma, t.DSigDGamma, o.C6, m, gamma, cinv)

	// higher-order stress derivatives
	for i := range t.DMDC.V {
		t.DMDC.V[i] = 0
		t.DMDPhi.V[i] = 0
	}
	copy(t.DMDGamma.V, o.C6.V)
	return
}
