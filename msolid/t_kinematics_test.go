// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/UCBoulder/tardigrade-micromorphic-element/ten"
)

func Test_kin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin01. undeformed dofs give identity measures")

	gradU := la.MatAlloc(3, 3)
	phi := make([]float64, 9)
	gradPhi := la.MatAlloc(9, 3)

	c, psi, gamma, err := DeformationMeasures(gradU, phi, gradPhi)
	if err != nil {
		tst.Errorf("DeformationMeasures failed:\n%v", err)
		return
	}
	chk.Vector(tst, "C", 1e-15, c.V, ten.Eye(3).V)
	chk.Vector(tst, "Ψ", 1e-15, psi.V, ten.Eye(3).V)
	chk.Vector(tst, "Γ", 1e-15, gamma.V, make([]float64, 27))
}

func Test_kin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin02. uniaxial stretch")

	// ∂u1/∂x1 = 0.1 w.r.t. current coordinates gives F = diag(1/0.9, 1, 1)
	gradU := la.MatAlloc(3, 3)
	gradU[0][0] = 0.1
	phi := make([]float64, 9)
	gradPhi := la.MatAlloc(9, 3)

	c, psi, gamma, err := DeformationMeasures(gradU, phi, gradPhi)
	if err != nil {
		tst.Errorf("DeformationMeasures failed:\n%v", err)
		return
	}
	f00 := 1.0 / 0.9
	chk.Scalar(tst, "C[0,0]", 1e-14, c.At(0, 0), f00*f00)
	chk.Scalar(tst, "C[1,1]", 1e-14, c.At(1, 1), 1.0)
	chk.Scalar(tst, "C[0,1]", 1e-15, c.At(0, 1), 0)
	chk.Scalar(tst, "Ψ[0,0]", 1e-14, psi.At(0, 0), f00) // χ = I, so Ψ = Fᵀ
	chk.Scalar(tst, "Ψ[1,1]", 1e-14, psi.At(1, 1), 1.0)
	chk.Vector(tst, "Γ", 1e-15, gamma.V, make([]float64, 27))
}

func Test_kin03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin03. general dofs: C symmetry and dof placement")

	gradU := [][]float64{
		{0.02, 0.01, -0.03},
		{-0.01, 0.04, 0.02},
		{0.03, -0.02, 0.01},
	}
	phi := []float64{0.10, 0.05, -0.02, 0.03, 0.01, -0.04, 0.02, 0.06, -0.01}
	gradPhi := la.MatAlloc(9, 3)
	gradPhi[5][1] = 0.2 // ∂φ12/∂x2

	c, psi, gamma, err := DeformationMeasures(gradU, phi, gradPhi)
	if err != nil {
		tst.Errorf("DeformationMeasures failed:\n%v", err)
		return
	}
	io.Pforan("C = %v\n", c.V)

	// C = FᵀF is symmetric by construction
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(c.At(i, j)-c.At(j, i)) > 1e-15 {
				tst.Errorf("C[%d,%d] != C[%d,%d]", i, j, j, i)
				return
			}
		}
	}

	// dof 5 must land on χ[0,1]; with small strains Ψ ≈ Fᵀχ stays close to χ
	if math.Abs(psi.At(0, 1)-phi[5]) > 0.05 {
		tst.Errorf("Ψ[0,1]=%g is too far from dof value %g", psi.At(0, 1), phi[5])
		return
	}

	// a single dof gradient must show up in Γ
	nonzero := 0
	for i := range gamma.V {
		if math.Abs(gamma.V[i]) > 1e-12 {
			nonzero++
		}
	}
	if nonzero == 0 {
		tst.Errorf("Γ is unexpectedly zero")
	}

	// near-identity deformation: leading Γ entry tracks ∂φ12/∂x2
	if math.Abs(gamma.At(0, 1, 1)-0.2) > 0.02 {
		tst.Errorf("Γ[0,1,1]=%g is too far from dof gradient 0.2", gamma.At(0, 1, 1))
	}
}

func Test_kin04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin04. singular displacement gradient and small strain")

	// grad(u) = I makes I − grad(u) singular
	gradU := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		gradU[i][i] = 1.0
	}
	_, _, _, err := DeformationMeasures(gradU, make([]float64, 9), la.MatAlloc(9, 3))
	if err == nil {
		tst.Errorf("DeformationMeasures with singular I − grad(u) must fail")
		return
	}
	io.Pfgrey("error (expected): %v\n", err)

	// small strain is the symmetric part of grad(u)
	g := [][]float64{
		{0.01, 0.04, 0.00},
		{0.02, -0.03, 0.08},
		{0.00, 0.00, 0.05},
	}
	eps := SmallStrain(g)
	chk.Vector(tst, "ε", 1e-15, eps.V, []float64{0.01, 0.03, 0.0, 0.03, -0.03, 0.04, 0.0, 0.04, 0.05})
}
