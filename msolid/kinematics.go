// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/UCBoulder/tardigrade-micromorphic-element/ten"
)

// dofPairs maps the micro-deformation degree-of-freedom order onto tensor
// index pairs: 11, 22, 33, 23, 13, 12, 32, 31, 21
var dofPairs = [9][2]int{{0, 0}, {1, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}, {2, 1}, {2, 0}, {1, 0}}

// DeformationMeasures assembles the deformation measures consumed by the
// constitutive model from the degrees of freedom and their gradients with
// respect to the current coordinates:
//  gradU   -- displacement gradient ∂u[i]/∂x[j] [3][3]
//  phi     -- micro-deformation dofs, ordered 11,22,33,23,13,12,32,31,21 [9]
//  gradPhi -- dof gradients ∂phi[I]/∂x[k] [9][3]
// The deformation gradient follows from F⁻¹ = I − grad(u); then
//  C[i,j]     = F[a,i]·F[a,j]
//  Ψ[i,j]     = F[a,i]·χ[a,j]
//  Γ[i,j,k]   = F[a,i]·(∂χ[a,j]/∂x[b])·F[b,k]
// A non-invertible I − grad(u) is reported as an error.
func DeformationMeasures(gradU [][]float64, phi []float64, gradPhi [][]float64) (c, psi, gamma *ten.Tensor, err error) {

	// check input shapes
	if len(gradU) != 3 || len(phi) != 9 || len(gradPhi) != 9 {
		chk.Panic("DeformationMeasures: inputs must have shapes [3][3], [9] and [9][3]")
	}

	// deformation gradient
	finv := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			finv[i][j] = -gradU[i][j]
		}
		finv[i][i] += 1.0
	}
	f := la.MatAlloc(3, 3)
	_, err = la.MatInv(f, finv, ten.MINDET)
	if err != nil {
		err = chk.Err("DeformationMeasures: cannot invert I − grad(u):\n%v", err)
		return
	}

	// micro-deformation tensor and its gradient (current coordinates)
	chi := la.MatAlloc(3, 3)
	gradChi := ten.New(3, 3, 3)
	for dof, pair := range dofPairs {
		i, j := pair[0], pair[1]
		chi[i][j] = phi[dof]
		for k := 0; k < 3; k++ {
			gradChi.Set(gradPhi[dof][k], i, j, k)
		}
	}
	for i := 0; i < 3; i++ {
		chi[i][i] += 1.0
	}

	// deformation measures
	c = ten.New(3, 3)
	psi = ten.New(3, 3)
	gamma = ten.New(3, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for a := 0; a < 3; a++ {
				c.Add(f[a][i]*f[a][j], i, j)
				psi.Add(f[a][i]*chi[a][j], i, j)
			}
			for k := 0; k < 3; k++ {
				for a := 0; a < 3; a++ {
					for b := 0; b < 3; b++ {
						gamma.Add(f[a][i]*gradChi.At(a, j, b)*f[b][k], i, j, k)
					}
				}
			}
		}
	}
	return
}

// SmallStrain computes the symmetric small-strain tensor from the
// displacement gradient: ε[i,j] = 0.5·(∂u[i]/∂x[j] + ∂u[j]/∂x[i])
func SmallStrain(gradU [][]float64) (eps *ten.Tensor) {
	if len(gradU) != 3 {
		chk.Panic("SmallStrain: gradU must have shape [3][3]")
	}
	eps = ten.New(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			eps.Set(0.5*(gradU[i][j]+gradU[j][i]), i, j)
		}
	}
	return
}
