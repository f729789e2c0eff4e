// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/UCBoulder/tardigrade-micromorphic-element/ten"

// StrainMeasures computes the macro and micro strain tensors from the
// deformation measures:
//  Emacro[i,j] = 0.5·(C[i,j] − δ[i,j])
//  Emicro[i,j] = Ψ[i,j] − δ[i,j]
// The micro strain follows the Ψ−I convention of the underlying model.
func StrainMeasures(c, phi *ten.Tensor) (emacro, emicro *ten.Tensor) {
	emacro = ten.New(3, 3)
	emicro = ten.New(3, 3)
	I := ten.Eye(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			emacro.Set(0.5*(c.At(i, j)-I.At(i, j)), i, j)
			emicro.Set(phi.At(i, j)-I.At(i, j), i, j)
		}
	}
	return
}
