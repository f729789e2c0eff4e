// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"

	"github.com/UCBoulder/tardigrade-micromorphic-element/ten"
)

// PK2Stress computes the second Piola-Kirchhoff stress:
//  term1[i,j] = A[i,j,k,l]·Emacro[k,l] + D[i,j,k,l]·Emicro[k,l]
//  term2[i,j] = (B[i,q,k,l]·Emicro[k,l] + D[i,q,k,l]·Emacro[k,l])·(Emicro[r,q]+δ[r,q])·Cinv[j,r]
//             + C6[i,q,r,l,m,n]·Γ[l,m,n]·Cinv[j,s]·Γ[s,q,r]
//  PK2[i,j]   = term1[i,j] + term2[i,j]
// term1 and term2 are returned because the symmetric stress and the tangent
// operators reuse them. A singular C is reported as an error.
func PK2Stress(a, b, c6, d, emacro, emicro, c, gamma *ten.Tensor) (pk2, term1, term2 *ten.Tensor, err error) {

	// invert C
	_, cinv, err := ten.Inv(c)
	if err != nil {
		err = chk.Err("PK2Stress: cannot invert C:\n%v", err)
		return
	}

	pk2 = ten.New(3, 3)
	term1 = ten.New(3, 3)
	term2 = ten.New(3, 3)
	I := ten.Eye(3)

	// term1: linear part
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					term1.Add(a.At(i, j, k, l)*emacro.At(k, l)+d.At(i, j, k, l)*emicro.At(k, l), i, j)
				}
			}
		}
	}

	// term2: strain coupling through Cinv
	s1 := weightedStrain(b, d, emacro, emicro)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for q := 0; q < 3; q++ {
				for r := 0; r < 3; r++ {
					term2.Add(s1.At(i, q)*(emicro.At(r, q)+I.At(r, q))*cinv.At(j, r), i, j)
				}
			}
		}
	}

	// term2: Γ coupling through Cinv
	m := HigherOrderStress(c6, gamma)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for q := 0; q < 3; q++ {
				for r := 0; r < 3; r++ {
					for s := 0; s < 3; s++ {
						term2.Add(m.At(i, q, r)*cinv.At(j, s)*gamma.At(s, q, r), i, j)
					}
				}
			}
		}
	}

	// assemble
	for i := 0; i < 9; i++ {
		pk2.V[i] = term1.V[i] + term2.V[i]
	}
	return
}

// SymmetricStress computes the symmetric micro-stress from the two terms
// returned by PK2Stress:
//  Σ[i,j] = term1[i,j] + term2[i,j] + term2[j,i]
// Σ is symmetric by construction.
func SymmetricStress(term1, term2 *ten.Tensor) (sig *ten.Tensor) {
	sig = ten.New(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sig.Set(term1.At(i, j)+term2.At(i, j)+term2.At(j, i), i, j)
		}
	}
	return
}

// HigherOrderStress computes the higher-order (couple) stress:
//  M[k,l,m] = C6[k,l,m,n,p,q]·Γ[n,p,q]
func HigherOrderStress(c6, gamma *ten.Tensor) (m *ten.Tensor) {
	m = ten.New(3, 3, 3)
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			for i := 0; i < 3; i++ {
				for n := 0; n < 3; n++ {
					for p := 0; p < 3; p++ {
						for q := 0; q < 3; q++ {
							m.Add(c6.At(k, l, i, n, p, q)*gamma.At(n, p, q), k, l, i)
						}
					}
				}
			}
		}
	}
	return
}

// weightedStrain computes the strain-weighted second-order term shared by
// the stress and tangent computations:
//  s1[i,q] = B[i,q,k,l]·Emicro[k,l] + D[i,q,k,l]·Emacro[k,l]
func weightedStrain(b, d, emacro, emicro *ten.Tensor) (s1 *ten.Tensor) {
	s1 = ten.New(3, 3)
	for i := 0; i < 3; i++ {
		for q := 0; q < 3; q++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					s1.Add(b.At(i, q, k, l)*emicro.At(k, l)+d.At(i, q, k, l)*emacro.At(k, l), i, q)
				}
			}
		}
	}
	return
}
