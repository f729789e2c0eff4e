// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/UCBoulder/tardigrade-micromorphic-element/ten"

// All derivatives below treat each of the 9 (or 27) flattened components of
// the deformation measures as an independent variable; central finite
// differences on any single component therefore reproduce them directly.
// In particular dEmacro[k,l]/dC[o,p] = 0.5·δ[k,o]·δ[l,p], which is where the
// 0.5 factors on the A and D contributions come from.

// DCinvDC computes the fourth-order derivative of the inverse of C with
// respect to C, from the already inverted Cinv:
//  dCinv[i,j]/dC[k,l] = −Cinv[i,k]·Cinv[l,j]
func DCinvDC(cinv *ten.Tensor) (dcinvdc *ten.Tensor) {
	dcinvdc = ten.New(3, 3, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					dcinvdc.Set(-cinv.At(i, k)*cinv.At(l, j), i, j, k, l)
				}
			}
		}
	}
	return
}

// stressDerivsWrtC computes ∂PK2/∂C and ∂Σ/∂C.
//  s1 -- weighted strain term (see weightedStrain)
//  m  -- higher-order stress C6:Γ
func stressDerivsWrtC(dpk2dc, dsigdc, a, d, s1, m, emicro, gamma, cinv, dcinvdc *ten.Tensor) {
	I := ten.Eye(3)
	t2 := ten.New(3, 3, 3, 3) // term2 contribution, symmetrised for Σ
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for o := 0; o < 3; o++ {
				for p := 0; p < 3; p++ {
					for q := 0; q < 3; q++ {
						for r := 0; r < 3; r++ {
							w := emicro.At(r, q) + I.At(r, q)
							t2.Add(0.5*d.At(i, q, o, p)*w*cinv.At(j, r)+s1.At(i, q)*w*dcinvdc.At(j, r, o, p), i, j, o, p)
							for s := 0; s < 3; s++ {
								t2.Add(m.At(i, q, r)*gamma.At(s, q, r)*dcinvdc.At(j, s, o, p), i, j, o, p)
							}
						}
					}
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for o := 0; o < 3; o++ {
				for p := 0; p < 3; p++ {
					lin := 0.5 * a.At(i, j, o, p)
					dpk2dc.Set(lin+t2.At(i, j, o, p), i, j, o, p)
					dsigdc.Set(lin+t2.At(i, j, o, p)+t2.At(j, i, o, p), i, j, o, p)
				}
			}
		}
	}
}

// stressDerivsWrtPhi computes ∂PK2/∂Ψ and ∂Σ/∂Ψ
func stressDerivsWrtPhi(dpk2dphi, dsigdphi, b, d, s1, emicro, cinv *ten.Tensor) {
	I := ten.Eye(3)
	t2 := ten.New(3, 3, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for o := 0; o < 3; o++ {
				for p := 0; p < 3; p++ {
					for q := 0; q < 3; q++ {
						for r := 0; r < 3; r++ {
							t2.Add(b.At(i, q, o, p)*(emicro.At(r, q)+I.At(r, q))*cinv.At(j, r), i, j, o, p)
						}
					}
					t2.Add(s1.At(i, p)*cinv.At(j, o), i, j, o, p)
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for o := 0; o < 3; o++ {
				for p := 0; p < 3; p++ {
					dpk2dphi.Set(d.At(i, j, o, p)+t2.At(i, j, o, p), i, j, o, p)
					dsigdphi.Set(d.At(i, j, o, p)+t2.At(i, j, o, p)+t2.At(j, i, o, p), i, j, o, p)
				}
			}
		}
	}
}

// stressDerivsWrtGamma computes ∂PK2/∂Γ and ∂Σ/∂Γ
func stressDerivsWrtGamma(dpk2dgamma, dsigdgamma, c6, m, gamma, cinv *ten.Tensor) {
	t2 := ten.New(3, 3, 3, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for t := 0; t < 3; t++ {
				for u := 0; u < 3; u++ {
					for v := 0; v < 3; v++ {
						for q := 0; q < 3; q++ {
							for r := 0; r < 3; r++ {
								for s := 0; s < 3; s++ {
									t2.Add(c6.At(i, q, r, t, u, v)*cinv.At(j, s)*gamma.At(s, q, r), i, j, t, u, v)
								}
							}
						}
						t2.Add(m.At(i, u, v)*cinv.At(j, t), i, j, t, u, v)
					}
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for t := 0; t < 3; t++ {
				for u := 0; u < 3; u++ {
					for v := 0; v < 3; v++ {
						dpk2dgamma.Set(t2.At(i, j, t, u, v), i, j, t, u, v)
						dsigdgamma.Set(t2.At(i, j, t, u, v)+t2.At(j, i, t, u, v), i, j, t, u, v)
					}
				}
			}
		}
	}
}
