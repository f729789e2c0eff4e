// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"

	"github.com/UCBoulder/tardigrade-micromorphic-element/ten"
)

// FormA forms the fourth-order stiffness tensor A (classical isotropic
// elasticity):
//  A[k,l,m,n] = λ·δ[k,l]·δ[m,n] + μ·(δ[k,m]·δ[l,n] + δ[k,n]·δ[l,m])
func FormA(lam, mu float64) (a *ten.Tensor) {
	a = ten.New(3, 3, 3, 3)
	I := ten.Eye(3)
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					a.Set(lam*I.At(k, l)*I.At(m, n)+mu*(I.At(k, m)*I.At(l, n)+I.At(k, n)*I.At(l, m)), k, l, m, n)
				}
			}
		}
	}
	return
}

// FormB forms the fourth-order stiffness tensor B:
//  B[k,l,m,n] = (η−τ)·δ[k,l]·δ[m,n] + κ·δ[k,m]·δ[l,n] + ν·δ[k,n]·δ[l,m]
//             − σ·(δ[k,m]·δ[l,n] + δ[k,n]·δ[l,m])
func FormB(eta, tau, kappa, nu, sig float64) (b *ten.Tensor) {
	b = ten.New(3, 3, 3, 3)
	I := ten.Eye(3)
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					b.Set((eta-tau)*I.At(k, l)*I.At(m, n)+kappa*I.At(k, m)*I.At(l, n)+nu*I.At(k, n)*I.At(l, m)-
						sig*(I.At(k, m)*I.At(l, n)+I.At(k, n)*I.At(l, m)), k, l, m, n)
				}
			}
		}
	}
	return
}

// FormC forms the sixth-order micromorphic coupling stiffness tensor from the
// eleven τ parameters. The eleven delta-triple terms are fixed by the
// underlying free-energy function and must not be reordered.
func FormC(taus []float64) (c *ten.Tensor) {
	if len(taus) != 11 {
		chk.Panic("FormC: %d tau parameters given; 11 are required", len(taus))
	}
	t1, t2, t3, t4, t5, t6 := taus[0], taus[1], taus[2], taus[3], taus[4], taus[5]
	t7, t8, t9, t10, t11 := taus[6], taus[7], taus[8], taus[9], taus[10]
	c = ten.New(3, 3, 3, 3, 3, 3)
	I := ten.Eye(3)
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					for p := 0; p < 3; p++ {
						for q := 0; q < 3; q++ {
							c.Set(t1*(I.At(k, l)*I.At(m, n)*I.At(p, q)+I.At(k, q)*I.At(l, m)*I.At(n, p))+
								t2*(I.At(k, l)*I.At(m, p)*I.At(n, q)+I.At(k, m)*I.At(l, q)*I.At(n, p))+
								t3*I.At(k, l)*I.At(m, q)*I.At(n, p)+
								t4*I.At(k, n)*I.At(l, m)*I.At(p, q)+
								t5*(I.At(k, m)*I.At(l, n)*I.At(p, q)+I.At(k, p)*I.At(l, m)*I.At(n, q))+
								t6*I.At(k, m)*I.At(l, p)*I.At(n, q)+
								t7*I.At(k, n)*I.At(l, p)*I.At(m, q)+
								t8*(I.At(k, p)*I.At(l, q)*I.At(m, n)+I.At(k, q)*I.At(l, n)*I.At(m, p))+
								t9*I.At(k, n)*I.At(l, q)*I.At(m, p)+
								t10*I.At(k, p)*I.At(l, n)*I.At(m, q)+
								t11*I.At(k, q)*I.At(l, p)*I.At(m, n), k, l, m, n, p, q)
						}
					}
				}
			}
		}
	}
	return
}

// FormD forms the fourth-order stiffness tensor D:
//  D[k,l,m,n] = τ·δ[k,l]·δ[m,n] + σ·(δ[k,m]·δ[l,n] + δ[k,n]·δ[l,m])
func FormD(tau, sig float64) (d *ten.Tensor) {
	d = ten.New(3, 3, 3, 3)
	I := ten.Eye(3)
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					d.Set(tau*I.At(k, l)*I.At(m, n)+sig*(I.At(k, m)*I.At(l, n)+I.At(k, n)*I.At(l, m)), k, l, m, n)
				}
			}
		}
	}
	return
}
