// Copyright 2017 The Tardigrade Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/UCBoulder/tardigrade-micromorphic-element/ten"
)

func Test_strain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strain01. identity deformation gives zero strains")

	emacro, emicro := StrainMeasures(ten.Eye(3), ten.Eye(3))
	chk.Vector(tst, "Emacro", 1e-17, emacro.V, make([]float64, 9))
	chk.Vector(tst, "Emicro", 1e-17, emicro.V, make([]float64, 9))
}

func Test_strain02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strain02. values, scaling and superposition")

	c := ten.New(3, 3)
	phi := ten.New(3, 3)
	copy(c.V, []float64{1.2, 0.1, 0.0, 0.1, 0.9, 0.2, 0.0, 0.2, 1.3})
	copy(phi.V, []float64{1.1, 0.2, -0.1, 0.0, 0.8, 0.1, 0.3, 0.0, 1.0})

	emacro, emicro := StrainMeasures(c, phi)
	chk.Vector(tst, "Emacro", 1e-15, emacro.V, []float64{0.1, 0.05, 0.0, 0.05, -0.05, 0.1, 0.0, 0.1, 0.15})
	chk.Vector(tst, "Emicro", 1e-15, emicro.V, []float64{0.1, 0.2, -0.1, 0.0, -0.2, 0.1, 0.3, 0.0, 0.0})

	// strain differences are linear in the deformation differences
	dc := ten.New(3, 3)
	dphi := ten.New(3, 3)
	copy(dc.V, []float64{0.02, -0.04, 0.06, 0.0, 0.08, -0.02, 0.04, 0.0, -0.06})
	copy(dphi.V, []float64{-0.01, 0.03, 0.0, 0.05, -0.03, 0.01, 0.0, 0.07, 0.02})

	c2 := c.GetCopy()
	phi2 := phi.GetCopy()
	for i := 0; i < 9; i++ {
		c2.V[i] += dc.V[i]
		phi2.V[i] += dphi.V[i]
	}
	emacro2, emicro2 := StrainMeasures(c2, phi2)
	for i := 0; i < 9; i++ {
		chk.Scalar(tst, "ΔEmacro", 1e-15, emacro2.V[i]-emacro.V[i], 0.5*dc.V[i])
		chk.Scalar(tst, "ΔEmicro", 1e-15, emicro2.V[i]-emicro.V[i], dphi.V[i])
	}

	// superposition: the measures of a convex combination are the combination
	// of the measures
	cmid := ten.New(3, 3)
	phimid := ten.New(3, 3)
	for i := 0; i < 9; i++ {
		cmid.V[i] = 0.3*c.V[i] + 0.7*c2.V[i]
		phimid.V[i] = 0.3*phi.V[i] + 0.7*phi2.V[i]
	}
	emacromid, emicromid := StrainMeasures(cmid, phimid)
	for i := 0; i < 9; i++ {
		chk.Scalar(tst, "Emacro combo", 1e-15, emacromid.V[i], 0.3*emacro.V[i]+0.7*emacro2.V[i])
		chk.Scalar(tst, "Emicro combo", 1e-15, emicromid.V[i], 0.3*emicro.V[i]+0.7*emicro2.V[i])
	}
}
