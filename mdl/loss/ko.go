// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loss

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// KO implements the Kacker-Okapuu system [3]: AMDC profile loss re-scaled with
// compressibility factors and a hub shock term, aspect-ratio-corrected
// secondary loss, a kinetic-energy trailing-edge term and the Dunham-Came
// clearance form with a 0.37 coefficient
type KO struct {
	bgap float64 // clearance coefficient
}

// add model to factory
func init() {
	allocators["ko"] = func() Model { return new(KO) }
}

// Init initialises model
func (o *KO) Init(prms dbf.Params) (err error) {
	o.bgap = 0.37
	for _, p := range prms {
		switch p.N {
		case "bgap":
			o.bgap = p.V
		default:
			return chk.Err("ko: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Name returns the correlation name
func (o *KO) Name() string { return "ko" }

// Calc computes the loss breakdown
func (o *KO) Calc(c *Cascade) (bd Breakdown, err error) {
	if err = check("ko", c); err != nil {
		return
	}
	a1, a2, q := frame(c)

	// compressibility factors
	k1 := 1.0
	if c.MaOut > 0.2 {
		k1 = 1.0 - 1.25*(c.MaOut-0.2)
		if k1 < 0.1 {
			k1 = 0.1
		}
	}
	k2 := 0.0
	if c.MaOut > 0 {
		k2 = c.MaIn / c.MaOut
		k2 *= k2
	}
	kp := 1.0 - k2*(1.0-k1)

	// hub shock loss
	var yshock float64
	if c.MaInHub > 0.4 {
		rht := c.RadHub / c.RadTip
		yshock = 0.75 * math.Pow(c.MaInHub-0.4, 1.75) * rht * c.QIn / c.QOut
	}

	// profile: 2/3 of AMDC with the 0.914 experience factor
	yp := 0.914 * (2.0/3.0*ypAMDC(c)*kp + yshock)

	// Reynolds factor (piecewise)
	fre := 1.0
	switch {
	case c.Re < 2e5:
		fre = math.Pow(c.Re/2e5, -0.4)
	case c.Re > 1e6:
		fre = math.Pow(c.Re/1e6, -0.2)
	}

	// secondary with aspect-ratio and compressibility corrections
	hc := c.Height / c.Chord
	var far float64
	if hc < 2 {
		far = (1.0 - 0.25*math.Sqrt(2.0-hc)) / hc
	} else {
		far = 1.0 / hc
	}
	k3 := 1.0 / (hc * hc)
	ks := 1.0 - k3*(1.0-kp)
	_, Z := liftpar(a1, a2)
	ys := 1.2 * ks * 0.0334 * far * (math.Cos(a2) / math.Cos(a1)) * Z

	// trailing edge via the kinetic-energy coefficient
	yte := teEnergy(c, q) * c.KEOut / c.QOut

	// tip clearance
	var yk float64
	if c.Gap > 0 {
		yk = o.bgap * (c.Chord / c.Height) * math.Pow(c.Gap/c.Chord, 0.78) * Z
	}

	bd.Profile = yp * fre
	bd.Shock = 0.914 * yshock * fre // already contained in Profile; kept for the breakdown
	bd.Secondary = ys
	bd.TrailingEdge = yte
	bd.Clearance = yk
	bd.Total = bd.Profile + bd.Secondary + bd.TrailingEdge + bd.Clearance
	return
}
