// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loss

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// DC implements the Dunham-Came improvements [2] to the Ainley-Mathieson
// system: Reynolds-corrected profile loss with a supersonic-exit penalty,
// chord-over-height secondary loss, and a power-law clearance term
type DC struct {
	bgap float64 // clearance coefficient; 0.47 plain tip, 0.37 shrouded
}

// add model to factory
func init() {
	allocators["dc"] = func() Model { return new(DC) }
}

// Init initialises model
func (o *DC) Init(prms dbf.Params) (err error) {
	o.bgap = 0.47
	for _, p := range prms {
		switch p.N {
		case "bgap":
			o.bgap = p.V
		default:
			return chk.Err("dc: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Name returns the correlation name
func (o *DC) Name() string { return "dc" }

// Calc computes the loss breakdown
func (o *DC) Calc(c *Cascade) (bd Breakdown, err error) {
	if err = check("dc", c); err != nil {
		return
	}

	// profile with Reynolds correction and supersonic-exit penalty
	fre := math.Pow(c.Re/2e5, -0.2)
	yp := ypAMDC(c) * fre
	if c.MaOut > 1 {
		dm := c.MaOut - 1.0
		yp *= 1.0 + 60.0*dm*dm
	}

	// secondary
	a1, a2, _ := frame(c)
	_, Z := liftpar(a1, a2)
	ys := 0.0334 * (c.Chord / c.Height) * (math.Cos(a2) / math.Cos(a1)) * Z * fre

	// tip clearance
	var yk float64
	if c.Gap > 0 {
		yk = o.bgap * (c.Chord / c.Height) * math.Pow(c.Gap/c.Chord, 0.78) * Z
	}

	// trailing-edge factor applies to profile and secondary only
	χ := teFactor(c)
	bd.Profile = yp * χ
	bd.Secondary = ys * χ
	bd.Clearance = yk
	bd.TrailingEdge = 0 // included through χ
	bd.Total = bd.Profile + bd.Secondary + bd.Clearance
	return
}
