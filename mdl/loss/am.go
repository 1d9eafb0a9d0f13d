// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loss

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// AM implements the Ainley-Mathieson loss system [1]: profile loss from the
// nozzle/impulse charts, secondary loss through the λ chart, tip-clearance
// loss proportional to gap over height, and the whole sum scaled by the
// trailing-edge-thickness factor
type AM struct {
	bgap float64 // clearance coefficient; 0.5 plain tip, 0.25 shrouded
}

// add model to factory
func init() {
	allocators["am"] = func() Model { return new(AM) }
}

// Init initialises model
func (o *AM) Init(prms dbf.Params) (err error) {
	o.bgap = 0.5
	for _, p := range prms {
		switch p.N {
		case "bgap":
			o.bgap = p.V
		default:
			return chk.Err("am: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Name returns the correlation name
func (o *AM) Name() string { return "am" }

// Calc computes the loss breakdown
func (o *AM) Calc(c *Cascade) (bd Breakdown, err error) {
	if err = check("am", c); err != nil {
		return
	}

	// profile
	yp := ypAMDC(c)

	// secondary: λ chart with flow acceleration and annulus ratio
	a1, a2, _ := frame(c)
	_, Z := liftpar(a1, a2)
	rht := c.RadHub / c.RadTip
	acc := math.Cos(a2) / math.Cos(a1)
	ys := secondaryLambda(acc*acc/(1.0+rht)) * Z

	// tip clearance
	var yk float64
	if c.Gap > 0 {
		yk = o.bgap * (c.Gap / c.Height) * Z
	}

	// trailing-edge factor scales the full sum
	χ := teFactor(c)
	bd.Profile = yp * χ
	bd.Secondary = ys * χ
	bd.Clearance = yk * χ
	bd.TrailingEdge = 0 // included through χ in the other components
	bd.Total = bd.Profile + bd.Secondary + bd.Clearance
	return
}
