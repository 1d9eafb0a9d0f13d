// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meanline

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// DesignVars holds the decoded design variable vector. The canonical layout
// is [ws, ds, vin, W..., Beta..., AR..., SC..., SR...] with each per-cascade
// group of length 2·nstages; total length 3 + 5·(2·nstages). Angles are in
// degrees, as configured.
type DesignVars struct {
	Ws   float64   // specific speed
	Ds   float64   // specific diameter
	Vin  float64   // inlet reduced velocity v1/v0
	W    []float64 // outlet reduced velocity per cascade
	Beta []float64 // outlet relative flow angle per cascade [deg]
	AR   []float64 // aspect ratio (height over chord) per cascade
	SC   []float64 // pitch-to-chord ratio per cascade
	SR   []float64 // exit entropy ratio s_out/s_in per cascade
}

// Decode fills this structure from the flat vector; the vector length must
// match the number of cascades exactly
func (o *DesignVars) Decode(x []float64, ncascades int) error {
	if len(x) != 3+5*ncascades {
		return chk.Err("design vector has length %d; want %d for %d cascades", len(x), 3+5*ncascades, ncascades)
	}
	o.Ws, o.Ds, o.Vin = x[0], x[1], x[2]
	grab := func(k int) []float64 {
		return x[3+k*ncascades : 3+(k+1)*ncascades]
	}
	o.W = grab(0)
	o.Beta = grab(1)
	o.AR = grab(2)
	o.SC = grab(3)
	o.SR = grab(4)
	return nil
}

// Encode assembles the flat vector in canonical layout
func (o *DesignVars) Encode() []float64 {
	x := make([]float64, 0, 3+5*len(o.W))
	x = append(x, o.Ws, o.Ds, o.Vin)
	x = append(x, o.W...)
	x = append(x, o.Beta...)
	x = append(x, o.AR...)
	x = append(x, o.SC...)
	x = append(x, o.SR...)
	return x
}

// Check rejects non-physical trial points before any property evaluation.
// Gradient-based drivers probe such points during line search, so violations
// yield an InfeasibleError (penalised), not a panic.
func (o *DesignVars) Check() error {
	if o.Ws <= 0 || o.Ds <= 0 || o.Vin <= 0 {
		return &InfeasibleError{"nonpositive specific speed, diameter or inlet velocity"}
	}
	for i := range o.W {
		rotor := i%2 == 1
		switch {
		case o.W[i] <= 0:
			return &InfeasibleError{"nonpositive reduced velocity"}
		case o.AR[i] <= 0 || o.SC[i] <= 0:
			return &InfeasibleError{"nonpositive aspect or pitch-to-chord ratio"}
		case o.SR[i] < 1:
			return &InfeasibleError{"exit entropy ratio below unity"}
		case math.Abs(o.Beta[i]) >= 90:
			return &InfeasibleError{"outlet flow angle beyond tangential"}
		case rotor && o.Beta[i] >= 0:
			return &InfeasibleError{"rotor outlet angle must be negative"}
		case !rotor && o.Beta[i] <= 0:
			return &InfeasibleError{"stator outlet angle must be positive"}
		}
	}
	return nil
}
