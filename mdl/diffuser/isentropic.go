// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffuser

import (
	"github.com/ango12138/AxialOpt/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Isentropic implements the frictionless closed-form model: the velocity
// scales with the inverse area ratio and the exit state follows from the
// conserved stagnation enthalpy at constant entropy
type Isentropic struct {
	ar float64 // area ratio A_exit/A_in
}

// add model to factory
func init() {
	allocators["isentropic"] = func() Model { return new(Isentropic) }
}

// Init initialises model
func (o *Isentropic) Init(prms dbf.Params) (err error) {
	o.ar = 2.0
	for _, p := range prms {
		switch p.N {
		case "ar":
			o.ar = p.V
		default:
			return chk.Err("isentropic: parameter named %q is incorrect", p.N)
		}
	}
	if o.ar < 1 {
		return chk.Err("isentropic: area ratio must be ≥ 1")
	}
	return
}

// Name returns the model name
func (o *Isentropic) Name() string { return "isentropic" }

// Calc computes the exit state
func (o *Isentropic) Calc(in prop.State, vel, angle, mdot, rad, height float64, gas prop.Oracle) (res Result, err error) {
	h0 := in.H + 0.5*vel*vel
	vout := vel / o.ar
	res.Exit, err = gas.State(prop.HS, h0-0.5*vout*vout, in.S)
	if err != nil {
		return
	}
	stag, err := gas.State(prop.HS, h0, in.S)
	if err != nil {
		return
	}
	res.ExitVelocity = vout
	res.MaIn = vel / in.A
	if q := stag.P - in.P; q > 0 {
		res.Recovery = (res.Exit.P - in.P) / q
	}
	return
}
