// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffuser

import (
	"github.com/ango12138/AxialOpt/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// No implements the passthrough model: the exit state equals the last cascade
// outlet and no kinetic energy is recovered
type No struct{}

// add model to factory
func init() {
	allocators["no"] = func() Model { return new(No) }
}

// Init initialises model
func (o *No) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("no: model takes no parameters")
	}
	return
}

// Name returns the model name
func (o *No) Name() string { return "no" }

// Calc returns the inlet state unchanged
func (o *No) Calc(in prop.State, vel, angle, mdot, rad, height float64, gas prop.Oracle) (res Result, err error) {
	res.Exit = in
	res.ExitVelocity = vel
	res.Recovery = 0
	res.MaIn = vel / in.A
	return
}
