// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffuser implements exhaust diffuser models chained after the last
// turbine cascade. Three models are available:
//   "no"         -- identity passthrough, zero recovery
//   "isentropic" -- closed-form area-ratio recovery without friction
//   "1d"         -- one-dimensional annular channel flow with wall friction
package diffuser

import (
	"github.com/ango12138/AxialOpt/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Result holds the outcome of a diffuser computation
type Result struct {
	Exit         prop.State // exit static state
	ExitVelocity float64    // exit velocity magnitude [m/s]
	Recovery     float64    // static pressure recovery (p_exit-p_in)/(p0_in-p_in)
	MaIn         float64    // inlet Mach number
}

// Model defines the interface for diffuser models
//  Calc input:
//   in     -- static state at the last cascade exit
//   vel    -- absolute velocity magnitude at the inlet [m/s]
//   angle  -- absolute flow angle at the inlet, from meridional [rad]
//   mdot   -- mass flow [kg/s]
//   rad    -- mean radius of the inlet annulus [m]
//   height -- inlet annulus (blade) height [m]
type Model interface {
	Init(prms dbf.Params) error
	Name() string
	Calc(in prop.State, vel, angle, mdot, rad, height float64, gas prop.Oracle) (Result, error)
}

// DomainError indicates that a model was evaluated outside its validated
// range; e.g. the 1D model with a two-phase inlet state
type DomainError struct {
	Model  string // model name
	Reason string // what is out of range
}

// Error returns the error message
func (e *DomainError) Error() string {
	return io.Sf("diffuser model %q evaluated outside validity: %s", e.Model, e.Reason)
}

// New returns a new diffuser model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'diffuser' database", name)
	}
	return allocator(), nil
}

// allocators holds all available diffuser models; name => allocator
var allocators = map[string]func() Model{}
