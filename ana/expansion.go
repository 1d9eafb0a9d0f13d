// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the property
// oracle and the mean-line reference conditions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// IsenExpansion computes the closed-form solution of an isentropic expansion
// of a calorically perfect gas from an inlet stagnation state down to a given
// static pressure; e.g. the ideal nozzle feeding a turbine stage
type IsenExpansion struct {

	// input
	R   float64 // specific gas constant [J/(kg·K)]
	γ   float64 // heat capacity ratio
	T01 float64 // inlet stagnation temperature [K]
	P01 float64 // inlet stagnation pressure [Pa]
	Pb  float64 // back (exit static) pressure [Pa]

	// derived
	cp float64 // isobaric specific heat [J/(kg·K)]
}

// Init initialises this structure
func (o *IsenExpansion) Init(prms dbf.Params) {

	// default values: R125 one-stage test case
	o.R = 69.28
	o.γ = 1.10
	o.T01 = 428.15
	o.P01 = 36.18e5
	o.Pb = 15.69e5

	// parameters
	for _, p := range prms {
		switch p.N {
		case "R":
			o.R = p.V
		case "gam":
			o.γ = p.V
		case "T01":
			o.T01 = p.V
		case "P01":
			o.P01 = p.V
		case "Pb":
			o.Pb = p.V
		}
	}

	// derived
	o.cp = o.γ * o.R / (o.γ - 1.0)
}

// Texit returns the static temperature at the end of the expansion
func (o *IsenExpansion) Texit() float64 {
	return o.T01 * math.Pow(o.Pb/o.P01, (o.γ-1.0)/o.γ)
}

// Dhs returns the total-to-static isentropic enthalpy drop
func (o *IsenExpansion) Dhs() float64 {
	return o.cp * (o.T01 - o.Texit())
}

// Vspouting returns the spouting velocity √(2Δh_s)
func (o *IsenExpansion) Vspouting() float64 {
	return math.Sqrt(2.0 * o.Dhs())
}

// Dexit returns the density at the end of the expansion
func (o *IsenExpansion) Dexit() float64 {
	return o.Pb / (o.R * o.Texit())
}

// Mdot returns the mass flow that delivers a given isentropic power [W]
func (o *IsenExpansion) Mdot(power float64) float64 {
	return power / o.Dhs()
}

// MachExit returns the Mach number of a full ideal expansion to Pb
func (o *IsenExpansion) MachExit() float64 {
	a := math.Sqrt(o.γ * o.R * o.Texit())
	return o.Vspouting() / a
}
