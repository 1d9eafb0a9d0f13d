// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meanline

import (
	"github.com/ango12138/AxialOpt/mdl/diffuser"
	"github.com/ango12138/AxialOpt/mdl/loss"
	"github.com/ango12138/AxialOpt/prop"
	"github.com/cpmech/gosl/io"
)

// CascadeState holds the complete solution of one blade row. Values are set
// once by the evaluation pipeline and never mutated afterwards; the owning
// Solution is the only holder.
//
// Angle and velocity conventions: the tangential direction is positive in
// the blade speed direction; stator outlet swirl is positive and rotor
// outlet relative swirl negative. Row-frame quantities (W, Ang) equal the
// absolute ones for stators.
type CascadeState struct {

	// identification
	Index int  // position along the flow path, 0-based
	Rotor bool // rotating row

	// thermodynamic states
	In      prop.State // inlet static state
	Out     prop.State // outlet static state
	In0     prop.State // inlet absolute stagnation state
	Out0    prop.State // outlet absolute stagnation state
	In0Rel  prop.State // inlet row-frame stagnation state
	Out0Rel prop.State // outlet row-frame stagnation state

	// velocity triangle
	U         float64 // blade speed [m/s]; 0 for stators
	VIn, VOut float64 // absolute velocity magnitudes [m/s]
	WIn, WOut float64 // row-frame velocity magnitudes [m/s]
	VmIn      float64 // inlet meridional velocity [m/s]
	VmOut     float64 // outlet meridional velocity [m/s]
	AngIn     float64 // inlet row-frame flow angle [rad]
	AngOut    float64 // outlet row-frame flow angle [rad]
	AngInAbs  float64 // inlet absolute flow angle [rad]
	AngOutAbs float64 // outlet absolute flow angle [rad]

	// geometry
	HeightIn   float64 // inlet blade height [m]
	HeightOut  float64 // outlet blade height [m]
	Height     float64 // mean blade height [m]
	Chord      float64 // chord [m]
	AxialChord float64 // axial chord [m]
	Pitch      float64 // pitch [m]
	Opening    float64 // opening (throat) [m]
	Flare      float64 // flaring angle [rad]
	RadMean    float64 // mean radius [m]
	RadHub     float64 // hub radius at outlet [m]
	RadTip     float64 // tip radius at outlet [m]
	Rht        float64 // hub-to-tip radius ratio at outlet
	Nblades    int     // number of blades
	TMax       float64 // maximum blade thickness [m]
	TTrail     float64 // trailing-edge thickness [m]
	Gap        float64 // tip clearance gap [m]; 0 for shrouded stators

	// dimensionless
	MaIn    float64 // inlet row-frame Mach number
	MaOut   float64 // outlet row-frame Mach number
	MaInHub float64 // inlet row-frame Mach number at the hub
	Re      float64 // Reynolds number (chord, outlet state)

	// losses
	Loss      loss.Breakdown // correlation prediction, Y definition
	CoeffPred float64        // predicted coefficient in the configured definition
	CoeffMeas float64        // coefficient implied by the solved states
	Residual  float64        // loss consistency residual (equality constraint)
	Sgen      float64        // entropy generated across the row [J/(kg·K)]
}

// Solution holds one complete design-point solution of the turbine
type Solution struct {

	// flow path
	Cascades []*CascadeState // all blade rows in flow order
	Reaction []float64       // degree of reaction per stage

	// machine
	Omega    float64 // angular speed [rad/s]
	RPM      float64 // shaft speed [rev/min]
	DiamMean float64 // mean diameter [m]
	Mdot     float64 // mass flow [kg/s]

	// reference conditions
	Dhs float64 // total-to-static isentropic enthalpy drop [J/kg]
	V0  float64 // spouting velocity [m/s]

	// exhaust
	Diffuser     diffuser.Result // diffuser outcome (passthrough when "no")
	Exit         prop.State      // machine exit static state
	ExitVelocity float64         // machine exit velocity [m/s]

	// performance
	Power float64 // shaft power [W]
	EtaTS float64 // total-to-static efficiency
	EtaTT float64 // total-to-total efficiency
}

// InfeasibleError marks a trial design that cannot be evaluated to a
// physical solution; the evaluator converts it to a finite penalty
type InfeasibleError struct {
	Reason string
}

// Error returns the error message
func (e *InfeasibleError) Error() string {
	return io.Sf("infeasible design point: %s", e.Reason)
}
