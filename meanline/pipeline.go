// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package meanline implements the mean-line evaluation model of multi-stage
// axial turbines: the map from a design-variable vector to a complete
// thermodynamic and geometric solution across all cascades, plus the
// objective and constraint formulation consumed by the optimization driver
package meanline

import (
	"math"

	"github.com/ango12138/AxialOpt/inp"
	"github.com/ango12138/AxialOpt/mdl/diffuser"
	"github.com/ango12138/AxialOpt/mdl/loss"
	"github.com/ango12138/AxialOpt/prop"
	"github.com/cpmech/gosl/chk"
)

// Problem binds the fixed parameters of one design case: boundary conditions,
// property oracle, model selections and the precomputed reference conditions.
// It is immutable after NewProblem and safe for concurrent Evaluate calls.
type Problem struct {

	// configuration
	Sim  *inp.Simulation // fixed input data
	Gas  prop.Oracle     // property oracle
	Loss loss.Model      // loss correlation
	Kind loss.Kind       // loss coefficient definition
	Dif  diffuser.Model  // diffuser model

	// reference conditions
	In0     prop.State // inlet stagnation state
	OutIsen prop.State // isentropic exit state at (Pout, s_in)
	Dhs     float64    // total-to-static isentropic enthalpy drop [J/kg]
	V0      float64    // spouting velocity [m/s]
	Mdot    float64    // mass flow [kg/s]

	// shaft speed pinning (RPM constraint with min == max)
	rpmPin float64
	pinned bool
}

// NewProblem validates the configuration and precomputes the reference
// conditions; any failure here is a configuration error, fatal before
// optimization starts
func NewProblem(sim *inp.Simulation) (o *Problem, err error) {
	o = &Problem{Sim: sim}
	if err = sim.Validate(); err != nil {
		return nil, err
	}
	o.Gas, err = prop.New(sim.Bcs.Fluid)
	if err != nil {
		return nil, err
	}
	o.Loss, err = loss.New(sim.Trb.Loss)
	if err != nil {
		return nil, err
	}
	if err = o.Loss.Init(nil); err != nil {
		return nil, err
	}
	o.Kind, err = loss.KindByName(sim.Trb.Coeff)
	if err != nil {
		return nil, err
	}
	o.Dif, err = diffuser.New(sim.Dif.Model)
	if err != nil {
		return nil, err
	}
	if err = o.Dif.Init(sim.Dif.Prms); err != nil {
		return nil, err
	}

	// reference conditions
	o.In0, err = o.Gas.State(prop.PT, sim.Bcs.P01, sim.Bcs.T01)
	if err != nil {
		return nil, chk.Err("cannot resolve the inlet stagnation state:\n%v", err)
	}
	o.OutIsen, err = o.Gas.State(prop.PS, sim.Bcs.Pout, o.In0.S)
	if err != nil {
		return nil, chk.Err("cannot resolve the isentropic exit state:\n%v", err)
	}
	o.Dhs = o.In0.H - o.OutIsen.H
	if o.Dhs <= 0 {
		return nil, chk.Err("isentropic enthalpy drop is nonpositive; check boundary conditions")
	}
	o.V0 = math.Sqrt(2.0 * o.Dhs)
	o.Mdot = sim.Bcs.Mdot
	if o.Mdot <= 0 {
		o.Mdot = sim.Bcs.PowerIsen / o.Dhs
	}
	o.rpmPin, o.pinned = sim.Constraints.PinnedRPM()
	return
}

// Evaluate runs the forward pipeline at one design vector. It returns either
// a complete Solution or an error: a configuration error for a malformed
// vector, an InfeasibleError, prop.EvaluationError or model DomainError for
// trial points outside the physical domain. It never panics and holds no
// shared mutable state, so concurrent calls at different vectors are safe.
func (o *Problem) Evaluate(x []float64) (sol *Solution, err error) {

	// decode and reject non-physical points early
	n := o.Sim.Ncascades()
	var dv DesignVars
	if err = dv.Decode(x, n); err != nil {
		return nil, err
	}
	if err = dv.Check(); err != nil {
		return nil, err
	}

	// angular speed and mean diameter from the similarity variables and the
	// isentropic exit volumetric flow
	vdot := o.Mdot / o.OutIsen.D
	ω := dv.Ws * math.Pow(o.Dhs, 0.75) / math.Sqrt(vdot)
	if o.pinned {
		ω = 2.0 * math.Pi * o.rpmPin / 60.0
	}
	d := dv.Ds * math.Sqrt(vdot) / math.Pow(o.Dhs, 0.25)

	sol = &Solution{
		Cascades: make([]*CascadeState, n),
		Reaction: make([]float64, o.Sim.Trb.Nstages),
		Omega:    ω,
		RPM:      ω * 60.0 / (2.0 * math.Pi),
		DiamMean: d,
		Mdot:     o.Mdot,
		Dhs:      o.Dhs,
		V0:       o.V0,
	}

	// machine inlet station
	vIn := dv.Vin * o.V0
	angIn := o.Sim.Bcs.AngIn * math.Pi / 180.0
	h1 := o.In0.H - 0.5*vIn*vIn
	if h1 <= 0 {
		return nil, &InfeasibleError{"inlet velocity exceeds the available enthalpy"}
	}
	in, err := o.Gas.State(prop.HS, h1, o.In0.S)
	if err != nil {
		return nil, err
	}

	// cascade-by-cascade march
	v, ang := vIn, angIn
	for i := 0; i < n; i++ {
		cs, err := o.solveCascade(i, in, v, ang, &dv, ω, d)
		if err != nil {
			return nil, err
		}
		sol.Cascades[i] = cs
		in, v, ang = cs.Out, cs.VOut, cs.AngOutAbs
	}

	// degree of reaction per stage
	for k := 0; k < o.Sim.Trb.Nstages; k++ {
		st, rt := sol.Cascades[2*k], sol.Cascades[2*k+1]
		den := st.In.H - rt.Out.H
		if den <= 0 {
			return nil, &InfeasibleError{"no static enthalpy drop across stage"}
		}
		sol.Reaction[k] = (st.Out.H - rt.Out.H) / den
	}

	// exhaust diffuser
	last := sol.Cascades[n-1]
	sol.Diffuser, err = o.Dif.Calc(last.Out, last.VOut, last.AngOutAbs, o.Mdot, 0.5*d, last.HeightOut, o.Gas)
	if err != nil {
		return nil, err
	}
	sol.Exit = sol.Diffuser.Exit
	sol.ExitVelocity = sol.Diffuser.ExitVelocity

	// performance
	sol.Power = o.Mdot * (o.In0.H - last.Out0.H)
	sol.EtaTS = (o.In0.H - last.Out0.H) / o.Dhs
	isenTT, err := o.Gas.State(prop.PS, last.Out0.P, o.In0.S)
	if err != nil {
		return nil, err
	}
	if den := o.In0.H - isenTT.H; den > 0 {
		sol.EtaTT = (o.In0.H - last.Out0.H) / den
	}
	return sol, nil
}
