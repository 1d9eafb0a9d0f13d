// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meanline

import (
	"math"

	"github.com/ango12138/AxialOpt/mdl/loss"
	"github.com/ango12138/AxialOpt/prop"
)

// solveCascade closes one blade row: the inlet station comes from the
// previous row (or the machine inlet), the outlet station from the reduced
// velocity, the outlet flow angle and the prescribed exit entropy. The exit
// entropy is a design variable precisely so that the loss-versus-state
// coupling stays a single forward evaluation; the loss correlation is then
// scored as a consistency residual.
//
//  Input:
//   i      -- cascade index (0-based; odd indices are rotors)
//   in     -- inlet static state
//   vIn    -- inlet absolute velocity magnitude [m/s]
//   angIn  -- inlet absolute flow angle [rad]
//   dv     -- decoded design variables
//   ω, d   -- angular speed [rad/s] and mean diameter [m]
func (o *Problem) solveCascade(i int, in prop.State, vIn, angIn float64, dv *DesignVars, ω, d float64) (cs *CascadeState, err error) {

	cs = &CascadeState{Index: i, Rotor: i%2 == 1}
	cs.In = in
	cs.VIn = vIn
	cs.AngInAbs = angIn
	cs.VmIn = vIn * math.Cos(angIn)
	cs.RadMean = 0.5 * d
	if cs.VmIn <= 0 {
		return nil, &InfeasibleError{"nonpositive meridional velocity at cascade inlet"}
	}

	// inlet row-frame state
	gas := o.Gas
	if cs.Rotor {
		cs.U = 0.5 * ω * d
		wθ := vIn*math.Sin(angIn) - cs.U
		wm := cs.VmIn
		cs.WIn = math.Hypot(wm, wθ)
		cs.AngIn = math.Atan2(wθ, wm)
	} else {
		cs.WIn = vIn
		cs.AngIn = angIn
	}
	h0relIn := in.H + 0.5*cs.WIn*cs.WIn
	cs.In0Rel, err = gas.State(prop.HS, h0relIn, in.S)
	if err != nil {
		return nil, err
	}
	h0absIn := in.H + 0.5*vIn*vIn
	cs.In0, err = gas.State(prop.HS, h0absIn, in.S)
	if err != nil {
		return nil, err
	}

	// outlet station: reduced velocity, prescribed angle and entropy;
	// rothalpy (relative stagnation enthalpy at constant mean radius) is
	// conserved across the row
	cs.WOut = dv.W[i] * o.V0
	cs.AngOut = dv.Beta[i] * math.Pi / 180.0
	sOut := dv.SR[i] * o.In0.S
	if sOut < in.S-1e-9*math.Abs(in.S) {
		return nil, &InfeasibleError{"prescribed exit entropy decreases along the flow path"}
	}
	hOut := h0relIn - 0.5*cs.WOut*cs.WOut
	if hOut <= 0 {
		return nil, &InfeasibleError{"outlet velocity exceeds the available enthalpy"}
	}
	cs.Out, err = gas.State(prop.HS, hOut, sOut)
	if err != nil {
		return nil, err
	}
	cs.Out0Rel, err = gas.State(prop.HS, h0relIn, sOut)
	if err != nil {
		return nil, err
	}
	cs.VmOut = cs.WOut * math.Cos(cs.AngOut)

	// absolute outlet state
	if cs.Rotor {
		wθ := cs.WOut * math.Sin(cs.AngOut)
		vθ := wθ + cs.U
		cs.VOut = math.Hypot(cs.VmOut, vθ)
		cs.AngOutAbs = math.Atan2(vθ, cs.VmOut)
	} else {
		cs.VOut = cs.WOut
		cs.AngOutAbs = cs.AngOut
	}
	cs.Out0, err = gas.State(prop.HS, hOut+0.5*cs.VOut*cs.VOut, sOut)
	if err != nil {
		return nil, err
	}

	// annulus geometry from continuity through π·d·H
	cs.HeightIn = o.Mdot / (in.D * cs.VmIn * math.Pi * d)
	cs.HeightOut = o.Mdot / (cs.Out.D * cs.VmOut * math.Pi * d)
	cs.Height = 0.5 * (cs.HeightIn + cs.HeightOut)
	if cs.HeightOut >= d {
		return nil, &InfeasibleError{"blade height exceeds the mean diameter"}
	}
	cs.Chord = cs.Height / dv.AR[i]
	cs.Pitch = dv.SC[i] * cs.Chord
	cs.Opening = cs.Pitch * math.Cos(cs.AngOut)
	stagger := 0.5 * (math.Abs(cs.AngIn) + math.Abs(cs.AngOut))
	cs.AxialChord = cs.Chord * math.Cos(stagger)
	cs.Flare = math.Atan2(cs.HeightOut-cs.HeightIn, 2.0*cs.AxialChord)
	cs.RadHub = cs.RadMean - 0.5*cs.HeightOut
	cs.RadTip = cs.RadMean + 0.5*cs.HeightOut
	if cs.RadHub <= 0 {
		return nil, &InfeasibleError{"hub radius vanished"}
	}
	cs.Rht = cs.RadHub / cs.RadTip
	cs.Nblades = int(math.Round(math.Pi * d / cs.Pitch))
	cs.TMax = o.Sim.Trb.TmaxRatio * cs.Chord
	cs.TTrail = o.Sim.Trb.TteRatio * cs.Opening
	if cs.Rotor {
		cs.Gap = o.Sim.Trb.Gap
	}

	// dimensionless groups
	cs.MaIn = cs.WIn / cs.In.A
	cs.MaOut = cs.WOut / cs.Out.A
	rhtIn := (cs.RadMean - 0.5*cs.HeightIn) / (cs.RadMean + 0.5*cs.HeightIn)
	cs.MaInHub = cs.MaIn * hubMachFactor(cs.Rotor, rhtIn)
	cs.Re = cs.Out.D * cs.WOut * cs.Chord / cs.Out.Mu

	// loss correlation as a consistency score
	lc := loss.Cascade{
		AngIn: cs.AngIn, AngOut: cs.AngOut,
		MaIn: cs.MaIn, MaOut: cs.MaOut, MaInHub: cs.MaInHub, Re: cs.Re,
		QIn: cs.In0Rel.P - cs.In.P, QOut: cs.Out0Rel.P - cs.Out.P,
		KEOut: 0.5 * cs.Out.D * cs.WOut * cs.WOut,
		Chord: cs.Chord, Pitch: cs.Pitch, Opening: cs.Opening, Height: cs.Height,
		RadHub: cs.RadHub, RadTip: cs.RadTip,
		TMax: cs.TMax, TTrail: cs.TTrail, Gap: cs.Gap, Rotor: cs.Rotor,
	}
	cs.Loss, err = o.Loss.Calc(&lc)
	if err != nil {
		return nil, err
	}
	st := &loss.Stations{In0: cs.In0Rel, Out: cs.Out, Out0: cs.Out0Rel, W: cs.WOut}
	cs.CoeffPred, err = loss.Convert(loss.P0, o.Kind, cs.Loss.Total, st, gas)
	if err != nil {
		return nil, err
	}
	cs.CoeffMeas, err = loss.Measured(o.Kind, st, gas)
	if err != nil {
		return nil, err
	}
	if math.Abs(cs.CoeffPred) > 1e-12 {
		cs.Residual = (cs.CoeffPred - cs.CoeffMeas) / cs.CoeffPred
	} else {
		cs.Residual = cs.CoeffPred - cs.CoeffMeas
	}
	cs.Sgen = sOut - in.S
	return
}

// hubMachFactor is a fit of the Kacker-Okapuu hub-to-mean inlet Mach chart;
// rotors see a stronger radial gradient than stators
func hubMachFactor(rotor bool, rht float64) float64 {
	if rht > 1 {
		rht = 1
	}
	if rht < 0.3 {
		rht = 0.3
	}
	if rotor {
		return 1.0 + 0.8*(1.0-rht)
	}
	return 1.0 + 0.3*(1.0-rht)
}
