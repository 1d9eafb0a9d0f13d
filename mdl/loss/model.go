// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package loss implements empirical cascade loss correlations for axial
// turbines. Three correlation families are available:
//   "am" -- Ainley and Mathieson (1951)
//   "dc" -- Dunham and Came (1970)
//   "ko" -- Kacker and Okapuu (1982)
// All models report their components in the stagnation-pressure-loss (Y)
// definition; package coeff converts between definitions.
//  References:
//   [1] Ainley DG and Mathieson GCR (1951) A method of performance estimation
//       for axial-flow turbines, ARC R&M 2974
//   [2] Dunham J and Came PM (1970) Improvements to the Ainley-Mathieson method
//       of turbine performance prediction, J. Eng. Power 92(3), 252-256
//   [3] Kacker SC and Okapuu U (1982) A mean line prediction method for axial
//       flow turbine efficiency, J. Eng. Power 104(1), 111-119
package loss

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Cascade holds the geometry and flow quantities of one blade row as needed
// by the loss correlations. Angles are in radians, measured from the
// meridional (axial) direction in the frame of the row: absolute frame for
// stators, relative frame for rotors. Stator outlet angles are positive and
// rotor outlet angles negative; the correlations are sign-sensitive and rely
// on this convention.
type Cascade struct {

	// flow
	AngIn   float64 // inlet flow angle [rad]
	AngOut  float64 // outlet flow angle [rad]
	MaIn    float64 // inlet Mach number (row frame)
	MaOut   float64 // outlet Mach number (row frame)
	MaInHub float64 // inlet Mach number at the hub radius
	Re      float64 // Reynolds number based on chord and outlet state
	QIn     float64 // inlet dynamic head p0rel-p [Pa]
	QOut    float64 // outlet dynamic head p0rel-p [Pa]
	KEOut   float64 // outlet kinetic-energy head ρw²/2 [Pa]

	// geometry
	Chord   float64 // blade chord [m]
	Pitch   float64 // blade pitch [m]
	Opening float64 // cascade opening (throat) [m]
	Height  float64 // mean blade height [m]
	RadHub  float64 // hub radius [m]
	RadTip  float64 // tip radius [m]
	TMax    float64 // maximum blade thickness [m]
	TTrail  float64 // trailing-edge thickness [m]
	Gap     float64 // tip clearance gap [m]; 0 => shrouded/no clearance loss
	Rotor   bool    // rotating row
}

// Breakdown holds the loss components of one cascade, all in the
// stagnation-pressure-loss (Y) coefficient definition
type Breakdown struct {
	Profile      float64 // profile loss
	Secondary    float64 // secondary flow loss
	TrailingEdge float64 // trailing-edge loss
	Clearance    float64 // tip-clearance loss
	Shock        float64 // hub shock loss (ko only)
	Total        float64 // sum under the correlation's own weighting rules
}

// Model defines the interface for cascade loss correlations
type Model interface {
	Init(prms dbf.Params) error            // initialises model
	Name() string                        // returns the correlation name
	Calc(c *Cascade) (Breakdown, error)  // computes the loss breakdown
}

// DomainError indicates that a correlation was evaluated outside its
// validated range
type DomainError struct {
	Model  string // correlation name
	Reason string // what is out of range
}

// Error returns the error message
func (e *DomainError) Error() string {
	return io.Sf("loss correlation %q evaluated outside validity: %s", e.Model, e.Reason)
}

// New returns a new loss correlation model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("correlation %q is not available in 'loss' database", name)
	}
	return allocator(), nil
}

// allocators holds all available loss correlations; name => allocator
var allocators = map[string]func() Model{}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// check rejects degenerate cascade data common to all correlations
func check(name string, c *Cascade) error {
	switch {
	case c.Chord <= 0 || c.Pitch <= 0 || c.Height <= 0:
		return &DomainError{name, "nonpositive chord, pitch or height"}
	case c.Opening <= 0:
		return &DomainError{name, "nonpositive opening"}
	case c.AngOut == 0:
		return &DomainError{name, "zero outlet flow angle"}
	case c.Re <= 0:
		return &DomainError{name, "nonpositive Reynolds number"}
	case c.QOut <= 0:
		return &DomainError{name, "nonpositive outlet dynamic head"}
	}
	return nil
}

// frame returns the cascade angles in the chart convention: a2 is the outlet
// angle magnitude and q = a1chart/a2 is the nozzle-to-impulse interpolation
// ratio (q=0: axial inlet "nozzle" blade; q=1: symmetric "impulse" blade).
// a1 is the signed inlet angle in a frame where the outlet side is negative,
// so that turning across the axial direction gives q > 0.
func frame(c *Cascade) (a1, a2, q float64) {
	a2 = math.Abs(c.AngOut)
	a1 = c.AngIn
	if c.AngOut > 0 {
		a1 = -c.AngIn
	}
	q = a1 / a2
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}
	return
}

// liftpar computes the Ainley-Mathieson lift parameter
//   Z = (CL/(s/c))² cos²(a2) / cos³(am)
// from the inlet/outlet angles in the chart frame
func liftpar(a1, a2 float64) (am, Z float64) {
	am = math.Atan(0.5 * (math.Tan(a2) - math.Tan(a1)))
	clsc := 2.0 * (math.Tan(a2) + math.Tan(a1)) * math.Cos(am)
	Z = clsc * clsc * math.Cos(a2) * math.Cos(a2) / math.Pow(math.Cos(am), 3.0)
	return
}

// chart fits //////////////////////////////////////////////////////////////////////////////////////

// ypNozzle is a fit of the Ainley-Mathieson profile-loss chart for blades
// with axial inlet (nozzle blades); a2 in radians, sc = pitch-to-chord
func ypNozzle(sc, a2 float64) float64 {
	d := a2 * 180.0 / math.Pi
	scOpt := 0.80 - 0.10*(d-60.0)/20.0
	base := 0.018 + 0.025*math.Pow(d/70.0, 4.0)
	x := sc - scOpt
	return base * (1.0 + 2.5*x*x)
}

// ypImpulse is a fit of the Ainley-Mathieson profile-loss chart for impulse
// blades (inlet angle equal and opposite to the outlet angle)
func ypImpulse(sc, a2 float64) float64 {
	d := a2 * 180.0 / math.Pi
	scOpt := 0.62 - 0.07*(d-60.0)/20.0
	base := 0.060 + 0.080*math.Pow(d/65.0, 4.0)
	x := sc - scOpt
	return base * (1.0 + 3.2*x*x)
}

// ypAMDC interpolates the two profile-loss charts between the nozzle (q=0)
// and impulse (q=1) limits and applies the maximum-thickness correction,
// following the original Ainley-Mathieson rule
func ypAMDC(c *Cascade) float64 {
	_, a2, q := frame(c)
	sc := c.Pitch / c.Chord
	yn := ypNozzle(sc, a2)
	yi := ypImpulse(sc, a2)
	tc := c.TMax / c.Chord
	if tc < 0.15 {
		tc = 0.15
	}
	if tc > 0.25 {
		tc = 0.25
	}
	return (yn + q*q*(yi-yn)) * math.Pow(tc/0.2, q)
}

// teFactor is a fit of the Ainley-Mathieson trailing-edge correction chart:
// a multiplier on the summed losses, unity at t_te/s = 0.02
func teFactor(c *Cascade) float64 {
	ts := c.TTrail / c.Pitch
	f := 1.0 + 4.2*(ts-0.02)
	if f < 0.9 {
		f = 0.9
	}
	return f
}

// teEnergy is a fit of the Kacker-Okapuu trailing-edge kinetic-energy
// coefficient Δφ²te chart, interpolated with the same q² rule as the
// profile loss; x = t_te/o
func teEnergy(c *Cascade, q float64) float64 {
	x := c.TTrail / c.Opening
	n := 0.15*x + 0.40*x*x // axial entry nozzle
	i := 0.30*x + 0.80*x*x // impulse
	return n + q*q*(i-n)
}

// secondaryLambda is a fit of the Ainley-Mathieson λ chart for secondary
// losses; x is the squared area-acceleration parameter over (1 + r_ht)
func secondaryLambda(x float64) float64 {
	if x < 0 {
		x = 0
	}
	λ := 0.0055 + 0.078*x
	if λ > 0.035 {
		λ = 0.035
	}
	return λ
}
