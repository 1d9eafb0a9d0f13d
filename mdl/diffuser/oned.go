// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffuser

import (
	"math"

	"github.com/ango12138/AxialOpt/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// OneD implements the one-dimensional annular diffuser model: the meridional
// and tangential momentum, continuity and the Gibbs relation are integrated
// along the channel with wall friction as the entropy source. The channel is
// set by the cant angle (mean line inclination), the divergence semi-angle
// (wall opening) and the target area ratio.
//
// The model is limited to single-phase inlet states; a wet inlet returns a
// DomainError and the caller must fall back to "isentropic" or "no".
type OneD struct {
	φ  float64 // cant angle [rad]
	δ  float64 // divergence semi-angle [rad]
	cf float64 // skin-friction coefficient
	ar float64 // area ratio A_exit/A_in
}

// add model to factory
func init() {
	allocators["1d"] = func() Model { return new(OneD) }
}

// Init initialises model; angle parameters are given in degrees
func (o *OneD) Init(prms dbf.Params) (err error) {
	o.φ = 0
	o.δ = 5.0 * math.Pi / 180.0
	o.cf = 0.010
	o.ar = 2.0
	for _, p := range prms {
		switch p.N {
		case "cant":
			o.φ = p.V * math.Pi / 180.0
		case "div":
			o.δ = p.V * math.Pi / 180.0
		case "cf":
			o.cf = p.V
		case "ar":
			o.ar = p.V
		default:
			return chk.Err("1d: parameter named %q is incorrect", p.N)
		}
	}
	if o.ar < 1 {
		return chk.Err("1d: area ratio must be ≥ 1")
	}
	if o.δ <= 0 && o.φ <= 0 && o.ar > 1 {
		return chk.Err("1d: area ratio > 1 needs a positive divergence or cant angle")
	}
	return
}

// Name returns the model name
func (o *OneD) Name() string { return "1d" }

// Calc integrates the channel flow from the inlet annulus to the exit area
func (o *OneD) Calc(in prop.State, vel, angle, mdot, rad, height float64, gas prop.Oracle) (res Result, err error) {

	// validity
	if in.Q >= 0 {
		return res, &DomainError{"1d", "two-phase inlet state"}
	}
	if vel <= 0 || rad <= 0 || height <= 0 {
		return res, &DomainError{"1d", "nonpositive inlet velocity or annulus size"}
	}
	res.MaIn = vel / in.A
	if res.MaIn >= 1 {
		return res, &DomainError{"1d", "supersonic inlet"}
	}

	// channel length from the target area ratio:
	// (r0 + L sinφ)(b0 + 2L tanδ) = ar · r0·b0
	r0, b0 := rad, height
	ca := 2.0 * math.Tan(o.δ) * math.Sin(o.φ)
	cb := 2.0*math.Tan(o.δ)*r0 + math.Sin(o.φ)*b0
	cc := r0 * b0 * (1.0 - o.ar)
	var L float64
	if math.Abs(ca) < 1e-12 {
		if cb <= 0 {
			return res, &DomainError{"1d", "degenerate channel geometry"}
		}
		L = -cc / cb
	} else {
		disc := cb*cb - 4.0*ca*cc
		if disc < 0 {
			return res, &DomainError{"1d", "area ratio unreachable with given angles"}
		}
		L = (-cb + math.Sqrt(disc)) / (2.0 * ca)
	}
	if L <= 0 {
		res.Exit = in
		res.ExitVelocity = vel
		return
	}

	// callback function: y = [vm, vθ, ρ, p]. The solver callback cannot
	// return an error, so the first failure is latched in oerr and the
	// derivatives are zeroed to let the integration run out harmlessly
	var oerr error
	fcn := func(f la.Vector, dx, x float64, y la.Vector) {
		f[0], f[1], f[2], f[3] = 0, 0, 0, 0
		if oerr != nil {
			return
		}
		vm, vθ, ρ, p := y[0], y[1], y[2], y[3]
		if vm <= 0 || ρ <= 0 || p <= 0 {
			oerr = &DomainError{"1d", "flow stalled during integration"}
			return
		}
		st, e := gas.State(prop.PD, p, ρ)
		if e != nil {
			oerr = e
			return
		}
		r := r0 + x*math.Sin(o.φ)
		b := b0 + 2.0*x*math.Tan(o.δ)
		g := (2.0*math.Tan(o.δ)*r + math.Sin(o.φ)*b) / (b * r)
		v := math.Sqrt(vm*vm + vθ*vθ)
		mam := vm / st.A
		if mam >= 0.99 {
			oerr = &DomainError{"1d", "meridional Mach reached unity in the channel"}
			return
		}
		dsdm := o.cf * v * v * v / (st.T * vm * b)
		c1 := -ρ * vm * g
		c2 := ρ*vθ*vθ*math.Sin(o.φ)/r - o.cf*ρ*v*vm/b
		dvm := (c1 - vm*c2/(st.A*st.A) + vm*ρ*dsdm/st.Cp) / (ρ * (1.0 - mam*mam))
		dp := c2 - ρ*vm*dvm
		dρ := dp/(st.A*st.A) - ρ*dsdm/st.Cp
		dvθ := -vθ*math.Sin(o.φ)/r - o.cf*v*vθ/(vm*b)
		f[0], f[1], f[2], f[3] = dvm, dvθ, dρ, dp
	}

	// ode solver; the channel flow is not stiff so an explicit
	// Runge-Kutta method avoids the linear-solver machinery
	conf := ode.NewConfig("dopri5", "", nil)
	conf.SetTols(1e-8, 1e-8)
	odesol := ode.NewSolver(4, conf, fcn, nil, nil)
	defer odesol.Free()

	// solve; the solver panics on step failure
	y := la.Vector{vel * math.Cos(angle), vel * math.Sin(angle), in.D, in.P}
	serr := func() (e error) {
		defer func() {
			if r := recover(); r != nil {
				e = &DomainError{"1d", io.Sf("channel integration failed: %v", r)}
			}
		}()
		odesol.Solve(y, 0, L)
		return
	}()
	if oerr != nil {
		return res, oerr
	}
	if serr != nil {
		return res, serr
	}

	// exit state and recovery
	res.Exit, err = gas.State(prop.PD, y[3], y[2])
	if err != nil {
		return
	}
	res.ExitVelocity = math.Sqrt(y[0]*y[0] + y[1]*y[1])
	h0 := in.H + 0.5*vel*vel
	stag, err := gas.State(prop.HS, h0, in.S)
	if err != nil {
		return
	}
	if q := stag.P - in.P; q > 0 {
		res.Recovery = (res.Exit.P - in.P) / q
	}
	return
}
