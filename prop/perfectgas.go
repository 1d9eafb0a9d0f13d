// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"
)

// PerfectGas implements the property oracle for a calorically perfect gas.
// Enthalpy is measured from absolute zero (h = cp・T) and entropy from a
// positive datum at (Tref,Pref) so that entropy ratios remain well defined.
// An optional Clausius-Clapeyron saturation estimate flags wet states via Q;
// the caloric model itself remains single phase.
type PerfectGas struct {

	// material data
	name string  // fluid identifier
	R    float64 // specific gas constant [J/(kg·K)]
	γ    float64 // heat capacity ratio
	cp   float64 // isobaric specific heat = γR/(γ-1) [J/(kg·K)]

	// entropy datum
	Tref float64 // reference temperature [K]
	Pref float64 // reference pressure [Pa]
	Sref float64 // entropy at (Tref,Pref) [J/(kg·K)]

	// transport (Sutherland)
	μref float64 // viscosity at Tμ [Pa·s]
	Tμ   float64 // Sutherland reference temperature [K]
	Sμ   float64 // Sutherland constant [K]

	// saturation dome estimate; Tboil == 0 disables the check
	Tboil float64 // normal boiling temperature [K]
	Pboil float64 // pressure at Tboil [Pa]
	hvap  float64 // heat of vaporisation near Tboil [J/kg]
}

// register fluids in database
func init() {
	add := func(name string, R, γ, μref, Tμ, Sμ, Tboil, hvap float64) {
		allocators[name] = func() Oracle {
			return &PerfectGas{
				name: name, R: R, γ: γ, cp: γ * R / (γ - 1.0),
				Tref: 300.0, Pref: 1e5, Sref: 1500.0,
				μref: μref, Tμ: Tμ, Sμ: Sμ,
				Tboil: Tboil, Pboil: 101325.0, hvap: hvap,
			}
		}
	}
	add("air", 287.06, 1.400, 1.716e-5, 273.15, 110.4, 0, 0)
	add("r125", 69.28, 1.100, 1.280e-5, 300.00, 320.0, 225.0, 164e3)
	add("r245fa", 62.02, 1.060, 1.020e-5, 300.00, 360.0, 288.3, 196e3)
	add("toluene", 90.24, 1.050, 0.700e-5, 300.00, 370.0, 383.8, 360e3)
}

// Fluid returns the fluid identifier
func (o *PerfectGas) Fluid() string { return o.name }

// State resolves the full thermodynamic state from two independent variables
func (o *PerfectGas) State(pair Pair, v1, v2 float64) (st State, err error) {

	// reduce every pair to (P,T)
	var P, T float64
	switch pair {
	case PT:
		P, T = v1, v2
	case PH:
		P, T = v1, v2/o.cp
	case PS:
		if v1 <= 0 {
			return st, o.fail(pair, v1, v2, "nonpositive pressure")
		}
		P = v1
		T = o.Tref * math.Exp((v2-o.Sref+o.R*math.Log(v1/o.Pref))/o.cp)
	case PD:
		if v2 <= 0 {
			return st, o.fail(pair, v1, v2, "nonpositive density")
		}
		P, T = v1, v1/(o.R*v2)
	case HS:
		T = v1 / o.cp
		if T <= 0 {
			return st, o.fail(pair, v1, v2, "nonpositive enthalpy")
		}
		P = o.Pref * math.Exp((o.cp*math.Log(T/o.Tref)+o.Sref-v2)/o.R)
	default:
		return st, o.fail(pair, v1, v2, "unknown input pair")
	}

	// domain checks
	if math.IsNaN(P) || math.IsNaN(T) || math.IsInf(P, 0) || math.IsInf(T, 0) {
		return st, o.fail(pair, v1, v2, "state did not resolve to finite values")
	}
	if P <= 0 {
		return st, o.fail(pair, v1, v2, "nonpositive pressure")
	}
	if T <= 0 {
		return st, o.fail(pair, v1, v2, "nonpositive temperature")
	}

	// full state
	st.T = T
	st.P = P
	st.D = P / (o.R * T)
	st.H = o.cp * T
	st.S = o.Sref + o.cp*math.Log(T/o.Tref) - o.R*math.Log(P/o.Pref)
	st.A = math.Sqrt(o.γ * o.R * T)
	st.Cp = o.cp
	st.Mu = o.μref * math.Pow(T/o.Tμ, 1.5) * (o.Tμ + o.Sμ) / (T + o.Sμ)
	st.Q = -1
	if o.Tboil > 0 && T < o.tsat(P) {
		st.Q = 0 // wet: at or below the estimated saturation line
	}
	return
}

// tsat estimates the saturation temperature via Clausius-Clapeyron
func (o *PerfectGas) tsat(P float64) float64 {
	return 1.0 / (1.0/o.Tboil - (o.R/o.hvap)*math.Log(P/o.Pboil))
}

// fail builds an evaluation error
func (o *PerfectGas) fail(pair Pair, v1, v2 float64, reason string) error {
	return &EvaluationError{Fluid: o.name, Pair: pair, V1: v1, V2: v2, Reason: reason}
}
