// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loss

import (
	"math"

	"github.com/ango12138/AxialOpt/prop"
	"github.com/cpmech/gosl/chk"
)

// Kind selects the loss-coefficient definition
type Kind int

const (
	P0 Kind = iota + 1 // stagnation-pressure loss: Y = (p0in-p0out)/(p0out-pout)
	H                  // enthalpy loss: ζ = (hout-houts)/(w²/2)
	S                  // entropy loss: ς = Tout(sout-sin)/(w²/2)
)

// KindByName maps a configuration string to a Kind
func KindByName(name string) (Kind, error) {
	switch name {
	case "p0":
		return P0, nil
	case "h":
		return H, nil
	case "s":
		return S, nil
	}
	return 0, chk.Err("loss coefficient definition %q is invalid; must be \"p0\", \"h\" or \"s\"", name)
}

// Stations holds the thermodynamic context of one solved cascade in the frame
// of the row (relative frame for rotors): the inlet and outlet stagnation
// states, the outlet static state, and the ideal outlet state at inlet entropy
type Stations struct {
	In0  prop.State // inlet (relative) stagnation state
	Out  prop.State // outlet static state
	Out0 prop.State // outlet (relative) stagnation state
	W    float64    // outlet (relative) velocity [m/s]
}

// Measured computes the loss coefficient of the given kind implied directly
// by the solved cascade states
func Measured(kind Kind, st *Stations, gas prop.Oracle) (float64, error) {
	ke := 0.5 * st.W * st.W
	if ke <= 0 {
		return 0, chk.Err("cannot measure loss coefficient: zero outlet velocity")
	}
	switch kind {
	case P0:
		den := st.Out0.P - st.Out.P
		if den <= 0 {
			return 0, chk.Err("cannot measure loss coefficient: nonpositive outlet dynamic head")
		}
		return (st.In0.P - st.Out0.P) / den, nil
	case H:
		ideal, err := gas.State(prop.PS, st.Out.P, st.In0.S)
		if err != nil {
			return 0, err
		}
		return (st.Out.H - ideal.H) / ke, nil
	case S:
		return st.Out.T * (st.Out.S - st.In0.S) / ke, nil
	}
	return 0, chk.Err("unknown loss coefficient kind %d", kind)
}

// Convert converts a loss-coefficient value between definitions using exact
// thermodynamic identities evaluated through the property oracle. The value
// is first mapped to the implied outlet state (at the actual outlet pressure
// and the inlet relative stagnation enthalpy) and then expressed in the
// target definition, so chained conversions round-trip to numerical
// precision.
func Convert(from, to Kind, val float64, st *Stations, gas prop.Oracle) (float64, error) {
	if from == to {
		return val, nil
	}
	out, err := implied(from, val, st, gas)
	if err != nil {
		return 0, err
	}
	return express(to, out, st, gas)
}

// implied reconstructs the outlet static state implied by a coefficient value
func implied(kind Kind, val float64, st *Stations, gas prop.Oracle) (prop.State, error) {
	h0 := st.In0.H // energy: relative stagnation enthalpy is conserved
	pout := st.Out.P
	switch kind {
	case P0:
		// p0out from the definition, entropy from the stagnation state,
		// then the static state at the known outlet pressure
		p0out := (st.In0.P + val*pout) / (1.0 + val)
		stag, err := gas.State(prop.PH, p0out, h0)
		if err != nil {
			return prop.State{}, err
		}
		return gas.State(prop.PS, pout, stag.S)
	case H:
		// hout = hideal + val·(h0-hout) has the closed form below
		ideal, err := gas.State(prop.PS, pout, st.In0.S)
		if err != nil {
			return prop.State{}, err
		}
		hout := (ideal.H + val*h0) / (1.0 + val)
		return gas.State(prop.PH, pout, hout)
	case S:
		// T(s)·(s-sin) = val·(h0-h(s)) at constant pout: monotone in s,
		// solved with a few bounded Newton steps (secant derivative)
		f := func(s float64) (float64, error) {
			o, err := gas.State(prop.PS, pout, s)
			if err != nil {
				return 0, err
			}
			return o.T*(s-st.In0.S) - val*(h0-o.H), nil
		}
		s := st.Out.S // warm start from the solved state
		ds := 1e-6 * (math.Abs(s) + 1.0)
		for it := 0; it < 12; it++ {
			f0, err := f(s)
			if err != nil {
				return prop.State{}, err
			}
			if math.Abs(f0) < 1e-12*(math.Abs(h0)+1.0) {
				break
			}
			f1, err := f(s + ds)
			if err != nil {
				return prop.State{}, err
			}
			df := (f1 - f0) / ds
			if df == 0 {
				break
			}
			s -= f0 / df
		}
		return gas.State(prop.PS, pout, s)
	}
	return prop.State{}, chk.Err("unknown loss coefficient kind %d", kind)
}

// express writes the implied outlet state in the target definition
func express(kind Kind, out prop.State, st *Stations, gas prop.Oracle) (float64, error) {
	h0 := st.In0.H
	ke := h0 - out.H // = w²/2 of the implied state
	if ke <= 0 {
		return 0, chk.Err("cannot express loss coefficient: implied state has no kinetic energy")
	}
	switch kind {
	case P0:
		stag, err := gas.State(prop.HS, h0, out.S)
		if err != nil {
			return 0, err
		}
		den := stag.P - out.P
		if den <= 0 {
			return 0, chk.Err("cannot express loss coefficient: nonpositive dynamic head")
		}
		return (st.In0.P - stag.P) / den, nil
	case H:
		ideal, err := gas.State(prop.PS, out.P, st.In0.S)
		if err != nil {
			return 0, err
		}
		return (out.H - ideal.H) / ke, nil
	case S:
		return out.T * (out.S - st.In0.S) / ke, nil
	}
	return 0, chk.Err("unknown loss coefficient kind %d", kind)
}
