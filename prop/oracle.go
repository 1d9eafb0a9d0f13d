// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop defines the thermodynamic property oracle consumed by the
// mean-line model and implements a perfect-gas backend
package prop

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Pair identifies the two independent state variables given to the oracle
type Pair int

const (
	PT Pair = iota + 1 // pressure [Pa] and temperature [K]
	PH                 // pressure [Pa] and specific enthalpy [J/kg]
	PS                 // pressure [Pa] and specific entropy [J/(kg·K)]
	PD                 // pressure [Pa] and density [kg/m³]
	HS                 // specific enthalpy [J/kg] and specific entropy [J/(kg·K)]
)

// String returns the name of this pair
func (p Pair) String() string {
	switch p {
	case PT:
		return "PT"
	case PH:
		return "PH"
	case PS:
		return "PS"
	case PD:
		return "PD"
	case HS:
		return "HS"
	}
	return io.Sf("Pair(%d)", int(p))
}

// State holds a complete thermodynamic state at one station
type State struct {
	T  float64 // temperature [K]
	P  float64 // pressure [Pa]
	D  float64 // density [kg/m³]
	H  float64 // specific enthalpy [J/kg]
	S  float64 // specific entropy [J/(kg·K)]
	A  float64 // speed of sound [m/s]
	Cp float64 // isobaric specific heat [J/(kg·K)]
	Mu float64 // dynamic viscosity [Pa·s]
	Q  float64 // vapour quality; -1 for single phase states
}

// Oracle resolves thermodynamic states from two independent state variables.
// Implementations must be stateless and safe for concurrent use.
type Oracle interface {
	Fluid() string                            // returns the fluid identifier
	State(pair Pair, v1, v2 float64) (State, error) // resolves the full state
}

// EvaluationError indicates that the oracle cannot resolve a state; e.g. due
// to out-of-range input or a non-physical combination of state variables
type EvaluationError struct {
	Fluid  string  // fluid identifier
	Pair   Pair    // input pair kind
	V1, V2 float64 // input values
	Reason string  // why the evaluation failed
}

// Error returns the error message
func (e *EvaluationError) Error() string {
	return io.Sf("cannot evaluate %v=(%g,%g) for fluid %q: %s", e.Pair, e.V1, e.V2, e.Fluid, e.Reason)
}

// New returns a property oracle for the named fluid
func New(fluid string) (Oracle, error) {
	allocator, ok := allocators[strings.ToLower(fluid)]
	if !ok {
		return nil, chk.Err("fluid %q is not available in 'prop' database", fluid)
	}
	return allocator(), nil
}

// allocators holds all available property backends; fluidname => allocator
var allocators = map[string]func() Oracle{}
