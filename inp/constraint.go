// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// Constraint holds one named design constraint. A missing bound means "not
// checked" on that side: it contributes no residual, not a zero one.
type Constraint struct {
	Min     *float64 `json:"min"`     // lower bound; nil => no lower residual
	Max     *float64 `json:"max"`     // upper bound; nil => no upper residual
	Applied bool     `json:"applied"` // whether this constraint is active
	Ref     float64  `json:"ref"`     // residual scale; defaults to 1
}

// ConstraintSet maps constraint names to their definitions; read-only after
// setup and consumed once per evaluation
type ConstraintSet map[string]*Constraint

// ConstraintNames fixes the canonical residual ordering seen by the optimizer
var ConstraintNames = []string{
	"flare_angle",    // cascade flaring angle [deg]
	"r_ht",           // hub-to-tip radius ratio per cascade
	"reaction",       // degree of reaction per stage
	"Ma_rel",         // relative outlet Mach number per cascade
	"Ma_diffuser",    // diffuser inlet Mach number
	"beta_in_stator", // stator inlet flow angle [deg]
	"beta_in_rotor",  // rotor inlet relative flow angle [deg]
	"height",         // blade height per cascade [m]
	"chord",          // blade chord per cascade [m]
	"RPM",            // shaft speed [rev/min]
}

// Validate checks names, bound ordering and scales
func (o ConstraintSet) Validate() error {
	known := make(map[string]bool)
	for _, name := range ConstraintNames {
		known[name] = true
	}
	for name, c := range o {
		if !known[name] {
			return chk.Err("constraint %q is unknown", name)
		}
		if c == nil {
			return chk.Err("constraint %q is empty", name)
		}
		if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
			return chk.Err("constraint %q: min > max (%g > %g)", name, *c.Min, *c.Max)
		}
		if c.Ref < 0 {
			return chk.Err("constraint %q: negative ref scale", name)
		}
	}
	return nil
}

// Get returns an applied constraint or nil
func (o ConstraintSet) Get(name string) *Constraint {
	c, ok := o[name]
	if !ok || !c.Applied {
		return nil
	}
	return c
}

// PinnedRPM reports whether the RPM constraint pins the shaft speed to a
// single value, in which case the angular speed is set directly from it
// instead of being derived from the specific speed
func (o ConstraintSet) PinnedRPM() (rpm float64, pinned bool) {
	c := o.Get("RPM")
	if c == nil || c.Min == nil || c.Max == nil {
		return 0, false
	}
	if *c.Min == *c.Max {
		return *c.Min, true
	}
	return 0, false
}
