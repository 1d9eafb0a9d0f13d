// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of the design case
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/axialopt
}

// BcsData holds the thermodynamic boundary conditions
type BcsData struct {
	Fluid     string  `json:"fluid"`     // fluid identifier; e.g. "r125"
	T01       float64 `json:"T01"`       // inlet stagnation temperature [K]
	P01       float64 `json:"P01"`       // inlet stagnation pressure [Pa]
	Pout      float64 `json:"Pout"`      // outlet static pressure [Pa]
	Mdot      float64 `json:"mdot"`      // mass flow [kg/s]; 0 => derive from powerisen
	PowerIsen float64 `json:"powerisen"` // isentropic power [W] used when mdot == 0
	AngIn     float64 `json:"angin"`     // inlet absolute flow angle [deg]
}

// TrbData holds the turbine model selections
type TrbData struct {
	Nstages   int     `json:"nstages"`   // number of stages; cascades = 2·nstages
	Loss      string  `json:"loss"`      // loss correlation: "am", "dc" or "ko"
	Coeff     string  `json:"coeff"`     // loss coefficient definition: "p0", "h" or "s"
	Objective string  `json:"objective"` // efficiency objective: "ts" or "tt"
	Gap       float64 `json:"gap"`       // rotor tip clearance gap [m]
	TteRatio  float64 `json:"tte"`       // trailing-edge thickness over opening
	TmaxRatio float64 `json:"tmax"`      // maximum blade thickness over chord
}

// DifData holds the diffuser selection and its parameters
type DifData struct {
	Model string     `json:"model"` // diffuser model: "no", "isentropic" or "1d"
	Prms  dbf.Params `json:"prms"`  // model parameters; e.g. ar, cant, div, cf
}

// Span holds bounds and initial guess of one design variable group.
// Arrays have length 1 (broadcast to all cascades) or 2·nstages.
type Span struct {
	Min []float64 `json:"min"` // lower bounds
	Max []float64 `json:"max"` // upper bounds
	Ini []float64 `json:"ini"` // initial guess
}

// VarsData holds bounds and initial guesses for all design variables.
// Angles are in degrees; everything else is dimensionless.
type VarsData struct {
	Ws   Span `json:"ws"`   // specific speed
	Ds   Span `json:"ds"`   // specific diameter
	Vin  Span `json:"vin"`  // inlet reduced velocity
	W    Span `json:"w"`    // outlet reduced velocity per cascade
	Beta Span `json:"beta"` // outlet relative flow angle per cascade [deg]
	AR   Span `json:"ar"`   // aspect ratio (height over chord) per cascade
	SC   Span `json:"sc"`   // pitch-to-chord ratio per cascade
	SR   Span `json:"sr"`   // exit entropy ratio per cascade
}

// OptData holds settings passed to the optimization driver
type OptData struct {
	Algorithm string  `json:"algorithm"` // "sqp", "interior-point" or "active-set"
	TolStep   float64 `json:"tolstep"`   // step tolerance
	TolFun    float64 `json:"tolfun"`    // function tolerance
	TolCon    float64 `json:"tolcon"`    // constraint tolerance
	TolOpt    float64 `json:"tolopt"`    // first-order optimality tolerance
	MaxIter   int     `json:"maxiter"`   // iteration budget
	MaxFev    int     `json:"maxfev"`    // function evaluation budget
}

// Simulation holds all data for one design optimization run
type Simulation struct {

	// input
	Data        Data          `json:"data"`        // global data
	Bcs         BcsData       `json:"bconds"`      // boundary conditions
	Trb         TrbData       `json:"turbine"`     // turbine model selections
	Dif         DifData       `json:"diffuser"`    // diffuser selection
	Vars        VarsData      `json:"variables"`   // design variable bounds and guess
	Constraints ConstraintSet `json:"constraints"` // constraint set
	Opt         OptData       `json:"optimizer"`   // optimizer settings

	// derived
	Key    string // simulation key; e.g. mysim.sim => mysim
	DirOut string // directory to save results
}

// ReadSim reads all data from a .sim JSON file; panics on malformed input
// since configuration errors are fatal before optimization starts
func ReadSim(simfilepath string, createDirOut bool) *Simulation {

	// read file
	b := io.ReadFile(simfilepath)

	// decode
	var o Simulation
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// defaults and validation
	o.SetDefault()
	if err = o.Validate(); err != nil {
		chk.Panic("ReadSim: invalid simulation file %q:\n%v", simfilepath, err)
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/axialopt/" + o.Key
	}
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}
	return &o
}

// Ncascades returns the number of blade rows
func (o *Simulation) Ncascades() int { return 2 * o.Trb.Nstages }

// SetDefault sets default values for all unset fields
func (o *Simulation) SetDefault() {
	if o.Trb.Nstages == 0 {
		o.Trb.Nstages = 1
	}
	if o.Trb.Loss == "" {
		o.Trb.Loss = "ko"
	}
	if o.Trb.Coeff == "" {
		o.Trb.Coeff = "p0"
	}
	if o.Trb.Objective == "" {
		o.Trb.Objective = "ts"
	}
	if o.Trb.Gap == 0 {
		o.Trb.Gap = 4e-4
	}
	if o.Trb.TteRatio == 0 {
		o.Trb.TteRatio = 0.05
	}
	if o.Trb.TmaxRatio == 0 {
		o.Trb.TmaxRatio = 0.20
	}
	if o.Dif.Model == "" {
		o.Dif.Model = "no"
	}
	if o.Opt.Algorithm == "" {
		o.Opt.Algorithm = "sqp"
	}
	if o.Opt.TolStep == 0 {
		o.Opt.TolStep = 1e-9
	}
	if o.Opt.TolFun == 0 {
		o.Opt.TolFun = 1e-9
	}
	if o.Opt.TolCon == 0 {
		o.Opt.TolCon = 1e-6
	}
	if o.Opt.TolOpt == 0 {
		o.Opt.TolOpt = 1e-6
	}
	if o.Opt.MaxIter == 0 {
		o.Opt.MaxIter = 300
	}
	if o.Opt.MaxFev == 0 {
		o.Opt.MaxFev = 20000
	}
	o.defaultVars()
	if o.Constraints == nil {
		o.Constraints = ConstraintSet{}
	}
	for _, c := range o.Constraints {
		if c.Ref == 0 {
			c.Ref = 1
		}
	}
}

// defaultVars fills unset variable spans with per-row defaults: stator rows
// carry positive outlet angles, rotor rows negative ones
func (o *Simulation) defaultVars() {
	n := o.Ncascades()
	one := func(s *Span, min, max, ini float64) {
		if len(s.Min) == 0 {
			s.Min = []float64{min}
		}
		if len(s.Max) == 0 {
			s.Max = []float64{max}
		}
		if len(s.Ini) == 0 {
			s.Ini = []float64{ini}
		}
	}
	rows := func(s *Span, statorMin, statorMax, statorIni, rotorMin, rotorMax, rotorIni float64) {
		if len(s.Min) == 0 && len(s.Max) == 0 && len(s.Ini) == 0 {
			s.Min = make([]float64, n)
			s.Max = make([]float64, n)
			s.Ini = make([]float64, n)
			for i := 0; i < n; i++ {
				if i%2 == 0 {
					s.Min[i], s.Max[i], s.Ini[i] = statorMin, statorMax, statorIni
				} else {
					s.Min[i], s.Max[i], s.Ini[i] = rotorMin, rotorMax, rotorIni
				}
			}
		}
	}
	one(&o.Vars.Ws, 0.2, 1.5, 1.0)
	one(&o.Vars.Ds, 1.0, 8.0, 2.0)
	one(&o.Vars.Vin, 0.05, 0.50, 0.20)
	rows(&o.Vars.W, 0.30, 1.10, 0.90, 0.20, 1.00, 0.45)
	rows(&o.Vars.Beta, 40, 80, 70, -80, -40, -60)
	one(&o.Vars.AR, 0.8, 4.0, 1.5)
	one(&o.Vars.SC, 0.3, 1.1, 0.8)
	// exit entropy ratios default to a mild monotone ramp
	if len(o.Vars.SR.Min) == 0 && len(o.Vars.SR.Max) == 0 && len(o.Vars.SR.Ini) == 0 {
		o.Vars.SR.Min = []float64{1.0}
		o.Vars.SR.Max = []float64{1.05}
		o.Vars.SR.Ini = make([]float64, n)
		for i := 0; i < n; i++ {
			o.Vars.SR.Ini[i] = 1.0 + 0.002*float64(i+1)/float64(n)
		}
	}
}

// Validate checks the configuration; any error here is fatal at setup
func (o *Simulation) Validate() (err error) {
	if o.Trb.Nstages < 1 {
		return chk.Err("nstages must be a positive integer; got %d", o.Trb.Nstages)
	}
	if o.Bcs.Fluid == "" {
		return chk.Err("fluid identifier is missing")
	}
	if o.Bcs.T01 <= 0 || o.Bcs.P01 <= 0 || o.Bcs.Pout <= 0 {
		return chk.Err("inlet state and outlet pressure must be positive; got T01=%g P01=%g Pout=%g", o.Bcs.T01, o.Bcs.P01, o.Bcs.Pout)
	}
	if o.Bcs.Pout >= o.Bcs.P01 {
		return chk.Err("outlet pressure must be below the inlet stagnation pressure")
	}
	if o.Bcs.Mdot <= 0 && o.Bcs.PowerIsen <= 0 {
		return chk.Err("either mdot or powerisen must be positive")
	}
	switch o.Trb.Loss {
	case "am", "dc", "ko":
	default:
		return chk.Err("loss system %q is invalid; must be \"am\", \"dc\" or \"ko\"", o.Trb.Loss)
	}
	switch o.Trb.Coeff {
	case "p0", "h", "s":
	default:
		return chk.Err("coefficient definition %q is invalid; must be \"p0\", \"h\" or \"s\"", o.Trb.Coeff)
	}
	switch o.Trb.Objective {
	case "ts", "tt":
	default:
		return chk.Err("objective %q is invalid; must be \"ts\" or \"tt\"", o.Trb.Objective)
	}
	switch o.Dif.Model {
	case "no", "isentropic", "1d":
	default:
		return chk.Err("diffuser model %q is invalid; must be \"no\", \"isentropic\" or \"1d\"", o.Dif.Model)
	}
	n := o.Ncascades()
	for _, v := range []struct {
		name string
		span *Span
	}{
		{"ws", &o.Vars.Ws}, {"ds", &o.Vars.Ds}, {"vin", &o.Vars.Vin},
		{"w", &o.Vars.W}, {"beta", &o.Vars.Beta}, {"ar", &o.Vars.AR},
		{"sc", &o.Vars.SC}, {"sr", &o.Vars.SR},
	} {
		if err = checkSpan(v.name, v.span, n); err != nil {
			return
		}
	}
	if err = o.Constraints.Validate(); err != nil {
		return
	}
	return
}

// NumVars returns the design vector length 3 + 5·(2·nstages)
func (o *Simulation) NumVars() int { return 3 + 5*o.Ncascades() }

// InitialGuess assembles the initial design vector
func (o *Simulation) InitialGuess() []float64 {
	n := o.Ncascades()
	x := make([]float64, 0, o.NumVars())
	x = append(x, at(o.Vars.Ws.Ini, 0), at(o.Vars.Ds.Ini, 0), at(o.Vars.Vin.Ini, 0))
	for _, s := range []*Span{&o.Vars.W, &o.Vars.Beta, &o.Vars.AR, &o.Vars.SC, &o.Vars.SR} {
		for i := 0; i < n; i++ {
			x = append(x, at(s.Ini, i))
		}
	}
	return x
}

// Bounds assembles the lower and upper bound vectors
func (o *Simulation) Bounds() (lo, hi []float64) {
	n := o.Ncascades()
	lo = make([]float64, 0, o.NumVars())
	hi = make([]float64, 0, o.NumVars())
	lo = append(lo, at(o.Vars.Ws.Min, 0), at(o.Vars.Ds.Min, 0), at(o.Vars.Vin.Min, 0))
	hi = append(hi, at(o.Vars.Ws.Max, 0), at(o.Vars.Ds.Max, 0), at(o.Vars.Vin.Max, 0))
	for _, s := range []*Span{&o.Vars.W, &o.Vars.Beta, &o.Vars.AR, &o.Vars.SC, &o.Vars.SR} {
		for i := 0; i < n; i++ {
			lo = append(lo, at(s.Min, i))
			hi = append(hi, at(s.Max, i))
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// at reads a possibly-broadcast array
func at(a []float64, i int) float64 {
	if len(a) == 1 {
		return a[0]
	}
	return a[i]
}

// checkSpan verifies sizes and ordering of one variable span
func checkSpan(name string, s *Span, n int) error {
	for _, a := range [][]float64{s.Min, s.Max, s.Ini} {
		if len(a) != 1 && len(a) != n {
			return chk.Err("variable %q: arrays must have length 1 or %d; got %d", name, n, len(a))
		}
	}
	for i := 0; i < n; i++ {
		lo, hi, x := at(s.Min, i), at(s.Max, i), at(s.Ini, i)
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsNaN(x) {
			return chk.Err("variable %q: NaN in bounds or guess", name)
		}
		if lo > hi {
			return chk.Err("variable %q: min > max at cascade %d (%g > %g)", name, i, lo, hi)
		}
		if x < lo || x > hi {
			return chk.Err("variable %q: initial guess %g outside [%g,%g] at cascade %d", name, x, lo, hi, i)
		}
	}
	return nil
}
