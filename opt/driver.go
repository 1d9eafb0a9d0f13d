// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opt drives the constrained minimization of a turbine design. The
// nonlinear program is solved by an exterior quadratic penalty sequence: each
// outer iteration minimizes the penalized objective with a quasi-Newton
// method and then tightens the penalty weight until the constraint violation
// falls below tolerance.
package opt

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// Problem holds the callbacks and bounds of one nonlinear program
type Problem struct {
	Objective func(x []float64) float64   // scalar objective (minimized)
	InEq      func(x []float64) []float64 // inequality residuals; ≤ 0 satisfied
	Eq        func(x []float64) []float64 // equality residuals; = 0 satisfied
	Lower     []float64                   // lower bounds on x
	Upper     []float64                   // upper bounds on x
}

// Settings holds the solver parameters
type Settings struct {
	TolCon  float64 // tolerance on the maximum constraint violation
	TolStep float64 // tolerance on the outer-iteration step
	TolFun  float64 // tolerance on the outer objective decrease
	TolOpt  float64 // tolerance on the first-order optimality measure
	MaxIter int     // maximum number of outer iterations
	MaxFev  int     // maximum number of function evaluations per inner solve
	Mu0     float64 // initial penalty weight
	MuGrow  float64 // penalty growth factor per outer iteration
}

// DefaultSettings returns settings that work well on the scales produced by
// the meanline evaluator (objective in (-1,0), residuals scaled to order one)
func DefaultSettings() Settings {
	return Settings{
		TolCon:  1e-6,
		TolStep: 1e-8,
		TolFun:  1e-10,
		TolOpt:  1e-5,
		MaxIter: 30,
		MaxFev:  2000,
		Mu0:     10.0,
		MuGrow:  5.0,
	}
}

// Status indicates how the solve terminated
type Status int

const (
	Optimal    Status = iota + 1 // feasible with first-order optimality below tolerance
	SmallStep                    // feasible with step or objective change below tolerance
	IterLimit                    // outer iteration limit reached
	EvalLimit                    // evaluation budget exhausted
	Aborted                      // inner solver failed
	Infeasible                   // outer step stalled with constraints still violated
)

func (o Status) String() string {
	switch o {
	case Optimal:
		return "optimal"
	case SmallStep:
		return "small-step"
	case IterLimit:
		return "iteration-limit"
	case EvalLimit:
		return "evaluation-limit"
	case Aborted:
		return "aborted"
	case Infeasible:
		return "infeasible"
	}
	return "unknown"
}

// Output collects the result of one solve
type Output struct {
	X       []float64 // best point found
	F       float64   // objective at X
	Status  Status    // termination status
	Iter    int       // outer iterations performed
	Fev     int       // total function evaluations
	MaxViol float64   // maximum constraint violation at X
}

// Solve minimizes the problem starting from x0
func Solve(prb *Problem, x0 []float64, stg Settings) (out Output, err error) {

	// check
	n := len(x0)
	if prb.Objective == nil {
		return out, chk.Err("opt: objective function is nil")
	}
	if len(prb.Lower) != n || len(prb.Upper) != n {
		return out, chk.Err("opt: bounds have wrong length: %d or %d != %d", len(prb.Lower), len(prb.Upper), n)
	}

	// penalized objective for a fixed weight μ; must stay re-entrant because
	// the finite-difference gradient evaluates it concurrently
	penalized := func(mu float64) func(x []float64) float64 {
		return func(x []float64) float64 {
			f := prb.Objective(x)
			f += boundPenalty(x, prb.Lower, prb.Upper, mu)
			if prb.InEq != nil {
				for _, g := range prb.InEq(x) {
					if g > 0 {
						f += mu * g * g
					}
				}
			}
			if prb.Eq != nil {
				for _, h := range prb.Eq(x) {
					f += mu * h * h
				}
			}
			return f
		}
	}

	// outer loop
	x := make([]float64, n)
	copy(x, x0)
	clip(x, prb.Lower, prb.Upper)
	mu := stg.Mu0
	fprev := math.Inf(1)
	for it := 0; it < stg.MaxIter; it++ {
		out.Iter = it + 1

		// inner minimization with numerical gradients
		fcn := penalized(mu)
		grad := func(g, x []float64) {
			fd.Gradient(g, fcn, x, &fd.Settings{Concurrent: true})
		}
		pb := optimize.Problem{Func: fcn, Grad: grad}
		settings := &optimize.Settings{FuncEvaluations: stg.MaxFev}
		res, inerr := optimize.Minimize(pb, x, settings, &optimize.BFGS{})
		if res == nil {
			out.Status = Aborted
			return out, chk.Err("opt: inner solver failed: %v", inerr)
		}
		xnew := res.X
		clip(xnew, prb.Lower, prb.Upper)
		out.Fev += res.Stats.FuncEvaluations

		// assess progress
		viol := maxViolation(prb, xnew)
		fval := prb.Objective(xnew)
		step := dist(x, xnew)
		copy(x, xnew)
		out.X = x
		out.F = fval
		out.MaxViol = viol

		// convergence
		if viol <= stg.TolCon {
			g := make([]float64, n)
			fd.Gradient(g, fcn, xnew, &fd.Settings{Concurrent: true})
			if infNorm(g) <= stg.TolOpt {
				out.Status = Optimal
				return
			}
			if step <= stg.TolStep || math.Abs(fprev-fval) <= stg.TolFun {
				out.Status = SmallStep
				return
			}
		} else if step <= stg.TolStep {
			out.Status = Infeasible
			return
		}
		if out.Fev >= stg.MaxIter*stg.MaxFev {
			out.Status = EvalLimit
			return
		}
		fprev = fval
		mu *= stg.MuGrow
	}
	out.Status = IterLimit
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// boundPenalty adds quadratic penalties for bound violations
func boundPenalty(x, lo, up []float64, mu float64) (p float64) {
	for i := range x {
		if x[i] < lo[i] {
			d := lo[i] - x[i]
			p += mu * d * d
		}
		if x[i] > up[i] {
			d := x[i] - up[i]
			p += mu * d * d
		}
	}
	return
}

// clip projects x onto the box [lo, up]
func clip(x, lo, up []float64) {
	for i := range x {
		if x[i] < lo[i] {
			x[i] = lo[i]
		}
		if x[i] > up[i] {
			x[i] = up[i]
		}
	}
}

// maxViolation returns the maximum constraint violation at x
func maxViolation(prb *Problem, x []float64) (viol float64) {
	if prb.InEq != nil {
		for _, g := range prb.InEq(x) {
			if g > viol {
				viol = g
			}
		}
	}
	if prb.Eq != nil {
		for _, h := range prb.Eq(x) {
			if a := math.Abs(h); a > viol {
				viol = a
			}
		}
	}
	return
}

// infNorm returns the infinity norm of v
func infNorm(v []float64) (n float64) {
	for _, vi := range v {
		if a := math.Abs(vi); a > n {
			n = a
		}
	}
	return
}

// dist returns the Euclidean distance between two points
func dist(a, b []float64) (d float64) {
	for i := range a {
		d += (a[i] - b[i]) * (a[i] - b[i])
	}
	return math.Sqrt(d)
}
