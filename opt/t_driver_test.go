// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_opt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opt01. inequality-constrained quadratic")

	// minimize (x0-1)² + (x1-2)²  subject to  x0+x1 ≤ 2
	// unconstrained minimum (1,2) is infeasible; optimum at (0.5,1.5)
	prb := &Problem{
		Objective: func(x []float64) float64 {
			return (x[0]-1.0)*(x[0]-1.0) + (x[1]-2.0)*(x[1]-2.0)
		},
		InEq: func(x []float64) []float64 {
			return []float64{x[0] + x[1] - 2.0}
		},
		Lower: []float64{-5, -5},
		Upper: []float64{5, 5},
	}

	stg := DefaultSettings()
	stg.TolCon = 1e-5
	stg.TolStep = 1e-6
	out, err := Solve(prb, []float64{0, 0}, stg)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	io.Pforan("x = %v  f = %v  status = %v  iter = %d  fev = %d\n", out.X, out.F, out.Status, out.Iter, out.Fev)

	if out.Status != Optimal && out.Status != SmallStep {
		tst.Errorf("status should indicate success; got %v\n", out.Status)
		return
	}
	if out.MaxViol > stg.TolCon {
		tst.Errorf("constraint violation too large: %g\n", out.MaxViol)
		return
	}
	chk.Float64(tst, "x0", 1e-2, out.X[0], 0.5)
	chk.Float64(tst, "x1", 1e-2, out.X[1], 1.5)
	chk.Float64(tst, "f", 1e-2, out.F, 0.5)
}

func Test_opt02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opt02. equality-constrained quadratic")

	// minimize x0² + x1²  subject to  x0+x1 = 1; optimum at (0.5,0.5)
	prb := &Problem{
		Objective: func(x []float64) float64 {
			return x[0]*x[0] + x[1]*x[1]
		},
		Eq: func(x []float64) []float64 {
			return []float64{x[0] + x[1] - 1.0}
		},
		Lower: []float64{-5, -5},
		Upper: []float64{5, 5},
	}

	stg := DefaultSettings()
	stg.TolCon = 1e-5
	stg.TolStep = 1e-6
	out, err := Solve(prb, []float64{2, -1}, stg)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	io.Pforan("x = %v  f = %v  status = %v\n", out.X, out.F, out.Status)

	if out.Status != Optimal && out.Status != SmallStep {
		tst.Errorf("status should indicate success; got %v\n", out.Status)
		return
	}
	chk.Float64(tst, "x0", 1e-2, out.X[0], 0.5)
	chk.Float64(tst, "x1", 1e-2, out.X[1], 0.5)
	chk.Float64(tst, "f", 1e-2, out.F, 0.5)
}

func Test_opt03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opt03. bounds are honoured and errors reported")

	// unconstrained minimum (3,3) lies outside the box
	prb := &Problem{
		Objective: func(x []float64) float64 {
			return (x[0]-3.0)*(x[0]-3.0) + (x[1]-3.0)*(x[1]-3.0)
		},
		Lower: []float64{0, 0},
		Upper: []float64{1, 1},
	}
	out, err := Solve(prb, []float64{0.5, 0.5}, DefaultSettings())
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	io.Pforan("x = %v  f = %v\n", out.X, out.F)
	chk.Float64(tst, "x0", 1e-2, out.X[0], 1.0)
	chk.Float64(tst, "x1", 1e-2, out.X[1], 1.0)

	// nil objective is a configuration error
	if _, err := Solve(&Problem{Lower: []float64{0}, Upper: []float64{1}}, []float64{0}, DefaultSettings()); err == nil {
		tst.Errorf("Solve should fail without an objective\n")
		return
	}

	// mismatched bounds
	bad := &Problem{Objective: func(x []float64) float64 { return 0 }, Lower: []float64{0}, Upper: []float64{1, 2}}
	if _, err := Solve(bad, []float64{0, 0}, DefaultSettings()); err == nil {
		tst.Errorf("Solve should fail for mismatched bounds\n")
		return
	}
}
