// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffuser

import (
	"testing"

	"github.com/ango12138/AxialOpt/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_dif01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dif01. factory and initialisation")

	for _, name := range []string{"no", "isentropic", "1d"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("cannot allocate %q:\n%v", name, err)
			return
		}
		if err = mdl.Init(nil); err != nil {
			tst.Errorf("Init failed:\n%v", err)
			return
		}
		chk.String(tst, mdl.Name(), name)
	}

	if _, err := New("conical"); err == nil {
		tst.Errorf("New should fail for unknown model\n")
		return
	}

	no, _ := New("no")
	if err := no.Init(dbf.Params{&dbf.P{N: "ar", V: 2}}); err == nil {
		tst.Errorf("no: Init should reject parameters\n")
		return
	}

	isen, _ := New("isentropic")
	if err := isen.Init(dbf.Params{&dbf.P{N: "ar", V: 0.5}}); err == nil {
		tst.Errorf("isentropic: Init should reject area ratio < 1\n")
		return
	}
}

func Test_dif02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dif02. passthrough model")

	gas, err := prop.New("air")
	if err != nil {
		tst.Errorf("cannot allocate oracle:\n%v", err)
		return
	}
	in, err := gas.State(prop.PT, 1e5, 400.0)
	if err != nil {
		tst.Errorf("State failed:\n%v", err)
		return
	}

	no, _ := New("no")
	no.Init(nil)
	res, err := no.Calc(in, 120.0, 0.1, 10.0, 0.4, 0.05, gas)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	chk.Float64(tst, "p exit", 1e-15, res.Exit.P, in.P)
	chk.Float64(tst, "T exit", 1e-15, res.Exit.T, in.T)
	chk.Float64(tst, "v exit", 1e-15, res.ExitVelocity, 120.0)
	chk.Float64(tst, "recovery", 1e-17, res.Recovery, 0)
	chk.Float64(tst, "Ma in", 1e-10, res.MaIn, 120.0/in.A)
}

func Test_dif03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dif03. isentropic model")

	gas, _ := prop.New("air")
	in, err := gas.State(prop.PT, 1e5, 400.0)
	if err != nil {
		tst.Errorf("State failed:\n%v", err)
		return
	}

	isen, _ := New("isentropic")
	isen.Init(dbf.Params{&dbf.P{N: "ar", V: 2.0}})
	vel := 120.0
	res, err := isen.Calc(in, vel, 0.1, 10.0, 0.4, 0.05, gas)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	io.Pforan("p: %.1f -> %.1f  Cp = %.4f\n", in.P, res.Exit.P, res.Recovery)

	chk.Float64(tst, "v exit", 1e-13, res.ExitVelocity, vel/2.0)
	chk.Float64(tst, "s exit", 1e-9, res.Exit.S, in.S)
	chk.Float64(tst, "h0", 1e-6, res.Exit.H+0.5*res.ExitVelocity*res.ExitVelocity, in.H+0.5*vel*vel)
	if res.Exit.P <= in.P {
		tst.Errorf("exit pressure should exceed inlet pressure\n")
		return
	}
	if res.Recovery <= 0 || res.Recovery >= 1 {
		tst.Errorf("recovery should be in (0,1); got %g\n", res.Recovery)
		return
	}
}

func Test_dif04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dif04. 1d annular channel")

	gas, _ := prop.New("air")
	in, err := gas.State(prop.PT, 1e5, 400.0)
	if err != nil {
		tst.Errorf("State failed:\n%v", err)
		return
	}
	vel := 120.0

	oned, _ := New("1d")
	err = oned.Init(dbf.Params{
		&dbf.P{N: "ar", V: 2.0},
		&dbf.P{N: "div", V: 5.0},
		&dbf.P{N: "cf", V: 0.010},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	res, err := oned.Calc(in, vel, 0.1, 10.0, 0.4, 0.05, gas)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	io.Pforan("p: %.1f -> %.1f  Cp = %.4f  v = %.2f\n", in.P, res.Exit.P, res.Recovery, res.ExitVelocity)

	if res.Recovery <= 0 || res.Recovery >= 1 {
		tst.Errorf("recovery should be in (0,1); got %g\n", res.Recovery)
		return
	}
	if res.ExitVelocity >= vel {
		tst.Errorf("flow should diffuse; exit velocity %g >= %g\n", res.ExitVelocity, vel)
		return
	}
	if res.Exit.S < in.S {
		tst.Errorf("entropy cannot decrease with friction\n")
		return
	}

	// friction costs recovery with respect to the ideal model
	isen, _ := New("isentropic")
	isen.Init(dbf.Params{&dbf.P{N: "ar", V: 2.0}})
	ideal, err := isen.Calc(in, vel, 0.1, 10.0, 0.4, 0.05, gas)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	if res.Recovery >= ideal.Recovery {
		tst.Errorf("1d recovery %g should fall below the ideal %g\n", res.Recovery, ideal.Recovery)
		return
	}

	// frictionless channel conserves entropy along the integration
	nofric, _ := New("1d")
	nofric.Init(dbf.Params{
		&dbf.P{N: "ar", V: 2.0},
		&dbf.P{N: "div", V: 5.0},
		&dbf.P{N: "cf", V: 0.0},
	})
	clean, err := nofric.Calc(in, vel, 0.1, 10.0, 0.4, 0.05, gas)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	chk.Float64(tst, "s frictionless", 1e-4, clean.Exit.S, in.S)
}

func Test_dif05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dif05. 1d domain errors")

	oned, _ := New("1d")
	oned.Init(nil)

	// wet inlet state
	r125, _ := prop.New("r125")
	wet, err := r125.State(prop.PT, 101325.0, 220.0)
	if err != nil {
		tst.Errorf("State failed:\n%v", err)
		return
	}
	if _, err := oned.Calc(wet, 50.0, 0, 10.0, 0.4, 0.05, r125); err == nil {
		tst.Errorf("Calc should fail for a two-phase inlet\n")
		return
	} else if _, ok := err.(*DomainError); !ok {
		tst.Errorf("error should be a DomainError; got %T\n", err)
		return
	}

	// supersonic inlet
	air, _ := prop.New("air")
	in, _ := air.State(prop.PT, 1e5, 400.0)
	if _, err := oned.Calc(in, 2.0*in.A, 0, 10.0, 0.4, 0.05, air); err == nil {
		tst.Errorf("Calc should fail for a supersonic inlet\n")
		return
	}

	// degenerate annulus
	if _, err := oned.Calc(in, 120.0, 0, 10.0, 0.4, 0.0, air); err == nil {
		tst.Errorf("Calc should fail for zero height\n")
		return
	}
}
