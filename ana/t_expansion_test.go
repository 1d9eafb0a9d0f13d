// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/ango12138/AxialOpt/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_expansion01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expansion01. R125 default case")

	var sol IsenExpansion
	sol.Init(nil)

	io.Pforan("Texit = %v\n", sol.Texit())
	io.Pforan("Dhs   = %v\n", sol.Dhs())
	io.Pforan("v0    = %v\n", sol.Vspouting())
	io.Pforan("mdot  = %v\n", sol.Mdot(250e3))

	chk.Float64(tst, "Texit", 0.05, sol.Texit(), 396.835)
	chk.Float64(tst, "Dhs", 20.0, sol.Dhs(), 23864.6)
	chk.Float64(tst, "Vspouting", 0.2, sol.Vspouting(), 218.47)
	chk.Float64(tst, "Dexit", 0.05, sol.Dexit(), 57.07)
	chk.Float64(tst, "Mdot", 0.01, sol.Mdot(250e3), 10.476)
	chk.Float64(tst, "MachExit", 0.01, sol.MachExit(), 1.256)
}

func Test_expansion02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expansion02. cross-check against the property oracle")

	var sol IsenExpansion
	sol.Init(dbf.Params{
		&dbf.P{N: "R", V: 287.06},
		&dbf.P{N: "gam", V: 1.40},
		&dbf.P{N: "T01", V: 1100.0},
		&dbf.P{N: "P01", V: 8.0e5},
		&dbf.P{N: "Pb", V: 2.0e5},
	})

	gas, err := prop.New("air")
	if err != nil {
		tst.Errorf("cannot allocate oracle:\n%v", err)
		return
	}
	in, err := gas.State(prop.PT, 8.0e5, 1100.0)
	if err != nil {
		tst.Errorf("State failed:\n%v", err)
		return
	}
	exit, err := gas.State(prop.PS, 2.0e5, in.S)
	if err != nil {
		tst.Errorf("State failed:\n%v", err)
		return
	}

	io.Pforan("Texit: oracle=%v  analytical=%v\n", exit.T, sol.Texit())
	chk.Float64(tst, "Texit", 1e-6, exit.T, sol.Texit())
	chk.Float64(tst, "Dhs", 1e-4, in.H-exit.H, sol.Dhs())
	chk.Float64(tst, "Dexit", 1e-10, exit.D, sol.Dexit())
}
