// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loss

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// statorCascade returns typical data of a subsonic nozzle row
func statorCascade() *Cascade {
	return &Cascade{
		AngIn:   0,
		AngOut:  70.0 * math.Pi / 180.0,
		MaIn:    0.20,
		MaOut:   0.90,
		MaInHub: 0.25,
		Re:      1e6,
		QIn:     5e3,
		QOut:    1.0e5,
		KEOut:   0.9e5,
		Chord:   0.020,
		Pitch:   0.016,
		Opening: 0.00547,
		Height:  0.030,
		RadHub:  0.100,
		RadTip:  0.130,
		TMax:    0.0040,
		TTrail:  0.0005,
		Gap:     0,
	}
}

// rotorCascade returns typical data of a subsonic rotor row (row frame)
func rotorCascade() *Cascade {
	c := statorCascade()
	c.AngIn = 40.0 * math.Pi / 180.0
	c.AngOut = -60.0 * math.Pi / 180.0
	c.Opening = 0.0080
	c.Gap = 4e-4
	c.Rotor = true
	return c
}

func Test_loss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loss01. factory and initialisation")

	for _, name := range []string{"am", "dc", "ko"} {
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

	if _, err := New("craig-cox"); err == nil {
		tst.Errorf("New should fail for unknown correlation\n")
		return
	}

	mdl, _ := New("am")
	if err := mdl.Init(dbf.Params{&dbf.P{N: "wrong", V: 0}}); err == nil {
		tst.Errorf("Init should fail for unknown parameter\n")
		return
	}
}

func Test_loss02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loss02. breakdowns are positive and models differ")

	totals := make(map[string]float64)
	for _, name := range []string{"am", "dc", "ko"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("cannot allocate %q:\n%v", name, err)
			return
		}
		mdl.Init(nil)
		for _, c := range []*Cascade{statorCascade(), rotorCascade()} {
			bd, err := mdl.Calc(c)
			if err != nil {
				tst.Errorf("Calc failed:\n%v", err)
				return
			}
			io.Pf("%2s rotor=%-5v Yp=%.5f Ys=%.5f Yte=%.5f Yk=%.5f Y=%.5f\n",
				name, c.Rotor, bd.Profile, bd.Secondary, bd.TrailingEdge, bd.Clearance, bd.Total)
			if bd.Profile <= 0 || bd.Secondary < 0 || bd.TrailingEdge < 0 || bd.Clearance < 0 {
				tst.Errorf("%s: negative loss component\n", name)
				return
			}
			sum := bd.Profile + bd.Secondary + bd.TrailingEdge + bd.Clearance
			chk.Float64(tst, name+": total", 1e-14, bd.Total, sum)
			if !c.Rotor {
				totals[name] = bd.Total
			}
		}
	}

	// the three systems must not collapse onto each other
	if math.Abs(totals["am"]-totals["dc"]) < 1e-6 ||
		math.Abs(totals["am"]-totals["ko"]) < 1e-6 ||
		math.Abs(totals["dc"]-totals["ko"]) < 1e-6 {
		tst.Errorf("correlation totals should differ: %v\n", totals)
		return
	}
}

func Test_loss03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loss03. chart fits")

	// profile charts at known points
	chk.Float64(tst, "ypNozzle(0.8,70)", 1e-10, ypNozzle(0.80, 70.0*math.Pi/180.0), 0.04326875)
	chk.Float64(tst, "ypImpulse(0.62,60)", 1e-6, ypImpulse(0.62, 60.0*math.Pi/180.0), 0.118082)

	// impulse blades lose more than nozzle blades
	for _, d := range []float64{50.0, 60.0, 70.0} {
		a2 := d * math.Pi / 180.0
		if ypImpulse(0.7, a2) <= ypNozzle(0.7, a2) {
			tst.Errorf("impulse loss should exceed nozzle loss at a2=%g deg\n", d)
			return
		}
	}

	// trailing-edge factor is unity at the chart datum and clamped below
	c := statorCascade()
	c.TTrail = 0.02 * c.Pitch
	chk.Float64(tst, "teFactor datum", 1e-15, teFactor(c), 1.0)
	c.TTrail = 0
	chk.Float64(tst, "teFactor clamp", 1e-15, teFactor(c), 0.9)

	// secondary λ chart: linear part and cap
	chk.Float64(tst, "λ(0.1)", 1e-15, secondaryLambda(0.1), 0.0133)
	chk.Float64(tst, "λ cap", 1e-15, secondaryLambda(1.0), 0.035)

	// interpolation ratio clamps to [0,1]
	_, _, q := frame(statorCascade())
	chk.Float64(tst, "q nozzle", 1e-15, q, 0)
	r := rotorCascade()
	r.AngIn = 60.0 * math.Pi / 180.0
	_, _, q = frame(r)
	chk.Float64(tst, "q impulse", 1e-15, q, 1.0)
}

func Test_loss04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loss04. Reynolds and clearance behaviour")

	// dc: loss decreases with Reynolds number
	dc, _ := New("dc")
	dc.Init(nil)
	lo := statorCascade()
	hi := statorCascade()
	lo.Re, hi.Re = 2e5, 2e6
	bdlo, _ := dc.Calc(lo)
	bdhi, _ := dc.Calc(hi)
	if bdhi.Total >= bdlo.Total {
		tst.Errorf("dc: loss should decrease with Re (%.5f >= %.5f)\n", bdhi.Total, bdlo.Total)
		return
	}

	// ko: piecewise Reynolds factor is unity on the plateau
	ko, _ := New("ko")
	ko.Init(nil)
	a := statorCascade()
	b := statorCascade()
	a.Re, b.Re = 3e5, 9e5
	bda, _ := ko.Calc(a)
	bdb, _ := ko.Calc(b)
	chk.Float64(tst, "ko plateau", 1e-14, bda.Profile, bdb.Profile)

	// clearance loss appears only with a positive gap
	am, _ := New("am")
	am.Init(nil)
	bd, _ := am.Calc(statorCascade())
	chk.Float64(tst, "am: shrouded Yk", 1e-17, bd.Clearance, 0)
	bd, _ = am.Calc(rotorCascade())
	if bd.Clearance <= 0 {
		tst.Errorf("am: rotor clearance loss should be positive\n")
		return
	}

	// dc: supersonic exit penalty
	sub := statorCascade()
	sup := statorCascade()
	sup.MaOut = 1.2
	bdsub, _ := dc.Calc(sub)
	bdsup, _ := dc.Calc(sup)
	if bdsup.Profile <= 2.0*bdsub.Profile {
		tst.Errorf("dc: supersonic penalty too weak (%.5f vs %.5f)\n", bdsup.Profile, bdsub.Profile)
		return
	}
}

func Test_loss05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loss05. domain errors")

	ko, _ := New("ko")
	ko.Init(nil)

	for _, mod := range []func(c *Cascade){
		func(c *Cascade) { c.Chord = 0 },
		func(c *Cascade) { c.Opening = 0 },
		func(c *Cascade) { c.AngOut = 0 },
		func(c *Cascade) { c.Re = -1 },
		func(c *Cascade) { c.QOut = 0 },
	} {
		c := statorCascade()
		mod(c)
		_, err := ko.Calc(c)
		if err == nil {
			tst.Errorf("Calc should fail for degenerate input\n")
			return
		}
		io.Pf("%v\n", err)
		if _, ok := err.(*DomainError); !ok {
			tst.Errorf("error should be a DomainError; got %T\n", err)
			return
		}
	}
}
