// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/TannerReese/skedia/expr"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func mustParse(tst *testing.T, gal *Gallery, text string) *Equation {
	eq := gal.Add(text)
	if err := gal.Parse(eq); err != expr.ErrOK {
		tst.Errorf("parse of %q failed: %v\n", text, err)
	}
	return eq
}

func Test_equat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("equat01. proper equations and the coordinate registers")

	gal := New()
	eq := mustParse(tst, gal, "y = x^2")
	if eq.IsVariable {
		tst.Errorf("y = x^2 is not a variable definition\n")
	}
	chk.Float64(tst, "residual on curve", 1e-17, eq.At(3, 9), 0)
	chk.Float64(tst, "residual off curve", 1e-17, eq.At(3, 10), 1)

	// r resolves to the distance from the origin
	circle := mustParse(tst, gal, "r = 1")
	chk.Float64(tst, "circle on", 1e-15, circle.At(0.6, 0.8), 0)
	chk.Float64(tst, "circle off", 1e-15, circle.At(2, 0), 1)

	// equations are linked in the order they were added
	if gal.Head != eq || eq.Next != circle || circle.Prev != eq {
		tst.Errorf("gallery links are wrong\n")
	}
}

func Test_var01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("var01. variable definitions with arguments")

	gal := New()
	f := mustParse(tst, gal, "f(a) := a*a")
	if !f.IsVariable {
		tst.Errorf("f must be a variable definition\n")
		return
	}
	if f.Name != "f" {
		tst.Errorf("variable name is %q\n", f.Name)
	}
	chk.IntAssert(f.Arity, 1)

	y := mustParse(tst, gal, "y = f(x)")
	chk.Float64(tst, "f(3)", 1e-17, y.At(3, 9), 0)

	// two arguments, order preserved
	g := mustParse(tst, gal, "g(a, b) := a - b")
	chk.IntAssert(g.Arity, 2)
	z := mustParse(tst, gal, "y = g(x, 2)")
	chk.Float64(tst, "g(5, 2)", 1e-17, z.At(5, 3), 0)

	// nullary variable
	mustParse(tst, gal, "two := 2")
	w := mustParse(tst, gal, "y = two * x")
	chk.Float64(tst, "two*4", 1e-17, w.At(4, 8), 0)

	// wrong number of arguments
	bad := gal.Add("y = f(x, x)")
	if err := gal.Parse(bad); err != expr.ErrBadArity {
		tst.Errorf("arity mismatch must fail with BAD_ARITY, got %v\n", err)
	}
}

func Test_cascade01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cascade01. dependents re-parse when a definition changes")

	gal := New()
	f := mustParse(tst, gal, "f(a) := a*a")
	y := mustParse(tst, gal, "y = f(x)")
	chk.Float64(tst, "before: f(3) = 9", 1e-17, y.At(3, 9), 0)

	// replacing f must cascade into y
	f.Text = "f(a) := a + 1"
	if err := gal.Parse(f); err != expr.ErrOK {
		tst.Errorf("redefinition failed: %v\n", err)
		return
	}
	chk.Float64(tst, "after: f(3) = 4", 1e-17, y.At(3, 4), 0)
	if y.At(3, 9) == 0 {
		tst.Errorf("dependent still evaluates the old definition\n")
	}

	// a chain of definitions cascades transitively
	h := mustParse(tst, gal, "h := 2")
	mustParse(tst, gal, "k := h + 1")
	u := mustParse(tst, gal, "y = k")
	chk.Float64(tst, "k = 3", 1e-17, u.At(0, 3), 0)

	h.Text = "h := 10"
	if err := gal.Parse(h); err != expr.ErrOK {
		tst.Errorf("redefinition failed: %v\n", err)
		return
	}
	chk.Float64(tst, "k = 11", 1e-17, u.At(0, 11), 0)
}

func Test_cycle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cycle01. self reference is rejected")

	gal := New()
	g := gal.Add("g := g + 1")
	if err := gal.Parse(g); err != expr.ErrBadExpression {
		tst.Errorf("self reference must fail with BAD_EXPRESSION, got %v\n", err)
	}
	if g.Right != nil {
		tst.Errorf("failed definition must not publish an expression\n")
	}

	// an unrelated equation still parses afterwards
	mustParse(tst, gal, "y = x")
}

func Test_parseerr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parseerr01. error tags surface on the equation")

	gal := New()
	cases := []struct {
		text string
		err  expr.ParseErr
	}{
		{"x +", expr.ErrBadExpression}, // no '=' at all
		{"x + = 1", expr.ErrMissingValue},
		{"sin(x, y) = 1", expr.ErrBadArity},
		{"((x) = 1", expr.ErrParenthMismatch},
		{"& = 1", expr.ErrUnusedCharacter},
		{"x y = 1", expr.ErrTooManyValues},
		{"y = qqq", expr.ErrUnrecognizedName},
		{"f g := 1", expr.ErrTooManyValues},
		{"f(a := a", expr.ErrParenthMismatch},
		{"f(a$) := a", expr.ErrUnusedCharacter},
	}
	for _, c := range cases {
		eq := gal.Add(c.text)
		if err := gal.Parse(eq); err != c.err {
			tst.Errorf("%q: error is %v, not %v\n", c.text, err, c.err)
		}
		if eq.Err != c.err {
			tst.Errorf("%q: equation must store its error\n", c.text)
		}
		gal.Delete(eq)
	}
}

func Test_delete01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("delete01. unlinking equations")

	gal := New()
	a := mustParse(tst, gal, "y = x")
	b := mustParse(tst, gal, "y = x + 1")
	c := mustParse(tst, gal, "y = x + 2")

	gal.Delete(b)
	if a.Next != c || c.Prev != a {
		tst.Errorf("deleting the middle equation broke the links\n")
	}
	gal.Delete(a)
	if gal.Head != c || c.Prev != nil {
		tst.Errorf("deleting the head must advance it\n")
	}
	gal.Delete(c)
	if gal.Head != nil || gal.Last() != nil {
		tst.Errorf("gallery must be empty\n")
	}
}
