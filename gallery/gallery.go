// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gallery implements the list of equations and their resolution
package gallery

import (
	"math"
	"strings"

	"github.com/TannerReese/skedia/expr"
)

// TextboxSize bounds the text of one equation
const TextboxSize = 64

// Equation is one entry of the gallery. A proper equation "L = R" owns both
// sides; a variable definition "name(a, b) := R" owns the right side only and
// publishes its name to the rest of the gallery.
type Equation struct {
	Text string        // contents of the textbox (at most TextboxSize bytes)
	Curs int           // cursor offset in Text; -1 puts the focus on the colour bar
	Err  expr.ParseErr // outcome of the last parse

	Left  *expr.Expr // left hand side; nil for variable definitions
	Right *expr.Expr // right hand side

	IsVariable bool     // defined with ':='
	Name       string   // variable name
	ArgNames   []string // variable argument names, in declaration order
	Arity      int      // len(ArgNames)

	ColorPair int // palette index for the curve

	beingParsed bool // breaks recursion during the dependency cascade

	Prev, Next *Equation
	gal        *Gallery
}

// Gallery holds the ordered list of equations along with the shared
// coordinate registers written before every evaluation
type Gallery struct {
	Head *Equation

	xref, yref, rref float64 // cached slots bound to the names x, y, r

	argNames []string // active argument list while a variable definition parses
}

// New returns an empty gallery
func New() *Gallery {
	return new(Gallery)
}

// Add appends a new equation with the given text at the end of the gallery
func (o *Gallery) Add(text string) *Equation {
	if len(text) > TextboxSize {
		text = text[:TextboxSize]
	}
	eq := &Equation{Text: text, ColorPair: 1, gal: o}
	if o.Head == nil {
		o.Head = eq
		return eq
	}
	last := o.Head
	for last.Next != nil {
		last = last.Next
	}
	last.Next = eq
	eq.Prev = last
	return eq
}

// Last returns the final equation of the gallery, or nil when empty
func (o *Gallery) Last() *Equation {
	if o.Head == nil {
		return nil
	}
	eq := o.Head
	for eq.Next != nil {
		eq = eq.Next
	}
	return eq
}

// Delete unlinks eq from the gallery
func (o *Gallery) Delete(eq *Equation) {
	if eq.Prev != nil {
		eq.Prev.Next = eq.Next
	} else {
		o.Head = eq.Next
	}
	if eq.Next != nil {
		eq.Next.Prev = eq.Prev
	}
	eq.Prev = nil
	eq.Next = nil
}

// At evaluates the residual of a proper equation at the given point by
// subtracting the right side from the left. The shared registers are written
// first so that cached x, y, r nodes read this sample.
func (o *Equation) At(x, y float64) float64 {
	o.gal.xref = x
	o.gal.yref = y
	o.gal.rref = math.Hypot(x, y)
	return o.Left.Eval(nil) - o.Right.Eval(nil)
}

// translate resolves a name the builtin table does not know. The strata are
// checked in order: active argument list, the shared coordinates x, y, r, and
// finally variable definitions published by the gallery. Referencing a
// definition that is mid-parse and has no published expression yet is the
// cycle case and fails with ErrBadExpression.
func (o *Gallery) translate(name string) (*expr.Expr, expr.ParseErr) {
	for i, a := range o.argNames {
		if a == name {
			return expr.NewArg(i), expr.ErrOK
		}
	}

	if len(name) == 1 {
		switch name[0] {
		case 'x':
			return expr.NewCached(&o.xref), expr.ErrOK
		case 'y':
			return expr.NewCached(&o.yref), expr.ErrOK
		case 'r':
			return expr.NewCached(&o.rref), expr.ErrOK
		}
	}

	for eq := o.Head; eq != nil; eq = eq.Next {
		if !eq.IsVariable || eq.Name != name {
			continue
		}
		if eq.Right == nil {
			if eq.beingParsed {
				return nil, expr.ErrBadExpression
			}
			continue // leftover of a failed parse; keep scanning
		}
		return expr.NewVar(eq.Right, eq.Arity), expr.ErrOK
	}
	return nil, expr.ErrOK
}

// Parse reads the text of eq, replacing its expression trees. Variable
// definitions re-publish their name; afterwards every other equation whose
// sides referenced the replaced right-hand tree is re-parsed so that it picks
// up the new definition.
func (o *Gallery) Parse(eq *Equation) expr.ParseErr {
	if eq.beingParsed {
		return expr.ErrBadExpression
	}
	eq.beingParsed = true
	defer func() { eq.beingParsed = false }()

	sep := strings.IndexByte(eq.Text, '=')
	if sep < 0 {
		eq.Err = expr.ErrBadExpression
		return eq.Err
	}

	if sep > 0 && eq.Text[sep-1] == ':' {
		eq.IsVariable = true
		eq.Left = nil
		eq.Name = ""
		eq.ArgNames = nil
		eq.Arity = 0
		eq.Err = o.parseVarDecl(eq, eq.Text[:sep-1])
		if eq.Err != expr.ErrOK {
			o.argNames = nil
			return eq.Err
		}
		o.argNames = eq.ArgNames
	} else {
		eq.IsVariable = false
		o.argNames = nil
		eq.Left, eq.Err = expr.Parse(eq.Text[:sep], o.translate)
		if eq.Err != expr.ErrOK {
			return eq.Err
		}
	}

	// keep the replaced tree to find dependents afterwards
	oldRef := eq.Right

	eq.Right, eq.Err = expr.Parse(eq.Text[sep+1:], o.translate)
	o.argNames = nil

	if oldRef != nil {
		needle := expr.NewVar(oldRef, 0)
		for eq2 := o.Head; eq2 != nil; eq2 = eq2.Next {
			if eq2 == eq {
				continue
			}
			if !eq2.IsVariable && eq2.Left != nil && expr.Depends(eq2.Left, needle) {
				o.Parse(eq2)
			}
			if eq2.Right != nil && expr.Depends(eq2.Right, needle) {
				o.Parse(eq2)
			}
		}
	}

	if eq.Err != expr.ErrOK {
		eq.Left = nil
		return eq.Err
	}
	return expr.ErrOK
}

// parseVarDecl reads the left side of a variable definition, either a bare
// name or name(arg, arg, ...). Alphanumeric sequences, one level of
// parentheses, and commas are the whole grammar.
func (o *Gallery) parseVarDecl(eq *Equation, decl string) expr.ParseErr {
	inParenth := false
	extraArg := false
	for i := 0; i < len(decl); i++ {
		c := decl[i]
		switch {
		case isSpace(c):
			continue
		case isAlpha(c):
			if extraArg {
				return expr.ErrTooManyValues
			}
			start := i
			for i < len(decl) && isAlnum(decl[i]) {
				i++
			}
			word := decl[start:i]
			i--
			if eq.Name == "" {
				eq.Name = word
			} else {
				eq.ArgNames = append(eq.ArgNames, word)
				eq.Arity++
			}
			extraArg = true
		case c == '(' || c == ')':
			if inParenth == (c == '(') {
				return expr.ErrParenthMismatch
			}
			inParenth = c == '('
			extraArg = false
		case c == ',':
			extraArg = false
		default:
			return expr.ErrUnusedCharacter
		}
	}
	if inParenth {
		return expr.ErrParenthMismatch
	}
	return expr.ErrOK
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r' }
func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isAlnum(c byte) bool { return isAlpha(c) || c >= '0' && c <= '9' }
