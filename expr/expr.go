// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package expr implements expression trees, their evaluation and parsing
package expr

import (
	"math"
)

// Kind distinguishes the types of expression nodes
//  KindConst  -- numeric literals (e.g. 1, 2.5) and named constants (e.g. e, pi)
//  KindArg    -- arguments to an expression, identified by index (e.g. 0 => first argument)
//  KindCached -- evaluates to the value held by a stable float64 location
//  KindVar    -- expressions defined elsewhere, called with the children as arguments
//  KindFunc1, KindFunc2, KindFuncN -- builtin functions of arity 1, 2, or more
//  KindAdd    -- sums and differences
//  KindMul    -- products and quotients
//  KindPow    -- exponentiation
type Kind int

const (
	KindConst Kind = iota
	KindArg
	KindCached
	KindVar
	KindFunc1
	KindFunc2
	KindFuncN
	KindAdd
	KindMul
	KindPow

	// parse-time markers; never the kind of a finished node
	kindParenth
	kindComma
)

// Expr is one node of an expression tree
type Expr struct {
	Kind Kind // which variant of node this is

	// inversions applied to the evaluated value after the children contribute.
	// Children of Add/Mul use their own flags to express subtraction/division:
	// a - b is Add[a, b(AddInv)]; a / b is Mul[a, b(MulInv)]
	AddInv bool // negate the value
	MulInv bool // take the reciprocal of the value

	Val    float64  // KindConst: constant value
	ArgIdx int      // KindArg: index into the argument vector
	Cache  *float64 // KindCached: location read at evaluation time; must outlive the node
	Ref    *Expr    // KindVar: expression evaluated with the children as its arguments
	Fn     *Builtin // KindFunc1/KindFunc2/KindFuncN: builtin-table entry

	Arity    int     // KindVar/KindFuncN: declared number of arguments
	Children []*Expr // ordered children; order matters for Pow and function calls
}

// NewConst returns a constant node
func NewConst(c float64) *Expr {
	return &Expr{Kind: KindConst, Val: c}
}

// NewArg returns a node evaluating to the argIdx'th argument
func NewArg(argIdx int) *Expr {
	return &Expr{Kind: KindArg, ArgIdx: argIdx}
}

// NewCached returns a node evaluating to the value stored at cache
func NewCached(cache *float64) *Expr {
	return &Expr{Kind: KindCached, Cache: cache}
}

// NewVar returns a node that calls ref with arity arguments. The children are
// attached later by the parser; a zero-arity reference stays childless.
func NewVar(ref *Expr, arity int) *Expr {
	return &Expr{Kind: KindVar, Ref: ref, Arity: arity}
}

// Eval computes the value of the expression using args in place of argument
// nodes. The node's inversion flags are applied after the raw value is known.
// Domain errors and overflow are not trapped; they propagate as NaN/Inf.
func (o *Expr) Eval(args []float64) (res float64) {
	if o == nil {
		return 0
	}
	switch o.Kind {
	case KindConst:
		res = o.Val
	case KindArg:
		res = args[o.ArgIdx]
	case KindCached:
		res = *o.Cache
	case KindFunc1:
		res = o.Fn.F1(o.Children[0].Eval(args))
	case KindFunc2:
		res = o.Fn.F2(o.Children[0].Eval(args), o.Children[1].Eval(args))
	case KindAdd:
		for _, c := range o.Children {
			res += c.Eval(args)
		}
	case KindMul:
		res = 1
		for _, c := range o.Children {
			res *= c.Eval(args)
		}
	case KindPow:
		res = math.Pow(o.Children[0].Eval(args), o.Children[1].Eval(args))
	case KindVar, KindFuncN:
		newArgs := make([]float64, len(o.Children))
		for i, c := range o.Children {
			newArgs[i] = c.Eval(args)
		}
		if o.Kind == KindVar {
			res = o.Ref.Eval(newArgs)
		} else {
			res = o.Fn.FN(newArgs)
		}
	}
	if o.AddInv {
		res = -res
	}
	if o.MulInv {
		res = 1 / res
	}
	return
}

// Constify folds the subtree into a constant node whenever every leaf below is
// already constant. Nodes containing Arg or Cached leaves are left untouched.
// Folding clears the inversion flags since the folded value includes them.
func (o *Expr) Constify() *Expr {
	if o.Kind == KindConst || o.Kind == KindArg || o.Kind == KindCached {
		return o
	}
	isConst := true
	for _, c := range o.Children {
		if c.Constify().Kind != KindConst {
			isConst = false
		}
	}
	if isConst {
		evaled := o.Eval(nil)
		o.Kind = KindConst
		o.Val = evaled
		o.AddInv = false
		o.MulInv = false
		o.Ref = nil
		o.Fn = nil
		o.Arity = 0
		o.Children = nil
	}
	return o
}

// Match tells whether a and b have the same kind and identifying parameters.
// Children and inversion flags are not considered.
func Match(a, b *Expr) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindConst:
		return a.Val == b.Val
	case KindArg:
		return a.ArgIdx == b.ArgIdx
	case KindCached:
		return a.Cache == b.Cache
	case KindVar:
		return a.Ref == b.Ref
	case KindFunc1, KindFunc2, KindFuncN:
		return a.Fn == b.Fn
	}
	return true // Add, Mul, Pow carry no identifying parameters
}

// Depends tells whether any subtree of o matches target
func Depends(o, target *Expr) bool {
	if Match(o, target) {
		return true
	}
	for _, c := range o.Children {
		if Depends(c, target) {
			return true
		}
	}
	return false
}
