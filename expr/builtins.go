// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"strings"
)

// Builtin holds one entry of the table of known constants and functions.
// Arity 0 entries are constants; arity 1 and 2 entries use F1 and F2 unless
// UseN is set, in which case FN receives the whole argument vector.
type Builtin struct {
	Name  string  // name consulted case-insensitively during parsing
	Arity int     // number of arguments; 0 means constant
	UseN  bool    // use FN instead of F1/F2
	Val   float64 // constant value for arity 0 entries

	F1 func(x float64) float64
	F2 func(x, y float64) float64
	FN func(args []float64) float64
}

func sec(x float64) float64 { return 1 / math.Cos(x) }
func csc(x float64) float64 { return 1 / math.Sin(x) }
func cot(x float64) float64 { return math.Cos(x) / math.Sin(x) }

// builtins is the fixed catalogue of named constants and functions
var builtins = []Builtin{
	{Name: "pi", Val: math.Pi},
	{Name: "e", Val: math.E},
	{Name: "sqrt", Arity: 1, F1: math.Sqrt},
	{Name: "cbrt", Arity: 1, F1: math.Cbrt},

	{Name: "exp", Arity: 1, F1: math.Exp},
	{Name: "ln", Arity: 1, F1: math.Log},
	{Name: "log10", Arity: 1, F1: math.Log10},

	{Name: "sin", Arity: 1, F1: math.Sin},
	{Name: "cos", Arity: 1, F1: math.Cos},
	{Name: "tan", Arity: 1, F1: math.Tan},

	{Name: "sec", Arity: 1, F1: sec},
	{Name: "csc", Arity: 1, F1: csc},
	{Name: "cot", Arity: 1, F1: cot},

	{Name: "sinh", Arity: 1, F1: math.Sinh},
	{Name: "cosh", Arity: 1, F1: math.Cosh},
	{Name: "tanh", Arity: 1, F1: math.Tanh},

	{Name: "asin", Arity: 1, F1: math.Asin},
	{Name: "acos", Arity: 1, F1: math.Acos},
	{Name: "atan", Arity: 1, F1: math.Atan},
	{Name: "atan2", Arity: 2, F2: math.Atan2},

	{Name: "abs", Arity: 1, F1: math.Abs},
	{Name: "ceil", Arity: 1, F1: math.Ceil},
	{Name: "floor", Arity: 1, F1: math.Floor},
}

// LookupBuiltin finds the builtin with the given name, ignoring case.
// Returns nil when no entry matches.
func LookupBuiltin(name string) *Builtin {
	for i := range builtins {
		if strings.EqualFold(builtins[i].Name, name) {
			return &builtins[i]
		}
	}
	return nil
}
