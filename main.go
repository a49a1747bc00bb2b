// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	flag "github.com/spf13/pflag"

	"github.com/TannerReese/skedia/expr"
	"github.com/TannerReese/skedia/gallery"
	"github.com/TannerReese/skedia/graph"
	"github.com/TannerReese/skedia/intersect"
	"github.com/TannerReese/skedia/tui"
)

const helpMsg = "Usage: skedia [OPTIONS...] [-i EQU1 [-c COL1] [-i EQU2 [-c COL2] ...]]\n" +
	"Graph curves and functions in the terminal\n" +
	"\n" +
	"    -i, --input=EQUATION     Add an equation for a curve\n" +
	"    -c, --color=COLOR        Set the color of the curve specified before (def: red)\n" +
	"    -e, --center=XPOS,YPOS   Position of the center of the grid (def: 0,0)\n" +
	"    -h, --height=UNITS       Height of grid as float (def: 10)\n" +
	"    -w, --width=UNITS        Width of grid as float (def: 10)\n" +
	"    -x, --intersects         Only calculate and print the intersections\n" +
	"                             of the given curves\n" +
	"    -?, --help               Give this help list\n" +
	"        --usage              Give a short usage message\n" +
	"\n" +
	"Mandatory or optional arguments to long options are also mandatory or optional\n" +
	"for any corresponding short options.\n" +
	"\n" +
	"Colors are designated as red: r, green: g, blue: b, cyan: c, yellow: y, or magenta: m\n" +
	"\nGraph Mode Keys:\n" +
	"    Arrows / hjkl - Move graph\n" +
	"    Shift Arrows / HJKL - Resize horizontally and vertically\n" +
	"    '=' - Zoom In\n" +
	"    '-' - Zoom Out\n" +
	"    '0' - Return to default Zoom Level\n" +
	"    n or N - Find Intersections between curves\n" +
	"    c or C - Clear all Intersections\n" +
	"    , or < - Move to prior Intersection\n" +
	"    . or > - Move to next Intersection\n" +
	"    Control-A (^A) - Switch to Gallery Mode and Create new textbox\n" +
	"    g or G - Switch to Gallery Mode\n" +
	"    Control-C (^C) or Control-Z (^Z) or q or Q - Exit\n" +
	"\nGallery Mode Keys:\n" +
	"    Left & Right Arrows - Move within textbox or change color\n" +
	"    Up & Down Arrows - Move between textboxes and to color picker\n" +
	"    Backspace - Remove character before cursor\n" +
	"    Home - Go to beginning of textbox\n" +
	"    End - Go to end of textbox\n" +
	"    Control-A (^A) - Create new textbox at bottom of gallery\n" +
	"    Control-D (^D) - Delete currently selected textbox and equation\n" +
	"    Esc - Switch to Graph Mode\n" +
	"    Control-C (^C) or Control-Z (^Z) - Exit\n" +
	"\nAvailable builtin functions include sqrt, cbrt, exp, ln, log10, sin, cos, tan,\n" +
	"sec, csc, cot, sinh, cosh, tanh, asin, acos, atan, atan2, abs, ceil, and floor\n" +
	"\n"

const usageMsg = "Usage: skedia [-? | --help] [-w WIDTH] [-h HEIGHT] [-e XPOS,YPOS]\n" +
	"              [-x | --intersects] [-i EQU1 [-c COL1] [-i EQU2 ...]]\n"

// widthValue and heightValue resize the viewport about its centre as soon as
// the flag is seen, the same way the option handler of the original did
type widthValue struct{ gr *graph.Graph }

func (o widthValue) String() string { return "" }
func (o widthValue) Type() string   { return "UNITS" }
func (o widthValue) Set(s string) error {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return chk.Err("width must be a float: %q", s)
	}
	o.gr.SetDims(w, o.gr.H)
	return nil
}

type heightValue struct{ gr *graph.Graph }

func (o heightValue) String() string { return "" }
func (o heightValue) Type() string   { return "UNITS" }
func (o heightValue) Set(s string) error {
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return chk.Err("height must be a float: %q", s)
	}
	o.gr.SetDims(o.gr.W, h)
	return nil
}

type centerValue struct{ gr *graph.Graph }

func (o centerValue) String() string { return "" }
func (o centerValue) Type() string   { return "XPOS,YPOS" }
func (o centerValue) Set(s string) error {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return chk.Err("center must be XPOS,YPOS: %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return chk.Err("center must be XPOS,YPOS: %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return chk.Err("center must be XPOS,YPOS: %q", s)
	}
	// place the upper left corner so that (x, y) sits at the centre
	o.gr.X = x - o.gr.W/2
	o.gr.Y = y + o.gr.H/2
	return nil
}

// inputValue appends and parses one equation. Keeping -i and -c as Values
// preserves their interleaved order on the command line.
type inputValue struct{ gal *gallery.Gallery }

func (o inputValue) String() string { return "" }
func (o inputValue) Type() string   { return "EQUATION" }
func (o inputValue) Set(s string) error {
	eq := o.gal.Add(s)
	if err := o.gal.Parse(eq); err != expr.ErrOK {
		o.gal.Delete(eq)
		return chk.Err("Error %v while reading equation: %s", err, s)
	}
	return nil
}

type colorValue struct{ gal *gallery.Gallery }

func (o colorValue) String() string { return "" }
func (o colorValue) Type() string   { return "COLOR" }
func (o colorValue) Set(s string) error {
	if len(s) != 1 {
		return nil
	}
	last := o.gal.Last()
	if last == nil {
		return nil
	}
	switch s[0] {
	case 'r':
		last.ColorPair = 1
	case 'g':
		last.ColorPair = 2
	case 'b':
		last.ColorPair = 3
	case 'c':
		last.ColorPair = 4
	case 'y':
		last.ColorPair = 5
	case 'm':
		last.ColorPair = 6
	}
	return nil
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	gal := gallery.New()
	gr := graph.Graph{X: -5, Y: 5, W: 10, H: 10}

	fs := flag.NewFlagSet("skedia", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}

	help := fs.BoolP("help", "?", false, "Give this help list")
	usage := fs.Bool("usage", false, "Give a short usage message")
	fs.VarP(widthValue{&gr}, "width", "w", "Width of grid as float (def: 10)")
	fs.VarP(heightValue{&gr}, "height", "h", "Height of grid as float (def: 10)")
	fs.VarP(centerValue{&gr}, "center", "e", "Position of the center of the grid (def: 0,0)")
	fs.VarP(inputValue{gal}, "input", "i", "Add an equation for a curve")
	fs.VarP(colorValue{gal}, "color", "c", "Set the color of the curve specified before (def: red)")
	onlyIntersects := fs.BoolP("intersects", "x", false, "Only calculate and print the intersections of the given curves")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		io.Pf("%s", usageMsg)
		os.Exit(1)
	}

	if *help {
		io.Pf("%s", helpMsg)
		return
	}
	if *usage {
		io.Pf("%s", usageMsg)
		return
	}

	if *onlyIntersects {
		printIntersects(gal, gr)
		os.Exit(1)
	}

	if err := tui.Run(gal, gr); err != nil {
		chk.Panic("cannot start terminal interface:\n%v", err)
	}
}

// printIntersects computes and prints the crossings of every pair of curves
// within the configured viewport, then returns without entering the
// interactive surface
func printIntersects(gal *gallery.Gallery, gr graph.Graph) {
	rect := intersect.Bound{
		X: gr.X, Y: gr.Y,
		Width: gr.W, Height: gr.H,
		Rows: 1000, Cols: 1000,
	}
	prec := gr.W / 10000
	if gr.H < gr.W {
		prec = gr.H / 10000
	}

	var fd intersect.Finder
	var list intersect.List
	for eq1 := gal.Head; eq1 != nil; eq1 = eq1.Next {
		if eq1.IsVariable || eq1.Left == nil || eq1.Right == nil {
			continue
		}
		for eq2 := eq1.Next; eq2 != nil; eq2 = eq2.Next {
			if eq2.IsVariable || eq2.Left == nil || eq2.Right == nil {
				continue
			}
			io.Pf("%s  &  %s\n", eq1.Text, eq2.Text)
			list.Clear()
			list.Collect(&fd, rect, eq1, eq2, 30, prec)
			list.Each(func(it *intersect.Inter) {
				io.Pf("( %.17g , %.17g )\n", it.X, it.Y)
			})
		}
	}
}
