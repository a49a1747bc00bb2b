// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// gridCanvas collects rendered cells for inspection
type gridCanvas struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *gridCanvas {
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &gridCanvas{w: w, h: h, cells: cells}
}

func (o *gridCanvas) Set(x, y int, ch rune) {
	if x < 0 || y < 0 || x >= o.w || y >= o.h {
		return
	}
	o.cells[y][x] = ch
}

// fieldFunc adapts a plain function to the Field interface
type fieldFunc func(x, y float64) float64

func (o fieldFunc) At(x, y float64) float64 { return o(x, y) }

func Test_graph01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph01. plane to raster mapping")

	gr := Graph{X: -5, Y: 5, W: 10, H: 10, Tw: 80, Th: 24}

	px, py, ok := gr.ToGraph(0, 0)
	chk.Float64(tst, "corner x", 1e-17, px, -5)
	chk.Float64(tst, "corner y", 1e-17, py, 5)
	if !ok {
		tst.Errorf("the corner lies within the raster\n")
	}

	tx, ty, ok := gr.FromGraph(0, 0)
	chk.IntAssert(tx, 40)
	chk.IntAssert(ty, 12)
	if !ok {
		tst.Errorf("the origin lies within the viewport\n")
	}

	// validity flags
	if _, _, ok = gr.ToGraph(-1, 0); ok {
		tst.Errorf("negative raster column must be out of range\n")
	}
	if _, _, ok = gr.ToGraph(0, 24); ok {
		tst.Errorf("row Th must be out of range\n")
	}
	if _, _, ok = gr.FromGraph(5, 0); ok {
		tst.Errorf("the right edge is excluded\n")
	}
	if _, _, ok = gr.FromGraph(0, -5); ok {
		tst.Errorf("the bottom edge is excluded\n")
	}
	if _, _, ok = gr.FromGraph(0, 5); !ok {
		tst.Errorf("the top edge is included\n")
	}
}

func Test_graph02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph02. zooming keeps the centre fixed")

	gr := Graph{X: -5, Y: 5, W: 10, H: 10, Tw: 80, Th: 24}

	gr.Zoom(2, 2)
	chk.Float64(tst, "zoomed X", 1e-15, gr.X, -10)
	chk.Float64(tst, "zoomed Y", 1e-15, gr.Y, 10)
	chk.Float64(tst, "zoomed W", 1e-15, gr.W, 20)
	chk.Float64(tst, "zoomed H", 1e-15, gr.H, 20)

	gr.SetDims(10, 10)
	chk.Float64(tst, "reset X", 1e-15, gr.X, -5)
	chk.Float64(tst, "reset Y", 1e-15, gr.Y, 5)

	// an off-centre viewport keeps its own centre
	gr = Graph{X: 0, Y: 4, W: 4, H: 4, Tw: 40, Th: 20}
	gr.Zoom(0.5, 1)
	chk.Float64(tst, "shrunk X", 1e-15, gr.X, 1)
	chk.Float64(tst, "shrunk W", 1e-15, gr.W, 2)
	chk.Float64(tst, "kept Y", 1e-15, gr.Y, 4)
}

func Test_curve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve01. marching squares over the diagonal")

	gr := Graph{X: -5, Y: 5, W: 10, H: 10, Tw: 80, Th: 24}
	cv := newGrid(80, 24)

	// y = x drawn as the zero set of y - x
	diag := fieldFunc(func(x, y float64) float64 { return y - x })
	gr.DrawCurve(cv, diag)

	// the diagonal crosses every row and every column
	for y := 0; y < 24; y++ {
		found := false
		for x := 0; x < 80; x++ {
			if cv.cells[y][x] != ' ' {
				found = true
				break
			}
		}
		if !found {
			tst.Errorf("row %d has no ink\n", y)
		}
	}
	for x := 0; x < 80; x++ {
		found := false
		for y := 0; y < 24; y++ {
			if cv.cells[y][x] != ' ' {
				found = true
				break
			}
		}
		if !found {
			tst.Errorf("column %d has no ink\n", x)
		}
	}

	// the cell holding the origin is on the curve
	tx, ty, _ := gr.FromGraph(0, 0)
	if cv.cells[ty][tx] == ' ' {
		tst.Errorf("the origin cell must carry ink\n")
	}
}

func Test_curve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve02. ink exactly where corner signs differ")

	gr := Graph{X: -2, Y: 2, W: 4, H: 4, Tw: 30, Th: 20}
	cv := newGrid(30, 20)

	circle := fieldFunc(func(x, y float64) float64 { return x*x + y*y - 1 })
	gr.DrawCurve(cv, circle)

	// corner lattice recomputed independently of ToGraph
	xs := utl.LinSpace(gr.X, gr.X+gr.W, gr.Tw+1)
	ys := utl.LinSpace(gr.Y, gr.Y-gr.H, gr.Th+1)

	for x := 0; x < gr.Tw; x++ {
		for y := 0; y < gr.Th; y++ {
			// recompute the corner signs of this cell
			n := 0
			for _, d := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
				if circle.At(xs[x+d[0]], ys[y+d[1]]) >= 0 {
					n++
				}
			}
			mixed := n > 0 && n < 4
			if mixed && cv.cells[y][x] == ' ' {
				tst.Errorf("cell (%d,%d) straddles the curve but is blank\n", x, y)
			}
			if !mixed && cv.cells[y][x] != ' ' {
				tst.Errorf("cell (%d,%d) has uniform signs but carries ink\n", x, y)
			}
		}
	}
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. gridline motifs through the origin")

	gr := Graph{X: -10, Y: 10, W: 20, H: 20, Tw: 80, Th: 24}
	cv := newGrid(80, 24)
	gr.DrawGridlines(cv)

	zeroX, zeroY, _ := gr.FromGraph(0, 0)
	if cv.cells[zeroY][zeroX] != '#' {
		tst.Errorf("the origin crossing must be '#', got %q\n", cv.cells[zeroY][zeroX])
	}

	// the vertical axis uses '$', the horizontal axis '='
	if cv.cells[zeroY-1][zeroX] != '$' && cv.cells[zeroY+1][zeroX] != '$' {
		tst.Errorf("the vertical axis must use '$'\n")
	}
	foundEq := false
	for x := 0; x < 80; x++ {
		if cv.cells[zeroY][x] == '=' {
			foundEq = true
			break
		}
	}
	if !foundEq {
		tst.Errorf("the horizontal axis must use '='\n")
	}

	// ordinary gridlines appear away from the axes
	foundBar, foundCross := false, false
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			switch cv.cells[y][x] {
			case '|':
				foundBar = true
			case '+':
				foundCross = true
			}
		}
	}
	if !foundBar || !foundCross {
		tst.Errorf("ordinary gridlines must use '|' and '+'\n")
	}
}

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01. explicit function rendering")

	gr := Graph{X: -5, Y: 5, W: 10, H: 10, Tw: 40, Th: 20}
	cv := newGrid(40, 20)

	// a constant function draws one horizontal stroke
	gr.DrawFunc(cv, func(x float64) float64 { return 1 })
	_, ty, _ := gr.FromGraph(0, 1)
	for x := 0; x < gr.Tw; x++ {
		if cv.cells[ty][x] != '-' {
			tst.Errorf("column %d: constant curve must draw '-'\n", x)
		}
	}

	// a steep line joins columns with vertical strokes
	cv = newGrid(40, 20)
	gr.DrawFunc(cv, func(x float64) float64 { return 4 * x })
	foundPipe := false
	for y := 0; y < gr.Th; y++ {
		for x := 0; x < gr.Tw; x++ {
			if cv.cells[y][x] == '|' {
				foundPipe = true
			}
		}
	}
	if !foundPipe {
		tst.Errorf("steep segments must be joined with '|'\n")
	}
}

func Test_point01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point01. single point plotting")

	gr := Graph{X: -5, Y: 5, W: 10, H: 10, Tw: 80, Th: 24}
	cv := newGrid(80, 24)

	if !gr.DrawPoint(cv, 1, 1, 'X') {
		tst.Errorf("(1,1) lies within the viewport\n")
	}
	tx, ty, _ := gr.FromGraph(1, 1)
	if cv.cells[ty][tx] != 'X' {
		tst.Errorf("the marker was not placed\n")
	}
	if gr.DrawPoint(cv, 50, 0, 'X') {
		tst.Errorf("(50,0) lies outside the viewport\n")
	}
}
