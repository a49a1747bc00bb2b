// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// log10of2 decides whether gridline demarcations of 5 * 10^p fit better than 10^p
const log10of2 = 0.30102999566

// DrawGridlines draws the decade gridlines with numeric labels. Lines through
// the origin use the $, = and # motifs; all others use |, - and +.
func (o Graph) DrawGridlines(cv Canvas) {
	lgw := math.Log10(o.W / 2.5)
	lgh := math.Log10(o.H / 2.5)

	// greatest power of ten below each extent, upgraded to half-decades
	cw := math.Pow(10, math.Floor(lgw))
	ch := math.Pow(10, math.Floor(lgh))
	if lgw-math.Floor(lgw) > log10of2 {
		cw *= 5
	}
	if lgh-math.Floor(lgh) > log10of2 {
		ch *= 5
	}

	x0init := cw * math.Floor((o.X+o.W)/cw)
	y0init := ch * (1 + math.Floor((o.Y-o.H)/ch))

	zeroX, zeroY, _ := o.FromGraph(0, 0)

	for x0 := x0init; x0 > o.X; x0 -= cw {
		x, _, _ := o.FromGraph(x0, 0)
		for y := 0; y < o.Th; y++ {
			if x == zeroX {
				cv.Set(x, y, '$')
			} else {
				cv.Set(x, y, '|')
			}
		}
		drawLabel(cv, x, 0, io.Sf("%.4g", x0))
	}

	for y0 := y0init; y0 <= o.Y; y0 += ch {
		_, y, _ := o.FromGraph(0, y0)

		// keep the labels drawn by the vertical pass intact
		if y == 0 {
			continue
		}

		for x := 0; x < o.Tw; x++ {
			if y == zeroY {
				cv.Set(x, y, '=')
			} else {
				cv.Set(x, y, '-')
			}
		}

		// redraw the crossings
		for x0 := x0init; x0 > o.X; x0 -= cw {
			x, _, _ := o.FromGraph(x0, 0)
			if y == zeroY {
				cv.Set(x, y, '#')
			} else {
				cv.Set(x, y, '+')
			}
		}

		drawLabel(cv, 0, y, io.Sf("%.4g", y0))
	}
}

func drawLabel(cv Canvas, x, y int, label string) {
	for i, ch := range label {
		cv.Set(x+i, y, ch)
	}
}

/* patternToChar maps the corner signs of a cell to its glyph
 *  a0 --- a1
 *   |      |
 *  a2 --- a3
 *  index = a3*8 + a2*4 + a1*2 + a0
 */
var patternToChar = [16]rune{
	' ', '\'', '`', '-', // 0 - 3
	'.', '|', '+', ',', // 4 - 7
	',', '+', '|', '.', // 8 - 11
	'-', '`', '\'', ' ', // 12 - 15
}

// DrawCurve renders the zero set of f by marching squares: the sign of f is
// sampled at every lattice corner of the raster and each cell draws the glyph
// selected by its four corner signs. Cells with uniform signs stay blank, as
// do cells whose corners evaluate to NaN.
func (o Graph) DrawCurve(cv Canvas, f Field) {
	// signs at the (Tw+1) x (Th+1) lattice corners, column-major
	isPos := make([]bool, (o.Tw+1)*(o.Th+1))
	i := 0
	for x := 0; x <= o.Tw; x++ {
		px, _, _ := o.ToGraph(x, 0)
		for y := 0; y <= o.Th; y++ {
			_, py, _ := o.ToGraph(0, y)
			isPos[i] = f.At(px, py) >= 0
			i++
		}
	}

	i = 0
	for x := 0; x < o.Tw; x++ {
		for y := 0; y < o.Th; y++ {
			acc := 0
			if isPos[i] {
				acc |= 1 // top left
			}
			if isPos[i+o.Th+1] {
				acc |= 2 // top right
			}
			if isPos[i+1] {
				acc |= 4 // bottom left
			}
			if isPos[i+o.Th+2] {
				acc |= 8 // bottom right
			}
			if ch := patternToChar[acc]; ch != ' ' {
				cv.Set(x, y, ch)
			}
			i++
		}
		// the cell loop covers one fewer row than the corner lattice
		i++
	}
}

// DrawFunc renders an explicit curve y = f(x), joining consecutive columns
// with vertical strokes where the curve moves more than one row per cell
func (o Graph) DrawFunc(cv Canvas, f func(x float64) float64) {
	for x := 0; x < o.Tw; x++ {
		gx, _, _ := o.ToGraph(x, 0)
		_, y, _ := o.FromGraph(0, f(gx))

		gx, _, _ = o.ToGraph(x+1, 0)
		_, top, _ := o.FromGraph(0, f(gx))

		if top == y {
			// the curve passes horizontally through the cell
			cv.Set(x, y, '-')
			continue
		}

		// end pieces of the vertical stroke
		if 0 < y && y < o.Th {
			if top < y {
				cv.Set(x, y, '\'')
			} else {
				cv.Set(x, y, '.')
			}
		}
		if 0 < top && top < o.Th {
			if top < y {
				cv.Set(x, top, ',')
			} else {
				cv.Set(x, top, '`')
			}
		}

		step := 1
		if top < y {
			step = -1
		}
		for y += step; y != top; y += step {
			if 0 < y && y < o.Th {
				cv.Set(x, y, '|')
			}
		}
	}
}

// DrawPoint places ch at the raster cell containing the plane point (x, y).
// Reports whether the point fell within the viewport.
func (o Graph) DrawPoint(cv Canvas, x, y float64, ch rune) bool {
	tx, ty, ok := o.FromGraph(x, y)
	if ok {
		cv.Set(tx, ty, ch)
	}
	return ok
}
