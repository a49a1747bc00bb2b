// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package graph implements the viewport and the character-cell renderers
package graph

// Canvas receives rendered cells. Implementations clip out-of-range cells.
type Canvas interface {
	Set(x, y int, ch rune) // place ch at column x, row y
}

// Field is a scalar function of the plane; curves are its zero set
type Field interface {
	At(x, y float64) float64
}

// Graph maps a rectangle of the plane onto a character raster
type Graph struct {
	X, Y float64 // plane coordinates of the upper left corner
	W, H float64 // width and height of the viewport in the plane

	Tw, Th int // raster width and height in character cells
}

// ToGraph converts a raster location to plane coordinates. The flag reports
// whether the location lies within the raster.
func (o Graph) ToGraph(tx, ty int) (px, py float64, ok bool) {
	px = o.X + float64(tx)*o.W/float64(o.Tw)
	py = o.Y - float64(ty)*o.H/float64(o.Th)
	ok = 0 <= tx && tx < o.Tw && 0 <= ty && ty < o.Th
	return
}

// FromGraph converts plane coordinates to a raster location. The flag reports
// whether the point lies within the viewport.
func (o Graph) FromGraph(px, py float64) (tx, ty int, ok bool) {
	tx = int((px - o.X) * float64(o.Tw) / o.W)
	ty = int((o.Y - py) * float64(o.Th) / o.H)
	ok = o.X <= px && px < o.X+o.W && o.Y-o.H < py && py <= o.Y
	return
}

// Zoom scales the viewport extents while keeping the centre fixed. A scale
// greater than one zooms out.
func (o *Graph) Zoom(scaleX, scaleY float64) {
	if scaleX != 1 {
		o.X -= o.W * (scaleX - 1) / 2
		o.W *= scaleX
	}
	if scaleY != 1 {
		o.Y += o.H * (scaleY - 1) / 2
		o.H *= scaleY
	}
}

// SetDims sets the extents of the viewport while keeping the centre fixed
func (o *Graph) SetDims(w, h float64) {
	o.X += (o.W - w) / 2
	o.Y -= (o.H - h) / 2
	o.W = w
	o.H = h
}
