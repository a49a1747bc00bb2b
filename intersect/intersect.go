// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package intersect locates the points where two implicit curves cross
package intersect

// Curve is a scalar function of the plane whose zero set is one curve.
// Intersections remember the Curve values that produced them, so implementors
// must be comparable (a pointer receiver suffices).
type Curve interface {
	At(x, y float64) float64
}

// Bound is the rectangle searched for crossings, sampled on a lattice with
// the given number of rows and columns of cells
type Bound struct {
	X, Y          float64 // location of the top left corner
	Width, Height float64

	Rows, Cols int
}

// Point is a location in the plane
type Point struct {
	X, Y float64
}

// triag is a triangular search region
type triag struct {
	a, b, c Point
}

/* invert calculates the half-sized inverted medial triangle
 *       +
 *      / \
 *     #---#
 *    / \ / \
 *   +---#---+
 *  +  -->  tr
 *  #  -->  result
 */
func invert(tr triag) (htr triag) {
	htr.a.X = (tr.b.X + tr.c.X) / 2
	htr.a.Y = (tr.b.Y + tr.c.Y) / 2

	htr.b.X = (tr.a.X + tr.c.X) / 2
	htr.b.Y = (tr.a.Y + tr.c.Y) / 2

	htr.c.X = (tr.a.X + tr.b.X) / 2
	htr.c.Y = (tr.a.Y + tr.b.Y) / 2
	return
}

// checkTriag tells whether both curves pass through a triangle with the given
// corner classifications: some edge must straddle zero on both functions
func checkTriag(a, b, c byte) bool {
	return a^b == 3 || b^c == 3 || c^a == 3
}

// Finder enumerates the crossings of a pair of curves inside a bound. It is a
// resumable stream: Start begins a fresh enumeration (abandoning any previous
// one) and each Next call delivers another crossing until the lattice is
// exhausted. Only one enumeration is live per Finder.
type Finder struct {
	f1, f2 Curve
	depth  int

	// rows of cached corner classifications
	prior, curr []byte

	cwid, chei float64 // distance between consecutive columns and rows
	loc        Point   // position of the current lattice point
	col        int     // column index of loc within curr
	rowlen     int     // number of lattice points per row
	minx, miny float64 // lower bounds for loc

	checkingUpper bool // whether the upper triangle of the cell is next
	skipLower     bool // the lower triangle already produced the last crossing
}

// check classifies a sample: bit 1 holds f1(p) <= 0, bit 0 holds f2(p) <= 0.
// NaN compares false, leaving the bit clear.
func (o *Finder) check(pt Point) (val byte) {
	if o.f1.At(pt.X, pt.Y) <= 0 {
		val = 1
	}
	val <<= 1
	if o.f2.At(pt.X, pt.Y) <= 0 {
		val |= 1
	}
	return
}

// isolate narrows a triangle known to contain a crossing down to depth
// halvings and returns the centroid of the final triangle. The corner
// classifications are passed in to avoid redundant evaluations.
func (o *Finder) isolate(tr triag, aChk, bChk, cChk byte, depth int) (Point, bool) {
	for depth > 0 {
		depth--

		htr := invert(tr)
		haChk := o.check(htr.a)
		hbChk := o.check(htr.b)
		hcChk := o.check(htr.c)

		// which of the four sub-triangles contain both curves
		tA := checkTriag(aChk, hbChk, hcChk)
		tB := checkTriag(haChk, bChk, hcChk)
		tC := checkTriag(haChk, hbChk, cChk)
		tM := checkTriag(haChk, hbChk, hcChk)

		switch {
		case tA && !tB && !tC && !tM:
			tr.b, tr.c = htr.b, htr.c
			bChk, cChk = hbChk, hcChk
		case !tA && tB && !tC && !tM:
			tr.a, tr.c = htr.a, htr.c
			aChk, cChk = haChk, hcChk
		case !tA && !tB && tC && !tM:
			tr.a, tr.b = htr.a, htr.b
			aChk, bChk = haChk, hbChk
		case !tA && !tB && !tC && tM:
			tr = htr
			aChk, bChk, cChk = haChk, hbChk, hcChk
		case !tA && !tB && !tC && !tM:
			return Point{}, false
		default:
			// several candidates: descend into each in order until one pans out
			if tA {
				if pt, ok := o.isolate(triag{tr.a, htr.b, htr.c}, aChk, hbChk, hcChk, depth); ok {
					return pt, true
				}
			}
			if tB {
				if pt, ok := o.isolate(triag{htr.a, tr.b, htr.c}, haChk, bChk, hcChk, depth); ok {
					return pt, true
				}
			}
			if tC {
				if pt, ok := o.isolate(triag{htr.a, htr.b, tr.c}, haChk, hbChk, cChk, depth); ok {
					return pt, true
				}
			}
			if tM {
				if pt, ok := o.isolate(htr, haChk, hbChk, hcChk, depth); ok {
					return pt, true
				}
			}
			return Point{}, false
		}
	}

	// depth reached; take the centroid as the crossing
	return Point{
		(tr.a.X + tr.b.X + tr.c.X) / 3,
		(tr.a.Y + tr.b.Y + tr.c.Y) / 3,
	}, true
}

// Start begins enumerating the crossings of f1 and f2 inside rect, halving
// the containing triangle depth times per crossing. Any enumeration already
// in progress is abandoned.
func (o *Finder) Start(rect Bound, f1, f2 Curve, depth int) {
	o.f1 = f1
	o.f2 = f2
	o.depth = depth

	o.rowlen = rect.Cols + 1
	o.prior = make([]byte, o.rowlen)
	o.curr = make([]byte, o.rowlen)

	o.loc = Point{rect.X, rect.Y}
	o.cwid = rect.Width / float64(rect.Cols)
	o.chei = rect.Height / float64(rect.Rows)
	o.minx = rect.X
	// slightly below the last row so the end condition triggers cleanly
	o.miny = rect.Y - rect.Height - o.chei/2

	// classify the whole first row
	for col := 0; col < o.rowlen; col++ {
		o.prior[col] = o.check(o.loc)
		o.loc.X += o.cwid
	}

	// first point of the second row
	o.loc.X = o.minx
	o.loc.Y -= o.chei
	o.curr[0] = o.check(o.loc)

	o.col = 1
	o.loc.X += o.cwid

	o.checkingUpper = true
	o.skipLower = false
}

// Next resumes the enumeration and returns the next crossing. The flag is
// false once the lattice is exhausted or no enumeration was started.
func (o *Finder) Next() (Point, bool) {
	if o.f1 == nil || o.f2 == nil {
		return Point{}, false
	}

	/* each cell splits along its diagonal
	 *  +---------+
	 *  | Upper  /|
	 *  |      /  |
	 *  |    /    |
	 *  |  /      |
	 *  |/  Lower |
	 *  +---------+
	 */
	for o.loc.Y > o.miny {
		if o.checkingUpper {
			o.curr[o.col] = o.check(o.loc)

			o.checkingUpper = false
			if checkTriag(o.curr[o.col-1], o.prior[o.col], o.prior[o.col-1]) {
				tr := triag{
					Point{o.loc.X - o.cwid, o.loc.Y},
					Point{o.loc.X, o.loc.Y + o.chei},
					Point{o.loc.X - o.cwid, o.loc.Y + o.chei},
				}
				if pt, ok := o.isolate(tr, o.curr[o.col-1], o.prior[o.col], o.prior[o.col-1], o.depth); ok {
					return pt, true
				}
			}
		} else {
			if !o.skipLower && checkTriag(o.prior[o.col], o.curr[o.col], o.curr[o.col-1]) {
				// remember not to re-emit this triangle's crossing on resume
				o.skipLower = true

				tr := triag{
					Point{o.loc.X, o.loc.Y + o.chei},
					Point{o.loc.X, o.loc.Y},
					Point{o.loc.X - o.cwid, o.loc.Y},
				}
				if pt, ok := o.isolate(tr, o.prior[o.col], o.curr[o.col], o.curr[o.col-1], o.depth); ok {
					return pt, true
				}
			}

			o.checkingUpper = true
			o.skipLower = false

			o.col++
			o.loc.X += o.cwid
			if o.col >= o.rowlen {
				// advance to the next row
				o.col = 0
				o.loc.X = o.minx
				o.loc.Y -= o.chei

				o.prior, o.curr = o.curr, o.prior

				o.curr[o.col] = o.check(o.loc)
				o.col++
				o.loc.X += o.cwid
			}
		}
	}

	return Point{}, false
}
