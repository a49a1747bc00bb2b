// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"math"
)

// Inter is one located crossing together with the curves that produced it
type Inter struct {
	X, Y float64 // location of the intersection

	F1, F2 Curve // curves whose zero sets cross here

	prev, next *Inter
}

// List is a circular sequence of intersections with an external cursor.
// Insertion happens after the cursor, which then moves to the new entry.
type List struct {
	cur *Inter
}

// Current returns the entry under the cursor, or nil when the list is empty
func (o *List) Current() *Inter {
	return o.cur
}

// Empty tells whether the list holds no intersections
func (o *List) Empty() bool {
	return o.cur == nil
}

// Next moves the cursor forward and returns the new current entry
func (o *List) Next() *Inter {
	if o.cur != nil {
		o.cur = o.cur.next
	}
	return o.cur
}

// Prev moves the cursor backward and returns the new current entry
func (o *List) Prev() *Inter {
	if o.cur != nil {
		o.cur = o.cur.prev
	}
	return o.cur
}

// Clear empties the list
func (o *List) Clear() {
	o.cur = nil
}

// Each calls f once per entry, starting just after the cursor so the walk
// follows insertion order
func (o *List) Each(f func(*Inter)) {
	if o.cur == nil {
		return
	}
	first := o.cur.next
	for it := first; ; it = it.next {
		f(it)
		if it.next == first {
			return
		}
	}
}

// Contains tells whether some entry lies within dist of pt
func (o *List) Contains(pt Point, dist float64) bool {
	if o.cur == nil {
		return false
	}
	for it := o.cur; ; it = it.next {
		if math.Hypot(pt.X-it.X, pt.Y-it.Y) < dist {
			return true
		}
		if it.next == o.cur {
			return false
		}
	}
}

// insert places it after the cursor and moves the cursor onto it
func (o *List) insert(it *Inter) {
	if o.cur != nil {
		it.prev = o.cur
		it.next = o.cur.next
		o.cur.next.prev = it
		o.cur.next = it
	} else {
		it.prev = it
		it.next = it
	}
	o.cur = it
}

// Collect drives fd over rect for the pair f1, f2 and inserts every crossing
// not already represented within prec of an existing entry
func (o *List) Collect(fd *Finder, rect Bound, f1, f2 Curve, depth int, prec float64) {
	fd.Start(rect, f1, f2, depth)
	for {
		pt, ok := fd.Next()
		if !ok {
			return
		}
		if o.Contains(pt, prec) {
			continue
		}
		o.insert(&Inter{X: pt.X, Y: pt.Y, F1: f1, F2: f2})
	}
}

// RemoveSource removes every intersection produced by the given curve on
// either side. Reports whether any entry was removed.
func (o *List) RemoveSource(c Curve) (removed bool) {
	for o.removeOneSource(c) {
		removed = true
	}
	return
}

func (o *List) removeOneSource(c Curve) bool {
	if o.cur == nil {
		return false
	}
	it := o.cur
	for {
		if it.F1 == c || it.F2 == c {
			if it == o.cur {
				if it.next == it {
					o.cur = nil
				} else {
					o.cur = it.prev
				}
			}
			it.prev.next = it.next
			it.next.prev = it.prev
			return true
		}
		it = it.next
		if it == o.cur {
			return false
		}
	}
}
