// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tui implements the interactive two-panel terminal surface
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/cpmech/gosl/io"

	"github.com/TannerReese/skedia/expr"
	"github.com/TannerReese/skedia/gallery"
	"github.com/TannerReese/skedia/graph"
	"github.com/TannerReese/skedia/intersect"
)

// GalleryWidth is the fixed width of the gallery panel in cells
const GalleryWidth = 25

// rows of one textbox in the gallery panel
const textboxHeight = 4

// search parameters for the interactive intersection keys
const (
	interDepth = 30
	interPrec  = 1e-6
)

// palette maps the colour pair indices 1..6 onto terminal colours
var palette = [7]tcell.Color{
	tcell.ColorWhite,
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorAqua,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
}

// screenCanvas adapts a region of the tcell screen to the graph Canvas
type screenCanvas struct {
	scr   tcell.Screen
	offX  int
	w, h  int
	style tcell.Style
}

func (o *screenCanvas) Set(x, y int, ch rune) {
	if x < 0 || y < 0 || x >= o.w || y >= o.h {
		return
	}
	o.scr.SetContent(o.offX+x, y, ch, nil, o.style)
}

// UI holds the state of one interactive session
type UI struct {
	scr tcell.Screen
	gal *gallery.Gallery
	gr  graph.Graph

	inters intersect.List
	finder intersect.Finder

	gcurs      *gallery.Equation // equation under the gallery cursor; drawn first
	focusGraph bool              // whether keystrokes go to the graph or the gallery
}

// Run starts the interactive surface and blocks until the user exits
func Run(gal *gallery.Gallery, gr graph.Graph) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()

	o := &UI{scr: scr, gal: gal, gr: gr, gcurs: gal.Head, focusGraph: true}
	o.loop()
	return nil
}

func (o *UI) loop() {
	for {
		o.draw()
		ev := o.scr.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			o.scr.Sync()
		case *tcell.EventKey:
			if !o.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one keystroke; false means exit
func (o *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlZ:
		return false
	case tcell.KeyCtrlA:
		// new textbox at the end of the gallery, focus moves there
		o.gcurs = o.gal.Add("")
		o.focusGraph = false
		return true
	}
	if o.focusGraph {
		return o.graphKey(ev)
	}
	return o.galleryKey(ev)
}

func (o *UI) graphKey(ev *tcell.EventKey) bool {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyDown:
		if shift {
			o.gr.Zoom(1, 1.1)
		} else {
			o.gr.Y -= o.gr.H / 10
		}
		return true
	case tcell.KeyUp:
		if shift {
			o.gr.Zoom(1, 0.9)
		} else {
			o.gr.Y += o.gr.H / 10
		}
		return true
	case tcell.KeyLeft:
		if shift {
			o.gr.Zoom(1.1, 1)
		} else {
			o.gr.X -= o.gr.W / 10
		}
		return true
	case tcell.KeyRight:
		if shift {
			o.gr.Zoom(0.9, 1)
		} else {
			o.gr.X += o.gr.W / 10
		}
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false

	// movement
	case 'j':
		o.gr.Y -= o.gr.H / 10
	case 'k':
		o.gr.Y += o.gr.H / 10
	case 'h':
		o.gr.X -= o.gr.W / 10
	case 'l':
		o.gr.X += o.gr.W / 10

	// dilation in each dimension
	case 'J':
		o.gr.Zoom(1, 1.1)
	case 'K':
		o.gr.Zoom(1, 0.9)
	case 'H':
		o.gr.Zoom(1.1, 1)
	case 'L':
		o.gr.Zoom(0.9, 1)

	// dilation in both dimensions
	case '-':
		o.gr.Zoom(1.1, 1.1)
	case '=':
		o.gr.Zoom(0.9, 0.9)
	case '0':
		o.gr.SetDims(10, 10)

	// intersections
	case 'n', 'N':
		o.findIntersections()
	case 'c', 'C':
		o.inters.Clear()
	case ',', '<':
		o.inters.Prev()
	case '.', '>':
		o.inters.Next()

	// focus the gallery
	case 'g', 'G':
		o.focusGraph = false
	}
	return true
}

func (o *UI) galleryKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		o.focusGraph = true
		return true
	}
	eq := o.gcurs
	if eq == nil {
		return true
	}

	switch ev.Key() {
	case tcell.KeyDown:
		if eq.Curs >= 0 {
			// move from the text into the colour bar
			eq.Curs = -1
		} else if eq.Next != nil {
			o.gcurs = eq.Next
		}
	case tcell.KeyUp:
		if eq.Curs >= 0 {
			if eq.Prev != nil {
				o.gcurs = eq.Prev
			}
		} else {
			eq.Curs = 0
		}
	case tcell.KeyRight:
		if eq.Curs >= 0 {
			if eq.Curs < len(eq.Text) {
				eq.Curs++
			}
		} else {
			eq.ColorPair = eq.ColorPair%6 + 1
		}
	case tcell.KeyLeft:
		if eq.Curs > 0 {
			eq.Curs--
		} else if eq.Curs < 0 {
			eq.ColorPair = (eq.ColorPair+4)%6 + 1
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if eq.Curs > 0 {
			eq.Text = eq.Text[:eq.Curs-1] + eq.Text[eq.Curs:]
			eq.Curs--
		}
	case tcell.KeyHome:
		if eq.Curs >= 0 {
			eq.Curs = 0
		}
	case tcell.KeyEnd:
		if eq.Curs >= 0 {
			eq.Curs = len(eq.Text)
		}
	case tcell.KeyEnter:
		if eq.Curs >= 0 {
			// stale crossings of this curve disappear with the old parse
			o.inters.RemoveSource(eq)
			o.gal.Parse(eq)
		}
	case tcell.KeyCtrlD:
		o.inters.RemoveSource(eq)
		o.gal.Delete(eq)
		o.gcurs = o.gal.Head
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= ' ' && r < 0x7f && eq.Curs >= 0 && len(eq.Text) < gallery.TextboxSize {
			eq.Text = eq.Text[:eq.Curs] + string(r) + eq.Text[eq.Curs:]
			eq.Curs++
		}
	}
	return true
}

// findIntersections collects the crossings of every pair of drawable curves
// using the graph raster as the search lattice
func (o *UI) findIntersections() {
	rect := intersect.Bound{
		X: o.gr.X, Y: o.gr.Y,
		Width: o.gr.W, Height: o.gr.H,
		Rows: o.gr.Th, Cols: o.gr.Tw,
	}
	for eq1 := o.gal.Head; eq1 != nil; eq1 = eq1.Next {
		if eq1.IsVariable || eq1.Left == nil || eq1.Right == nil {
			continue
		}
		for eq2 := eq1.Next; eq2 != nil; eq2 = eq2.Next {
			if eq2.IsVariable || eq2.Left == nil || eq2.Right == nil {
				continue
			}
			o.inters.Collect(&o.finder, rect, eq1, eq2, interDepth, interPrec)
		}
	}
}

func (o *UI) draw() {
	o.scr.Clear()

	w, h := o.scr.Size()
	o.gr.Tw = w - GalleryWidth - 1
	o.gr.Th = h

	if o.gr.Tw > 0 && o.gr.Th > 0 {
		cv := &screenCanvas{scr: o.scr, offX: GalleryWidth + 1, w: o.gr.Tw, h: o.gr.Th, style: tcell.StyleDefault}
		o.gr.DrawGridlines(cv)

		for eq := o.gal.Head; eq != nil; eq = eq.Next {
			if eq.IsVariable || eq.Left == nil || eq.Right == nil {
				continue
			}
			cv.style = tcell.StyleDefault.Foreground(palette[eq.ColorPair])
			o.gr.DrawCurve(cv, eq)
		}

		cv.style = tcell.StyleDefault
		o.inters.Each(func(it *intersect.Inter) {
			o.gr.DrawPoint(cv, it.X, it.Y, 'x')
		})
		if cur := o.inters.Current(); cur != nil {
			cv.style = tcell.StyleDefault.Reverse(true)
			o.gr.DrawPoint(cv, cur.X, cur.Y, 'X')
			cv.style = tcell.StyleDefault
			drawText(cv, 0, o.gr.Th-1, io.Sf("( %.6g , %.6g )", cur.X, cur.Y))
		}
	}

	o.drawGallery(h)
	o.scr.Show()
}

func drawText(cv graph.Canvas, x, y int, s string) {
	for i, ch := range s {
		cv.Set(x+i, y, ch)
	}
}

// drawGallery renders the gallery panel: a starred border, one textbox per
// equation starting at the cursor, and below each either the colour bar or
// the last parse error
func (o *UI) drawGallery(h int) {
	w := GalleryWidth
	norm := tcell.StyleDefault
	inv := tcell.StyleDefault.Reverse(true)

	// border
	for x := 0; x < w; x++ {
		o.scr.SetContent(x, 0, '*', nil, norm)
		o.scr.SetContent(x, h-1, '*', nil, norm)
	}
	for y := 0; y < h; y++ {
		o.scr.SetContent(0, y, '*', nil, norm)
		o.scr.SetContent(w-1, y, '*', nil, norm)
	}

	showCurs := !o.focusGraph
	i := 0
	for eq := o.gcurs; eq != nil; eq = eq.Next {
		doHighlight := i == 0 && showCurs

		// textbox contents with the cursor drawn inverted
		x := 1
		y := i*(textboxHeight+1) + 1
		for s := 0; s < len(eq.Text) || (s == eq.Curs && doHighlight); s++ {
			ch := ' '
			if s < len(eq.Text) {
				ch = rune(eq.Text[s])
			}
			if s == eq.Curs && doHighlight {
				o.scr.SetContent(x, y, ch, nil, inv)
			} else {
				o.scr.SetContent(x, y, ch, nil, norm)
			}
			x++
			if x >= w-1 {
				// wrap to the beginning of the next line
				x = 1
				y++
			}
			if y >= h-1 || y >= i*(textboxHeight+1)+textboxHeight-1 {
				break
			}
		}

		y = i*(textboxHeight+1) + textboxHeight
		if y < h-1 {
			onBar := i == 0 && eq.Curs < 0 && showCurs
			if eq.Err == expr.ErrOK {
				if !eq.IsVariable {
					// colour picker bar
					style := tcell.StyleDefault.Foreground(palette[eq.ColorPair])
					if onBar {
						style = style.Reverse(true)
					}
					for x = 1; x < w-1; x++ {
						o.scr.SetContent(x, y, '-', nil, style)
					}
				}
			} else {
				// show the parse error instead of the colour bar
				msg := eq.Err.String()
				if len(msg) > w-2 {
					msg = msg[:w-2]
				}
				style := norm
				if onBar {
					style = inv
				}
				for j, ch := range msg {
					o.scr.SetContent(1+j, y, ch, nil, style)
				}
			}
		}
		y++

		// divider between textboxes
		if y < h-1 {
			for x = 1; x < w-1; x++ {
				o.scr.SetContent(x, y, '*', nil, norm)
			}
		}

		i++
	}
}
