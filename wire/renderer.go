package wire

import (
	"image/color"
	"math"

	"meshview/mesh"
)

// Renderer strokes mesh faces as closed outlines.
//
// Create it once and reuse it; Render does not allocate.
type Renderer struct {
	Projector  Projector
	Color      color.RGBA
	ClearColor color.RGBA
}

// Stats describes one rendered frame.
type Stats struct {
	Faces   int // faces visited
	Edges   int // edges with at least one pixel on the target
	Skipped int // edges dropped for non-finite or fully off-target endpoints
}

func NewRenderer(p Projector) *Renderer {
	return &Renderer{
		Projector:  p,
		Color:      color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		ClearColor: color.RGBA{A: 0xFF},
	}
}

// Render clears t and draws every face of m.
func (r *Renderer) Render(t Target, m *mesh.Mesh) Stats {
	var st Stats
	if r == nil || t == nil {
		return st
	}
	t.Clear(r.ClearColor)
	if m == nil {
		return st
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return st
	}

	for _, f := range m.Faces {
		st.Faces++
		switch len(f) {
		case 0:
			continue
		case 1:
			p := r.Projector.Project(m.Vertices[f[0]])
			if r.drawEdge(t, w, h, p, p) {
				st.Edges++
			} else {
				st.Skipped++
			}
			continue
		}

		first := r.Projector.Project(m.Vertices[f[0]])
		prev := first
		for i := 1; i < len(f); i++ {
			cur := r.Projector.Project(m.Vertices[f[i]])
			if r.drawEdge(t, w, h, prev, cur) {
				st.Edges++
			} else {
				st.Skipped++
			}
			prev = cur
		}
		// A two-vertex face is a single segment; closing it would redraw it.
		if len(f) > 2 {
			if r.drawEdge(t, w, h, prev, first) {
				st.Edges++
			} else {
				st.Skipped++
			}
		}
	}
	return st
}

func (r *Renderer) drawEdge(t Target, w, h int, a, b Point) bool {
	if !finite(a) || !finite(b) {
		return false
	}
	a, b, ok := clipLine(a, b, float64(w-1), float64(h-1))
	if !ok {
		return false
	}
	r.drawLine(t, round(a.X), round(a.Y), round(b.X), round(b.Y), r.Color)
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func outcode(p Point, maxX, maxY float64) int {
	code := 0
	if p.X < 0 {
		code |= outLeft
	} else if p.X > maxX {
		code |= outRight
	}
	if p.Y < 0 {
		code |= outTop
	} else if p.Y > maxY {
		code |= outBottom
	}
	return code
}

// clipLine clips segment ab to [0,maxX]x[0,maxY] (Cohen-Sutherland).
func clipLine(a, b Point, maxX, maxY float64) (Point, Point, bool) {
	ca := outcode(a, maxX, maxY)
	cb := outcode(b, maxX, maxY)
	for i := 0; i < 8; i++ {
		switch {
		case ca|cb == 0:
			return a, b, true
		case ca&cb != 0:
			return a, b, false
		}

		out := ca
		if out == 0 {
			out = cb
		}
		var p Point
		switch {
		case out&outBottom != 0:
			p = Point{X: a.X + (b.X-a.X)*(maxY-a.Y)/(b.Y-a.Y), Y: maxY}
		case out&outTop != 0:
			p = Point{X: a.X + (b.X-a.X)*(0-a.Y)/(b.Y-a.Y), Y: 0}
		case out&outRight != 0:
			p = Point{X: maxX, Y: a.Y + (b.Y-a.Y)*(maxX-a.X)/(b.X-a.X)}
		default:
			p = Point{X: 0, Y: a.Y + (b.Y-a.Y)*(0-a.X)/(b.X-a.X)}
		}

		if !finite(p) {
			return a, b, false
		}

		if out == ca {
			a = p
			ca = outcode(a, maxX, maxY)
		} else {
			b = p
			cb = outcode(b, maxX, maxY)
		}
	}
	return a, b, false
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func round(v float64) int { return int(math.Round(v)) }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
