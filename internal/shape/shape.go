// Package shape holds the drawing elements the canvas is made of. Each
// variant knows how to stroke itself onto a Surface; geometry is fixed at
// construction time.
package shape

import (
	"image/color"
	"math"

	"github.com/google/uuid"
)

// Point is a position in window coordinates.
type Point struct {
	X, Y float32
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float32 {
	return float32(math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y)))
}

// Surface is the drawing capability shapes render onto. One implementation
// draws to the live window, another to the offscreen export raster.
// StrokeRect always receives non-negative extents.
type Surface interface {
	StrokeLine(from, to Point, c color.RGBA)
	StrokeRect(origin Point, w, h float32, c color.RGBA)
	StrokeCircle(center Point, radius float32, c color.RGBA)
}

// Shape is one committed drawing element.
type Shape interface {
	// ID is the unique tag assigned when the shape was built.
	ID() string
	Draw(s Surface)
}

// Line is a straight segment between two points.
type Line struct {
	id    string
	From  Point
	To    Point
	Color color.RGBA
}

func NewLine(from, to Point, c color.RGBA) *Line {
	return &Line{id: uuid.NewString(), From: from, To: to, Color: c}
}

func (l *Line) ID() string { return l.id }

func (l *Line) Draw(s Surface) {
	s.StrokeLine(l.From, l.To, l.Color)
}

// Rect is an axis-aligned rectangle outline. Origin is the first click and
// Size the signed offset to the second, so either extent may be negative;
// Draw normalizes to a positive-extent box.
type Rect struct {
	id     string
	Origin Point
	Size   Point
	Color  color.RGBA
}

func NewRect(origin, corner Point, c color.RGBA) *Rect {
	return &Rect{
		id:     uuid.NewString(),
		Origin: origin,
		Size:   Point{X: corner.X - origin.X, Y: corner.Y - origin.Y},
		Color:  c,
	}
}

func (r *Rect) ID() string { return r.id }

// Bounds returns the top-left corner and non-negative extents of the box.
func (r *Rect) Bounds() (min Point, w, h float32) {
	min, w, h = r.Origin, r.Size.X, r.Size.Y
	if w < 0 {
		min.X += w
		w = -w
	}
	if h < 0 {
		min.Y += h
		h = -h
	}
	return min, w, h
}

func (r *Rect) Draw(s Surface) {
	min, w, h := r.Bounds()
	s.StrokeRect(min, w, h, r.Color)
}

// Circle is a circle outline around a center point. The radius is derived
// from the two placement clicks and is never negative.
type Circle struct {
	id     string
	Center Point
	Radius float32
	Color  color.RGBA
}

func NewCircle(center, rim Point, c color.RGBA) *Circle {
	return &Circle{id: uuid.NewString(), Center: center, Radius: center.Dist(rim), Color: c}
}

func (c *Circle) ID() string { return c.id }

func (c *Circle) Draw(s Surface) {
	s.StrokeCircle(c.Center, c.Radius, c.Color)
}
