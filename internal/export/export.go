// Package export flattens the canvas onto an offscreen raster and writes it
// out as a PNG.
package export

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gg"

	"shapedraw/internal/shape"
)

const strokeWidth = 2

// surface adapts a gg context to shape.Surface. Stroke errors are kept and
// reported once after the whole render.
type surface struct {
	ctx *gg.Context
	err error
}

func (s *surface) stroke() {
	if err := s.ctx.Stroke(); err != nil && s.err == nil {
		s.err = err
	}
}

func (s *surface) StrokeLine(from, to shape.Point, c color.RGBA) {
	s.ctx.SetColor(c)
	s.ctx.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	s.stroke()
}

func (s *surface) StrokeRect(origin shape.Point, w, h float32, c color.RGBA) {
	s.ctx.SetColor(c)
	s.ctx.DrawRectangle(float64(origin.X), float64(origin.Y), float64(w), float64(h))
	s.stroke()
}

func (s *surface) StrokeCircle(center shape.Point, radius float32, c color.RGBA) {
	s.ctx.SetColor(c)
	s.ctx.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	s.stroke()
}

// Render draws the shapes in insertion order onto a black w-by-h raster.
// Buttons and instruction text are not part of the export.
func Render(shapes []shape.Shape, w, h int) (image.Image, error) {
	ctx := gg.NewContext(w, h)
	ctx.ClearWithColor(gg.Black)
	ctx.SetLineWidth(strokeWidth)

	surf := &surface{ctx: ctx}
	for _, s := range shapes {
		s.Draw(surf)
	}
	if surf.err != nil {
		return nil, surf.err
	}
	return ctx.Image(), nil
}

// WritePNG renders the shapes at the given size and writes the result to
// path, replacing any existing file.
func WritePNG(path string, shapes []shape.Shape, w, h int) error {
	img, err := Render(shapes, w, h)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
