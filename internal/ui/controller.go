package ui

import (
	"image/color"
	"log"

	"shapedraw/internal/canvas"
	"shapedraw/internal/shape"
)

// Tool is the currently armed shape tool.
type Tool int

const (
	ToolNone Tool = iota
	ToolLine
	ToolRect
	ToolCircle
)

// Controller runs the two-click placement machine. A click either presses a
// button, arms the first corner of a shape, or completes a pending one.
//
// While a placement is pending, buttons are not hit-tested at all: the
// second click may land on top of a button and still becomes the shape's
// endpoint.
type Controller struct {
	Canvas  *canvas.Canvas
	Buttons []Button
	Color   color.RGBA

	// OnSave is invoked when the save button is pressed. May be nil.
	OnSave func()

	tool    Tool
	pending shape.Point
	placing bool
}

func NewController(cv *canvas.Canvas, buttons []Button) *Controller {
	return &Controller{
		Canvas:  cv,
		Buttons: buttons,
		Color:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Click feeds one pointer press through the machine.
func (ct *Controller) Click(p shape.Point) {
	if ct.placing {
		ct.complete(p)
		return
	}

	for _, b := range ct.Buttons {
		if b.Hit(p) {
			ct.press(b.Action)
			return
		}
	}

	if ct.tool != ToolNone {
		ct.pending = p
		ct.placing = true
	}
}

func (ct *Controller) press(a Action) {
	switch a {
	case SelectLine:
		ct.tool = ToolLine
	case SelectRect:
		ct.tool = ToolRect
	case SelectCircle:
		ct.tool = ToolCircle
	case Clear:
		ct.Canvas.Clear()
		log.Print("canvas cleared")
	case Undo:
		if s := ct.Canvas.Undo(); s != nil {
			log.Printf("undid shape %s", s.ID())
		}
	case Save:
		if ct.OnSave != nil {
			ct.OnSave()
		}
	}
}

// complete builds a shape from the pending corner and the endpoint, commits
// it, and disarms the tool.
func (ct *Controller) complete(end shape.Point) {
	var s shape.Shape
	switch ct.tool {
	case ToolLine:
		s = shape.NewLine(ct.pending, end, ct.Color)
	case ToolRect:
		s = shape.NewRect(ct.pending, end, ct.Color)
	case ToolCircle:
		s = shape.NewCircle(ct.pending, end, ct.Color)
	}
	if s != nil {
		ct.Canvas.Commit(s)
	}
	ct.tool = ToolNone
	ct.placing = false
}

// ClearAll services the clear shortcut key. It bypasses the click machine:
// the canvas and undo stack are wiped, but an armed tool or pending first
// click survives, so a placement in flight still completes on the next
// click.
func (ct *Controller) ClearAll() {
	ct.Canvas.Clear()
}

// Tool returns the currently armed tool.
func (ct *Controller) Tool() Tool { return ct.tool }

// Placing reports whether a first click is pending its endpoint.
func (ct *Controller) Placing() bool { return ct.placing }
