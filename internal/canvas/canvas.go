// Package canvas keeps the committed shape sequence and the undo stack.
package canvas

import "shapedraw/internal/shape"

// Canvas owns every shape exclusively: a shape lives either in the committed
// sequence or on the undo stack, never both.
type Canvas struct {
	shapes []shape.Shape
	undone []shape.Shape
}

func New() *Canvas {
	return &Canvas{}
}

// Commit appends s to the end of the committed sequence.
func (c *Canvas) Commit(s shape.Shape) {
	c.shapes = append(c.shapes, s)
}

// Undo moves the most recently committed shape onto the undo stack and
// returns it. On an empty canvas it returns nil and changes nothing.
func (c *Canvas) Undo() shape.Shape {
	if len(c.shapes) == 0 {
		return nil
	}
	last := c.shapes[len(c.shapes)-1]
	c.shapes = c.shapes[:len(c.shapes)-1]
	c.undone = append(c.undone, last)
	return last
}

// Clear drops all committed shapes and the undo stack. A clear cannot be
// undone.
func (c *Canvas) Clear() {
	c.shapes = nil
	c.undone = nil
}

// Shapes returns the committed sequence in insertion order. Callers must not
// modify it.
func (c *Canvas) Shapes() []shape.Shape {
	return c.shapes
}

// Undone returns the undo stack, most recently removed shape last.
func (c *Canvas) Undone() []shape.Shape {
	return c.undone
}
