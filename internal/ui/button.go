// Package ui holds the toolbar buttons and the click state machine that
// turns pointer presses into tool selections, commands, and placed shapes.
package ui

import "shapedraw/internal/shape"

// Action is what pressing a button means.
type Action int

const (
	SelectLine Action = iota
	SelectRect
	SelectCircle
	Clear
	Save
	Undo
)

// Button is a fixed rectangular hit region with a label. Buttons do not move
// or change after startup.
type Button struct {
	X, Y   float32
	W, H   float32
	Label  string
	Action Action
}

// Hit reports whether p lands inside the button, edges included.
func (b Button) Hit(p shape.Point) bool {
	return p.X >= b.X && p.X <= b.X+b.W && p.Y >= b.Y && p.Y <= b.Y+b.H
}

// DefaultButtons lays out the toolbar: 100x50 buttons along the top edge,
// tool buttons before command buttons. The controller hit-tests them in
// slice order.
func DefaultButtons() []Button {
	labels := []struct {
		label  string
		action Action
	}{
		{"Line", SelectLine},
		{"Rectangle", SelectRect},
		{"Circle", SelectCircle},
		{"Clear", Clear},
		{"Save", Save},
		{"Undo", Undo},
	}

	buttons := make([]Button, 0, len(labels))
	for i, l := range labels {
		buttons = append(buttons, Button{
			X:      10 + float32(i)*110,
			Y:      10,
			W:      100,
			H:      50,
			Label:  l.label,
			Action: l.action,
		})
	}
	return buttons
}
