package canvas

import (
	"image/color"
	"testing"

	"shapedraw/internal/shape"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func line(x float32) *shape.Line {
	return shape.NewLine(shape.Point{X: x}, shape.Point{X: x + 1}, white)
}

func TestCommitAppendsInOrder(t *testing.T) {
	c := New()
	a, b := line(0), line(1)
	c.Commit(a)
	c.Commit(b)

	got := c.Shapes()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Shapes() = %v, want [a b]", got)
	}
}

func TestUndoOnEmptyCanvasIsNoop(t *testing.T) {
	c := New()
	if s := c.Undo(); s != nil {
		t.Errorf("Undo() = %v, want nil", s)
	}
	if len(c.Shapes()) != 0 || len(c.Undone()) != 0 {
		t.Errorf("empty undo changed state: %d shapes, %d undone",
			len(c.Shapes()), len(c.Undone()))
	}
}

func TestUndoTwicePreservesRemovalOrder(t *testing.T) {
	c := New()
	a, b := line(0), line(1)
	c.Commit(a)
	c.Commit(b)

	first := c.Undo()
	second := c.Undo()

	if first != b || second != a {
		t.Errorf("Undo order = %v, %v; want b then a", first, second)
	}
	if len(c.Shapes()) != 0 {
		t.Errorf("canvas still has %d shapes", len(c.Shapes()))
	}
	undone := c.Undone()
	if len(undone) != 2 || undone[0] != b || undone[1] != a {
		t.Errorf("Undone() = %v, want [b a]", undone)
	}
}

func TestClearWipesUndoStackToo(t *testing.T) {
	c := New()
	c.Commit(line(0))
	c.Commit(line(1))
	c.Undo()
	c.Clear()

	if len(c.Shapes()) != 0 || len(c.Undone()) != 0 {
		t.Errorf("after clear: %d shapes, %d undone; want 0, 0",
			len(c.Shapes()), len(c.Undone()))
	}
}
