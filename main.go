package main

import (
	"image/color"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shapedraw/internal/canvas"
	"shapedraw/internal/export"
	"shapedraw/internal/shape"
	"shapedraw/internal/ui"
)

const (
	screenWidth  = 800
	screenHeight = 600
	fontPath     = "arial.ttf"
	outputPath   = "drawing.png"

	buttonFontSize = 18
	textFontSize   = 20
	strokeWidth    = 2
)

var (
	buttonFill   = rl.Color{R: 100, G: 100, B: 100, A: 255}
	instructions = "Select a shape to draw. Press 'C' to clear."
)

// windowSurface strokes shapes straight onto the current raylib frame.
type windowSurface struct{}

func rlColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (windowSurface) StrokeLine(from, to shape.Point, c color.RGBA) {
	rl.DrawLineEx(rl.Vector2{X: from.X, Y: from.Y}, rl.Vector2{X: to.X, Y: to.Y}, strokeWidth, rlColor(c))
}

func (windowSurface) StrokeRect(origin shape.Point, w, h float32, c color.RGBA) {
	rl.DrawRectangleLinesEx(rl.Rectangle{X: origin.X, Y: origin.Y, Width: w, Height: h}, strokeWidth, rlColor(c))
}

func (windowSurface) StrokeCircle(center shape.Point, radius float32, c color.RGBA) {
	rl.DrawCircleLines(int32(center.X), int32(center.Y), radius, rlColor(c))
}

// loadFont loads the UI font, falling back to raylib's built-in font when
// the file is missing. The fallback is logged, not fatal.
func loadFont() (rl.Font, bool) {
	if _, err := os.Stat(fontPath); err != nil {
		log.Printf("font %s unavailable, using built-in font: %v", fontPath, err)
		return rl.GetFontDefault(), false
	}
	return rl.LoadFont(fontPath), true
}

func drawButton(font rl.Font, b ui.Button) {
	rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), buttonFill)
	rl.DrawTextEx(font, b.Label, rl.Vector2{X: b.X + 10, Y: b.Y + 10}, buttonFontSize, 1, rl.White)
}

func main() {
	rl.InitWindow(screenWidth, screenHeight, "Shape Draw")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	font, loaded := loadFont()
	if loaded {
		defer rl.UnloadFont(font)
	}

	cv := canvas.New()
	ctl := ui.NewController(cv, ui.DefaultButtons())
	ctl.OnSave = func() {
		if err := export.WritePNG(outputPath, cv.Shapes(), screenWidth, screenHeight); err != nil {
			log.Printf("save %s: %v", outputPath, err)
			return
		}
		log.Printf("saved %s", outputPath)
	}

	surf := windowSurface{}

	for !rl.WindowShouldClose() {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			p := rl.GetMousePosition()
			ctl.Click(shape.Point{X: p.X, Y: p.Y})
		}
		if rl.IsKeyPressed(rl.KeyC) {
			ctl.ClearAll()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		for _, b := range ctl.Buttons {
			drawButton(font, b)
		}
		rl.DrawTextEx(font, instructions, rl.Vector2{X: 10, Y: 70}, textFontSize, 1, rl.White)

		for _, s := range cv.Shapes() {
			s.Draw(surf)
		}

		rl.EndDrawing()
	}
}
