package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/hydrostat/internal/vessel"
)

const (
	tubeHeight = 0.02
	pistonLift = 0.1
	rodHalf    = 0.01
)

// Model geometry lives in [-1,1] normalized coordinates with y up; the
// window is in pixels with y down.
func toScreenX(x float64) int32 {
	return int32((x + 1) / 2 * screenWidth)
}

func toScreenY(y float64) int32 {
	return int32((1 - y) / 2 * screenHeight)
}

func drawQuad(topLeft, bottomRight vessel.Vec2, col rl.Color) {
	x := toScreenX(topLeft.X)
	y := toScreenY(topLeft.Y)
	w := toScreenX(bottomRight.X) - x
	h := toScreenY(bottomRight.Y) - y
	rl.DrawRectangle(x, y, w, h, col)
}

func (a *App) drawApparatus() {
	big, small := &a.model.Big, &a.model.Small

	// Fluid columns.
	drawQuad(big.TopLeft, big.BottomRight, ColFluid)
	drawQuad(small.TopLeft, small.BottomRight, ColFluid)

	// Tube joining the two containers at the base.
	tubeTopLeft := vessel.Vec2{X: big.BottomRight.X, Y: big.BottomRight.Y + tubeHeight}
	drawQuad(tubeTopLeft, small.BottomLeft, ColFluid)

	a.drawPiston()
}

// drawPiston floats a plate a fixed offset above the big column's surface
// with a rod running to the top of the viewport. Purely representational:
// it marks where the external pressure is applied.
func (a *App) drawPiston() {
	big := &a.model.Big

	plateTopLeft := vessel.Vec2{X: big.TopLeft.X, Y: big.TopLeft.Y + pistonLift}
	drawQuad(plateTopLeft, big.TopRight, ColPiston)

	center := (big.TopLeft.X + big.TopRight.X) / 2
	rodTopLeft := vessel.Vec2{X: center - rodHalf, Y: 1.0}
	rodBottomRight := vessel.Vec2{X: center + rodHalf, Y: big.TopLeft.Y}
	drawQuad(rodTopLeft, rodBottomRight, ColPiston)
}

func (a *App) drawHUD() {
	rl.DrawText("hydrostat", 30, 24, 24, ColBright)
	rl.DrawText(":: communicating vessels", 170, 30, 16, ColText)

	rl.DrawText(fmt.Sprintf("piston  %+.2f", a.model.ExternalPressure), 30, 64, 18, ColPiston)
	rl.DrawText(fmt.Sprintf("left    P %.3f   h %.3f", a.model.LeftPressure(), a.model.Big.Height), 30, 90, 18, ColText)
	rl.DrawText(fmt.Sprintf("right   P %.3f   h %.3f", a.model.RightPressure(), a.model.Small.Height), 30, 114, 18, ColText)

	rl.DrawText("[SPACE] PUSH  [LSHIFT] PULL  [R] RESET  [Q] QUIT", 30, screenHeight-32, 16, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), screenWidth-90, screenHeight-32, 14, ColTextDim)
}
