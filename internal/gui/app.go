package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/hydrostat/internal/config"
	"github.com/san-kum/hydrostat/internal/vessel"
)

const (
	screenWidth  = 800
	screenHeight = 800
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColFluid   = rl.NewColor(51, 51, 204, 255)
	ColPiston  = rl.NewColor(204, 51, 51, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColBright  = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	cfg   *config.Config
	model *vessel.Model
	quit  bool
}

func NewApp(cfg *config.Config) *App {
	a := &App{cfg: cfg}
	a.reset()
	return a
}

func (a *App) reset() {
	a.model = vessel.New(a.cfg.Vessel())
	a.model.ApplyPressureDelta(a.cfg.ExternalPressure)
}

// Run opens the window and blocks in the main loop until the window is
// closed or Q is pressed.
func Run(cfg *config.Config) {
	rl.InitWindow(screenWidth, screenHeight, "hydrostat")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := NewApp(cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

// Update drains this frame's input into the model, then advances the
// equilibrium by one tick. Input and simulation share the loop thread, so
// the model sees a consistent external pressure per tick.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}

	// Piston controls fire on press and on OS key-repeat, not on release.
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressedRepeat(rl.KeySpace) {
		a.model.ApplyPressureDelta(a.cfg.PressureStep)
	}
	if rl.IsKeyPressed(rl.KeyLeftShift) || rl.IsKeyPressedRepeat(rl.KeyLeftShift) {
		a.model.ApplyPressureDelta(-a.cfg.PressureStep)
	}

	a.model.Tick()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawApparatus()
	a.drawHUD()

	rl.EndDrawing()
}
