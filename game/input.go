package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard/mouse input for the interactive viewer.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyR) && rl.IsKeyDown(rl.KeyLeftControl) {
		g.Reset()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controlsPanel.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	g.handleCameraInput()
	g.handleOverlayKeys()
	g.handleCellClick()
}

func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	g.camera.Resize(w, h)
}

func (g *Game) handleCameraInput() {
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		delta := rl.GetMouseDelta()
		g.camera.Pan(-delta.X, -delta.Y)
	}

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		g.camera.ZoomBy(1 + wheel*0.1)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// handleOverlayKeys checks registered overlay key presses.
func (g *Game) handleOverlayKeys() {
	for _, desc := range g.uiOverlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			g.uiOverlays.Toggle(desc.ID)
		}
	}
}

// handleCellClick lets the user paint a PEC obstacle (left click) or
// drop a one-shot pulse source (right click) at the grid cell under the
// mouse cursor.
func (g *Game) handleCellClick() {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		return
	}
	pos := rl.GetMousePosition()
	x, y, ok := g.cellAtScreen(pos.X, pos.Y)
	if !ok {
		return
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		g.grid.SetPEC(x, y)
	case rl.IsMouseButtonPressed(rl.MouseButtonRight):
		g.grid.PlacePulse(x, y, 1.0)
	}
}
