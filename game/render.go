package game

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fdtd2d/engine"
	"github.com/pthm-cable/fdtd2d/telemetry"
	"github.com/pthm-cable/fdtd2d/ui"
)

// Draw renders one frame: the field texture, any active overlays, and
// the HUD/panel chrome.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()
	g.fieldView.Update(g.grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	ox, oy := g.camera.WorldToScreen(0, 0)
	dest := rl.Rectangle{X: ox, Y: oy, Width: g.width * g.camera.Zoom, Height: g.height * g.camera.Zoom}
	g.fieldView.Draw(dest)

	g.drawActiveOverlays()
	g.drawHUD()

	rl.EndDrawing()
}

func (g *Game) drawHUD() {
	g.hud.Draw(ui.HUDData{
		Title:       "fdtd2d",
		GridW:       g.grid.Width(),
		GridH:       g.grid.Height(),
		Tick:        g.tick,
		TotalEnergy: g.grid.TotalEnergy(),
		Stable:      g.grid.IsStable(),
		Boundary:    g.boundaryLabel,
		Speed:       g.stepsPerUpdate,
		FPS:         rl.GetFPS(),
		Paused:      g.paused,
	})

	g.hud.DrawControls(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()),
		"[Space] pause  [,/.] speed  [LMB] PEC  [RMB] pulse  [wheel] zoom  [MMB] pan  [Home] reset view  [Tab] overlays")

	g.controlsPanel.Draw(g.uiOverlays)

	stats := g.perfCollector.Stats()
	g.perfPanel.Draw(ui.PerfPanelData{PhaseTimes: stats.PhaseAvg, Total: stats.AvgTickDuration}, sortedPhaseNames(stats))

	if g.uiOverlays.IsEnabled(ui.OverlaySpectrum) && g.spectrum != nil && g.probe != nil {
		mags, err := g.spectrum.Compute(g.probe.Snapshot())
		if err == nil {
			peakBin := engine.FindPeakBin(mags)
			g.spectrumPanel.Draw(ui.SpectrumPanelData{
				MagnitudesDB: mags,
				PeakBin:      peakBin,
				PeakFreq:     g.spectrum.BinToFrequency(peakBin),
			})
		}
	}

	if info, ok := g.cellInfoAtScreen(float32(rl.GetMouseX()), float32(rl.GetMouseY())); ok {
		rl.DrawText(fmt.Sprintf("cell (%d,%d) field=%.4g mat=%d pec=%v", info.X, info.Y, info.Field, info.Material, info.PEC),
			10, int32(rl.GetScreenHeight())-45, 14, rl.Gray)
	}
}

// sortedPhaseNames orders phase names by descending average duration,
// matching the ordering ui.PerfPanel expects.
func sortedPhaseNames(stats telemetry.PerfStats) []string {
	names := make([]string, 0, len(stats.PhaseAvg))
	for name := range stats.PhaseAvg {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return stats.PhaseAvg[names[i]] > stats.PhaseAvg[names[j]]
	})
	return names
}

// drawActiveOverlays renders toggleable visual overlays over the field
// texture (material tint, CPML region shading, probe markers).
func (g *Game) drawActiveOverlays() {
	if g.uiOverlays.IsEnabled(ui.OverlayMaterialTint) {
		g.drawMaterialTint()
	}
	if g.uiOverlays.IsEnabled(ui.OverlayCPMLRegion) {
		g.drawCPMLRegion()
	}
	if g.uiOverlays.IsEnabled(ui.OverlayProbeMarkers) {
		g.drawProbeMarkers()
	}
}

func (g *Game) drawMaterialTint() {
	for y := 0; y < g.grid.Height(); y += 4 {
		for x := 0; x < g.grid.Width(); x += 4 {
			if g.grid.MaterialAt(x, y) == 0 {
				continue
			}
			sx, sy := g.camera.WorldToScreen(float32(x)*CellSize, float32(y)*CellSize)
			rl.DrawRectangle(int32(sx), int32(sy), 2, 2, rl.Color{R: 255, G: 255, B: 0, A: 80})
		}
	}
}

func (g *Game) drawCPMLRegion() {
	t := float32(g.cpmlThickness) * CellSize
	sx0, sy0 := g.camera.WorldToScreen(t, t)
	sx1, sy1 := g.camera.WorldToScreen(g.width-t, g.height-t)
	rl.DrawRectangleLines(int32(sx0), int32(sy0), int32(sx1-sx0), int32(sy1-sy0), rl.Color{R: 100, G: 100, B: 255, A: 150})
}

func (g *Game) drawProbeMarkers() {
	if g.probe == nil {
		return
	}
	sx, sy := g.camera.WorldToScreen(float32(g.probeX)*CellSize, float32(g.probeY)*CellSize)
	rl.DrawCircle(int32(sx), int32(sy), 4, rl.Yellow)
}
