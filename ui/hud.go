package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	GridW, GridH int
	Tick        uint64
	TotalEnergy float32
	Stable      bool
	Boundary    string
	Speed       int
	FPS         int32
	Paused      bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Grid: %dx%d | Boundary: %s", data.GridW, data.GridH, data.Boundary),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d | Energy: %.4g", data.Tick, data.Speed, data.FPS, data.TotalEnergy),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Running"
	statusColor := rl.Yellow
	if data.Paused {
		statusText = "PAUSED"
	}
	if !data.Stable {
		statusText = "UNSTABLE"
		statusColor = rl.Red
	}
	rl.DrawText(statusText, 10, 75, 16, statusColor)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseTimes map[string]time.Duration
	Total      time.Duration
}

// PerfPanel renders the per-phase step performance panel, one row for
// each phase name it is given.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData, sortedNames []string) {
	x := p.x
	y := p.y

	rl.DrawText("Step Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Total: %s", data.Total.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for i, name := range sortedNames {
		if i >= 12 {
			break
		}

		avg := data.PhaseTimes[name]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := rl.LightGray
		if pct > 20 {
			color = rl.Red
		} else if pct > 10 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-12s %6s %5.1f%%", name, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}

// SpectrumPanelData holds data for the live FFT spectrum panel.
type SpectrumPanelData struct {
	MagnitudesDB []float32
	PeakBin      int
	PeakFreq     float32
}

// SpectrumPanel renders a probe's frequency-domain spectrum as a bar plot.
type SpectrumPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	height   int32
}

// NewSpectrumPanel creates a new spectrum panel.
func NewSpectrumPanel(x, y, width, height int32) *SpectrumPanel {
	return &SpectrumPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		height:   height,
	}
}

// SetPosition updates the panel position.
func (s *SpectrumPanel) SetPosition(x, y int32) {
	s.x = x
	s.y = y
}

// Draw renders the spectrum bar plot. Bar heights are normalized against
// a fixed -100dB floor rather than the panel's own peak, so the absolute
// magnitude of the peak bin stays visually comparable across frames.
func (s *SpectrumPanel) Draw(data SpectrumPanelData) {
	r := s.renderer
	padding := r.Theme.Padding
	r.DrawPanel(s.x, s.y, s.width, s.height)

	rl.DrawText("Spectrum", s.x+padding, s.y+padding, 14, rl.Yellow)
	rl.DrawText(
		fmt.Sprintf("peak bin %d (%.4g)", data.PeakBin, data.PeakFreq),
		s.x+padding, s.y+padding+16, 12, rl.LightGray,
	)

	n := len(data.MagnitudesDB)
	if n == 0 {
		return
	}

	plotX := s.x + padding
	plotY := s.y + padding + 36
	plotW := s.width - 2*padding
	plotH := s.height - padding - 36
	if plotW <= 0 || plotH <= 0 {
		return
	}

	const floorDB = -100
	barW := float32(plotW) / float32(n)
	for i, mag := range data.MagnitudesDB {
		t := (mag - floorDB) / -floorDB
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		barH := int32(t * float32(plotH))
		color := rl.SkyBlue
		if i == data.PeakBin {
			color = rl.Orange
		}
		bx := plotX + int32(float32(i)*barW)
		rl.DrawRectangle(bx, plotY+plotH-barH, int32(barW)+1, barH, color)
	}
}
