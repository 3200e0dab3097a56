// Material speckle preview tool - interactive visualization with sliders
// for the opensimplex dielectric speckle fill used by game.seedMaterials.
//
// Usage: go run ./cmd/potentialpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// speckleParams mirrors the tunable fields of config.SpeckleConfig, the
// knobs a scenario author tunes while picking a scattering medium.
type speckleParams struct {
	Scale   float32
	EpsLow  float32
	EpsHigh float32
	Seed    int64
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Material Speckle Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := speckleParams{Scale: 0.08, EpsLow: 1.0, EpsHigh: 4.0, Seed: 1}

	gridSize := 256
	field := make([]float32, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			generateSpeckle(field, gridSize, params)
			updateTexture(texture, field, gridSize, params)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0}, 0, rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Speckle Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		newScale := slider(&panelY, panelX, "Scale (noise frequency)", "0.01", "0.5", params.Scale, 0.01, 0.5)
		if newScale != params.Scale {
			params.Scale = newScale
			needsRegen = true
		}

		newEpsLow := slider(&panelY, panelX, "EpsLow (min relative permittivity)", "1.0", "10.0", params.EpsLow, 1.0, 10.0)
		if newEpsLow != params.EpsLow {
			params.EpsLow = newEpsLow
			needsRegen = true
		}

		newEpsHigh := slider(&panelY, panelX, "EpsHigh (max relative permittivity)", "1.0", "10.0", params.EpsHigh, 1.0, 10.0)
		if newEpsHigh != params.EpsHigh {
			params.EpsHigh = newEpsHigh
			needsRegen = true
		}

		newSeed := slider(&panelY, panelX, "Seed", "0", "9999", float32(params.Seed), 0, 9999)
		if int64(newSeed) != params.Seed {
			params.Seed = int64(newSeed)
			needsRegen = true
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reseed") {
			params.Seed = (params.Seed + 1) % 10000
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

// slider draws a labeled slider and advances panelY, returning the
// current (possibly updated) value.
func slider(panelY *float32, panelX float32, label, lo, hi string, value, min, max float32) float32 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	v := gui.SliderBar(rl.Rectangle{X: panelX, Y: *panelY, Width: panelWidth - 80, Height: 20}, lo, hi, value, min, max)
	rl.DrawText(fmt.Sprintf("%.3f", v), int32(panelX+panelWidth-70), int32(*panelY+2), 16, rl.DarkGray)
	*panelY += 35
	return v
}

func generateSpeckle(field []float32, gridSize int, p speckleParams) {
	noise := opensimplex.New(p.Seed)
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			n := noise.Eval2(float64(x)*float64(p.Scale), float64(y)*float64(p.Scale))
			field[y*gridSize+x] = float32((n + 1) / 2)
		}
	}
}

func updateTexture(texture rl.Texture2D, field []float32, gridSize int, p speckleParams) {
	pixels := make([]rl.Color, gridSize*gridSize)
	for i, t := range field {
		epsR := p.EpsLow + t*(p.EpsHigh-p.EpsLow)
		frac := (epsR - p.EpsLow) / (p.EpsHigh - p.EpsLow + 1e-9)
		v := uint8(frac * 255)
		pixels[i] = rl.Color{R: v, G: v / 2, B: 255 - v, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}
