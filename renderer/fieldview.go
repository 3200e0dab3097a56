// Package renderer draws the FDTD field state to GPU textures for display.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fdtd2d/engine"
)

// FieldView renders a Grid's Ez field as a diverging colormap texture,
// uploaded to the GPU each frame via rl.UpdateTexture.
type FieldView struct {
	texture rl.Texture2D
	pixels  []color.RGBA
	w, h    int

	// ClampField is the |Ez| value that saturates the colormap. Values
	// above it are clamped rather than driving the color out of range.
	ClampField float32
}

// NewFieldView allocates a texture matching the grid's dimensions.
func NewFieldView(w, h int) *FieldView {
	img := rl.GenImageColor(w, h, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &FieldView{
		texture:    tex,
		pixels:     make([]color.RGBA, w*h),
		w:          w,
		h:          h,
		ClampField: 0.5,
	}
}

// Update repaints the texture from the grid's current Ez field and
// material layout. PEC cells are drawn as solid gray regardless of field
// value so boundaries and scatterers are visible even at zero field.
func (f *FieldView) Update(g *engine.Grid) {
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			i := y*f.w + x
			if g.IsPEC(x, y) {
				f.pixels[i] = color.RGBA{R: 90, G: 90, B: 90, A: 255}
				continue
			}
			f.pixels[i] = divergingColor(g.FieldAt(x, y), f.ClampField)
		}
	}
	rl.UpdateTexture(f.texture, f.pixels)
}

// Draw blits the field texture into the destination rectangle.
func (f *FieldView) Draw(dest rl.Rectangle) {
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(f.w), Height: float32(f.h)}
	rl.DrawTexturePro(f.texture, src, dest, rl.Vector2{}, 0, rl.White)
}

// Unload frees the GPU texture.
func (f *FieldView) Unload() {
	rl.UnloadTexture(f.texture)
}

// ExportImage rebuilds the current pixel buffer as a CPU-side rl.Image,
// for tools that need to write the field to disk rather than present it.
// Caller owns the returned image and must rl.UnloadImage it.
func (f *FieldView) ExportImage() *rl.Image {
	img := rl.GenImageColor(f.w, f.h, rl.Black)
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			c := f.pixels[y*f.w+x]
			rl.ImageDrawPixel(img, int32(x), int32(y), rl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}

// divergingColor maps a signed field value to a blue-black-red diverging
// color, saturating at +/-clamp.
func divergingColor(v, clamp float32) color.RGBA {
	if clamp <= 0 {
		clamp = 1
	}
	t := v / clamp
	if t > 1 {
		t = 1
	}
	if t < -1 {
		t = -1
	}

	if t >= 0 {
		return color.RGBA{R: uint8(t * 255), G: uint8(t * 60), B: uint8(t * 40), A: 255}
	}
	t = -t
	return color.RGBA{R: uint8(t * 40), G: uint8(t * 60), B: uint8(t * 255), A: 255}
}
