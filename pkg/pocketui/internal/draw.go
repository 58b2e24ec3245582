package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders a string into a texture. The caller owns the texture.
// Returns nil when the text is empty or rendering fails.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}
	return texture
}

// TextureSize returns the pixel dimensions of a texture.
func TextureSize(texture *sdl.Texture) (w, h int32) {
	if texture == nil {
		return 0, 0
	}
	_, _, w, h, _ = texture.Query()
	return w, h
}

// DrawRoundedRect fills a rectangle with rounded corners by drawing
// horizontal spans. radius is clamped to half the smaller dimension.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	maxRadius := Min32(rect.W, rect.H) / 2
	if radius > maxRadius {
		radius = maxRadius
	}
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	// Center band covers the full width.
	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})

	// Top and bottom bands shrink per-row to follow the corner arc.
	for dy := int32(0); dy < radius; dy++ {
		inset := radius - int32(math.Round(math.Sqrt(float64(radius*radius-(radius-dy-1)*(radius-dy-1)))))
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: rect.W - 2*inset, H: 1})
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + rect.H - dy - 1, W: rect.W - 2*inset, H: 1})
	}
}

// FillRectAlpha fills a rectangle with alpha blending enabled.
func FillRectAlpha(renderer *sdl.Renderer, rect *sdl.Rect, color sdl.Color) {
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(rect)
}
