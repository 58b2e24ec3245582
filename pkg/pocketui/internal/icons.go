package internal

import (
	"fmt"
	"image"
	"os"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

var iconCache = NewTextureCache()

// IconTexture rasterizes an SVG icon file at the given pixel size and returns
// an SDL texture for it. Results are cached per (path, size); the cache owns
// the returned texture.
func IconTexture(renderer *sdl.Renderer, path string, sizePx int32) *sdl.Texture {
	if path == "" || sizePx <= 0 {
		return nil
	}

	key := fmt.Sprintf("%s@%d", path, sizePx)
	if texture := iconCache.Get(key); texture != nil {
		return texture
	}

	texture, err := rasterizeSVG(renderer, path, sizePx)
	if err != nil {
		GetInternalLogger().Error("Failed to rasterize icon", "path", path, "error", err)
		return nil
	}

	iconCache.Set(key, texture)
	return texture
}

// DestroyIconCache releases all cached icon textures. Called on shutdown.
func DestroyIconCache() {
	iconCache.Destroy()
}

func rasterizeSVG(renderer *sdl.Renderer, path string, sizePx int32) (*sdl.Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	icon, err := oksvg.ReadIconStream(file)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	size := int(sizePx)
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)

	// image.RGBA stores bytes as R,G,B,A which is ABGR8888 on little-endian.
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(size), int32(size),
		32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
