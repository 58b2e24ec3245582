package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the loaded font faces used across the shell.
type FontSet struct {
	SmallFont  *ttf.Font
	MediumFont *ttf.Font
	LargeFont  *ttf.Font
	IconFont   *ttf.Font
}

// Fonts is the active font set, loaded during Init.
var Fonts FontSet

// FontSizes configures the point sizes loaded for each face.
type FontSizes struct {
	Small  int
	Medium int
	Large  int
	Icon   int
}

// DefaultFontSizes are tuned for a 1024x768 logical resolution and scaled
// by the display scale factor at load time.
var DefaultFontSizes = FontSizes{
	Small:  22,
	Medium: 28,
	Large:  38,
	Icon:   34,
}

func initFonts(sizes FontSizes) {
	theme := GetTheme()
	scale := GetScaleFactor()

	open := func(path string, size int) *ttf.Font {
		if path == "" {
			return nil
		}
		font, err := ttf.OpenFont(path, int(float32(size)*scale))
		if err != nil {
			GetInternalLogger().Error("Failed to open font", "path", path, "size", size, "error", err)
			return nil
		}
		return font
	}

	Fonts = FontSet{
		SmallFont:  open(theme.FontPath, sizes.Small),
		MediumFont: open(theme.FontPath, sizes.Medium),
		LargeFont:  open(theme.FontPath, sizes.Large),
		IconFont:   open(theme.IconFontPath, sizes.Icon),
	}

	// The icon font is optional; fall back to the text face so glyph
	// rendering never dereferences a nil font.
	if Fonts.IconFont == nil {
		Fonts.IconFont = Fonts.LargeFont
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont} {
		if font != nil {
			font.Close()
		}
	}
	if Fonts.IconFont != nil && Fonts.IconFont != Fonts.LargeFont {
		Fonts.IconFont.Close()
	}
	Fonts = FontSet{}
}
