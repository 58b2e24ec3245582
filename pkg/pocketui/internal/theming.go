package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the navigation shell.
type Theme struct {
	AccentColor          sdl.Color // Active destination tint, drawer handle
	TextColor            sdl.Color // Default text color
	HintColor            sdl.Color // Subtitles, handle hint, footer text
	HighlightColor       sdl.Color // Focused grid cell background
	HighlightedTextColor sdl.Color // Text on focused cells
	BackgroundColor      sdl.Color // Screen background color
	PanelColor           sdl.Color // Drawer and sheet panel background
	BackdropColor        sdl.Color // Scrim behind the expanded drawer (alpha applied per-frame)
	FontPath             string    // Path to the primary UI font
	IconFontPath         string    // Path to the icon glyph font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the shell.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme returns the stock dark theme used when no theme file is configured.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		AccentColor:          HexToColor(0x3478F6),
		TextColor:            HexToColor(0xF2F2F7),
		HintColor:            HexToColor(0x8E8E93),
		HighlightColor:       HexToColor(0x2C2C2E),
		HighlightedTextColor: HexToColor(0xFFFFFF),
		BackgroundColor:      HexToColor(0x1C1C1E),
		PanelColor:           HexToColor(0x242426),
		BackdropColor:        HexToColor(0x000000),
		FontPath:             fontPath,
	}
}

type themeFile struct {
	Accent          string `toml:"accent"`
	Text            string `toml:"text"`
	Hint            string `toml:"hint"`
	Highlight       string `toml:"highlight"`
	HighlightedText string `toml:"highlighted_text"`
	Background      string `toml:"background"`
	Panel           string `toml:"panel"`
	Backdrop        string `toml:"backdrop"`
	FontPath        string `toml:"font_path"`
	IconFontPath    string `toml:"icon_font_path"`
	BackgroundImage string `toml:"background_image"`
}

// LoadThemeFile reads a TOML theme file and merges it over the default theme.
// Missing keys keep their default values.
func LoadThemeFile(path string) (Theme, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return Theme{}, fmt.Errorf("theme file %s: %w", path, err)
	}

	theme := DefaultTheme(tf.FontPath)
	theme.IconFontPath = tf.IconFontPath
	theme.BackgroundImagePath = tf.BackgroundImage

	assign := func(dst *sdl.Color, raw string) error {
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		c, err := ParseHexColor(raw)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}

	for _, pair := range []struct {
		dst *sdl.Color
		raw string
	}{
		{&theme.AccentColor, tf.Accent},
		{&theme.TextColor, tf.Text},
		{&theme.HintColor, tf.Hint},
		{&theme.HighlightColor, tf.Highlight},
		{&theme.HighlightedTextColor, tf.HighlightedText},
		{&theme.BackgroundColor, tf.Background},
		{&theme.PanelColor, tf.Panel},
		{&theme.BackdropColor, tf.Backdrop},
	} {
		if err := assign(pair.dst, pair.raw); err != nil {
			return Theme{}, fmt.Errorf("theme file %s: %w", path, err)
		}
	}

	return theme, nil
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque SDL color.
func ParseHexColor(raw string) (sdl.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(s) != 6 {
		return sdl.Color{}, fmt.Errorf("invalid hex color %q", raw)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("invalid hex color %q: %w", raw, err)
	}
	return HexToColor(uint32(v)), nil
}
