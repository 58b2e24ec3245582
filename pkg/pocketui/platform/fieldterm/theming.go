// Package fieldterm provides theming presets for the FieldTerm handheld,
// the rugged sales terminal PocketCRM ships on. FieldTerm screens are
// sunlight-readable transflective panels, so the preset favors a light
// background with high-contrast text.
package fieldterm

import (
	"github.com/pocketcrm/pocketui/pkg/pocketui/internal"
)

// InitFieldTermTheme creates a theme with FieldTerm's default colors and the
// specified font.
func InitFieldTermTheme(fontPath string) internal.Theme {
	return internal.Theme{
		AccentColor:          internal.HexToColor(0x00695C),
		TextColor:            internal.HexToColor(0x1A1A1A),
		HintColor:            internal.HexToColor(0x5F6368),
		HighlightColor:       internal.HexToColor(0xD7E3E0),
		HighlightedTextColor: internal.HexToColor(0x00443B),
		BackgroundColor:      internal.HexToColor(0xF4F4F2),
		PanelColor:           internal.HexToColor(0xFFFFFF),
		BackdropColor:        internal.HexToColor(0x1A1A1A),
		FontPath:             fontPath,
	}
}
