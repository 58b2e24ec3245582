package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadThemeFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	content := `
accent = "#FF3B30"
panel = "#101012"
font_path = "/usr/share/fonts/ui.ttf"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	theme, err := LoadThemeFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if theme.AccentColor.R != 0xFF || theme.AccentColor.G != 0x3B || theme.AccentColor.B != 0x30 {
		t.Fatalf("accent = %+v", theme.AccentColor)
	}
	if theme.PanelColor.R != 0x10 || theme.PanelColor.B != 0x12 {
		t.Fatalf("panel = %+v", theme.PanelColor)
	}
	if theme.FontPath != "/usr/share/fonts/ui.ttf" {
		t.Fatalf("font path = %q", theme.FontPath)
	}

	// Keys absent from the file keep the stock values.
	defaults := DefaultTheme("")
	if theme.TextColor != defaults.TextColor {
		t.Fatalf("text color = %+v, want default %+v", theme.TextColor, defaults.TextColor)
	}
	if theme.BackgroundColor != defaults.BackgroundColor {
		t.Fatalf("background = %+v, want default %+v", theme.BackgroundColor, defaults.BackgroundColor)
	}
}

func TestLoadThemeFileRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`accent = "red"`), 0644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	if _, err := LoadThemeFile(path); err == nil {
		t.Fatal("expected error for malformed color")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#3478F6")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.R != 0x34 || c.G != 0x78 || c.B != 0xF6 || c.A != 255 {
		t.Fatalf("color = %+v", c)
	}

	if _, err := ParseHexColor("#FFF"); err == nil {
		t.Fatal("expected error for short hex")
	}
	if _, err := ParseHexColor(""); err == nil {
		t.Fatal("expected error for empty string")
	}
}
