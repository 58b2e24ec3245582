// Package pocketui is the navigation shell of the PocketCRM handheld client.
//
// It provides the gesture-driven, reorderable bottom navigation drawer plus
// its simpler siblings (tab bar, modal bottom sheet), all driven by one
// shared navigation model: the display order of destinations, the active
// destination, and the drawer's expansion state. Screens themselves are the
// host application's business; the shell resolves which route to show and in
// what order the destinations appear.
package pocketui

import (
	"log/slog"
	"time"

	"github.com/pocketcrm/pocketui/pkg/pocketui/internal"
	"github.com/pocketcrm/pocketui/pkg/pocketui/platform/fieldterm"
)

// Options configures shell initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background image
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, fullscreen, etc.)
	ThemeFile            string                 // Path to a TOML theme file; empty uses the default dark theme
	FontPath             string                 // Primary UI font, used when no theme file is given
	IsFieldTerm          bool                   // Running on FieldTerm hardware; uses its light theme preset
	PrimaryThemeColorHex uint32                 // Custom accent color override
	PowerButtonDevice    string                 // evdev input device for the power button; empty disables the watcher
	LogPath              string                 // Full path for the log file including filename
	LogLevel             string                 // Minimum log level ("debug", "info", "warn", "error")
}

// Init initializes SDL, theming, fonts, and input handling.
// Must be called before any widget function.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
	internal.SetInternalLogLevel(slog.LevelError)

	theme := internal.DefaultTheme(options.FontPath)
	if options.IsFieldTerm {
		theme = fieldterm.InitFieldTermTheme("/usr/share/pocketcrm/fonts/FieldTerm.ttf")
	}
	if options.ThemeFile != "" {
		loaded, err := internal.LoadThemeFile(options.ThemeFile)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load theme file, using defaults", "error", err)
		} else {
			theme = loaded
		}
	}
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	pbc := internal.PowerButtonConfig{}
	if options.PowerButtonDevice != "" {
		pbc = internal.PowerButtonConfig{
			ButtonCode:      116,
			DevicePath:      options.PowerButtonDevice,
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   "/usr/lib/pocketcrm/suspend",
			ShutdownCommand: "/sbin/poweroff",
		}
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc)
}

// Close releases all SDL resources and shuts down the shell.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.DestroyIconCache()
	internal.SDLCleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
