package internal

import (
	"os"

	"github.com/pocketcrm/pocketui/pkg/pocketui/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init boots the SDL subsystems, window, fonts, and input processing.
func Init(title string, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	InitInputProcessor()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{FullscreenDesktop: true}
		}
	}

	window = initWindow(title, showBackground, winOpts)

	initFonts(DefaultFontSizes)

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		StartPowerButtonWatcher(pbc)
	}
}

// SDLCleanup releases every resource Init acquired.
func SDLCleanup() {
	StopPowerButtonWatcher()
	window.closeWindow()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
