// Package constants defines shared constants, types, and configuration values
// used throughout the pocketui navigation shell.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar and WindowHeightEnvVar override the window size in
// development mode, where the shell runs windowed instead of fullscreen.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// The shell is touch-first, but every widget remains operable from the device's
// hardware buttons (and from a keyboard in development mode).
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonConfirm
	VirtualButtonBack
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonConfirm:
		return "Confirm"
	case VirtualButtonBack:
		return "Back"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// FirstRowSize is the number of destinations always visible in the collapsed
// drawer, the tab bar, and the first row of the expanded grid.
const FirstRowSize = 4

// RowCapacity is the number of grid cells per row in the expanded drawer
// and the bottom sheet.
const RowCapacity = 4

// DefaultInputDelay is the debounce delay between button input events.
const DefaultInputDelay = 20 * time.Millisecond
