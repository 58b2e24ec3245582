package internal

import (
	"os/exec"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig configures the evdev watcher for the device's power button.
// A short press runs the suspend script; holding past ShortPressMax shuts the
// device down. A zero DevicePath disables the watcher entirely.
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code of the power button
	DevicePath      string        // input device path, e.g. /dev/input/event1
	ShortPressMax   time.Duration // presses shorter than this suspend instead of shutting down
	CoolDownTime    time.Duration // ignore presses arriving within this window after an action
	SuspendScript   string        // command run on short press
	ShutdownCommand string        // command run on long press
}

var (
	powerWatcherRunning atomic.Bool
	deviceSuspended     atomic.Bool
	powerDevice         *evdev.InputDevice
)

// IsSuspended reports whether the device is currently suspended by a short
// power button press. The render loop reads this to skip presenting frames
// while the panel is off.
func IsSuspended() bool {
	return deviceSuspended.Load()
}

// StartPowerButtonWatcher opens the configured input device and watches it on
// a background goroutine. Safe to call once from Init.
func StartPowerButtonWatcher(pbc PowerButtonConfig) {
	if !powerWatcherRunning.CompareAndSwap(false, true) {
		return
	}

	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		powerWatcherRunning.Store(false)
		return
	}
	powerDevice = device

	go watchPowerButton(device, pbc)
}

// StopPowerButtonWatcher closes the input device, which unblocks the watcher
// goroutine's read loop.
func StopPowerButtonWatcher() {
	if !powerWatcherRunning.CompareAndSwap(true, false) {
		return
	}
	if powerDevice != nil {
		powerDevice.Close()
		powerDevice = nil
	}
}

func watchPowerButton(device *evdev.InputDevice, pbc PowerButtonConfig) {
	var pressedAt time.Time
	var lastAction time.Time

	for powerWatcherRunning.Load() {
		event, err := device.ReadOne()
		if err != nil {
			// Device closed during shutdown, or unplugged.
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != pbc.ButtonCode {
			continue
		}

		switch event.Value {
		case 1: // press
			pressedAt = time.Now()
		case 0: // release
			if pressedAt.IsZero() {
				continue
			}
			held := time.Since(pressedAt)
			pressedAt = time.Time{}

			if time.Since(lastAction) < pbc.CoolDownTime {
				continue
			}
			lastAction = time.Now()

			if held < pbc.ShortPressMax {
				toggleSuspend(pbc.SuspendScript)
			} else {
				GetInternalLogger().Info("Power button held, shutting down")
				runCommand(pbc.ShutdownCommand)
			}
		}
	}
}

func toggleSuspend(script string) {
	if deviceSuspended.Load() {
		deviceSuspended.Store(false)
		GetInternalLogger().Info("Device resumed")
		return
	}

	deviceSuspended.Store(true)
	GetInternalLogger().Info("Device suspending")
	runCommand(script)
}

func runCommand(command string) {
	if command == "" {
		return
	}
	if err := exec.Command(command).Run(); err != nil {
		GetInternalLogger().Error("Power command failed", "command", command, "error", err)
	}
}
