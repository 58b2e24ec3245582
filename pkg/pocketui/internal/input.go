package internal

import (
	"github.com/pocketcrm/pocketui/pkg/pocketui/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a normalized button input event.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor maps raw SDL events to virtual button events.
// The shell is touch-first; the button path exists so every widget stays
// operable from hardware keys on the device and a keyboard in dev mode.
type InputProcessor struct {
	keyMap map[sdl.Keycode]constants.VirtualButton
}

var inputProcessor *InputProcessor

// InitInputProcessor installs the default key bindings.
func InitInputProcessor() {
	inputProcessor = &InputProcessor{
		keyMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_RETURN:    constants.VirtualButtonConfirm,
			sdl.K_SPACE:     constants.VirtualButtonConfirm,
			sdl.K_ESCAPE:    constants.VirtualButtonBack,
			sdl.K_BACKSPACE: constants.VirtualButtonBack,
			sdl.K_TAB:       constants.VirtualButtonMenu,
			sdl.K_POWER:     constants.VirtualButtonPower,
		},
	}
}

// GetInputProcessor returns the active input processor.
func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

// ProcessSDLEvent converts an SDL event into a virtual button event.
// Returns nil for events that do not map to a virtual button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := p.keyMap[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}
	}
	return nil
}

// Bind overrides the virtual button for a keycode.
func (p *InputProcessor) Bind(key sdl.Keycode, button constants.VirtualButton) {
	p.keyMap[key] = button
}
