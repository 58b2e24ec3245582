package pocketui

import (
	"time"

	"github.com/pocketcrm/pocketui/pkg/pocketui/constants"
	"github.com/pocketcrm/pocketui/pkg/pocketui/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// TabBarSettings configures the TabBar widget.
type TabBarSettings struct {
	BarHeight         int32  // 0 uses the default, scaled to the display
	MoreLabel         string // Label for the overflow slot, defaults to "More"
	DisableBackButton bool
}

// moreSlotID is the synthetic id for the overflow slot. It never enters the
// NavigationState order.
const moreSlotID = "__more__"

type tabBarController struct {
	nav      *NavigationState
	settings TabBarSettings

	window   *internal.Window
	renderer *sdl.Renderer

	barHeight int32

	focusIndex    int
	lastInputTime time.Time

	running   bool
	cancelled bool
	result    NavResult
}

// TabBar presents the fixed bottom tab bar. It shows the current first row
// of destinations plus an overflow slot when more destinations exist, and
// blocks until the user selects a tab, asks for the overflow sheet, or
// cancels.
//
// The bar accepts no drag gestures. It reads the same order as the drawer,
// so a promotion performed elsewhere is reflected the next time it renders.
func TabBar(nav *NavigationState, settings TabBarSettings) (*NavResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("tab_bar", ErrNotInitialized)
	}
	scale := internal.GetScaleFactor()

	barHeight := settings.BarHeight
	if barHeight == 0 {
		barHeight = int32(96 * scale)
	}
	if settings.MoreLabel == "" {
		settings.MoreLabel = "More"
	}

	tc := &tabBarController{
		nav:           nav,
		settings:      settings,
		window:        window,
		renderer:      window.Renderer,
		barHeight:     barHeight,
		focusIndex:    0,
		lastInputTime: time.Now(),
		running:       true,
	}

	for tc.running {
		if event := sdl.WaitEventTimeout(16); event != nil {
			tc.handleEvent(event)
		}

		if !internal.IsSuspended() {
			tc.render()
			window.Present()
		}
	}

	if tc.cancelled {
		return nil, ErrCancelled
	}
	return &tc.result, nil
}

// slots returns the visible tab slots: the first row, with the last slot
// replaced by the overflow affordance when the registry overflows one row.
// While the active destination sits outside the first row (a host starting
// on an out-of-window screen, before any promotion) the overflow slot
// borrows its title and icon, so the bar always shows where the user is.
func (tc *tabBarController) slots() []Destination {
	firstRow := tc.nav.FirstRow()
	if tc.nav.Registry().Len() <= constants.FirstRowSize {
		return firstRow
	}

	overflow := Destination{
		ID:    moreSlotID,
		Title: tc.settings.MoreLabel,
		Icon:  constants.More,
	}
	if !tc.activeInFirstRow() {
		if active, ok := tc.nav.Registry().Lookup(tc.nav.ActiveID()); ok {
			overflow.Title = active.Title
			overflow.Icon = active.Icon
			overflow.IconColor = active.IconColor
		}
	}

	slots := make([]Destination, len(firstRow), len(firstRow)+1)
	copy(slots, firstRow)
	return append(slots, overflow)
}

// activeInFirstRow reports whether the active destination occupies one of
// the rendered first-row slots.
func (tc *tabBarController) activeInFirstRow() bool {
	for _, dest := range tc.nav.FirstRow() {
		if tc.nav.IsActive(dest.ID) {
			return true
		}
	}
	return false
}

func (tc *tabBarController) handleEvent(event sdl.Event) {
	switch event.(type) {
	case *sdl.QuitEvent:
		tc.running = false
		tc.cancelled = true

	case *sdl.KeyboardEvent:
		inputEvent := internal.GetInputProcessor().ProcessSDLEvent(event)
		if inputEvent != nil && inputEvent.Pressed {
			tc.handleButton(inputEvent.Button)
		}

	default:
		pointer := internal.TranslatePointerEvent(event, tc.window.GetWidth(), tc.window.GetHeight())
		if pointer != nil && pointer.Phase == internal.PointerUp {
			tc.handleTap(pointer.X, pointer.Y)
		}
	}
}

func (tc *tabBarController) handleTap(x, y float32) {
	barTop := float32(tc.window.GetHeight() - tc.barHeight)
	if y < barTop {
		return
	}

	slots := tc.slots()
	slotW := float32(tc.window.GetWidth()) / float32(len(slots))
	index := int(x / slotW)
	if index < 0 || index >= len(slots) {
		return
	}
	tc.activate(slots[index])
}

func (tc *tabBarController) handleButton(button constants.VirtualButton) {
	if time.Since(tc.lastInputTime) < constants.DefaultInputDelay {
		return
	}
	tc.lastInputTime = time.Now()

	slots := tc.slots()

	switch button {
	case constants.VirtualButtonBack:
		if !tc.settings.DisableBackButton {
			tc.running = false
			tc.cancelled = true
		}

	case constants.VirtualButtonLeft:
		if tc.focusIndex > 0 {
			tc.focusIndex--
		}

	case constants.VirtualButtonRight:
		if tc.focusIndex < len(slots)-1 {
			tc.focusIndex++
		}

	case constants.VirtualButtonConfirm:
		if tc.focusIndex < len(slots) {
			tc.activate(slots[tc.focusIndex])
		}

	case constants.VirtualButtonMenu:
		if tc.nav.Registry().Len() > constants.FirstRowSize {
			tc.result = NavResult{Action: NavActionMore}
			tc.running = false
		}
	}
}

func (tc *tabBarController) activate(dest Destination) {
	if dest.ID == moreSlotID {
		tc.result = NavResult{Action: NavActionMore}
		tc.running = false
		return
	}

	if err := tc.nav.SelectScreen(dest.ID); err != nil {
		internal.GetLogger().Error("Tab selection rejected", "id", dest.ID, "error", err)
		return
	}
	tc.result = NavResult{Destination: dest, Action: NavActionSelected}
	tc.running = false
}

func (tc *tabBarController) render() {
	theme := internal.GetTheme()
	windowW := tc.window.GetWidth()
	windowH := tc.window.GetHeight()

	if tc.window.Background != nil {
		tc.window.RenderBackground()
	} else {
		bg := theme.BackgroundColor
		tc.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
		tc.renderer.Clear()
	}

	barTop := windowH - tc.barHeight
	panel := theme.PanelColor
	tc.renderer.SetDrawColor(panel.R, panel.G, panel.B, 255)
	tc.renderer.FillRect(&sdl.Rect{X: 0, Y: barTop, W: windowW, H: tc.barHeight})

	slots := tc.slots()
	slotW := windowW / int32(len(slots))
	for i, dest := range slots {
		tc.renderSlot(dest, sdl.Rect{
			X: int32(i) * slotW,
			Y: barTop,
			W: slotW,
			H: tc.barHeight,
		}, i == tc.focusIndex)
	}
}

func (tc *tabBarController) renderSlot(dest Destination, slot sdl.Rect, focused bool) {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	if focused {
		inset := int32(6 * scale)
		internal.DrawRoundedRect(tc.renderer,
			&sdl.Rect{X: slot.X + inset, Y: slot.Y + inset, W: slot.W - 2*inset, H: slot.H - 2*inset},
			int32(12*scale), theme.HighlightColor)
	}

	active := tc.nav.IsActive(dest.ID)
	if dest.ID == moreSlotID {
		// The overflow slot stands in for the active destination whenever
		// that destination is not rendered as a tab.
		active = !tc.activeInFirstRow()
	}
	iconSize := int32(36 * scale)
	iconY := slot.Y + int32(10*scale)
	renderDestinationIcon(tc.renderer, dest, active,
		&sdl.Rect{X: slot.X + (slot.W-iconSize)/2, Y: iconY, W: iconSize, H: iconSize})

	labelColor := theme.TextColor
	if active {
		labelColor = theme.AccentColor
	} else if focused {
		labelColor = theme.HighlightedTextColor
	}

	label := internal.RenderText(tc.renderer, dest.Title, internal.Fonts.SmallFont, labelColor)
	if label != nil {
		defer label.Destroy()
		w, h := internal.TextureSize(label)
		if w > slot.W-int32(8*scale) {
			w = slot.W - int32(8*scale)
		}
		tc.renderer.Copy(label, &sdl.Rect{X: 0, Y: 0, W: w, H: h}, &sdl.Rect{
			X: slot.X + (slot.W-w)/2,
			Y: iconY + iconSize + int32(4*scale),
			W: w, H: h,
		})
	}
}
