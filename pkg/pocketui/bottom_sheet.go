package pocketui

import (
	"time"

	"github.com/pocketcrm/pocketui/pkg/pocketui/constants"
	"github.com/pocketcrm/pocketui/pkg/pocketui/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// SheetSettings configures the BottomSheet widget.
type SheetSettings struct {
	Title             string // Optional heading rendered above the grid
	RowHeight         int32  // 0 uses the default, scaled to the display
	DisableBackButton bool
	SpringStiffness   float32 // 0 uses the stock spring
	SpringDamping     float32
}

type sheetController struct {
	nav      *NavigationState
	settings SheetSettings

	window   *internal.Window
	renderer *sdl.Renderer

	margins     internal.Padding
	rowHeight   int32
	sheetHeight float32
	spring      *internal.Spring
	closing     bool

	focusIndex    int
	lastInputTime time.Time
	lastTicks     uint64

	running   bool
	cancelled bool
	result    NavResult
}

// BottomSheet presents all destinations as a modal grid sheet. Unlike the
// drawer it accepts no drag gestures: it springs fully open, stays open
// until resolved, and springs closed before returning.
//
// Selection applies the same ordering contract as the drawer, so an
// out-of-window pick is promoted into the first row. Tapping the backdrop
// or pressing back dismisses with NavActionDismissed.
func BottomSheet(nav *NavigationState, settings SheetSettings) (*NavResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("bottom_sheet", ErrNotInitialized)
	}
	scale := internal.GetScaleFactor()

	rowHeight := settings.RowHeight
	if rowHeight == 0 {
		rowHeight = int32(104 * scale)
	}
	stiffness := settings.SpringStiffness
	if stiffness == 0 {
		stiffness = internal.DefaultSpringStiffness
	}
	damping := settings.SpringDamping
	if damping == 0 {
		damping = internal.DefaultSpringDamping
	}

	rows := (nav.Registry().Len() + constants.RowCapacity - 1) / constants.RowCapacity
	headerHeight := int32(64 * scale)
	sheetHeight := float32(headerHeight + int32(rows)*rowHeight + int32(24*scale))
	if max := float32(window.GetHeight()) * 0.85; sheetHeight > max {
		sheetHeight = max
	}

	sc := &sheetController{
		nav:           nav,
		settings:      settings,
		window:        window,
		renderer:      window.Renderer,
		margins:       internal.UniformPadding(int32(16 * scale)),
		rowHeight:     rowHeight,
		sheetHeight:   sheetHeight,
		spring:        internal.NewSpring(0),
		lastInputTime: time.Now(),
		lastTicks:     sdl.GetTicks64(),
		running:       true,
	}
	sc.spring.Stiffness = float64(stiffness)
	sc.spring.Damping = float64(damping)
	sc.spring.Retarget(sheetHeight)
	nav.Expand()

	for sc.running {
		if event := sdl.WaitEventTimeout(16); event != nil {
			sc.handleEvent(event)
		}

		sc.step()

		if !internal.IsSuspended() {
			sc.render()
			window.Present()
		}
	}

	nav.Collapse()

	if sc.cancelled {
		return nil, ErrCancelled
	}
	return &sc.result, nil
}

func (sc *sheetController) step() {
	now := sdl.GetTicks64()
	dt := float32(now - sc.lastTicks)
	sc.lastTicks = now

	if sc.spring.Step(dt) && sc.closing {
		sc.running = false
	}
}

// dismiss starts the close animation. The widget returns once the sheet
// has fully retracted.
func (sc *sheetController) dismiss(result NavResult) {
	if sc.closing {
		return
	}
	sc.closing = true
	sc.result = result
	sc.spring.Retarget(0)
}

func (sc *sheetController) handleEvent(event sdl.Event) {
	if sc.closing {
		return
	}

	switch event.(type) {
	case *sdl.QuitEvent:
		sc.running = false
		sc.cancelled = true

	case *sdl.KeyboardEvent:
		inputEvent := internal.GetInputProcessor().ProcessSDLEvent(event)
		if inputEvent != nil && inputEvent.Pressed {
			sc.handleButton(inputEvent.Button)
		}

	default:
		pointer := internal.TranslatePointerEvent(event, sc.window.GetWidth(), sc.window.GetHeight())
		if pointer != nil && pointer.Phase == internal.PointerUp {
			sc.handleTap(pointer.X, pointer.Y)
		}
	}
}

func (sc *sheetController) handleTap(x, y float32) {
	sheetTop := float32(sc.window.GetHeight()) - sc.spring.Position()
	if y < sheetTop {
		sc.dismiss(NavResult{Action: NavActionDismissed})
		return
	}

	if index, ok := sc.cellAt(x, y); ok {
		destinations := sc.nav.OrderedAll()
		if index < len(destinations) {
			sc.selectDestination(destinations[index])
		}
	}
}

func (sc *sheetController) headerHeight() int32 {
	return int32(64 * internal.GetScaleFactor())
}

func (sc *sheetController) cellAt(x, y float32) (int, bool) {
	windowW := sc.window.GetWidth()
	sheetTop := float32(sc.window.GetHeight()) - sc.spring.Position()
	bodyTop := sheetTop + float32(sc.headerHeight())
	if y < bodyTop {
		return 0, false
	}

	row := int((y - bodyTop) / float32(sc.rowHeight))
	col := int(x / (float32(windowW) / float32(constants.RowCapacity)))
	if col < 0 || col >= constants.RowCapacity || row < 0 {
		return 0, false
	}

	index := row*constants.RowCapacity + col
	if index >= sc.nav.Registry().Len() {
		return 0, false
	}
	return index, true
}

func (sc *sheetController) handleButton(button constants.VirtualButton) {
	if time.Since(sc.lastInputTime) < constants.DefaultInputDelay {
		return
	}
	sc.lastInputTime = time.Now()

	count := sc.nav.Registry().Len()

	switch button {
	case constants.VirtualButtonBack, constants.VirtualButtonMenu:
		if button == constants.VirtualButtonBack && sc.settings.DisableBackButton {
			return
		}
		sc.dismiss(NavResult{Action: NavActionDismissed})

	case constants.VirtualButtonConfirm:
		destinations := sc.nav.OrderedAll()
		if sc.focusIndex >= 0 && sc.focusIndex < len(destinations) {
			sc.selectDestination(destinations[sc.focusIndex])
		}

	case constants.VirtualButtonLeft:
		if sc.focusIndex > 0 {
			sc.focusIndex--
		}
	case constants.VirtualButtonRight:
		if sc.focusIndex < count-1 {
			sc.focusIndex++
		}
	case constants.VirtualButtonUp:
		if sc.focusIndex-constants.RowCapacity >= 0 {
			sc.focusIndex -= constants.RowCapacity
		}
	case constants.VirtualButtonDown:
		if sc.focusIndex+constants.RowCapacity < count {
			sc.focusIndex += constants.RowCapacity
		}
	}
}

func (sc *sheetController) selectDestination(dest Destination) {
	if err := sc.nav.SelectScreen(dest.ID); err != nil {
		internal.GetLogger().Error("Sheet selection rejected", "id", dest.ID, "error", err)
		return
	}
	sc.dismiss(NavResult{Destination: dest, Action: NavActionSelected})
}

func (sc *sheetController) render() {
	theme := internal.GetTheme()
	windowW := sc.window.GetWidth()
	windowH := sc.window.GetHeight()

	if sc.window.Background != nil {
		sc.window.RenderBackground()
	} else {
		bg := theme.BackgroundColor
		sc.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
		sc.renderer.Clear()
	}

	height := int32(sc.spring.Position())
	sheetTop := windowH - height

	progress := sc.spring.Position() / sc.sheetHeight
	alpha := uint8(internal.Clamp32(progress, 0, 1) * 0.5 * 255)
	internal.FillRectAlpha(sc.renderer,
		&sdl.Rect{X: 0, Y: 0, W: windowW, H: sheetTop},
		internal.WithAlpha(theme.BackdropColor, alpha))

	scale := internal.GetScaleFactor()
	corner := int32(18 * scale)
	internal.DrawRoundedRect(sc.renderer,
		&sdl.Rect{X: 0, Y: sheetTop, W: windowW, H: height + corner},
		corner, theme.PanelColor)

	sc.renderer.SetClipRect(&sdl.Rect{X: 0, Y: sheetTop, W: windowW, H: height})
	defer sc.renderer.SetClipRect(nil)

	if sc.settings.Title != "" {
		title := internal.RenderText(sc.renderer, sc.settings.Title, internal.Fonts.MediumFont, theme.TextColor)
		if title != nil {
			defer title.Destroy()
			w, h := internal.TextureSize(title)
			sc.renderer.Copy(title, nil, &sdl.Rect{
				X: sc.margins.Left,
				Y: sheetTop + (sc.headerHeight()-h)/2,
				W: w, H: h,
			})
		}
	}

	bodyTop := sheetTop + sc.headerHeight()
	cellW := windowW / constants.RowCapacity
	for i, dest := range sc.nav.OrderedAll() {
		row := int32(i / constants.RowCapacity)
		col := int32(i % constants.RowCapacity)
		cell := sdl.Rect{
			X: col * cellW,
			Y: bodyTop + row*sc.rowHeight,
			W: cellW,
			H: sc.rowHeight,
		}
		if cell.Y > windowH {
			break
		}
		sc.renderSheetCell(dest, cell, i == sc.focusIndex)
	}
}

func (sc *sheetController) renderSheetCell(dest Destination, cell sdl.Rect, focused bool) {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	if focused {
		inset := int32(6 * scale)
		internal.DrawRoundedRect(sc.renderer,
			&sdl.Rect{X: cell.X + inset, Y: cell.Y + inset, W: cell.W - 2*inset, H: cell.H - 2*inset},
			int32(12*scale), theme.HighlightColor)
	}

	active := sc.nav.IsActive(dest.ID)
	iconSize := int32(40 * scale)
	iconY := cell.Y + int32(10*scale)
	renderDestinationIcon(sc.renderer, dest, active,
		&sdl.Rect{X: cell.X + (cell.W-iconSize)/2, Y: iconY, W: iconSize, H: iconSize})

	titleColor := theme.TextColor
	if active {
		titleColor = theme.AccentColor
	} else if focused {
		titleColor = theme.HighlightedTextColor
	}

	title := internal.RenderText(sc.renderer, dest.Title, internal.Fonts.SmallFont, titleColor)
	if title != nil {
		defer title.Destroy()
		w, h := internal.TextureSize(title)
		if w > cell.W-int32(8*scale) {
			w = cell.W - int32(8*scale)
		}
		sc.renderer.Copy(title, &sdl.Rect{X: 0, Y: 0, W: w, H: h}, &sdl.Rect{
			X: cell.X + (cell.W-w)/2,
			Y: iconY + iconSize + int32(6*scale),
			W: w, H: h,
		})
	}

	if dest.Subtitle != "" {
		sub := internal.RenderText(sc.renderer, dest.Subtitle, internal.Fonts.SmallFont, theme.HintColor)
		if sub != nil {
			defer sub.Destroy()
			w, h := internal.TextureSize(sub)
			if w > cell.W-int32(8*scale) {
				w = cell.W - int32(8*scale)
			}
			sc.renderer.Copy(sub, &sdl.Rect{X: 0, Y: 0, W: w, H: h}, &sdl.Rect{
				X: cell.X + (cell.W-w)/2,
				Y: cell.Y + cell.H - h - int32(6*scale),
				W: w, H: h,
			})
		}
	}
}
