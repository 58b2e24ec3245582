package pocketui

import (
	"time"

	"github.com/pocketcrm/pocketui/pkg/pocketui/constants"
	"github.com/pocketcrm/pocketui/pkg/pocketui/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// DrawerSettings configures the NavigationDrawer widget.
type DrawerSettings struct {
	Tuning            *GestureTuning // nil uses DefaultGestureTuning (or registry config tuning)
	CollapsedHeight   int32          // 0 uses the default, scaled to the display
	RowHeight         int32          // 0 uses the default, scaled to the display
	HandleHint        string         // Optional hint text next to the drawer handle
	DisableBackButton bool           // Ignore the back button instead of cancelling
}

// touchSlop is how far a pointer must travel before a touch becomes a drag
// instead of a tap.
const touchSlop = 8.0

type drawerController struct {
	nav      *NavigationState
	gestures *GestureController
	settings DrawerSettings

	window   *internal.Window
	renderer *sdl.Renderer

	margins   internal.Padding
	rowHeight int32

	// pointer state for the current touch
	pointerDown bool
	dragStarted bool
	downY       float32
	grantY      float32
	lastY       float32
	velocity    internal.VelocityTracker

	// button navigation
	focusIndex       int
	directionalInput internal.DirectionalInput
	lastInputTime    time.Time

	lastTicks uint64

	running   bool
	cancelled bool
	result    NavResult
}

// NavigationDrawer presents the draggable bottom navigation drawer over the
// current frame. It blocks until the user selects a destination or cancels.
//
// The drawer renders the first row of destinations in its collapsed state
// and the full reorderable grid when expanded. Dragging the panel, tapping
// the handle, and programmatic expansion all resolve through the same
// NavigationState flag, so the caller can observe and drive expansion while
// the widget runs.
func NavigationDrawer(nav *NavigationState, settings DrawerSettings) (*NavResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("navigation_drawer", ErrNotInitialized)
	}
	scale := internal.GetScaleFactor()

	collapsed := settings.CollapsedHeight
	if collapsed == 0 {
		collapsed = int32(96 * scale)
	}
	rowHeight := settings.RowHeight
	if rowHeight == 0 {
		rowHeight = int32(104 * scale)
	}

	tuning := DefaultGestureTuning()
	if settings.Tuning != nil {
		tuning = *settings.Tuning
	}

	metrics := NewDrawerMetrics(float32(collapsed), float32(rowHeight), nav.Registry().Len())

	dc := &drawerController{
		nav:              nav,
		gestures:         NewGestureController(nav, metrics, tuning),
		settings:         settings,
		window:           window,
		renderer:         window.Renderer,
		margins:          internal.UniformPadding(int32(16 * scale)),
		rowHeight:        rowHeight,
		focusIndex:       0,
		directionalInput: internal.NewDirectionalInput(),
		lastInputTime:    time.Now(),
		lastTicks:        sdl.GetTicks64(),
		running:          true,
	}

	for dc.running {
		if event := sdl.WaitEventTimeout(16); event != nil {
			dc.handleEvent(event)
		}

		dc.handleDirectionalRepeats()
		dc.step()

		if !internal.IsSuspended() {
			dc.render()
			window.Present()
		}
	}

	if dc.cancelled {
		return nil, ErrCancelled
	}
	return &dc.result, nil
}

func (dc *drawerController) step() {
	now := sdl.GetTicks64()
	dt := float32(now - dc.lastTicks)
	dc.lastTicks = now
	dc.gestures.Step(dt)
}

func (dc *drawerController) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		dc.running = false
		dc.cancelled = true

	case *sdl.WindowEvent:
		// Losing focus mid-drag is a gesture takeover; resolve it like a
		// neutral release so the panel never freezes between bounds.
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST && dc.dragStarted {
			dc.pointerDown = false
			dc.dragStarted = false
			dc.gestures.Interrupt()
		}

	case *sdl.KeyboardEvent:
		inputEvent := internal.GetInputProcessor().ProcessSDLEvent(event)
		if inputEvent == nil {
			return
		}
		if inputEvent.Pressed {
			dc.handleButton(inputEvent.Button)
		} else {
			dc.directionalInput.SetHeld(inputEvent.Button, false)
		}

	default:
		pointer := internal.TranslatePointerEvent(event, dc.window.GetWidth(), dc.window.GetHeight())
		if pointer != nil {
			dc.handlePointer(pointer)
		}
	}
}

func (dc *drawerController) handlePointer(p *internal.PointerEvent) {
	switch p.Phase {
	case internal.PointerDown:
		dc.pointerDown = true
		dc.dragStarted = false
		dc.downY = p.Y
		dc.lastY = p.Y
		dc.velocity.Reset()
		dc.velocity.Add(p.Y, p.TimestampMS)

	case internal.PointerMove:
		if !dc.pointerDown {
			return
		}
		dc.lastY = p.Y
		dc.velocity.Add(p.Y, p.TimestampMS)

		if !dc.dragStarted {
			if abs32(p.Y-dc.downY) < touchSlop || !dc.inPanel(dc.downY) {
				return
			}
			dc.dragStarted = true
			dc.grantY = p.Y
			dc.gestures.Grant()
		}
		dc.gestures.Move(p.Y - dc.grantY)

	case internal.PointerUp:
		if !dc.pointerDown {
			return
		}
		dc.pointerDown = false
		dc.velocity.Add(p.Y, p.TimestampMS)

		if dc.dragStarted {
			dc.dragStarted = false
			dc.gestures.Release(p.Y-dc.grantY, dc.velocity.VelocityY())
			return
		}
		dc.handleTap(p.X, p.Y)
	}
}

// inPanel reports whether a y coordinate falls inside the drawer panel.
func (dc *drawerController) inPanel(y float32) bool {
	return y >= float32(dc.window.GetHeight())-dc.gestures.Height()
}

func (dc *drawerController) handleTap(x, y float32) {
	if !dc.inPanel(y) {
		// Backdrop tap: collapse when expanded, otherwise ignore.
		if dc.nav.Expanded() {
			dc.nav.Collapse()
		}
		return
	}

	if dc.inHandleRegion(y) {
		dc.gestures.TapHandle()
		return
	}

	if index, ok := dc.cellAt(x, y); ok {
		destinations := dc.nav.OrderedAll()
		if index < len(destinations) {
			dc.selectDestination(destinations[index])
		}
	}
}

// inHandleRegion reports whether y lands on the grab handle strip at the top
// of the panel.
func (dc *drawerController) inHandleRegion(y float32) bool {
	top := float32(dc.window.GetHeight()) - dc.gestures.Height()
	return y >= top && y < top+float32(dc.handleHeight())
}

func (dc *drawerController) handleHeight() int32 {
	return int32(28 * internal.GetScaleFactor())
}

// cellAt maps a tap inside the panel body to an index into OrderedAll.
func (dc *drawerController) cellAt(x, y float32) (int, bool) {
	windowW := dc.window.GetWidth()
	panelTop := float32(dc.window.GetHeight()) - dc.gestures.Height()
	bodyTop := panelTop + float32(dc.handleHeight())
	if y < bodyTop {
		return 0, false
	}

	row := int((y - bodyTop) / float32(dc.rowHeight))
	col := int(x / (float32(windowW) / float32(constants.RowCapacity)))
	if col < 0 || col >= constants.RowCapacity || row < 0 {
		return 0, false
	}

	index := row*constants.RowCapacity + col
	if index >= dc.nav.Registry().Len() {
		return 0, false
	}
	return index, true
}

func (dc *drawerController) handleButton(button constants.VirtualButton) {
	if time.Since(dc.lastInputTime) < constants.DefaultInputDelay {
		return
	}
	dc.lastInputTime = time.Now()

	switch button {
	case constants.VirtualButtonBack:
		if !dc.settings.DisableBackButton {
			dc.running = false
			dc.cancelled = true
		}

	case constants.VirtualButtonMenu:
		dc.gestures.TapHandle()

	case constants.VirtualButtonConfirm:
		destinations := dc.nav.OrderedAll()
		if dc.focusIndex >= 0 && dc.focusIndex < len(destinations) {
			dc.selectDestination(destinations[dc.focusIndex])
		}

	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		dc.directionalInput.SetHeld(button, true)
		dc.moveFocus(button)
	}
}

func (dc *drawerController) handleDirectionalRepeats() {
	switch dc.directionalInput.Update() {
	case internal.DirectionUp:
		dc.moveFocus(constants.VirtualButtonUp)
	case internal.DirectionDown:
		dc.moveFocus(constants.VirtualButtonDown)
	case internal.DirectionLeft:
		dc.moveFocus(constants.VirtualButtonLeft)
	case internal.DirectionRight:
		dc.moveFocus(constants.VirtualButtonRight)
	}
}

func (dc *drawerController) moveFocus(button constants.VirtualButton) {
	count := dc.nav.Registry().Len()
	if count == 0 {
		return
	}

	// Focus walks the grid; moving below the first row on a collapsed
	// drawer expands it so the focused cell is always visible.
	next := dc.focusIndex
	switch button {
	case constants.VirtualButtonLeft:
		next--
	case constants.VirtualButtonRight:
		next++
	case constants.VirtualButtonUp:
		next -= constants.RowCapacity
	case constants.VirtualButtonDown:
		next += constants.RowCapacity
	}

	if next < 0 || next >= count {
		return
	}
	dc.focusIndex = next

	if dc.focusIndex >= constants.FirstRowSize && !dc.nav.Expanded() {
		dc.nav.Expand()
	}
}

func (dc *drawerController) selectDestination(dest Destination) {
	if err := dc.nav.SelectScreen(dest.ID); err != nil {
		// Stale id; keep running rather than corrupting anything.
		internal.GetLogger().Error("Drawer selection rejected", "id", dest.ID, "error", err)
		return
	}
	dc.result = NavResult{Destination: dest, Action: NavActionSelected}
	dc.running = false
}

func (dc *drawerController) render() {
	theme := internal.GetTheme()
	windowW := dc.window.GetWidth()
	windowH := dc.window.GetHeight()

	if dc.window.Background != nil {
		dc.window.RenderBackground()
	} else {
		bg := theme.BackgroundColor
		dc.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
		dc.renderer.Clear()
	}

	height := int32(dc.gestures.Height())
	panelTop := windowH - height

	// Backdrop scrim, opacity locked to the panel height.
	opacity := dc.gestures.BackdropOpacity()
	if opacity > 0 {
		alpha := uint8(opacity * 255)
		internal.FillRectAlpha(dc.renderer,
			&sdl.Rect{X: 0, Y: 0, W: windowW, H: panelTop},
			internal.WithAlpha(theme.BackdropColor, alpha))
	}

	// Panel with rounded top corners.
	scale := internal.GetScaleFactor()
	corner := int32(18 * scale)
	internal.DrawRoundedRect(dc.renderer,
		&sdl.Rect{X: 0, Y: panelTop, W: windowW, H: height + corner},
		corner, theme.PanelColor)

	dc.renderHandle(panelTop)
	dc.renderGrid(panelTop)
}

func (dc *drawerController) renderHandle(panelTop int32) {
	theme := internal.GetTheme()
	windowW := dc.window.GetWidth()
	scale := internal.GetScaleFactor()

	barW := int32(48 * scale)
	barH := int32(5 * scale)
	barY := panelTop + (dc.handleHeight()-barH)/2

	internal.DrawRoundedRect(dc.renderer,
		&sdl.Rect{X: (windowW - barW) / 2, Y: barY, W: barW, H: barH},
		barH/2, theme.HintColor)

	if dc.settings.HandleHint != "" {
		hint := internal.RenderText(dc.renderer, dc.settings.HandleHint, internal.Fonts.SmallFont, theme.HintColor)
		if hint != nil {
			defer hint.Destroy()
			w, h := internal.TextureSize(hint)
			dc.renderer.Copy(hint, nil, &sdl.Rect{
				X: windowW - dc.margins.Right - w,
				Y: barY - (h-barH)/2,
				W: w, H: h,
			})
		}
	}
}

func (dc *drawerController) renderGrid(panelTop int32) {
	windowW := dc.window.GetWidth()
	windowH := dc.window.GetHeight()
	bodyTop := panelTop + dc.handleHeight()

	// Clip to the panel so partially revealed rows draw cleanly mid-drag.
	dc.renderer.SetClipRect(&sdl.Rect{X: 0, Y: panelTop, W: windowW, H: windowH - panelTop})
	defer dc.renderer.SetClipRect(nil)

	cellW := windowW / constants.RowCapacity
	for i, dest := range dc.nav.OrderedAll() {
		row := int32(i / constants.RowCapacity)
		col := int32(i % constants.RowCapacity)
		cell := sdl.Rect{
			X: col * cellW,
			Y: bodyTop + row*dc.rowHeight,
			W: cellW,
			H: dc.rowHeight,
		}
		if cell.Y > windowH {
			break
		}
		dc.renderCell(dest, cell, i == dc.focusIndex)
	}
}

func (dc *drawerController) renderCell(dest Destination, cell sdl.Rect, focused bool) {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	if focused {
		inset := int32(6 * scale)
		internal.DrawRoundedRect(dc.renderer,
			&sdl.Rect{X: cell.X + inset, Y: cell.Y + inset, W: cell.W - 2*inset, H: cell.H - 2*inset},
			int32(12*scale), theme.HighlightColor)
	}

	active := dc.nav.IsActive(dest.ID)
	iconSize := int32(40 * scale)
	iconY := cell.Y + int32(10*scale)
	renderDestinationIcon(dc.renderer, dest, active,
		&sdl.Rect{X: cell.X + (cell.W-iconSize)/2, Y: iconY, W: iconSize, H: iconSize})

	titleColor := theme.TextColor
	if active {
		titleColor = theme.AccentColor
	} else if focused {
		titleColor = theme.HighlightedTextColor
	}

	title := internal.RenderText(dc.renderer, dest.Title, internal.Fonts.SmallFont, titleColor)
	if title != nil {
		defer title.Destroy()
		w, h := internal.TextureSize(title)
		if w > cell.W-int32(8*scale) {
			w = cell.W - int32(8*scale)
		}
		dc.renderer.Copy(title, &sdl.Rect{X: 0, Y: 0, W: w, H: h}, &sdl.Rect{
			X: cell.X + (cell.W-w)/2,
			Y: iconY + iconSize + int32(6*scale),
			W: w, H: h,
		})
	}
}

// renderDestinationIcon draws either a rasterized SVG icon or an icon-font
// glyph, tinted with the destination's color (accent when active).
func renderDestinationIcon(renderer *sdl.Renderer, dest Destination, active bool, dst *sdl.Rect) {
	theme := internal.GetTheme()
	tint := dest.IconColor
	if active {
		tint = theme.AccentColor
	}

	if isSVGPath(dest.Icon) {
		texture := internal.IconTexture(renderer, dest.Icon, dst.W)
		if texture != nil {
			texture.SetColorMod(tint.R, tint.G, tint.B)
			renderer.Copy(texture, nil, dst)
			return
		}
	}

	glyph := internal.RenderText(renderer, dest.Icon, internal.Fonts.IconFont, tint)
	if glyph != nil {
		defer glyph.Destroy()
		w, h := internal.TextureSize(glyph)
		renderer.Copy(glyph, nil, &sdl.Rect{
			X: dst.X + (dst.W-w)/2,
			Y: dst.Y + (dst.H-h)/2,
			W: w, H: h,
		})
	}
}

func isSVGPath(icon string) bool {
	return len(icon) > 4 && icon[len(icon)-4:] == ".svg"
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
