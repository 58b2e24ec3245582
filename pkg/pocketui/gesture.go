package pocketui

import (
	"github.com/pocketcrm/pocketui/pkg/pocketui/constants"
	"github.com/pocketcrm/pocketui/pkg/pocketui/internal"
)

// DrawerPhase is the logical phase of the drawer's interaction state machine.
// Dragging is reachable from either stable phase and always resolves back to
// Collapsed or Expanded once the gesture ends.
type DrawerPhase int

const (
	DrawerCollapsed DrawerPhase = iota
	DrawerDragging
	DrawerSettling
	DrawerExpanded
)

func (p DrawerPhase) String() string {
	switch p {
	case DrawerCollapsed:
		return "collapsed"
	case DrawerDragging:
		return "dragging"
	case DrawerSettling:
		return "settling"
	case DrawerExpanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// DrawerMetrics fixes the two stable panel heights and the backdrop ceiling.
// Heights are in window pixels; the widget derives them from the window size
// and the destination count.
type DrawerMetrics struct {
	HeightCollapsed    float32
	HeightExpanded     float32
	MaxBackdropOpacity float32 // 0..1
}

// NewDrawerMetrics computes metrics for a catalog of destinationCount
// entries laid out RowCapacity per row: the expanded panel adds one rowHeight
// per grid row on top of the collapsed height.
func NewDrawerMetrics(collapsed, rowHeight float32, destinationCount int) DrawerMetrics {
	rows := (destinationCount + constants.RowCapacity - 1) / constants.RowCapacity
	return DrawerMetrics{
		HeightCollapsed:    collapsed,
		HeightExpanded:     collapsed + float32(rows)*rowHeight,
		MaxBackdropOpacity: 0.5,
	}
}

// GestureTuning holds the empirically tuned constants of the release
// decision and the settle animation. The decision structure is fixed; these
// values are configuration, overridable from the registry config file.
type GestureTuning struct {
	VelocityThreshold float32 // px/ms; flicks faster than this decide the gesture alone
	DistanceThreshold float32 // px; slow drags past this distance decide the gesture
	TapEpsilon        float32 // px; height within this of a bound counts as at the bound
	SpringStiffness   float32
	SpringDamping     float32
}

// DefaultGestureTuning returns the stock tuning.
func DefaultGestureTuning() GestureTuning {
	return GestureTuning{
		VelocityThreshold: 0.3,
		DistanceThreshold: 48,
		TapEpsilon:        4,
		SpringStiffness:   internal.DefaultSpringStiffness,
		SpringDamping:     internal.DefaultSpringDamping,
	}
}

// gestureSession is the transient per-drag state. It exists only between
// grant and release and is never shared.
type gestureSession struct {
	startHeight float32
}

// GestureController translates drag and tap input into drawer height changes
// and settles every gesture into one of the two stable heights with a damped
// spring. It owns the live height and backdrop opacity; NavigationState's
// expansion flag stays the durable source of truth, written when a settle
// animation completes and observed every frame for external changes.
type GestureController struct {
	nav     *NavigationState
	metrics DrawerMetrics
	tuning  GestureTuning

	phase   DrawerPhase
	spring  *internal.Spring
	session *gestureSession

	// lastSettled is the bound this controller last came to rest at.
	// settleFlagSeen is NavigationState's flag value when the in-flight
	// settle started; a mismatch mid-settle means an external write, which
	// wins.
	lastSettled    bool
	settleTarget   bool
	settling       bool
	settleFlagSeen bool
}

// NewGestureController creates a controller resting at the bound matching
// the navigation state's current expansion flag.
func NewGestureController(nav *NavigationState, metrics DrawerMetrics, tuning GestureTuning) *GestureController {
	height := metrics.HeightCollapsed
	phase := DrawerCollapsed
	if nav.Expanded() {
		height = metrics.HeightExpanded
		phase = DrawerExpanded
	}

	spring := internal.NewSpring(height)
	spring.Stiffness = float64(tuning.SpringStiffness)
	spring.Damping = float64(tuning.SpringDamping)

	return &GestureController{
		nav:         nav,
		metrics:     metrics,
		tuning:      tuning,
		phase:       phase,
		spring:      spring,
		lastSettled: nav.Expanded(),
	}
}

// Height returns the live panel height.
func (g *GestureController) Height() float32 {
	return g.spring.Position()
}

// BackdropOpacity returns the scrim opacity derived from the live height.
// It is always in lockstep with the height, never animated independently.
func (g *GestureController) BackdropOpacity() float32 {
	span := g.metrics.HeightExpanded - g.metrics.HeightCollapsed
	if span <= 0 {
		return 0
	}
	progress := (g.spring.Position() - g.metrics.HeightCollapsed) / span
	return internal.Clamp32(progress, 0, 1) * g.metrics.MaxBackdropOpacity
}

// Phase returns the current interaction phase.
func (g *GestureController) Phase() DrawerPhase {
	return g.phase
}

// Metrics returns the controller's height bounds.
func (g *GestureController) Metrics() DrawerMetrics {
	return g.metrics
}

// Grant begins a drag. The baseline is the live height, so a gesture that
// starts while a settle animation is still in flight picks up exactly where
// the panel currently is instead of jumping to the stale target.
func (g *GestureController) Grant() {
	g.session = &gestureSession{startHeight: g.spring.Position()}
	g.spring.Cancel()
	g.settling = false
	g.phase = DrawerDragging
}

// Move updates the live height for an in-progress drag. dy is the total
// vertical displacement since grant; dragging upward (negative dy) raises
// the panel. The height never leaves the [collapsed, expanded] bounds.
func (g *GestureController) Move(dy float32) {
	if g.session == nil {
		return
	}
	height := internal.Clamp32(
		g.session.startHeight-dy,
		g.metrics.HeightCollapsed,
		g.metrics.HeightExpanded,
	)
	g.spring.SetTo(height)
}

// Release ends a drag and decides where the panel settles. dy is the total
// displacement since grant and vy the release velocity in px/ms (positive
// downward). Precedence: fast flick by velocity, then sufficient distance,
// then whichever bound the final height is closer to.
func (g *GestureController) Release(dy, vy float32) {
	if g.session == nil {
		return
	}
	g.session = nil

	var expand bool
	switch {
	case vy < -g.tuning.VelocityThreshold:
		expand = true
	case vy > g.tuning.VelocityThreshold:
		expand = false
	case dy < -g.tuning.DistanceThreshold:
		expand = true
	case dy > g.tuning.DistanceThreshold:
		expand = false
	default:
		expand = g.closerToExpanded()
	}

	g.settle(expand)
}

// Interrupt handles a gesture being taken over by the system. It is treated
// exactly like a release below both thresholds: the panel snaps to the
// nearer bound, so the drawer is never stranded at an arbitrary height.
func (g *GestureController) Interrupt() {
	if g.session == nil {
		return
	}
	g.session = nil
	g.settle(g.closerToExpanded())
}

// TapHandle toggles between the two bounds: from the collapsed bound (within
// the tap epsilon) it expands, from anywhere else it collapses.
func (g *GestureController) TapHandle() {
	atCollapsed := g.spring.Position()-g.metrics.HeightCollapsed <= g.tuning.TapEpsilon
	g.settle(atCollapsed)
}

func (g *GestureController) closerToExpanded() bool {
	midpoint := (g.metrics.HeightCollapsed + g.metrics.HeightExpanded) / 2
	return g.spring.Position() >= midpoint
}

// settle starts the spring toward a bound. The expansion flag is written
// when the animation completes, in Step.
func (g *GestureController) settle(expand bool) {
	g.settleTarget = expand
	g.settling = true
	g.settleFlagSeen = g.nav.Expanded()
	g.phase = DrawerSettling
	g.spring.Retarget(g.boundFor(expand))
}

func (g *GestureController) boundFor(expand bool) float32 {
	if expand {
		return g.metrics.HeightExpanded
	}
	return g.metrics.HeightCollapsed
}

// Step advances the controller by dt milliseconds: reconciles against
// external expansion-flag writes, integrates the spring, and finalizes a
// settle when the spring comes to rest. Call once per frame.
func (g *GestureController) Step(dtMS float32) {
	g.reconcile()

	if g.spring.Step(dtMS) && g.settling {
		g.settling = false
		g.lastSettled = g.settleTarget
		g.nav.Toggle(g.settleTarget)
		if g.settleTarget {
			g.phase = DrawerExpanded
		} else {
			g.phase = DrawerCollapsed
		}
	}
}

// reconcile makes the animated height follow NavigationState's expansion
// flag when something other than this controller wrote it (a grid tap
// collapsing via SelectScreen, a programmatic Expand). The flag is
// authoritative; the height is a follower, never a second source of truth.
func (g *GestureController) reconcile() {
	if g.phase == DrawerDragging {
		// The flag is applied after the drag resolves; fighting a finger
		// on the panel would look broken.
		return
	}

	flag := g.nav.Expanded()

	if g.settling {
		if flag != g.settleFlagSeen {
			// External write raced our settle; it wins.
			g.settle(flag)
		}
		return
	}

	if flag != g.lastSettled {
		g.settle(flag)
	}
}
