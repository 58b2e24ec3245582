package internal

import "math"

// Spring default constants. These are tuned for a drawer panel a few hundred
// pixels tall; callers can override them through the public tuning surface.
const (
	DefaultSpringStiffness = 170.0 // 1/s^2
	DefaultSpringDamping   = 26.0  // 1/s

	springRestDelta    = 0.5  // px
	springRestVelocity = 0.05 // px/ms
)

// Spring is a damped spring integrator driving one scalar value toward a
// target. The shell steps it once per frame; when the value comes to rest at
// the target the spring deactivates and reports completion exactly once.
type Spring struct {
	Stiffness float64
	Damping   float64

	position float64
	velocity float64
	target   float64
	active   bool
}

// NewSpring creates a spring at the given resting position.
func NewSpring(position float32) *Spring {
	return &Spring{
		Stiffness: DefaultSpringStiffness,
		Damping:   DefaultSpringDamping,
		position:  float64(position),
	}
}

// SetTo places the spring at a position with no motion and no target.
func (s *Spring) SetTo(position float32) {
	s.position = float64(position)
	s.velocity = 0
	s.active = false
}

// Retarget starts (or redirects) the animation toward target from the
// current in-flight position, keeping any existing velocity so reversals
// do not visibly jump.
func (s *Spring) Retarget(target float32) {
	s.target = float64(target)
	s.active = true
}

// Cancel stops the animation where it is, keeping the current position.
func (s *Spring) Cancel() {
	s.velocity = 0
	s.active = false
}

// Position returns the current value.
func (s *Spring) Position() float32 {
	return float32(s.position)
}

// Target returns the current target value.
func (s *Spring) Target() float32 {
	return float32(s.target)
}

// Active reports whether the spring is still animating.
func (s *Spring) Active() bool {
	return s.active
}

// Step advances the simulation by dt milliseconds using semi-implicit Euler.
// Returns true exactly on the step where the spring settles at its target.
func (s *Spring) Step(dtMS float32) bool {
	if !s.active {
		return false
	}

	// Integrate in seconds; clamp dt so a long GC pause or dropped frame
	// does not destabilize the integration.
	dt := float64(dtMS) / 1000.0
	if dt > 0.032 {
		dt = 0.032
	}

	accel := s.Stiffness*(s.target-s.position) - s.Damping*s.velocity
	s.velocity += accel * dt
	s.position += s.velocity * dt

	// velocity is px/s here; the rest threshold is px/ms
	if math.Abs(s.position-s.target) < springRestDelta &&
		math.Abs(s.velocity)/1000.0 < springRestVelocity {
		s.position = s.target
		s.velocity = 0
		s.active = false
		return true
	}
	return false
}
