package internal

import "testing"

// settle steps the spring in 16ms frames and returns how many steps reported
// completion.
func settle(t *testing.T, s *Spring) int {
	t.Helper()
	completions := 0
	for i := 0; i < 1000; i++ {
		if s.Step(16) {
			completions++
		}
		if !s.Active() {
			return completions
		}
	}
	t.Fatalf("spring never settled, position %v target %v", s.Position(), s.Target())
	return completions
}

func TestSpringSettlesAtTargetExactlyOnce(t *testing.T) {
	s := NewSpring(96)
	s.Retarget(304)

	completions := settle(t, s)
	if completions != 1 {
		t.Fatalf("completion reported %d times, want 1", completions)
	}
	if s.Position() != 304 {
		t.Fatalf("rest position = %v, want exactly 304", s.Position())
	}

	// Further steps are no-ops and never re-report completion.
	for i := 0; i < 10; i++ {
		if s.Step(16) {
			t.Fatal("settled spring reported completion again")
		}
	}
	if s.Position() != 304 {
		t.Fatalf("settled spring moved to %v", s.Position())
	}
}

func TestSpringInactiveUntilRetargeted(t *testing.T) {
	s := NewSpring(100)
	if s.Active() {
		t.Fatal("new spring should be at rest")
	}
	if s.Step(16) {
		t.Fatal("resting spring reported completion")
	}
	if s.Position() != 100 {
		t.Fatalf("resting spring moved to %v", s.Position())
	}
}

func TestSpringCancelHoldsPosition(t *testing.T) {
	s := NewSpring(96)
	s.Retarget(304)
	s.Step(16)
	s.Step(16)

	mid := s.Position()
	if mid <= 96 || mid >= 304 {
		t.Fatalf("expected mid-flight position, got %v", mid)
	}

	s.Cancel()
	if s.Active() {
		t.Fatal("cancelled spring still active")
	}
	s.Step(16)
	if s.Position() != mid {
		t.Fatalf("cancelled spring moved from %v to %v", mid, s.Position())
	}
}

func TestSpringSetToResetsMotion(t *testing.T) {
	s := NewSpring(96)
	s.Retarget(304)
	s.Step(16)

	s.SetTo(150)
	if s.Active() || s.Position() != 150 {
		t.Fatalf("SetTo: active=%v position=%v", s.Active(), s.Position())
	}
}

func TestSpringRetargetMidFlightRedirects(t *testing.T) {
	s := NewSpring(96)
	s.Retarget(304)
	s.Step(16)
	s.Step(16)

	s.Retarget(96)
	completions := settle(t, s)
	if completions != 1 {
		t.Fatalf("completion reported %d times, want 1", completions)
	}
	if s.Position() != 96 {
		t.Fatalf("rest position = %v, want 96", s.Position())
	}
}

func TestSpringClampsLargeTimesteps(t *testing.T) {
	s := NewSpring(96)
	s.Retarget(304)

	// A single huge dt (paused process, dropped frames) must not overshoot
	// into instability.
	for i := 0; i < 1000 && s.Active(); i++ {
		s.Step(5000)
		if p := s.Position(); p < -1000 || p > 2000 {
			t.Fatalf("integration diverged to %v", p)
		}
	}
	if s.Active() {
		t.Fatal("spring never settled under clamped large timesteps")
	}
}
