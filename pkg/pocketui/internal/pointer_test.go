package internal

import "testing"

func TestVelocityNeedsTwoSamples(t *testing.T) {
	var vt VelocityTracker
	if got := vt.VelocityY(); got != 0 {
		t.Fatalf("empty tracker velocity = %v, want 0", got)
	}

	vt.Add(100, 1000)
	if got := vt.VelocityY(); got != 0 {
		t.Fatalf("single-sample velocity = %v, want 0", got)
	}
}

func TestVelocityFromConstantMotion(t *testing.T) {
	var vt VelocityTracker

	// 20 px downward every 10ms is 2 px/ms.
	for i := uint32(0); i < 6; i++ {
		vt.Add(float32(100+20*i), 1000+i*10)
	}

	got := vt.VelocityY()
	if got < 1.99 || got > 2.01 {
		t.Fatalf("velocity = %v, want 2.0 px/ms", got)
	}
}

func TestVelocityUpwardIsNegative(t *testing.T) {
	var vt VelocityTracker
	vt.Add(300, 1000)
	vt.Add(280, 1020)
	vt.Add(260, 1040)

	got := vt.VelocityY()
	if got > -0.99 || got < -1.01 {
		t.Fatalf("velocity = %v, want -1.0 px/ms", got)
	}
}

func TestVelocityIgnoresSamplesPastHorizon(t *testing.T) {
	var vt VelocityTracker

	// A long slow drag followed by a sharp final flick. Only the flick
	// samples are inside the 100ms horizon.
	vt.Add(100, 0)
	vt.Add(110, 400)
	vt.Add(120, 800)
	vt.Add(200, 990)
	vt.Add(300, 1040)

	// Inside the horizon: from (200, 990) to (300, 1040) is 2 px/ms. The
	// earlier crawl would have diluted this to well under 1 px/ms.
	got := vt.VelocityY()
	if got < 1.99 || got > 2.01 {
		t.Fatalf("velocity = %v, want 2.0 px/ms from recent samples only", got)
	}
}

func TestVelocityResetDiscardsHistory(t *testing.T) {
	var vt VelocityTracker
	vt.Add(100, 1000)
	vt.Add(200, 1010)

	vt.Reset()
	if got := vt.VelocityY(); got != 0 {
		t.Fatalf("velocity after reset = %v, want 0", got)
	}
}

func TestVelocityRingOverwritesOldest(t *testing.T) {
	var vt VelocityTracker

	// Fill past capacity with constant motion; the estimate must come from
	// the surviving recent samples, not garbage from wrapped slots.
	for i := uint32(0); i < 20; i++ {
		vt.Add(float32(10*i), i*10)
	}

	got := vt.VelocityY()
	if got < 0.99 || got > 1.01 {
		t.Fatalf("velocity = %v, want 1.0 px/ms", got)
	}
}

func TestVelocityZeroDeltaTime(t *testing.T) {
	var vt VelocityTracker
	vt.Add(100, 1000)
	vt.Add(150, 1000)

	if got := vt.VelocityY(); got != 0 {
		t.Fatalf("velocity with identical timestamps = %v, want 0", got)
	}
}
