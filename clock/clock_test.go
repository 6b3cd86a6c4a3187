package clock

import (
	"math"
	"testing"
	"time"
)

// TestResetFromAnyState tests that reset always lands at manual paused zero
func TestResetFromAnyState(t *testing.T) {
	states := []func(c *Clock){
		func(c *Clock) { c.Play() },
		func(c *Clock) { c.SetSyncMode(SyncWallSeconds) },
		func(c *Clock) { c.SetSyncMode(SyncWallMillis) },
		func(c *Clock) { c.Step(); c.Step(); c.Play() },
	}

	for i, setup := range states {
		c := New(NewMockTimeProvider(time.Unix(100, 0)))
		setup(c)
		c.Reset()

		if c.StepValue() != 0 {
			t.Errorf("state %d: expected step 0 after reset, got %f", i, c.StepValue())
		}
		if c.Playing() {
			t.Errorf("state %d: expected paused after reset", i)
		}
		if c.Mode() != SyncManual {
			t.Errorf("state %d: expected manual mode after reset, got %v", i, c.Mode())
		}
	}
}

// TestStepForcesManualPaused tests that step lands on the next whole value
func TestStepForcesManualPaused(t *testing.T) {
	c := New(NewMockTimeProvider(time.Unix(0, 0)))
	c.SetSyncMode(SyncWallMillis)
	c.Step()

	if c.Mode() != SyncManual {
		t.Errorf("expected manual mode after step, got %v", c.Mode())
	}
	if c.Playing() {
		t.Error("expected paused after step")
	}
	if c.StepValue() != 1 {
		t.Errorf("expected step 1, got %f", c.StepValue())
	}

	c.Step()
	if c.StepValue() != 2 {
		t.Errorf("expected step 2, got %f", c.StepValue())
	}
}

// TestStepFloorsFractionalValue tests floor(step)+1 semantics mid-transition
func TestStepFloorsFractionalValue(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	c := New(mock)
	c.Play()
	c.Tick()
	mock.Advance(250 * time.Millisecond) // 250ms * 0.01 = 2.5 steps
	c.Tick()

	if math.Abs(c.StepValue()-2.5) > 1e-9 {
		t.Fatalf("expected step 2.5 while playing, got %f", c.StepValue())
	}

	c.Step()
	if c.StepValue() != 3 {
		t.Errorf("expected step 3 after step from 2.5, got %f", c.StepValue())
	}
}

// TestToggleFromWallSyncLandsPaused tests the intentional pause-not-resume
// behavior when leaving a wall-sync mode
func TestToggleFromWallSyncLandsPaused(t *testing.T) {
	c := New(NewMockTimeProvider(time.Unix(0, 0)))
	c.SetSyncMode(SyncWallSeconds)

	c.TogglePlayPause()
	if c.Mode() != SyncManual {
		t.Errorf("expected manual mode after toggle, got %v", c.Mode())
	}
	if c.Playing() {
		t.Error("expected first toggle from wall-sync to land paused")
	}

	// Second press actually starts playing
	c.TogglePlayPause()
	if !c.Playing() {
		t.Error("expected second toggle to start playing")
	}
}

// TestSetSyncModeClearsPlaying tests that wall-sync modes never keep the
// manual playing flag
func TestSetSyncModeClearsPlaying(t *testing.T) {
	c := New(NewMockTimeProvider(time.Unix(0, 0)))
	c.TogglePlayPause()
	if !c.Playing() {
		t.Fatal("expected playing after toggle from manual paused")
	}

	c.SetSyncMode(SyncWallMillis)
	if c.Playing() {
		t.Error("expected playing cleared by wall-sync mode")
	}
}

// TestTickWallSeconds tests that wall-seconds mode pins step to epoch seconds
func TestTickWallSeconds(t *testing.T) {
	mock := NewMockTimeProvider(time.UnixMilli(42500))
	c := New(mock)
	c.SetSyncMode(SyncWallSeconds)

	if got := c.Tick(); math.Abs(got-42.5) > 1e-9 {
		t.Errorf("expected step 42.5, got %f", got)
	}

	mock.Advance(1500 * time.Millisecond)
	if got := c.Tick(); math.Abs(got-44.0) > 1e-9 {
		t.Errorf("expected step 44.0, got %f", got)
	}
}

// TestTickWallMillis tests that wall-millis mode pins step to epoch milliseconds
func TestTickWallMillis(t *testing.T) {
	mock := NewMockTimeProvider(time.UnixMilli(1234))
	c := New(mock)
	c.SetSyncMode(SyncWallMillis)

	if got := c.Tick(); got != 1234 {
		t.Errorf("expected step 1234, got %f", got)
	}
}

// TestTickManualPausedHoldsStep tests that a paused manual clock never drifts
func TestTickManualPausedHoldsStep(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := New(mock)
	c.Step()
	c.Step()

	for i := 0; i < 5; i++ {
		mock.Advance(100 * time.Millisecond)
		c.Tick()
	}

	if c.StepValue() != 2 {
		t.Errorf("expected paused step to stay 2, got %f", c.StepValue())
	}
}

// TestTickManualPlayingIntegratesVelocity tests velocity integration over
// elapsed time between ticks
func TestTickManualPlayingIntegratesVelocity(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(500, 0))
	c := New(mock)
	c.SetVelocity(0.02)
	c.TogglePlayPause()

	c.Tick() // establishes the tick baseline
	mock.Advance(100 * time.Millisecond)
	c.Tick()

	// 100ms * 0.02 steps/ms = 2 steps
	if math.Abs(c.StepValue()-2.0) > 1e-9 {
		t.Errorf("expected step 2.0, got %f", c.StepValue())
	}

	mock.Advance(50 * time.Millisecond)
	c.Tick()
	if math.Abs(c.StepValue()-3.0) > 1e-9 {
		t.Errorf("expected step 3.0, got %f", c.StepValue())
	}
}

// TestFirstTickHasNoElapsed tests that the first tick after creation does
// not integrate a bogus interval
func TestFirstTickHasNoElapsed(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(9999, 0))
	c := New(mock)
	c.TogglePlayPause()

	if got := c.Tick(); got != 0 {
		t.Errorf("expected first tick to leave step at 0, got %f", got)
	}
}

// TestVelocityAffectsOnlyManualPlaying tests that wall-sync ignores velocity
func TestVelocityAffectsOnlyManualPlaying(t *testing.T) {
	mock := NewMockTimeProvider(time.UnixMilli(10000))
	c := New(mock)
	c.SetVelocity(0.05)
	c.SetSyncMode(SyncWallSeconds)

	c.Tick()
	mock.Advance(time.Second)
	got := c.Tick()
	if math.Abs(got-11.0) > 1e-9 {
		t.Errorf("expected wall-seconds step 11.0 regardless of velocity, got %f", got)
	}
}
