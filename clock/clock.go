package clock

import (
	"math"
	"sync"
	"time"

	"github.com/lixenwraith/cadence/parameter"
)

// SyncMode selects what the step value tracks between ticks
type SyncMode int

const (
	// SyncManual advances the step only while playing, at the configured velocity
	SyncManual SyncMode = iota
	// SyncWallSeconds pins the step to wall time in seconds
	SyncWallSeconds
	// SyncWallMillis pins the step to wall time in milliseconds
	SyncWallMillis
)

// String returns the mode name for status display
func (m SyncMode) String() string {
	switch m {
	case SyncWallSeconds:
		return "seconds"
	case SyncWallMillis:
		return "millis"
	default:
		return "manual"
	}
}

// Clock owns the shared continuous step value every lane advances against.
// All mutation goes through the control methods or Tick; readers take a
// consistent snapshot. One controller, one mutex
type Clock struct {
	mu sync.Mutex

	provider TimeProvider

	step     float64
	mode     SyncMode
	playing  bool
	velocity float64 // step units per millisecond, caller-clamped

	lastTick time.Time
	ticked   bool
}

// New creates a manual, paused clock at step zero
func New(provider TimeProvider) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{
		provider: provider,
		velocity: parameter.VelocityDefault,
	}
}

// Play resumes manual advancement. Leaving a wall-sync mode lands paused:
// the user must press again to actually move, which avoids an abrupt
// velocity jump at the mode switch
func (c *Clock) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != SyncManual {
		c.mode = SyncManual
		c.playing = false
		return
	}
	c.playing = true
}

// Pause halts manual advancement; from a wall-sync mode it drops to manual
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = SyncManual
	c.playing = false
}

// TogglePlayPause flips the playing flag in manual mode. From a wall-sync
// mode it switches to manual paused, same as Play
func (c *Clock) TogglePlayPause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != SyncManual {
		c.mode = SyncManual
		c.playing = false
		return
	}
	c.playing = !c.playing
}

// Step forces manual paused and advances to the next whole step
func (c *Clock) Step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = SyncManual
	c.playing = false
	c.step = math.Floor(c.step) + 1
}

// Reset forces manual paused at step zero
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = SyncManual
	c.playing = false
	c.step = 0
}

// SetSyncMode switches the synchronization source. Any non-manual mode
// clears the playing flag
func (c *Clock) SetSyncMode(mode SyncMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
	if mode != SyncManual {
		c.playing = false
	}
}

// SetVelocity stores the manual advancement rate in step units per
// millisecond. The caller clamps to the supported range
func (c *Clock) SetVelocity(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.velocity = v
}

// Tick advances the step once for the current frame and returns the new
// value. Wall-sync modes pin the step to elapsed real time; manual playing
// integrates velocity over the time since the previous tick
func (c *Clock) Tick() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	var elapsedMs float64
	if c.ticked {
		elapsedMs = float64(now.Sub(c.lastTick)) / float64(time.Millisecond)
	}
	c.lastTick = now
	c.ticked = true

	switch {
	case c.mode == SyncWallSeconds:
		c.step = float64(now.UnixMilli()) / 1000
	case c.mode == SyncWallMillis:
		c.step = float64(now.UnixMilli())
	case c.playing:
		c.step += elapsedMs * c.velocity
	}
	return c.step
}

// StepValue returns the current step without advancing it
func (c *Clock) StepValue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Mode returns the current synchronization mode
func (c *Clock) Mode() SyncMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Playing reports whether manual advancement is active
func (c *Clock) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Velocity returns the stored manual advancement rate
func (c *Clock) Velocity() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.velocity
}
