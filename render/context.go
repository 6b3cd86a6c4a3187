package render

import "github.com/lixenwraith/cadence/engine"

// Context provides frame state for renderers, passed by value. Renderers
// read the frame result and config; they never mutate either
type Context struct {
	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Step value driving this frame, for HUD display
	Step float64

	// Config is the snapshot the frame was computed with
	Config engine.FrameConfig

	// Result is the computed frame, owned by the engine
	Result *engine.FrameResult
}
