package parameter

// TailProfile bundles the per-style constants the tail generator consumes
type TailProfile struct {
	// Limit is the maximum trailing marker index in unwrapped mode
	Limit int

	// WrappedLimit applies in wrapped mode; equals Limit unless a style
	// raises it to cover a full lap
	WrappedLimit int

	// Stride is the trigger-index spacing between trailing markers
	Stride int

	// OpacityBase scales the opacity falloff curve
	OpacityBase float64
}

// Tail style profiles. The echo step opacities and the glitch jitter
// constants are tuned values carried over unchanged
var (
	TailClassicProfile = TailProfile{Limit: 40, WrappedLimit: 80, Stride: 1, OpacityBase: 0.4}
	TailGhostProfile   = TailProfile{Limit: 20, WrappedLimit: 20, Stride: 1, OpacityBase: 0.2}
	TailEchoProfile    = TailProfile{Limit: 60, WrappedLimit: 60, Stride: 1, OpacityBase: 0.3}
	TailSteppedProfile = TailProfile{Limit: 100, WrappedLimit: 100, Stride: 3, OpacityBase: 0.4}
	TailGlitchProfile  = TailProfile{Limit: 30, WrappedLimit: 30, Stride: 1, OpacityBase: 0.4}
)

// Echo style step-function opacity
const (
	EchoNearOpacity = 0.25
	EchoFarOpacity  = 0.05
	EchoNearCount   = 10
)

// Glitch style positional jitter: position += sin(k*freqK + step*freqStep) * amplitude
const (
	GlitchAmplitude = 4.0
	GlitchFreqK     = 1.5
	GlitchFreqStep  = 5.0
)

// Stepped style minimum marker scale
const SteppedScaleFloor = 0.6
