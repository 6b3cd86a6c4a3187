package engine

import (
	"math"

	"github.com/lixenwraith/cadence/parameter"
)

// TailType selects the trailing marker style
type TailType int

const (
	TailClassic TailType = iota
	TailGhost
	TailEcho
	TailStepped
	TailGlitch
	tailTypeCount
)

// String returns the style name for status display and config parsing
func (t TailType) String() string {
	switch t {
	case TailGhost:
		return "ghost"
	case TailEcho:
		return "echo"
	case TailStepped:
		return "stepped"
	case TailGlitch:
		return "glitch"
	default:
		return "classic"
	}
}

// Next cycles to the following style, wrapping after the last
func (t TailType) Next() TailType {
	return (t + 1) % tailTypeCount
}

// ParseTailType maps a style name to its TailType, defaulting to classic
func ParseTailType(s string) TailType {
	for t := TailClassic; t < tailTypeCount; t++ {
		if t.String() == s {
			return t
		}
	}
	return TailClassic
}

// profile returns the constant bundle for a style, honoring the wrapped
// limit extension
func (t TailType) profile(wrapped bool) parameter.TailProfile {
	var p parameter.TailProfile
	switch t {
	case TailGhost:
		p = parameter.TailGhostProfile
	case TailEcho:
		p = parameter.TailEchoProfile
	case TailStepped:
		p = parameter.TailSteppedProfile
	case TailGlitch:
		p = parameter.TailGlitchProfile
	default:
		p = parameter.TailClassicProfile
	}
	if wrapped {
		p.Limit = p.WrappedLimit
	}
	return p
}

// GenerateMarkers expands a row's head position into the head marker plus
// the style's trailing markers, already resolved to renderer-local
// coordinates. Pure function of its inputs; nothing persists between frames
func GenerateMarkers(step float64, movement int, pos Position, focus float64, cfg FrameConfig) []Marker {
	head := Marker{
		Position: Resolve(pos.Displacement, focus, cfg),
		IsHead:   true,
		Opacity:  1,
		Scale:    1,
	}
	if !cfg.TailEnabled {
		return []Marker{head}
	}

	wrapped := cfg.effectiveWrap()
	prof := cfg.TailType.profile(wrapped)
	markers := make([]Marker, 0, prof.Limit/prof.Stride+1)
	markers = append(markers, head)

	// Trailing marker k sits at trigger count Animated-k on the same lane
	unitSpan := float64(movement) * cfg.UnitSize

	var lapStart float64
	if wrapped {
		width := QuantizedWrapWidth(cfg.ViewportExtent, cfg.UnitSize)
		lapStart = math.Floor(pos.Displacement/width) * width
	}

	limit := float64(prof.Limit)
	for k := 1; k <= prof.Limit; k += prof.Stride {
		kf := float64(k)
		if pos.Animated-kf < 0 {
			break
		}

		displacement := (pos.Animated - kf) * unitSpan
		if wrapped && displacement < lapStart {
			// Older than the current lap; letting it through would bleed a
			// stale marker in from the previous wrap cycle
			break
		}

		m := Marker{
			Position: Resolve(displacement, focus, cfg),
			Opacity:  prof.OpacityBase * (1 - kf/limit),
			Scale:    1,
		}

		switch cfg.TailType {
		case TailEcho:
			if k < parameter.EchoNearCount {
				m.Opacity = parameter.EchoNearOpacity
			} else {
				m.Opacity = parameter.EchoFarOpacity
			}
		case TailStepped:
			m.Scale = math.Max(parameter.SteppedScaleFloor, 1-kf/limit)
		case TailGlitch:
			m.Position += math.Sin(kf*parameter.GlitchFreqK+step*parameter.GlitchFreqStep) * parameter.GlitchAmplitude
		}

		if m.Opacity <= parameter.OpacityCull {
			continue
		}
		markers = append(markers, m)
	}

	return markers
}
