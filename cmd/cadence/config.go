package main

import (
	"os"
	"strconv"

	"github.com/lixenwraith/cadence/engine"
	"github.com/lixenwraith/cadence/parameter"
)

// startupConfig is the boundary-validated launch configuration. Everything
// here can also be changed at runtime through key controls
type startupConfig struct {
	Frame    engine.FrameConfig
	Velocity float64
	FPS      int
	Audio    bool
	View3D   bool
}

// loadConfig reads CADENCE_* environment variables with clamping. The
// engine trusts these values, so all validation happens here
func loadConfig() startupConfig {
	cfg := startupConfig{
		Frame: engine.FrameConfig{
			RowCount:    10,
			UnitSize:    4,
			TailEnabled: true,
			TailType:    engine.TailClassic,
			WrapEnabled: true,
		},
		Velocity: parameter.VelocityDefault,
		FPS:      parameter.TickRate,
		Audio:    false,
	}

	if rows := os.Getenv("CADENCE_ROWS"); rows != "" {
		if val, err := strconv.Atoi(rows); err == nil {
			cfg.Frame.RowCount = clampInt(val, 1, parameter.RowCountMax)
		}
	}

	if unit := os.Getenv("CADENCE_UNIT"); unit != "" {
		if val, err := strconv.ParseFloat(unit, 64); err == nil && val > 0 {
			cfg.Frame.UnitSize = val
		}
	}

	if tail := os.Getenv("CADENCE_TAIL"); tail != "" {
		cfg.Frame.TailType = engine.ParseTailType(tail)
	}

	if pal := os.Getenv("CADENCE_PALETTE"); pal != "" {
		if val, err := strconv.Atoi(pal); err == nil && val >= 0 {
			cfg.Frame.Palette = val
		}
	}

	if vel := os.Getenv("CADENCE_VELOCITY"); vel != "" {
		if val, err := strconv.ParseFloat(vel, 64); err == nil {
			cfg.Velocity = clampFloat(val, parameter.VelocityMin, parameter.VelocityMax)
		}
	}

	if wrap := os.Getenv("CADENCE_WRAP"); wrap != "" {
		if val, err := strconv.ParseBool(wrap); err == nil {
			cfg.Frame.WrapEnabled = val
		}
	}

	if follow := os.Getenv("CADENCE_FOLLOW"); follow != "" {
		if val, err := strconv.ParseBool(follow); err == nil {
			cfg.Frame.FollowEnabled = val
		}
	}

	if tails := os.Getenv("CADENCE_TRAILS"); tails != "" {
		if val, err := strconv.ParseBool(tails); err == nil {
			cfg.Frame.TailEnabled = val
		}
	}

	if audio := os.Getenv("CADENCE_AUDIO"); audio != "" {
		if val, err := strconv.ParseBool(audio); err == nil {
			cfg.Audio = val
		}
	}

	if fps := os.Getenv("CADENCE_FPS"); fps != "" {
		if val, err := strconv.Atoi(fps); err == nil {
			cfg.FPS = clampInt(val, 1, 120)
		}
	}

	if view := os.Getenv("CADENCE_VIEW"); view == "3d" {
		cfg.View3D = true
	}

	return cfg
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
