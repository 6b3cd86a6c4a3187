package engine

import "math"

// QuantizedWrapWidth truncates the viewport to whole lane units so wrapped
// markers land on the same grid on every lap, avoiding seam artifacts
func QuantizedWrapWidth(viewportExtent, unitSize float64) float64 {
	units := math.Floor(viewportExtent / unitSize)
	if units < 1 {
		units = 1
	}
	return units * unitSize
}

// effectiveWrap reports whether toroidal wrapping applies; follow mode
// always takes precedence over wrapping
func (cfg FrameConfig) effectiveWrap() bool {
	return cfg.WrapEnabled && !cfg.FollowEnabled
}

// Resolve maps an absolute displacement to a renderer-local coordinate.
// Wrapped mode folds into [0, quantized width); otherwise the position is
// recentered on the shared focus displacement
func Resolve(displacement, focus float64, cfg FrameConfig) float64 {
	if cfg.effectiveWrap() {
		width := QuantizedWrapWidth(cfg.ViewportExtent, cfg.UnitSize)
		pos := math.Mod(displacement, width)
		if pos < 0 {
			pos += width
		}
		return pos
	}
	return displacement - focus + cfg.ViewportExtent/2 - cfg.UnitSize/2
}
