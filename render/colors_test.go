package render

import (
	"testing"

	"github.com/lixenwraith/cadence/engine"
)

// TestFadedColorEndpoints tests that full opacity yields the row color and
// zero opacity yields the palette background
func TestFadedColorEndpoints(t *testing.T) {
	c := engine.RGB{R: 200, G: 100, B: 50}

	if FadedColor(c, 1, 0) != FadedColor(c, 1.5, 0) {
		t.Error("expected opacity clamped at 1")
	}
	if FadedColor(c, 0, 0) != BackgroundColor(0) {
		t.Error("expected zero opacity to equal the palette background")
	}
	if FadedColor(c, -0.5, 0) != BackgroundColor(0) {
		t.Error("expected negative opacity clamped to background")
	}
}

// TestFadedColorDeterministic tests stability across calls, since both
// backends derive styles independently from the same frame
func TestFadedColorDeterministic(t *testing.T) {
	c := engine.RGB{R: 10, G: 250, B: 90}
	for _, opacity := range []float64{0.05, 0.3, 0.7, 1} {
		if FadedColor(c, opacity, 2) != FadedColor(c, opacity, 2) {
			t.Errorf("opacity %f: unstable faded color", opacity)
		}
	}
}

// TestShadeRuneCoversScaleRange tests the scale-to-glyph mapping bounds
func TestShadeRuneCoversScaleRange(t *testing.T) {
	if shadeRune(1) != '█' {
		t.Error("expected full block at scale 1")
	}
	if shadeRune(0.6) != '░' {
		t.Error("expected lightest shade at the stepped scale floor")
	}
}
