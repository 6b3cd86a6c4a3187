package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cadence/engine"
	"github.com/lixenwraith/cadence/parameter/visual"
	"github.com/lucasb-eyer/go-colorful"
)

// toColorful converts the contract color to a blendable color
func toColorful(c engine.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// paletteBackground returns the background the palette blends toward
func paletteBackground(palette int) colorful.Color {
	p := visual.ByID(palette)
	return colorful.Color{
		R: float64(p.BgR) / 255,
		G: float64(p.BgG) / 255,
		B: float64(p.BgB) / 255,
	}
}

// FadedColor blends a row color toward the palette background by marker
// opacity. Opacity 1 is the row color, opacity 0 disappears into the background
func FadedColor(c engine.RGB, opacity float64, palette int) tcell.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	blended := paletteBackground(palette).BlendRgb(toColorful(c), opacity).Clamped()
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// RowStyle builds the full-opacity style for a row's head and label
func RowStyle(c engine.RGB, palette int) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(BackgroundColor(palette))
}

// BackgroundColor returns the palette background as a tcell color
func BackgroundColor(palette int) tcell.Color {
	p := visual.ByID(palette)
	return tcell.NewRGBColor(int32(p.BgR), int32(p.BgG), int32(p.BgB))
}

// shadeRune picks a block character by marker scale; smaller markers render
// as lighter shades so stepped tails visibly taper
func shadeRune(scale float64) rune {
	switch {
	case scale >= 0.95:
		return '█'
	case scale >= 0.8:
		return '▓'
	case scale >= 0.65:
		return '▒'
	default:
		return '░'
	}
}
