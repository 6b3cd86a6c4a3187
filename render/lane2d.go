package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	GutterWidth = 6 // left column for row labels
	laneTop     = 1
	lanePitch   = 2 // rows between lanes, leaves a blank separator line
)

// LaneRenderer paints the frame as flat 2D tiles: one horizontal lane per
// row, marker positions in cell units straight from the resolver
type LaneRenderer struct{}

// NewLaneRenderer creates the 2D backend
func NewLaneRenderer() *LaneRenderer {
	return &LaneRenderer{}
}

// LaneCount returns how many lanes fit the given screen height
func (r *LaneRenderer) LaneCount(height int) int {
	n := (height - laneTop - 1) / lanePitch
	if n < 0 {
		n = 0
	}
	return n
}

// Render draws one computed frame. Trailing markers paint first so the head
// always wins the cell
func (r *LaneRenderer) Render(screen tcell.Screen, ctx Context) {
	bg := BackgroundColor(ctx.Config.Palette)
	fill := tcell.StyleDefault.Background(bg)

	width := ctx.Width
	for _, rf := range ctx.Result.Rows {
		y := laneTop + rf.Row.Index*lanePitch
		if y >= ctx.Height-1 {
			break
		}

		// Row label in the gutter
		labelStyle := RowStyle(rf.Color, ctx.Config.Palette)
		DrawText(screen, 0, y, GutterWidth, rf.Row.Label, labelStyle)

		// Trailing markers, then head
		for pass := 0; pass < 2; pass++ {
			for _, m := range rf.Markers {
				if m.IsHead != (pass == 1) {
					continue
				}
				x := GutterWidth + int(math.Round(m.Position))
				if x < GutterWidth || x >= width {
					continue
				}

				style := fill.Foreground(FadedColor(rf.Color, m.Opacity, ctx.Config.Palette))
				screen.SetContent(x, y, shadeRune(m.Scale), nil, style)

				if m.IsHead {
					DrawText(screen, x+2, y, width-x-2, rf.Label, labelStyle)
				}
			}
		}
	}
}

// DrawText writes a clipped string run
func DrawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	for i, ch := range text {
		if i >= maxWidth {
			break
		}
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
