package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cadence/engine"
	"github.com/lixenwraith/cadence/parameter"
)

// SceneRenderer paints the frame as a perspective scene: markers travel
// along the horizontal axis, lanes recede into the screen, and the camera
// tracks the shared focus displacement. All lane math comes from the same
// resolver as the 2D backend, just in world units
type SceneRenderer struct{}

// NewSceneRenderer creates the 3D backend
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

// cameraPose returns the camera travel-axis position and aim point in
// resolver-local coordinates. Following trails the focus and looks ahead of
// it; otherwise the pose is fixed and only the aim follows the focus
func cameraPose(ctx Context) (camX, aimX float64) {
	cfg := ctx.Config
	if cfg.FollowEnabled {
		// In follow mode the resolver already recenters on the focus, so
		// the trailing camera is static in local coordinates
		center := cfg.ViewportExtent/2 - cfg.UnitSize/2
		return center - parameter.CameraTrailDistance, center + parameter.CameraLookAhead
	}
	camX = cfg.ViewportExtent / 2
	aimX = engine.Resolve(ctx.Result.Focus, ctx.Result.Focus, cfg)
	return camX, aimX
}

// Render draws one computed frame, far lanes first so near lanes overpaint
func (r *SceneRenderer) Render(screen tcell.Screen, ctx Context) {
	cfg := ctx.Config
	camX, aimX := cameraPose(ctx)

	// Shear so the aim point lands on the screen center at its depth
	shear := parameter.FocalLength * (aimX - camX) / parameter.CameraFixedDepth

	cx := ctx.Width / 2
	cy := ctx.Height / 2
	fill := tcell.StyleDefault.Background(BackgroundColor(cfg.Palette))

	for i := len(ctx.Result.Rows) - 1; i >= 0; i-- {
		rf := ctx.Result.Rows[i]

		depth := parameter.CameraNearDepth + float64(rf.Row.Index)*parameter.LaneSpacing
		proj := parameter.FocalLength / depth

		// Lane plane sits below the raised camera; far lanes rise toward
		// the horizon
		sy := cy + int(math.Round(proj*parameter.CellAspect*parameter.CameraHeight))
		if sy < 1 || sy >= ctx.Height-1 {
			continue
		}

		labelStyle := RowStyle(rf.Color, cfg.Palette)

		for pass := 0; pass < 2; pass++ {
			for _, m := range rf.Markers {
				if m.IsHead != (pass == 1) {
					continue
				}

				sx := cx + int(math.Round(proj*(m.Position-camX)-shear))
				tileW := int(proj * cfg.UnitSize * m.Scale)
				if tileW < 1 {
					tileW = 1
				}

				style := fill.Foreground(FadedColor(rf.Color, m.Opacity, cfg.Palette))
				drawRun(screen, sx-tileW/2, sy, tileW, ctx.Width, shadeRune(m.Scale), style)

				if m.IsHead && sy > 1 {
					DrawText(screen, sx-tileW/2, sy-1, ctx.Width-sx+tileW/2, rf.Label, labelStyle)
				}
			}
		}
	}
}

// drawRun paints a clipped horizontal run of one rune
func drawRun(screen tcell.Screen, x, y, width, screenWidth int, ch rune, style tcell.Style) {
	for i := 0; i < width; i++ {
		px := x + i
		if px < 0 || px >= screenWidth {
			continue
		}
		screen.SetContent(px, y, ch, nil, style)
	}
}
