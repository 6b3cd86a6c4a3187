package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/cadence/parameter/visual"
	"github.com/lucasb-eyer/go-colorful"
)

// Row is one counter lane. Row 0 is the leader with movement 1; row i
// advances i+1 units per trigger, so movement is never zero by construction
type Row struct {
	Index    int
	Movement int
	Label    string
}

// MakeRows builds the standard row set for a lane count
func MakeRows(n int) []Row {
	if n <= 0 {
		return nil
	}
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			Index:    i,
			Movement: i + 1,
			Label:    fmt.Sprintf("x%d", i+1),
		}
	}
	return rows
}

// Marker is one renderable tile, recomputed from scratch every frame
type Marker struct {
	// Position is the renderer-local coordinate along the lane
	Position float64
	IsHead   bool
	Opacity  float64
	Scale    float64
}

// RGB is the renderer-agnostic color the contract hands to backends
type RGB struct {
	R, G, B uint8
}

// FrameConfig is the externally validated, read-only per-tick configuration.
// The engine never writes back into it and tolerates a different config on
// every tick
type FrameConfig struct {
	RowCount       int
	UnitSize       float64
	ViewportExtent float64
	WrapEnabled    bool
	FollowEnabled  bool
	TailEnabled    bool
	TailType       TailType
	Palette        int
}

// RowFrame is the per-row renderer input: ordered markers, a deterministic
// color, and the head label. Backends must not mutate it
type RowFrame struct {
	Row     Row
	Markers []Marker
	Color   RGB
	Label   string
}

// FrameResult is one tick's complete output
type FrameResult struct {
	Rows []RowFrame

	// Focus is the leader displacement used for recentering and camera placement
	Focus float64

	// LeaderStep is the integer part of the step value
	LeaderStep int64
}

// RowColor derives a row's color purely from its movement value and the
// palette id: hue walks the palette's fixed hue table, so the same row is
// the same color on every backend and every frame
func RowColor(movement, palette int) RGB {
	p := visual.ByID(palette)
	hue := math.Mod(p.BaseHue+float64(movement)*p.HueStride, 360)
	r, g, b := colorful.Hsl(hue, p.Saturation, p.Luminance).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ComputeFrame converts the step value and row configuration into the
// renderable frame. Pure: the entire result is re-derivable from
// (step, rows, cfg) and no state survives between calls
func ComputeFrame(step float64, rows []Row, cfg FrameConfig) FrameResult {
	// Non-finite steps should not occur under normal clock operation;
	// clamp instead of propagating NaN into layout math
	if math.IsNaN(step) || math.IsInf(step, 0) {
		step = 0
	}

	result := FrameResult{
		Focus:      Focus(step, cfg.UnitSize),
		LeaderStep: int64(math.Floor(step)),
	}
	if cfg.RowCount <= 0 || len(rows) == 0 {
		return result
	}

	label := fmt.Sprintf("%d", result.LeaderStep)

	count := cfg.RowCount
	if count > len(rows) {
		count = len(rows)
	}

	result.Rows = make([]RowFrame, 0, count)
	for _, row := range rows[:count] {
		if row.Movement < 1 {
			// Configuration fault; skipping beats dividing by zero
			continue
		}

		pos := ComputePosition(step, row.Movement, cfg.UnitSize)
		result.Rows = append(result.Rows, RowFrame{
			Row:     row,
			Markers: GenerateMarkers(step, row.Movement, pos, result.Focus, cfg),
			Color:   RowColor(row.Movement, cfg.Palette),
			Label:   label,
		})
	}
	return result
}
