package visual

// Palette defines the fixed hash-to-hue table a palette id selects.
// Row color is derived purely from (movement value, palette): hue walks the
// wheel from BaseHue in HueStride degree increments, wrapped to [0, 360)
type Palette struct {
	Name       string
	BaseHue    float64
	HueStride  float64
	Saturation float64
	Luminance  float64

	// Background the renderers blend faint markers toward
	BgR, BgG, BgB uint8
}

// Palettes is indexed by palette id; ids wrap modulo the table length
var Palettes = []Palette{
	{Name: "spectrum", BaseHue: 0, HueStride: 23, Saturation: 0.85, Luminance: 0.55, BgR: 10, BgG: 10, BgB: 14},
	{Name: "ocean", BaseHue: 160, HueStride: 9, Saturation: 0.70, Luminance: 0.50, BgR: 4, BgG: 10, BgB: 18},
	{Name: "ember", BaseHue: 0, HueStride: 6, Saturation: 0.90, Luminance: 0.52, BgR: 16, BgG: 6, BgB: 4},
	{Name: "mono", BaseHue: 110, HueStride: 0, Saturation: 0.60, Luminance: 0.55, BgR: 6, BgG: 12, BgB: 6},
	{Name: "violet", BaseHue: 260, HueStride: 14, Saturation: 0.75, Luminance: 0.58, BgR: 12, BgG: 6, BgB: 18},
}

// ByID returns the palette for an id, wrapping out-of-range ids into the table
func ByID(id int) Palette {
	n := len(Palettes)
	i := id % n
	if i < 0 {
		i += n
	}
	return Palettes[i]
}
