// Package colors holds the RGBA type and palette shared by the widget layer
// and the renderer.
package colors

type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{0, 0, 0, 0}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}

	// Widget palette.
	Text         = Color{0.82, 0.84, 0.86, 1}
	TextStrong   = Color{1, 1, 1, 1}
	TextWeak     = Color{0.55, 0.57, 0.60, 1}
	Panel        = Color{0.12, 0.14, 0.17, 1}
	Widget       = Color{0.20, 0.23, 0.27, 1}
	WidgetHot    = Color{0.27, 0.31, 0.36, 1}
	WidgetActive = Color{0.34, 0.39, 0.46, 1}
	Border       = Color{0.30, 0.33, 0.38, 1}
	Accent       = Color{0.25, 0.55, 0.95, 1}
	Link         = Color{0.45, 0.70, 1, 1}
	CodeBg       = Color{0.16, 0.17, 0.20, 1}
)

// RGB builds an opaque color from a triple.
func RGB(c [3]float32) Color { return Color{c[0], c[1], c[2], 1} }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Fade multiplies the alpha by f.
func (c Color) Fade(f float32) Color {
	c[3] *= f
	return c
}

// Scale multiplies the color channels by f, leaving alpha.
func (c Color) Scale(f float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = clamp01(c[i] * f)
	}
	return c
}

// Lerp mixes c toward d by t in [0, 1].
func (c Color) Lerp(d Color, t float32) Color {
	for i := range c {
		c[i] += (d[i] - c[i]) * t
	}
	return c
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
