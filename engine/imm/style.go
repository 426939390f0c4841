package imm

import "github.com/hubastard/frameui/engine/colors"

// Font selects a typeface.
type Font int

const (
	FontProportional Font = iota
	FontMono
)

// TextStyle is how a run of text is drawn.
type TextStyle struct {
	Font  Font
	Scale float32
	Color colors.Color
	Bg    colors.Color
}

var (
	StyleBody      = TextStyle{Font: FontProportional, Scale: 1, Color: colors.Text}
	StyleHeading   = TextStyle{Font: FontProportional, Scale: 1.4, Color: colors.TextStrong}
	StyleMonospace = TextStyle{Font: FontMono, Scale: 1, Color: colors.Text}
	StyleSmall     = TextStyle{Font: FontProportional, Scale: 0.8, Color: colors.Text}
	StyleStrong    = TextStyle{Font: FontProportional, Scale: 1, Color: colors.TextStrong}
	StyleWeak      = TextStyle{Font: FontProportional, Scale: 1, Color: colors.TextWeak}
	StyleCode      = TextStyle{Font: FontMono, Scale: 1, Color: colors.Text, Bg: colors.CodeBg}
	StyleLink      = TextStyle{Font: FontProportional, Scale: 1, Color: colors.Link}
)

// Style holds sizes shared by every widget.
type Style struct {
	FontSize      float32
	Spacing       float32
	Padding       float32
	Indent        float32
	SliderWidth   float32
	TextEditWidth float32
	PopupWidth    float32
}

func DefaultStyle(fontSize float32) Style {
	if fontSize <= 0 {
		fontSize = 16
	}
	return Style{
		FontSize:      fontSize,
		Spacing:       fontSize * 0.4,
		Padding:       fontSize * 0.3,
		Indent:        fontSize * 1.2,
		SliderWidth:   fontSize * 10,
		TextEditWidth: fontSize * 14,
		PopupWidth:    fontSize * 12,
	}
}
