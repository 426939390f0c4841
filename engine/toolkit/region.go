package toolkit

import (
	"errors"
	"time"
)

// ErrImagePending is returned by an ImageLoader while an image is still loading.
var ErrImagePending = errors.New("image pending")

// Kind selects the child region a Region.Open call creates.
type Kind int

const (
	KindRoot Kind = iota
	KindHorizontal
	KindHorizontalCentered
	KindHorizontalTop
	KindHorizontalWrapped
	KindVertical
	KindVerticalCentered
	KindCollapsing
	KindIndent
	KindGroup
	KindScope
	KindEnabled
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindHorizontal:
		return "horizontal"
	case KindHorizontalCentered:
		return "horizontal_centered"
	case KindHorizontalTop:
		return "horizontal_top"
	case KindHorizontalWrapped:
		return "horizontal_wrapped"
	case KindVertical:
		return "vertical"
	case KindVerticalCentered:
		return "vertical_centered"
	case KindCollapsing:
		return "collapsing"
	case KindIndent:
		return "indent"
	case KindGroup:
		return "group"
	case KindScope:
		return "scope"
	case KindEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// MayBeUnavailable reports whether a region of this kind can legitimately
// decline to open (a collapsed section).
func (k Kind) MayBeUnavailable() bool { return k == KindCollapsing }

// Params parameterize Region.Open.
type Params struct {
	// Title is the header of a collapsing section.
	Title string
	// Enabled applies to KindEnabled.
	Enabled bool
}

// Region is a native drawing context. A Region is only valid inside the
// callback that received it.
type Region interface {
	// Open creates a child region of the given kind and calls body with it
	// at most once. It reports whether body ran.
	Open(kind Kind, p Params, body func(child Region)) bool

	Heading(text string)
	Monospace(text string)
	Small(text string)
	Strong(text string)
	Weak(text string)
	Label(text string)
	Code(text string)

	CodeEditor(text *string)
	TextEditSingleline(text *string)
	TextEditMultiline(text *string)

	Button(text string) bool
	SmallButton(text string) bool
	Link(text string) bool
	Hyperlink(url string)
	HyperlinkTo(label, url string)
	ImageAndTextButton(src, text string) bool

	SliderFloat(v *float32, min, max float32, text string)
	SliderInt(v *int32, min, max int32, text string)
	DragFloat(v *float32, min, max, speed float32)
	DragInt(v *int32, min, max int32, speed float32)

	Checkbox(v *bool, text string)
	ToggleValue(v *bool, text string)
	RadioValue(current *int32, alternative int32, text string)
	SelectableValue(current *int32, alternative int32, text string)
	// ComboBox shows a closed combo with selected as its text and, when the
	// user opened it, calls popup with the region listing the choices.
	ComboBox(label, selected string, popup func(list Region))

	Progress(v float32)
	Spinner()
	ColorEditRGB(rgb *[3]float32)
	Image(src string)
	DatePickerButton(date *time.Time)
	Separator()
	AddSpace(amount float32)

	SetInvisible()
	Disable()
	SetOpacity(opacity float32)
}
