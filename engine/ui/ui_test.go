package ui_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/frameui/engine/cells"
	"github.com/hubastard/frameui/engine/core"
	uierr "github.com/hubastard/frameui/engine/errors"
	"github.com/hubastard/frameui/engine/toolkit/toolkittest"
	"github.com/hubastard/frameui/engine/ui"
)

type quietHandler struct{ n int }

func (h *quietHandler) HandleError(*uierr.UIError)    { h.n++ }
func (h *quietHandler) HandlePanic(*uierr.PanicError) { h.n++ }

// frame runs body as the single frame of a session on tk and returns the
// recorded calls as strings.
func frame(t *testing.T, tk *toolkittest.Toolkit, body func() error) []string {
	t.Helper()
	h := &quietHandler{}
	uierr.SetHandler(h)
	t.Cleanup(func() { uierr.SetHandler(nil) })

	err := core.Run("ui-test", func(*core.Frame) error { return body() },
		core.WithToolkit(tk), core.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)

	var out []string
	for _, op := range tk.Ops() {
		out = append(out, op.String())
	}
	return out
}

func TestOutsideFrame(t *testing.T) {
	require.ErrorIs(t, ui.Label("x"), uierr.ErrNoActiveFrame)

	clicked, err := ui.ButtonClicked("Save")
	require.ErrorIs(t, err, uierr.ErrNoActiveFrame)
	assert.False(t, clicked)

	open, err := ui.Collapsing("Advanced", func() error { return nil })
	require.ErrorIs(t, err, uierr.ErrNoActiveFrame)
	assert.False(t, open)

	assert.Zero(t, ui.Depth())
}

func TestTextWidgets(t *testing.T) {
	tk := &toolkittest.Toolkit{}
	ops := frame(t, tk, func() error {
		return errors.Join(
			ui.Heading("h"),
			ui.Monospace("m"),
			ui.Small("s"),
			ui.Strong("st"),
			ui.Weak("w"),
			ui.Label("l"),
			ui.Code("c"),
			ui.Hyperlink("https://example.com"),
			ui.HyperlinkTo("docs", "https://example.com/docs"),
		)
	})
	assert.Equal(t, []string{
		"0:heading(h)",
		"0:monospace(m)",
		"0:small(s)",
		"0:strong(st)",
		"0:weak(w)",
		"0:label(l)",
		"0:code(c)",
		"0:hyperlink(https://example.com)",
		"0:hyperlink_to(docs https://example.com/docs)",
	}, ops)
}

func TestSliderLeavesUntouchedValue(t *testing.T) {
	tk := &toolkittest.Toolkit{}
	v := cells.NewFloat(5.0)
	ops := frame(t, tk, func() error { return ui.SliderFloat(v, 0, 50, "speed") })

	assert.Equal(t, float32(5.0), v.Get())
	assert.Equal(t, []string{"0:slider_float(speed 5 [0,50])"}, ops)
}

func TestBoundWidgetsWriteCells(t *testing.T) {
	tk := &toolkittest.Toolkit{Clicked: map[string]bool{"Dark mode": true, "Large": true, "Save": true}}

	dark := cells.NewBool(false)
	size := cells.NewInt(1)
	name := cells.NewStr("frameui")
	var saved bool

	ops := frame(t, tk, func() error {
		var err error
		saved, err = ui.ButtonClicked("Save")
		return errors.Join(err,
			ui.Checkbox(dark, "Dark mode"),
			ui.RadioValue(size, 1, "Small"),
			ui.RadioValue(size, 2, "Large"),
			ui.TextEditSingleline(name),
		)
	})

	assert.True(t, saved)
	assert.True(t, dark.Get())
	assert.Equal(t, int32(2), size.Get())
	assert.Equal(t, "frameui", name.Get())
	assert.Equal(t, []string{
		"0:button(Save)",
		"0:checkbox(Dark mode)",
		"0:radio_value(Small)",
		"0:radio_value(Large)",
		"0:text_edit_singleline(frameui)",
	}, ops)
}

func TestColorAndDateCells(t *testing.T) {
	tk := &toolkittest.Toolkit{}
	rgb := cells.NewRGB(1, 0.5, 0)
	day := cells.NewDate(2024, 2, 29)

	ops := frame(t, tk, func() error {
		return errors.Join(ui.ColorEditButtonRGB(rgb), ui.DatePickerButton(day))
	})
	assert.Equal(t, [3]float32{1, 0.5, 0}, rgb.Array())
	assert.Equal(t, "2024-02-29", day.String())
	assert.Equal(t, []string{"0:color_edit_rgb(1 0.5 0)", "0:date_picker_button(2024-02-29)"}, ops)
}

func TestScopesNest(t *testing.T) {
	tk := &toolkittest.Toolkit{}
	var depths []int

	ops := frame(t, tk, func() error {
		return ui.Horizontal(func() error {
			depths = append(depths, ui.Depth())
			if err := ui.Label("left"); err != nil {
				return err
			}
			return ui.Group(func() error {
				depths = append(depths, ui.Depth())
				return ui.AddEnabled(false, func() error {
					depths = append(depths, ui.Depth())
					return ui.Label("disabled")
				})
			})
		})
	})

	assert.Equal(t, []int{2, 3, 4}, depths)
	assert.Equal(t, []string{
		"0:open:horizontal()",
		"1:label(left)",
		"1:open:group()",
		"2:open:enabled()",
		"3:label(disabled)",
	}, ops)
}

func TestCollapsing(t *testing.T) {
	tk := &toolkittest.Toolkit{Collapsed: map[string]bool{"Advanced": true}}

	var (
		advanced, basic bool
		ran             []string
	)
	frame(t, tk, func() error {
		var err error
		advanced, err = ui.Collapsing("Advanced", func() error {
			ran = append(ran, "Advanced")
			return nil
		})
		if err != nil {
			return err
		}
		basic, err = ui.Collapsing("Basic", func() error {
			ran = append(ran, "Basic")
			return ui.Label("inside")
		})
		return err
	})

	assert.False(t, advanced)
	assert.True(t, basic)
	assert.Equal(t, []string{"Basic"}, ran)
}

func TestFailingBodyIsSwallowedByDefault(t *testing.T) {
	tk := &toolkittest.Toolkit{}
	var scopeErr error

	ops := frame(t, tk, func() error {
		scopeErr = ui.Vertical(func() error {
			if err := ui.Label("A"); err != nil {
				return err
			}
			return errors.New("host failure")
		})
		return ui.Label("B")
	})

	assert.NoError(t, scopeErr)
	assert.Equal(t, []string{"0:open:vertical()", "1:label(A)", "0:label(B)"}, ops)
}

func TestComboBox(t *testing.T) {
	tests := []struct {
		name   string
		value  int32
		alts   []int32
		names  []string
		wantOp string
	}{
		{"named", 20, []int32{10, 20}, []string{"ten", "twenty"}, "0:combo_box(size=twenty)"},
		{"missing name", 30, []int32{10, 20, 30}, []string{"ten"}, "0:combo_box(size=Unknown)"},
		{"absent value", 99, []int32{10, 20}, []string{"ten", "twenty"}, "0:combo_box(size=Unknown)"},
		{"value is not an index", 1, []int32{0, 1}, []string{"zero", "one"}, "0:combo_box(size=one)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := &toolkittest.Toolkit{}
			cur := cells.NewInt(tt.value)
			ops := frame(t, tk, func() error { return ui.ComboBox(cur, tt.alts, tt.names, "size") })
			assert.Equal(t, []string{tt.wantOp}, ops)
			assert.Equal(t, tt.value, cur.Get())
		})
	}
}

func TestComboBoxPopupSelects(t *testing.T) {
	tk := &toolkittest.Toolkit{
		OpenCombos: map[string]bool{"size": true},
		Clicked:    map[string]bool{"Unknown": true},
	}
	cur := cells.NewInt(10)

	ops := frame(t, tk, func() error {
		return ui.ComboBox(cur, []int32{10, 20}, []string{"ten"}, "size")
	})

	assert.Equal(t, int32(20), cur.Get())
	assert.Equal(t, []string{
		"0:combo_box(size=ten)",
		"1:selectable_value(ten)",
		"1:selectable_value(Unknown)",
	}, ops)
}
