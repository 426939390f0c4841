package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/hubastard/frameui/engine/cells"
	"github.com/hubastard/frameui/engine/core"
	"github.com/hubastard/frameui/engine/ui"
)

// demo holds the state the sandbox widgets are bound to.
type demo struct {
	name    *cells.Str
	notes   *cells.Str
	snippet *cells.Str
	dark    *cells.Bool
	wrap    *cells.Bool
	size    *cells.Int
	level   *cells.Int
	count   *cells.Int
	speed   *cells.Float
	scale   *cells.Float
	accent  *cells.RGB
	due     *cells.Date

	clicks   int
	progress float32
	stats    stats
}

func newDemo() *demo {
	return &demo{
		name:    cells.NewStr("frameui"),
		notes:   cells.NewStr("Multi-line\nnotes"),
		snippet: cells.NewStr("func main() {\n    ui.Label(\"hi\")\n}"),
		dark:    cells.NewBool(true),
		wrap:    cells.NewBool(false),
		size:    cells.NewInt(1),
		level:   cells.NewInt(20),
		count:   cells.NewInt(3),
		speed:   cells.NewFloat(5),
		scale:   cells.NewFloat(1),
		accent:  cells.NewRGB(0.25, 0.55, 0.95),
		due:     cells.DateOf(time.Now()),
	}
}

func (d *demo) images() []string { return []string{"assets/logo.png"} }

func (d *demo) frame(f *core.Frame) error {
	d.stats.update(f)
	d.progress += float32(f.Delta().Seconds()) * 0.1
	if d.progress > 1 {
		d.progress = 0
	}

	if err := ui.Heading("frameui sandbox"); err != nil {
		return err
	}
	return errors.Join(
		ui.Horizontal(d.toolbar),
		ui.Separator(),
		d.section("Text", d.text),
		d.section("Values", d.values),
		d.section("Choices", d.choices),
		d.section("Layout", d.layout),
		d.section("Stats", d.stats.show),
	)
}

func (d *demo) section(title string, body func() error) error {
	_, err := ui.Collapsing(title, body)
	return err
}

func (d *demo) toolbar() error {
	clicked, err := ui.ButtonClicked("Click me")
	if err != nil {
		return err
	}
	if clicked {
		d.clicks++
	}
	if _, err := ui.SmallButtonClicked("small"); err != nil {
		return err
	}
	if _, err := ui.ImageAndTextClicked("assets/logo.png", "Logo"); err != nil {
		return err
	}
	return ui.Label(fmt.Sprintf("clicked %d times", d.clicks))
}

func (d *demo) text() error {
	return errors.Join(
		ui.Monospace("monospace"),
		ui.Small("small"),
		ui.Strong("strong"),
		ui.Weak("weak"),
		ui.Code("code()"),
		ui.Hyperlink("https://github.com/hubastard/frameui"),
		ui.HyperlinkTo("Go docs", "https://go.dev/doc"),
		ui.TextEditSingleline(d.name),
		ui.TextEditMultiline(d.notes),
		ui.CodeEditor(d.snippet),
		ui.Image("assets/logo.png"),
	)
}

func (d *demo) values() error {
	return errors.Join(
		ui.SliderFloat(d.speed, 0, 50, "speed"),
		ui.SliderInt(d.level, 0, 100, "level"),
		ui.Horizontal(func() error {
			return errors.Join(ui.Label("scale"), ui.DragFloat(d.scale, 0.1, 10, 0.01))
		}),
		ui.Horizontal(func() error {
			return errors.Join(ui.Label("count"), ui.DragInt(d.count, 0, 99, 0.1))
		}),
		ui.Progress(d.progress),
		ui.Horizontal(func() error {
			return errors.Join(ui.Label("accent"), ui.ColorEditButtonRGB(d.accent))
		}),
		ui.Horizontal(func() error {
			return errors.Join(ui.Label("due"), ui.DatePickerButton(d.due))
		}),
	)
}

func (d *demo) choices() error {
	return errors.Join(
		ui.Checkbox(d.dark, "Dark mode"),
		ui.ToggleValue(d.wrap, "Wrap"),
		ui.Horizontal(func() error {
			return errors.Join(
				ui.RadioValue(d.size, 0, "Small"),
				ui.RadioValue(d.size, 1, "Medium"),
				ui.RadioValue(d.size, 2, "Large"),
			)
		}),
		ui.Horizontal(func() error {
			return errors.Join(
				ui.SelectableValue(d.size, 0, "S"),
				ui.SelectableValue(d.size, 1, "M"),
				ui.SelectableValue(d.size, 2, "L"),
			)
		}),
		ui.ComboBox(d.level, []int32{10, 20, 50, 100}, []string{"ten", "twenty", "fifty"}, "level"),
	)
}

func (d *demo) layout() error {
	return errors.Join(
		ui.HorizontalWrapped(func() error {
			var errs []error
			for i := range 12 {
				errs = append(errs, ui.Label(fmt.Sprintf("item %d", i)))
			}
			return errors.Join(errs...)
		}),
		ui.Group(func() error {
			return errors.Join(ui.Label("grouped"), ui.Spinner())
		}),
		ui.Indent(func() error { return ui.Label("indented") }),
		ui.VerticalCentered(func() error { return ui.Label("centered") }),
		ui.HorizontalTop(func() error { return errors.Join(ui.Label("top"), ui.AddSpace(24), ui.Label("aligned")) }),
		ui.HorizontalCentered(func() error { return ui.Label("horizontal centered") }),
		ui.Vertical(func() error { return ui.Label("vertical") }),
		ui.AddEnabled(false, func() error {
			_, err := ui.ButtonClicked("disabled")
			return err
		}),
		ui.Scope(func() error {
			return errors.Join(ui.SetOpacity(0.5), ui.Label("half opacity"))
		}),
		ui.Scope(func() error {
			return errors.Join(ui.SetInvisible(), ui.Label("invisible"))
		}),
		ui.Scope(func() error {
			return errors.Join(ui.Disable(), ui.Label("disabled label"))
		}),
		d.failing(),
	)
}

// failing shows that a failing scope body does not take the frame down.
func (d *demo) failing() error {
	return ui.Vertical(func() error {
		if _, err := ui.LinkClicked("this section fails"); err != nil {
			return err
		}
		return errors.New("demo failure")
	})
}
