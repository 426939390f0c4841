// Package cells holds the mutable value slots a host binds to widgets.
//
// A cell is allocated once by the host and passed by pointer into widget
// calls every frame; the toolkit reads and writes Value in place. Cells do no
// locking: they are only touched on the session thread during a frame.
package cells

import (
	"fmt"
	"time"
)

// Str binds text to text-edit widgets.
type Str struct{ Value string }

func NewStr(v string) *Str    { return &Str{Value: v} }
func (c *Str) Get() string    { return c.Value }
func (c *Str) Set(v string)   { c.Value = v }
func (c *Str) String() string { return c.Value }

// Bool binds checkboxes and toggles.
type Bool struct{ Value bool }

func NewBool(v bool) *Bool     { return &Bool{Value: v} }
func (c *Bool) Get() bool      { return c.Value }
func (c *Bool) Set(v bool)     { c.Value = v }
func (c *Bool) String() string { return fmt.Sprint(c.Value) }

// Int binds integer sliders, drags, radio and selectable values, combo boxes.
type Int struct{ Value int32 }

func NewInt(v int32) *Int     { return &Int{Value: v} }
func (c *Int) Get() int32     { return c.Value }
func (c *Int) Set(v int32)    { c.Value = v }
func (c *Int) String() string { return fmt.Sprint(c.Value) }

// Float binds float sliders and drags.
type Float struct{ Value float32 }

func NewFloat(v float32) *Float { return &Float{Value: v} }
func (c *Float) Get() float32   { return c.Value }
func (c *Float) Set(v float32)  { c.Value = v }
func (c *Float) String() string { return fmt.Sprint(c.Value) }

// RGB binds a color picker. Components are in [0, 1].
type RGB struct{ R, G, B float32 }

func NewRGB(r, g, b float32) *RGB { return &RGB{R: r, G: g, B: b} }

// Array returns the components as the triple the toolkit edits.
func (c *RGB) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// SetArray stores a triple written by the toolkit.
func (c *RGB) SetArray(v [3]float32) { c.R, c.G, c.B = v[0], v[1], v[2] }

func (c *RGB) String() string { return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B) }

// Date binds a date picker. The value is a calendar date: the time of day is
// dropped and the location is UTC.
type Date struct{ Value time.Time }

// NewDate returns a cell holding year-month-day.
func NewDate(year int, month time.Month, day int) *Date {
	return &Date{Value: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns a cell holding the calendar date of t in t's location.
func DateOf(t time.Time) *Date {
	d := &Date{}
	d.Set(t)
	return d
}

func (c *Date) Get() time.Time { return c.Value }

// Set stores the calendar date of t, as seen in t's location.
func (c *Date) Set(t time.Time) {
	y, m, d := t.Date()
	c.Value = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (c *Date) String() string { return c.Value.Format(time.DateOnly) }
