package native

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/frameui/engine/imm"
	"github.com/hubastard/frameui/engine/input"
	"github.com/hubastard/frameui/engine/toolkit"
)

func TestStaleRegionIsInert(t *testing.T) {
	ctx := imm.NewCtx(nullPainter{}, imm.DefaultStyle(16))
	u := ctx.Begin(imm.Rect{W: 640, H: 480}, input.Frame{}, 0)

	var kept toolkit.Region
	scoped(u, func(r toolkit.Region) {
		kept = r
		assert.True(t, r.(*region).Valid())
		r.Label("inside")
	})
	used := u.Used()

	r := kept.(*region)
	assert.False(t, r.Valid())
	r.Label("late")
	assert.False(t, r.Button("late"))
	assert.False(t, r.Open(toolkit.KindVertical, toolkit.Params{}, func(toolkit.Region) {
		t.Fatal("stale region opened a child")
	}))
	assert.Equal(t, used, u.Used())
	ctx.End()
}

func TestOpenEveryKind(t *testing.T) {
	ctx := imm.NewCtx(nullPainter{}, imm.DefaultStyle(16))
	u := ctx.Begin(imm.Rect{W: 640, H: 480}, input.Frame{}, 0)
	defer ctx.End()
	root := &region{u: u}

	kinds := []toolkit.Kind{
		toolkit.KindHorizontal,
		toolkit.KindHorizontalCentered,
		toolkit.KindHorizontalTop,
		toolkit.KindHorizontalWrapped,
		toolkit.KindVertical,
		toolkit.KindVerticalCentered,
		toolkit.KindIndent,
		toolkit.KindGroup,
		toolkit.KindScope,
		toolkit.KindEnabled,
	}
	for _, k := range kinds {
		ran := 0
		ok := root.Open(k, toolkit.Params{Enabled: true}, func(c toolkit.Region) {
			ran++
			c.Label(k.String())
		})
		assert.True(t, ok, k.String())
		assert.Equal(t, 1, ran, k.String())
	}

	assert.False(t, root.Open(toolkit.KindCollapsing, toolkit.Params{Title: "closed"}, func(toolkit.Region) {}))
	assert.False(t, root.Open(toolkit.KindRoot, toolkit.Params{}, func(toolkit.Region) {}))
	assert.False(t, root.Open(toolkit.KindVertical, toolkit.Params{}, nil))
}

func TestDisabledChildIgnoresInput(t *testing.T) {
	ctx := imm.NewCtx(nullPainter{}, imm.DefaultStyle(16))
	u := ctx.Begin(imm.Rect{W: 640, H: 480}, input.Frame{}, 0)
	root := &region{u: u}
	root.Open(toolkit.KindEnabled, toolkit.Params{Enabled: false}, func(c toolkit.Region) {
		c.Label("x")
		assert.False(t, c.(*region).u.IsEnabled())
	})
	assert.True(t, u.IsEnabled())
	ctx.End()
}
