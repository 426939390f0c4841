package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIErrorIsMatchesKind(t *testing.T) {
	err := Newf("ui.Label", KindNoActiveFrame, "outside frame")
	wrapped := fmt.Errorf("draw: %w", err)

	assert.True(t, errors.Is(wrapped, ErrNoActiveFrame))
	assert.False(t, errors.Is(wrapped, ErrAlreadyRunning))

	var ue *UIError
	require.True(t, errors.As(wrapped, &ue))
	assert.Equal(t, "ui.Label", ue.Op)
}

func TestUIErrorMessage(t *testing.T) {
	assert.Equal(t, "stack underflow", (&UIError{Kind: KindStackUnderflow}).Error())
	assert.Equal(t, "scope.Pop [stack underflow]", New("scope.Pop", KindStackUnderflow, nil).Error())
	assert.Equal(t, "core.Run [window creation]: no display",
		New("core.Run", KindWindowCreation, errors.New("no display")).Error())
}

func TestUIErrorUnwrap(t *testing.T) {
	base := errors.New("boom")
	err := New("core.Frame", KindHostCallbackFailed, base)
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, ErrHostCallbackFailed)
}

func TestPanicErrorUnwrap(t *testing.T) {
	base := errors.New("boom")
	pe := &PanicError{Op: "ui.Group", Value: base}
	assert.ErrorIs(t, pe, base)
	assert.Equal(t, "panic in ui.Group: boom", pe.Error())

	assert.Nil(t, (&PanicError{Value: 42}).Unwrap())
	assert.Equal(t, "panic: 42", (&PanicError{Value: 42}).Error())
}

func TestKindDefect(t *testing.T) {
	assert.True(t, KindStackConsistency.Defect())
	assert.True(t, KindDanglingHandle.Defect())
	assert.False(t, KindNoActiveFrame.Defect())
	assert.False(t, KindHostCallbackFailed.Defect())
}

type captureHandler struct {
	errs   []*UIError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *UIError)    { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReportAndRecover(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })

	Report(nil)
	Report(New("core.Frame", KindStackConsistency, nil))
	require.Len(t, h.errs, 1)
	assert.False(t, h.errs[0].Timestamp.IsZero())

	func() {
		defer Recover("native.Run", nil)
		panic("lost context")
	}()
	require.Len(t, h.panics, 1)
	assert.Equal(t, "native.Run", h.panics[0].Op)
	assert.Equal(t, "lost context", h.panics[0].Value)
	assert.NotEmpty(t, h.panics[0].StackTrace)
	assert.False(t, h.panics[0].Timestamp.IsZero())
}

func TestRecoverReturnsPanicAsError(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })

	loop := func() (err error) {
		defer Recover("platform.Run", &err)
		panic(New("core.Frame", KindNoActiveFrame, nil))
	}
	err := loop()

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "platform.Run", pe.Op)
	assert.ErrorIs(t, err, ErrNoActiveFrame, "a panicked UIError stays matchable")
	require.Len(t, h.panics, 1)
	assert.Same(t, pe, h.panics[0])

	clean := func() (err error) {
		defer Recover("platform.Run", &err)
		return nil
	}
	assert.NoError(t, clean())
	assert.Len(t, h.panics, 1)
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	_, ok := getHandler().(*LogHandler)
	assert.True(t, ok)
}

func TestLogHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	h.HandleError(&UIError{Op: "ui.Label", Kind: KindNoActiveFrame, Session: "s1", Err: errors.New("outside")})
	h.HandleError(&UIError{Op: "core.Frame", Kind: KindStackConsistency})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "WARN", first["level"])
	assert.Equal(t, "no active frame", first["kind"])
	assert.Equal(t, "s1", first["session_id"])
	assert.Equal(t, "ERROR", second["level"])
	assert.NotContains(t, second, "stack")
}

func TestLogHandlerPanic(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewJSONHandler(&buf, nil)), Verbose: true}

	h.HandlePanic(nil)
	h.HandlePanic(&PanicError{Op: "platform.Run", Value: "gl context lost", StackTrace: "main.loop"})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "frameui panic", rec["msg"])
	assert.Equal(t, "platform.Run", rec["op"])
	assert.Equal(t, "gl context lost", rec["value"])
	assert.Equal(t, "main.loop", rec["stack"])
}
