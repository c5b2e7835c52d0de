package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSample = errors.New("key file already exists")

func newTTY(t *testing.T) (*TTYOutput, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	return NewTTYOutput(&buf), &buf
}

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &JSONOutput{}, NewOutput(&buf, FormatJSON))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, FormatText))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, ""))
}

func TestTTYOutput_PrintIsRaw(t *testing.T) {
	out, buf := newTTY(t)
	out.Print("AbC-_9")
	assert.Equal(t, "AbC-_9\n", buf.String())
}

func TestTTYOutput_Status(t *testing.T) {
	out, buf := newTTY(t)
	out.Status(true, "Verified")
	out.Status(false, "Not verified")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Verified")
	assert.NotContains(t, lines[0], "✓")
	assert.Contains(t, lines[1], "Not verified")
}

func TestTTYOutput_Messages(t *testing.T) {
	out, buf := newTTY(t)
	out.Success("wrote keys")
	out.Warning("overwriting")
	out.Info("hello")
	out.Error(errSample)

	got := buf.String()
	assert.Contains(t, got, "✓ wrote keys")
	assert.Contains(t, got, "⚠ overwriting")
	assert.Contains(t, got, "hello")
	assert.Contains(t, got, "✗ key file already exists")
}

func TestTTYOutput_ActionableError(t *testing.T) {
	out, buf := newTTY(t)
	out.Error(NewActionableError("key file already exists", "Re-run with --force").WithContext("blake3.txt"))

	got := buf.String()
	assert.Contains(t, got, "✗ key file already exists (blake3.txt)")
	assert.Contains(t, got, "▸ Try: Re-run with --force")
}

func TestTTYOutput_JSON(t *testing.T) {
	out, buf := newTTY(t)
	require.NoError(t, out.JSON(map[string]string{"algorithm": "blake3"}))
	assert.Equal(t, "{\n  \"algorithm\": \"blake3\"\n}\n", buf.String())

	require.Error(t, out.JSON(make(chan int)))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.Print("sig")
	out.Status(false, "Not verified")
	out.Success("ok")
	out.Warning("careful")
	out.Info("fyi")
	out.Error(NewActionableError("boom", "Try again").WithContext("here"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 6)
	assert.Equal(t, map[string]any{"type": "result", "message": "sig"}, lines[0])
	assert.Equal(t, map[string]any{"type": "status", "ok": false, "message": "Not verified"}, lines[1])
	assert.Equal(t, "success", lines[2]["type"])
	assert.Equal(t, "warning", lines[3]["type"])
	assert.Equal(t, "info", lines[4]["type"])
	assert.Equal(t, map[string]any{
		"type":       "error",
		"message":    "boom (here)",
		"suggestion": "Try again",
		"context":    "here",
	}, lines[5])
}

func TestJSONOutput_PlainError(t *testing.T) {
	var buf bytes.Buffer
	NewJSONOutput(&buf).Error(errSample)
	assert.JSONEq(t, `{"type":"error","message":"key file already exists"}`, buf.String())
}

func TestJSONOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONOutput(&buf).JSON(map[string]bool{"verified": true}))
	assert.Equal(t, "{\"verified\":true}\n", buf.String())
}

func TestActionableError(t *testing.T) {
	ae := NewActionableError("bad key", "Check the key file").WithCause(errSample)
	assert.Equal(t, "bad key", ae.Error())
	require.ErrorIs(t, ae, errSample)

	var target *ActionableError
	require.ErrorAs(t, error(ae), &target)
	assert.Equal(t, "Check the key file", target.Suggestion)
}

func TestHasColorSupport(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, HasColorSupport())
}

func TestHasColorSupport_DumbTerminal(t *testing.T) {
	// t.Setenv cannot unset, so only the TERM branch is exercised when NO_COLOR is absent.
	if _, set := lookupNoColor(); set {
		t.Skip("NO_COLOR is set in the environment")
	}
	t.Setenv("TERM", "dumb")
	assert.False(t, HasColorSupport())

	t.Setenv("TERM", "xterm-256color")
	assert.True(t, HasColorSupport())
}
