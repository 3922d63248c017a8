package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "324 550", formatCode("324550"))
	assert.Equal(t, "3485 5935", formatCode("34855935"))
	assert.Equal(t, "1234567", formatCode("1234567"))
	assert.Equal(t, "1234", formatCode("1234"))
}

func TestCountdownBar(t *testing.T) {
	assert.Equal(t, "██████████", countdownBar(30, 30, 10))
	assert.Equal(t, "█████░░░░░", countdownBar(15, 30, 10))
	assert.Equal(t, "░░░░░░░░░░", countdownBar(0, 30, 10))
	assert.Empty(t, countdownBar(5, 0, 10))
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		idx, n, size int
		start, end   int
	}{
		{idx: 0, n: 5, size: 10, start: 0, end: 5},
		{idx: 0, n: 30, size: 10, start: 0, end: 10},
		{idx: 15, n: 30, size: 10, start: 10, end: 20},
		{idx: 29, n: 30, size: 10, start: 20, end: 30},
	}
	for _, tt := range tests {
		start, end := visibleWindow(tt.idx, tt.n, tt.size)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
		assert.True(t, tt.idx >= start && tt.idx < end)
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijkl", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "ünï...", fitText("ünïcödé", 6))
}

func TestRenderQR(t *testing.T) {
	qr, err := renderQR("otpauth://totp/GitHub:alice?secret=JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	assert.Contains(t, qr, "█")
}

func TestClearIfUnchanged(t *testing.T) {
	clip := &fakeClipboard{content: "123456"}
	require.NoError(t, clearIfUnchanged(clip, "123456"))
	assert.Empty(t, clip.content)

	clip = &fakeClipboard{content: "mine"}
	require.NoError(t, clearIfUnchanged(clip, "123456"))
	assert.Equal(t, "mine", clip.content)
	assert.Zero(t, clip.writes)

	assert.NoError(t, clearIfUnchanged(nil, "123456"))

	clip = &fakeClipboard{content: "123456", writeErr: errors.New("denied")}
	assert.Error(t, clearIfUnchanged(clip, "123456"))
}
