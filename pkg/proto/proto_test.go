package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreen(t *testing.T) {
	for in, want := range map[string]uint8{
		"":      ScreenLeft,
		"left":  ScreenLeft,
		"0":     ScreenLeft,
		"right": ScreenRight,
		"1":     ScreenRight,
	} {
		got, err := ParseScreen(in)
		require.NoError(t, err, "in=%q", in)
		assert.Equal(t, want, got, "in=%q", in)
	}

	_, err := ParseScreen("middle")
	assert.Error(t, err)
}
