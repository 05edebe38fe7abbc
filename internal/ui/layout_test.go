package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long…", Truncate("longer", 5))
	assert.Equal(t, "…", Truncate("ab", 1))
	assert.Equal(t, "héll…", Truncate("héllo!", 5), "rune-aware")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
}

func TestWindow(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"a", "b"}, Window(lines, 0, 2))
	assert.Equal(t, []string{"c", "d"}, Window(lines, 2, 2))
	// Offset past the end clamps so the window stays full.
	assert.Equal(t, []string{"d", "e"}, Window(lines, 10, 2))
	// Window taller than the content returns everything.
	assert.Equal(t, lines, Window(lines, 0, 10))
	assert.Nil(t, Window(nil, 0, 3))
	assert.Nil(t, Window(lines, 0, 0))
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, DarkTheme(), ThemeByName("dark"))
	assert.Equal(t, LightTheme(), ThemeByName("light"))
	assert.Equal(t, DarkTheme(), ThemeByName("nonsense"))
}
