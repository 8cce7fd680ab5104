package core

import "testing"
import "image/color"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestParseContent(t *testing.T) {
	content := ParseContent(3, "#.#", "##")
	require.Equal(t, 3, content.Width())
	require.Equal(t, 2, content.Height())
	assert.Equal(t, "3.3\n33.", content.String())
	assert.Equal(t, 3, content.At(0, 1))
	assert.Equal(t, Off, content.At(2, 1))
	assert.Panics(t, func() { content.At(3, 0) })
	assert.Panics(t, func() { content.Set(0, -1, On) })
}

func TestContentHelpers(t *testing.T) {
	content := ContentFromRows([][]int{{1, 2}, {-4}})
	assert.Equal(t, "#2\n-.", content.String())

	clone := content.Clone()
	assert.True(t, clone.Equal(content))
	clone.Set(1, 1, 12)
	assert.False(t, clone.Equal(content))
	assert.Equal(t, "#2\n-2", clone.String())

	filled := NewFilledContent(2, 1, On)
	assert.Equal(t, "##", filled.String())
	filled.Fill(Off)
	assert.Equal(t, "..", filled.String())
	assert.False(t, filled.Equal(NewContent(1, 2)))

	assert.True(t, NewContent(0, 3).IsEmpty())
	assert.Panics(t, func() { NewContent(-1, 1) })
}

func TestAlignAnchors(t *testing.T) {
	assert.Equal(t, 0, (Left | Bottom).HorzAnchor(10, 4))
	assert.Equal(t, 6, (Left | Bottom).VertAnchor(10, 4))
	assert.Equal(t, 3, Center.HorzAnchor(10, 4))
	assert.Equal(t, 3, Align(0).VertAnchor(10, 4))
	assert.Equal(t, -1, HorzCenter.HorzAnchor(4, 7))
	assert.Equal(t, Right | Top, (Left | Top).Adjusted(Right))
	assert.Equal(t, Left | Bottom, (Left | Top).Adjusted(Bottom))
	assert.Equal(t, "(Middle | HorzCenter)", Center.String())
	assert.Equal(t, "(Left)", Left.String())
}

func TestDirections(t *testing.T) {
	assert.Equal(t, DirRight, DirLeft.Opposite())
	assert.Equal(t, DirUp, DirDown.Opposite())
	assert.True(t, DirRight.IsHorz())
	assert.False(t, DirUp.IsHorz())
	assert.Equal(t, "Down", DirDown.String())
}

func TestPalette(t *testing.T) {
	palette, err := ParsePalette([]string{"#000000", "ffb020", "#11223344"})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, palette.Color(-3))
	assert.Equal(t, color.RGBA{0xFF, 0xB0, 0x20, 0xFF}, palette.Color(On))
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0x44}, palette.Color(9))

	_, err = ParsePalette([]string{"#12345"})
	assert.Error(t, err)
	_, err = ParseHexColor("#GG0000")
	assert.Error(t, err)

	assert.Equal(t, "#FFB020", HexColor(color.RGBA{0xFF, 0xB0, 0x20, 0xFF}))
	assert.Equal(t, "#11223344", HexColor(color.RGBA{0x11, 0x22, 0x33, 0x44}))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Palette(nil).Color(On))
}
