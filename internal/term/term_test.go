package term

import "image/color"
import "testing"
import "time"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/buffer"

import "github.com/gdamore/tcell/v2"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

type cell struct {
	char rune
	style tcell.Style
}

type mockSurface struct {
	cells map[[2]int]cell
}

func (self *mockSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if self.cells == nil { self.cells = make(map[[2]int]cell) }
	self.cells[[2]int{x, y}] = cell{primary, style}
}

var testPalette = core.Palette{
	{0, 0, 0, 255},
	{255, 0, 0, 255},
	{0, 255, 0, 255},
}

func TestDisplayDraw(t *testing.T) {
	surface := &mockSurface{}
	back := color.RGBA{9, 9, 9, 255}
	display := NewDisplay(surface, 2, 3, testPalette, back)
	width, height := display.CellSize()
	assert.Equal(t, 2, width)
	assert.Equal(t, 2, height)

	buf := buffer.New(2, 3)
	buf.SetDot(0, 0, core.On)
	buf.SetDot(0, 1, 2)
	buf.SetDot(1, 2, core.On)
	require.True(t, display.Sync(buf))
	assert.InDelta(t, 3.0/6.0, display.ChangedFraction(), 1e-9)
	display.X, display.Y = 4, 1
	display.Draw()

	red, green := tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(0, 255, 0)
	black, gray := tcell.NewRGBColor(0, 0, 0), tcell.NewRGBColor(9, 9, 9)
	require.Len(t, surface.cells, 4)
	assert.Equal(t, cell{halfBlock, tcell.StyleDefault.Foreground(red).Background(green)}, surface.cells[[2]int{4, 1}])
	assert.Equal(t, cell{halfBlock, tcell.StyleDefault.Foreground(black).Background(black)}, surface.cells[[2]int{5, 1}])
	assert.Equal(t, cell{halfBlock, tcell.StyleDefault.Foreground(black).Background(gray)}, surface.cells[[2]int{4, 2}])
	assert.Equal(t, cell{halfBlock, tcell.StyleDefault.Foreground(red).Background(gray)}, surface.cells[[2]int{5, 2}])
}

func TestDisplaySync(t *testing.T) {
	display := NewDisplay(&mockSurface{}, 4, 2, testPalette, color.RGBA{})
	buf := buffer.New(4, 2)
	assert.False(t, display.Sync(buf))
	buf.Fill()
	assert.True(t, display.Sync(buf))
	assert.Equal(t, 1.0, display.ChangedFraction())
	buf.SetDot(0, 0, core.On) // same state, still marks the buffer
	assert.True(t, display.Sync(buf))
	assert.Zero(t, display.ChangedFraction())
	assert.Panics(t, func() { display.Sync(buffer.New(2, 2)) })
}

func TestDisplayCenter(t *testing.T) {
	display := NewDisplay(&mockSurface{}, 10, 7, testPalette, color.RGBA{})
	display.Center(30, 10)
	assert.Equal(t, 10, display.X)
	assert.Equal(t, 3, display.Y)
	display.Center(5, 2)
	assert.Zero(t, display.X)
	assert.Zero(t, display.Y)
}

type endlessKeys struct{}
func (endlessKeys) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
}

type finalizedScreen struct{}
func (finalizedScreen) PollEvent() tcell.Event { return nil }

func drained(events <-chan tcell.Event) bool {
	timeout := time.After(2*time.Second)
	for {
		select {
		case _, open := <-events:
			if !open { return true }
		case <-timeout:
			return false
		}
	}
}

func TestPollEventsStopsOnDone(t *testing.T) {
	done := make(chan struct{})
	events := PollEvents(endlessKeys{}, done)
	event := <-events
	key, ok := event.(*tcell.EventKey)
	require.True(t, ok)
	assert.Equal(t, 'x', key.Rune())

	time.Sleep(10*time.Millisecond) // let the buffer fill up
	close(done)
	assert.True(t, drained(events))
}

func TestPollEventsStopsOnNil(t *testing.T) {
	events := PollEvents(finalizedScreen{}, make(chan struct{}))
	assert.True(t, drained(events))
}
