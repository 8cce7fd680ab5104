// Package term draws dot-matrix buffers on terminal screens. Each
// cell shows two dots stacked vertically with the upper half block
// character, which keeps dots roughly square on most terminals.
package term

import "image/color"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/buffer"

import "github.com/gdamore/tcell/v2"

const preViolation = "precondition violation"

const halfBlock = '▀'

// The part of [tcell.Screen] the display draws to.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// A Display mirrors a buffer's dots and draws them on a [Surface].
// It implements [buffer.Sink].
type Display struct {
	surface Surface
	palette core.Palette
	background tcell.Color
	columns int
	rows int
	states []int
	changed int

	// Top-left cell where the display is drawn.
	X, Y int
}

// Creates a display of the given size, in dots. Non-positive sizes
// will cause the function to panic.
func NewDisplay(surface Surface, columns, rows int, palette core.Palette, background color.RGBA) *Display {
	if surface == nil || columns <= 0 || rows <= 0 { panic(preViolation) }
	return &Display{
		surface: surface,
		palette: palette,
		background: rgbColor(background),
		columns: columns,
		rows: rows,
		states: make([]int, columns*rows),
	}
}

// Returns the size of the display, in terminal cells.
func (self *Display) CellSize() (int, int) {
	return self.columns, (self.rows + 1)/2
}

// Centers the display on a screen of the given size, in cells.
func (self *Display) Center(screenWidth, screenHeight int) {
	width, height := self.CellSize()
	self.X = max((screenWidth - width)/2, 0)
	self.Y = max((screenHeight - height)/2, 0)
}

// Implements [buffer.Sink].
func (self *Display) SetDot(x, y int, state int) {
	if x < 0 || y < 0 || x >= self.columns || y >= self.rows { return }
	index := y*self.columns + x
	if self.states[index] != state {
		self.states[index] = state
		self.changed += 1
	}
}

// Copies the buffer dots if they changed since the last check and
// returns whether that happened.
func (self *Display) Sync(buf *buffer.Buffer) bool {
	if buf.Width() != self.columns || buf.Height() != self.rows {
		panic(preViolation)
	}
	self.changed = 0
	return buf.Refresh(self)
}

// Returns the fraction of dots that changed on the last [Display.Sync]().
func (self *Display) ChangedFraction() float64 {
	return float64(self.changed)/float64(len(self.states))
}

// Draws every cell of the display on the surface. The caller is
// responsible for showing the screen afterwards.
func (self *Display) Draw() {
	for cy := 0; cy < (self.rows + 1)/2; cy++ {
		for x := 0; x < self.columns; x++ {
			top := rgbColor(self.palette.Color(self.states[2*cy*self.columns + x]))
			bottom := self.background
			if 2*cy + 1 < self.rows {
				bottom = rgbColor(self.palette.Color(self.states[(2*cy + 1)*self.columns + x]))
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			self.surface.SetContent(self.X + x, self.Y + cy, halfBlock, nil, style)
		}
	}
}

func rgbColor(rgba color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// ---- events ----

// The part of [tcell.Screen] that produces events.
type EventSource interface {
	PollEvent() tcell.Event
}

// Forwards the source's events to the returned channel from a new
// goroutine. The channel is closed when the source returns a nil
// event (the screen was finalized) or once done is closed.
func PollEvents(source EventSource, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			event := source.PollEvent()
			if event == nil { return }
			select {
			case events <- event:
			case <-done:
				return
			}
		}
	}()
	return events
}
