// Package view draws dot-matrix buffers as images, one filled square
// or circle per dot, with the look of the physical displays: gaps
// between dots, a border around the grid and a palette mapping each
// dot state to a color.
//
// By default drawing targets are [*ebiten.Image] values and [Game]
// can run a [dotmatrix.Matrix] in its own window. With the cputext
// build tag, Ebitengine is not required and the target becomes
// [image/draw.Image] instead.
package view

import "image"
import "image/color"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/buffer"
import "github.com/tinne26/dotmatrix/config"

const preViolation = "precondition violation"

// Visual options for a [Renderer]. Sizes are given in pixels.
type Options struct {
	DotSize int
	DotGap int
	Border int
	Round bool
	Palette core.Palette
	Background color.RGBA
}

// Returns the default options, matching [config.Default]().
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// Returns the renderer options of the given configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil { panic(preViolation) }
	return Options{
		DotSize: cfg.DotSize,
		DotGap: cfg.DotGap,
		Border: cfg.Border,
		Round: cfg.Shape == config.ShapeRound,
		Palette: cfg.ColorPalette(),
		Background: cfg.BackgroundColor(),
	}
}

// Returns the size in pixels that n dots take along one axis.
func (self Options) Span(n int) int {
	if n <= 0 { return self.Border*2 }
	return self.Border*2 + n*self.DotSize + (n - 1)*self.DotGap
}

// A Renderer keeps a copy of the dot states of a buffer and draws
// them. It implements [buffer.Sink], so it can be refreshed directly:
//   if renderer.Sync(buf) { renderer.Draw(canvas) }
type Renderer struct {
	opts Options
	columns int
	rows int
	states []int
}

// Creates a renderer for a display of the given size, in dots.
// Non-positive sizes or dot sizes will cause the function to panic.
func NewRenderer(columns, rows int, opts Options) *Renderer {
	if columns <= 0 || rows <= 0 { panic(preViolation) }
	if opts.DotSize <= 0 || opts.DotGap < 0 || opts.Border < 0 {
		panic(preViolation)
	}
	return &Renderer{
		opts: opts,
		columns: columns,
		rows: rows,
		states: make([]int, columns*rows),
	}
}

// Returns the renderer options.
func (self *Renderer) Options() Options { return self.opts }

// Returns the width and height of the drawing, in pixels.
func (self *Renderer) Size() (int, int) {
	return self.opts.Span(self.columns), self.opts.Span(self.rows)
}

// Implements [buffer.Sink]. Dots outside the display are ignored.
func (self *Renderer) SetDot(x, y int, state int) {
	if x < 0 || y < 0 || x >= self.columns || y >= self.rows { return }
	self.states[y*self.columns + x] = state
}

// Returns the last state received for the given dot.
func (self *Renderer) State(x, y int) int {
	if x < 0 || y < 0 || x >= self.columns || y >= self.rows { return core.Off }
	return self.states[y*self.columns + x]
}

// Copies the buffer dots if they changed since the last check and
// returns whether that happened. The buffer must have the same size
// as the renderer.
func (self *Renderer) Sync(buf *buffer.Buffer) bool {
	if buf.Width() != self.columns || buf.Height() != self.rows {
		panic(preViolation)
	}
	return buf.Refresh(self)
}

// Returns the pixel area of the given dot, relative to the origin
// of the drawing.
func (self *Renderer) DotRect(x, y int) image.Rectangle {
	step := self.opts.DotSize + self.opts.DotGap
	minX := self.opts.Border + x*step
	minY := self.opts.Border + y*step
	return image.Rect(minX, minY, minX + self.opts.DotSize, minY + self.opts.DotSize)
}

func (self *Renderer) dotColor(x, y int) color.RGBA {
	return self.opts.Palette.Color(self.states[y*self.columns + x])
}
