// Package buffer implements the toroidal frame buffer that holds the
// state of every dot in a dot-matrix display.
//
// The buffer is a flat, fixed-size grid plus a pair of offsets.
// Logical coordinates (x, y) are mapped to the physical cell
// ((y + offsetY) mod height, (x + offsetX) mod width), so rotating
// the whole display is a matter of changing the offsets: O(1), no
// data movement. All coordinates passed to the buffer are taken
// modulo the buffer dimensions, negative values included.
//
// Renderers poll [Buffer.CheckChangesAndReset]() once per frame and
// re-read the dots when it reports changes. See [Buffer.Refresh]().
package buffer

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/internal"

const preViolation = "precondition violation"

// The frame buffer of a dot-matrix display. Width and height are fixed
// for the lifetime of the buffer.
//
// Buffers are not safe for concurrent use.
type Buffer struct {
	width int
	height int
	dots []int // physical layout, row by row
	offsetX int
	offsetY int
	changed bool
}

// Creates a new buffer with all dots off. Non-positive sizes will
// cause the function to panic.
func New(width, height int) *Buffer {
	if width <= 0 || height <= 0 { panic(preViolation) }
	return &Buffer{
		width: width,
		height: height,
		dots: make([]int, width*height),
	}
}

// Returns the width of the buffer, in dots.
func (self *Buffer) Width() int { return self.width }

// Returns the height of the buffer, in dots.
func (self *Buffer) Height() int { return self.height }

// ---- single dots ----

// Sets the state of a single dot. 0 is off, 1 is the default on
// state, and higher values are additional on states (colors).
func (self *Buffer) SetDot(x, y int, state int) {
	self.dots[self.index(x, y)] = state
	self.changed = true
}

// Sets a single dot to [core.On] or [core.Off].
func (self *Buffer) SetDotOn(x, y int, on bool) {
	if on {
		self.SetDot(x, y, core.On)
	} else {
		self.SetDot(x, y, core.Off)
	}
}

// Returns the state of a single dot.
func (self *Buffer) GetDot(x, y int) int {
	return self.dots[self.index(x, y)]
}

// Returns whether the state of the dot is above zero.
func (self *Buffer) IsDotOn(x, y int) bool {
	return self.GetDot(x, y) > core.Off
}

// ---- rows and columns ----

// Sets all the dots in the given row to the given state.
func (self *Buffer) SetRow(y int, state int) {
	start := wrap(y + self.offsetY, self.height)*self.width
	row := self.dots[start : start + self.width]
	for i := range row { row[i] = state }
	self.changed = true
}

// Sets all the dots in the given column to the given state.
func (self *Buffer) SetColumn(x int, state int) {
	px := wrap(x + self.offsetX, self.width)
	for py := 0; py < self.height; py++ {
		self.dots[py*self.width + px] = state
	}
	self.changed = true
}

// Sets all the dots in the given row to [core.Off].
func (self *Buffer) ClearRow(y int) { self.SetRow(y, core.Off) }

// Sets all the dots in the given row to [core.On].
func (self *Buffer) FillRow(y int) { self.SetRow(y, core.On) }

// Sets all the dots in the given column to [core.Off].
func (self *Buffer) ClearColumn(x int) { self.SetColumn(x, core.Off) }

// Sets all the dots in the given column to [core.On].
func (self *Buffer) FillColumn(x int) { self.SetColumn(x, core.On) }

// ---- whole buffer ----

// Sets all dots to [core.Off].
func (self *Buffer) Clear() { self.SetAll(core.Off) }

// Sets all dots to [core.On].
func (self *Buffer) Fill() { self.SetAll(core.On) }

// Sets all dots to the given state. Rotation offsets are reset too,
// which has no visible effect.
func (self *Buffer) SetAll(state int) {
	for i := range self.dots { self.dots[i] = state }
	self.offsetX, self.offsetY = 0, 0
	self.changed = true
}

// Replaces the whole buffer with the given content. If the content
// size doesn't match the buffer size, the call is rejected: nothing
// changes (dirty flag included), an error is logged and the method
// returns false.
func (self *Buffer) SetFullContent(content *core.Content) bool {
	if content.Width() != self.width || content.Height() != self.height {
		internal.Logger().Error(
			"buffer.SetFullContent: content size doesn't match buffer size",
			"content_width", content.Width(), "content_height", content.Height(),
			"width", self.width, "height", self.height,
		)
		return false
	}

	for y := 0; y < self.height; y++ {
		for x := 0; x < self.width; x++ {
			self.dots[y*self.width + x] = content.At(x, y)
		}
	}
	self.offsetX, self.offsetY = 0, 0
	self.changed = true
	return true
}

// Writes the content with its top-left corner at (x, y). Cells that
// fall outside the buffer are silently skipped, so x and y can be
// negative and the content can be bigger than the buffer. Dots not
// covered by the content remain unchanged.
func (self *Buffer) SetPartialContent(content *core.Content, x, y int) {
	for cy := 0; cy < content.Height(); cy++ {
		ty := y + cy
		if ty < 0 || ty >= self.height { continue }
		for cx := 0; cx < content.Width(); cx++ {
			tx := x + cx
			if tx < 0 || tx >= self.width { continue }
			self.dots[self.index(tx, ty)] = content.At(cx, cy)
		}
	}
	self.changed = true
}

// Returns a snapshot of the current logical buffer state.
func (self *Buffer) Content() *core.Content {
	content := core.NewContent(self.width, self.height)
	for y := 0; y < self.height; y++ {
		for x := 0; x < self.width; x++ {
			content.Set(x, y, self.GetDot(x, y))
		}
	}
	return content
}

// ---- queries ----

// Returns whether every dot is in the given state.
func (self *Buffer) IsAllDotsInState(state int) bool {
	for _, dotState := range self.dots {
		if dotState != state { return false }
	}
	return true
}

// Returns whether every dot is [core.Off].
func (self *Buffer) IsClear() bool {
	return self.IsAllDotsInState(core.Off)
}

// Returns whether no dot is off. Dots can be in any on state.
func (self *Buffer) IsFull() bool {
	for _, state := range self.dots {
		if state <= core.Off { return false }
	}
	return true
}

// Returns whether the buffer has been modified since the previous
// call, and resets the flag. This is a single-consumer signal: if
// two renderers poll the same buffer, only one of them will see each
// change.
func (self *Buffer) CheckChangesAndReset() bool {
	changed := self.changed
	self.changed = false
	return changed
}

// ---- internal helpers ----

func (self *Buffer) index(x, y int) int {
	return wrap(y + self.offsetY, self.height)*self.width + wrap(x + self.offsetX, self.width)
}

func wrap(value, size int) int {
	value %= size
	if value < 0 { value += size }
	return value
}
