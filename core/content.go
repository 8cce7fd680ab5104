// Package core defines the small set of types shared by all dotmatrix
// packages: dot states, content grids, aligns, directions and palettes.
package core

import "strings"
import "strconv"

const preViolation = "precondition violation"

// Dot states. Any state above [On] is an additional "on" variant,
// typically rendered as a different color.
const (
	Off = 0
	On  = 1
)

// A Content is a rectangular grid of dot states, stored row by row.
// Contents are what text rasterization produces and what content
// commands and buffer writes consume.
//
// Contents created through [NewContent] and friends are mutable, but
// once passed to a command they should be treated as read-only until
// the command has finished executing.
type Content struct {
	width int
	height int
	dots []int
}

// Creates a new content with all dots set to [Off]. Negative sizes
// will cause the function to panic. Zero sizes are allowed.
func NewContent(width, height int) *Content {
	if width < 0 || height < 0 { panic(preViolation) }
	return &Content{ width: width, height: height, dots: make([]int, width*height) }
}

// Creates a new content with all dots set to the given state.
func NewFilledContent(width, height int, state int) *Content {
	content := NewContent(width, height)
	content.Fill(state)
	return content
}

// Creates a content from a slice of rows. Rows can have different
// lengths, in which case the content takes the width of the longest
// row and missing cells are left [Off].
func ContentFromRows(rows [][]int) *Content {
	var width int
	for _, row := range rows { width = max(width, len(row)) }
	content := NewContent(width, len(rows))
	for y, row := range rows {
		copy(content.dots[y*width : ], row)
	}
	return content
}

// Creates a content from text patterns, one string per row. Cells
// with '#' are set to the given state, everything else is [Off]:
//   core.ParseContent(core.On,
//      " # ",
//      "###",
//   )
// Rows are measured in runes, not bytes.
func ParseContent(state int, rows ...string) *Content {
	var width int
	for _, row := range rows { width = max(width, len([]rune(row))) }
	content := NewContent(width, len(rows))
	for y, row := range rows {
		x := 0
		for _, r := range row {
			if r == '#' { content.dots[y*width + x] = state }
			x += 1
		}
	}
	return content
}

// Returns the width of the content, in dots.
func (self *Content) Width() int { return self.width }

// Returns the height of the content, in dots.
func (self *Content) Height() int { return self.height }

// Returns whether the content has no dots at all.
func (self *Content) IsEmpty() bool { return self.width == 0 || self.height == 0 }

// Returns the state at the given coordinates. Coordinates outside
// the content will cause the method to panic.
func (self *Content) At(x, y int) int {
	if x < 0 || x >= self.width || y < 0 || y >= self.height { panic(preViolation) }
	return self.dots[y*self.width + x]
}

// Sets the state at the given coordinates. Coordinates outside the
// content will cause the method to panic.
func (self *Content) Set(x, y int, state int) {
	if x < 0 || x >= self.width || y < 0 || y >= self.height { panic(preViolation) }
	self.dots[y*self.width + x] = state
}

// Sets all the dots of the content to the given state.
func (self *Content) Fill(state int) {
	for i := range self.dots { self.dots[i] = state }
}

// Returns an independent copy of the content.
func (self *Content) Clone() *Content {
	dots := make([]int, len(self.dots))
	copy(dots, self.dots)
	return &Content{ width: self.width, height: self.height, dots: dots }
}

// Returns whether both contents have the same size and states.
func (self *Content) Equal(other *Content) bool {
	if self.width != other.width || self.height != other.height { return false }
	for i, state := range self.dots {
		if other.dots[i] != state { return false }
	}
	return true
}

// Returns a multi-line representation of the content, mostly for
// debugging and test failure reports. [Off] dots are shown as '.',
// [On] dots as '#' and any other state as its last decimal digit
// (negative states are shown as '-').
func (self *Content) String() string {
	var builder strings.Builder
	for y := 0; y < self.height; y++ {
		if y > 0 { builder.WriteByte('\n') }
		for x := 0; x < self.width; x++ {
			switch state := self.dots[y*self.width + x]; {
			case state == Off: builder.WriteByte('.')
			case state == On : builder.WriteByte('#')
			case state < 0   : builder.WriteByte('-')
			default:
				digits := strconv.Itoa(state)
				builder.WriteByte(digits[len(digits) - 1])
			}
		}
	}
	return builder.String()
}
