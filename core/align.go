package core

// Aligns describe where a piece of content sits inside the display
// along each axis. They have a horizontal and a vertical component,
// which can be combined with a bitwise OR:
//   core.Right | core.Bottom
// The same type is also used for the horizontal alignment of text
// lines within a multi-line text block, where only the horizontal
// component matters.
//
// To retrieve or compare the individual components, avoid bitwise
// operations and use [Align.Horz]() and [Align.Vert]() instead.
type Align uint8

const (
	// Horizontal aligns
	Left       Align = 0b0001_0000
	HorzCenter Align = 0b0010_0000
	Right      Align = 0b0100_0000

	// Vertical aligns
	Top    Align = 0b0000_0001
	Middle Align = 0b0000_0010
	Bottom Align = 0b0000_0100

	// Full aligns
	Center Align = HorzCenter | Middle

	alignVertBits Align = 0b0000_1111 // bit mask
	alignHorzBits Align = 0b1111_0000 // bit mask
)

// Returns the vertical component of the align. If the align is
// valid and [Align.HasVertComponent](), the result can only be
// [Top], [Middle] or [Bottom].
func (self Align) Vert() Align { return alignVertBits & self }

// Returns the horizontal component of the align. If the align is
// valid and [Align.HasHorzComponent](), the result can only be
// [Left], [HorzCenter] or [Right].
func (self Align) Horz() Align { return alignHorzBits & self }

// Returns whether the vertical component of the align is set.
func (self Align) HasVertComponent() bool { return alignVertBits & self != 0 }

// Returns whether the horizontal component of the align is set.
func (self Align) HasHorzComponent() bool { return alignHorzBits & self != 0 }

// Returns the result of overriding the current align with the
// non-empty components of the new align. If only one component is
// defined, only that component will be overwritten. If the new align
// is completely empty, the current align is returned unmodified.
func (self Align) Adjusted(align Align) Align {
	horz := align.Horz()
	vert := align.Vert()
	if horz != 0 {
		if vert != 0 { return align }
		return horz | self.Vert()
	} else if vert != 0 {
		return self.Horz() | vert
	} else {
		return self
	}
}

// Returns the position at which content of size 'content' has to
// start in order to be horizontally aligned within 'display' dots:
//  - [Left]: 0.
//  - [Right]: display - content.
//  - Otherwise: (display - content)/2, truncated towards zero.
// The result can be negative when the content is bigger than the
// display.
func (self Align) HorzAnchor(display, content int) int {
	switch self.Horz() {
	case Left  : return 0
	case Right : return display - content
	default: // assume horz center even when undefined
		return (display - content)/2
	}
}

// Like [Align.HorzAnchor](), but for the vertical component, with
// [Top] and [Bottom] taking the place of [Left] and [Right].
func (self Align) VertAnchor(display, content int) int {
	switch self.Vert() {
	case Top    : return 0
	case Bottom : return display - content
	default: // assume middle even when undefined
		return (display - content)/2
	}
}

// Returns a textual representation of the align. Some examples:
//   (Top | Right).String() == "(Top | Right)"
//   Center.String() == "(Middle | HorzCenter)"
//   Left.String() == "(Left)"
func (self Align) String() string {
	if self == 0 { return "(ZeroAlign)" }
	if self.Vert() == 0 { return "(" + self.horzString() + ")" }
	if self.Horz() == 0 { return "(" + self.vertString() + ")" }
	return "(" + self.vertString() + " | " + self.horzString() + ")"
}

func (self Align) vertString() string {
	switch self.Vert() {
	case Top: return "Top"
	case Middle: return "Middle"
	case Bottom: return "Bottom"
	default:
		return "VertUnknown"
	}
}

func (self Align) horzString() string {
	switch self.Horz() {
	case Left: return "Left"
	case HorzCenter: return "HorzCenter"
	case Right: return "Right"
	default:
		return "HorzUnknown"
	}
}
