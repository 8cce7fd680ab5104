package buffer

import "github.com/tinne26/dotmatrix/core"

// Rotates the display one dot to the left. The leftmost column
// reappears on the right side. Offsets only, no data is moved.
func (self *Buffer) CycleLeft() {
	self.offsetX = (self.offsetX + 1) % self.width
	self.changed = true
}

// Rotates the display one dot to the right. The rightmost column
// reappears on the left side.
func (self *Buffer) CycleRight() {
	self.offsetX -= 1
	if self.offsetX < 0 { self.offsetX += self.width }
	self.changed = true
}

// Rotates the display one dot up. The top row reappears at the bottom.
func (self *Buffer) CycleUp() {
	self.offsetY = (self.offsetY + 1) % self.height
	self.changed = true
}

// Rotates the display one dot down. The bottom row reappears at the top.
func (self *Buffer) CycleDown() {
	self.offsetY -= 1
	if self.offsetY < 0 { self.offsetY += self.height }
	self.changed = true
}

// Rotates the display in the given direction.
func (self *Buffer) Cycle(dir core.Direction) {
	switch dir {
	case core.DirLeft  : self.CycleLeft()
	case core.DirRight : self.CycleRight()
	case core.DirUp    : self.CycleUp()
	case core.DirDown  : self.CycleDown()
	default:
		panic(preViolation)
	}
}

// Moves everything one dot to the left. The leftmost column is lost
// and an empty column appears on the right.
func (self *Buffer) PushLeft() {
	self.CycleLeft()
	self.SetColumn(self.width - 1, core.Off)
}

// Moves everything one dot to the right. The rightmost column is lost
// and an empty column appears on the left.
func (self *Buffer) PushRight() {
	self.CycleRight()
	self.SetColumn(0, core.Off)
}

// Moves everything one dot up. The top row is lost and an empty row
// appears at the bottom.
func (self *Buffer) PushUp() {
	self.CycleUp()
	self.SetRow(self.height - 1, core.Off)
}

// Moves everything one dot down. The bottom row is lost and an empty
// row appears at the top.
func (self *Buffer) PushDown() {
	self.CycleDown()
	self.SetRow(0, core.Off)
}

// Pushes the display in the given direction.
func (self *Buffer) Push(dir core.Direction) {
	switch dir {
	case core.DirLeft  : self.PushLeft()
	case core.DirRight : self.PushRight()
	case core.DirUp    : self.PushUp()
	case core.DirDown  : self.PushDown()
	default:
		panic(preViolation)
	}
}

// ---- push + edge injection ----
// The following methods push the display and write one column or row
// of the source content into the vacated edge, in a single pass. The
// transverse position is given in display coordinates and source
// cells falling outside the display are clipped.

// Pushes left and writes column srcX of the source content into the
// rightmost column, starting at row targetY.
func (self *Buffer) PushLeftSetRightColumn(src *core.Content, srcX int, targetY int) {
	self.PushLeft()
	self.injectColumn(src, srcX, self.width - 1, targetY)
}

// Pushes right and writes column srcX of the source content into the
// leftmost column, starting at row targetY.
func (self *Buffer) PushRightSetLeftColumn(src *core.Content, srcX int, targetY int) {
	self.PushRight()
	self.injectColumn(src, srcX, 0, targetY)
}

// Pushes up and writes row srcY of the source content into the bottom
// row, starting at column targetX.
func (self *Buffer) PushUpSetBottomRow(src *core.Content, srcY int, targetX int) {
	self.PushUp()
	self.injectRow(src, srcY, self.height - 1, targetX)
}

// Pushes down and writes row srcY of the source content into the top
// row, starting at column targetX.
func (self *Buffer) PushDownSetTopRow(src *core.Content, srcY int, targetX int) {
	self.PushDown()
	self.injectRow(src, srcY, 0, targetX)
}

func (self *Buffer) injectColumn(src *core.Content, srcX int, x int, targetY int) {
	for sy := 0; sy < src.Height(); sy++ {
		y := targetY + sy
		if y < 0 || y >= self.height { continue }
		self.dots[self.index(x, y)] = src.At(srcX, sy)
	}
}

func (self *Buffer) injectRow(src *core.Content, srcY int, y int, targetX int) {
	for sx := 0; sx < src.Width(); sx++ {
		x := targetX + sx
		if x < 0 || x >= self.width { continue }
		self.dots[self.index(x, y)] = src.At(sx, srcY)
	}
}
