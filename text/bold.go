package text

import "github.com/tinne26/dotmatrix/core"

// Thickens the character at (left, top) one dot to the right. The
// first column is never thickened and the last two always are. Any
// other column is skipped when it's the gap in a text-back-text
// pattern on two or more rows, so letters like 'M' or 'W' don't
// close up into blobs.
//
// Columns are processed right to left so each one reads the plain
// state of its left neighbor.
func embolden(content *core.Content, left, top, width, height int, textState, backState int) {
	if width < 2 { return }
	at := func(x, y int) int {
		x, y = left + x, top + y
		if x < 0 || y < 0 || x >= content.Width() || y >= content.Height() { return backState }
		return content.At(x, y)
	}

	boldCols := make([]bool, width)
	boldCols[width - 1] = true
	if width > 2 {
		boldCols[width - 2] = true
		for x := 1; x < width - 2; x++ {
			boldCols[x] = true
			occurrences := 0
			for y := 0; y < height; y++ {
				if at(x - 1, y) != textState || at(x, y) != backState || at(x + 1, y) != textState {
					continue
				}
				occurrences += 1
				if occurrences == 2 {
					boldCols[x] = false
					break
				}
			}
		}
	}

	for x := width - 1; x > 0; x-- {
		if !boldCols[x] { continue }
		for y := 0; y < height; y++ {
			if at(x - 1, y) == textState {
				setClipped(content, left + x, top + y, textState)
			}
		}
	}
}
