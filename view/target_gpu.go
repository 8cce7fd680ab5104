//go:build !cputext

package view

import "image"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/vector"

// Drawing target. Without Ebitengine (-tags cputext), [Target]
// becomes [image/draw.Image].
type Target = *ebiten.Image

// Draws the background and every dot, with the drawing's top-left
// corner at the target's bounds origin.
func (self *Renderer) Draw(target Target) {
	origin := target.Bounds().Min
	width, height := self.Size()
	area := image.Rect(0, 0, width, height).Add(origin)
	target.SubImage(area).(*ebiten.Image).Fill(self.opts.Background)

	size := float32(self.opts.DotSize)
	for y := 0; y < self.rows; y++ {
		for x := 0; x < self.columns; x++ {
			rect := self.DotRect(x, y).Add(origin)
			rgba := self.dotColor(x, y)
			if self.opts.Round {
				radius := size/2.0
				cx, cy := float32(rect.Min.X) + radius, float32(rect.Min.Y) + radius
				vector.DrawFilledCircle(target, cx, cy, radius, rgba, true)
			} else {
				vector.DrawFilledRect(target, float32(rect.Min.X), float32(rect.Min.Y), size, size, rgba, false)
			}
		}
	}
}
