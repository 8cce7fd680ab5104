//go:build cputext

package view

import "image"
import "image/draw"

// Drawing target. See also target_gpu.go.
type Target = draw.Image

// Draws the background and every dot, with the drawing's top-left
// corner at the target's bounds origin.
func (self *Renderer) Draw(target Target) {
	origin := target.Bounds().Min
	width, height := self.Size()
	area := image.Rect(0, 0, width, height).Add(origin)
	draw.Draw(target, area, image.NewUniform(self.opts.Background), image.Point{}, draw.Src)

	for y := 0; y < self.rows; y++ {
		for x := 0; x < self.columns; x++ {
			rect := self.DotRect(x, y).Add(origin)
			rgba := self.dotColor(x, y)
			if !self.opts.Round {
				draw.Draw(target, rect, image.NewUniform(rgba), image.Point{}, draw.Src)
				continue
			}

			// round dots: pixel centers inside the inscribed circle
			radius := float64(self.opts.DotSize)/2.0
			for py := rect.Min.Y; py < rect.Max.Y; py++ {
				dy := float64(py - rect.Min.Y) + 0.5 - radius
				for px := rect.Min.X; px < rect.Max.X; px++ {
					dx := float64(px - rect.Min.X) + 0.5 - radius
					if dx*dx + dy*dy <= radius*radius {
						target.Set(px, py, rgba)
					}
				}
			}
		}
	}
}
