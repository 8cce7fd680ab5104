//go:build !cputext

package view

import "math"
import "image"
import "strconv"

import "github.com/hajimehoshi/ebiten/v2"

var projectVerts []ebiten.Vertex
var projectIndices []uint16 = []uint16{0, 1, 2, 2, 1, 3}
var projectLinearOpts = ebiten.DrawTrianglesOptions{ Filter: ebiten.FilterLinear }

// A Projector decides how the display drawing is scaled into the
// window. See [Projector.Project]().
type Projector uint8
const (
	// Proportional scaling respects the aspect ratio of the drawing,
	// which means that margins might be left on the screen.
	Proportional Projector = iota

	// Integer scaling with no deformation (unless minification is
	// required, in which case it behaves like Proportional).
	PixelPerfect

	// Fills the whole screen without any regards for aspect ratio.
	Stretched
)

// Returns a textual representation of the projector type.
func (self Projector) String() string {
	switch self {
	case Proportional: return "Proportional"
	case PixelPerfect: return "PixelPerfect"
	case Stretched: return "Stretched"
	default:
		return "ProjectorUndefined#" + strconv.Itoa(int(self))
	}
}

// Parses "proportional", "pixel-perfect" or "stretched".
func ParseProjector(name string) (Projector, bool) {
	switch name {
	case "proportional": return Proportional, true
	case "pixel-perfect", "pixelperfect": return PixelPerfect, true
	case "stretched": return Stretched, true
	default:
		return Proportional, false
	}
}

// Draws the canvas onto the screen with the projector's scaling. The
// returned value is the screen area the canvas was projected to, which
// might be the screen itself.
func (self Projector) Project(canvas, screen *ebiten.Image) *ebiten.Image {
	area := self.Area(canvas.Bounds(), screen.Bounds())
	target := screen.SubImage(area).(*ebiten.Image)
	if area.Empty() { return target }
	cw, ch := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	integer := area.Dx() % cw == 0 && area.Dy() % ch == 0
	projectSetVertices(canvas, target)
	if integer {
		target.DrawTriangles(projectVerts, projectIndices, canvas, nil)
	} else {
		target.DrawTriangles(projectVerts, projectIndices, canvas, &projectLinearOpts)
	}
	return target
}

// Returns the screen area the canvas would be projected to.
func (self Projector) Area(canvas, screen image.Rectangle) image.Rectangle {
	cw, ch := canvas.Dx(), canvas.Dy()
	sw, sh := screen.Dx(), screen.Dy()
	if cw <= 0 || ch <= 0 || sw <= 0 || sh <= 0 { return image.Rectangle{} }

	switch self {
	case Stretched:
		return screen
	case PixelPerfect:
		zoom := math.Min(float64(sw)/float64(cw), float64(sh)/float64(ch))
		if zoom >= 1.0 {
			intZoom := int(zoom)
			return centeredRect(screen, cw*intZoom, ch*intZoom)
		}
		fallthrough // minification
	case Proportional:
		canvasRatio := float64(cw)/float64(ch)
		screenRatio := float64(sw)/float64(sh)
		switch {
		case screenRatio < canvasRatio: // excess height
			return centeredRect(screen, sw, int(float64(sw)/canvasRatio))
		case screenRatio > canvasRatio: // excess width
			return centeredRect(screen, int(float64(sh)*canvasRatio), sh)
		default:
			return screen
		}
	default:
		panic("invalid Projector '" + self.String() + "'")
	}
}

func centeredRect(bounds image.Rectangle, width, height int) image.Rectangle {
	minX := bounds.Min.X + (bounds.Dx() - width) >> 1
	minY := bounds.Min.Y + (bounds.Dy() - height) >> 1
	return image.Rect(minX, minY, minX + width, minY + height)
}

func projectSetVertices(canvas, target *ebiten.Image) {
	if projectVerts == nil {
		projectVerts = make([]ebiten.Vertex, 4)
		for i := 0; i < 4; i++ {
			projectVerts[i].ColorR = 1.0
			projectVerts[i].ColorG = 1.0
			projectVerts[i].ColorB = 1.0
			projectVerts[i].ColorA = 1.0
		}
	}

	bounds := target.Bounds()
	projectVerts[0].DstX, projectVerts[0].DstY = float32(bounds.Min.X), float32(bounds.Min.Y) // top-left
	projectVerts[1].DstX, projectVerts[1].DstY = float32(bounds.Max.X), float32(bounds.Min.Y) // top-right
	projectVerts[2].DstX, projectVerts[2].DstY = float32(bounds.Min.X), float32(bounds.Max.Y) // bottom-left
	projectVerts[3].DstX, projectVerts[3].DstY = float32(bounds.Max.X), float32(bounds.Max.Y) // bottom-right

	bounds = canvas.Bounds()
	projectVerts[0].SrcX, projectVerts[0].SrcY = float32(bounds.Min.X), float32(bounds.Min.Y)
	projectVerts[1].SrcX, projectVerts[1].SrcY = float32(bounds.Max.X), float32(bounds.Min.Y)
	projectVerts[2].SrcX, projectVerts[2].SrcY = float32(bounds.Min.X), float32(bounds.Max.Y)
	projectVerts[3].SrcX, projectVerts[3].SrcY = float32(bounds.Max.X), float32(bounds.Max.Y)
}
