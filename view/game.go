//go:build !cputext

package view

import "github.com/tinne26/dotmatrix"

import "github.com/hajimehoshi/ebiten/v2"

// A Game runs a [dotmatrix.Matrix] as an Ebitengine game: each
// update ticks the matrix by one tick duration, and each frame the
// display is redrawn if the buffer changed. Escape closes the game.
//
// Example:
//   game := view.NewGame(matrix, view.DefaultOptions())
//   ebiten.SetWindowSize(game.Size())
//   err := ebiten.RunGame(game)
type Game struct {
	matrix *dotmatrix.Matrix
	renderer *Renderer
	canvas *ebiten.Image
	projector Projector
	redraw bool
	paused bool
}

// Creates a game for the given matrix.
func NewGame(matrix *dotmatrix.Matrix, opts Options) *Game {
	if matrix == nil { panic(preViolation) }
	renderer := NewRenderer(matrix.Width(), matrix.Height(), opts)
	width, height := renderer.Size()
	return &Game{
		matrix: matrix,
		renderer: renderer,
		canvas: ebiten.NewImage(width, height),
		redraw: true,
	}
}

// Returns the size of the unscaled display drawing, in pixels.
func (self *Game) Size() (int, int) { return self.renderer.Size() }

// Returns the game's renderer.
func (self *Game) Renderer() *Renderer { return self.renderer }

// Sets the projector used to scale the display into the window.
// The default is [Proportional].
func (self *Game) SetProjector(projector Projector) {
	self.projector = projector
}

// Pauses or resumes the matrix updates.
func (self *Game) SetPaused(paused bool) { self.paused = paused }

// Implements [ebiten.Game].
func (self *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) { return ebiten.Termination }
	if !self.paused {
		self.matrix.Tick(1.0/float64(ebiten.TPS()))
	}
	if self.renderer.Sync(self.matrix.Buffer()) {
		self.redraw = true
	}
	return nil
}

// Implements [ebiten.Game].
func (self *Game) Draw(screen *ebiten.Image) {
	if self.redraw {
		self.renderer.Draw(self.canvas)
		self.redraw = false
	}
	screen.Fill(self.renderer.opts.Background)
	self.projector.Project(self.canvas, screen)
}

// Implements [ebiten.Game]. The screen uses the full device resolution.
func (self *Game) Layout(outWidth, outHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	return int(float64(outWidth)*scale), int(float64(outHeight)*scale)
}
