package dotmatrix

import "github.com/tinne26/dotmatrix/buffer"
import "github.com/tinne26/dotmatrix/config"

// A Matrix bundles a display [buffer.Buffer] with the [Controller]
// that animates it. This is the main entry point for most programs:
//   matrix := dotmatrix.New(59, 7)
//   matrix.Controller().Submit(command.NewText("HELLO"))
//   for { // on each frame
//      matrix.Tick(1.0/60.0)
//      matrix.Buffer().Refresh(renderer)
//   }
//
// Matrices are not safe for concurrent use. Programs that tick on one
// goroutine and read the buffer on another must serialize both.
type Matrix struct {
	buffer *buffer.Buffer
	controller *Controller
}

// Creates a new matrix with a cleared buffer of the given size.
// Non-positive sizes will cause the function to panic.
func New(width, height int) *Matrix {
	buf := buffer.New(width, height)
	return &Matrix{ buffer: buf, controller: NewController(buf) }
}

// Creates a new matrix from the size and controller defaults of the
// given configuration. The configuration must have been validated.
func NewFromConfig(cfg *config.Config) *Matrix {
	if cfg == nil { panic(preViolation) }
	matrix := New(cfg.Width, cfg.Height)
	matrix.controller.SetDefaultSpeed(cfg.DefaultSpeed)
	matrix.controller.SetDefaultFont(cfg.FontKind())
	return matrix
}

// Returns the display buffer.
func (self *Matrix) Buffer() *buffer.Buffer { return self.buffer }

// Returns the command controller.
func (self *Matrix) Controller() *Controller { return self.controller }

// Returns the display width, in dots.
func (self *Matrix) Width() int { return self.buffer.Width() }

// Returns the display height, in dots.
func (self *Matrix) Height() int { return self.buffer.Height() }

// Advances the controller by the given time, in seconds.
func (self *Matrix) Tick(deltaTime float64) {
	self.controller.Tick(deltaTime)
}

// Stops everything and clears the display.
func (self *Matrix) Reset() {
	self.controller.ClearAndStop()
	self.buffer.Clear()
}
