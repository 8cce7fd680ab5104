package dotmatrix

import "github.com/tinne26/dotmatrix/buffer"
import "github.com/tinne26/dotmatrix/command"
import "github.com/tinne26/dotmatrix/font"
import "github.com/tinne26/dotmatrix/internal"

// Initial controller defaults.
const (
	DefaultSpeed = 42.0 // dots per second
	DefaultFont = font.Normal
)

// The [Controller] executes queued commands on a display buffer.
//
// Commands are taken from the queue in FIFO order and compiled into
// operations. At most one operation is active at a time, and it's
// stepped on each [Controller.Tick]() with the accumulated time budget
// until it finishes. Unused budget carries over to the next operation,
// so instant commands chain within a single tick.
//
// Controllers are not safe for concurrent use.
//
// Less common functions are available through the [Controller.Advanced]()
// gateway.
type Controller struct {
	buffer *buffer.Buffer
	queue []command.Command
	active *command.Operation
	budget float64 // seconds

	defaultSpeed float64
	defaultFont font.Kind
	fonts *font.Registry
}

// Creates a new controller for the given buffer with speed
// [DefaultSpeed] and font [DefaultFont].
func NewController(buf *buffer.Buffer) *Controller {
	if buf == nil { panic(preViolation) }
	return &Controller{
		buffer: buf,
		defaultSpeed: DefaultSpeed,
		defaultFont: DefaultFont,
		fonts: font.NewRegistry(),
	}
}

// Returns the buffer the controller operates on.
func (self *Controller) Buffer() *buffer.Buffer { return self.buffer }

// ---- defaults ----

// Sets the speed used by commands without a speed override, in dots
// per second. Speeds <= 0 are replaced by 1.0 with a warning.
func (self *Controller) SetDefaultSpeed(dotsPerSecond float64) {
	if dotsPerSecond <= 0 {
		internal.Logger().Warn(
			"Controller.SetDefaultSpeed: zero or negative speed, using 1.0 instead",
			"speed", dotsPerSecond,
		)
		dotsPerSecond = 1.0
	}
	self.defaultSpeed = dotsPerSecond
}

// Returns the speed used by commands without a speed override.
func (self *Controller) DefaultSpeed() float64 { return self.defaultSpeed }

// Sets the font kind used by text commands without font kind or face.
func (self *Controller) SetDefaultFont(kind font.Kind) {
	if !kind.IsValid() { panic(preViolation) }
	self.defaultFont = kind
}

// Returns the font kind used by text commands without font kind or face.
func (self *Controller) DefaultFont() font.Kind { return self.defaultFont }

// ---- queue management ----

// Appends a command to the end of the queue. The same command can be
// submitted multiple times.
func (self *Controller) Submit(cmd command.Command) {
	if cmd == nil { panic(preViolation) }
	self.queue = append(self.queue, cmd)
}

// Removes the first queued occurrence of the given command. The
// active operation is not affected. Returns false if the command
// wasn't queued.
func (self *Controller) Remove(cmd command.Command) bool {
	index := self.indexOf(cmd)
	if index == -1 { return false }
	self.queue = append(self.queue[ : index], self.queue[index + 1 : ]...)
	return true
}

// Replaces the first queued occurrence of a command with another,
// keeping its position. Returns false if the old command wasn't queued.
func (self *Controller) Replace(oldCmd, newCmd command.Command) bool {
	if newCmd == nil { panic(preViolation) }
	index := self.indexOf(oldCmd)
	if index == -1 { return false }
	self.queue[index] = newCmd
	return true
}

// Drops all queued commands. The active operation, if any, is allowed
// to finish. Repeating commands are dropped too, since their next
// occurrence is already in the queue.
func (self *Controller) Clear() {
	clear(self.queue)
	self.queue = self.queue[ : 0]
}

// Drops all queued commands and discards the active operation right
// away, resetting the time budget. Changes already made to the buffer
// stay as they are.
func (self *Controller) ClearAndStop() {
	self.Clear()
	self.active = nil
	self.budget = 0
}

// Returns whether there's no active operation and no queued commands.
func (self *Controller) IsIdle() bool {
	return self.active == nil && len(self.queue) == 0
}

// ---- execution ----

// Advances execution by the given time, in seconds.
//
// One step is always run. After that, steps continue while no
// operation is active and the queue keeps getting shorter, so a
// sequence of instant commands runs within a single tick, while a
// queue of repeating instant commands can't loop forever.
func (self *Controller) Tick(deltaTime float64) {
	if deltaTime > 0 { self.budget += deltaTime }
	count := len(self.queue)
	self.step()
	for self.active == nil && len(self.queue) < count {
		count = len(self.queue)
		self.step()
	}
}

func (self *Controller) step() {
	if self.active == nil {
		if len(self.queue) == 0 {
			self.budget = 0
			return
		}

		cmd := self.queue[0]
		self.queue[0] = nil
		self.queue = self.queue[1 : ]
		self.active = command.Compile(cmd, self.context())
		if cmd.Repeats() { self.queue = append(self.queue, cmd) }
		internal.Logger().Debug("dotmatrix.Controller: operation started", "kind", self.active.Kind().String())
	}

	self.budget = self.active.Step(self.buffer, self.budget)
	if self.active.IsFinished(self.buffer) {
		internal.Logger().Debug("dotmatrix.Controller: operation finished", "kind", self.active.Kind().String())
		self.active = nil
	}
}

func (self *Controller) context() *command.Context {
	return &command.Context{
		Width: self.buffer.Width(),
		Height: self.buffer.Height(),
		DefaultSpeed: self.defaultSpeed,
		DefaultFont: self.defaultFont,
		Fonts: self.fonts,
	}
}

func (self *Controller) indexOf(cmd command.Command) int {
	for i, queued := range self.queue {
		if queued == cmd { return i }
	}
	return -1
}

// ---- gateways ----

// Gateway to less common controller functions.
func (self *Controller) Advanced() *ControllerAdvanced {
	return (*ControllerAdvanced)(self)
}
