package dotmatrix

import "github.com/tinne26/dotmatrix/command"
import "github.com/tinne26/dotmatrix/font"

// This type exists only for documentation and structuring purposes,
// acting as a gateway to controller functions that most users rarely
// need to touch.
//
// In general, this type is used through method chaining:
//   controller.Advanced().SetFontRegistry(registry)
type ControllerAdvanced Controller

// Sets the font registry used to resolve font kinds on text commands.
// A nil registry restores a registry with the built-in fonts.
func (self *ControllerAdvanced) SetFontRegistry(registry *font.Registry) {
	if registry == nil { registry = font.NewRegistry() }
	self.fonts = registry
}

// Returns the font registry used to resolve font kinds.
func (self *ControllerAdvanced) FontRegistry() *font.Registry {
	return self.fonts
}

// Returns the carried time budget, in seconds.
func (self *ControllerAdvanced) Budget() float64 { return self.budget }

// Returns the number of queued commands, not counting the active one.
func (self *ControllerAdvanced) QueueLen() int { return len(self.queue) }

// Returns the kind of the active operation, if any.
func (self *ControllerAdvanced) Active() (command.OpKind, bool) {
	if self.active == nil { return 0, false }
	return self.active.Kind(), true
}

// Returns the compilation context the controller would use for the
// next command.
func (self *ControllerAdvanced) Context() *command.Context {
	return (*Controller)(self).context()
}
