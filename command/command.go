// Package command defines the declarative commands accepted by a
// dotmatrix controller, and compiles them into steppable operations.
//
// Commands are plain descriptions: they can be kept around, modified
// between submissions and submitted more than once. Each time a command
// is dequeued, it's compiled again into a fresh [Operation].
package command

import "strconv"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/font"
import "github.com/tinne26/dotmatrix/text"

const preViolation = "precondition violation"

// The closed set of commands: [*Text], [*Content], [*Clear], [*Pause]
// and [*Callback].
type Command interface {
	// Returns whether the command goes back to the end of the queue
	// each time it's taken out of it.
	Repeats() bool

	isCommand()
}

// ---- speed ----

// An optional speed override, in dots per second. The zero value is
// unset, which means the controller's default speed applies.
type Speed struct {
	dotsPerSecond float64
	set bool
}

// Returns a speed set to the given dots per second. Speeds <= 0 are
// allowed and make movements and clears instant.
func DotsPerSecond(dps float64) Speed {
	return Speed{ dotsPerSecond: dps, set: true }
}

// Returns whether the speed has been explicitly set.
func (self Speed) IsSet() bool { return self.set }

// Returns the speed value, which is only meaningful if [Speed.IsSet]().
func (self Speed) Value() float64 { return self.dotsPerSecond }

// Returns the speed value if set, or the given default otherwise.
func (self Speed) Or(defaultDps float64) float64 {
	if self.set { return self.dotsPerSecond }
	return defaultDps
}

// ---- movements ----

// Movements for content and text commands. "Stop" movements scroll
// the content in until it reaches its placement position; "Pass"
// movements scroll it all the way through and out of the display.
type Movement uint8

const (
	None Movement = iota
	MoveLeftAndStop
	MoveLeftAndPass
	MoveRightAndStop
	MoveRightAndPass
	MoveUpAndStop
	MoveUpAndPass
	MoveDownAndStop
	MoveDownAndPass
)

// Returns the direction of the movement. Panics for [None].
func (self Movement) Direction() core.Direction {
	switch self {
	case MoveLeftAndStop, MoveLeftAndPass   : return core.DirLeft
	case MoveRightAndStop, MoveRightAndPass : return core.DirRight
	case MoveUpAndStop, MoveUpAndPass       : return core.DirUp
	case MoveDownAndStop, MoveDownAndPass   : return core.DirDown
	default:
		panic(preViolation)
	}
}

// Returns whether the movement takes the content through and out of
// the display.
func (self Movement) IsPass() bool {
	switch self {
	case MoveLeftAndPass, MoveRightAndPass, MoveUpAndPass, MoveDownAndPass:
		return true
	default:
		return false
	}
}

func (self Movement) String() string {
	switch self {
	case None: return "None"
	case MoveLeftAndStop: return "MoveLeftAndStop"
	case MoveLeftAndPass: return "MoveLeftAndPass"
	case MoveRightAndStop: return "MoveRightAndStop"
	case MoveRightAndPass: return "MoveRightAndPass"
	case MoveUpAndStop: return "MoveUpAndStop"
	case MoveUpAndPass: return "MoveUpAndPass"
	case MoveDownAndStop: return "MoveDownAndStop"
	case MoveDownAndPass: return "MoveDownAndPass"
	default:
		return "MovementInvalid#" + strconv.Itoa(int(self))
	}
}

// Placement describes where content ends up and how it gets there.
type Placement struct {
	// Position of the content within the display. Missing components
	// default to horizontal and vertical centering, so the zero value
	// is equivalent to [core.Center].
	Position core.Align

	// How the content enters the display. Ignored (static placement)
	// when the resolved speed is <= 0.
	Movement Movement

	// Movement speed override.
	Speed Speed
}

// ---- clear methods ----

// Methods for clearing the display.
type ClearMethod uint8

const (
	Instant ClearMethod = iota
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	ColumnByColumnFromLeft
	ColumnByColumnFromRight
	RowByRowFromTop
	RowByRowFromBottom
)

func (self ClearMethod) String() string {
	switch self {
	case Instant: return "Instant"
	case MoveLeft: return "MoveLeft"
	case MoveRight: return "MoveRight"
	case MoveUp: return "MoveUp"
	case MoveDown: return "MoveDown"
	case ColumnByColumnFromLeft: return "ColumnByColumnFromLeft"
	case ColumnByColumnFromRight: return "ColumnByColumnFromRight"
	case RowByRowFromTop: return "RowByRowFromTop"
	case RowByRowFromBottom: return "RowByRowFromBottom"
	default:
		return "ClearMethodInvalid#" + strconv.Itoa(int(self))
	}
}

// ---- commands ----

// Text displays one or more lines of text.
type Text struct {
	Placement
	Repeat bool

	// Lines of text. Line breaks inside lines are not interpreted;
	// use [NewText]() to split a string.
	Lines []string

	// Explicit font face. Takes precedence over the font kind.
	Face font.Font

	Fixed bool // fixed width characters (default true)
	Bold bool
	CharSpacing int // dots between characters (default 1)
	LineSpacing int // dots between lines (default 1)
	TextState int // default [core.On]
	BackState int // default [core.Off]

	// Alignment of the lines within the text block. When zero, the
	// horizontal component of the placement position is used.
	TextAlign core.Align

	fontKind font.Kind
	fontKindSet bool
}

// Creates a text command with the default settings. Both '\n' and
// '\r' split the given text into lines.
func NewText(str string) *Text {
	return NewTextLines(text.SplitLines(str)...)
}

// Creates a text command with the default settings from the given
// lines.
func NewTextLines(lines ...string) *Text {
	return &Text{
		Lines: lines,
		Fixed: true,
		CharSpacing: 1,
		LineSpacing: 1,
		TextState: core.On,
		BackState: core.Off,
	}
}

// Sets the font kind. Returns the command itself for chaining.
func (self *Text) SetFont(kind font.Kind) *Text {
	self.fontKind, self.fontKindSet = kind, true
	return self
}

// Unsets the font kind, so the controller default applies again.
func (self *Text) UnsetFont() { self.fontKindSet = false }

// Returns the font kind and whether it has been set.
func (self *Text) Font() (font.Kind, bool) { return self.fontKind, self.fontKindSet }

func (self *Text) Repeats() bool { return self.Repeat }
func (self *Text) isCommand() {}

// Content displays a prebuilt dot grid.
type Content struct {
	Placement
	Repeat bool

	// The dots to display. Must not be modified while the command
	// is being executed.
	Content *core.Content
}

// Creates a content command with the default placement.
func NewContent(content *core.Content) *Content {
	if content == nil { panic(preViolation) }
	return &Content{ Content: content }
}

func (self *Content) Repeats() bool { return self.Repeat }
func (self *Content) isCommand() {}

// Clear sets the whole display to a target state, either at once or
// through an animation.
type Clear struct {
	Repeat bool
	Method ClearMethod
	Target int // target dot state (default [core.Off])
	Speed Speed
}

// Creates an instant clear command to [core.Off].
func NewClear() *Clear { return &Clear{} }

// Creates an instant clear command to [core.On].
func NewFill() *Clear { return &Clear{ Target: core.On } }

// Creates an instant clear command to the given state.
func NewClearTo(state int) *Clear { return &Clear{ Target: state } }

func (self *Clear) Repeats() bool { return self.Repeat }
func (self *Clear) isCommand() {}

// Pause waits for the given amount of time before letting the queue
// continue. Negative durations are treated as zero.
type Pause struct {
	Repeat bool
	Seconds float64
}

// Creates a pause command.
func NewPause(seconds float64) *Pause { return &Pause{ Seconds: seconds } }

func (self *Pause) Repeats() bool { return self.Repeat }
func (self *Pause) isCommand() {}

// Callback invokes a function when reached in the queue. The
// function runs synchronously within the controller's tick.
type Callback struct {
	Repeat bool
	Func func()
}

// Creates a callback command. A nil function will cause the
// function to panic.
func NewCallback(fn func()) *Callback {
	if fn == nil { panic(preViolation) }
	return &Callback{ Func: fn }
}

func (self *Callback) Repeats() bool { return self.Repeat }
func (self *Callback) isCommand() {}
