package command

import "strconv"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/buffer"

// Kinds of compiled operations.
type OpKind uint8

const (
	OpCallback OpKind = iota
	OpDelay
	OpClearInstant
	OpClearDirectional
	OpClearStepwise
	OpContentStatic
	OpContentMoving
)

func (self OpKind) String() string {
	switch self {
	case OpCallback: return "Callback"
	case OpDelay: return "Delay"
	case OpClearInstant: return "ClearInstant"
	case OpClearDirectional: return "ClearDirectional"
	case OpClearStepwise: return "ClearStepwise"
	case OpContentStatic: return "ContentStatic"
	case OpContentMoving: return "ContentMoving"
	default:
		return "OpKindInvalid#" + strconv.Itoa(int(self))
	}
}

// An Operation is a compiled, stateful command. Operations are
// stepped with a time budget until they report being finished, and
// then discarded. See [Compile]().
type Operation struct {
	kind OpKind
	fn func() // callback
	seconds float64 // delay
	done bool // delay, static content
	state int // clears
	dir core.Direction // directional clear, moving content
	stepwise ClearMethod // stepwise clear
	cost float64 // seconds per dot
	counter int
	limit int // stepwise clear limit or content push
	content *core.Content
	x, y int // content anchor
}

// Returns the kind of the operation.
func (self *Operation) Kind() OpKind { return self.kind }

// Runs the operation on the buffer with the given time budget, in
// seconds, and returns the unused budget. The result is never
// greater than the given budget.
func (self *Operation) Step(buf *buffer.Buffer, budget float64) float64 {
	if buf == nil { panic(preViolation) }
	switch self.kind {
	case OpCallback:
		self.fn()
	case OpDelay:
		if budget >= self.seconds {
			budget -= self.seconds
			self.done = true
		}
	case OpClearInstant:
		buf.SetAll(self.state)
	case OpClearDirectional:
		budget = self.stepClearDirectional(buf, budget)
	case OpClearStepwise:
		budget = self.stepClearStepwise(buf, budget)
	case OpContentStatic:
		buf.Clear()
		buf.SetPartialContent(self.content, self.x, self.y)
		self.done = true
	case OpContentMoving:
		budget = self.stepContentMoving(buf, budget)
	default:
		panic("invalid operation kind")
	}
	return budget
}

// Returns whether the operation has completed. Directional clears
// are finished whenever the buffer is fully in the target state, so
// the check needs the buffer.
func (self *Operation) IsFinished(buf *buffer.Buffer) bool {
	switch self.kind {
	case OpCallback, OpClearInstant:
		return true
	case OpDelay:
		return self.done
	case OpClearDirectional:
		return buf.IsAllDotsInState(self.state)
	case OpClearStepwise, OpContentMoving:
		return self.counter >= self.limit
	case OpContentStatic:
		return true
	default:
		panic("invalid operation kind")
	}
}

// Pushes the display toward the clear direction once per dot worth
// of budget. Only positive targets are stamped on the vacated edge,
// so clearing to a negative state never completes.
func (self *Operation) stepClearDirectional(buf *buffer.Buffer, budget float64) float64 {
	for budget >= self.cost {
		buf.Push(self.dir)
		if self.state > 0 {
			switch self.dir {
			case core.DirLeft  : buf.SetColumn(buf.Width() - 1, self.state)
			case core.DirRight : buf.SetColumn(0, self.state)
			case core.DirUp    : buf.SetRow(buf.Height() - 1, self.state)
			case core.DirDown  : buf.SetRow(0, self.state)
			}
		}
		budget -= self.cost
		if buf.IsAllDotsInState(self.state) { break }
	}
	return budget
}

func (self *Operation) stepClearStepwise(buf *buffer.Buffer, budget float64) float64 {
	for budget >= self.cost && self.counter < self.limit {
		switch self.stepwise {
		case ColumnByColumnFromLeft  : buf.SetColumn(self.counter, self.state)
		case ColumnByColumnFromRight : buf.SetColumn(buf.Width() - self.counter - 1, self.state)
		case RowByRowFromTop         : buf.SetRow(self.counter, self.state)
		case RowByRowFromBottom      : buf.SetRow(buf.Height() - self.counter - 1, self.state)
		}
		budget -= self.cost
		self.counter += 1
	}
	return budget
}

// While the content hasn't fully entered, each step injects its next
// column or row at the leading edge; afterwards the display is just
// pushed until the push distance is covered.
func (self *Operation) stepContentMoving(buf *buffer.Buffer, budget float64) float64 {
	width, height := self.content.Width(), self.content.Height()
	for budget >= self.cost && self.counter < self.limit {
		switch self.dir {
		case core.DirLeft:
			if self.counter < width {
				buf.PushLeftSetRightColumn(self.content, self.counter, self.y)
			} else {
				buf.PushLeft()
			}
		case core.DirRight:
			if self.counter < width {
				buf.PushRightSetLeftColumn(self.content, width - self.counter - 1, self.y)
			} else {
				buf.PushRight()
			}
		case core.DirUp:
			if self.counter < height {
				buf.PushUpSetBottomRow(self.content, self.counter, self.x)
			} else {
				buf.PushUp()
			}
		case core.DirDown:
			if self.counter < height {
				buf.PushDownSetTopRow(self.content, height - self.counter - 1, self.x)
			} else {
				buf.PushDown()
			}
		}
		budget -= self.cost
		self.counter += 1
	}
	return budget
}
