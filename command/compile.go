package command

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/font"
import "github.com/tinne26/dotmatrix/text"

// Context holds everything that compilation needs from the
// controller and the display.
type Context struct {
	Width int // display width, in dots
	Height int // display height, in dots
	DefaultSpeed float64 // dots per second, for commands without speed override
	DefaultFont font.Kind // for text commands without font kind or face
	Fonts *font.Registry // nil means built-in fonts
}

// Compiles the given command into a fresh operation. Compilation
// doesn't modify the command, and text is rasterized at this point,
// so changes to a command affect only later compilations.
func Compile(cmd Command, ctx *Context) *Operation {
	if cmd == nil || ctx == nil { panic(preViolation) }
	switch typedCmd := cmd.(type) {
	case *Text:
		return compileContent(rasterizeText(typedCmd, ctx), &typedCmd.Placement, ctx)
	case *Content:
		if typedCmd.Content == nil { panic(preViolation) }
		return compileContent(typedCmd.Content, &typedCmd.Placement, ctx)
	case *Clear:
		return compileClear(typedCmd, ctx)
	case *Pause:
		return &Operation{ kind: OpDelay, seconds: max(typedCmd.Seconds, 0) }
	case *Callback:
		if typedCmd.Func == nil { panic(preViolation) }
		return &Operation{ kind: OpCallback, fn: typedCmd.Func }
	default:
		panic("invalid command type")
	}
}

// Returns the position at which content of size 'content' starts
// within 'display' dots for a single align component, like
// [core.Right] or [core.Top]. When the align has a horizontal
// component, the vertical one is ignored. An empty align centers.
func Anchor(align core.Align, display, content int) int {
	if align.HasHorzComponent() { return align.HorzAnchor(display, content) }
	return align.VertAnchor(display, content)
}

// Returns the number of single-dot pushes needed by the given
// movement for content of size 'content' placed with the given
// align within 'display' dots along the movement axis:
//  - Pass movements always take display + content pushes.
//  - Stop movements entering from the far side of the anchor take
//    display pushes, from the near side content pushes, and centered
//    content (display + content)/2 pushes.
// [None] takes zero pushes.
func PushDistance(movement Movement, align core.Align, display, content int) int {
	if movement == None { return 0 }
	if movement.IsPass() { return display + content }

	var position axisAlign
	switch movement.Direction() {
	case core.DirLeft, core.DirRight:
		position = horzAxisAlign(align)
	default:
		position = vertAxisAlign(align)
	}

	// for left/up movements content enters from the end side
	entersFromEnd := (movement == MoveLeftAndStop || movement == MoveUpAndStop)
	switch position {
	case alignStart:
		if entersFromEnd { return display }
		return content
	case alignEnd:
		if entersFromEnd { return content }
		return display
	default:
		return (display + content)/2
	}
}

// ---- helpers ----

// Position along a single axis.
type axisAlign uint8

const (
	alignStart axisAlign = iota // left or top
	alignMid
	alignEnd // right or bottom
)

func horzAxisAlign(align core.Align) axisAlign {
	switch align.Horz() {
	case core.Left  : return alignStart
	case core.Right : return alignEnd
	default:
		return alignMid
	}
}

func vertAxisAlign(align core.Align) axisAlign {
	switch align.Vert() {
	case core.Top    : return alignStart
	case core.Bottom : return alignEnd
	default:
		return alignMid
	}
}

func compileContent(content *core.Content, placement *Placement, ctx *Context) *Operation {
	x := placement.Position.HorzAnchor(ctx.Width, content.Width())
	y := placement.Position.VertAnchor(ctx.Height, content.Height())

	movement := placement.Movement
	dps := placement.Speed.Or(ctx.DefaultSpeed)
	if dps <= 0 { movement = None }
	if movement == None {
		return &Operation{ kind: OpContentStatic, content: content, x: x, y: y }
	}

	dir := movement.Direction()
	display, size := ctx.Height, content.Height()
	if dir.IsHorz() { display, size = ctx.Width, content.Width() }
	return &Operation{
		kind: OpContentMoving,
		content: content,
		x: x, y: y,
		dir: dir,
		cost: 1.0/dps,
		limit: PushDistance(movement, placement.Position, display, size),
	}
}

func compileClear(cmd *Clear, ctx *Context) *Operation {
	dps := cmd.Speed.Or(ctx.DefaultSpeed)
	if cmd.Method == Instant || dps <= 0 {
		return &Operation{ kind: OpClearInstant, state: cmd.Target }
	}

	op := &Operation{ state: cmd.Target, cost: 1.0/dps }
	switch cmd.Method {
	case MoveLeft, MoveRight, MoveUp, MoveDown:
		op.kind = OpClearDirectional
		op.dir = clearDirection(cmd.Method)
	case ColumnByColumnFromLeft, ColumnByColumnFromRight:
		op.kind = OpClearStepwise
		op.stepwise = cmd.Method
		op.limit = ctx.Width
	case RowByRowFromTop, RowByRowFromBottom:
		op.kind = OpClearStepwise
		op.stepwise = cmd.Method
		op.limit = ctx.Height
	default:
		panic("invalid clear method")
	}
	return op
}

func clearDirection(method ClearMethod) core.Direction {
	switch method {
	case MoveLeft  : return core.DirLeft
	case MoveRight : return core.DirRight
	case MoveUp    : return core.DirUp
	case MoveDown  : return core.DirDown
	default:
		panic(preViolation)
	}
}

// Font precedence: explicit face, then command font kind, then the
// context default. Without an explicit text align, lines follow the
// horizontal placement.
func rasterizeText(cmd *Text, ctx *Context) *core.Content {
	fnt := cmd.Face
	if fnt == nil {
		kind, set := cmd.Font()
		if !set { kind = ctx.DefaultFont }
		registry := ctx.Fonts
		if registry == nil { registry = defaultRegistry }
		fnt = registry.Get(kind)
	}

	align := cmd.TextAlign.Horz()
	if align == 0 {
		switch cmd.Position.Horz() {
		case core.Left  : align = core.Left
		case core.Right : align = core.Right
		default:
			align = core.HorzCenter
		}
	}

	return text.Rasterize(cmd.Lines, text.Style{
		Font: fnt,
		Fixed: cmd.Fixed,
		Bold: cmd.Bold,
		TextState: cmd.TextState,
		BackState: cmd.BackState,
		CharSpacing: cmd.CharSpacing,
		LineSpacing: cmd.LineSpacing,
		Align: align,
	})
}

var defaultRegistry = font.NewRegistry()
