package command

import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/font"

func testContext(width, height int) *Context {
	return &Context{
		Width: width,
		Height: height,
		DefaultSpeed: 42,
		DefaultFont: font.Normal,
	}
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, 0, Anchor(core.Left, 59, 10))
	assert.Equal(t, 49, Anchor(core.Right, 59, 10))
	assert.Equal(t, 24, Anchor(core.HorzCenter, 59, 10))
	assert.Equal(t, 0, Anchor(core.Top, 7, 5))
	assert.Equal(t, 2, Anchor(core.Bottom, 7, 5))
	assert.Equal(t, 1, Anchor(core.Middle, 7, 5))
	assert.Equal(t, -5, Anchor(core.Right, 5, 10))
	assert.Equal(t, 1, Anchor(0, 7, 5))
}

func TestPushDistance(t *testing.T) {
	const d, c = 59, 10
	tests := []struct {
		movement Movement
		align core.Align
		push int
	}{
		{None, core.Left, 0},
		{MoveLeftAndStop, core.Left, d},
		{MoveLeftAndStop, core.Right, c},
		{MoveLeftAndStop, core.HorzCenter, (d + c)/2},
		{MoveRightAndStop, core.Left, c},
		{MoveRightAndStop, core.Right, d},
		{MoveRightAndStop, core.Center, (d + c)/2},
		{MoveUpAndStop, core.Top, d},
		{MoveUpAndStop, core.Bottom, c},
		{MoveUpAndStop, core.Left, (d + c)/2}, // no vertical component
		{MoveDownAndStop, core.Top | core.Right, c},
		{MoveDownAndStop, core.Bottom, d},
		{MoveLeftAndPass, core.Left, d + c},
		{MoveRightAndPass, core.Center, d + c},
		{MoveUpAndPass, core.Top, d + c},
		{MoveDownAndPass, core.Bottom, d + c},
	}
	for _, test := range tests {
		push := PushDistance(test.movement, test.align, d, c)
		assert.Equal(t, test.push, push, "%s %s", test.movement, test.align)
	}
}

func TestCompileClear(t *testing.T) {
	ctx := testContext(6, 4)

	op := Compile(NewClear(), ctx)
	assert.Equal(t, OpClearInstant, op.Kind())

	cmd := &Clear{ Method: MoveLeft, Speed: DotsPerSecond(0) }
	assert.Equal(t, OpClearInstant, Compile(cmd, ctx).Kind())

	cmd.Speed = Speed{}
	op = Compile(cmd, ctx)
	assert.Equal(t, OpClearDirectional, op.Kind())
	assert.Equal(t, core.DirLeft, op.dir)
	assert.InDelta(t, 1.0/42.0, op.cost, 1e-12)

	cmd.Method = ColumnByColumnFromRight
	cmd.Speed = DotsPerSecond(10)
	op = Compile(cmd, ctx)
	assert.Equal(t, OpClearStepwise, op.Kind())
	assert.Equal(t, 6, op.limit)
	assert.InDelta(t, 0.1, op.cost, 1e-12)

	cmd.Method = RowByRowFromTop
	assert.Equal(t, 4, Compile(cmd, ctx).limit)
}

func TestCompilePauseAndCallback(t *testing.T) {
	ctx := testContext(6, 4)
	op := Compile(NewPause(-3), ctx)
	assert.Equal(t, OpDelay, op.Kind())
	assert.Equal(t, 0.0, op.seconds)

	op = Compile(NewCallback(func() {}), ctx)
	assert.Equal(t, OpCallback, op.Kind())
	assert.Panics(t, func() { NewCallback(nil) })
	assert.Panics(t, func() { Compile(&Callback{}, ctx) })
}

func TestCompileContent(t *testing.T) {
	ctx := testContext(59, 7)
	content := core.NewFilledContent(10, 3, core.On)

	cmd := NewContent(content)
	op := Compile(cmd, ctx)
	assert.Equal(t, OpContentStatic, op.Kind())
	assert.Equal(t, 24, op.x)
	assert.Equal(t, 2, op.y)

	cmd.Position = core.Right | core.Top
	cmd.Movement = MoveLeftAndPass
	op = Compile(cmd, ctx)
	assert.Equal(t, OpContentMoving, op.Kind())
	assert.Equal(t, 59 + 10, op.limit)
	assert.Equal(t, 49, op.x)
	assert.Equal(t, 0, op.y)

	cmd.Movement = MoveDownAndStop
	op = Compile(cmd, ctx)
	assert.Equal(t, core.DirDown, op.dir)
	assert.Equal(t, 3, op.limit)

	cmd.Speed = DotsPerSecond(-1)
	assert.Equal(t, OpContentStatic, Compile(cmd, ctx).Kind())
}

func TestCompileTextFonts(t *testing.T) {
	ctx := testContext(59, 7)

	cmd := NewText("AB")
	op := Compile(cmd, ctx)
	require.Equal(t, OpContentStatic, op.Kind())
	assert.Equal(t, 7, op.content.Height())
	assert.Equal(t, 5 + 1 + 5, op.content.Width())

	cmd.SetFont(font.Small)
	op = Compile(cmd, ctx)
	assert.Equal(t, 5, op.content.Height())
	assert.Equal(t, 1, op.y) // (7 - 5)/2

	registry := font.NewRegistry()
	registry.Set(font.Small, font.Builtin(font.Large))
	ctx.Fonts = registry
	op = Compile(cmd, ctx)
	assert.Equal(t, font.Builtin(font.Large).Height(), op.content.Height())

	face := font.Builtin(font.Normal)
	cmd.Face = face
	op = Compile(cmd, ctx)
	assert.Equal(t, 7, op.content.Height())

	cmd.Face = nil
	cmd.UnsetFont()
	_, set := cmd.Font()
	assert.False(t, set)
	ctx.DefaultFont = font.Small
	op = Compile(cmd, ctx)
	assert.Equal(t, font.Builtin(font.Large).Height(), op.content.Height()) // registry still overrides

	ctx.Fonts = nil
	op = Compile(cmd, ctx)
	assert.Equal(t, 5, op.content.Height())
}

func TestCompileTextAlign(t *testing.T) {
	ctx := testContext(59, 7)
	cmd := NewText("I\nTT")
	cmd.LineSpacing = 0

	cmd.Position = core.Right
	op := Compile(cmd, ctx)
	assert.Equal(t, core.On, op.content.At(8, 0)) // right aligned 'I'
	assert.Equal(t, core.Off, op.content.At(1, 0))

	cmd.Position = core.Left
	op = Compile(cmd, ctx)
	assert.Equal(t, core.On, op.content.At(1, 0))
	assert.Equal(t, core.Off, op.content.At(8, 0))

	cmd.TextAlign = core.Right
	op = Compile(cmd, ctx)
	assert.Equal(t, core.On, op.content.At(8, 0))
}

func TestNewTextDefaults(t *testing.T) {
	cmd := NewText("A\r\nB")
	assert.Equal(t, []string{"A", "", "B"}, cmd.Lines)
	assert.True(t, cmd.Fixed)
	assert.False(t, cmd.Bold)
	assert.Equal(t, 1, cmd.CharSpacing)
	assert.Equal(t, 1, cmd.LineSpacing)
	assert.Equal(t, core.On, cmd.TextState)
	assert.Equal(t, core.Off, cmd.BackState)
	assert.False(t, cmd.Speed.IsSet())
	assert.Equal(t, 3.0, cmd.Speed.Or(3))
	assert.Equal(t, None, cmd.Movement)

	assert.Equal(t, core.On, NewFill().Target)
	assert.Equal(t, 4, NewClearTo(4).Target)
}
