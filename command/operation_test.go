package command

import "testing"

import "github.com/stretchr/testify/assert"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/buffer"

func TestInstantClearIgnoresBudget(t *testing.T) {
	buf := buffer.New(4, 3)
	op := Compile(NewClearTo(3), testContext(4, 3))
	assert.Equal(t, 0.0, op.Step(buf, 0))
	assert.True(t, op.IsFinished(buf))
	assert.True(t, buf.IsAllDotsInState(3))
}

func TestDelay(t *testing.T) {
	buf := buffer.New(2, 2)
	op := Compile(NewPause(1.0), testContext(2, 2))
	assert.Equal(t, 0.5, op.Step(buf, 0.5))
	assert.False(t, op.IsFinished(buf))
	assert.InDelta(t, 0.25, op.Step(buf, 1.25), 1e-12)
	assert.True(t, op.IsFinished(buf))

	op = Compile(NewPause(0), testContext(2, 2))
	assert.Equal(t, 0.0, op.Step(buf, 0))
	assert.True(t, op.IsFinished(buf))
}

func TestCallbackRunsOnce(t *testing.T) {
	buf := buffer.New(2, 2)
	calls := 0
	op := Compile(NewCallback(func() { calls += 1 }), testContext(2, 2))
	assert.Equal(t, 0.75, op.Step(buf, 0.75))
	assert.True(t, op.IsFinished(buf))
	assert.Equal(t, 1, calls)
}

func TestStaticContent(t *testing.T) {
	buf := buffer.New(5, 3)
	buf.Fill()
	cmd := NewContent(core.ParseContent(2, "##", "#."))
	cmd.Position = core.Right | core.Bottom
	op := Compile(cmd, testContext(5, 3))
	assert.Equal(t, 0.0, op.Step(buf, 0))
	assert.True(t, op.IsFinished(buf))
	assert.Equal(t, ".....\n...22\n...2.", buf.Content().String())
}

func TestMovingContentLeftAndStop(t *testing.T) {
	buf := buffer.New(5, 1)
	cmd := NewContent(core.ParseContent(core.On, "##.#"))
	cmd.Position = core.Left
	cmd.Movement = MoveLeftAndStop
	cmd.Speed = DotsPerSecond(1)
	op := Compile(cmd, testContext(5, 1))
	assert.Equal(t, 5, op.limit)

	assert.InDelta(t, 0.5, op.Step(buf, 2.5), 1e-12)
	assert.False(t, op.IsFinished(buf))
	assert.Equal(t, "...##", buf.Content().String())

	assert.Equal(t, 0.0, op.Step(buf, 3.0))
	assert.True(t, op.IsFinished(buf))
	assert.Equal(t, "##.#.", buf.Content().String())
}

func TestMovingContentRightAndStop(t *testing.T) {
	buf := buffer.New(5, 1)
	cmd := NewContent(core.ParseContent(core.On, "##.#"))
	cmd.Position = core.Right
	cmd.Movement = MoveRightAndStop
	cmd.Speed = DotsPerSecond(1)
	op := Compile(cmd, testContext(5, 1))

	op.Step(buf, 1)
	assert.Equal(t, "#....", buf.Content().String())
	op.Step(buf, 4)
	assert.True(t, op.IsFinished(buf))
	assert.Equal(t, ".##.#", buf.Content().String())
}

func TestMovingContentVertical(t *testing.T) {
	content := core.ParseContent(core.On, "#.", ".#")
	ctx := testContext(2, 3)

	cmd := NewContent(content)
	cmd.Position = core.Top | core.Left
	cmd.Movement = MoveUpAndStop
	cmd.Speed = DotsPerSecond(10)
	buf := buffer.New(2, 3)
	op := Compile(cmd, ctx)
	assert.Equal(t, 3, op.limit)
	op.Step(buf, 1)
	assert.True(t, op.IsFinished(buf))
	assert.Equal(t, "#.\n.#\n..", buf.Content().String())

	cmd.Position = core.Bottom | core.Left
	cmd.Movement = MoveDownAndStop
	buf = buffer.New(2, 3)
	op = Compile(cmd, ctx)
	op.Step(buf, 0.1)
	assert.Equal(t, ".#\n..\n..", buf.Content().String())
	op.Step(buf, 1)
	assert.Equal(t, "..\n#.\n.#", buf.Content().String())

	cmd.Movement = MoveUpAndPass
	buf = buffer.New(2, 3)
	op = Compile(cmd, ctx)
	assert.Equal(t, 5, op.limit)
	op.Step(buf, 1)
	assert.True(t, op.IsFinished(buf))
	assert.True(t, buf.IsClear())
}

func TestDirectionalClear(t *testing.T) {
	buf := buffer.New(3, 2)
	buf.Fill()
	cmd := &Clear{ Method: MoveLeft, Speed: DotsPerSecond(1) }
	op := Compile(cmd, testContext(3, 2))

	assert.Equal(t, 7.0, op.Step(buf, 10))
	assert.True(t, op.IsFinished(buf))
	assert.True(t, buf.IsClear())

	// positive targets are stamped on the vacated edge
	cmd.Method = MoveDown
	cmd.Target = 2
	op = Compile(cmd, testContext(3, 2))
	assert.Equal(t, 0.5, op.Step(buf, 1.5))
	assert.Equal(t, "222\n...", buf.Content().String())
	assert.False(t, op.IsFinished(buf))
	op.Step(buf, 1)
	assert.True(t, op.IsFinished(buf))
}

func TestDirectionalClearToNegativeState(t *testing.T) {
	buf := buffer.New(3, 2)
	cmd := &Clear{ Method: MoveRight, Target: -1, Speed: DotsPerSecond(1) }
	op := Compile(cmd, testContext(3, 2))
	assert.Equal(t, 0.0, op.Step(buf, 5))
	assert.False(t, op.IsFinished(buf))
	assert.True(t, buf.IsClear())
}

func TestStepwiseClear(t *testing.T) {
	buf := buffer.New(3, 2)
	cmd := &Clear{ Method: ColumnByColumnFromRight, Target: core.On, Speed: DotsPerSecond(1) }
	op := Compile(cmd, testContext(3, 2))
	assert.Equal(t, 0.0, op.Step(buf, 2))
	assert.False(t, op.IsFinished(buf))
	assert.Equal(t, ".##\n.##", buf.Content().String())
	assert.Equal(t, 5.0, op.Step(buf, 6))
	assert.True(t, op.IsFinished(buf))
	assert.True(t, buf.IsFull())

	cmd.Method = RowByRowFromBottom
	cmd.Target = 4
	op = Compile(cmd, testContext(3, 2))
	op.Step(buf, 1)
	assert.Equal(t, "###\n444", buf.Content().String())

	cmd.Method = ColumnByColumnFromLeft
	op = Compile(cmd, testContext(3, 2))
	op.Step(buf, 1)
	assert.Equal(t, "4##\n444", buf.Content().String())

	cmd.Method = RowByRowFromTop
	op = Compile(cmd, testContext(3, 2))
	op.Step(buf, 1)
	assert.Equal(t, "444\n444", buf.Content().String())
	assert.False(t, op.IsFinished(buf))
}

func TestOperationKindNames(t *testing.T) {
	assert.Equal(t, "ContentMoving", OpContentMoving.String())
	assert.Equal(t, "OpKindInvalid#99", OpKind(99).String())
	assert.Equal(t, "MoveUpAndPass", MoveUpAndPass.String())
	assert.Equal(t, "RowByRowFromTop", RowByRowFromTop.String())
}
