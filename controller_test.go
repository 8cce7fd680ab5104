package dotmatrix

import "bytes"
import "testing"
import "log/slog"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/font"
import "github.com/tinne26/dotmatrix/command"
import "github.com/tinne26/dotmatrix/config"

func recorder(log *[]string, name string) *command.Callback {
	return command.NewCallback(func() { *log = append(*log, name) })
}

func TestControllerDefaults(t *testing.T) {
	matrix := New(59, 7)
	controller := matrix.Controller()
	assert.Equal(t, 42.0, controller.DefaultSpeed())
	assert.Equal(t, font.Normal, controller.DefaultFont())
	assert.True(t, controller.IsIdle())
	assert.Same(t, matrix.Buffer(), controller.Buffer())
	assert.Panics(t, func() { NewController(nil) })
}

func TestControllerFIFO(t *testing.T) {
	var log []string
	controller := New(4, 4).Controller()
	controller.Submit(recorder(&log, "a"))
	controller.Submit(recorder(&log, "b"))
	controller.Submit(recorder(&log, "c"))
	controller.Tick(0)
	assert.Equal(t, []string{"a", "b", "c"}, log)
	assert.True(t, controller.IsIdle())
}

func TestControllerRepeatOncePerDequeue(t *testing.T) {
	var log []string
	controller := New(4, 4).Controller()
	a := recorder(&log, "a")
	a.Repeat = true
	controller.Submit(a)
	controller.Submit(recorder(&log, "b"))

	// 'a' goes back to the tail, so the queue doesn't shrink
	controller.Tick(0)
	assert.Equal(t, []string{"a"}, log)
	assert.Equal(t, 2, controller.Advanced().QueueLen())

	controller.Tick(0)
	assert.Equal(t, []string{"a", "b", "a"}, log)
	assert.Equal(t, 1, controller.Advanced().QueueLen())
	assert.False(t, controller.IsIdle())

	controller.Tick(0)
	assert.Equal(t, []string{"a", "b", "a", "a"}, log)
}

func TestControllerDrainsInstantCommands(t *testing.T) {
	matrix := New(20, 7)
	controller := matrix.Controller()
	controller.Submit(command.NewText("HI"))
	controller.Submit(command.NewFill())
	controller.Submit(command.NewPause(1.0))

	matrix.Tick(0.4)
	assert.True(t, matrix.Buffer().IsFull())
	kind, active := controller.Advanced().Active()
	require.True(t, active)
	assert.Equal(t, command.OpDelay, kind)
	assert.InDelta(t, 0.4, controller.Advanced().Budget(), 1e-9)

	matrix.Tick(0.7)
	assert.True(t, controller.IsIdle())
	assert.InDelta(t, 0.1, controller.Advanced().Budget(), 1e-9)

	// with nothing left to run, the budget is dropped
	matrix.Tick(0.5)
	assert.Equal(t, 0.0, controller.Advanced().Budget())
}

func TestControllerBudgetCarriesOver(t *testing.T) {
	matrix := New(5, 1)
	controller := matrix.Controller()
	scroll := command.NewContent(core.ParseContent(core.On, "#"))
	scroll.Position = core.Left
	scroll.Movement = command.MoveLeftAndStop
	scroll.Speed = command.DotsPerSecond(8)
	controller.Submit(scroll)

	matrix.Tick(0.3125)
	assert.Equal(t, "...#.", matrix.Buffer().Content().String())
	assert.Equal(t, 0.0625, controller.Advanced().Budget())

	matrix.Tick(0.3125)
	assert.Equal(t, "#....", matrix.Buffer().Content().String())
	assert.True(t, controller.IsIdle())
}

func TestControllerClear(t *testing.T) {
	var log []string
	matrix := New(3, 1)
	controller := matrix.Controller()
	pause := command.NewPause(1.0)
	pause.Repeat = true
	controller.Submit(pause)
	controller.Submit(recorder(&log, "a"))

	matrix.Tick(0.5)
	assert.Equal(t, 2, controller.Advanced().QueueLen())
	controller.Clear()
	assert.Equal(t, 0, controller.Advanced().QueueLen())
	assert.False(t, controller.IsIdle())

	matrix.Tick(0.6) // active pause still finishes
	assert.True(t, controller.IsIdle())
	assert.Empty(t, log)
}

func TestControllerClearAndStop(t *testing.T) {
	matrix := New(4, 1)
	controller := matrix.Controller()
	wipe := &command.Clear{ Method: command.ColumnByColumnFromLeft, Target: core.On, Speed: command.DotsPerSecond(1) }
	controller.Submit(wipe)
	controller.Submit(command.NewClear())

	matrix.Tick(2.5)
	assert.Equal(t, "##..", matrix.Buffer().Content().String())
	controller.ClearAndStop()
	assert.True(t, controller.IsIdle())
	assert.Equal(t, 0.0, controller.Advanced().Budget())
	assert.Equal(t, "##..", matrix.Buffer().Content().String()) // partial changes stay

	matrix.Reset()
	assert.True(t, matrix.Buffer().IsClear())
}

func TestControllerRemoveAndReplace(t *testing.T) {
	var log []string
	controller := New(4, 4).Controller()
	a, b, c := recorder(&log, "a"), recorder(&log, "b"), recorder(&log, "c")
	controller.Submit(a)
	controller.Submit(b)
	controller.Submit(a)

	assert.True(t, controller.Remove(a))
	assert.False(t, controller.Remove(c))
	assert.True(t, controller.Replace(b, c))
	assert.False(t, controller.Replace(b, a))
	controller.Tick(0)
	assert.Equal(t, []string{"c", "a"}, log)
}

func TestControllerSpeedClamp(t *testing.T) {
	var output bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&output, nil)))
	defer SetLogger(nil)

	controller := New(4, 4).Controller()
	controller.SetDefaultSpeed(0)
	assert.Equal(t, 1.0, controller.DefaultSpeed())
	assert.Contains(t, output.String(), "SetDefaultSpeed")

	controller.SetDefaultSpeed(12.5)
	assert.Equal(t, 12.5, controller.DefaultSpeed())
	assert.Equal(t, 12.5, controller.Advanced().Context().DefaultSpeed)
}

func TestControllerFontRegistry(t *testing.T) {
	matrix := New(20, 13)
	controller := matrix.Controller()
	controller.SetDefaultFont(font.Small)
	registry := font.NewRegistry()
	registry.Set(font.Small, font.Builtin(font.Large))
	controller.Advanced().SetFontRegistry(registry)
	assert.Same(t, registry, controller.Advanced().FontRegistry())

	text := command.NewText("I")
	text.Position = core.Top | core.Left
	controller.Submit(text)
	matrix.Tick(0)
	for y := range font.Builtin(font.Large).Height() {
		if matrix.Buffer().IsDotOn(3, y) { return }
	}
	t.Fatal("expected a large 'I' on column 3")
}

func TestNewFromConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("width = 12\nheight = 5\ndefault_speed = 7.0\ndefault_font = \"small\"\n"))
	require.NoError(t, err)
	matrix := NewFromConfig(cfg)
	assert.Equal(t, 12, matrix.Width())
	assert.Equal(t, 5, matrix.Height())
	assert.Equal(t, 7.0, matrix.Controller().DefaultSpeed())
	assert.Equal(t, font.Small, matrix.Controller().DefaultFont())
}
