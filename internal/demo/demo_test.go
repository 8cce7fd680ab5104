package demo

import "testing"
import "time"

import "github.com/tinne26/dotmatrix"
import "github.com/tinne26/dotmatrix/command"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"clock", "colors", "greeting", "roadsign"}, Names())
	matrix := dotmatrix.New(59, 7)
	assert.Error(t, Load(matrix.Controller(), "fireworks"))
	assert.True(t, matrix.Controller().IsIdle())
}

func TestScenesLoop(t *testing.T) {
	for _, name := range append(Names(), "all") {
		matrix := dotmatrix.New(59, 7)
		require.NoError(t, Load(matrix.Controller(), name))
		changes := 0
		for range 60*30 { // 30 seconds at 60 ticks per second
			matrix.Tick(1.0/60.0)
			if matrix.Buffer().CheckChangesAndReset() { changes += 1 }
		}
		assert.False(t, matrix.Controller().IsIdle(), name)
		assert.Greater(t, changes, 1, name)
	}
}

func TestClockShowsTime(t *testing.T) {
	defer func(now func() time.Time) { Now = now }(Now)
	Now = func() time.Time { return time.Date(2024, 1, 1, 12, 34, 56, 0, time.UTC) }

	matrix := dotmatrix.New(59, 7)
	Clock(matrix.Controller())
	matrix.Tick(0.1) // update callback
	matrix.Tick(0.1) // text

	expected := dotmatrix.New(59, 7)
	expected.Controller().Submit(command.NewText("12:34:56"))
	expected.Tick(0.1)
	assert.True(t, matrix.Buffer().Content().Equal(expected.Buffer().Content()))
	assert.False(t, matrix.Buffer().IsClear())
}
