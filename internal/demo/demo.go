// Package demo contains the sample scenes shown by the dotmatrix
// commands. Scenes only submit repeating commands, so once loaded
// they loop forever.
package demo

import "fmt"
import "slices"
import "time"

import "github.com/tinne26/dotmatrix"
import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/font"
import "github.com/tinne26/dotmatrix/command"

// A Scene submits its commands to the given controller.
type Scene func(ctrl *dotmatrix.Controller)

// Clock used by the clock scene. Tests can replace it.
var Now func() time.Time = time.Now

var scenes = map[string]Scene{
	"greeting": Greeting,
	"clock": Clock,
	"roadsign": RoadSign,
	"colors": Colors,
}

// Returns the names of the available scenes, sorted.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes { names = append(names, name) }
	slices.Sort(names)
	return names
}

// Loads the named scene into the controller. The name "all" loads
// every scene, one after another.
func Load(ctrl *dotmatrix.Controller, name string) error {
	if name == "all" {
		for _, name := range Names() { scenes[name](ctrl) }
		return nil
	}
	scene, found := scenes[name]
	if !found { return fmt.Errorf("demo: unknown scene '%s'", name) }
	scene(ctrl)
	return nil
}

// A greeting that scrolls through the display from right to left.
func Greeting(ctrl *dotmatrix.Controller) {
	hello := command.NewText("HELLO, WORLD!")
	hello.Movement = command.MoveLeftAndPass
	submitRepeat(ctrl, hello, command.NewPause(0.5))
}

// A clock that updates every half a second.
func Clock(ctrl *dotmatrix.Controller) {
	clock := command.NewText("")
	clock.Face = font.Builtin(font.Normal)
	update := command.NewCallback(func() {
		clock.Lines = []string{ Now().Format("15:04:05") }
	})
	submitRepeat(ctrl, update, clock, command.NewPause(0.5))
}

// Road-sign style alternating messages with directional transitions.
func RoadSign(ctrl *dotmatrix.Controller) {
	slow := command.NewText("SLOW DOWN")
	slow.Movement = command.MoveDownAndStop
	work := command.NewText("ROAD WORK")
	work.Movement = command.MoveUpAndStop
	wipeUp := command.NewClear()
	wipeUp.Method = command.MoveUp
	wipeDown := command.NewClear()
	wipeDown.Method = command.MoveDown
	submitRepeat(ctrl,
		slow, command.NewPause(1.5), wipeUp,
		work, command.NewPause(1.5), wipeDown,
	)
}

// Multi-color text over filled backgrounds, using the extra palette
// states.
func Colors(ctrl *dotmatrix.Controller) {
	const red, green, blue = core.On + 1, core.On + 2, core.On + 3

	fill := command.NewClearTo(blue)
	fill.Method = command.ColumnByColumnFromLeft
	message := command.NewText("COLORS")
	message.TextState, message.BackState = red, blue
	message.Movement = command.MoveRightAndStop
	small := command.NewText("small and bold").SetFont(font.Small)
	small.Bold = true
	small.Fixed = false
	small.TextState = green
	small.Movement = command.MoveLeftAndPass
	wipe := command.NewClear()
	wipe.Method = command.RowByRowFromBottom
	submitRepeat(ctrl,
		fill, message, command.NewPause(1.0),
		wipe, small, command.NewPause(0.25),
	)
}

func submitRepeat(ctrl *dotmatrix.Controller, cmds ...command.Command) {
	for _, cmd := range cmds {
		setRepeat(cmd)
		ctrl.Submit(cmd)
	}
}

func setRepeat(cmd command.Command) {
	switch cmd := cmd.(type) {
	case *command.Text: cmd.Repeat = true
	case *command.Content: cmd.Repeat = true
	case *command.Clear: cmd.Repeat = true
	case *command.Pause: cmd.Repeat = true
	case *command.Callback: cmd.Repeat = true
	default:
		panic("unexpected command type")
	}
}
