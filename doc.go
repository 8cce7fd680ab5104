// dotmatrix is a package for driving dot-matrix style displays, like
// the ones used in old scoreboards, road signs and train stations.
//
// Displays are animated through a queue of declarative commands:
//   matrix := dotmatrix.New(59, 7)
//   controller := matrix.Controller()
//
//   hello := command.NewText("HELLO")
//   hello.Movement = command.MoveLeftAndStop
//   controller.Submit(hello)
//   controller.Submit(command.NewPause(2.0))
//   controller.Submit(&command.Clear{ Method: command.MoveUp })
//
// Then, on each frame, tick the matrix and redraw the dots if the
// buffer changed:
//   matrix.Tick(deltaTime)
//   matrix.Buffer().Refresh(sink) // sink implements buffer.Sink
//
// Dot states are plain integers: 0 is off, 1 is on, and higher values
// are additional "on" variants that renderers typically map to other
// colors through a [core.Palette].
//
// The view subpackage provides an Ebitengine renderer, and the cmd
// directory contains ready to run demos for Ebitengine and terminals.
package dotmatrix
