package dotmatrix

import "github.com/tinne26/dotmatrix/core"

// Handy type alias for directions. See [core.Direction] for details.
type Direction = core.Direction

// Direction constants, re-exported from [core] for convenience.
const (
	DirLeft  = core.DirLeft
	DirRight = core.DirRight
	DirUp    = core.DirUp
	DirDown  = core.DirDown
)
