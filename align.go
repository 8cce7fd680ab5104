package dotmatrix

import "github.com/tinne26/dotmatrix/core"

// Handy type alias for aligns. See [core.Align] for details.
type Align = core.Align

// Align constants, re-exported from [core] for convenience.
const (
	Left       = core.Left
	HorzCenter = core.HorzCenter
	Right      = core.Right
	Top        = core.Top
	Middle     = core.Middle
	Bottom     = core.Bottom
	Center     = core.Center
)
