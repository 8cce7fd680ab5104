package core

import "strconv"

// Directions for buffer shifts, clearing animations and content
// movements.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Returns whether the direction moves content along the x axis.
func (self Direction) IsHorz() bool {
	return self == DirLeft || self == DirRight
}

// Returns the opposite direction.
func (self Direction) Opposite() Direction {
	switch self {
	case DirLeft  : return DirRight
	case DirRight : return DirLeft
	case DirUp    : return DirDown
	case DirDown  : return DirUp
	default:
		panic("invalid direction")
	}
}

// Returns a textual representation of the direction.
func (self Direction) String() string {
	switch self {
	case DirLeft: return "Left"
	case DirRight: return "Right"
	case DirUp: return "Up"
	case DirDown: return "Down"
	default:
		return "DirectionInvalid#" + strconv.Itoa(int(self))
	}
}
