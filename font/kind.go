package font

import "strconv"
import "strings"
import "sync"

// Built-in font kinds.
type Kind uint8

const (
	Small  Kind = iota // 5 dots high
	Normal             // 7 dots high
	Large              // basicfont 7x13 minus shared blank rows, taller than 7 dots
	numKinds
)

// Returns the name of the font kind in lower case.
func (self Kind) String() string {
	switch self {
	case Small  : return "small"
	case Normal : return "normal"
	case Large  : return "large"
	default:
		return "KindInvalid#" + strconv.Itoa(int(self))
	}
}

// Returns whether the kind is one of [Small], [Normal] or [Large].
func (self Kind) IsValid() bool { return self < numKinds }

// Parses a font kind name. Case and surrounding spaces are ignored.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small"  : return Small, nil
	case "normal" : return Normal, nil
	case "large"  : return Large, nil
	default:
		return Normal, errMsg("unknown font kind '" + name + "'")
	}
}

var smallOnce  = sync.OnceValue(func() Font { return newSmallFont() })
var normalOnce = sync.OnceValue(func() Font { return newNormalFont() })
var largeOnce  = sync.OnceValue(func() Font { return newBasicFont("large", basicFace()) })

// Returns the built-in font for the given kind. Invalid kinds
// will cause the function to panic.
func Builtin(kind Kind) Font {
	switch kind {
	case Small  : return smallOnce()
	case Normal : return normalOnce()
	case Large  : return largeOnce()
	default:
		panic(preViolation)
	}
}
