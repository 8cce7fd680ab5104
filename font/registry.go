package font

import "github.com/tinne26/dotmatrix/internal"

// A Registry maps font kinds to fonts. New registries start with the
// built-in fonts, but any kind can be overridden, e.g. to display
// text commands using a ggfnt font:
//   pixelFont, err := font.Load("fonts/tiny-pixel.ggfnt")
//   if err != nil { return err }
//   registry.Set(font.Normal, pixelFont)
type Registry struct {
	fonts [numKinds]Font
}

// Creates a registry with the built-in fonts.
func NewRegistry() *Registry {
	registry := &Registry{}
	registry.Reset()
	return registry
}

// Returns the font for the given kind. Invalid kinds log an error
// and fall back to [Normal].
func (self *Registry) Get(kind Kind) Font {
	if !kind.IsValid() {
		internal.Logger().Error("font.Registry.Get: invalid font kind, using normal", "kind", kind.String())
		kind = Normal
	}
	return self.fonts[kind]
}

// Sets the font for the given kind. A nil font restores the built-in
// one. Invalid kinds will cause the method to panic.
func (self *Registry) Set(kind Kind, font Font) {
	if !kind.IsValid() { panic(preViolation) }
	if font == nil { font = Builtin(kind) }
	self.fonts[kind] = font
}

// Restores the built-in fonts for all kinds.
func (self *Registry) Reset() {
	for kind := range numKinds {
		self.fonts[kind] = Builtin(kind)
	}
}
