// Package config loads dotmatrix display settings from TOML files.
//
// A typical file looks like this:
//   width = 59
//   height = 7
//   default_speed = 42.0
//   default_font = "normal"
//
//   palette = ["#1A1A1A", "#FF9A1F", "#1FFF6A"]
//   background = "#000000"
//   dot_size = 8
//   dot_gap = 2
//   border = 12
//   shape = "round"
//
// All fields are optional; missing ones keep their [Default]() values.
package config

import "io"
import "os"
import "fmt"
import "bytes"
import "image/color"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/font"
import "github.com/tinne26/dotmatrix/internal"

import "github.com/pelletier/go-toml/v2"

type errMsg string
func (self errMsg) Error() string { return string(self) }

// Dot shapes for renderers.
const (
	ShapeSquare = "square"
	ShapeRound  = "round"
)

// Config holds the display size, controller defaults and renderer
// options.
type Config struct {
	Width int `toml:"width"`
	Height int `toml:"height"`
	DefaultSpeed float64 `toml:"default_speed"` // dots per second
	DefaultFont string `toml:"default_font"` // "small", "normal" or "large"

	Palette []string `toml:"palette"` // "#RRGGBB[AA]" per dot state
	Background string `toml:"background"`
	DotSize int `toml:"dot_size"` // in pixels
	DotGap int `toml:"dot_gap"` // in pixels
	Border int `toml:"border"` // in pixels
	Shape string `toml:"shape"` // ShapeSquare or ShapeRound
}

// Returns the default configuration: a 59x7 display at 42 dots per
// second with the normal font, amber dots and square shapes.
func Default() *Config {
	palette := make([]string, len(core.DefaultPalette))
	for i, rgba := range core.DefaultPalette {
		palette[i] = core.HexColor(rgba)
	}
	return &Config{
		Width: 59,
		Height: 7,
		DefaultSpeed: 42,
		DefaultFont: font.Normal.String(),
		Palette: palette,
		Background: "#000000",
		DotSize: 8,
		DotGap: 2,
		Border: 12,
		Shape: ShapeSquare,
	}
}

// Parses a TOML configuration over the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	return Decode(bytes.NewReader(data))
}

// Like [Parse](), but reading from the given reader.
func Decode(reader io.Reader) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(reader).DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil { return nil, err }
	return cfg, nil
}

// Loads and validates the configuration file at the given path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil { return nil, fmt.Errorf("config: %w", err) }
	cfg, err := Decode(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return cfg, file.Close()
}

// Encodes the configuration as TOML.
func (self *Config) Encode(writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(self)
}

// Checks the configuration values. Non-positive speeds are replaced
// by 1.0 with a warning, like the controller does. Everything else
// that's out of range results in an error.
func (self *Config) Validate() error {
	if self.Width <= 0 || self.Height <= 0 {
		return fmt.Errorf("config: invalid display size %dx%d", self.Width, self.Height)
	}
	if self.DefaultSpeed <= 0 {
		internal.Logger().Warn("config: zero or negative default_speed, using 1.0 instead", "speed", self.DefaultSpeed)
		self.DefaultSpeed = 1.0
	}
	if _, err := font.ParseKind(self.DefaultFont); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(self.Palette) < 2 {
		return errMsg("config: palette requires at least two colors (off and on)")
	}
	if _, err := core.ParsePalette(self.Palette); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := core.ParseHexColor(self.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if self.DotSize <= 0 { return errMsg("config: dot_size must be positive") }
	if self.DotGap < 0 { return errMsg("config: dot_gap can't be negative") }
	if self.Border < 0 { return errMsg("config: border can't be negative") }
	if self.Shape != ShapeSquare && self.Shape != ShapeRound {
		return fmt.Errorf("config: unknown shape '%s'", self.Shape)
	}
	return nil
}

// Returns the parsed default font kind. Invalid names fall back to
// [font.Normal]; use [Config.Validate]() to detect them.
func (self *Config) FontKind() font.Kind {
	kind, err := font.ParseKind(self.DefaultFont)
	if err != nil { return font.Normal }
	return kind
}

// Returns the parsed palette. Invalid palettes fall back to
// [core.DefaultPalette]; use [Config.Validate]() to detect them.
func (self *Config) ColorPalette() core.Palette {
	palette, err := core.ParsePalette(self.Palette)
	if err != nil || len(palette) == 0 { return core.DefaultPalette }
	return palette
}

// Returns the parsed background color, or black if invalid.
func (self *Config) BackgroundColor() color.RGBA {
	rgba, err := core.ParseHexColor(self.Background)
	if err != nil { return color.RGBA{0, 0, 0, 255} }
	return rgba
}
