// Package app holds the command line setup shared by the dotmatrix
// programs: flags, logging, configuration and the demo scene.
package app

import "os"
import "fmt"
import "flag"
import "strings"
import "log/slog"

import "github.com/tinne26/dotmatrix"
import "github.com/tinne26/dotmatrix/font"
import "github.com/tinne26/dotmatrix/config"
import "github.com/tinne26/dotmatrix/internal/demo"

// Common command line options.
type Flags struct {
	ConfigPath string
	Scene string
	FontPath string
	FontKind string
	Verbose bool
}

// Registers the common flags on the given flag set.
func (self *Flags) Register(flags *flag.FlagSet) {
	flags.StringVar(&self.ConfigPath, "config", "", "TOML configuration file (optional)")
	flags.StringVar(&self.Scene, "scene", "all", "demo scene: all, " + strings.Join(demo.Names(), ", "))
	flags.StringVar(&self.FontPath, "font", "", "ggfnt font file replacing one of the built-in fonts")
	flags.StringVar(&self.FontKind, "font-kind", "normal", "built-in font replaced by -font")
	flags.BoolVar(&self.Verbose, "v", false, "log controller activity")
}

// Installs a text logger on stderr. Without verbose output only
// warnings and errors are shown.
func (self *Flags) SetupLogger() *slog.Logger {
	level := slog.LevelWarn
	if self.Verbose { level = slog.LevelDebug }
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	dotmatrix.SetLogger(logger)
	return logger
}

// Returns the configuration file contents, or the defaults when no
// file was given.
func (self *Flags) LoadConfig() (*config.Config, error) {
	if self.ConfigPath == "" { return config.Default(), nil }
	return config.Load(self.ConfigPath)
}

// Creates the matrix for the given configuration, loads the custom
// font if any and submits the demo scene.
func (self *Flags) NewMatrix(cfg *config.Config) (*dotmatrix.Matrix, error) {
	matrix := dotmatrix.NewFromConfig(cfg)
	if self.FontPath != "" {
		kind, err := font.ParseKind(self.FontKind)
		if err != nil { return nil, err }
		fnt, err := font.Load(self.FontPath)
		if err != nil { return nil, err }
		matrix.Controller().Advanced().FontRegistry().Set(kind, fnt)
	}
	if err := demo.Load(matrix.Controller(), self.Scene); err != nil {
		return nil, err
	}
	return matrix, nil
}

// Prints the error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
	os.Exit(1)
}
