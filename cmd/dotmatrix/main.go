// Command dotmatrix shows the demo scenes on a simulated dot-matrix
// display in its own window.
//
// Usage:
//   dotmatrix [-config display.toml] [-scene name] [-projector mode]
package main

import "flag"
import "errors"

import "github.com/tinne26/dotmatrix/view"
import "github.com/tinne26/dotmatrix/internal/app"

import "github.com/hajimehoshi/ebiten/v2"

func main() {
	var flags app.Flags
	flags.Register(flag.CommandLine)
	projectorName := flag.String("projector", "proportional", "window scaling: proportional, pixel-perfect or stretched")
	tps := flag.Int("tps", 60, "matrix updates per second")
	flag.Parse()
	logger := flags.SetupLogger()

	cfg, err := flags.LoadConfig()
	if err != nil { app.Fatal(err) }
	matrix, err := flags.NewMatrix(cfg)
	if err != nil { app.Fatal(err) }
	projector, ok := view.ParseProjector(*projectorName)
	if !ok { app.Fatal(errors.New("unknown projector '" + *projectorName + "'")) }
	if *tps <= 0 { app.Fatal(errors.New("tps must be positive")) }

	game := view.NewGame(matrix, view.OptionsFromConfig(cfg))
	game.SetProjector(projector)
	width, height := game.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("dotmatrix")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(*tps)
	logger.Debug("starting", "width", cfg.Width, "height", cfg.Height, "scene", flags.Scene)

	err = ebiten.RunGame(game)
	if err != nil && !errors.Is(err, ebiten.Termination) { app.Fatal(err) }
}
