// Command dotmatrix-term shows the demo scenes on a simulated
// dot-matrix display inside the terminal.
//
// Keys: space pauses, Esc or q quits.
package main

import "flag"
import "time"
import "errors"

import "github.com/tinne26/dotmatrix"
import "github.com/tinne26/dotmatrix/internal/app"
import "github.com/tinne26/dotmatrix/internal/term"
import "github.com/tinne26/dotmatrix/internal/click"

import "github.com/gdamore/tcell/v2"

func main() {
	var flags app.Flags
	flags.Register(flag.CommandLine)
	fps := flag.Int("fps", 60, "frames per second")
	clicks := flag.Bool("clicks", false, "play flip-dot clicks when the display changes")
	flag.Parse()
	logger := flags.SetupLogger()

	cfg, err := flags.LoadConfig()
	if err != nil { app.Fatal(err) }
	matrix, err := flags.NewMatrix(cfg)
	if err != nil { app.Fatal(err) }
	if *fps <= 0 { app.Fatal(errors.New("fps must be positive")) }

	screen, err := tcell.NewScreen()
	if err != nil { app.Fatal(err) }
	if err := screen.Init(); err != nil { app.Fatal(err) }
	defer screen.Fini()

	// no fatal exits past this point
	var player click.Player
	if *clicks {
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable, clicks disabled", "error", err)
		}
		defer player.Close()
	}

	display := term.NewDisplay(screen, matrix.Width(), matrix.Height(), cfg.ColorPalette(), cfg.BackgroundColor())
	display.Center(screen.Size())
	run(screen, matrix, display, &player, time.Second/time.Duration(*fps))
}

func run(screen tcell.Screen, matrix *dotmatrix.Matrix, display *term.Display, player *click.Player, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := term.PollEvents(screen, done)

	paused := false
	redraw := true
	last := time.Now()
	for {
		select {
		case event, open := <-events:
			if !open { return }
			switch event := event.(type) {
			case *tcell.EventKey:
				switch {
				case event.Key() == tcell.KeyEscape, event.Key() == tcell.KeyCtrlC:
					return
				case event.Key() == tcell.KeyRune && event.Rune() == 'q':
					return
				case event.Key() == tcell.KeyRune && event.Rune() == ' ':
					paused = !paused
				}
			case *tcell.EventResize:
				screen.Clear()
				display.Center(screen.Size())
				redraw = true
			}
		case now := <-ticker.C:
			if !paused { matrix.Tick(now.Sub(last).Seconds()) }
			last = now
			if display.Sync(matrix.Buffer()) {
				player.Click(display.ChangedFraction())
				redraw = true
			}
			if redraw {
				display.Draw()
				screen.Show()
				redraw = false
			}
		}
	}
}
