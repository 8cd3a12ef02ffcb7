package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starship/internal/audio"
	"github.com/vovakirdan/starship/internal/audio/tone"
	"github.com/vovakirdan/starship/internal/registry"
)

var (
	flagBackend string
	flagSound   bool
	flagTitle   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the animation in this terminal",
	Long: `Draw the starfield and rocket in the current terminal.

Controls:
  Arrows/WASD/HJKL - Move the rocket
  Space            - Fire
  ?                - Toggle help (tea backend)
  Q/Esc/Ctrl+C     - Quit

Pace presets:
  calm    - Slow ticks, long dim phases
  normal  - Config values
  frantic - Fast ticks, short dim phases, quicker fire

Examples:
  starship play
  starship play --backend tcell
  starship play --sound
  starship play --preset calm --config ./my-starship.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend (see 'starship backends')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a tone on launch instead of the terminal bell")
	playCmd.Flags().StringVar(&flagTitle, "title", "starship", "Title drawn in the top border")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	run, err := registry.Get(flagBackend)
	if err != nil {
		return fmt.Errorf("%w (run 'starship backends' to list them)", err)
	}

	// The UI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, frames, err := loadSettings(logger)
	if err != nil {
		return err
	}

	// Get terminal size early so the first scene matches the window
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	alerter, closeAlerter := newAlerter(flagSound, tone.New(), logger)
	defer closeAlerter()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", flagBackend, "width", width, "height", height)
	err = run(ctx, newBuilder(cfg, frames, logger), registry.Options{
		Title:   flagTitle,
		Width:   width,
		Height:  height,
		Alerter: alerter,
		Logger:  logger,
	})
	if err != nil && ctx.Err() != nil {
		// Interrupted by a signal
		return nil
	}
	return err
}

// speaker is a launch alert that needs the audio device.
type speaker interface {
	audio.Alerter
	Init() error
	Close()
}

// newAlerter returns s when sound is wanted and the device opens. Otherwise
// it returns nil, which makes every backend ring the terminal bell.
func newAlerter(sound bool, s speaker, logger *log.Logger) (audio.Alerter, func()) {
	if !sound {
		return nil, func() {}
	}
	if err := s.Init(); err != nil {
		logger.Warn("audio unavailable, using terminal bell", "error", err)
		return nil, func() {}
	}
	return s, s.Close
}
