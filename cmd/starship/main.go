// starship animates a blinking starfield and a steerable rocket in the
// terminal.
//
// Usage:
//
//	starship play             - Run the animation in this terminal
//	starship serve            - Start SSH server so others can watch and fly
//	starship frames [dir]     - List and preview rocket frame art
//	starship backends         - List available terminal backends
//
// Global flags:
//
//	--config <path>   - Config YAML (default: search ~/.starship, ./configs)
//	--frames <dir>    - Frame art directory (default: ~/.starship/frames or built-in)
//	--seed <value>    - RNG seed for reproducible star layout
//	--preset <name>   - Pace preset: calm, normal, frantic
//	--debug           - Enable debug logging
//	--log-file <path> - Write logs to a file
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/engine"
	"github.com/vovakirdan/starship/internal/frame"
	"github.com/vovakirdan/starship/internal/scene"

	// Import backends to register them
	_ "github.com/vovakirdan/starship/internal/platform/tcellterm"
	_ "github.com/vovakirdan/starship/internal/platform/tui"
)

var (
	// Global flags
	flagConfig  string
	flagFrames  string
	flagSeed    int64
	flagPreset  string
	flagDebug   bool
	flagLogFile string
	flagEnvFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starship",
	Short: "Starship - a starfield and a rocket in your terminal",
	Long: `Starship draws a field of blinking stars inside a bordered box,
with a rocket you can steer and shots that fly off the top of the screen.

Available commands:
  play      - Run the animation in this terminal
  serve     - Start SSH server for remote sessions
  frames    - List and preview rocket frame art
  backends  - List terminal backends

Examples:
  starship play
  starship play --backend tcell --sound
  starship play --preset frantic --seed 42
  starship serve --ssh :2222
  starship frames ./my-rocket`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagFrames, "frames", "", "Directory of rocket frame art (*.txt)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time based)")
	presets := make([]string, 0, len(config.Presets()))
	for _, p := range config.Presets() {
		presets = append(presets, string(p))
	}
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Pace preset: "+strings.Join(presets, ", "))
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with STARSHIP_* overrides")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(backendsCmd)
}

// newLogger creates the process logger. fallback receives logs when no
// --log-file is given.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "starship",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadSettings resolves the config and frame art from flags, files and the
// environment.
func loadSettings(logger *log.Logger) (config.Config, []frame.Frame, error) {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := config.ApplyPreset(&cfg, config.PacePreset(flagPreset)); err != nil {
		return config.Config{}, nil, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	frames, err := frame.Load(flagFrames)
	if err != nil {
		return config.Config{}, nil, err
	}

	logger.Debug("settings loaded",
		"interval", cfg.TickInterval,
		"stars", cfg.Stars.Count,
		"seed", cfg.Seed,
		"frames", len(frames),
	)
	return cfg, frames, nil
}

// newBuilder returns a scene builder. A zero seed gives every scene its own
// time-based layout; otherwise every scene is identical.
func newBuilder(cfg config.Config, frames []frame.Frame, logger *log.Logger) engine.Builder {
	return func(rows, cols int) (*engine.Scheduler, error) {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sched, _, err := scene.Schedule(cfg, frames, rows, cols,
			rand.New(rand.NewSource(seed)),
			engine.WithLogger(logger),
		)
		return sched, err
	}
}
