package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine"
	"github.com/vovakirdan/starship/internal/frame"
)

// ErrGridTooSmall is returned when the grid has no interior cells.
var ErrGridTooSmall = errors.New("scene: grid too small")

// shipRowsFromBottom is how far above the bottom edge the ship starts.
const shipRowsFromBottom = 10

// Scene is the initial set of routines for one animation run.
type Scene struct {
	Stars []*Blink
	Ship  *Spaceship
	Shots []*Fire
}

// Build creates the starting scene for a rows x cols grid: the star field,
// the ship near the bottom center and, if enabled, an opening shot from the
// center of the screen.
func Build(cfg config.Config, frames []frame.Frame, rows, cols int, rng *rand.Rand) (*Scene, error) {
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("building %dx%d scene: %w", rows, cols, ErrGridTooSmall)
	}

	sc := &Scene{}

	glyphs := []rune(cfg.Stars.Glyphs)
	if cfg.Stars.Count > 0 && len(glyphs) == 0 {
		return nil, fmt.Errorf("building scene: stars.glyphs: %w", config.ErrInvalid)
	}
	for i := 0; i < cfg.Stars.Count; i++ {
		// Anywhere in the interior, border excluded
		row := 1 + rng.Intn(rows-2)
		col := 1 + rng.Intn(cols-2)
		holds := Holds{
			Dim:    cfg.Stars.DimHold.Pick(rng),
			Normal: cfg.Stars.NormalHold.Pick(rng),
			Bold:   cfg.Stars.BoldHold.Pick(rng),
		}
		symbol := glyphs[rng.Intn(len(glyphs))]
		sc.Stars = append(sc.Stars, NewBlink(row, col, symbol, cfg.Stars.Offset.Pick(rng), holds))
	}

	shotSpeed := core.Position{Row: cfg.Projectile.RowSpeed, Col: cfg.Projectile.ColSpeed}

	ship, err := NewSpaceship(frames, core.Position{
		Row: float64(rows - shipRowsFromBottom),
		Col: float64(cols)/2 - 2,
	}, ShipOptions{
		Speed:        cfg.Ship.Speed,
		FrameHold:    cfg.Ship.FrameHold,
		FireCooldown: cfg.Ship.FireCooldown,
		Margin:       cfg.Margin,
		ShotSpeed:    shotSpeed,
	})
	if err != nil {
		return nil, err
	}
	sc.Ship = ship

	if cfg.Projectile.OpeningShot {
		center := core.Position{Row: float64(rows) / 2, Col: float64(cols) / 2}
		sc.Shots = append(sc.Shots, NewFire(center, shotSpeed, cfg.Margin))
	}

	return sc, nil
}

// Routines returns every routine of the scene in scheduling order:
// stars, then the ship, then shots.
func (s *Scene) Routines() []engine.Routine {
	out := make([]engine.Routine, 0, len(s.Stars)+len(s.Shots)+1)
	for _, b := range s.Stars {
		out = append(out, b)
	}
	if s.Ship != nil {
		out = append(out, s.Ship)
	}
	for _, f := range s.Shots {
		out = append(out, f)
	}
	return out
}

// Schedule builds a scene and loads it into a new scheduler.
func Schedule(cfg config.Config, frames []frame.Frame, rows, cols int, rng *rand.Rand, opts ...engine.Option) (*engine.Scheduler, *Scene, error) {
	sc, err := Build(cfg, frames, rows, cols, rng)
	if err != nil {
		return nil, nil, err
	}

	sched, err := engine.New(cfg.TickInterval, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := sched.Add(sc.Routines()...); err != nil {
		return nil, nil, err
	}
	return sched, sc, nil
}
