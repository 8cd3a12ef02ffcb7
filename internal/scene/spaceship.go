package scene

import (
	"fmt"

	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine"
	"github.com/vovakirdan/starship/internal/frame"
)

// ShipOptions tunes a Spaceship.
type ShipOptions struct {
	Speed        float64       // Cells moved per tick per held direction
	FrameHold    int           // Ticks each frame stays up
	FireCooldown int           // Minimum ticks between shots
	Margin       int           // Border inset of the playable region
	ShotSpeed    core.Position // Velocity of spawned shots
}

// Spaceship is the player sprite. It cycles through its frames, moves with
// the controls inside the playable region and fires on request.
type Spaceship struct {
	frames []frame.Frame
	opts   ShipOptions
	anchor core.Position

	index    int    // Frame shown this tick
	held     int    // Ticks the current frame has been up
	drawn    bool   // Whether a frame is on screen
	drawnRow int    // Anchor row of the frame on screen
	drawnCol int    // Anchor column of the frame on screen
	drawnIdx int    // Index of the frame on screen
	lastShot uint64 // Tick of the last shot, 0 if none
}

var _ engine.Routine = (*Spaceship)(nil)

// NewSpaceship creates a ship anchored at start.
func NewSpaceship(frames []frame.Frame, start core.Position, opts ShipOptions) (*Spaceship, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("creating spaceship: %w", frame.ErrNoFrames)
	}
	opts.FrameHold = core.Max(opts.FrameHold, 1)
	opts.FireCooldown = core.Max(opts.FireCooldown, 0)

	fs := make([]frame.Frame, len(frames))
	copy(fs, frames)
	return &Spaceship{
		frames: fs,
		opts:   opts,
		anchor: start,
	}, nil
}

// Anchor returns the current (unrounded) top-left position of the ship.
func (s *Spaceship) Anchor() core.Position {
	return s.anchor
}

// FrameIndex returns the index of the frame drawn on the last tick.
func (s *Spaceship) FrameIndex() int {
	return s.index
}

// Step erases the previous frame, advances the frame cycle, moves the ship by
// the sampled controls and draws it. It never finishes.
func (s *Spaceship) Step(ctx *engine.StepContext) engine.Status {
	if s.drawn {
		frame.Draw(ctx.Surface, s.drawnRow, s.drawnCol, s.frames[s.drawnIdx], true)

		s.held++
		if s.held >= s.opts.FrameHold {
			s.held = 0
			s.index = (s.index + 1) % len(s.frames)
		}
	}

	f := s.frames[s.index]
	box := f.BoundingBox()
	rows, cols := ctx.Surface.Dimensions()
	bounds := core.PlayableRect(rows, cols, s.opts.Margin)

	s.anchor = core.ClampAnchor(s.anchor, ctx.Controls.Delta(s.opts.Speed), box, bounds)
	row, col := s.anchor.Cell()
	frame.Draw(ctx.Surface, row, col, f, false)
	s.drawn, s.drawnRow, s.drawnCol, s.drawnIdx = true, row, col, s.index

	if ctx.Controls.Fire && s.canFire(ctx.Tick) {
		s.lastShot = ctx.Tick
		nose := core.Position{Row: float64(row - 1), Col: float64(col + box.Cols/2)}
		ctx.Spawn(NewFire(nose, s.opts.ShotSpeed, s.opts.Margin))
	}
	return engine.Suspended
}

func (s *Spaceship) canFire(tick uint64) bool {
	if s.lastShot == 0 {
		return true
	}
	return tick-s.lastShot >= uint64(s.opts.FireCooldown)
}
