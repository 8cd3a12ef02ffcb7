package scene

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine/enginetest"
	"github.com/vovakirdan/starship/internal/frame"
)

func defaultFrames(t *testing.T) []frame.Frame {
	t.Helper()
	frames, err := frame.Defaults()
	if err != nil {
		t.Fatalf("frame.Defaults() failed: %v", err)
	}
	return frames
}

func TestBuild(t *testing.T) {
	cfg := config.Default()
	sc, err := Build(cfg, defaultFrames(t), 24, 80, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if len(sc.Stars) != cfg.Stars.Count {
		t.Errorf("got %d stars, expected %d", len(sc.Stars), cfg.Stars.Count)
	}
	for i, b := range sc.Stars {
		if b.Row < 1 || b.Row > 22 || b.Col < 1 || b.Col > 78 {
			t.Errorf("star %d at (%d, %d) is outside the interior", i, b.Row, b.Col)
		}
		if !strings.ContainsRune(cfg.Stars.Glyphs, b.Symbol) {
			t.Errorf("star %d has glyph %q outside the glyph set", i, b.Symbol)
		}
		if b.Offset < cfg.Stars.Offset.Min || b.Offset > cfg.Stars.Offset.Max {
			t.Errorf("star %d offset %d outside %+v", i, b.Offset, cfg.Stars.Offset)
		}
	}

	if got := sc.Ship.Anchor(); got != (core.Position{Row: 14, Col: 38}) {
		t.Errorf("ship starts at %+v, expected (14, 38)", got)
	}
	if len(sc.Shots) != 1 {
		t.Fatalf("expected the opening shot, got %d shots", len(sc.Shots))
	}
	if got := sc.Shots[0].Start; got != (core.Position{Row: 12, Col: 40}) {
		t.Errorf("opening shot starts at %+v, expected (12, 40)", got)
	}
	if n := len(sc.Routines()); n != cfg.Stars.Count+2 {
		t.Errorf("Routines() returned %d, expected %d", n, cfg.Stars.Count+2)
	}
}

func TestBuildDeterministic(t *testing.T) {
	cfg := config.Default()
	frames := defaultFrames(t)

	a, err := Build(cfg, frames, 30, 100, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(cfg, frames, 30, 100, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Stars {
		if *a.Stars[i] != *b.Stars[i] {
			t.Fatalf("star %d differs under the same seed: %+v vs %+v", i, *a.Stars[i], *b.Stars[i])
		}
	}
}

func TestBuildErrors(t *testing.T) {
	cfg := config.Default()

	if _, err := Build(cfg, defaultFrames(t), 2, 80, rand.New(rand.NewSource(1))); !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("Build() on a 2-row grid: error = %v, expected ErrGridTooSmall", err)
	}
	if _, err := Build(cfg, nil, 24, 80, rand.New(rand.NewSource(1))); !errors.Is(err, frame.ErrNoFrames) {
		t.Errorf("Build() without frames: error = %v, expected ErrNoFrames", err)
	}

	cfg.Stars.Glyphs = ""
	if _, err := Build(cfg, defaultFrames(t), 24, 80, rand.New(rand.NewSource(1))); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Build() with no glyphs: error = %v, expected ErrInvalid", err)
	}
}

func TestBuildWithoutOpeningShot(t *testing.T) {
	cfg := config.Default()
	cfg.Projectile.OpeningShot = false
	cfg.Stars.Count = 0

	sc, err := Build(cfg, defaultFrames(t), 24, 80, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Routines()) != 1 {
		t.Errorf("expected only the ship, got %d routines", len(sc.Routines()))
	}
}

func TestScheduleRunsWholeScene(t *testing.T) {
	const rows, cols = 24, 80
	cfg := config.Default()
	term := enginetest.New(rows, cols)
	top, bottom := term.Screen.Row(0), term.Screen.Row(rows-1)

	sched, sc, err := Schedule(cfg, defaultFrames(t), rows, cols, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}
	if sched.Len() != len(sc.Routines()) {
		t.Fatalf("scheduler has %d routines, scene has %d", sched.Len(), len(sc.Routines()))
	}

	// Long enough for the opening shot to leave the screen
	for i := 0; i < 60; i++ {
		sched.Tick(term)
	}

	if sched.Len() != cfg.Stars.Count+1 {
		t.Errorf("Len() = %d, expected stars and ship only", sched.Len())
	}
	if term.Beeps != 1 {
		t.Errorf("Beeps = %d, expected 1 for the opening shot", term.Beeps)
	}
	if term.Screen.Row(0) != top || term.Screen.Row(rows-1) != bottom {
		t.Error("border was overwritten")
	}
	for r := 0; r < rows; r++ {
		row := term.Screen.Row(r)
		if []rune(row)[0] != '│' && r > 0 && r < rows-1 {
			t.Errorf("left border damaged on row %d: %q", r, row)
		}
	}
}
