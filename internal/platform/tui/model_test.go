package tui

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/engine"
	"github.com/vovakirdan/starship/internal/frame"
	"github.com/vovakirdan/starship/internal/scene"
)

type countingAlerter struct {
	beeps int
}

func (a *countingAlerter) Beep() { a.beeps++ }

func testBuilder(t *testing.T) SceneBuilder {
	t.Helper()
	frames, err := frame.Defaults()
	if err != nil {
		t.Fatalf("frame.Defaults() failed: %v", err)
	}
	cfg := config.Default()
	return func(rows, cols int) (*engine.Scheduler, error) {
		sched, _, err := scene.Schedule(cfg, frames, rows, cols, rand.New(rand.NewSource(1)))
		return sched, err
	}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func TestModelBuildsSceneAtInitialSize(t *testing.T) {
	m := NewModel(testBuilder(t), Options{Title: "starship", Width: 80, Height: 25})

	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}
	term := m.Terminal()
	if term == nil {
		t.Fatal("expected a running scene")
	}
	if rows, cols := term.Dimensions(); rows != 24 || cols != 80 {
		t.Errorf("Dimensions() = (%d, %d), expected (24, 80) with one help row", rows, cols)
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}

func TestModelTickRepaints(t *testing.T) {
	alert := &countingAlerter{}
	m := NewModel(testBuilder(t), Options{Title: "starship", Width: 80, Height: 25, Alerter: alert})

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	if m.Ticks() != 5 {
		t.Errorf("Ticks() = %d, expected 5", m.Ticks())
	}
	if alert.beeps != 1 {
		t.Errorf("beeps = %d, expected 1 for the opening shot", alert.beeps)
	}

	view := m.View()
	if !strings.Contains(view, "starship") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "tick 5") {
		t.Error("view should contain the tick status")
	}
}

func TestModelKeysBecomeControls(t *testing.T) {
	m := NewModel(testBuilder(t), Options{Width: 80, Height: 25})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if cmd != nil {
		t.Error("a movement key should not produce a command")
	}
	m = next.(Model)

	term := m.Terminal()
	if !term.input.Has(core.ActionLeft) {
		t.Fatal("left should be recorded for the next tick")
	}

	m = tick(t, m)
	if term.input.Has(core.ActionLeft) {
		t.Error("input should be cleared once sampled")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testBuilder(t), Options{Width: 80, Height: 25})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := NewModel(testBuilder(t), Options{Width: 80, Height: 25})
	if !strings.Contains(m.View(), "fire") {
		t.Fatal("help line should be visible by default")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = next.(Model)
	if strings.Contains(m.View(), "fire") {
		t.Error("help line should be hidden after toggling")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(testBuilder(t), Options{Width: 80, Height: 25})
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 2, Height: 2})
	m = next.(Model)
	if m.Terminal() != nil {
		t.Error("a tiny window should stop the scene")
	}
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("unexpected view for tiny window: %q", m.View())
	}
	// Ticks keep coming while idle
	m = tick(t, m)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	if m.Terminal() == nil {
		t.Fatal("growing the window should rebuild the scene")
	}
	if rows, cols := m.Terminal().Dimensions(); rows != 19 || cols != 60 {
		t.Errorf("Dimensions() = (%d, %d), expected (19, 60)", rows, cols)
	}
	if m.Ticks() != 0 {
		t.Errorf("rebuilt scene should start at tick 0, got %d", m.Ticks())
	}
}

func TestModelBuildFailureIsFatal(t *testing.T) {
	boom := errors.New("boom")
	m := NewModel(func(rows, cols int) (*engine.Scheduler, error) {
		return nil, boom
	}, Options{Width: 80, Height: 25})

	if !errors.Is(m.Err(), boom) {
		t.Errorf("Err() = %v, expected wrapped boom", m.Err())
	}
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should quit on a fatal error")
	} else if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Init() should return tea.Quit")
	}
}

// slowBuilder schedules one routine that takes work to step.
func slowBuilder(interval, work time.Duration) SceneBuilder {
	return func(rows, cols int) (*engine.Scheduler, error) {
		sched, err := engine.New(interval)
		if err != nil {
			return nil, err
		}
		slow := engine.RoutineFunc(func(*engine.StepContext) engine.Status {
			time.Sleep(work)
			return engine.Suspended
		})
		return sched, sched.Add(slow)
	}
}

func TestModelTickPacedFromTickStart(t *testing.T) {
	m := NewModel(slowBuilder(100*time.Millisecond, 60*time.Millisecond), Options{Width: 80, Height: 25})

	begin := time.Now()
	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if _, ok := cmd().(TickMsg); !ok {
		t.Fatal("next tick command should produce a TickMsg")
	}
	elapsed := time.Since(begin)

	// One interval from the start of the tick, not work + interval
	if elapsed < 90*time.Millisecond || elapsed > 140*time.Millisecond {
		t.Errorf("next tick fired %s after the tick began, expected about 100ms", elapsed)
	}
}

func TestModelOverrunTickFollowsImmediately(t *testing.T) {
	m := NewModel(slowBuilder(10*time.Millisecond, 30*time.Millisecond), Options{Width: 80, Height: 25})

	_, cmd := m.Update(TickMsg{})
	waitStart := time.Now()
	cmd()
	if wait := time.Since(waitStart); wait > 15*time.Millisecond {
		t.Errorf("overrun tick waited %s for the next one, expected no wait", wait)
	}
}

func TestModelRingsBellWithoutAlerter(t *testing.T) {
	m := NewModel(testBuilder(t), Options{Width: 80, Height: 25})

	// The opening shot launches on the first tick
	m = tick(t, m)
	if strings.Count(m.View(), "\a") != 1 {
		t.Fatalf("view after launch should carry one BEL, got %d", strings.Count(m.View(), "\a"))
	}

	m = tick(t, m)
	if strings.Contains(m.View(), "\a") {
		t.Error("bell should not repeat on the next tick")
	}
}
