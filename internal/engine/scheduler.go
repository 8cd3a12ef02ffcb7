// Package engine provides the cooperative tick scheduler that drives every
// animation routine against a shared surface.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starship/internal/core"
)

var (
	// ErrNilRoutine is returned when a nil routine is added to the scheduler.
	ErrNilRoutine = errors.New("engine: nil routine")
	// ErrBadInterval is returned for a non-positive tick interval.
	ErrBadInterval = errors.New("engine: tick interval must be positive")
)

// Builder creates a scheduler loaded with a fresh scene for a rows x cols
// grid. Terminals call it again whenever the grid size changes.
type Builder func(rows, cols int) (*Scheduler, error)

// Status is what a routine reports after one step.
type Status int

const (
	// Suspended means the routine wants to be resumed next tick.
	Suspended Status = iota
	// Done means the routine finished and must be retired.
	Done
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Suspended:
		return "suspended"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Routine is one independently stateful animation entity.
// Step performs zero or more surface writes and returns. It must not block.
type Routine interface {
	Step(ctx *StepContext) Status
}

// RoutineFunc adapts an ordinary function to the Routine interface.
type RoutineFunc func(ctx *StepContext) Status

// Step calls f(ctx).
func (f RoutineFunc) Step(ctx *StepContext) Status {
	return f(ctx)
}

// Terminal is the collaborator the scheduler renders through.
type Terminal interface {
	core.Surface

	// Repaint flushes every write made during the current tick.
	Repaint()
	// SampleControls returns the directional input gathered since the last
	// call. It must not block.
	SampleControls() core.Controls
	// Beep requests an audible alert.
	Beep()
}

// Closer is implemented by terminals that can end the run on their own,
// for example when the user quits or the session disconnects.
type Closer interface {
	Closed() <-chan struct{}
}

// StepContext is handed to every routine on every tick.
type StepContext struct {
	// Surface is the shared drawing target.
	Surface core.Surface
	// Controls is sampled once per tick and shared by all routines.
	Controls core.Controls
	// Tick is the 1-based number of the tick being executed.
	Tick uint64

	term    Terminal
	spawned []Routine
}

// Beep requests an audible alert from the terminal.
func (c *StepContext) Beep() {
	if c.term != nil {
		c.term.Beep()
	}
}

// Spawn schedules a new routine. It is first stepped on the next tick.
func (c *StepContext) Spawn(r Routine) {
	if r == nil {
		return
	}
	c.spawned = append(c.spawned, r)
}

// Scheduler owns the live routine set and advances it one step per tick.
// It is not safe for concurrent use: a single goroutine drives it.
type Scheduler struct {
	interval time.Duration
	routines []Routine
	ticks    uint64
	logger   *log.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for scheduler diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a scheduler that ticks every interval.
func New(interval time.Duration, opts ...Option) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("creating scheduler with interval %s: %w", interval, ErrBadInterval)
	}

	s := &Scheduler{
		interval: interval,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Interval returns the configured tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Add appends routines to the live set. Routines are resumed in the order
// they were added.
func (s *Scheduler) Add(routines ...Routine) error {
	for i, r := range routines {
		if r == nil {
			return fmt.Errorf("adding routine %d: %w", i, ErrNilRoutine)
		}
	}
	s.routines = append(s.routines, routines...)
	return nil
}

// Len returns the number of live routines.
func (s *Scheduler) Len() int {
	return len(s.routines)
}

// Ticks returns how many ticks have been executed.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// String reports the tick counter and live routine count.
func (s *Scheduler) String() string {
	return fmt.Sprintf("tick %d | routines %d", s.ticks, len(s.routines))
}

// Tick runs one scheduling pass: sample controls, step every live routine
// once, retire the ones that finished, admit spawned routines and repaint.
func (s *Scheduler) Tick(term Terminal) {
	s.ticks++

	ctx := &StepContext{
		Surface:  term,
		Controls: term.SampleControls(),
		Tick:     s.ticks,
		term:     term,
	}

	var finished map[int]struct{}
	for i, r := range s.routines {
		if r.Step(ctx) == Done {
			if finished == nil {
				finished = make(map[int]struct{})
			}
			finished[i] = struct{}{}
		}
	}

	if len(finished) > 0 {
		live := s.routines[:0]
		for i, r := range s.routines {
			if _, ok := finished[i]; !ok {
				live = append(live, r)
			}
		}
		// Drop references held past the new length
		for i := len(live); i < len(s.routines); i++ {
			s.routines[i] = nil
		}
		s.routines = live
		s.logger.Debug("routines retired", "tick", s.ticks, "count", len(finished), "live", len(s.routines))
	}

	if len(ctx.spawned) > 0 {
		s.routines = append(s.routines, ctx.spawned...)
		s.logger.Debug("routines spawned", "tick", s.ticks, "count", len(ctx.spawned), "live", len(s.routines))
	}

	term.Repaint()
}

// Run ticks until ctx is cancelled or the terminal closes.
// Each tick sleeps for whatever is left of the interval; a tick that overruns
// is not compensated for.
func (s *Scheduler) Run(ctx context.Context, term Terminal) error {
	var closed <-chan struct{}
	if c, ok := term.(Closer); ok {
		closed = c.Closed()
	}

	timer := time.NewTimer(s.interval)
	timer.Stop()
	defer timer.Stop()

	s.logger.Debug("scheduler started", "interval", s.interval, "routines", len(s.routines))

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("scheduler stopped", "ticks", s.ticks)
			return ctx.Err()
		case <-closed:
			s.logger.Debug("terminal closed", "ticks", s.ticks)
			return nil
		default:
		}

		tickStart := time.Now()
		s.Tick(term)

		wait := s.interval - time.Since(tickStart)
		if wait <= 0 {
			continue
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			s.logger.Debug("scheduler stopped", "ticks", s.ticks)
			return ctx.Err()
		case <-closed:
			s.logger.Debug("terminal closed", "ticks", s.ticks)
			return nil
		case <-timer.C:
		}
	}
}
