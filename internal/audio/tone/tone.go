// Package tone plays launch alerts through the system speaker with beep.
package tone

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/starship/internal/audio"
)

const (
	sampleRate = beep.SampleRate(44100)

	defaultFrequency = 880
	defaultDuration  = 50 * time.Millisecond
)

var _ audio.Alerter = (*Tone)(nil)

// Tone plays a short sine blip through the system speaker. It satisfies
// audio.Alerter.
type Tone struct {
	mu          sync.Mutex
	frequency   float64
	duration    time.Duration
	volume      float64 // In beep's exponential scale, 0 is unchanged
	initialized bool
}

// Option configures a Tone.
type Option func(*Tone)

// WithFrequency sets the pitch in Hz.
func WithFrequency(hz float64) Option {
	return func(t *Tone) { t.frequency = hz }
}

// WithDuration sets how long each blip lasts.
func WithDuration(d time.Duration) Option {
	return func(t *Tone) { t.duration = d }
}

// WithVolume sets the relative volume. Negative values are quieter.
func WithVolume(v float64) Option {
	return func(t *Tone) { t.volume = v }
}

// New creates a tone alerter. Call Init before the first Beep.
func New(opts ...Option) *Tone {
	t := &Tone{
		frequency: defaultFrequency,
		duration:  defaultDuration,
		volume:    -1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init sets up the speaker. Safe to call more than once.
func (t *Tone) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	t.initialized = true
	return nil
}

// Beep queues one blip. It is a no-op until Init has succeeded.
func (t *Tone) Beep() {
	t.mu.Lock()
	ready := t.initialized
	t.mu.Unlock()
	if !ready {
		return
	}

	s, err := t.stream()
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close stops playback and releases the speaker.
func (t *Tone) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	t.initialized = false
}

// stream builds the finite streamer for one blip.
func (t *Tone) stream() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.frequency)
	if err != nil {
		return nil, fmt.Errorf("generating %gHz tone: %w", t.frequency, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.duration), sine),
		Base:     2,
		Volume:   t.volume,
	}, nil
}
