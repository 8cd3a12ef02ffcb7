package config

import (
	"fmt"
	"time"
)

// PacePreset is a named speed profile for the whole animation.
type PacePreset string

const (
	PaceCalm    PacePreset = "calm"
	PaceNormal  PacePreset = "normal"
	PaceFrantic PacePreset = "frantic"
)

// Presets lists the known pace presets in display order.
func Presets() []PacePreset {
	return []PacePreset{PaceCalm, PaceNormal, PaceFrantic}
}

// intervalForPreset returns the tick interval a preset runs at.
func intervalForPreset(preset PacePreset) (time.Duration, bool) {
	switch preset {
	case PaceCalm:
		return 150 * time.Millisecond, true
	case PaceNormal:
		return 100 * time.Millisecond, true
	case PaceFrantic:
		return 50 * time.Millisecond, true
	default:
		return 0, false
	}
}

// ApplyPreset modifies the config based on a pace preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset PacePreset) error {
	if preset == "" {
		return nil
	}

	interval, ok := intervalForPreset(preset)
	if !ok {
		return fmt.Errorf("unknown pace preset %q: %w", preset, ErrInvalid)
	}
	cfg.TickInterval = interval

	// Calmer skies twinkle less often
	switch preset {
	case PaceCalm:
		cfg.Stars.DimHold = Range{Min: 10, Max: 30}
	case PaceFrantic:
		cfg.Stars.DimHold = Range{Min: 2, Max: 10}
		cfg.Ship.FireCooldown = 2
	}
	return nil
}
