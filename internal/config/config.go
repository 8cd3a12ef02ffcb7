// Package config provides YAML-based configuration loading for the starship
// animation, with environment overrides and validation.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config contains every tunable of the animation.
type Config struct {
	TickInterval time.Duration    `yaml:"tick_interval"`
	Margin       int              `yaml:"margin"` // Border inset of the playable region
	Seed         int64            `yaml:"seed"`   // 0 means time-based
	Stars        StarsConfig      `yaml:"stars"`
	Ship         ShipConfig       `yaml:"ship"`
	Projectile   ProjectileConfig `yaml:"projectile"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Pick returns a uniformly random value in [Min, Max].
func (r Range) Pick(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// StarsConfig defines the blinking background.
type StarsConfig struct {
	Count      int    `yaml:"count"`
	Glyphs     string `yaml:"glyphs"`
	Offset     Range  `yaml:"offset"` // Ticks a star waits before its first draw
	DimHold    Range  `yaml:"dim_hold"`
	NormalHold Range  `yaml:"normal_hold"`
	BoldHold   Range  `yaml:"bold_hold"`
}

// ShipConfig defines the player sprite.
type ShipConfig struct {
	FrameHold    int     `yaml:"frame_hold"`    // Ticks each frame stays up
	Speed        float64 `yaml:"speed"`         // Cells moved per tick per held direction
	FireCooldown int     `yaml:"fire_cooldown"` // Minimum ticks between shots
}

// ProjectileConfig defines shot flight.
type ProjectileConfig struct {
	RowSpeed    float64 `yaml:"row_speed"`
	ColSpeed    float64 `yaml:"col_speed"`
	OpeningShot bool    `yaml:"opening_shot"` // Fire one shot from screen center at startup
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.TickInterval <= 0:
		return fmt.Errorf("tick_interval %s must be positive: %w", c.TickInterval, ErrInvalid)
	case c.Margin < 0:
		return fmt.Errorf("margin %d must not be negative: %w", c.Margin, ErrInvalid)
	case c.Stars.Count < 0:
		return fmt.Errorf("stars.count %d must not be negative: %w", c.Stars.Count, ErrInvalid)
	case c.Stars.Count > 0 && c.Stars.Glyphs == "":
		return fmt.Errorf("stars.glyphs must not be empty: %w", ErrInvalid)
	case c.Ship.FrameHold < 1:
		return fmt.Errorf("ship.frame_hold %d must be at least 1: %w", c.Ship.FrameHold, ErrInvalid)
	case c.Ship.Speed < 0:
		return fmt.Errorf("ship.speed %g must not be negative: %w", c.Ship.Speed, ErrInvalid)
	case c.Ship.FireCooldown < 0:
		return fmt.Errorf("ship.fire_cooldown %d must not be negative: %w", c.Ship.FireCooldown, ErrInvalid)
	case c.Projectile.RowSpeed == 0 && c.Projectile.ColSpeed == 0:
		return fmt.Errorf("projectile speed must not be zero: %w", ErrInvalid)
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"stars.offset", c.Stars.Offset},
		{"stars.dim_hold", c.Stars.DimHold},
		{"stars.normal_hold", c.Stars.NormalHold},
		{"stars.bold_hold", c.Stars.BoldHold},
	}
	for _, rc := range ranges {
		if rc.r.Min < 1 || rc.r.Max < rc.r.Min {
			return fmt.Errorf("%s [%d, %d] must satisfy 1 <= min <= max: %w", rc.name, rc.r.Min, rc.r.Max, ErrInvalid)
		}
	}
	return nil
}
