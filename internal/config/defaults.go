package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/starship.yaml
var defaultStarshipYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickInterval: 100 * time.Millisecond,
		Margin:       2,
		Stars: StarsConfig{
			Count:      100,
			Glyphs:     "+*.:",
			Offset:     Range{Min: 1, Max: 25},
			DimHold:    Range{Min: 5, Max: 20},
			NormalHold: Range{Min: 1, Max: 5},
			BoldHold:   Range{Min: 2, Max: 6},
		},
		Ship: ShipConfig{
			FrameHold:    1,
			Speed:        1.0,
			FireCooldown: 5,
		},
		Projectile: ProjectileConfig{
			RowSpeed:    -0.3,
			ColSpeed:    0,
			OpeningShot: true,
		},
	}
}
