package config

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should be valid: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadFile("")
	if err != nil {
		t.Fatalf("loadFile() failed: %v", err)
	}

	def := Default()
	if cfg.TickInterval != def.TickInterval {
		t.Errorf("TickInterval = %s, expected %s", cfg.TickInterval, def.TickInterval)
	}
	if cfg.Stars != def.Stars {
		t.Errorf("Stars = %+v, expected %+v", cfg.Stars, def.Stars)
	}
	if cfg.Ship != def.Ship || cfg.Projectile != def.Projectile || cfg.Margin != def.Margin {
		t.Errorf("embedded YAML drifted from Default(): %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "tick_interval: 40ms\nstars:\n  count: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TickInterval != 40*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 40ms", cfg.TickInterval)
	}
	if cfg.Stars.Count != 7 {
		t.Errorf("Stars.Count = %d, expected 7", cfg.Stars.Count)
	}
	// Unset keys keep defaults
	if cfg.Stars.Glyphs != "+*.:" || cfg.Margin != 2 {
		t.Errorf("partial file lost defaults: glyphs=%q margin=%d", cfg.Stars.Glyphs, cfg.Margin)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".starship")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "starship.yaml"), []byte("margin: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Margin != 3 {
		t.Errorf("Margin = %d, expected 3 from user config", cfg.Margin)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("stars: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("tick_interval: 0s\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.TickInterval = 0 }},
		{"negative margin", func(c *Config) { c.Margin = -1 }},
		{"negative star count", func(c *Config) { c.Stars.Count = -5 }},
		{"empty glyphs", func(c *Config) { c.Stars.Glyphs = "" }},
		{"inverted offset", func(c *Config) { c.Stars.Offset = Range{Min: 5, Max: 2} }},
		{"zero hold", func(c *Config) { c.Stars.BoldHold = Range{Min: 0, Max: 3} }},
		{"zero frame hold", func(c *Config) { c.Ship.FrameHold = 0 }},
		{"negative ship speed", func(c *Config) { c.Ship.Speed = -1 }},
		{"negative cooldown", func(c *Config) { c.Ship.FireCooldown = -1 }},
		{"zero projectile speed", func(c *Config) { c.Projectile = ProjectileConfig{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateAllowsNoStars(t *testing.T) {
	cfg := Default()
	cfg.Stars.Count = 0
	cfg.Stars.Glyphs = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("a starless sky should be valid: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvTickInterval: "250ms",
		EnvStarCount:    "12",
		EnvMargin:       "4",
		EnvSeed:         "42",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := applyEnv(&cfg, lookup); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}

	if cfg.TickInterval != 250*time.Millisecond || cfg.Stars.Count != 12 || cfg.Margin != 4 || cfg.Seed != 42 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	for _, key := range []string{EnvTickInterval, EnvStarCount, EnvMargin, EnvSeed} {
		lookup := func(k string) (string, bool) {
			if k == key {
				return "not-a-number", true
			}
			return "", false
		}
		cfg := Default()
		if err := applyEnv(&cfg, lookup); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: applyEnv() error = %v, expected ErrInvalid", key, err)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}

	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("STARSHIP_STAR_COUNT=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// Registers cleanup of the variable; the empty value is then removed so
	// godotenv treats it as unset.
	t.Setenv(EnvStarCount, "")
	os.Unsetenv(EnvStarCount)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}
	if got := os.Getenv(EnvStarCount); got != "3" {
		t.Errorf("%s = %q, expected 3", EnvStarCount, got)
	}
}

func TestRangePick(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := Range{Min: 3, Max: 6}

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		v := r.Pick(rng)
		if v < r.Min || v > r.Max {
			t.Fatalf("Pick() = %d outside [%d, %d]", v, r.Min, r.Max)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("Pick() covered %d values, expected 4", len(seen))
	}

	if got := (Range{Min: 5, Max: 5}).Pick(rng); got != 5 {
		t.Errorf("degenerate range Pick() = %d", got)
	}
}

func TestApplyPreset(t *testing.T) {
	for _, p := range Presets() {
		cfg := Default()
		if err := ApplyPreset(&cfg, p); err != nil {
			t.Errorf("ApplyPreset(%s) failed: %v", p, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produced invalid config: %v", p, err)
		}
	}

	cfg := Default()
	if err := ApplyPreset(&cfg, PaceFrantic); err != nil {
		t.Fatal(err)
	}
	if cfg.TickInterval != 50*time.Millisecond {
		t.Errorf("frantic TickInterval = %s, expected 50ms", cfg.TickInterval)
	}

	if err := ApplyPreset(&cfg, "warp"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset error = %v, expected ErrInvalid", err)
	}
	if err := ApplyPreset(&cfg, ""); err != nil {
		t.Errorf("empty preset should be a no-op, got %v", err)
	}
}
