package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestSeconds(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		d        Difficulty
		expected int
	}{
		{DifficultyEasy, 90},
		{DifficultyMedium, 60},
		{DifficultyHard, 30},
		{Difficulty("bogus"), 60},
	}
	for _, tt := range tests {
		if got := cfg.Seconds(tt.d); got != tt.expected {
			t.Errorf("Seconds(%q) = %d, expected %d", tt.d, got, tt.expected)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"MEDIUM", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownDifficulty) {
				t.Errorf("ParseDifficulty(%q) error = %v, expected ErrUnknownDifficulty", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParseDifficulty(%q) = %q, %v, expected %q", tt.in, got, err, tt.expected)
		}
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hoops.yaml")
	data := []byte("difficulty:\n  hard: 15\nscoring:\n  points_per_basket: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Difficulty.Hard != 15 {
		t.Errorf("Difficulty.Hard = %d, expected 15", cfg.Difficulty.Hard)
	}
	if cfg.Difficulty.Easy != 90 {
		t.Errorf("unset keys should keep defaults, Difficulty.Easy = %d", cfg.Difficulty.Easy)
	}
	if cfg.Scoring.PointsPerBasket != 3 {
		t.Errorf("PointsPerBasket = %d, expected 3", cfg.Scoring.PointsPerBasket)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("throw:\n  charge_scale: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero charge scale error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".hoops", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hoops.yaml"), []byte("difficulty:\n  easy: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Difficulty.Easy != 120 {
		t.Errorf("Difficulty.Easy = %d, expected 120 from user config", cfg.Difficulty.Easy)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load without files = %+v, expected defaults", cfg)
	}
}

func TestParseCourt(t *testing.T) {
	data := []byte(`
id: mini
name: Mini
width: 10
length: 20
ball_spawn: {x: 0, y: 2, z: 0}
player_start: {x: 0, y: 1, z: -3}
hoops:
  - name: north
    rim: {x: 0, y: 3, z: 8}
    rim_radius: 0.23
`)
	court, err := ParseCourt(data)
	if err != nil {
		t.Fatalf("ParseCourt: %v", err)
	}
	if court.ID != "mini" || len(court.Hoops) != 1 {
		t.Errorf("ParseCourt = %+v, expected mini with one hoop", court)
	}
	if got := court.Hoops[0].Rim.Vec3().Z(); got != 8 {
		t.Errorf("rim z = %v, expected 8", got)
	}
}

func TestCourtValidate(t *testing.T) {
	valid := CourtConfig{
		ID:          "c",
		Width:       10,
		Length:      20,
		BallSpawn:   Position{Y: 2},
		PlayerStart: Position{Y: 1},
		Hoops:       []HoopConfig{{Name: "h", RimRadius: 0.2}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid court rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *CourtConfig)
	}{
		{"no id", func(c *CourtConfig) { c.ID = "" }},
		{"zero width", func(c *CourtConfig) { c.Width = 0 }},
		{"no hoops", func(c *CourtConfig) { c.Hoops = nil }},
		{"flat rim", func(c *CourtConfig) { c.Hoops = []HoopConfig{{Name: "h"}} }},
		{"spawn outside", func(c *CourtConfig) { c.BallSpawn.Z = 50 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			c.Hoops = append([]HoopConfig(nil), valid.Hoops...)
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidCourt) {
				t.Errorf("Validate() = %v, expected ErrInvalidCourt", err)
			}
		})
	}
}
