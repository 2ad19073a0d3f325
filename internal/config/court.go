package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCourt is returned when a court layout fails validation.
var ErrInvalidCourt = errors.New("config: invalid court")

// CourtConfig describes a court layout: floor, walls, hoops and spawn points.
// Coordinates are in meters, y up, z along the court length.
type CourtConfig struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Width       float64      `yaml:"width"`  // x extent
	Length      float64      `yaml:"length"` // z extent
	WallHeight  float64      `yaml:"wall_height"`
	BallSpawn   Position     `yaml:"ball_spawn"`
	PlayerStart Position     `yaml:"player_start"`
	PlayerYaw   float64      `yaml:"player_yaw_degrees"` // 0 faces +z
	Hoops       []HoopConfig `yaml:"hoops"`
}

// HoopConfig is one basket: a rim ring and its backboard.
type HoopConfig struct {
	Name      string   `yaml:"name"`
	Rim       Position `yaml:"rim"`
	RimRadius float64  `yaml:"rim_radius"`
	Backboard BoxSpec  `yaml:"backboard"`
}

// BoxSpec is an axis-aligned box given by its center and full size.
type BoxSpec struct {
	Center Position `yaml:"center"`
	Size   Position `yaml:"size"`
}

// ParseCourt decodes a court layout from YAML and validates it.
func ParseCourt(data []byte) (CourtConfig, error) {
	var c CourtConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse court: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// LoadCourtFile reads a court layout from disk.
func LoadCourtFile(path string) (CourtConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CourtConfig{}, fmt.Errorf("config: read court %s: %w", path, err)
	}
	return ParseCourt(data)
}

// Validate checks that the court can be built.
func (c CourtConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidCourt)
	}
	if c.Width <= 0 || c.Length <= 0 {
		return fmt.Errorf("%w: %s: width and length must be positive", ErrInvalidCourt, c.ID)
	}
	if len(c.Hoops) == 0 {
		return fmt.Errorf("%w: %s: no hoops", ErrInvalidCourt, c.ID)
	}
	for _, h := range c.Hoops {
		if h.RimRadius <= 0 {
			return fmt.Errorf("%w: %s: hoop %q has no rim radius", ErrInvalidCourt, c.ID, h.Name)
		}
	}
	if !c.inside(c.BallSpawn) || !c.inside(c.PlayerStart) {
		return fmt.Errorf("%w: %s: spawn point outside the court", ErrInvalidCourt, c.ID)
	}
	return nil
}

func (c CourtConfig) inside(p Position) bool {
	return p.X > -c.Width/2 && p.X < c.Width/2 && p.Z > -c.Length/2 && p.Z < c.Length/2
}
