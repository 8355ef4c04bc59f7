// Package config provides YAML-based application configuration loading for
// the ricochet board: board size, robots, catalog location and SSH settings.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-ricochet/internal/geom"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

// AppConfig contains all application configuration.
type AppConfig struct {
	Board       BoardConfig `yaml:"board"`
	Robots      []string    `yaml:"robots"`
	TileSetsDir string      `yaml:"tilesets_dir"`
	DBPath      string      `yaml:"db_path"`
	SSH         SSHConfig   `yaml:"ssh"`
}

// BoardConfig defines the board size.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Dim returns the configured board dimensions.
func (c AppConfig) Dim() geom.Dimensions {
	return geom.Dim(c.Board.Rows, c.Board.Columns)
}

// RobotIDs resolves the configured robot names.
func (c AppConfig) RobotIDs() ([]world.RobotID, error) {
	return world.ParseRobots(c.Robots)
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c AppConfig) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMinutes) * time.Minute
}

// Validate checks the configuration is playable.
func (c AppConfig) Validate() error {
	if !c.Dim().Usable() {
		return fmt.Errorf("config: board %v is smaller than 2x2", c.Dim())
	}
	ids, err := c.RobotIDs()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(ids) == 0 {
		return fmt.Errorf("config: at least one robot is required")
	}
	if len(ids) > c.Dim().Area() {
		return fmt.Errorf("config: %d robots do not fit on a %v board", len(ids), c.Dim())
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: negative ssh idle timeout")
	}
	return nil
}
