package config

import (
	_ "embed"
)

//go:embed defaults/ricochet.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() AppConfig {
	return AppConfig{
		Board: BoardConfig{
			Rows:    16,
			Columns: 16,
		},
		Robots: []string{"red", "green", "blue", "yellow"},
		DBPath: "~/.ricochet/history.db",
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
