// Package formats provides tile set file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ricochet/internal/board"
	"github.com/vovakirdan/tui-ricochet/internal/geom"
)

// YAMLTileSet represents the YAML structure for a tile set file.
type YAMLTileSet struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Size      YAMLSize     `yaml:"size"`
	Walls     []YAMLWall   `yaml:"walls,omitempty"`
	Quadrants [][]YAMLWall `yaml:"quadrants,omitempty"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// YAMLWall represents one wall in YAML format.
type YAMLWall struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Side string `yaml:"side"` // up, down, left or right
}

// TileSet is a parsed tile set ready for validation.
type TileSet struct {
	ID        string
	Name      string
	Dim       geom.Dimensions
	Walls     []board.Wall
	Quadrants [][]board.Wall
}

// ParseYAML parses a YAML tile set file.
// A wall with an unknown side is an error.
func ParseYAML(data []byte) (TileSet, error) {
	var yt YAMLTileSet
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return TileSet{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	name := yt.Name
	if name == "" {
		name = yt.ID
	}

	ts := TileSet{
		ID:   yt.ID,
		Name: name,
		Dim:  geom.Dim(yt.Size.Rows, yt.Size.Columns),
	}

	walls, err := convertWalls(yt.Walls)
	if err != nil {
		return TileSet{}, err
	}
	ts.Walls = walls

	for i, q := range yt.Quadrants {
		walls, err := convertWalls(q)
		if err != nil {
			return TileSet{}, fmt.Errorf("quadrant %d: %w", i, err)
		}
		ts.Quadrants = append(ts.Quadrants, walls)
	}

	return ts, nil
}

// MarshalYAML renders a tile set in the same format ParseYAML reads.
func MarshalYAML(ts TileSet) ([]byte, error) {
	yt := YAMLTileSet{
		ID:    ts.ID,
		Name:  ts.Name,
		Size:  YAMLSize{Rows: ts.Dim.Rows, Columns: ts.Dim.Columns},
		Walls: toYAMLWalls(ts.Walls),
	}
	for _, q := range ts.Quadrants {
		yt.Quadrants = append(yt.Quadrants, toYAMLWalls(q))
	}
	return yaml.Marshal(yt)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func convertWalls(in []YAMLWall) ([]board.Wall, error) {
	out := make([]board.Wall, 0, len(in))
	for _, yw := range in {
		side, err := geom.ParseWay(yw.Side)
		if err != nil {
			return nil, fmt.Errorf("wall (%d,%d): %w", yw.X, yw.Y, err)
		}
		out = append(out, board.W(yw.X, yw.Y, side))
	}
	return out, nil
}

func toYAMLWalls(in []board.Wall) []YAMLWall {
	out := make([]YAMLWall, 0, len(in))
	for _, w := range in {
		out = append(out, YAMLWall{X: w.Pos.X, Y: w.Pos.Y, Side: w.Side.String()})
	}
	return out
}
