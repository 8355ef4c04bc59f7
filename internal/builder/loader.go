package builder

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-ricochet/internal/builder/formats"
)

//go:embed tilesets/*.yaml
var builtinTileSets embed.FS

// Loader handles loading tile sets from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new tile set loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all tile set files.
// Invalid files are skipped. Returns tile sets sorted by ID.
func (l *Loader) LoadAll() ([]TileSet, error) {
	var sets []TileSet

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		ts, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		sets = append(sets, ts)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(sets)
	return sets, nil
}

// LoadFile loads and validates a single tile set file.
func (l *Loader) LoadFile(path string) (TileSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TileSet{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ts, err := parse(data, filepath.Ext(path))
	if err != nil {
		return TileSet{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	ts.FilePath = path
	return ts, nil
}

// LoadByID loads a specific tile set by ID.
func (l *Loader) LoadByID(id string) (TileSet, error) {
	sets, err := l.LoadAll()
	if err != nil {
		return TileSet{}, err
	}

	for _, ts := range sets {
		if ts.ID == id {
			return ts, nil
		}
	}

	return TileSet{}, fmt.Errorf("%w: %s", ErrUnknownTileSet, id)
}

// LoadEmbedded returns the tile sets compiled into the binary.
func LoadEmbedded() ([]TileSet, error) {
	var sets []TileSet

	err := fs.WalkDir(builtinTileSets, "tilesets", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := builtinTileSets.ReadFile(path)
		if err != nil {
			return err
		}
		ts, err := parse(data, filepath.Ext(path))
		if err != nil {
			return fmt.Errorf("built-in %s: %w", path, err)
		}
		sets = append(sets, ts)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading built-in tile sets: %w", err)
	}

	sortByID(sets)
	return sets, nil
}

// LoadCatalog returns the built-in tile sets merged with those found under
// dir. A tile set in dir replaces a built-in one with the same ID.
// An empty dir returns the built-in catalog only.
func LoadCatalog(dir string) ([]TileSet, error) {
	sets, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return sets, nil
	}

	custom, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(sets))
	for i, ts := range sets {
		byID[ts.ID] = i
	}
	for _, ts := range custom {
		if i, ok := byID[ts.ID]; ok {
			sets[i] = ts
			continue
		}
		sets = append(sets, ts)
	}

	sortByID(sets)
	return sets, nil
}

func parse(data []byte, ext string) (TileSet, error) {
	var parsed formats.TileSet
	var err error

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	default:
		return TileSet{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return TileSet{}, err
	}

	ts := TileSet{
		ID:        parsed.ID,
		Name:      parsed.Name,
		Dim:       parsed.Dim,
		Walls:     parsed.Walls,
		Quadrants: parsed.Quadrants,
	}
	if err := ts.Validate(); err != nil {
		return TileSet{}, err
	}
	return ts, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func sortByID(sets []TileSet) {
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].ID < sets[j].ID
	})
}

// Encode renders ts in the YAML tile set format that LoadFile reads.
func Encode(ts TileSet) ([]byte, error) {
	data, err := formats.MarshalYAML(formats.TileSet{
		ID:        ts.ID,
		Name:      ts.Name,
		Dim:       ts.Dim,
		Walls:     ts.Walls,
		Quadrants: ts.Quadrants,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding tile set %s: %w", ts.ID, err)
	}
	return data, nil
}
