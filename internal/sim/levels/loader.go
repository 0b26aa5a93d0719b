package levels

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chips/internal/sim/levels/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	logger *log.Logger
}

// NewLoader creates a new level loader. A nil logger discards warnings.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, logger: logger}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped with a warning. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			l.logger.Warn("skipping level", "path", path, "err", err)
			return nil
		}
		if err := level.Validate(); err != nil {
			l.logger.Warn("skipping level", "path", path, "err", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	l.logger.Debug("levels loaded", "root", l.Root, "count", len(levels))

	return levels, nil
}

// LoadFile loads a single level file. The ID falls back to the file name
// without its extension.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return ParseBytes(data, filepath.Ext(path), path)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// ParseBytes decodes level contents in the format registered for ext.
// path is recorded on the level and used for the fallback ID; it may be empty.
func ParseBytes(data []byte, ext, path string) (Level, error) {
	parsed, err := formats.Parse(data, strings.ToLower(ext))
	if err != nil {
		if path == "" {
			return Level{}, err
		}
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if parsed.ID == "" && path != "" {
		base := filepath.Base(path)
		parsed.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return Level{Level: parsed, FilePath: path}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
