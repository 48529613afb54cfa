package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Dir is the on-disk directory whose files override the embedded copies.
const Dir = "levels"

// Load reads a level by name (".yaml" optional), preferring a copy on disk.
func Load(name string) (*Level, error) {
	clean := cleanLevelName(name)
	data, err := readOverride(clean, LevelsFS)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
		}
		return nil, fmt.Errorf("levels: load %s: %w", clean, err)
	}
	return Parse(strings.TrimSuffix(clean, ".yaml"), data)
}

// LoadScript reads a fire-condition script by name, preferring a copy on disk.
func LoadScript(name string) ([]byte, error) {
	return readOverride(cleanScriptPath(name), ScriptsFS)
}

// Names lists the embedded levels in order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isSpecFile(e.Name()) {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(out)
	return out
}

func readOverride(clean string, embedded fs.FS) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fs.ReadFile(embedded, clean)
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, Dir+"/")
	if !isSpecFile(s) {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(strings.TrimSpace(path))
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	if !isScriptFile(s) {
		s += ".tengo"
	}
	return "scripts/" + s
}
