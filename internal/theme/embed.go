package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

// EmbeddedPalettes contains all bundled palette files.
//
//go:embed palettes/*.toml
var EmbeddedPalettes embed.FS

// GetEmbeddedPalette retrieves a bundled palette file by name.
// Returns the TOML content and whether it was found.
func GetEmbeddedPalette(name string) ([]byte, bool) {
	data, err := EmbeddedPalettes.ReadFile("palettes/" + name + ".toml")
	if err != nil {
		return nil, false
	}
	return data, true
}

// ListEmbeddedPalettes returns names of all embedded palettes.
func ListEmbeddedPalettes() []string {
	var names []string

	entries, err := fs.ReadDir(EmbeddedPalettes, "palettes")
	if err != nil {
		return []string{string(Light), string(Dark)}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext == ".toml" {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}

	return names
}
