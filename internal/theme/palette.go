package theme

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// Palette is the set of colors used to draw one theme.
type Palette struct {
	Name       string `toml:"name"`
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Accent     string `toml:"accent"`   // active mode tab, enabled buttons
	Muted      string `toml:"muted"`    // separators, help text
	Tick       string `toml:"tick"`     // highlighted field
	Disabled   string `toml:"disabled"` // disabled buttons
}

// Styles are the lipgloss styles derived from a Palette.
type Styles struct {
	App      lipgloss.Style
	Digit    lipgloss.Style
	Tick     lipgloss.Style
	Sep      lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Button   lipgloss.Style
	ButtonOn lipgloss.Style
	Help     lipgloss.Style
}

// Styles builds the render styles for p.
func (p Palette) Styles() Styles {
	bg := lipgloss.Color(p.Background)
	fg := lipgloss.Color(p.Foreground)

	base := lipgloss.NewStyle().Background(bg).Foreground(fg)

	return Styles{
		App:      base.Padding(1, 2),
		Digit:    base.Bold(true),
		Tick:     base.Bold(true).Foreground(lipgloss.Color(p.Tick)),
		Sep:      base.Foreground(lipgloss.Color(p.Muted)),
		Tab:      base.Foreground(lipgloss.Color(p.Muted)).Padding(0, 1),
		TabOn:    base.Bold(true).Foreground(lipgloss.Color(p.Accent)).Underline(true).Padding(0, 1),
		Button:   base.Foreground(lipgloss.Color(p.Disabled)).Padding(0, 1),
		ButtonOn: base.Bold(true).Foreground(lipgloss.Color(p.Accent)).Padding(0, 1),
		Help:     base.Foreground(lipgloss.Color(p.Muted)),
	}
}

// PalettesDir returns the user palette override directory.
func PalettesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "tickr", "palettes"), nil
}

// ParsePalette decodes a TOML palette.
func ParsePalette(data []byte) (Palette, error) {
	var p Palette
	if err := toml.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("failed to parse palette: %w", err)
	}
	return p, nil
}

// LoadPalette loads the palette for t.
// Palette resolution order:
//  1. User palettes directory (~/.config/tickr/palettes/<theme>.toml)
//  2. Embedded palettes
//
// Fields missing from a user palette fall back to the embedded one.
func LoadPalette(t Theme, logger *slog.Logger) Palette {
	if logger == nil {
		logger = slog.Default()
	}

	name := string(Parse(string(t)))
	data, _ := GetEmbeddedPalette(name)
	p, _ := ParsePalette(data)

	dir, err := PalettesDir()
	if err != nil {
		logger.Debug("no palettes directory", "error", err)
		return p
	}

	path := filepath.Join(dir, name+".toml")
	userData, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("failed to read user palette, using bundled", "path", path, "error", err)
		}
		return p
	}

	// Decode over the bundled values so partial overrides keep the rest.
	if err := toml.Unmarshal(userData, &p); err != nil {
		logger.Warn("failed to parse user palette, using bundled", "path", path, "error", err)
		fallback, _ := ParsePalette(data)
		return fallback
	}

	logger.Debug("loaded user palette", "path", path)
	return p
}
