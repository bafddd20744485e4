// Package styles defines the visual styling for potbin's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. The default sheet is embedded from styles.yaml and
// can be replaced at runtime with LoadStyles.
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginLeft   int    `yaml:"marginLeft,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// current is the loaded style sheet.
var current Config

func init() {
	if err := LoadStylesData(defaultStyles); err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
}

// LoadStyles replaces the style sheet with the YAML file at path.
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return LoadStylesData(data)
}

// LoadStylesData replaces the style sheet with YAML data.
func LoadStylesData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}
	current = config
	return nil
}

// Sheet is the style sheet bound to one lipgloss renderer, so color
// detection follows the writer the styles are rendered for.
type Sheet struct {
	styles map[string]lipgloss.Style
}

// NewSheet builds every style of the loaded configuration for r.
func NewSheet(r *lipgloss.Renderer) *Sheet {
	colors := make(map[string]lipgloss.AdaptiveColor, len(current.Colors))
	for name, def := range current.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	s := &Sheet{styles: make(map[string]lipgloss.Style, len(current.Styles))}
	for name, def := range current.Styles {
		s.styles[name] = buildStyle(r, colors, def)
	}
	return s
}

// Get returns the named style, or an empty style when it is not defined.
func (s *Sheet) Get(name string) lipgloss.Style {
	if style, ok := s.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text.
func (s *Sheet) Render(name, text string) string {
	return s.Get(name).Render(text)
}

// GetStyle returns the named style for the default renderer (stdout).
func GetStyle(name string) lipgloss.Style {
	return NewSheet(lipgloss.DefaultRenderer()).Get(name)
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, colors map[string]lipgloss.AdaptiveColor, def StyleDef) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}
