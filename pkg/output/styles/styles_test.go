package styles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(profile)
	return r
}

func TestEmbeddedSheet(t *testing.T) {
	for _, name := range []string{
		"Header", "Path", "Linked", "Copied", "Updated", "Unchanged",
		"Declared", "Marked", "Skipped", "Error", "DryRun", "Summary",
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := current.Styles[name]
			assert.True(t, ok, "style %s should be defined", name)
		})
	}
}

func TestSheetRender(t *testing.T) {
	t.Run("ascii profile renders plain text", func(t *testing.T) {
		sheet := NewSheet(renderer(termenv.Ascii))
		assert.Equal(t, "Linked", sheet.Render("Linked", "Linked"))
	})

	t.Run("color profile emits escapes", func(t *testing.T) {
		sheet := NewSheet(renderer(termenv.TrueColor))
		out := sheet.Render("Linked", "Linked")
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, out, "Linked")
	})

	t.Run("unknown style is empty", func(t *testing.T) {
		sheet := NewSheet(renderer(termenv.TrueColor))
		assert.Equal(t, "text", sheet.Render("Nope", "text"))
	})
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStylesData(defaultStyles)) })

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  hot:
    light: "#FF0000"
    dark: "#FF0000"
styles:
  Linked:
    foreground: hot
`), 0644))

	require.NoError(t, LoadStyles(path))
	assert.Len(t, current.Styles, 1)
	assert.Equal(t, "hot", current.Styles["Linked"].Foreground)

	assert.Error(t, LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, LoadStylesData([]byte("styles: [")))
}
