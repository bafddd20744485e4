package pdec

import (
	"testing"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  Kind
		wantCloud string
		wantLocal string
		wantMode  types.Mode
	}{
		{name: "blank", raw: "   ", wantKind: KindBlank},
		{name: "comment", raw: "  # nvim config", wantKind: KindComment},
		{name: "declaration", raw: "$ff = $appfolder(firefox)", wantKind: KindDeclaration},
		{name: "declaration without equals", raw: "$ff", wantKind: KindDeclaration},
		{name: "declaration with delimiter in value", raw: "$odd = a>b", wantKind: KindDeclaration},
		{
			name:      "alias on the cloud side",
			raw:       "$conf/_bashrc > ~",
			wantKind:  KindPair,
			wantCloud: "$conf/_bashrc",
			wantLocal: "~",
			wantMode:  types.ModeLink,
		},
		{
			name:      "alias pair with equals in the local side",
			raw:       "$dots/vimrc > ~/a=b",
			wantKind:  KindPair,
			wantCloud: "$dots/vimrc",
			wantLocal: "~/a=b",
			wantMode:  types.ModeLink,
		},
		{
			name:      "alias copy pair with equals in the local side",
			raw:       "$dots/prefs.js | ~/k=v.js",
			wantKind:  KindPair,
			wantCloud: "$dots/prefs.js",
			wantLocal: "~/k=v.js",
			wantMode:  types.ModeCopy,
		},
		{
			name:      "link",
			raw:       "/cloud/_bashrc > ~",
			wantKind:  KindPair,
			wantCloud: "/cloud/_bashrc",
			wantLocal: "~",
			wantMode:  types.ModeLink,
		},
		{
			name:      "copy",
			raw:       "/cloud/prefs.js|$ff",
			wantKind:  KindPair,
			wantCloud: "/cloud/prefs.js",
			wantLocal: "$ff",
			wantMode:  types.ModeCopy,
		},
		{
			name:      "copy wins when both delimiters appear",
			raw:       "/cloud/a>b | ~/x",
			wantKind:  KindPair,
			wantCloud: "/cloud/a>b",
			wantLocal: "~/x",
			wantMode:  types.ModeCopy,
		},
		{
			name:      "no delimiter links to home",
			raw:       "/cloud/_vimrc",
			wantKind:  KindPair,
			wantCloud: "/cloud/_vimrc",
			wantLocal: "~",
			wantMode:  types.ModeLink,
		},
		{
			name:      "empty local side",
			raw:       "/cloud/_vimrc >",
			wantKind:  KindPair,
			wantCloud: "/cloud/_vimrc",
			wantLocal: "~",
			wantMode:  types.ModeLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := ParseLine(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, line.Kind)
			if tt.wantKind == KindPair {
				assert.Equal(t, tt.wantCloud, line.Cloud)
				assert.Equal(t, tt.wantLocal, line.Local)
				assert.Equal(t, tt.wantMode, line.Mode)
			}
		})
	}
}

func TestParseLineInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"two link delimiters", "/cloud/a > ~ > /tmp"},
		{"two copy delimiters", "/cloud/a | ~ | /tmp"},
		{"missing cloud", "> ~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := ParseLine(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrLineInvalid))
			assert.Equal(t, KindPair, line.Kind)
		})
	}
}

func TestCustomSyntax(t *testing.T) {
	s := DefaultSyntax()
	s.DefaultLocal = "/srv/home"

	line, err := s.ParseLine("/cloud/_vimrc")
	require.NoError(t, err)
	assert.Equal(t, "/srv/home", line.Local)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pair", KindPair.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
