package potbin

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/filesystem"
	"github.com/arthur-debert/potbin/pkg/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv isolates HOME, config and state, and disables colour.
func setupEnv(t *testing.T) string {
	t.Helper()
	home := testutil.TempHome(t)
	t.Setenv("POTBIN_CONFIG_DIR", filepath.Join(home, ".config", "potbin"))
	t.Setenv("POTBIN_STATE_DIR", filepath.Join(home, ".local", "state", "potbin"))
	t.Setenv("NO_COLOR", "1")
	return home
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCommandStructure(t *testing.T) {
	root := NewRootCmd()

	tests := []struct {
		name  string
		group string
	}{
		{"sync", "core"},
		{"resolve", "core"},
		{"genconfig", "misc"},
		{"syntax", "misc"},
		{"topics", "misc"},
		{"completion", "misc"},
		{"man", "misc"},
		{"version", "misc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := findCommand(root, tt.name)
			require.NotNil(t, cmd, "command %s should exist", tt.name)
			assert.Equal(t, tt.group, cmd.GroupID)
		})
	}

	for _, flag := range []string{"verbose", "dry-run", "config", "no-color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %s", flag)
	}
}

func TestRootWithoutCommand(t *testing.T) {
	setupEnv(t)

	stdout, _, err := execute(t)
	require.Error(t, err)
	assert.Equal(t, MsgErrNoCommand, err.Error())
	assert.Contains(t, stdout, "sync")
}

func TestSyncCommand(t *testing.T) {
	home := setupEnv(t)
	fs := filesystem.NewOS()

	vimrc := testutil.WriteFile(t, fs, filepath.Join(home, "Cloud", "vim", "_vimrc"), "set nu\n")
	testutil.WriteFile(t, fs, filepath.Join(home, "Cloud", "notes.txt"), "notes\n")
	confDir := filepath.Join(home, "conf")
	testutil.WriteFile(t, fs, filepath.Join(confDir, "home.pdec"),
		"# dotfiles\n$cloud = ~/Cloud\n$cloud/vim/_vimrc > ~\n$cloud/notes.txt | ~/notes.txt\n$cloud/missing > ~\n")

	t.Run("applies every pair", func(t *testing.T) {
		stdout, stderr, err := execute(t, "sync", "--dir", confDir)
		require.NoError(t, err)

		target, err := os.Readlink(filepath.Join(home, ".vimrc"))
		require.NoError(t, err)
		assert.Equal(t, vimrc, target)
		assert.Equal(t, "notes\n", testutil.ReadFile(t, fs, filepath.Join(home, "notes.txt")))

		assert.Contains(t, stdout, "Processing pdec file:")
		assert.Contains(t, stdout, "Cached custom declaration:")
		assert.Contains(t, stdout, "Linked")
		assert.Contains(t, stdout, "Copied")
		assert.Contains(t, stdout, "2 in 1 file")
		assert.Contains(t, stderr, "missing")
	})

	t.Run("second run leaves everything untouched", func(t *testing.T) {
		stdout, _, err := execute(t, "sync", "--dir", confDir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Untouched on")
		assert.Contains(t, stdout, "0 in 1 file")
	})

	t.Run("quiet hides untouched pairs", func(t *testing.T) {
		stdout, _, err := execute(t, "sync", "--quiet", "--dir", confDir)
		require.NoError(t, err)
		assert.NotContains(t, stdout, "Untouched on")
	})

	t.Run("lock is released", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(home, ".local", "state", "potbin", "potbin.lock"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestSyncCommandDryRun(t *testing.T) {
	home := setupEnv(t)
	fs := filesystem.NewOS()

	testutil.WriteFile(t, fs, filepath.Join(home, "Cloud", "_bashrc"), "alias ll='ls -l'\n")
	pdecFile := testutil.WriteFile(t, fs, filepath.Join(home, "conf", "shell.pdec"), "~/Cloud/_bashrc > ~\n")

	stdout, _, err := execute(t, "--dry-run", "sync", pdecFile)
	require.NoError(t, err)

	_, err = os.Lstat(filepath.Join(home, ".bashrc"))
	assert.True(t, os.IsNotExist(err), "dry run must not create the link")
	assert.Contains(t, stdout, "(dry run)")
	assert.Contains(t, stdout, MsgDryRunNotice)
}

func TestSyncCommandMissingConfigFile(t *testing.T) {
	home := setupEnv(t)

	_, _, err := execute(t, "--config", filepath.Join(home, "nope.toml"), "sync")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestSyncCommandUsesConfigFile(t *testing.T) {
	home := setupEnv(t)
	fs := filesystem.NewOS()

	testutil.WriteFile(t, fs, filepath.Join(home, "Cloud", "_gitconfig"), "[user]\n")
	confDir := filepath.Join(home, "decls")
	testutil.WriteFile(t, fs, filepath.Join(confDir, "git.sync"), "~/Cloud/_gitconfig > ~\n")
	testutil.WriteFile(t, fs, filepath.Join(home, ".config", "potbin", "config.toml"),
		"[declarations]\ndir = \""+confDir+"\"\nextension = \".sync\"\n")

	_, _, err := execute(t, "sync")
	require.NoError(t, err)

	_, err = os.Readlink(filepath.Join(home, ".gitconfig"))
	assert.NoError(t, err)
}

func TestResolveCommand(t *testing.T) {
	home := setupEnv(t)
	fs := filesystem.NewOS()

	testutil.WriteFile(t, fs, filepath.Join(home, "Cloud", "vim", "_vimrc"), "")
	decls := testutil.WriteFile(t, fs, filepath.Join(home, "aliases.pdec"), "$cloud = ~/Cloud\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "home placeholder",
			args: []string{"resolve", "$userhome/.config"},
			want: filepath.Join(home, ".config"),
		},
		{
			name: "alias from file",
			args: []string{"resolve", "--with", decls, "$cloud/vim"},
			want: filepath.Join(home, "Cloud", "vim"),
		},
		{
			name: "basename inference",
			args: []string{"resolve", "--for", "~/Cloud/vim/_vimrc", "~"},
			want: filepath.Join(home, ".vimrc"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}

	t.Run("unknown placeholder fails", func(t *testing.T) {
		_, _, err := execute(t, "resolve", "$nope/x")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSegmentUnparsable))
		assert.NotContains(t, err.Error(), "declared aliases")
	})

	t.Run("unknown alias lists the declared ones", func(t *testing.T) {
		_, _, err := execute(t, "resolve", "--with", decls, "$clod/vim")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSegmentUnparsable))
		assert.Contains(t, err.Error(), "(declared aliases: $cloud)")
	})

	t.Run("requires an expression", func(t *testing.T) {
		_, _, err := execute(t, "resolve")
		assert.Error(t, err)
	})
}

func TestGenconfigCommand(t *testing.T) {
	setupEnv(t)

	t.Run("current configuration", func(t *testing.T) {
		t.Setenv("POTBIN_SYNC_DEFAULT_LOCAL", "~/dotfiles")
		stdout, _, err := execute(t, "genconfig")
		require.NoError(t, err)
		assert.Contains(t, stdout, "[declarations]")
		assert.Contains(t, stdout, "~/dotfiles")
	})

	t.Run("commented defaults", func(t *testing.T) {
		stdout, _, err := execute(t, "genconfig", "--defaults")
		require.NoError(t, err)
		assert.Contains(t, stdout, "# ")
		assert.Contains(t, stdout, "[sync]")
	})
}

func TestHelpTopics(t *testing.T) {
	setupEnv(t)

	t.Run("syntax command prints the syntax topic", func(t *testing.T) {
		stdout, _, err := execute(t, "syntax")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Declaration files")
	})

	t.Run("help lists topics", func(t *testing.T) {
		stdout, _, err := execute(t, "help", "topics")
		require.NoError(t, err)
		assert.Contains(t, stdout, "placeholders")
		assert.Contains(t, stdout, "--dry-run")
	})

	t.Run("topics command delegates to help", func(t *testing.T) {
		stdout, _, err := execute(t, "topics")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Available help topics:")
	})

	t.Run("help falls back to commands", func(t *testing.T) {
		stdout, _, err := execute(t, "help", "sync")
		require.NoError(t, err)
		assert.Contains(t, stdout, "--dir")
	})
}

func TestVersionAndCompletion(t *testing.T) {
	setupEnv(t)

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "potbin version")

	stdout, _, err = execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "potbin")

	_, _, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestManCommand(t *testing.T) {
	setupEnv(t)
	dir := filepath.Join(testutil.TempDir(t), "man")

	_, _, err := execute(t, "man", dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "potbin.1"))
	assert.NoError(t, err)
}
