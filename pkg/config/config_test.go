package config

import (
	"os"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/stdwriter/pkg/console"
	"github.com/arthur-debert/stdwriter/pkg/errors"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	for _, key := range []string{
		"STDWRITER_OUTPUT_ENABLE_VIRTUAL_TERMINAL",
		"STDWRITER_OUTPUT_FORCE_MODE",
		"STDWRITER_OUTPUT_STRIP_LEGACY",
		"STDWRITER_LOG_FILE",
		"STDWRITER_LOG_NO_COLOR",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)

	assert.True(t, cfg.Output.EnableVirtualTerminal)
	assert.True(t, cfg.Output.StripLegacy)
	assert.Empty(t, cfg.Output.ForceMode)
	assert.True(t, cfg.Log.File)
	assert.False(t, cfg.Log.NoColor)
}

func TestLoadLayers(t *testing.T) {
	t.Run("default_path_file", func(t *testing.T) {
		isolate(t)
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, DefaultPath(), []byte(`
[output]
enable_virtual_terminal = false
`), 0644))

		cfg, err := Load(LoadOptions{Fs: fs})
		require.NoError(t, err)

		assert.False(t, cfg.Output.EnableVirtualTerminal)
		assert.True(t, cfg.Output.StripLegacy, "untouched keys keep defaults")
	})

	t.Run("explicit_path", func(t *testing.T) {
		isolate(t)
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/etc/sw.toml", []byte(`
[log]
no_color = true
`), 0644))

		cfg, err := Load(LoadOptions{Fs: fs, Path: "/etc/sw.toml"})
		require.NoError(t, err)
		assert.True(t, cfg.Log.NoColor)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		isolate(t)
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, DefaultPath(), []byte(`
[output]
force_mode = "disk"
`), 0644))
		t.Setenv("STDWRITER_OUTPUT_FORCE_MODE", "legacy")
		t.Setenv("STDWRITER_LOG_FILE", "false")

		cfg, err := Load(LoadOptions{Fs: fs})
		require.NoError(t, err)

		assert.Equal(t, "legacy", cfg.Output.ForceMode)
		assert.False(t, cfg.Log.File)
	})

	t.Run("overrides_win", func(t *testing.T) {
		isolate(t)
		t.Setenv("STDWRITER_OUTPUT_FORCE_MODE", "legacy")

		cfg, err := Load(LoadOptions{
			Fs:        afero.NewMemMapFs(),
			Overrides: map[string]interface{}{"output.force_mode": "vt"},
		})
		require.NoError(t, err)
		assert.Equal(t, "vt", cfg.Output.ForceMode)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing_explicit_file", func(t *testing.T) {
		isolate(t)

		_, err := Load(LoadOptions{Fs: afero.NewMemMapFs(), Path: "/nope.toml"})

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.Equal(t, "/nope.toml", errors.GetErrorDetails(err)["path"])
	})

	t.Run("malformed_file", func(t *testing.T) {
		isolate(t)
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, DefaultPath(), []byte("[output\nbroken"), 0644))

		_, err := Load(LoadOptions{Fs: fs})

		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_force_mode", func(t *testing.T) {
		isolate(t)
		t.Setenv("STDWRITER_OUTPUT_FORCE_MODE", "rainbow")

		_, err := Load(LoadOptions{Fs: afero.NewMemMapFs()})

		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestConsoleOptions(t *testing.T) {
	cfg := &Config{Output: Output{EnableVirtualTerminal: true, StripLegacy: true}}
	assert.Len(t, cfg.ConsoleOptions(), 2)

	cfg.Output.ForceMode = "legacy"
	assert.Len(t, cfg.ConsoleOptions(), 4)
}

func TestConsoleOptionsApplyToState(t *testing.T) {
	cfg := &Config{Output: Output{ForceMode: "disk", StripLegacy: true}}

	s := console.New(console.NewPlatform(), cfg.ConsoleOptions()...)

	assert.Equal(t, console.Disk, s.Mode(console.StreamOutput))
	assert.Equal(t, console.Disk, s.Mode(console.StreamError))
}

func TestMarshalRoundTrip(t *testing.T) {
	isolate(t)
	cfg, err := Load(LoadOptions{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)
	cfg.Output.ForceMode = "stream"

	data, err := Marshal(cfg)
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.toml", data, 0644))
	reloaded, err := Load(LoadOptions{Fs: fs, Path: "/cfg.toml"})
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, "# enable_virtual_terminal = true")
	assert.NotContains(t, content, "\nstrip_legacy")

	// a commented template parses to nothing
	k := koanf.New(".")
	require.NoError(t, k.Load(&rawBytesProvider{bytes: []byte(content)}, toml.Parser()))
	assert.False(t, k.Exists("output.enable_virtual_terminal"))
	assert.False(t, k.Exists("log.file"))
}
