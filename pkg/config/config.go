package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"

	"github.com/arthur-debert/stdwriter/pkg/console"
	"github.com/arthur-debert/stdwriter/pkg/errors"
	"github.com/arthur-debert/stdwriter/pkg/logging"
)

// EnvPrefix prefixes environment overrides, e.g. STDWRITER_OUTPUT_FORCE_MODE
const EnvPrefix = "STDWRITER_"

// Output holds console output settings
type Output struct {
	EnableVirtualTerminal bool   `koanf:"enable_virtual_terminal" toml:"enable_virtual_terminal"`
	ForceMode             string `koanf:"force_mode" toml:"force_mode"`
	StripLegacy           bool   `koanf:"strip_legacy" toml:"strip_legacy"`
}

// Log holds logging settings
type Log struct {
	File    bool `koanf:"file" toml:"file"`
	NoColor bool `koanf:"no_color" toml:"no_color"`
}

// Config is the merged stdwriter configuration
type Config struct {
	Output Output `koanf:"output" toml:"output"`
	Log    Log    `koanf:"log" toml:"log"`
}

// LoadOptions controls where Load reads from
type LoadOptions struct {
	// Fs is the filesystem config files are read from. Defaults to the OS filesystem.
	Fs afero.Fs
	// Path is an explicit config file. It must exist when set; when empty
	// DefaultPath is used if present.
	Path string
	// Overrides are dotted keys applied last, typically from command-line flags
	Overrides map[string]interface{}
}

// DefaultPath returns $XDG_CONFIG_HOME/stdwriter/config.toml
func DefaultPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}

// Load merges embedded defaults, the config file, STDWRITER_ environment
// variables and overrides, in that order
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		path = DefaultPath()
	}
	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	case explicit || !os.IsNotExist(err):
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	default:
		logger.Trace().Str("path", path).Msg("No config file")
	}

	// 3. Env vars: STDWRITER_OUTPUT_FORCE_MODE -> output.force_mode, empty values ignored
	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.Replace(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", ".", 1), value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values koanf cannot type-check
func (c *Config) Validate() error {
	if c.Output.ForceMode == "" {
		return nil
	}
	if _, err := console.ParseOutputMode(c.Output.ForceMode); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.force_mode").
			WithDetail("value", c.Output.ForceMode)
	}
	return nil
}

// ConsoleOptions translates the output section into console.State options
func (c *Config) ConsoleOptions() []console.Option {
	opts := []console.Option{
		console.WithVirtualTerminal(c.Output.EnableVirtualTerminal),
		console.WithLegacyStripping(c.Output.StripLegacy),
	}
	if mode, err := console.ParseOutputMode(c.Output.ForceMode); c.Output.ForceMode != "" && err == nil {
		opts = append(opts,
			console.WithForcedMode(console.StreamOutput, mode),
			console.WithForcedMode(console.StreamError, mode),
		)
	}
	return opts
}
