package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/arthur-debert/keyremap/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "KEYREMAP_"

// envKeys are the settings the environment may override.
var envKeys = map[string]bool{
	"combination_trigger": true,
	"name":                true,
}

// Format is a document syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the syntax from a file extension. Anything that is not
// .yaml or .yml is read as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func (f Format) parser() koanf.Parser {
	if f == FormatYAML {
		return yaml.Parser()
	}
	return toml.Parser()
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFs reads documents from fs instead of the OS filesystem.
func WithFs(fs afero.Fs) LoaderOption {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithoutEnv disables KEYREMAP_* overrides.
func WithoutEnv() LoaderOption {
	return func(l *Loader) {
		l.env = false
	}
}

// Loader reads and validates documents.
type Loader struct {
	fs     afero.Fs
	env    bool
	logger zerolog.Logger
}

// NewLoader returns a loader reading from the OS filesystem with
// environment overrides enabled.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		env:    true,
		logger: logging.GetLogger("config"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the document at path using the default loader.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Load reads, merges, validates and decodes the document at path.
func (l *Loader) Load(path string) (*Config, error) {
	done := logging.LogOperationStart(l.logger, "load_config")
	defer done()

	format := FormatForPath(path)

	var provider koanf.Provider
	if l.fs == nil {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path).
				WithDetail("path", path)
		}
		provider = file.Provider(path)
	} else {
		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path).
				WithDetail("path", path)
		}
		provider = &rawBytesProvider{bytes: data}
	}

	cfg, err := l.load(provider, format)
	if err != nil {
		return nil, withPath(err, path)
	}
	cfg.Source = path

	l.logger.Debug().
		Str("path", path).
		Int("mappings", len(cfg.Mappings)).
		Msg("Configuration loaded")
	return cfg, nil
}

// LoadBytes decodes a document held in memory.
func (l *Loader) LoadBytes(data []byte, format Format) (*Config, error) {
	return l.load(&rawBytesProvider{bytes: data}, format)
}

func (l *Loader) load(provider koanf.Provider, format Format) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	defaults, err := toml.Parser().Unmarshal(defaultConfig)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded defaults are invalid")
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. The document
	if err := k.Load(provider, format.parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s document", format)
	}

	// 3. Environment
	if l.env {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	raw := k.Raw()
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToKeyDefHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	markCombinations(&cfg, raw)

	// 5. Semantic checks
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps KEYREMAP_COMBINATION_TRIGGER to combination_trigger. Unknown
// variables map to "" and are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if !envKeys[key] {
		return ""
	}
	return key
}

var keyDefType = reflect.TypeOf(KeyDef{})

// stringToKeyDefHookFunc lets a combination list bare key names.
func stringToKeyDefHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.String && t == keyDefType {
			return KeyDef{Key: data.(string)}, nil
		}
		return data, nil
	}
}

// markCombinations records which mappings spelled out a combination, so an
// empty list can be told apart from an absent one.
func markCombinations(cfg *Config, raw map[string]interface{}) {
	list, _ := raw["key_mappings"].([]interface{})
	for i := range cfg.Mappings {
		if i >= len(list) {
			return
		}
		m, _ := list[i].(map[string]interface{})
		to, _ := m["to"].(map[string]interface{})
		if _, ok := to["combination"]; ok {
			cfg.Mappings[i].To.combinationSet = true
		}
	}
}

func withPath(err error, path string) error {
	var kerr *errors.KeyremapError
	if errors.As(err, &kerr) {
		if _, ok := kerr.Details["path"]; !ok {
			kerr.WithDetail("path", path)
		}
	}
	return err
}
