package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/arthur-debert/keyremap/pkg/remap"
	"github.com/arthur-debert/keyremap/pkg/rules"
	"github.com/arthur-debert/keyremap/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTOML(t *testing.T, doc string) (*Config, error) {
	t.Helper()
	return NewLoader(WithoutEnv()).LoadBytes([]byte(doc), FormatTOML)
}

func TestTemplateLoadsAndCompiles(t *testing.T) {
	cfg, err := NewLoader(WithoutEnv()).LoadBytes(Template(), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "default", cfg.Name)
	require.Len(t, cfg.Mappings, 4)

	table, err := Compile(cfg)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	caps := table.At(0)
	assert.Equal(t, keys.KeyInput(keys.KeyCapsLock), caps.From)
	assert.Equal(t, rules.SingleKey(keys.KeyEscape), caps.To)
	assert.True(t, caps.Enabled)

	side := table.At(1)
	assert.Equal(t, keys.ButtonInput(keys.ButtonSide), side.From)
	assert.Equal(t, []keys.Key{keys.KeyControlLeft, keys.KeyC}, side.To.Combination)

	extra := table.At(2)
	assert.Equal(t, []keys.Key{keys.KeyControlLeft, keys.KeyV}, extra.To.Combination)

	insert := table.At(3)
	assert.False(t, insert.Enabled)
	assert.True(t, insert.To.IsBlock())
}

func TestLoadFromFs(t *testing.T) {
	doc := `
version: 1
name: yaml mappings
key_mappings:
  - name: a to b
    from: {key: KeyA}
    to: {key: KeyB}
  - name: chord
    from: {button: Left}
    to:
      combination: [ControlLeft, {key: KeyC}]
`
	fs := testutil.MemFs(t, map[string]string{"/etc/keyremap/keyremap.yaml": doc})

	cfg, err := NewLoader(WithFs(fs), WithoutEnv()).Load("/etc/keyremap/keyremap.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/keyremap/keyremap.yaml", cfg.Source)
	assert.Equal(t, "yaml mappings", cfg.Name)

	table, err := Compile(cfg)
	require.NoError(t, err)
	assert.Equal(t, rules.SingleKey(keys.KeyB), table.At(0).To)
	assert.Equal(t, rules.Combination(keys.KeyControlLeft, keys.KeyC), table.At(1).To)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyremap.toml")
	require.NoError(t, os.WriteFile(path, Template(), 0o644))

	cfg, err := NewLoader(WithoutEnv()).Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Mappings, 4)
}

func TestLoadErrors(t *testing.T) {
	fs := testutil.MemFs(t, map[string]string{"/bad.toml": "key_mappings = [[["})

	_, err := NewLoader(WithFs(fs), WithoutEnv()).Load("/missing.toml")
	testutil.AssertErrorCode(t, err, errors.ErrConfigLoad)
	assert.Equal(t, "/missing.toml", errors.GetErrorDetails(err)["path"])

	_, err = NewLoader(WithFs(fs), WithoutEnv()).Load("/bad.toml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, "/bad.toml", errors.GetErrorDetails(err)["path"])

	_, err = NewLoader(WithoutEnv()).Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestSchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name: "unknown mapping field",
			doc: `
[[key_mappings]]
name = "typo"
form = { key = "KeyA" }
`,
			field: "key_mappings[0]",
		},
		{
			name: "enable must be boolean",
			doc: `
[[key_mappings]]
name = "x"
enable = "yes"
`,
			field: "key_mappings[0].enable",
		},
		{
			name: "key must be a string",
			doc: `
[[key_mappings]]
name = "x"
from = { key = 30 }
`,
			field: "key_mappings[0].from.key",
		},
		{
			name: "name is required",
			doc: `
[[key_mappings]]
from = { key = "KeyA" }
`,
			field: "key_mappings[0]",
		},
		{
			name:  "unknown top level key",
			doc:   `mappings = []`,
			field: "document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadTOML(t, tt.doc)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.field, errors.GetErrorDetails(err)["field"])
		})
	}
}

func TestSemanticErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "key and button",
			doc: `
[[key_mappings]]
name = "both"
from = { key = "KeyA", button = "Left" }
`,
			want: "key_mappings[0].from",
		},
		{
			name: "key and combination",
			doc: `
[[key_mappings]]
name = "both"
from = { key = "KeyA" }
to = { key = "KeyB", combination = ["KeyC"] }
`,
			want: "key_mappings[0].to",
		},
		{
			name: "empty name",
			doc: `
[[key_mappings]]
name = " "
from = { key = "KeyA" }
`,
			want: "key_mappings[0].name",
		},
		{
			name: "unsupported version",
			doc:  `version = "2"`,
			want: "version",
		},
		{
			name: "bad trigger",
			doc:  `combination_trigger = "hold"`,
			want: "combination_trigger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadTOML(t, tt.doc)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCompileUnknownNames(t *testing.T) {
	cfg, err := loadTOML(t, `
[[key_mappings]]
name = "ok"
from = { key = "KeyA" }
to = { key = "KeyB" }

[[key_mappings]]
name = "bad from"
from = { key = "NoSuchKey" }

[[key_mappings]]
name = "bad chord"
from = { button = "Side" }
to = { combination = ["ControlLeft", "Nope"] }
`)
	require.NoError(t, err)

	_, err = Compile(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, 2, errors.GetErrorDetails(err)["count"])
	assert.Contains(t, err.Error(), "key_mappings[1].from.key")
	assert.Contains(t, err.Error(), "key_mappings[2].to.combination[1]")
	assert.Contains(t, err.Error(), string(errors.ErrUnknownKey))
}

func TestCompileDegenerateRules(t *testing.T) {
	cfg, err := loadTOML(t, `
[[key_mappings]]
name = "inert"
to = { key = "KeyB" }

[[key_mappings]]
name = "empty chord"
from = { key = "KeyA" }
to = { combination = [] }

[[key_mappings]]
name = "block"
from = { key = "KeyQ" }
`)
	require.NoError(t, err)
	assert.True(t, cfg.Mappings[1].To.HasCombination())
	assert.False(t, cfg.Mappings[2].To.HasCombination())

	table, err := Compile(cfg)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	assert.True(t, table.At(0).From.IsZero())
	assert.True(t, table.At(1).To.IsBlock())
	assert.Equal(t, rules.ActionCombination, table.At(1).To.Kind)
	assert.Equal(t, rules.ActionNone, table.At(2).To.Kind)
}

func TestVersions(t *testing.T) {
	for _, doc := range []string{`version = 1`, `version = "1.3"`, `version = "v0"`, `version = ""`} {
		_, err := loadTOML(t, doc)
		assert.NoError(t, err, doc)
	}
	_, err := loadTOML(t, `version = "one"`)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KEYREMAP_COMBINATION_TRIGGER", "release")
	t.Setenv("KEYREMAP_NAME", "from env")
	t.Setenv("KEYREMAP_KEY_MAPPINGS", "ignored")

	cfg, err := NewLoader().LoadBytes([]byte(`name = "file"`), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, remap.TriggerRelease, cfg.Trigger())
	assert.Equal(t, "from env", cfg.Name)
	assert.Empty(t, cfg.Mappings)

	cfg, err = NewLoader(WithoutEnv()).LoadBytes([]byte(`name = "file"`), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, remap.TriggerPress, cfg.Trigger())
	assert.Equal(t, "file", cfg.Name)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("a/b.YML"))
	assert.Equal(t, FormatYAML, FormatForPath("b.yaml"))
	assert.Equal(t, FormatTOML, FormatForPath("b.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("keyremap"))
}

func TestPointerToField(t *testing.T) {
	assert.Equal(t, "document", pointerToField(""))
	assert.Equal(t, "version", pointerToField("/version"))
	assert.Equal(t, "key_mappings[3].to.combination[0]", pointerToField("/key_mappings/3/to/combination/0"))
}

func TestDefaultPath(t *testing.T) {
	fs := afero.NewMemMapFs()

	assert.Equal(t, filepath.Join("/home/u/.config", "keyremap", FileName),
		defaultPath(fs, "/opt/keyremap", "/home/u/.config"))

	require.NoError(t, afero.WriteFile(fs, "/opt/keyremap/keyremap.toml", Template(), 0o644))
	assert.Equal(t, "/opt/keyremap/keyremap.toml", defaultPath(fs, "/opt/keyremap", "/home/u/.config"))
	assert.NotEmpty(t, DefaultPath())
}

func TestWriteTemplate(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, WriteTemplate(fs, "/cfg/keyremap/keyremap.toml", false))
	data, err := afero.ReadFile(fs, "/cfg/keyremap/keyremap.toml")
	require.NoError(t, err)
	assert.Equal(t, Template(), data)

	err = WriteTemplate(fs, "/cfg/keyremap/keyremap.toml", false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.NoError(t, WriteTemplate(fs, "/cfg/keyremap/keyremap.toml", true))
}
