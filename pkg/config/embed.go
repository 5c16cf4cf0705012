package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

//go:embed embedded/keyremap.toml
var templateConfig []byte

//go:embed embedded/schema.json
var schemaJSON []byte

// Template returns the commented example document written by gen-config.
func Template() []byte {
	return append([]byte(nil), templateConfig...)
}

// Schema returns the JSON schema documents are validated against.
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
