// Package config loads keyremap mapping documents.
//
// A document is TOML (or YAML, chosen by file extension) and is layered by
// koanf: embedded defaults first, then the file, then KEYREMAP_* environment
// overrides for top-level settings. The merged document is checked against
// an embedded JSON schema, decoded, validated and finally compiled into a
// rules.Table.
package config
