package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/spf13/afero"
)

// FileName is the default document name.
const FileName = "keyremap.toml"

// DefaultPath returns keyremap.toml next to the executable when that file
// exists, otherwise $XDG_CONFIG_HOME/keyremap/keyremap.toml.
func DefaultPath() string {
	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	return defaultPath(afero.NewOsFs(), exeDir, xdg.ConfigHome)
}

func defaultPath(fs afero.Fs, exeDir, configHome string) string {
	if exeDir != "" {
		p := filepath.Join(exeDir, FileName)
		if ok, _ := afero.Exists(fs, p); ok {
			return p
		}
	}
	return filepath.Join(configHome, "keyremap", FileName)
}

// WriteTemplate writes the example document to path, creating parent
// directories. Existing files are kept unless force is set.
func WriteTemplate(fs afero.Fs, path string, force bool) error {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if !force {
		if ok, _ := afero.Exists(fs, path); ok {
			return errors.Newf(errors.ErrInvalidInput, "%s already exists", path).WithDetail("path", path)
		}
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot create %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(fs, path, templateConfig, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write %s", path)
	}
	return nil
}
