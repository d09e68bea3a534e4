package cli

import (
	"os"
	"path/filepath"

	"github.com/fdlang/fdl/pkg"
)

// baseConfig is the base name of the configuration file and section.
const baseConfig = "config"

// defaultDirMode is the permission mode for created runtime directories.
const defaultDirMode os.FileMode = 0o700

// configPath returns the absolute path formed by joining the configuration
// directory path with the given path elements.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	err := os.MkdirAll(pkg.ConfigDir(), defaultDirMode)
	if err != nil {
		return err
	}

	return os.MkdirAll(pkg.CacheDir(), defaultDirMode)
}
