// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/loutube-cli/loutube/constant"
	"github.com/loutube-cli/loutube/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "LOUTUBE_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It honors the XDG_CONFIG_HOME specification on Linux and the equivalent user profile paths elsewhere.
// The LOUTUBE_CONFIG_PATH environment variable overrides the resolution entirely.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Loutube))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Fallback: revert to a localized cache directory if the system-provided path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Loutube))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the absolute path to the append-only operations log file.
func History() string {
	return filepath.Join(Config(), "history.txt")
}

// Cookies resolves the absolute path to the cached browser cookie detection result.
func Cookies() string {
	return filepath.Join(Cache(), "cookies.json")
}

// Videos resolves the default destination directory for video downloads.
func Videos() string {
	home := lo.Must(os.UserHomeDir())
	return filepath.Join(home, "Videos", constant.Loutube)
}

// Music resolves the default destination directory for audio downloads.
func Music() string {
	home := lo.Must(os.UserHomeDir())
	return filepath.Join(home, "Music", constant.Loutube)
}

// Temp resolves a unique, volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Loutube))
}
