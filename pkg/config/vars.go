package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "gnfish"

// ConfigDir returns ~/.config/gnfish.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns ~/.cache/gnfish.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns ~/.local/share/gnfish.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns ~/.local/share/gnfish/logs.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns ~/.config/gnfish/config.yaml.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ArchiveFilePath returns the default SQLite archive,
// ~/.local/share/gnfish/gnfish.sqlite.
func ArchiveFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), AppName+".sqlite")
}
