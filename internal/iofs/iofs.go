package iofs

import (
	_ "embed"
	"errors"
	"os"

	"github.com/gnames/gnfish/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, cache, data and log directories of
// gnfish if they do not exist.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return HomeDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return ConfigTemplateError(configPath, err)
	}

	return nil
}

// ReadManifest reads a batch manifest.
func ReadManifest(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ManifestReadError(path, err)
	}
	return res, nil
}

// RemoveArchive deletes a SQLite archive. A missing archive is not an
// error.
func RemoveArchive(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return ArchiveRemoveError(path, err)
	}
	return nil
}
