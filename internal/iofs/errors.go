package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/pkg/errcode"
)

// HomeDirError is returned when one of the config, cache, data or log
// directories of gnfish cannot be created.
func HomeDirError(dir string, err error) error {
	return pathError(errcode.HomeDirError,
		"Cannot create gnfish directory <em>%s</em>", dir,
		"cannot create gnfish directory", err)
}

// ConfigTemplateError is returned when the default config.yaml cannot be
// written to the config directory.
func ConfigTemplateError(path string, err error) error {
	return pathError(errcode.ConfigTemplateError,
		"Cannot write default gnfish config to <em>%s</em>", path,
		"cannot write config template", err)
}

// ConfigReadError is returned when the config file cannot be read or
// does not match the config structure.
func ConfigReadError(path string, err error) error {
	return pathError(errcode.ConfigReadError,
		"Cannot read gnfish config <em>%s</em>", path,
		"cannot read config", err)
}

func ManifestReadError(path string, err error) error {
	return pathError(errcode.ManifestReadError,
		"Cannot read batch manifest <em>%s</em>", path,
		"cannot read manifest", err)
}

func ArchiveRemoveError(path string, err error) error {
	return pathError(errcode.ArchiveRemoveError,
		"Cannot remove SQLite archive <em>%s</em>", path,
		"cannot remove archive", err)
}

// pathError records the function that called the exported constructor.
func pathError(
	code gn.ErrorCode,
	msg, path, op string,
	err error,
) error {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: %s %s: %w", fn, op, path, err),
	}
}
