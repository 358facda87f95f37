package ioarchive

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/pkg/errcode"
)

var errNotInitialized = errors.New("archive is not initialized")

func OpenError(path string, err error) error {
	msg := "Cannot open archive <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ArchiveOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, path, err),
	}
}

func InitError(kind string, err error) error {
	msg := "Cannot create tables of <em>%s</em> archive"
	vars := []any{kind}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ArchiveInitError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s schema: %w", fn, kind, err),
	}
}

func SaveError(kind string, count int, err error) error {
	msg := "Cannot save <em>%d</em> evaluations to <em>%s</em> archive"
	vars := []any{count, kind}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ArchiveSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s save: %w", fn, kind, err),
	}
}

func UnknownTypeError(kind string) error {
	msg := "Unknown archive type <em>%s</em>, use none, sqlite or postgres"
	vars := []any{kind}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ArchiveUnknownTypeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown archive type '%s'", fn, kind),
	}
}
