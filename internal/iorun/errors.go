package iorun

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/pkg/errcode"
	"github.com/gnames/gnfish/pkg/report"
)

func ComputationError(idx report.Index, station string, err error) error {
	code := errcode.NISECIComputationError
	if idx == report.HFBI {
		code = errcode.HFBIComputationError
	}
	msg := "Cannot compute <em>%s</em> of station <em>%s</em>: %s"
	vars := []any{idx, station, err.Error()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s of %s: %w", fn, idx, station, err),
	}
}

func UnknownIndexError(idx string) error {
	msg := "Unknown index <em>%s</em>"
	vars := []any{idx}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown index '%s'", fn, idx),
	}
}

func ManifestError(path string, problems []string) error {
	msg := "Invalid batch manifest <em>%s</em>:\n%s"
	vars := []any{path, strings.Join(problems, "\n")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ManifestError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: manifest %s: %s",
			fn, path, strings.Join(problems, "; ")),
	}
}

func StationError(num int, station string, err error) error {
	msg := "Station <em>%d</em> (<em>%s</em>) failed"
	vars := []any{num, station}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.BatchStationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: station %d: %w", fn, num, err),
	}
}

func FailuresError(failed, total int) error {
	msg := "<em>%d</em> of <em>%d</em> stations failed"
	vars := []any{failed, total}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.BatchStationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %d of %d stations failed", fn, failed, total),
	}
}
