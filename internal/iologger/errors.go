package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/pkg/errcode"
)

// LogFileError is returned when the file destination is configured but
// gnfish.log cannot be opened in the log directory.
func LogFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	return &gn.Error{
		Code: errcode.LogFileError,
		Msg:  "Cannot open gnfish log <em>%s</em>, set log.destination to stderr",
		Vars: []any{path},
		Err: fmt.Errorf("from %s: cannot open log file %s: %w",
			runtime.FuncForPC(pc).Name(), path, err),
	}
}
