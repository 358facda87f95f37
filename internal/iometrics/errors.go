package iometrics

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/pkg/errcode"
)

func MetricsFileError(path string, err error) error {
	msg := "Cannot write metrics to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.BatchMetricsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, path, err),
	}
}
