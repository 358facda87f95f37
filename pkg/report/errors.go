package report

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/pkg/errcode"
)

func EncodeError(count int, err error) error {
	msg := "Cannot encode <em>%d</em> evaluations"
	vars := []any{count}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.OutputEncodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: encode %d evaluations: %w", fn, count, err),
	}
}
