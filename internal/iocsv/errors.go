package iocsv

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/pkg/errcode"
)

// ValidationError keeps every problem found in a CSV file.
type ValidationError struct {
	File     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid records in %s: %s",
		e.File, strings.Join(e.Problems, "; "))
}

func CSVOpenError(path string, err error) error {
	msg := "Cannot open CSV file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CSVOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, path, err),
	}
}

func CSVHeaderError(path string, want, got []string) error {
	msg := "Unexpected header in <em>%s</em>, expected <em>%s</em>"
	exp := strings.Join(want, ";")
	vars := []any{path, exp}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CSVHeaderError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: header of %s is '%s', expected '%s'",
			fn, path, strings.Join(got, ";"), exp),
	}
}

func CSVRecordError(path string, err error) error {
	msg := "Cannot read records of <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CSVRecordError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s: %w", fn, path, err),
	}
}

func CSVValidationError(path string, problems []string) error {
	msg := "Found <em>%d</em> problems in <em>%s</em>:\n%s"
	vars := []any{len(problems), path, strings.Join(problems, "\n")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CSVValidationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %w", fn,
			&ValidationError{File: path, Problems: problems}),
	}
}
