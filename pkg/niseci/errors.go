package niseci

import (
	"errors"
	"strings"
)

// Errors lists every problem found during a computation.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

func prefixErrors(stage string, err error) error {
	var errs Errors
	if !errors.As(err, &errs) {
		return Errors{"computing " + stage + ": " + err.Error()}
	}
	res := make(Errors, len(errs))
	for i, v := range errs {
		res[i] = "computing " + stage + ": " + v
	}
	return res
}
