package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		msg   string
		err   error
		code  gn.ErrorCode
		vars  int
		cause bool
	}{
		{"connection", ConnectionError("localhost", 5432, "gnfish",
			"postgres", cause), errcode.DBConnectionError, 6, true},
		{"not connected", NotConnectedError(),
			errcode.DBNotConnectedError, 0, false},
		{"table check", TableExistsCheckError("evaluations", cause),
			errcode.DBTableExistsCheckError, 1, true},
		{"drop", DropTableError("evaluations", cause),
			errcode.DBDropTableError, 1, true},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.NotEmpty(t, gnErr.Msg, v.msg)
		assert.Len(t, gnErr.Vars, v.vars, v.msg)
		if v.cause {
			assert.ErrorIs(t, gnErr.Err, cause, v.msg)
		}
	}
}
