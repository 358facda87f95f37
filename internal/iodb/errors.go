package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/pkg/errcode"
)

// ConnectionError creates an error for failed database
// connections.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL at <em>%s:%d</em>

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database <em>%s</em> does not exist
  - Wrong credentials for user <em>%s</em>

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     pg_isready -h %s -p %d
  2. Review the database section of:
     ~/.config/gnfish/config.yaml`

	vars := []any{host, port, database, user, host, port}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError creates an error for operations that
// need a connection pool.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError creates an error for a failed
// table lookup.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to check table %s: %w",
			table, err),
	}
}

// DropTableError creates an error for a table that could
// not be dropped.
func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to drop table %s: %w",
			table, err),
	}
}
