package ioschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, []string{"species_metrics", "evaluations"}, tableNames())
}
