package ioschema

import (
	"slices"

	"github.com/gnames/gnfish/pkg/schema"
)

// tableNames returns archive tables in the order they can be
// dropped.
func tableNames() []string {
	models := schema.AllModels()
	res := make([]string, len(models))
	for i, m := range models {
		res[i] = m.TableName()
	}
	slices.Reverse(res)
	return res
}
