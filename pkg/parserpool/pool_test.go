package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnfish/pkg/parserpool"
	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		msg   string
		name  string
		canon string
		ok    bool
	}{
		{"binomial", "Salmo trutta", "Salmo trutta", true},
		{"with author", "Salmo trutta Linnaeus, 1758", "Salmo trutta", true},
		{"extra spaces", "  Anguilla   anguilla ", "Anguilla anguilla", true},
		{"empty", "", "", false},
	}

	for _, v := range tests {
		res, ok := pool.Canonical(v.name)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.canon, res, v.msg)
	}
}

func TestConcurrentParse(t *testing.T) {
	pool := parserpool.NewPool(0)
	defer pool.Close()

	names := []string{"Barbus plebejus", "Squalius squalus", "Esox cisalpinus"}
	var wg sync.WaitGroup
	for range 10 {
		for _, n := range names {
			wg.Go(func() {
				res := pool.Parse(n)
				assert.True(t, res.Parsed, n)
			})
		}
	}
	wg.Wait()
}
