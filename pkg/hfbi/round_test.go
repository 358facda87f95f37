package hfbi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound3(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		msg string
		v   float32
		res float32
	}{
		{"half up", 0.0005, 0.001},
		{"half down", -0.0005, -0.001},
		{"below half", 0.0004, 0},
		{"value", 1.7925, 1.793},
		{"infinity", float32(math.Inf(1)), float32(math.Inf(1))},
	}

	for _, v := range tests {
		assert.Equal(v.res, round3(v.v), v.msg)
	}
	assert.True(math.IsNaN(float64(round3(float32(math.NaN())))))
}
