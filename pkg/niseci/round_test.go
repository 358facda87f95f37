package niseci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		msg   string
		round func(float32) float32
		v     float32
		res   float32
	}{
		{"3 digits, half up", round3, 0.0005, 0.001},
		{"3 digits, half down", round3, -0.0005, -0.001},
		{"3 digits, below half", round3, 0.0004, 0},
		{"3 digits, value", round3, 0.3415, 0.342},
		{"2 digits, half up", round2, 0.125, 0.13},
		{"2 digits, half down", round2, -0.125, -0.13},
		{"2 digits, rqe", round2, 0.345, 0.35},
		{"2 digits, below half", round2, 0.614, 0.61},
	}

	for _, v := range tests {
		assert.Equal(v.res, v.round(v.v), v.msg)
	}
}
