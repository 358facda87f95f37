package regression_test

import (
	"testing"

	"github.com/gnames/gnfish/pkg/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	assert := assert.New(t)
	pts := []regression.Point{{X: 1, Y: 100}, {X: 2, Y: 75}, {X: 3, Y: 50}}
	m, b, err := regression.Fit(pts)
	require.NoError(t, err)
	assert.Equal(float32(-25), m)
	assert.Equal(float32(125), b)

	_, _, err = regression.Fit([]regression.Point{{X: 1, Y: 5}, {X: 2, Y: 5}})
	assert.ErrorIs(err, regression.ErrSameValues)

	_, _, err = regression.Fit(nil)
	assert.ErrorIs(err, regression.ErrSameValues)
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		msg string
		pts []regression.Point
		res uint32
	}{
		{"decreasing", []regression.Point{{1, 100}, {2, 75}, {3, 50}}, 5},
		{"same values", []regression.Point{{5, 5}, {10, 5}, {15, 5}}, 15},
		{"increasing", []regression.Point{{50, 50}, {125, 75}, {225, 100}}, 225},
		{"four passes", []regression.Point{{70, 70}, {130, 60}, {150, 20}, {160, 10}},
			190},
	}

	for _, v := range tests {
		res, err := regression.Estimate(v.pts)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestQuantityByPass(t *testing.T) {
	tests := []struct {
		msg    string
		passes map[uint8]uint32
		res    uint32
	}{
		{"empty", map[uint8]uint32{}, 0},
		{"one pass", map[uint8]uint32{1: 42}, 42},
		{"one later pass", map[uint8]uint32{3: 7}, 7},
		{"two passes", map[uint8]uint32{1: 30, 2: 15}, 60},
		{"two passes equal", map[uint8]uint32{1: 30, 2: 30}, 60},
		{"two passes zero", map[uint8]uint32{1: 30, 2: 0}, 30},
		{"two passes growing", map[uint8]uint32{1: 15, 2: 30}, 45},
		{"four passes", map[uint8]uint32{1: 70, 2: 60, 3: 20, 4: 10}, 190},
		{"growing passes", map[uint8]uint32{1: 50, 2: 75, 3: 100}, 225},
		{"constant passes", map[uint8]uint32{1: 50, 2: 50, 3: 50}, 150},
		{"non-contiguous passes", map[uint8]uint32{2: 5, 3: 1}, 6},
	}

	for _, v := range tests {
		res, err := regression.QuantityByPass(v.passes)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestQuantityByPassZeroPass(t *testing.T) {
	_, err := regression.QuantityByPass(map[uint8]uint32{0: 3, 2: 5, 3: 1})
	assert.Error(t, err)
}

func TestTwoPasses(t *testing.T) {
	tests := []struct {
		c1, c2 uint32
		res    uint32
	}{
		{30, 12, 50},
		{30, 15, 60},
		{15, 30, 45},
		{30, 30, 60},
		{0, 9, 9},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, regression.TwoPasses(v.c1, v.c2))
	}
}
