package location_test

import (
	"testing"

	"github.com/gnames/gnfish/pkg/location"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		msg string
		loc location.Location
		res string
	}{
		{"empty", location.Location{}, ""},
		{"both", location.Location{Region: "Toscana", Province: "Pisa"}, "Pisa (Toscana)"},
		{"region only", location.Location{Region: "Toscana"}, "Toscana"},
		{"province only", location.Location{Province: "Pisa"}, "Pisa"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, v.loc.String(), v.msg)
	}
}
