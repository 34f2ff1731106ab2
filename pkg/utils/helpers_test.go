package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{
		20.4:  20,
		19.6:  20,
		20.5:  21,
		-2.5:  -2,
		-2.6:  -3,
		0:     0,
		-0.4:  0,
		31.49: 31,
	}
	for in, want := range cases {
		assert.Equal(t, want, RoundHalfUp(in), "RoundHalfUp(%v)", in)
	}
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Light rain", CapitalizeFirst("light rain"))
	assert.Equal(t, "Clear sky", CapitalizeFirst("Clear sky"))
	assert.Equal(t, "", CapitalizeFirst(""))
	assert.Equal(t, "Éclaircies", CapitalizeFirst("éclaircies"))
	assert.Equal(t, "5 mm", CapitalizeFirst("5 mm"))
}
