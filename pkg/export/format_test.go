package export

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234567.891, "1,234,567.89"},
		{1000, "1,000"},
		{-50.5, "-50.5"},
		{0, "0"},
		{23.333333, "23.33"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatNumber(c.in), "value %v", c.in)
	}
}

func TestFormatNumberNonFinite(t *testing.T) {
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))
	assert.Equal(t, "+Inf", FormatNumber(math.Inf(1)))
	assert.Equal(t, "-Inf", FormatNumber(math.Inf(-1)))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "9,831", FormatCount(9831))
	assert.Equal(t, "12", FormatCount(12))
}
