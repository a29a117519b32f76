package ranking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := map[string]int{
		"PT1H2M3S": 3723,
		"PT45S":    45,
		"PT10M":    600,
		"PT0S":     0,
		"PT":       0,
		"PT2H":     7200,
		"PT3M1S":   181,
		"P0D":      0,
		"P1DT2H":   93600,
	}
	for input, want := range cases {
		got, err := ParseDuration(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}
}

func TestParseDuration_Malformed(t *testing.T) {
	for _, input := range []string{"", "1:02:03", "PT1X", "pt1m", "PT1H2M3S extra", "T10M"} {
		_, err := ParseDuration(input)
		require.ErrorIs(t, err, ErrMalformedDuration, input)
	}
}
