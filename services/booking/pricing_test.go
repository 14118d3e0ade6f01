package booking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionAmount(t *testing.T) {
	cases := []struct {
		name       string
		perSession float64
		duration   int
		want       float64
	}{
		{"baseline duration", 500, 30, 500},
		{"double duration doubles the fee", 500, 60, 1000},
		{"odd fee scales exactly", 333, 60, 666},
		{"fractional result rounds up", 250.5, 30, 251},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SessionAmount(tc.perSession, tc.duration))
		})
	}
}
