package mathutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-timelock/pkg/mathutil"
)

func TestToSmallestUnit(t *testing.T) {
	tests := []struct {
		amount   string
		expected uint64
	}{
		{"0", 0},
		{"1", 100000000},
		{"1.5", 150000000},
		{"0.00000001", 1},
		{"184467440737.09551615", 18446744073709551615},
	}

	for _, tt := range tests {
		units, err := mathutil.ToSmallestUnit(tt.amount, mathutil.DefaultPrecision)
		require.NoError(t, err)
		require.Equal(t, tt.expected, units)
	}
}

func TestFailingToSmallestUnit(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"-1",
		"0.000000001",
		"184467440737.09551616",
	}

	for _, amount := range tests {
		_, err := mathutil.ToSmallestUnit(amount, mathutil.DefaultPrecision)
		require.Error(t, err, amount)
	}
}

func TestFromSmallestUnit(t *testing.T) {
	require.Equal(t, "1.50000000", mathutil.FromSmallestUnit(150000000, 8))
	require.Equal(t, "0.00000001", mathutil.FromSmallestUnit(1, 8))
	require.Equal(t, "42", mathutil.FromSmallestUnit(42, 0))
}
