package hashmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{11, true},
		{23, true},
		{25, false},
		{97, true},
		{7919, true},
		{7921, false}, // 89*89
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, isPrime(tt.n), "isPrime(%d)", tt.n)
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 5},
		{8, 11},
		{11, 11},
		{22, 23},
		{24, 29},
		{90, 97},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, nextPrime(tt.n), "nextPrime(%d)", tt.n)
	}
}
