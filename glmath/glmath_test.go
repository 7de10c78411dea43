package glmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivideRoundUp(t *testing.T) {
	tests := []struct {
		n, div, want uint32
	}{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{10, 4, 3},
		{8, 4, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DivideRoundUp(tt.n, tt.div), "DivideRoundUp(%d, %d)", tt.n, tt.div)
	}
}

func TestAlignByN(t *testing.T) {
	tests := []struct {
		n, alignment, want int
	}{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{40, 16, 48},
		{17, 16, 32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AlignByN(tt.n, tt.alignment), "AlignByN(%d, %d)", tt.n, tt.alignment)
	}
}
