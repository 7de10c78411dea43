package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dataType DataType
		want     int
	}{
		{Unknown, 0},
		{Float16, 2},
		{Float32, 4},
		{Float64, 8},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{UInt8, 1},
		{UInt16, 2},
		{UInt32, 4},
		{UInt64, 8},
		{Bool, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dataType.Size(), "%s", tt.dataType)
	}
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", DataType(200).String())
}

func TestBHWCNumElements(t *testing.T) {
	assert.Equal(t, int64(120), BHWC{B: 2, H: 4, W: 3, C: 5}.NumElements())
	assert.Equal(t, int64(0), BHWC{B: 2, H: 0, W: 3, C: 5}.NumElements())
}
