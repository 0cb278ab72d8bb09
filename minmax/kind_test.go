package minmax

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindProperties(t *testing.T) {
	assert.True(t, Int8.Integral())
	assert.True(t, Int8.IsSigned())
	assert.False(t, Uint8.IsSigned())
	assert.False(t, Float32.Integral())
	assert.True(t, Float64.IsFloat())
	assert.Equal(t, 8, Uint8.Bits())
	assert.Equal(t, 16, Int16.Bits())
	assert.Equal(t, 32, Float32.Bits())
	assert.Equal(t, bits.UintSize, Int.Bits())
	assert.Equal(t, bits.UintSize, Uintptr.Bits())
	assert.Equal(t, 0, Invalid.Bits())
}

func TestKindCounterparts(t *testing.T) {
	assert.Equal(t, Uint, Int.ToUnsigned())
	assert.Equal(t, Uint32, Int32.ToUnsigned())
	assert.Equal(t, Uint64, Uint64.ToUnsigned())
	assert.Equal(t, Float64, Float64.ToUnsigned())

	assert.Equal(t, Int8, Uint8.ToSigned())
	assert.Equal(t, Int64, Uint64.ToSigned())
	assert.Equal(t, Int, Uintptr.ToSigned())
	assert.Equal(t, Int16, Int16.ToSigned())
}

func TestParseKind(t *testing.T) {
	for k := Int; k <= Float64; k++ {
		got, ok := ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	_, ok := ParseKind("invalid")
	assert.False(t, ok)
	_, ok = ParseKind("complex128")
	assert.False(t, ok)
	assert.Equal(t, "invalid", Kind(200).String())
}

func TestCommon(t *testing.T) {
	tests := []struct {
		a, b Kind
		want Kind
	}{
		{Int32, Int32, Int32},
		{Int8, Int32, Int32},
		{Uint16, Uint8, Uint16},
		{Int32, Uint32, Uint32},
		{Uint32, Int32, Uint32},
		{Int64, Uint32, Int64},
		{Uint8, Int16, Int16},
		{Int32, Uint64, Uint64},
		{Int64, Uint64, Uint64},
		{Int, Int64, Int64},
		{Uint, Uint64, Uint64},
		{Uintptr, Uint, Uint},
		{Int32, Float32, Float32},
		{Uint64, Float32, Float32},
		{Float32, Float64, Float64},
		{Int8, Float64, Float64},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"_"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Common(tt.a, tt.b))
			assert.Equal(t, tt.want, Common(tt.b, tt.a), "Common must be symmetric")
		})
	}
}

func TestHighestUnsigned(t *testing.T) {
	assert.Equal(t, Uint32, HighestUnsigned(Int32, Uint32))
	assert.Equal(t, Uint64, HighestUnsigned(Int8, Uint64))
	assert.Equal(t, Uint64, HighestUnsigned(Int64, Uint8))
	assert.Equal(t, Uint16, HighestUnsigned(Uint8, Int16))
}
