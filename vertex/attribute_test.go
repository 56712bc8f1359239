package vertex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/format"
)

func TestApplyScalarAndVectorEmitOneOp(t *testing.T) {
	ops := Apply(2, format.Float3F32, 24, 12, common.InputRatePerVertex)
	require.Len(t, ops, 1)
	assert.Equal(t, uint32(2), ops[0].Location)
	assert.Equal(t, uint32(3), ops[0].Components)
	assert.Equal(t, format.ScalarFloat32, ops[0].Scalar)
	assert.False(t, ops[0].Normalized)
	assert.False(t, ops[0].Integer)
	assert.Equal(t, uint32(24), ops[0].StrideBytes)
	assert.Equal(t, uint64(12), ops[0].OffsetBytes)
	assert.False(t, ops[0].PerInstance)
}

func TestApplyMatrixEmitsOneOpPerColumn(t *testing.T) {
	// A 3-column × 3-row float matrix at location L with base offset O expands to
	// three ops at L, L+1, L+2 with offsets O, O+12, O+24.
	ops := Apply(5, format.Float3x3F32, 36, 100, common.InputRatePerVertex)
	require.Len(t, ops, 3)
	for i, op := range ops {
		assert.Equal(t, uint32(5+i), op.Location)
		assert.Equal(t, uint32(3), op.Components)
		assert.Equal(t, uint64(100+i*12), op.OffsetBytes)
		assert.Equal(t, uint32(36), op.StrideBytes)
	}
}

func TestApplyColumnOffsetsTileTheFormat(t *testing.T) {
	// Summing column strides over every column must land exactly on the format's
	// total size, for every format in the closed set.
	for _, f := range format.MemoryFormats() {
		ops := Apply(0, f, 0, 0, common.InputRatePerVertex)
		require.Len(t, ops, int(f.Columns()), "format %s", f)
		last := ops[len(ops)-1]
		columnBytes := uint64(f.ScalarKind().SizeBytes() * f.Rows())
		assert.Equal(t, uint64(f.SizeBytes()), last.OffsetBytes+columnBytes, "format %s", f)
	}
}

func TestApplyPerInstanceMarksEveryColumn(t *testing.T) {
	ops := Apply(4, format.Float4x4F32, 64, 0, common.InputRatePerInstance)
	require.Len(t, ops, 4)
	for i, op := range ops {
		assert.True(t, op.PerInstance, "column %d", i)
		assert.Equal(t, uint64(i*16), op.OffsetBytes, "column %d", i)
	}
}

func TestApplyIntegerFormat(t *testing.T) {
	ops := Apply(0, format.Integer4U8, 4, 0, common.InputRatePerVertex)
	require.Len(t, ops, 1)
	assert.True(t, ops[0].Integer)
	assert.Equal(t, format.ScalarUint8, ops[0].Scalar)
	assert.Equal(t, uint32(4), ops[0].Components)
}

func TestApplyNormalizedFormat(t *testing.T) {
	ops := Apply(1, format.Float2I16Norm, 4, 0, common.InputRatePerVertex)
	require.Len(t, ops, 1)
	assert.True(t, ops[0].Normalized)
	assert.False(t, ops[0].Integer)
}
