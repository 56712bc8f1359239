package format

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeBytesNeverZeroAndConsistent(t *testing.T) {
	for _, f := range MemoryFormats() {
		size := f.SizeBytes()
		assert.NotZero(t, size, "format %s has zero size", f)
		assert.Equal(t, f.ComponentCount()*f.ScalarKind().SizeBytes(), size,
			"format %s size does not match component count × scalar size", f)

		// Column offsets must tile the element exactly: the last column's offset
		// plus one column's bytes equals the whole-format size.
		columnBytes := f.ScalarKind().SizeBytes() * f.Rows()
		assert.Equal(t, size, f.Columns()*columnBytes, "format %s columns do not tile its size", f)
	}
}

func TestSpotSizes(t *testing.T) {
	tests := []struct {
		format MemoryFormat
		size   uint32
	}{
		{FloatF32, 4},
		{Float2F32, 8},
		{Float3F32, 12},
		{Float4F32, 16},
		{Float3I8Norm, 3},
		{Float2U16Fixed, 4},
		{Float2x2F32, 16},
		{Float3x3F32, 36},
		{Float4x4F32, 64},
		{Float4x4U16Norm, 32},
		{Float2x3I8Norm, 6},
		{IntegerI32, 4},
		{Integer4I32, 16},
		{Integer3U16, 6},
		{Integer2U8, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.format.SizeBytes(), "size of %s", tt.format)
	}
}

func TestTypeIsTotalAndStable(t *testing.T) {
	for _, f := range MemoryFormats() {
		typ := f.Type()
		assert.GreaterOrEqual(t, int(typ), 0)
		assert.Less(t, int(typ), attributeTypeCount)
		assert.Equal(t, typ, f.Type(), "Type of %s changed between calls", f)

		// Each format is compatible with exactly one attribute type.
		for at := AttributeType(0); int(at) < attributeTypeCount; at++ {
			assert.Equal(t, at == typ, f.IsCompatible(at),
				"IsCompatible(%s, %s) disagrees with Type", f, at)
		}
	}
}

func TestTypeSpotChecks(t *testing.T) {
	tests := []struct {
		format MemoryFormat
		typ    AttributeType
	}{
		{FloatF32, AttributeTypeFloat},
		{FloatI8Norm, AttributeTypeFloat},
		{Float3F32, AttributeTypeFloatVector3},
		{Float3U16Norm, AttributeTypeFloatVector3},
		{Float2x2I16Fixed, AttributeTypeFloatMatrix2x2},
		{Float3x3F32, AttributeTypeFloatMatrix3x3},
		{Float4x2F32, AttributeTypeFloatMatrix4x2},
		{IntegerI8, AttributeTypeInteger},
		{IntegerU32, AttributeTypeUnsignedInteger},
		{Integer3I16, AttributeTypeIntegerVector3},
		{Integer4U8, AttributeTypeUnsignedIntegerVector4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.typ, tt.format.Type(), "type of %s", tt.format)
	}
}

func TestIntegerFormatsUseIntegerPath(t *testing.T) {
	for _, f := range MemoryFormats() {
		switch f.Type() {
		case AttributeTypeInteger, AttributeTypeIntegerVector2, AttributeTypeIntegerVector3, AttributeTypeIntegerVector4,
			AttributeTypeUnsignedInteger, AttributeTypeUnsignedIntegerVector2, AttributeTypeUnsignedIntegerVector3, AttributeTypeUnsignedIntegerVector4:
			assert.True(t, f.IsInteger(), "%s feeds an integer type but is not marked integer", f)
			assert.False(t, f.Normalized(), "%s is integer and normalized", f)
		default:
			assert.False(t, f.IsInteger(), "%s feeds a float type but is marked integer", f)
		}
	}
}

func TestAttributeTypeGLTypeRoundTrip(t *testing.T) {
	for at := AttributeType(0); int(at) < attributeTypeCount; at++ {
		glType := at.GLType()
		require.NotZero(t, glType, "GL type of %s", at)
		back, err := AttributeTypeFromGLType(glType)
		require.NoError(t, err)
		assert.Equal(t, at, back)
	}
}

func TestAttributeTypeFromGLTypeRejectsNonAttributeTypes(t *testing.T) {
	// SAMPLER_2D is a valid GL type but not a vertex attribute type.
	_, err := AttributeTypeFromGLType(0x8B5E)
	assert.Error(t, err)
}

func TestColumnVertexFormat(t *testing.T) {
	tests := []struct {
		format MemoryFormat
		want   wgpu.VertexFormat
	}{
		{FloatF32, wgpu.VertexFormatFloat32},
		{Float2F32, wgpu.VertexFormatFloat32x2},
		{Float3F32, wgpu.VertexFormatFloat32x3},
		{Float4F32, wgpu.VertexFormatFloat32x4},
		{Float4x4F32, wgpu.VertexFormatFloat32x4},
		{Float3x3F32, wgpu.VertexFormatFloat32x3},
		{Float2I8Norm, wgpu.VertexFormatSnorm8x2},
		{Float4U16Norm, wgpu.VertexFormatUnorm16x4},
		{IntegerI32, wgpu.VertexFormatSint32},
		{Integer2U8, wgpu.VertexFormatUint8x2},
		{Integer4I16, wgpu.VertexFormatSint16x4},
		{Integer3U32, wgpu.VertexFormatUint32x3},
	}
	for _, tt := range tests {
		got, err := tt.format.ColumnVertexFormat()
		require.NoError(t, err, "format %s", tt.format)
		assert.Equal(t, tt.want, got, "format %s", tt.format)
	}
}

func TestColumnVertexFormatUnrepresentable(t *testing.T) {
	// Fixed encodings and 1/3-component small-scalar shapes have no WebGPU equivalent.
	for _, f := range []MemoryFormat{Float2I8Fixed, FloatU16Fixed, Float3I8Norm, FloatI16Norm} {
		_, err := f.ColumnVertexFormat()
		assert.Error(t, err, "format %s should not be representable", f)
	}
}
