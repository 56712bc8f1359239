package format

// The full closed set of memory formats. Float shapes pair every scalar, vector,
// and matrix shape with each floating-point encoding; the Fixed encodings are read
// as-is while the Norm encodings are normalized to [0,1] or [-1,1] on fetch.
// Integer shapes keep their integer value in the shader and pair with the plain
// signed and unsigned integer encodings.
const (
	FloatF32 MemoryFormat = iota
	FloatI8Fixed
	FloatI8Norm
	FloatI16Fixed
	FloatI16Norm
	FloatU8Fixed
	FloatU8Norm
	FloatU16Fixed
	FloatU16Norm

	Float2F32
	Float2I8Fixed
	Float2I8Norm
	Float2I16Fixed
	Float2I16Norm
	Float2U8Fixed
	Float2U8Norm
	Float2U16Fixed
	Float2U16Norm

	Float3F32
	Float3I8Fixed
	Float3I8Norm
	Float3I16Fixed
	Float3I16Norm
	Float3U8Fixed
	Float3U8Norm
	Float3U16Fixed
	Float3U16Norm

	Float4F32
	Float4I8Fixed
	Float4I8Norm
	Float4I16Fixed
	Float4I16Norm
	Float4U8Fixed
	Float4U8Norm
	Float4U16Fixed
	Float4U16Norm

	Float2x2F32
	Float2x2I8Fixed
	Float2x2I8Norm
	Float2x2I16Fixed
	Float2x2I16Norm
	Float2x2U8Fixed
	Float2x2U8Norm
	Float2x2U16Fixed
	Float2x2U16Norm

	Float2x3F32
	Float2x3I8Fixed
	Float2x3I8Norm
	Float2x3I16Fixed
	Float2x3I16Norm
	Float2x3U8Fixed
	Float2x3U8Norm
	Float2x3U16Fixed
	Float2x3U16Norm

	Float2x4F32
	Float2x4I8Fixed
	Float2x4I8Norm
	Float2x4I16Fixed
	Float2x4I16Norm
	Float2x4U8Fixed
	Float2x4U8Norm
	Float2x4U16Fixed
	Float2x4U16Norm

	Float3x2F32
	Float3x2I8Fixed
	Float3x2I8Norm
	Float3x2I16Fixed
	Float3x2I16Norm
	Float3x2U8Fixed
	Float3x2U8Norm
	Float3x2U16Fixed
	Float3x2U16Norm

	Float3x3F32
	Float3x3I8Fixed
	Float3x3I8Norm
	Float3x3I16Fixed
	Float3x3I16Norm
	Float3x3U8Fixed
	Float3x3U8Norm
	Float3x3U16Fixed
	Float3x3U16Norm

	Float3x4F32
	Float3x4I8Fixed
	Float3x4I8Norm
	Float3x4I16Fixed
	Float3x4I16Norm
	Float3x4U8Fixed
	Float3x4U8Norm
	Float3x4U16Fixed
	Float3x4U16Norm

	Float4x2F32
	Float4x2I8Fixed
	Float4x2I8Norm
	Float4x2I16Fixed
	Float4x2I16Norm
	Float4x2U8Fixed
	Float4x2U8Norm
	Float4x2U16Fixed
	Float4x2U16Norm

	Float4x3F32
	Float4x3I8Fixed
	Float4x3I8Norm
	Float4x3I16Fixed
	Float4x3I16Norm
	Float4x3U8Fixed
	Float4x3U8Norm
	Float4x3U16Fixed
	Float4x3U16Norm

	Float4x4F32
	Float4x4I8Fixed
	Float4x4I8Norm
	Float4x4I16Fixed
	Float4x4I16Norm
	Float4x4U8Fixed
	Float4x4U8Norm
	Float4x4U16Fixed
	Float4x4U16Norm

	IntegerI8
	IntegerI16
	IntegerI32
	IntegerU8
	IntegerU16
	IntegerU32

	Integer2I8
	Integer2I16
	Integer2I32
	Integer2U8
	Integer2U16
	Integer2U32

	Integer3I8
	Integer3I16
	Integer3I32
	Integer3U8
	Integer3U16
	Integer3U32

	Integer4I8
	Integer4I16
	Integer4I32
	Integer4U8
	Integer4U16
	Integer4U32
)

// memoryFormatCount is the number of members in the closed MemoryFormat set.
const memoryFormatCount = 141
