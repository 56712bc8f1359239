// package format holds the closed sets of memory formats and shader attribute types,
// the per-format descriptor tables, and the compatibility relation between the two sets.
// Everything in this package is a pure, total function over closed enumerations: there
// are no error paths because invalid inputs are unrepresentable.
package format

// ScalarKind identifies the per-component scalar encoding of a memory format.
type ScalarKind int

const (
	// ScalarFloat32 is a 32-bit IEEE 754 floating point component.
	ScalarFloat32 ScalarKind = iota

	// ScalarInt8 is a signed 8-bit integer component.
	ScalarInt8

	// ScalarUint8 is an unsigned 8-bit integer component.
	ScalarUint8

	// ScalarInt16 is a signed 16-bit integer component.
	ScalarInt16

	// ScalarUint16 is an unsigned 16-bit integer component.
	ScalarUint16

	// ScalarInt32 is a signed 32-bit integer component.
	ScalarInt32

	// ScalarUint32 is an unsigned 32-bit integer component.
	ScalarUint32
)

// SizeBytes returns the byte size of a single component of this scalar kind.
//
// Returns:
//   - uint32: 1, 2, or 4
func (s ScalarKind) SizeBytes() uint32 {
	switch s {
	case ScalarInt8, ScalarUint8:
		return 1
	case ScalarInt16, ScalarUint16:
		return 2
	default:
		return 4
	}
}

// String returns the GLSL-flavored name of the scalar kind.
//
// Returns:
//   - string: a short identifier such as "f32" or "u16"
func (s ScalarKind) String() string {
	switch s {
	case ScalarFloat32:
		return "f32"
	case ScalarInt8:
		return "i8"
	case ScalarUint8:
		return "u8"
	case ScalarInt16:
		return "i16"
	case ScalarUint16:
		return "u16"
	case ScalarInt32:
		return "i32"
	case ScalarUint32:
		return "u32"
	default:
		return "unknown"
	}
}

// MemoryFormat identifies one member of the closed set of CPU-side attribute byte
// layouts. Each member pairs a shape (scalar, vector of 2-4, or matrix of each
// 2-4 × 2-4 arrangement) with a scalar encoding, and is compatible with exactly
// one AttributeType. Members are only ever selected from the declared constants,
// never constructed dynamically.
type MemoryFormat uint8

// formatInfo is the fixed descriptor record for one memory format.
type formatInfo struct {
	// attributeType is the one shader attribute type this format is compatible with.
	attributeType AttributeType
	// columns is the number of matrix columns; 1 for scalar and vector shapes.
	columns uint32
	// rows is the number of components per column (the vector arity of each column).
	rows uint32
	// scalar is the per-component encoding.
	scalar ScalarKind
	// normalized reports whether integer components are normalized to [0,1] or [-1,1]
	// when fetched as floats.
	normalized bool
	// integer reports whether the format feeds an integer attribute and must be bound
	// through the integer pointer path, never the float one.
	integer bool
}

func (f MemoryFormat) info() formatInfo {
	return formatTable[f]
}

// SizeBytes returns the total byte size of one element of this format, covering all
// matrix columns. Always non-zero and equal to Columns × Rows × scalar size.
//
// Returns:
//   - uint32: the element size in bytes
func (f MemoryFormat) SizeBytes() uint32 {
	i := f.info()
	return i.columns * i.rows * i.scalar.SizeBytes()
}

// ComponentCount returns the total number of scalar components in one element of this
// format, counting every matrix column.
//
// Returns:
//   - uint32: components per element (1-16)
func (f MemoryFormat) ComponentCount() uint32 {
	i := f.info()
	return i.columns * i.rows
}

// Columns returns the number of matrix columns for this format. Scalar and vector
// formats report 1. Each column occupies its own shader attribute location when the
// format is applied.
//
// Returns:
//   - uint32: the column count (1-4)
func (f MemoryFormat) Columns() uint32 {
	return f.info().columns
}

// Rows returns the number of components in each column of this format. For scalar and
// vector formats this is the vector arity.
//
// Returns:
//   - uint32: the per-column component count (1-4)
func (f MemoryFormat) Rows() uint32 {
	return f.info().rows
}

// ScalarKind returns the per-component scalar encoding of this format.
//
// Returns:
//   - ScalarKind: the component encoding
func (f MemoryFormat) ScalarKind() ScalarKind {
	return f.info().scalar
}

// Normalized reports whether integer components of this format are normalized when
// fetched as floats. Always false for f32 and plain integer encodings.
//
// Returns:
//   - bool: true for the Norm encodings
func (f MemoryFormat) Normalized() bool {
	return f.info().normalized
}

// IsInteger reports whether this format feeds an integer shader attribute. Integer
// formats must be bound through the integer attribute pointer path; binding them
// through the float path would silently convert the data.
//
// Returns:
//   - bool: true for the Integer* formats
func (f MemoryFormat) IsInteger() bool {
	return f.info().integer
}

// Type returns the one shader attribute type this memory format is compatible with.
// The relation is total: every member of the closed format set maps to exactly one
// AttributeType.
//
// Returns:
//   - AttributeType: the compatible shader attribute type
func (f MemoryFormat) Type() AttributeType {
	return f.info().attributeType
}

// IsCompatible reports whether this memory format may back a shader input declared
// with the given attribute type.
//
// Parameters:
//   - t: the shader attribute type to check against
//
// Returns:
//   - bool: true if t is exactly the type returned by Type
func (f MemoryFormat) IsCompatible(t AttributeType) bool {
	return f.info().attributeType == t
}

// String returns the identifier of this memory format, for diagnostics.
//
// Returns:
//   - string: the constant name, e.g. "Float3F32"
func (f MemoryFormat) String() string {
	if int(f) < len(memoryFormatNames) {
		return memoryFormatNames[f]
	}
	return "MemoryFormat(invalid)"
}

// MemoryFormats returns every member of the closed memory format set in tag order.
// Intended for table-driven consumers and tests; the returned slice is freshly
// allocated on each call.
//
// Returns:
//   - []MemoryFormat: all 141 formats
func MemoryFormats() []MemoryFormat {
	out := make([]MemoryFormat, memoryFormatCount)
	for i := range out {
		out[i] = MemoryFormat(i)
	}
	return out
}
