// package vertex describes vertex input layouts: which buffer slots feed a pipeline,
// at what stride and input rate, and how the attributes inside each slot map onto
// shader locations. The layout is declared once, validated against program
// introspection at pipeline build, and applied as low-level pointer operations.
package vertex

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/format"
)

// AttributeDescriptor declares one vertex attribute within a buffer slot: the shader
// location it binds to, the memory format of its data, and its byte offset from the
// start of each element. Descriptor tables for user vertex types are typically
// produced by an external code-generation step and consumed here as-is.
type AttributeDescriptor struct {
	// Location is the base shader attribute location. Matrix formats occupy this
	// location and the consecutive locations after it, one per column.
	Location uint32
	// Format is the memory format of the attribute's data.
	Format format.MemoryFormat
	// OffsetBytes is the byte offset of the attribute from the start of an element.
	OffsetBytes uint32
}

// AttributePointerOp is one low-level attribute binding call: the exact arguments an
// attribute pointer setup against the graphics context needs for a single shader
// location. Matrix attributes expand into one op per column.
type AttributePointerOp struct {
	// Location is the shader attribute location this op targets.
	Location uint32
	// Components is the number of scalar components fetched per element (1-4).
	Components uint32
	// Scalar is the per-component encoding of the source data.
	Scalar format.ScalarKind
	// Normalized requests integer-to-float normalization on fetch.
	Normalized bool
	// Integer selects the integer pointer path; the value reaches the shader as an
	// integer rather than a float.
	Integer bool
	// StrideBytes is the byte distance between consecutive elements in the buffer.
	StrideBytes uint32
	// OffsetBytes is the byte offset of the first element's data for this location.
	OffsetBytes uint64
	// PerInstance marks the location as advancing once per instance instead of once
	// per vertex.
	PerInstance bool
}

// Apply computes the low-level binding calls needed to feed a shader attribute at the
// given location from data of the given memory format. Scalar and vector formats
// produce exactly one op. A matrix format with N columns produces N ops at locations
// location, location+1, ..., location+N-1; column i's offset advances by
// i × (scalar size × row count), so consecutive locations walk the columns of the
// matrix laid out contiguously in memory.
//
// The computation is pure: every value derives from the format's static layout
// metadata and the arguments.
//
// Parameters:
//   - location: the base shader attribute location
//   - f: the memory format of the attribute data
//   - strideBytes: the byte distance between consecutive elements in the buffer
//   - baseOffsetBytes: the byte offset of the attribute within the first element
//   - rate: whether the buffer advances per vertex or per instance
//
// Returns:
//   - []AttributePointerOp: one op per matrix column, in location order
func Apply(location uint32, f format.MemoryFormat, strideBytes uint32, baseOffsetBytes uint64, rate common.InputRate) []AttributePointerOp {
	columns := f.Columns()
	rows := f.Rows()
	columnBytes := uint64(f.ScalarKind().SizeBytes() * rows)

	ops := make([]AttributePointerOp, columns)
	for i := uint32(0); i < columns; i++ {
		ops[i] = AttributePointerOp{
			Location:    location + i,
			Components:  rows,
			Scalar:      f.ScalarKind(),
			Normalized:  f.Normalized(),
			Integer:     f.IsInteger(),
			StrideBytes: strideBytes,
			OffsetBytes: baseOffsetBytes + uint64(i)*columnBytes,
			PerInstance: rate == common.InputRatePerInstance,
		}
	}
	return ops
}

// Apply computes the low-level binding calls for this attribute within a buffer slot
// of the given stride and input rate. See the package-level Apply for the per-column
// expansion rule.
//
// Parameters:
//   - strideBytes: the byte distance between consecutive elements in the slot's buffer
//   - rate: the slot's input rate
//
// Returns:
//   - []AttributePointerOp: one op per matrix column, in location order
func (a AttributeDescriptor) Apply(strideBytes uint32, rate common.InputRate) []AttributePointerOp {
	return Apply(a.Location, a.Format, strideBytes, uint64(a.OffsetBytes), rate)
}
