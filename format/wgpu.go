package format

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// columnVertexFormats maps (scalar kind, normalized, rows) to the WebGPU vertex format
// describing one column of a memory format. WebGPU has no 1- or 3-component 8/16-bit
// formats and no un-normalized integer-to-float fetch, so the map covers only the
// representable subset; everything else reports an error from ColumnVertexFormat.
var columnVertexFormats = map[columnKey]wgpu.VertexFormat{
	{ScalarFloat32, false, 1}: wgpu.VertexFormatFloat32,
	{ScalarFloat32, false, 2}: wgpu.VertexFormatFloat32x2,
	{ScalarFloat32, false, 3}: wgpu.VertexFormatFloat32x3,
	{ScalarFloat32, false, 4}: wgpu.VertexFormatFloat32x4,

	{ScalarInt8, true, 2}:   wgpu.VertexFormatSnorm8x2,
	{ScalarInt8, true, 4}:   wgpu.VertexFormatSnorm8x4,
	{ScalarUint8, true, 2}:  wgpu.VertexFormatUnorm8x2,
	{ScalarUint8, true, 4}:  wgpu.VertexFormatUnorm8x4,
	{ScalarInt16, true, 2}:  wgpu.VertexFormatSnorm16x2,
	{ScalarInt16, true, 4}:  wgpu.VertexFormatSnorm16x4,
	{ScalarUint16, true, 2}: wgpu.VertexFormatUnorm16x2,
	{ScalarUint16, true, 4}: wgpu.VertexFormatUnorm16x4,

	{ScalarInt8, false, 2}:   wgpu.VertexFormatSint8x2,
	{ScalarInt8, false, 4}:   wgpu.VertexFormatSint8x4,
	{ScalarUint8, false, 2}:  wgpu.VertexFormatUint8x2,
	{ScalarUint8, false, 4}:  wgpu.VertexFormatUint8x4,
	{ScalarInt16, false, 2}:  wgpu.VertexFormatSint16x2,
	{ScalarInt16, false, 4}:  wgpu.VertexFormatSint16x4,
	{ScalarUint16, false, 2}: wgpu.VertexFormatUint16x2,
	{ScalarUint16, false, 4}: wgpu.VertexFormatUint16x4,

	{ScalarInt32, false, 1}:  wgpu.VertexFormatSint32,
	{ScalarInt32, false, 2}:  wgpu.VertexFormatSint32x2,
	{ScalarInt32, false, 3}:  wgpu.VertexFormatSint32x3,
	{ScalarInt32, false, 4}:  wgpu.VertexFormatSint32x4,
	{ScalarUint32, false, 1}: wgpu.VertexFormatUint32,
	{ScalarUint32, false, 2}: wgpu.VertexFormatUint32x2,
	{ScalarUint32, false, 3}: wgpu.VertexFormatUint32x3,
	{ScalarUint32, false, 4}: wgpu.VertexFormatUint32x4,
}

type columnKey struct {
	scalar     ScalarKind
	normalized bool
	rows       uint32
}

// ColumnVertexFormat returns the WebGPU vertex format describing one column of this
// memory format. Scalar and vector formats have a single column, so the result covers
// the whole element; matrix formats repeat it once per attribute location.
//
// Fixed (un-normalized integer-to-float) encodings and 1- or 3-component 8/16-bit
// shapes have no WebGPU equivalent and report an error.
//
// Returns:
//   - wgpu.VertexFormat: the per-column vertex format
//   - error: an error if WebGPU cannot represent the column layout
func (f MemoryFormat) ColumnVertexFormat() (wgpu.VertexFormat, error) {
	i := f.info()
	if !i.integer && i.scalar != ScalarFloat32 && !i.normalized {
		// Fixed encodings fetch integers as raw (un-normalized) floats, which WebGPU does not offer.
		return 0, fmt.Errorf("memory format %s has no WebGPU vertex format equivalent", f)
	}
	vf, ok := columnVertexFormats[columnKey{i.scalar, i.normalized, i.rows}]
	if !ok {
		return 0, fmt.Errorf("memory format %s has no WebGPU vertex format equivalent", f)
	}
	return vf, nil
}
