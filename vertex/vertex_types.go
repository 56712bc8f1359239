package vertex

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/format"
)

// StandardVertex is a reference vertex type for static meshes, with the descriptor
// table a code-generation step would emit for it. It demonstrates the consumable
// shape of generated tables; applications define their own vertex types the same way.
// Size: 48 bytes, no padding required.
type StandardVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
	Color    [4]float32 // offset 32: per-vertex RGBA color (16 bytes)
}

// Size returns the size of the StandardVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *StandardVertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the StandardVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (v *StandardVertex) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Normal[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(v.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(v.TexCoord[1]))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(v.Color[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(v.Color[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(v.Color[2]))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(v.Color[3]))
	return buf
}

// StandardVertexAttributes is the descriptor table for StandardVertex: one attribute
// per field at consecutive shader locations, offsets matching the struct layout.
//
// Returns:
//   - []AttributeDescriptor: the descriptor table
func StandardVertexAttributes() []AttributeDescriptor {
	return []AttributeDescriptor{
		{Location: 0, Format: format.Float3F32, OffsetBytes: 0},
		{Location: 1, Format: format.Float3F32, OffsetBytes: 12},
		{Location: 2, Format: format.Float2F32, OffsetBytes: 24},
		{Location: 3, Format: format.Float4F32, OffsetBytes: 32},
	}
}

// InstanceTransform is a reference per-instance input type: a single 4×4
// model-to-world matrix per instance. Its one matrix attribute spans four
// consecutive shader locations when applied.
// Size: 64 bytes, no padding required.
type InstanceTransform struct {
	Model [16]float32 // offset 0: 4×4 model-to-world transform matrix, column major (64 bytes)
}

// Size returns the size of the InstanceTransform struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (t *InstanceTransform) Size() int {
	return int(unsafe.Sizeof(*t))
}

// Marshal serializes the InstanceTransform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (t *InstanceTransform) Marshal() []byte {
	buf := make([]byte, 64)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(t.Model[i]))
	}
	return buf
}

// InstanceTransformAttributes is the descriptor table for InstanceTransform: one
// matrix attribute at the given base location, spanning four locations when applied.
//
// Parameters:
//   - baseLocation: the first shader location the matrix occupies
//
// Returns:
//   - []AttributeDescriptor: the descriptor table
func InstanceTransformAttributes(baseLocation uint32) []AttributeDescriptor {
	return []AttributeDescriptor{
		{Location: baseLocation, Format: format.Float4x4F32, OffsetBytes: 0},
	}
}

// StandardLayout builds the vertex input layout for StandardVertex data in slot 0
// (per-vertex) and InstanceTransform data in slot 1 (per-instance), with the
// instance matrix starting at location 4.
//
// Returns:
//   - LayoutDescriptor: the frozen two-slot layout
func StandardLayout() LayoutDescriptor {
	b := NewLayoutBuilder()
	slot0 := b.AddBufferSlot(48, common.InputRatePerVertex)
	for _, a := range StandardVertexAttributes() {
		slot0.AddAttribute(a)
	}
	slot1 := b.AddBufferSlot(64, common.InputRatePerInstance)
	for _, a := range InstanceTransformAttributes(4) {
		slot1.AddAttribute(a)
	}
	return b.Finish()
}
