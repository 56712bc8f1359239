package vertex

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// VertexBufferLayouts converts the layout into the WebGPU vertex buffer layout list
// a render pipeline descriptor consumes. Matrix attributes expand into one
// wgpu.VertexAttribute per column at consecutive shader locations, mirroring the
// pointer-op expansion in Apply.
//
// Returns:
//   - []wgpu.VertexBufferLayout: one entry per buffer slot, in slot order
//   - error: an error if any attribute's memory format has no WebGPU equivalent
func (d LayoutDescriptor) VertexBufferLayouts() ([]wgpu.VertexBufferLayout, error) {
	out := make([]wgpu.VertexBufferLayout, 0, len(d.slots))
	for i, slot := range d.slots {
		layout := wgpu.VertexBufferLayout{
			ArrayStride: uint64(slot.strideBytes),
			StepMode:    slot.rate.StepMode(),
		}
		for _, a := range slot.attributes {
			columnFormat, err := a.Format.ColumnVertexFormat()
			if err != nil {
				return nil, fmt.Errorf("buffer slot %d: %w", i, err)
			}
			columnBytes := uint64(a.Format.ScalarKind().SizeBytes() * a.Format.Rows())
			for c := uint32(0); c < a.Format.Columns(); c++ {
				layout.Attributes = append(layout.Attributes, wgpu.VertexAttribute{
					Format:         columnFormat,
					Offset:         uint64(a.OffsetBytes) + uint64(c)*columnBytes,
					ShaderLocation: a.Location + c,
				})
			}
		}
		out = append(out, layout)
	}
	return out, nil
}
