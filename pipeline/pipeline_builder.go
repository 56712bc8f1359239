package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-gl/transform_feedback"
	"github.com/Carmen-Shannon/oxy-gl/vertex"
)

// GraphicsPipelineOption is a functional option used to configure a GraphicsPipeline during construction.
type GraphicsPipelineOption func(*graphicsPipeline)

// WithVertexLayout sets the declared vertex input layout for this pipeline.
//
// Parameters:
//   - layout: the vertex input layout to validate against the program
//
// Returns:
//   - GraphicsPipelineOption: a function that sets the vertex layout for this pipeline
func WithVertexLayout(layout vertex.LayoutDescriptor) GraphicsPipelineOption {
	return func(p *graphicsPipeline) {
		p.vertexLayout = layout
	}
}

// WithTransformFeedbackLayout sets the declared transform-feedback layout for this pipeline.
//
// Parameters:
//   - layout: the transform-feedback layout to validate against the program
//
// Returns:
//   - GraphicsPipelineOption: a function that sets the transform-feedback layout for this pipeline
func WithTransformFeedbackLayout(layout transform_feedback.LayoutDescriptor) GraphicsPipelineOption {
	return func(p *graphicsPipeline) {
		p.feedbackLayout = layout
		p.hasFeedback = true
	}
}

// WithTopology sets the primitive topology for this pipeline.
//
// Parameters:
//   - topology: the primitive topology (e.g., wgpu.PrimitiveTopologyTriangleList)
//
// Returns:
//   - GraphicsPipelineOption: a function that sets the topology for this pipeline
func WithTopology(topology wgpu.PrimitiveTopology) GraphicsPipelineOption {
	return func(p *graphicsPipeline) {
		p.topology = topology
	}
}

// WithCullMode sets the cull mode for this pipeline.
//
// Parameters:
//   - mode: the cull mode (e.g., wgpu.CullModeBack)
//
// Returns:
//   - GraphicsPipelineOption: a function that sets the cull mode for this pipeline
func WithCullMode(mode wgpu.CullMode) GraphicsPipelineOption {
	return func(p *graphicsPipeline) {
		p.cullMode = mode
	}
}

// WithFrontFace sets the front face winding order for this pipeline.
//
// Parameters:
//   - face: the winding order (e.g., wgpu.FrontFaceCCW)
//
// Returns:
//   - GraphicsPipelineOption: a function that sets the front face for this pipeline
func WithFrontFace(face wgpu.FrontFace) GraphicsPipelineOption {
	return func(p *graphicsPipeline) {
		p.frontFace = face
	}
}

// WithIndexFormat sets the index buffer format for this pipeline.
//
// Parameters:
//   - f: the index format (wgpu.IndexFormatUint16 or wgpu.IndexFormatUint32)
//
// Returns:
//   - GraphicsPipelineOption: a function that sets the index format for this pipeline
func WithIndexFormat(f wgpu.IndexFormat) GraphicsPipelineOption {
	return func(p *graphicsPipeline) {
		p.indexFormat = f
	}
}
