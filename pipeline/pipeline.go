// package pipeline is the consumer surface of the layout descriptors: it pairs a
// declared vertex input layout and optional transform-feedback layout with the
// introspection data of a linked program, runs every compatibility check exactly
// once at build time, and caches validated pipelines so the checks never re-run per
// draw.
package pipeline

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/transform_feedback"
	"github.com/Carmen-Shannon/oxy-gl/vertex"
)

// Program is the introspection data of a linked shader program, queried by the
// shader-compilation collaborator. This library never compiles or links programs; it
// only reconciles declared layouts against these reported facts.
type Program struct {
	// Label is a debug label for the program.
	Label string
	// Attributes are the active vertex-stage inputs, as reported by the linker.
	Attributes []common.AttributeSlot
	// Varyings are the transform-feedback outputs in declaration order, as reported
	// by the linker. Empty when the program captures nothing.
	Varyings []common.Varying
}

// graphicsPipeline is the implementation of the GraphicsPipeline interface.
type graphicsPipeline struct {
	// key is the unique identifier for this pipeline, used for caching and lookups
	key string
	// program is the introspection data the pipeline was validated against
	program Program

	// vertexLayout is the declared vertex input layout
	vertexLayout vertex.LayoutDescriptor
	// feedbackLayout is the declared transform-feedback layout, meaningful only when
	// hasFeedback is set
	feedbackLayout transform_feedback.LayoutDescriptor
	hasFeedback    bool

	// The following properties configure fixed-function state and can be set with
	// the builder options. They default to the most common draw configuration.

	topology    wgpu.PrimitiveTopology
	cullMode    wgpu.CullMode
	frontFace   wgpu.FrontFace
	indexFormat wgpu.IndexFormat
}

// GraphicsPipeline is a validated pairing of layout descriptors with a linked
// program. Construction is the one place the declared layouts are reconciled against
// the program's introspection data; a GraphicsPipeline value therefore certifies
// that its layouts and program agree.
type GraphicsPipeline interface {
	// Key returns the unique key associated with this pipeline, used for caching and lookups.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	Key() string

	// Program returns the introspection data this pipeline was validated against.
	//
	// Returns:
	//   - Program: the program introspection data
	Program() Program

	// VertexLayout returns the declared vertex input layout.
	//
	// Returns:
	//   - vertex.LayoutDescriptor: the vertex input layout
	VertexLayout() vertex.LayoutDescriptor

	// TransformFeedbackLayout returns the declared transform-feedback layout, if any.
	//
	// Returns:
	//   - transform_feedback.LayoutDescriptor: the layout (zero value when absent)
	//   - bool: true if a transform-feedback layout was declared
	TransformFeedbackLayout() (transform_feedback.LayoutDescriptor, bool)

	// Topology returns the primitive topology configured for this pipeline.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology
	Topology() wgpu.PrimitiveTopology

	// CullMode returns the cull mode configured for this pipeline.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode
	CullMode() wgpu.CullMode

	// FrontFace returns the front face winding order configured for this pipeline.
	//
	// Returns:
	//   - wgpu.FrontFace: the front face winding order
	FrontFace() wgpu.FrontFace

	// IndexFormat returns the index buffer format configured for this pipeline.
	//
	// Returns:
	//   - wgpu.IndexFormat: the index format
	IndexFormat() wgpu.IndexFormat

	// VertexBufferLayouts converts the vertex input layout into the WebGPU vertex
	// buffer layout list for render pipeline creation.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: one entry per buffer slot
	//   - error: an error if a memory format has no WebGPU equivalent
	VertexBufferLayouts() ([]wgpu.VertexBufferLayout, error)

	// VaryingNames returns the transform-feedback varying name list to hand to the
	// program linker, or nil when no transform-feedback layout was declared.
	//
	// Returns:
	//   - []string: the varying names in capture order, or nil
	VaryingNames() []string
}

var _ GraphicsPipeline = &graphicsPipeline{}

// NewGraphicsPipeline validates the configured layouts against the program's
// introspection data and returns the pipeline on success. The vertex input layout is
// checked against the program's active attributes, and the transform-feedback layout
// (when declared) against the program's varyings, index for index. Both checks run
// here and nowhere else; callers that build pipelines through a Cache get each
// validation at most once per (key, layout) pair.
//
// Parameters:
//   - key: the unique key for this pipeline
//   - program: the introspection data of the linked program
//   - opts: a variadic list of GraphicsPipelineOption functions to configure the pipeline
//
// Returns:
//   - GraphicsPipeline: the validated pipeline
//   - error: the first layout incompatibility, wrapped with the pipeline key
func NewGraphicsPipeline(key string, program Program, opts ...GraphicsPipelineOption) (GraphicsPipeline, error) {
	p := newGraphicsPipeline(key, program, opts...)
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func newGraphicsPipeline(key string, program Program, opts ...GraphicsPipelineOption) *graphicsPipeline {
	p := &graphicsPipeline{
		key:         key,
		program:     program,
		topology:    wgpu.PrimitiveTopologyTriangleList,
		cullMode:    wgpu.CullModeNone,
		frontFace:   wgpu.FrontFaceCCW,
		indexFormat: wgpu.IndexFormatUint32,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *graphicsPipeline) validate() error {
	if err := vertex.CheckCompatibility(p.vertexLayout, p.program.Attributes); err != nil {
		return fmt.Errorf("pipeline %q: %w", p.key, err)
	}
	if p.hasFeedback {
		if err := p.feedbackLayout.CheckCompatibility(p.program.Varyings); err != nil {
			return fmt.Errorf("pipeline %q: %w", p.key, err)
		}
	}
	return nil
}

func (p *graphicsPipeline) Key() string {
	return p.key
}

func (p *graphicsPipeline) Program() Program {
	return p.program
}

func (p *graphicsPipeline) VertexLayout() vertex.LayoutDescriptor {
	return p.vertexLayout
}

func (p *graphicsPipeline) TransformFeedbackLayout() (transform_feedback.LayoutDescriptor, bool) {
	return p.feedbackLayout, p.hasFeedback
}

func (p *graphicsPipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *graphicsPipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *graphicsPipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *graphicsPipeline) IndexFormat() wgpu.IndexFormat {
	return p.indexFormat
}

func (p *graphicsPipeline) VertexBufferLayouts() ([]wgpu.VertexBufferLayout, error) {
	return p.vertexLayout.VertexBufferLayouts()
}

func (p *graphicsPipeline) VaryingNames() []string {
	if !p.hasFeedback {
		return nil
	}
	return p.feedbackLayout.VaryingNames()
}
