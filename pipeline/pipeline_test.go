package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/format"
	"github.com/Carmen-Shannon/oxy-gl/transform_feedback"
	"github.com/Carmen-Shannon/oxy-gl/vertex"
)

func testProgram() Program {
	return Program{
		Label: "mesh",
		Attributes: []common.AttributeSlot{
			{Name: "position", Location: 0, Size: 1, GLType: format.AttributeTypeFloatVector3.GLType()},
			{Name: "normal", Location: 1, Size: 1, GLType: format.AttributeTypeFloatVector3.GLType()},
			{Name: "uv", Location: 2, Size: 1, GLType: format.AttributeTypeFloatVector2.GLType()},
			{Name: "color", Location: 3, Size: 1, GLType: format.AttributeTypeFloatVector4.GLType()},
			{Name: "model", Location: 4, Size: 1, GLType: format.AttributeTypeFloatMatrix4x4.GLType()},
		},
	}
}

func TestNewGraphicsPipelineValidatesVertexLayout(t *testing.T) {
	p, err := NewGraphicsPipeline("mesh", testProgram(), WithVertexLayout(vertex.StandardLayout()))
	require.NoError(t, err)
	assert.Equal(t, "mesh", p.Key())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.IndexFormatUint32, p.IndexFormat())

	layouts, err := p.VertexBufferLayouts()
	require.NoError(t, err)
	assert.Len(t, layouts, 2)
}

func TestNewGraphicsPipelineRejectsIncompatibleLayout(t *testing.T) {
	program := testProgram()
	// The shader wants a vec4 at location 0 but StandardLayout feeds a vec3.
	program.Attributes[0].GLType = format.AttributeTypeFloatVector4.GLType()

	_, err := NewGraphicsPipeline("mesh", program, WithVertexLayout(vertex.StandardLayout()))
	require.Error(t, err)
	var mismatch *vertex.AttributeTypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "position", mismatch.Name)
	assert.Contains(t, err.Error(), `pipeline "mesh"`)
}

func TestNewGraphicsPipelineValidatesTransformFeedback(t *testing.T) {
	fb := transform_feedback.NewLayoutBuilder()
	fb.AddBufferSlot().AddAttribute("position", format.AttributeTypeFloatVector3, 1)
	feedback := fb.Finish()

	program := testProgram()
	program.Varyings = []common.Varying{
		{Name: "position", Size: 1, GLType: format.AttributeTypeFloatVector4.GLType()},
	}

	_, err := NewGraphicsPipeline("capture", program,
		WithVertexLayout(vertex.StandardLayout()),
		WithTransformFeedbackLayout(feedback))
	require.Error(t, err)
	var mismatch *transform_feedback.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "position", mismatch.Name)

	program.Varyings[0].GLType = format.AttributeTypeFloatVector3.GLType()
	p, err := NewGraphicsPipeline("capture", program,
		WithVertexLayout(vertex.StandardLayout()),
		WithTransformFeedbackLayout(feedback))
	require.NoError(t, err)
	assert.Equal(t, []string{"position"}, p.VaryingNames())
}

func TestPipelineOptions(t *testing.T) {
	p, err := NewGraphicsPipeline("opts", testProgram(),
		WithVertexLayout(vertex.StandardLayout()),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithCullMode(wgpu.CullModeBack),
		WithFrontFace(wgpu.FrontFaceCW),
		WithIndexFormat(wgpu.IndexFormatUint16))
	require.NoError(t, err)
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.IndexFormatUint16, p.IndexFormat())
}

func TestCacheReturnsSamePipelineForSameKeyAndLayout(t *testing.T) {
	cache := NewCache()
	first, err := cache.GraphicsPipeline("mesh", testProgram(), WithVertexLayout(vertex.StandardLayout()))
	require.NoError(t, err)
	second, err := cache.GraphicsPipeline("mesh", testProgram(), WithVertexLayout(vertex.StandardLayout()))
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheDistinguishesLayouts(t *testing.T) {
	cache := NewCache()
	_, err := cache.GraphicsPipeline("mesh", testProgram(), WithVertexLayout(vertex.StandardLayout()))
	require.NoError(t, err)

	lb := vertex.NewLayoutBuilder()
	lb.AddBufferSlot(12, common.InputRatePerVertex).
		AddAttribute(vertex.AttributeDescriptor{Location: 0, Format: format.Float3F32, OffsetBytes: 0})
	slim := lb.Finish()

	program := Program{
		Label: "slim",
		Attributes: []common.AttributeSlot{
			{Name: "position", Location: 0, Size: 1, GLType: format.AttributeTypeFloatVector3.GLType()},
		},
	}
	_, err = cache.GraphicsPipeline("mesh", program, WithVertexLayout(slim))
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestCachePropagatesValidationErrors(t *testing.T) {
	cache := NewCache()
	program := testProgram()
	program.Attributes = append(program.Attributes, common.AttributeSlot{
		Name: "tangent", Location: 9, Size: 1, GLType: format.AttributeTypeFloatVector4.GLType(),
	})
	_, err := cache.GraphicsPipeline("mesh", program, WithVertexLayout(vertex.StandardLayout()))
	var missing *vertex.MissingAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 0, cache.Len(), "failed pipelines must not be cached")
}
