package render_target

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

func TestLoadAndStoreOpConversion(t *testing.T) {
	assert.Equal(t, wgpu.LoadOpClear, LoadOpClear.WGPULoadOp())
	assert.Equal(t, wgpu.LoadOpLoad, LoadOpLoad.WGPULoadOp())
	// WebGPU has no don't-care load; it lowers to a clear.
	assert.Equal(t, wgpu.LoadOpClear, LoadOpDontCare.WGPULoadOp())
	assert.Equal(t, wgpu.StoreOpStore, StoreOpStore.WGPUStoreOp())
	assert.Equal(t, wgpu.StoreOpDiscard, StoreOpDiscard.WGPUStoreOp())
}

func TestRenderPassDescriptorCarriesActionsAndClearValues(t *testing.T) {
	e := NewEncoder()
	require.NoError(t, e.AddColorAttachment(ColorAttachment{
		View:       testView(t, "color", 640, 480),
		Load:       LoadOpClear,
		ClearValue: common.ClearColor{0.1, 0.2, 0.3, 1},
		Store:      StoreOpStore,
	}))
	complete := e.SetDepthStencilAttachment(DepthStencilAttachment{
		View:         testView(t, "depth", 640, 480),
		Load:         LoadOpClear,
		ClearDepth:   1.0,
		ClearStencil: 7,
		Store:        StoreOpDiscard,
	})
	d := complete.Finish()

	desc := d.RenderPassDescriptor("main pass", []*wgpu.TextureView{nil}, nil)
	require.Len(t, desc.ColorAttachments, 1)
	ca := desc.ColorAttachments[0]
	assert.Equal(t, wgpu.LoadOpClear, ca.LoadOp)
	assert.Equal(t, wgpu.StoreOpStore, ca.StoreOp)
	assert.Equal(t, wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}, ca.ClearValue)

	require.NotNil(t, desc.DepthStencilAttachment)
	assert.Equal(t, wgpu.LoadOpClear, desc.DepthStencilAttachment.DepthLoadOp)
	assert.Equal(t, wgpu.StoreOpDiscard, desc.DepthStencilAttachment.DepthStoreOp)
	assert.Equal(t, float32(1.0), desc.DepthStencilAttachment.DepthClearValue)
	assert.Equal(t, uint32(7), desc.DepthStencilAttachment.StencilClearValue)
}

func TestDefaultRenderTarget(t *testing.T) {
	rt := NewDefaultRenderTarget(common.Dimensions{Width: 1920, Height: 1080}, common.ClearColor{0.1, 0.1, 0.1, 1})
	assert.Equal(t, LoadOpClear, rt.ColorLoad)
	assert.Equal(t, StoreOpStore, rt.ColorStore)
	assert.Equal(t, float32(1.0), rt.ClearDepth)
	assert.Equal(t, StoreOpDiscard, rt.DepthStore)

	desc := rt.RenderPassDescriptor("default", nil, nil)
	require.Len(t, desc.ColorAttachments, 1)
	assert.Equal(t, wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}, desc.ColorAttachments[0].ClearValue)
	assert.Nil(t, desc.DepthStencilAttachment)
}
