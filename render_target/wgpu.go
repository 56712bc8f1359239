package render_target

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// WGPULoadOp converts the load action to the equivalent WebGPU load op. WebGPU has
// no don't-care load; LoadOpDontCare lowers to a clear, which keeps the "contents
// are not preserved" promise.
//
// Returns:
//   - wgpu.LoadOp: wgpu.LoadOpLoad or wgpu.LoadOpClear
func (op LoadOp) WGPULoadOp() wgpu.LoadOp {
	if op == LoadOpLoad {
		return wgpu.LoadOpLoad
	}
	return wgpu.LoadOpClear
}

// WGPUStoreOp converts the store action to the equivalent WebGPU store op.
//
// Returns:
//   - wgpu.StoreOp: wgpu.StoreOpStore or wgpu.StoreOpDiscard
func (op StoreOp) WGPUStoreOp() wgpu.StoreOp {
	if op == StoreOpDiscard {
		return wgpu.StoreOpDiscard
	}
	return wgpu.StoreOpStore
}

// RenderPassDescriptor converts the render target into a WebGPU render pass
// descriptor, pairing each attachment with the concrete texture view backing it.
// The views are supplied by the caller because texture view creation belongs to the
// allocation collaborator; this descriptor only declares slots, actions, and clear
// values.
//
// Parameters:
//   - label: the debug label for the render pass
//   - colorViews: one texture view per color attachment, in slot order
//   - depthStencilView: the texture view for the depth/stencil attachment, or nil
//     when the target has none
//
// Returns:
//   - *wgpu.RenderPassDescriptor: the populated descriptor
func (d RenderTargetDescriptor) RenderPassDescriptor(label string, colorViews []*wgpu.TextureView, depthStencilView *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	desc := &wgpu.RenderPassDescriptor{
		Label:            label,
		ColorAttachments: make([]wgpu.RenderPassColorAttachment, len(d.colors)),
	}
	for i, a := range d.colors {
		var view *wgpu.TextureView
		if i < len(colorViews) {
			view = colorViews[i]
		}
		desc.ColorAttachments[i] = wgpu.RenderPassColorAttachment{
			View:       view,
			LoadOp:     a.Load.WGPULoadOp(),
			StoreOp:    a.Store.WGPUStoreOp(),
			ClearValue: a.ClearValue.Color(),
		}
	}
	if d.depthStencil != nil {
		a := *d.depthStencil
		ds := &wgpu.RenderPassDepthStencilAttachment{View: depthStencilView}
		if a.Mode != DepthStencilModeStencilOnly {
			ds.DepthLoadOp = a.Load.WGPULoadOp()
			ds.DepthStoreOp = a.Store.WGPUStoreOp()
			ds.DepthClearValue = a.ClearDepth
		}
		if a.Mode != DepthStencilModeDepthOnly {
			ds.StencilLoadOp = a.Load.WGPULoadOp()
			ds.StencilStoreOp = a.Store.WGPUStoreOp()
			ds.StencilClearValue = a.ClearStencil
		}
		desc.DepthStencilAttachment = ds
	}
	return desc
}

// RenderPassDescriptor converts the default render target into a WebGPU render pass
// descriptor over the surface's texture views.
//
// Parameters:
//   - label: the debug label for the render pass
//   - surfaceView: the swapchain/canvas color view for the current frame
//   - depthView: the surface depth view, or nil to omit the depth plane
//
// Returns:
//   - *wgpu.RenderPassDescriptor: the populated descriptor
func (t DefaultRenderTarget) RenderPassDescriptor(label string, surfaceView, depthView *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	desc := &wgpu.RenderPassDescriptor{
		Label: label,
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       surfaceView,
				LoadOp:     t.ColorLoad.WGPULoadOp(),
				StoreOp:    t.ColorStore.WGPUStoreOp(),
				ClearValue: t.ClearValue.Color(),
			},
		},
	}
	if depthView != nil {
		desc.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            depthView,
			DepthLoadOp:     t.DepthLoad.WGPULoadOp(),
			DepthStoreOp:    t.DepthStore.WGPUStoreOp(),
			DepthClearValue: t.ClearDepth,
		}
	}
	return desc
}
