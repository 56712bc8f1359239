package render_target

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// RenderTargetDescriptor is an immutable framebuffer description: the ordered color
// attachments, the optional depth/stencil attachment, and the renderable dimensions
// inferred as the component-wise minimum over every attachment present. Produce one
// with an Encoder.
type RenderTargetDescriptor struct {
	colors       []ColorAttachment
	depthStencil *DepthStencilAttachment
	dimensions   common.Dimensions
}

// ColorAttachments returns the color attachments in slot order.
//
// Returns:
//   - []ColorAttachment: a copy of the attachment list
func (d RenderTargetDescriptor) ColorAttachments() []ColorAttachment {
	out := make([]ColorAttachment, len(d.colors))
	copy(out, d.colors)
	return out
}

// DepthStencilAttachment returns the depth/stencil-family attachment, if one was set.
//
// Returns:
//   - DepthStencilAttachment: the attachment (zero value when absent)
//   - bool: true if a depth/stencil attachment was set
func (d RenderTargetDescriptor) DepthStencilAttachment() (DepthStencilAttachment, bool) {
	if d.depthStencil == nil {
		return DepthStencilAttachment{}, false
	}
	return *d.depthStencil, true
}

// Dimensions returns the renderable dimensions of the target: the component-wise
// minimum width and height over every attachment. Zero when the target has no
// attachments.
//
// Returns:
//   - common.Dimensions: the inferred dimensions
func (d RenderTargetDescriptor) Dimensions() common.Dimensions {
	return d.dimensions
}

// DefaultRenderTarget describes rendering into the externally managed default
// framebuffer (the canvas or swapchain surface). It carries no user attachments:
// the surface's color and depth/stencil planes stand in for them, so only the
// dimensions and the load/store actions are configurable.
type DefaultRenderTarget struct {
	// Dimensions is the pixel size of the surface.
	Dimensions common.Dimensions
	// ColorLoad is the action applied to the color plane when a pass begins.
	ColorLoad LoadOp
	// ClearValue is the RGBA value written when ColorLoad is LoadOpClear.
	ClearValue common.ClearColor
	// ColorStore is the action applied to the color plane when a pass ends.
	ColorStore StoreOp
	// DepthLoad is the action applied to the depth plane when a pass begins.
	DepthLoad LoadOp
	// ClearDepth is the depth value written when DepthLoad is LoadOpClear.
	ClearDepth float32
	// DepthStore is the action applied to the depth plane when a pass ends.
	DepthStore StoreOp
}

// NewDefaultRenderTarget creates a default render target description that clears the
// surface to the given color and a depth of 1.0 at the start of each pass, stores
// the color results, and discards depth.
//
// Parameters:
//   - dimensions: the pixel size of the surface
//   - clear: the RGBA clear value for the color plane
//
// Returns:
//   - DefaultRenderTarget: the description
func NewDefaultRenderTarget(dimensions common.Dimensions, clear common.ClearColor) DefaultRenderTarget {
	return DefaultRenderTarget{
		Dimensions: dimensions,
		ColorLoad:  LoadOpClear,
		ClearValue: clear,
		ColorStore: StoreOpStore,
		DepthLoad:  LoadOpClear,
		ClearDepth: 1.0,
		DepthStore: StoreOpDiscard,
	}
}
