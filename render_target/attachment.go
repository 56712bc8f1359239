// package render_target builds immutable framebuffer descriptions: an ordered set of
// color attachments, at most one depth/stencil-family attachment, and the renderable
// dimensions inferred from them. The encoder enforces the attachment-count limit and
// the dimension rule; everything else is unrepresentable by construction.
package render_target

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/resource"
)

// LoadOp selects what happens to an attachment's contents when a render pass begins.
type LoadOp int

const (
	// LoadOpClear replaces the attachment contents with the attachment's clear value.
	LoadOpClear LoadOp = iota

	// LoadOpLoad preserves the attachment's existing contents.
	LoadOpLoad

	// LoadOpDontCare leaves the initial contents undefined; cheapest when the pass
	// overwrites every pixel anyway.
	LoadOpDontCare
)

// StoreOp selects what happens to an attachment's contents when a render pass ends.
type StoreOp int

const (
	// StoreOpStore writes the pass results back to the attachment.
	StoreOpStore StoreOp = iota

	// StoreOpDiscard drops the pass results; the attachment contents become undefined.
	StoreOpDiscard
)

// DepthStencilMode records which aspects of the depth/stencil slot an attachment
// uses.
type DepthStencilMode int

const (
	// DepthStencilModeCombined attaches both depth and stencil aspects.
	DepthStencilModeCombined DepthStencilMode = iota

	// DepthStencilModeDepthOnly attaches only the depth aspect.
	DepthStencilModeDepthOnly

	// DepthStencilModeStencilOnly attaches only the stencil aspect.
	DepthStencilModeStencilOnly
)

// ColorAttachment binds an image view to one color slot of a render target, with the
// load and store actions applied at that slot.
type ColorAttachment struct {
	// View is the image view rendered into.
	View resource.ImageView
	// Load is the action applied to the view's contents when a pass begins.
	Load LoadOp
	// ClearValue is the RGBA value written when Load is LoadOpClear; ignored otherwise.
	ClearValue common.ClearColor
	// Store is the action applied to the pass results when a pass ends.
	Store StoreOp
}

// DepthStencilAttachment binds an image view to the depth/stencil slot of a render
// target, with per-aspect clear values.
type DepthStencilAttachment struct {
	// View is the image view used for depth/stencil testing.
	View resource.ImageView
	// Mode records which aspects the attachment uses.
	Mode DepthStencilMode
	// Load is the action applied to the view's contents when a pass begins.
	Load LoadOp
	// ClearDepth is the depth value written when Load is LoadOpClear and the depth
	// aspect is attached.
	ClearDepth float32
	// ClearStencil is the stencil value written when Load is LoadOpClear and the
	// stencil aspect is attached.
	ClearStencil uint32
	// Store is the action applied to the pass results when a pass ends.
	Store StoreOp
}
