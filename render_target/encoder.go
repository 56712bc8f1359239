package render_target

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// MaxColorAttachments is the architectural limit on color attachments per render
// target. It is a fixed property of the target API class, not a queried device limit.
const MaxColorAttachments = 16

// ErrMaxColorAttachmentsExceeded is returned when a caller attempts to add a
// seventeenth color attachment. Unlike the vertex slot limit, the attachment count
// can depend on runtime configuration, so this is a recoverable error rather than a
// panic.
var ErrMaxColorAttachmentsExceeded = errors.New("render_target: color attachment limit of 16 exceeded")

// encoderState is the shared accumulation state behind both encoder stages.
type encoderState struct {
	colors       []ColorAttachment
	depthStencil *DepthStencilAttachment
	dimensions   *common.Dimensions
}

func (s *encoderState) addColor(a ColorAttachment) error {
	if len(s.colors) >= MaxColorAttachments {
		return ErrMaxColorAttachmentsExceeded
	}
	s.colors = append(s.colors, a)
	s.track(a.View.Dimensions())
	return nil
}

// track folds an attachment's dimensions into the running component-wise minimum,
// initializing the tracker on the first attachment.
func (s *encoderState) track(d common.Dimensions) {
	if s.dimensions == nil {
		s.dimensions = &d
		return
	}
	*s.dimensions = s.dimensions.Min(d)
}

func (s *encoderState) finish() RenderTargetDescriptor {
	dims := common.Dimensions{}
	if s.dimensions != nil {
		dims = *s.dimensions
	}
	return RenderTargetDescriptor{
		colors:       s.colors,
		depthStencil: s.depthStencil,
		dimensions:   dims,
	}
}

// Encoder accumulates attachments into a RenderTargetDescriptor. This stage still
// accepts a depth/stencil-family attachment; setting one consumes the Encoder and
// returns a CompleteEncoder, so a second depth/stencil attachment is not expressible.
// An Encoder must not be used again after any Set method or Finish.
type Encoder struct {
	state encoderState
}

// CompleteEncoder is the encoder stage after the depth/stencil slot is taken. It
// offers only color attachment accumulation and Finish.
type CompleteEncoder struct {
	state encoderState
}

// NewEncoder creates an empty render target encoder.
//
// Returns:
//   - *Encoder: the new encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// AddColorAttachment appends a color attachment at the next free slot and folds its
// dimensions into the running minimum.
//
// Parameters:
//   - a: the color attachment to add
//
// Returns:
//   - error: ErrMaxColorAttachmentsExceeded if 16 color attachments are already
//     present, nil otherwise
func (e *Encoder) AddColorAttachment(a ColorAttachment) error {
	return e.state.addColor(a)
}

// SetDepthStencilAttachment records a combined depth/stencil attachment, folds its
// dimensions into the running minimum, and consumes this encoder.
//
// Parameters:
//   - a: the attachment for both depth and stencil aspects
//
// Returns:
//   - *CompleteEncoder: the next encoder stage, with the depth/stencil slot taken
func (e *Encoder) SetDepthStencilAttachment(a DepthStencilAttachment) *CompleteEncoder {
	a.Mode = DepthStencilModeCombined
	return e.setDepthStencil(a)
}

// SetDepthAttachment records a depth-only attachment, folds its dimensions into the
// running minimum, and consumes this encoder.
//
// Parameters:
//   - a: the attachment for the depth aspect
//
// Returns:
//   - *CompleteEncoder: the next encoder stage, with the depth/stencil slot taken
func (e *Encoder) SetDepthAttachment(a DepthStencilAttachment) *CompleteEncoder {
	a.Mode = DepthStencilModeDepthOnly
	return e.setDepthStencil(a)
}

// SetStencilAttachment records a stencil-only attachment, folds its dimensions into
// the running minimum, and consumes this encoder.
//
// Parameters:
//   - a: the attachment for the stencil aspect
//
// Returns:
//   - *CompleteEncoder: the next encoder stage, with the depth/stencil slot taken
func (e *Encoder) SetStencilAttachment(a DepthStencilAttachment) *CompleteEncoder {
	a.Mode = DepthStencilModeStencilOnly
	return e.setDepthStencil(a)
}

func (e *Encoder) setDepthStencil(a DepthStencilAttachment) *CompleteEncoder {
	e.state.depthStencil = &a
	e.state.track(a.View.Dimensions())
	next := &CompleteEncoder{state: e.state}
	e.state = encoderState{}
	return next
}

// Finish produces the immutable render target descriptor with the final inferred
// dimensions. The encoder must not be used afterward.
//
// Returns:
//   - RenderTargetDescriptor: the frozen descriptor
func (e *Encoder) Finish() RenderTargetDescriptor {
	d := e.state.finish()
	e.state = encoderState{}
	return d
}

// AddColorAttachment appends a color attachment at the next free slot and folds its
// dimensions into the running minimum.
//
// Parameters:
//   - a: the color attachment to add
//
// Returns:
//   - error: ErrMaxColorAttachmentsExceeded if 16 color attachments are already
//     present, nil otherwise
func (e *CompleteEncoder) AddColorAttachment(a ColorAttachment) error {
	return e.state.addColor(a)
}

// Finish produces the immutable render target descriptor with the final inferred
// dimensions. The encoder must not be used afterward.
//
// Returns:
//   - RenderTargetDescriptor: the frozen descriptor
func (e *CompleteEncoder) Finish() RenderTargetDescriptor {
	d := e.state.finish()
	e.state = encoderState{}
	return d
}
