package render_target

import (
	"fmt"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/resource"
)

func testView(t *testing.T, label string, width, height uint32) resource.ImageView {
	t.Helper()
	img := resource.NewImage(label, common.Dimensions{Width: width, Height: height}, wgpu.TextureFormatRGBA8Unorm, 1, nil)
	view, err := resource.NewImageView(img, 0)
	require.NoError(t, err)
	return view
}

func colorAttachment(t *testing.T, label string, width, height uint32) ColorAttachment {
	t.Helper()
	return ColorAttachment{
		View:       testView(t, label, width, height),
		Load:       LoadOpClear,
		ClearValue: common.ClearColor{0, 0, 0, 1},
		Store:      StoreOpStore,
	}
}

func TestEncoderAcceptsSixteenColorAttachments(t *testing.T) {
	e := NewEncoder()
	for i := 0; i < MaxColorAttachments; i++ {
		require.NoError(t, e.AddColorAttachment(colorAttachment(t, fmt.Sprintf("color-%d", i), 256, 256)))
	}
	d := e.Finish()
	assert.Len(t, d.ColorAttachments(), MaxColorAttachments)
}

func TestEncoderRejectsSeventeenthColorAttachment(t *testing.T) {
	e := NewEncoder()
	for i := 0; i < MaxColorAttachments; i++ {
		require.NoError(t, e.AddColorAttachment(colorAttachment(t, "color", 256, 256)))
	}
	err := e.AddColorAttachment(colorAttachment(t, "overflow", 256, 256))
	assert.ErrorIs(t, err, ErrMaxColorAttachmentsExceeded)
}

func TestDimensionInferenceIsComponentWiseMinimum(t *testing.T) {
	e := NewEncoder()
	require.NoError(t, e.AddColorAttachment(colorAttachment(t, "a", 800, 600)))
	require.NoError(t, e.AddColorAttachment(colorAttachment(t, "b", 640, 480)))
	require.NoError(t, e.AddColorAttachment(colorAttachment(t, "c", 1024, 768)))
	d := e.Finish()
	assert.Equal(t, common.Dimensions{Width: 640, Height: 480}, d.Dimensions())
}

func TestDimensionInferenceCrossesAxes(t *testing.T) {
	// The minimum is taken per component, so the result need not match any single
	// attachment.
	e := NewEncoder()
	require.NoError(t, e.AddColorAttachment(colorAttachment(t, "wide", 1024, 200)))
	require.NoError(t, e.AddColorAttachment(colorAttachment(t, "tall", 300, 900)))
	assert.Equal(t, common.Dimensions{Width: 300, Height: 200}, e.Finish().Dimensions())
}

func TestDepthStencilAttachmentJoinsDimensionTracking(t *testing.T) {
	e := NewEncoder()
	require.NoError(t, e.AddColorAttachment(colorAttachment(t, "color", 800, 600)))
	complete := e.SetDepthStencilAttachment(DepthStencilAttachment{
		View:       testView(t, "depth", 512, 512),
		Load:       LoadOpClear,
		ClearDepth: 1.0,
		Store:      StoreOpDiscard,
	})
	d := complete.Finish()
	assert.Equal(t, common.Dimensions{Width: 512, Height: 512}, d.Dimensions())

	ds, ok := d.DepthStencilAttachment()
	require.True(t, ok)
	assert.Equal(t, DepthStencilModeCombined, ds.Mode)
}

func TestDepthOnlyAndStencilOnlyModes(t *testing.T) {
	d := NewEncoder().SetDepthAttachment(DepthStencilAttachment{View: testView(t, "d", 64, 64)}).Finish()
	ds, ok := d.DepthStencilAttachment()
	require.True(t, ok)
	assert.Equal(t, DepthStencilModeDepthOnly, ds.Mode)

	d = NewEncoder().SetStencilAttachment(DepthStencilAttachment{View: testView(t, "s", 64, 64)}).Finish()
	ds, ok = d.DepthStencilAttachment()
	require.True(t, ok)
	assert.Equal(t, DepthStencilModeStencilOnly, ds.Mode)
}

func TestCompleteEncoderStillAcceptsColorAttachments(t *testing.T) {
	complete := NewEncoder().SetDepthAttachment(DepthStencilAttachment{View: testView(t, "d", 128, 128)})
	require.NoError(t, complete.AddColorAttachment(colorAttachment(t, "late", 96, 256)))
	d := complete.Finish()
	assert.Len(t, d.ColorAttachments(), 1)
	assert.Equal(t, common.Dimensions{Width: 96, Height: 128}, d.Dimensions())
}

func TestFinishWithoutAttachments(t *testing.T) {
	d := NewEncoder().Finish()
	assert.Empty(t, d.ColorAttachments())
	_, ok := d.DepthStencilAttachment()
	assert.False(t, ok)
	assert.Equal(t, common.Dimensions{}, d.Dimensions())
}
