package resource

import (
	"fmt"
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// image is the implementation of the Image interface.
type image struct {
	// id is the process-unique identity of this image.
	id uint64
	// label is a debug label added for convenience.
	label string
	// dimensions is the pixel size of the base mip level.
	dimensions common.Dimensions
	// format is the texel format of the image.
	format wgpu.TextureFormat
	// levels is the number of mip levels.
	levels uint32
	// refs counts outstanding holders; the image releases when it reaches zero.
	refs atomic.Int64
	// release is invoked once when the last holder drops the image, or nil.
	release func()
}

// Image is an opaque, shared identity for a GPU-side image allocation. Images are
// created by the allocation collaborator and referenced read-only by attachments;
// the last holder to call Release triggers the underlying resource release.
type Image interface {
	// ID returns the process-unique identity of this image.
	//
	// Returns:
	//   - uint64: the image identity
	ID() uint64

	// Label returns the debug label for this image.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// Dimensions returns the pixel size of the base mip level.
	//
	// Returns:
	//   - common.Dimensions: the base level width and height
	Dimensions() common.Dimensions

	// Format returns the texel format of this image.
	//
	// Returns:
	//   - wgpu.TextureFormat: the texel format
	Format() wgpu.TextureFormat

	// Levels returns the number of mip levels in this image.
	//
	// Returns:
	//   - uint32: the mip level count (at least 1)
	Levels() uint32

	// Retain adds a holder reference to this image.
	Retain()

	// Release drops a holder reference. When the last reference is dropped the
	// underlying release hook runs exactly once.
	Release()
}

var _ Image = &image{}

// NewImage creates a new Image identity with a single holder reference.
//
// Parameters:
//   - label: a debug label for the image
//   - dimensions: the pixel size of the base mip level
//   - format: the texel format of the image
//   - levels: the number of mip levels (clamped to at least 1)
//   - release: a hook invoked when the last holder releases the image, or nil
//
// Returns:
//   - Image: the new image identity
func NewImage(label string, dimensions common.Dimensions, format wgpu.TextureFormat, levels uint32, release func()) Image {
	if levels < 1 {
		levels = 1
	}
	img := &image{
		id:         nextResourceID.Add(1),
		label:      label,
		dimensions: dimensions,
		format:     format,
		levels:     levels,
		release:    release,
	}
	img.refs.Store(1)
	return img
}

func (i *image) ID() uint64 {
	return i.id
}

func (i *image) Label() string {
	return i.label
}

func (i *image) Dimensions() common.Dimensions {
	return i.dimensions
}

func (i *image) Format() wgpu.TextureFormat {
	return i.format
}

func (i *image) Levels() uint32 {
	return i.levels
}

func (i *image) Retain() {
	i.refs.Add(1)
}

func (i *image) Release() {
	if i.refs.Add(-1) == 0 && i.release != nil {
		i.release()
	}
}

// ImageView is a read-only view of a single mip level of an Image, suitable for use
// as a render target attachment.
type ImageView struct {
	image Image
	level uint32
}

// NewImageView creates a read-only view of one mip level of an image.
//
// Parameters:
//   - img: the image the view references
//   - level: the mip level to view
//
// Returns:
//   - ImageView: the view
//   - error: an error if the level is outside the image's mip chain
func NewImageView(img Image, level uint32) (ImageView, error) {
	if level >= img.Levels() {
		return ImageView{}, fmt.Errorf("mip level %d out of range for image %q with %d levels", level, img.Label(), img.Levels())
	}
	return ImageView{image: img, level: level}, nil
}

// Image returns the image identity this view references.
//
// Returns:
//   - Image: the underlying image
func (v ImageView) Image() Image {
	return v.image
}

// Level returns the mip level this view references.
//
// Returns:
//   - uint32: the mip level
func (v ImageView) Level() uint32 {
	return v.level
}

// Dimensions returns the pixel size of the viewed mip level, halving the base level
// size per level with a floor of one pixel per axis.
//
// Returns:
//   - common.Dimensions: the width and height of the viewed level
func (v ImageView) Dimensions() common.Dimensions {
	d := v.image.Dimensions()
	w := d.Width >> v.level
	h := d.Height >> v.level
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return common.Dimensions{Width: w, Height: h}
}
