// package texture checks sampler filter requests against texture formats before any
// GPU call is issued. A bad combination is reported as one of two recoverable error
// kinds: the filter is never valid for the format, or it is valid only under an
// optional capability that is not currently enabled.
package texture

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Extensions is the set of optional device capabilities currently enabled. The zero
// value enables nothing.
type Extensions struct {
	// FloatLinear enables linear filtering of 32-bit float texture formats
	// (the texture_float_linear capability).
	FloatLinear bool
}

// FilterNeverValidError reports a sampler filter that no configuration supports for
// the given texture format, such as linear filtering of an integer format.
type FilterNeverValidError struct {
	// Format is the texture format the sampler was requested for.
	Format wgpu.TextureFormat
	// Filter is the requested filter mode.
	Filter wgpu.FilterMode
}

func (e *FilterNeverValidError) Error() string {
	return fmt.Sprintf("filter mode %d is never valid for texture format %d", e.Filter, e.Format)
}

// FilterRequiresExtensionError reports a sampler filter that the given texture
// format supports only under an optional capability that is not currently enabled.
type FilterRequiresExtensionError struct {
	// Format is the texture format the sampler was requested for.
	Format wgpu.TextureFormat
	// Filter is the requested filter mode.
	Filter wgpu.FilterMode
	// Extension names the capability that would make the combination valid.
	Extension string
}

func (e *FilterRequiresExtensionError) Error() string {
	return fmt.Sprintf("filter mode %d on texture format %d requires the %s extension, which is not enabled", e.Filter, e.Format, e.Extension)
}

// sampleClass partitions texture formats by how a sampler may read them.
type sampleClass int

const (
	// classFilterable formats accept any filter mode unconditionally.
	classFilterable sampleClass = iota
	// classFloat32 formats accept linear filtering only with the float-linear capability.
	classFloat32
	// classUnfilterable formats never accept linear filtering (integer and depth formats).
	classUnfilterable
)

func classify(format wgpu.TextureFormat) sampleClass {
	switch format {
	case wgpu.TextureFormatR32Float, wgpu.TextureFormatRG32Float, wgpu.TextureFormatRGBA32Float:
		return classFloat32
	case wgpu.TextureFormatR32Uint, wgpu.TextureFormatR32Sint,
		wgpu.TextureFormatRG32Uint, wgpu.TextureFormatRG32Sint,
		wgpu.TextureFormatRGBA32Uint, wgpu.TextureFormatRGBA32Sint,
		wgpu.TextureFormatRGBA8Uint, wgpu.TextureFormatRGBA8Sint,
		wgpu.TextureFormatRGBA16Uint, wgpu.TextureFormatRGBA16Sint,
		wgpu.TextureFormatR16Uint, wgpu.TextureFormatR16Sint,
		wgpu.TextureFormatDepth24Plus, wgpu.TextureFormatDepth24PlusStencil8,
		wgpu.TextureFormatDepth32Float:
		return classUnfilterable
	default:
		return classFilterable
	}
}

// ValidateFilter checks whether a sampler with the given minification/magnification
// filter may sample a texture of the given format under the currently enabled
// extensions. Nearest filtering is valid for every format; linear filtering is
// rejected for integer and depth formats, and gated on the float-linear capability
// for 32-bit float formats.
//
// Parameters:
//   - format: the texture format being sampled
//   - filter: the requested filter mode
//   - ext: the currently enabled extensions
//
// Returns:
//   - error: nil if the combination is valid; *FilterNeverValidError or
//     *FilterRequiresExtensionError otherwise
func ValidateFilter(format wgpu.TextureFormat, filter wgpu.FilterMode, ext Extensions) error {
	if filter != wgpu.FilterModeLinear {
		return nil
	}
	switch classify(format) {
	case classUnfilterable:
		return &FilterNeverValidError{Format: format, Filter: filter}
	case classFloat32:
		if !ext.FloatLinear {
			return &FilterRequiresExtensionError{Format: format, Filter: filter, Extension: "texture_float_linear"}
		}
	}
	return nil
}

// ValidateSampler checks every filter mode of a sampler configuration against a
// texture format, failing on the first invalid combination.
//
// Parameters:
//   - format: the texture format being sampled
//   - magFilter: the magnification filter mode
//   - minFilter: the minification filter mode
//   - ext: the currently enabled extensions
//
// Returns:
//   - error: nil if every combination is valid, the first filter error otherwise
func ValidateSampler(format wgpu.TextureFormat, magFilter, minFilter wgpu.FilterMode, ext Extensions) error {
	if err := ValidateFilter(format, magFilter, ext); err != nil {
		return err
	}
	return ValidateFilter(format, minFilter, ext)
}
