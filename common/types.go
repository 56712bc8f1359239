// package common contains common types that are used throughout this library. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Dimensions holds the pixel dimensions of an image, attachment, or render target.
type Dimensions struct {
	// Width is the horizontal size in pixels.
	Width uint32
	// Height is the vertical size in pixels.
	Height uint32
}

// Min returns the component-wise minimum of this Dimensions and another.
// Render targets use this to infer their renderable area from a mixed set of attachments.
//
// Parameters:
//   - other: the dimensions to compare against
//
// Returns:
//   - Dimensions: the component-wise minimum of the two
func (d Dimensions) Min(other Dimensions) Dimensions {
	out := d
	if other.Width < out.Width {
		out.Width = other.Width
	}
	if other.Height < out.Height {
		out.Height = other.Height
	}
	return out
}

// InputRate identifies how often a vertex buffer advances to its next element during a draw.
type InputRate int

const (
	// InputRatePerVertex advances the buffer once per vertex.
	InputRatePerVertex InputRate = iota

	// InputRatePerInstance advances the buffer once per instance.
	InputRatePerInstance
)

// StepMode converts the input rate to the equivalent WebGPU vertex step mode.
//
// Returns:
//   - wgpu.VertexStepMode: wgpu.VertexStepModeVertex or wgpu.VertexStepModeInstance
func (r InputRate) StepMode() wgpu.VertexStepMode {
	if r == InputRatePerInstance {
		return wgpu.VertexStepModeInstance
	}
	return wgpu.VertexStepModeVertex
}

// String returns a human-readable name for the input rate.
//
// Returns:
//   - string: "per-vertex" or "per-instance"
func (r InputRate) String() string {
	if r == InputRatePerInstance {
		return "per-instance"
	}
	return "per-vertex"
}

// ClearColor is an RGBA clear value for a color attachment.
type ClearColor [4]float64

// Color converts the clear value to the equivalent WebGPU color.
//
// Returns:
//   - wgpu.Color: the color with R, G, B, A populated from the four channels
func (c ClearColor) Color() wgpu.Color {
	return wgpu.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// AttributeSlot is one active vertex-stage input reported by program introspection.
// The shader-compilation collaborator queries these from a linked program; this library
// only ever reads them when cross-checking a declared vertex input layout.
type AttributeSlot struct {
	// Name is the attribute identifier as declared in the shader source.
	Name string
	// Location is the attribute location assigned by the linker.
	Location uint32
	// Size is the array length reported for the attribute (1 for non-array attributes).
	Size int
	// GLType is the raw GL type identifier reported for the attribute (e.g. FLOAT_VEC3).
	GLType uint32
}

// Varying is one transform-feedback output reported by program introspection, in
// declaration order. Validation against a declared transform-feedback layout is
// positional: the varying at index i is compared against the i-th declared attribute.
type Varying struct {
	// Name is the varying identifier as declared in the shader source.
	Name string
	// Size is the array length reported for the varying (1 for non-array varyings).
	Size int
	// GLType is the raw GL type identifier reported for the varying.
	GLType uint32
}
