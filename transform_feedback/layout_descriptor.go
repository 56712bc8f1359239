// package transform_feedback describes how shader-stage outputs are captured into
// buffers: an ordered assignment of named output attributes to consecutive buffer
// bind slots, plus the validation of that assignment against the varyings a linked
// program actually reports.
package transform_feedback

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/format"
)

// NextBufferVarying is the reserved varying name that advances recording to the next
// buffer bind slot when the varying list is handed to the program linker.
const NextBufferVarying = "gl_NextBuffer"

// AttributeDescriptor declares one captured output attribute: its name in the shader
// source, its declared type, and its array length (1 for non-array outputs).
type AttributeDescriptor struct {
	// Name is the output attribute identifier as declared in the shader source.
	Name string
	// Type is the declared type of the output attribute.
	Type format.AttributeType
	// Size is the declared array length (1 for non-array outputs).
	Size int
}

// layoutElement is one entry of a layout: either an attribute or the advance-to-next-
// bind-slot sentinel. The sentinel before the very first slot is implicit and never
// stored.
type layoutElement struct {
	nextSlot  bool
	attribute AttributeDescriptor
}

// LayoutDescriptor is an immutable description of a transform-feedback capture
// layout: the ordered attribute list, partitioned into buffer bind slots. Produce one
// with a LayoutBuilder.
//
// Attribute order is the contract: validation matches the i-th declared attribute
// against the i-th reflected varying, index for index, never by name. Names exist
// only for linker serialization and diagnostics.
type LayoutDescriptor struct {
	elements []layoutElement
}

// Attributes returns every declared attribute in declaration order, ignoring slot
// partitions.
//
// Returns:
//   - []AttributeDescriptor: the ordered attribute list
func (d LayoutDescriptor) Attributes() []AttributeDescriptor {
	var out []AttributeDescriptor
	for _, el := range d.elements {
		if !el.nextSlot {
			out = append(out, el.attribute)
		}
	}
	return out
}

// VaryingNames returns the varying name list to hand to the program linker when
// enabling transform feedback for this layout, with the reserved NextBufferVarying
// separator between consecutive bind slots.
//
// Returns:
//   - []string: the varying names in capture order
func (d LayoutDescriptor) VaryingNames() []string {
	var out []string
	for _, el := range d.elements {
		if el.nextSlot {
			out = append(out, NextBufferVarying)
		} else {
			out = append(out, el.attribute.Name)
		}
	}
	return out
}

// TypeMismatchError reports that a declared transform-feedback attribute does not
// match the varying the linked program reports at the same index.
type TypeMismatchError struct {
	// Name is the declared attribute identifier.
	Name string
	// Index is the position of the attribute in the declared order.
	Index int
	// DeclaredType and DeclaredSize are the attribute's declared type and array length.
	DeclaredType format.AttributeType
	DeclaredSize int
	// ReflectedGLType and ReflectedSize are the type and array length the program reports.
	ReflectedGLType uint32
	ReflectedSize   int
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("transform feedback attribute %q (index %d) declares %s with size %d, but the program reports type 0x%04X with size %d",
		e.Name, e.Index, e.DeclaredType, e.DeclaredSize, e.ReflectedGLType, e.ReflectedSize)
}

// MissingVaryingError reports that the linked program reports fewer transform-
// feedback varyings than the layout declares attributes.
type MissingVaryingError struct {
	// Name is the declared attribute identifier with no reflected counterpart.
	Name string
	// Index is the position of the attribute in the declared order.
	Index int
}

func (e *MissingVaryingError) Error() string {
	return fmt.Sprintf("transform feedback attribute %q (index %d) has no varying reported by the program", e.Name, e.Index)
}

// CheckCompatibility validates the layout against the varyings a linked program
// reports. The walk is positional: a running index pairs the n-th declared attribute
// with the n-th reflected varying; the reflected size is compared against the
// declared array length and the reflected type against the declared type, failing
// fast on the first mismatch and naming the offending attribute.
//
// The check should run at most once per (layout, program) pair; pipeline
// construction caches the result rather than re-running it per draw.
//
// Parameters:
//   - varyings: the transform-feedback varyings reported by program introspection,
//     in declaration order
//
// Returns:
//   - error: nil on success; *MissingVaryingError or *TypeMismatchError naming the
//     first offending attribute otherwise
func (d LayoutDescriptor) CheckCompatibility(varyings []common.Varying) error {
	index := 0
	for _, el := range d.elements {
		if el.nextSlot {
			continue
		}
		a := el.attribute
		if index >= len(varyings) {
			return &MissingVaryingError{Name: a.Name, Index: index}
		}
		reflected := varyings[index]
		if reflected.Size != a.Size || reflected.GLType != a.Type.GLType() {
			return &TypeMismatchError{
				Name:            a.Name,
				Index:           index,
				DeclaredType:    a.Type,
				DeclaredSize:    a.Size,
				ReflectedGLType: reflected.GLType,
				ReflectedSize:   reflected.Size,
			}
		}
		index++
	}
	return nil
}

// LayoutBuilder accumulates buffer bind slots and their captured attributes into a
// LayoutDescriptor. The builder is single-use: Finish freezes the layout and the
// builder must not be touched afterward.
type LayoutBuilder struct {
	elements []layoutElement
	slots    int
	finished bool
}

// SlotBuilder attaches attributes to the bind slot most recently added to a
// LayoutBuilder.
type SlotBuilder struct {
	layout *LayoutBuilder
}

// NewLayoutBuilder creates an empty transform-feedback layout builder.
//
// Returns:
//   - *LayoutBuilder: the new builder
func NewLayoutBuilder() *LayoutBuilder {
	return &LayoutBuilder{}
}

// AddBufferSlot opens the next buffer bind slot, returning a handle through which
// the slot's captured attributes are attached. The first slot is implicit; every
// subsequent call records an advance-to-next-slot sentinel in the layout.
//
// Returns:
//   - *SlotBuilder: the attachment handle for the new slot
func (b *LayoutBuilder) AddBufferSlot() *SlotBuilder {
	if b.finished {
		panic("transform_feedback: layout builder used after Finish")
	}
	if b.slots > 0 {
		b.elements = append(b.elements, layoutElement{nextSlot: true})
	}
	b.slots++
	return &SlotBuilder{layout: b}
}

// AddAttribute appends a captured attribute to this slot, in call order. Order is
// semantically significant: validation is positional against program introspection.
//
// Parameters:
//   - name: the output attribute identifier as declared in the shader source
//   - t: the declared type of the output attribute
//   - size: the declared array length (1 for non-array outputs)
//
// Returns:
//   - *SlotBuilder: the same handle, for chaining
func (sb *SlotBuilder) AddAttribute(name string, t format.AttributeType, size int) *SlotBuilder {
	if sb.layout.finished {
		panic("transform_feedback: layout builder used after Finish")
	}
	sb.layout.elements = append(sb.layout.elements, layoutElement{
		attribute: AttributeDescriptor{Name: name, Type: t, Size: size},
	})
	return sb
}

// Finish freezes the accumulated layout into an immutable LayoutDescriptor. The
// builder and any outstanding slot handles must not be used afterward.
//
// Returns:
//   - LayoutDescriptor: the frozen layout
func (b *LayoutBuilder) Finish() LayoutDescriptor {
	if b.finished {
		panic("transform_feedback: layout builder used after Finish")
	}
	b.finished = true
	d := LayoutDescriptor{elements: b.elements}
	b.elements = nil
	return d
}
