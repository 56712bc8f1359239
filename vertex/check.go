package vertex

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/format"
)

// MissingAttributeError reports that a linked program declares an active vertex
// attribute at a location the vertex input layout does not feed.
type MissingAttributeError struct {
	// Name is the attribute identifier from the shader source.
	Name string
	// Location is the attribute location the layout does not cover.
	Location uint32
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("vertex input layout feeds no attribute at location %d (shader attribute %q)", e.Location, e.Name)
}

// AttributeTypeMismatchError reports that the memory format declared for an
// attribute location is not compatible with the type the linked program declares
// there.
type AttributeTypeMismatchError struct {
	// Name is the attribute identifier from the shader source.
	Name string
	// Location is the attribute location with the mismatch.
	Location uint32
	// Format is the memory format the layout declares at the location.
	Format format.MemoryFormat
	// GLType is the raw GL type the program reports at the location.
	GLType uint32
}

func (e *AttributeTypeMismatchError) Error() string {
	return fmt.Sprintf("attribute %q at location %d declares memory format %s, which is incompatible with the shader type 0x%04X", e.Name, e.Location, e.Format, e.GLType)
}

// CheckCompatibility verifies that a vertex input layout can feed every active
// attribute of a linked program. For each reflected attribute the layout must
// declare an attribute at the same location whose memory format is compatible with
// the reflected type. The check is intended to run once per (layout, program) pair
// at pipeline build time, never per draw.
//
// Parameters:
//   - layout: the declared vertex input layout
//   - attributes: the active attributes reported by program introspection
//
// Returns:
//   - error: nil on success; *MissingAttributeError or *AttributeTypeMismatchError
//     naming the first offending attribute otherwise
func CheckCompatibility(layout LayoutDescriptor, attributes []common.AttributeSlot) error {
	declared := make(map[uint32]AttributeDescriptor)
	for _, slot := range layout.slots {
		for _, a := range slot.attributes {
			declared[a.Location] = a
		}
	}

	for _, reflected := range attributes {
		a, ok := declared[reflected.Location]
		if !ok {
			return &MissingAttributeError{Name: reflected.Name, Location: reflected.Location}
		}
		t, err := format.AttributeTypeFromGLType(reflected.GLType)
		if err != nil || !a.Format.IsCompatible(t) {
			return &AttributeTypeMismatchError{
				Name:     reflected.Name,
				Location: reflected.Location,
				Format:   a.Format,
				GLType:   reflected.GLType,
			}
		}
	}
	return nil
}
