package vertex

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/resource"
)

// MaxBufferSlots is the architectural limit on vertex buffer slots per draw. It is a
// fixed property of the target API class, not a queried device limit.
const MaxBufferSlots = 16

// BufferRegion binds a region of a buffer to a vertex buffer slot, carrying the
// stride and input rate the slot reads it with. Read-only after creation.
type BufferRegion struct {
	// Region is the byte range within the backing buffer.
	Region resource.BufferRegion
	// StrideBytes is the byte distance between consecutive elements.
	StrideBytes uint32
	// Rate is the slot's input rate.
	Rate common.InputRate
}

// BufferSlots is the frozen, ordered sequence of buffer regions bound to a
// pipeline's vertex buffer slots. Insertion order is significant: region i feeds
// slot i of the declared vertex input layout.
type BufferSlots struct {
	regions []BufferRegion
}

// Len returns the number of bound slots.
//
// Returns:
//   - int: the slot count
func (s BufferSlots) Len() int {
	return len(s.regions)
}

// Region returns the buffer region bound to the given slot.
//
// Parameters:
//   - slot: the slot index, in [0, Len())
//
// Returns:
//   - BufferRegion: the region bound to the slot
func (s BufferSlots) Region(slot int) BufferRegion {
	return s.regions[slot]
}

// Regions returns every bound region in slot order.
//
// Returns:
//   - []BufferRegion: a copy of the bound regions
func (s BufferSlots) Regions() []BufferRegion {
	out := make([]BufferRegion, len(s.regions))
	copy(out, s.regions)
	return out
}

// BufferSlotsEncoder accumulates buffer regions into an ordered BufferSlots
// sequence. The slot count is bounded by MaxBufferSlots; a caller's attribute-layout
// declaration statically determines how many slots it needs, so exceeding the bound
// is a programming error and panics rather than returning an error.
type BufferSlotsEncoder struct {
	regions  []BufferRegion
	finished bool
}

// NewBufferSlotsEncoder creates an empty vertex buffer slot encoder.
//
// Returns:
//   - *BufferSlotsEncoder: the new encoder
func NewBufferSlotsEncoder() *BufferSlotsEncoder {
	return &BufferSlotsEncoder{}
}

// AddRegion appends a buffer region at the next free slot. Panics if MaxBufferSlots
// regions are already present or the encoder has finished.
//
// Parameters:
//   - region: the buffer region to bind
//
// Returns:
//   - *BufferSlotsEncoder: the same encoder, for chaining
func (e *BufferSlotsEncoder) AddRegion(region BufferRegion) *BufferSlotsEncoder {
	if e.finished {
		panic("vertex: buffer slots encoder used after Finish")
	}
	if len(e.regions) >= MaxBufferSlots {
		panic(fmt.Sprintf("vertex: more than %d vertex buffer slots", MaxBufferSlots))
	}
	e.regions = append(e.regions, region)
	return e
}

// Finish freezes the accumulated regions into an immutable BufferSlots sequence.
// The encoder must not be used afterward.
//
// Returns:
//   - BufferSlots: the frozen slot sequence
func (e *BufferSlotsEncoder) Finish() BufferSlots {
	if e.finished {
		panic("vertex: buffer slots encoder used after Finish")
	}
	e.finished = true
	s := BufferSlots{regions: e.regions}
	e.regions = nil
	return s
}
