package vertex

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// BufferSlotLayout is the frozen description of one vertex buffer slot within a
// layout: its element stride, its input rate, and the attributes it feeds.
type BufferSlotLayout struct {
	strideBytes uint32
	rate        common.InputRate
	attributes  []AttributeDescriptor
}

// StrideBytes returns the byte distance between consecutive elements in this slot.
//
// Returns:
//   - uint32: the stride in bytes
func (s BufferSlotLayout) StrideBytes() uint32 {
	return s.strideBytes
}

// Rate returns the input rate of this slot.
//
// Returns:
//   - common.InputRate: per-vertex or per-instance
func (s BufferSlotLayout) Rate() common.InputRate {
	return s.rate
}

// Attributes returns the attributes fed by this slot, in declaration order.
//
// Returns:
//   - []AttributeDescriptor: a copy of the slot's attribute list
func (s BufferSlotLayout) Attributes() []AttributeDescriptor {
	out := make([]AttributeDescriptor, len(s.attributes))
	copy(out, s.attributes)
	return out
}

// PointerOps computes the low-level binding calls for every attribute in this slot,
// in declaration order.
//
// Returns:
//   - []AttributePointerOp: the concatenated per-attribute ops
func (s BufferSlotLayout) PointerOps() []AttributePointerOp {
	var ops []AttributePointerOp
	for _, a := range s.attributes {
		ops = append(ops, a.Apply(s.strideBytes, s.rate)...)
	}
	return ops
}

// LayoutDescriptor is an immutable description of a pipeline's vertex input layout:
// an ordered sequence of buffer slots, each with its stride, input rate, and
// attribute list. Produce one with a LayoutBuilder; once built it never changes, and
// its precomputed hash makes it cheap to key pipeline caches with.
type LayoutDescriptor struct {
	slots []BufferSlotLayout
	hash  uint64
}

// BufferSlots returns the layout's buffer slots in declaration order.
//
// Returns:
//   - []BufferSlotLayout: a copy of the slot list
func (d LayoutDescriptor) BufferSlots() []BufferSlotLayout {
	out := make([]BufferSlotLayout, len(d.slots))
	copy(out, d.slots)
	return out
}

// Hash returns the FNV-1a hash of the layout, precomputed when the builder finished.
// Two layouts with identical slots, strides, rates, and attributes hash identically.
//
// Returns:
//   - uint64: the layout hash
func (d LayoutDescriptor) Hash() uint64 {
	return d.hash
}

// LayoutBuilder accumulates buffer slots and their attributes into a
// LayoutDescriptor. The builder is single-use: Finish freezes the layout and the
// builder must not be touched afterward.
type LayoutBuilder struct {
	slots    []BufferSlotLayout
	finished bool
}

// SlotBuilder attaches attributes to the buffer slot most recently added to a
// LayoutBuilder.
type SlotBuilder struct {
	layout *LayoutBuilder
	slot   int
}

// NewLayoutBuilder creates an empty vertex input layout builder.
//
// Returns:
//   - *LayoutBuilder: the new builder
func NewLayoutBuilder() *LayoutBuilder {
	return &LayoutBuilder{}
}

// AddBufferSlot appends a buffer slot with the given element stride and input rate,
// returning a handle through which the slot's attributes are attached.
//
// Parameters:
//   - strideBytes: the byte distance between consecutive elements in the slot
//   - rate: whether the slot advances per vertex or per instance
//
// Returns:
//   - *SlotBuilder: the attachment handle for the new slot
func (b *LayoutBuilder) AddBufferSlot(strideBytes uint32, rate common.InputRate) *SlotBuilder {
	if b.finished {
		panic("vertex: layout builder used after Finish")
	}
	b.slots = append(b.slots, BufferSlotLayout{strideBytes: strideBytes, rate: rate})
	return &SlotBuilder{layout: b, slot: len(b.slots) - 1}
}

// AddAttribute attaches an attribute to this slot. The attribute's data must fit
// inside one element of the slot: an attribute whose offset plus format size exceeds
// the slot stride is a static layout violation and panics, since descriptor tables
// are meant to be produced from a vertex type whose size the caller already knows.
//
// Parameters:
//   - a: the attribute to attach
//
// Returns:
//   - *SlotBuilder: the same handle, for chaining
func (sb *SlotBuilder) AddAttribute(a AttributeDescriptor) *SlotBuilder {
	if sb.layout.finished {
		panic("vertex: layout builder used after Finish")
	}
	slot := &sb.layout.slots[sb.slot]
	if end := a.OffsetBytes + a.Format.SizeBytes(); end > slot.strideBytes {
		panic(fmt.Sprintf("vertex: attribute at location %d ends at byte %d, past the slot stride of %d", a.Location, end, slot.strideBytes))
	}
	slot.attributes = append(slot.attributes, a)
	return sb
}

// Finish freezes the accumulated layout into an immutable LayoutDescriptor and
// computes its hash. The builder and any outstanding slot handles must not be used
// afterward.
//
// Returns:
//   - LayoutDescriptor: the frozen layout
func (b *LayoutBuilder) Finish() LayoutDescriptor {
	if b.finished {
		panic("vertex: layout builder used after Finish")
	}
	b.finished = true

	h := fnv.New64a()
	var scratch [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(scratch[:], v)
		h.Write(scratch[:])
	}
	for _, slot := range b.slots {
		put(uint64(slot.strideBytes))
		put(uint64(slot.rate))
		put(uint64(len(slot.attributes)))
		for _, a := range slot.attributes {
			put(uint64(a.Location))
			put(uint64(a.Format))
			put(uint64(a.OffsetBytes))
		}
	}

	d := LayoutDescriptor{slots: b.slots, hash: h.Sum64()}
	b.slots = nil
	return d
}
