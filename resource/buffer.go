// package resource holds the shared buffer and image identities that layout
// descriptors reference. The identities are allocated by an external collaborator;
// this package only models ownership and read-only views. Descriptors derived from a
// buffer or image never outlive it: callers retain the resource for as long as any
// descriptor referencing it is alive.
package resource

import (
	"fmt"
	"sync/atomic"
)

// nextResourceID hands out process-unique identifiers for buffers and images.
var nextResourceID atomic.Uint64

// buffer is the implementation of the Buffer interface.
type buffer struct {
	// id is the process-unique identity of this buffer.
	id uint64
	// label is a debug label added for convenience.
	label string
	// sizeBytes is the total allocation size.
	sizeBytes uint64
	// refs counts outstanding holders; the buffer releases when it reaches zero.
	refs atomic.Int64
	// release is invoked once when the last holder drops the buffer, or nil.
	release func()
}

// Buffer is an opaque, shared identity for a GPU-side buffer allocation. Buffers are
// created by the allocation collaborator and referenced read-only by buffer regions;
// the last holder to call Release triggers the underlying resource release.
type Buffer interface {
	// ID returns the process-unique identity of this buffer.
	//
	// Returns:
	//   - uint64: the buffer identity
	ID() uint64

	// Label returns the debug label for this buffer.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// SizeBytes returns the total allocation size of this buffer.
	//
	// Returns:
	//   - uint64: the size in bytes
	SizeBytes() uint64

	// Retain adds a holder reference to this buffer.
	Retain()

	// Release drops a holder reference. When the last reference is dropped the
	// underlying release hook runs exactly once.
	Release()
}

var _ Buffer = &buffer{}

// NewBuffer creates a new Buffer identity with a single holder reference.
//
// Parameters:
//   - label: a debug label for the buffer
//   - sizeBytes: the total allocation size in bytes
//   - release: a hook invoked when the last holder releases the buffer, or nil
//
// Returns:
//   - Buffer: the new buffer identity
func NewBuffer(label string, sizeBytes uint64, release func()) Buffer {
	b := &buffer{
		id:        nextResourceID.Add(1),
		label:     label,
		sizeBytes: sizeBytes,
		release:   release,
	}
	b.refs.Store(1)
	return b
}

func (b *buffer) ID() uint64 {
	return b.id
}

func (b *buffer) Label() string {
	return b.label
}

func (b *buffer) SizeBytes() uint64 {
	return b.sizeBytes
}

func (b *buffer) Retain() {
	b.refs.Add(1)
}

func (b *buffer) Release() {
	if b.refs.Add(-1) == 0 && b.release != nil {
		b.release()
	}
}

// BufferRegion is a read-only view of a contiguous byte range within a Buffer.
// Regions are created when a caller binds part of a buffer to a slot and are never
// mutated afterward.
type BufferRegion struct {
	buffer      Buffer
	offsetBytes uint64
	sizeBytes   uint64
}

// NewBufferRegion creates a read-only view of a byte range within a buffer.
//
// Parameters:
//   - b: the buffer the region views
//   - offsetBytes: the byte offset of the region start within the buffer
//   - sizeBytes: the byte length of the region
//
// Returns:
//   - BufferRegion: the region view
//   - error: an error if the range falls outside the buffer's allocation
func NewBufferRegion(b Buffer, offsetBytes, sizeBytes uint64) (BufferRegion, error) {
	if offsetBytes+sizeBytes > b.SizeBytes() {
		return BufferRegion{}, fmt.Errorf("region [%d, %d) exceeds buffer %q size %d", offsetBytes, offsetBytes+sizeBytes, b.Label(), b.SizeBytes())
	}
	return BufferRegion{buffer: b, offsetBytes: offsetBytes, sizeBytes: sizeBytes}, nil
}

// Buffer returns the buffer identity this region views.
//
// Returns:
//   - Buffer: the underlying buffer
func (r BufferRegion) Buffer() Buffer {
	return r.buffer
}

// OffsetBytes returns the byte offset of the region start within its buffer.
//
// Returns:
//   - uint64: the offset in bytes
func (r BufferRegion) OffsetBytes() uint64 {
	return r.offsetBytes
}

// SizeBytes returns the byte length of the region.
//
// Returns:
//   - uint64: the size in bytes
func (r BufferRegion) SizeBytes() uint64 {
	return r.sizeBytes
}
