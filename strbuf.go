package strbuf

import (
	"bytes"
)

// NPOS is the universal "not found" index, returned by the search
// operations and accepted (and clamped) by every index parameter.
const NPOS = int(^uint(0) >> 1)

// Kind identifies the storage backing a buffer.
type Kind uint8

const (
	// KindEmpty is the shared zero-capacity storage.
	KindEmpty Kind = 0
	// KindStack is caller-provided storage borrowed by NewStack.
	KindStack Kind = 1
	// KindNorm is storage that has been through at least one
	// reallocation. Norm storage is always heap allocated.
	KindNorm Kind = 2
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindStack:
		return "stack"
	case KindNorm:
		return "norm"
	default:
		return "unknown"
	}
}

// Tag layout: low 16 bits hold the Kind plus the heap-allocated marker
// bit; high 16 bits hold the growth policy. The marker bit, not the
// kind value, decides whether storage is owned: a promoted buffer stays
// KindNorm across every later reallocation.
const (
	tagKindMask = 0x0000FFFF
	tagGrowMask = 0xFFFF0000
	tagHeapBit  = 0x00000100
	tagGrowShft = 16
)

// Buffer is a growable byte buffer backed by a single contiguous
// allocation with a terminating zero byte at Len(). The zero value is
// not usable; construct with Empty, New, NewFrom, FromString, Clone, or
// NewStack.
//
// Methods that can reallocate update the handle in place, so the
// receiver is always the valid reference after a call.
type Buffer struct {
	buf []byte // backing storage, len(buf) == cap+1, buf[n] == 0
	n   int    // used bytes
	tag uint32
}

// sharedEmpty backs every Empty-kind buffer. It is never written:
// mutation promotes to heap storage first, and sentinel maintenance is
// skipped for the empty kind because the byte is already zero.
var sharedEmpty [1]byte

var emptyProtos = [4]Buffer{
	{buf: sharedEmpty[:], tag: uint32(GrowFit) << tagGrowShft},
	{buf: sharedEmpty[:], tag: uint32(Grow25) << tagGrowShft},
	{buf: sharedEmpty[:], tag: uint32(Grow50) << tagGrowShft},
	{buf: sharedEmpty[:], tag: uint32(Grow100) << tagGrowShft},
}

// Empty returns a buffer backed by the shared zero-capacity storage.
// It allocates nothing; the first mutation promotes to heap storage.
func Empty() Buffer {
	return emptyProtos[GrowFit]
}

// New returns a heap buffer with the given capacity and zero length.
// A capacity of 0 (or NPOS) returns Empty(). Capacities above the
// representable maximum are clamped.
func New(capacity int) Buffer {
	if capacity <= 0 || capacity == NPOS {
		return Empty()
	}
	if !validCap(capacity) {
		capacity = capMax
	}
	buf := rawAlloc(capacity + 1)
	return Buffer{
		buf: buf,
		n:   0,
		tag: tagHeapBit | uint32(KindNorm),
	}
}

// NewFrom returns a heap buffer holding a copy of src, with at least
// the given capacity (the larger of capacity and len(src)).
func NewFrom(capacity int, src []byte) Buffer {
	if capacity < len(src) {
		capacity = len(src)
	}
	if !validCap(capacity) {
		capacity = capMax
	}
	buf := rawAlloc(capacity + 1)
	copy(buf, src)
	return Buffer{
		buf: buf,
		n:   len(src),
		tag: tagHeapBit | uint32(KindNorm),
	}
}

// FromString returns a heap buffer holding a copy of s.
func FromString(s string) Buffer {
	if len(s) == 0 {
		return Empty()
	}
	buf := rawAlloc(len(s) + 1)
	copy(buf, s)
	return Buffer{
		buf: buf,
		n:   len(s),
		tag: tagHeapBit | uint32(KindNorm),
	}
}

// Clone returns a heap buffer holding a copy of b's contents. Capacity
// shrinks to fit the length.
func (b *Buffer) Clone() Buffer {
	return NewFrom(0, b.Bytes())
}

// NewStack returns a buffer that borrows storage from the caller. One
// byte of storage is reserved for the sentinel, so the capacity is
// len(storage)-1. When a mutation exceeds that capacity the buffer
// promotes to heap storage and storage is never written again.
//
// Empty storage yields Empty().
func NewStack(storage []byte) Buffer {
	if len(storage) == 0 {
		return Empty()
	}
	storage[0] = 0
	return Buffer{
		buf: storage,
		n:   0,
		tag: uint32(KindStack),
	}
}

// Free releases the buffer. Heap storage is dropped for the collector;
// shared and borrowed storage is simply forgotten. The handle becomes
// invalid and must not be used afterwards.
func (b *Buffer) Free() {
	// Only owned storage was ever allocated by this package; the
	// heap bit, not the kind, is the gate.
	if b.tag&tagHeapBit != 0 {
		rawFree(b.buf)
	}
	b.buf = nil
	b.n = 0
	b.tag = 0
}

// Len returns the number of used bytes.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the storage capacity in bytes, excluding the sentinel.
func (b *Buffer) Cap() int {
	return len(b.buf) - 1
}

// IsEmpty reports whether the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool {
	return b.n == 0
}

// Kind returns the storage kind backing the buffer.
func (b *Buffer) Kind() Kind {
	return Kind(b.tag & tagKindMask &^ tagHeapBit)
}

// IsHeap reports whether the storage is heap allocated. This is the
// heap marker bit, independent of Kind.
func (b *Buffer) IsHeap() bool {
	return b.tag&tagHeapBit != 0
}

// Bytes returns the used bytes as a slice of the backing storage. The
// slice is invalidated by any mutating call.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

// CBytes returns the used bytes plus the terminating zero, for handing
// to C-string consumers. Invalidated by any mutating call.
func (b *Buffer) CBytes() []byte {
	return b.buf[: b.n+1 : b.n+1]
}

// String returns a copy of the contents as a string.
func (b *Buffer) String() string {
	return string(b.buf[:b.n])
}

// Equal reports whether two buffers hold the same bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == other {
		return true
	}
	if b.n != other.n {
		return false
	}
	return bytes.Equal(b.buf[:b.n], other.buf[:other.n])
}

// Compare lexicographically orders two buffers, returning -1, 0, or 1.
func (b *Buffer) Compare(other *Buffer) int {
	return bytes.Compare(b.buf[:b.n], other.buf[:other.n])
}

// SetLen sets the length directly and rewrites the sentinel. Lengths
// above the capacity are ignored. Useful after external code has
// written into Bytes() storage.
func (b *Buffer) SetLen(n int) {
	if n < 0 || n > b.Cap() {
		return
	}
	b.n = n
	b.term()
}

// SyncLen recomputes the length from the first zero byte, for storage
// filled by C-style writers that terminate but do not report a count.
func (b *Buffer) SyncLen() {
	if b.Kind() == KindEmpty {
		return
	}
	// Guarantee a terminator inside the storage before scanning.
	b.buf[b.Cap()] = 0
	if i := bytes.IndexByte(b.buf, 0); i >= 0 {
		b.n = i
	}
}

// Clear drops the contents, keeping capacity.
func (b *Buffer) Clear() {
	b.n = 0
	b.term()
}

// Swap exchanges the contents of two buffer handles.
func (b *Buffer) Swap(other *Buffer) {
	*b, *other = *other, *b
}

// term rewrites the sentinel at the current length. Empty-kind storage
// is shared and already zero, so it is left untouched.
func (b *Buffer) term() {
	if b.tag&tagKindMask != uint32(KindEmpty) {
		b.buf[b.n] = 0
	}
}
