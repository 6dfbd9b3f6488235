package strbuf

import "math"

// Grow selects how much headroom a reallocation adds beyond the
// requested capacity.
type Grow uint32

const (
	// GrowFit allocates exactly the requested capacity.
	GrowFit Grow = 0
	// Grow25 adds 25% headroom.
	Grow25 Grow = 1
	// Grow50 adds 50% headroom.
	Grow50 Grow = 2
	// Grow100 doubles the requested capacity.
	Grow100 Grow = 3
)

// String returns a short name for the growth policy.
func (g Grow) String() string {
	switch g {
	case GrowFit:
		return "fit"
	case Grow25:
		return "25%"
	case Grow50:
		return "50%"
	case Grow100:
		return "100%"
	default:
		return "unknown"
	}
}

const (
	// headerSize mirrors the metadata block of the wire-compatible C
	// layout (two sizes plus a packed tag) and keeps capMax identical
	// across implementations.
	headerSize = 2*8 + 4

	// capMax bounds capacity so header+cap+1 arithmetic cannot
	// overflow a 32-bit int. Requests above it clamp, never error.
	capMax = math.MaxInt32 - 2 - headerSize

	// maxRealloc caps the extra bytes any single growth-policy
	// reallocation may add (1 MiB).
	maxRealloc = 1 << 20
)

func validCap(capacity int) bool {
	return capacity <= capMax
}

// growCap applies the tag's growth policy to a requested capacity,
// clamping the extra bytes at maxRealloc and falling back to capMax on
// overflow or when the result would exceed it.
func growCap(tag uint32, capacity int) int {
	var extra int
	switch Grow(tag >> tagGrowShft) {
	case Grow25:
		extra = capacity / 4
	case Grow50:
		extra = capacity / 2
	case Grow100:
		extra = capacity
	}
	if extra > maxRealloc {
		extra = maxRealloc
	}
	if capacity+extra < capacity || !validCap(capacity+extra) {
		return capMax
	}
	return capacity + extra
}

// setCap reallocates storage to exactly the given capacity. Heap
// storage is regrown in place; shared or borrowed storage is promoted:
// fresh heap storage, contents plus sentinel copied over, heap bit and
// norm kind set. This is the sole promotion path.
func (b *Buffer) setCap(capacity int) {
	if b.tag&tagHeapBit != 0 {
		b.buf = rawRealloc(b.buf, capacity+1)
		return
	}
	buf := rawAlloc(capacity + 1)
	copy(buf, b.buf[:b.n+1])
	b.buf = buf
	b.tag = (b.tag & tagGrowMask) | tagHeapBit | uint32(KindNorm)
}

// grow reallocates to at least capacity with the growth policy applied.
func (b *Buffer) grow(capacity int) {
	b.setCap(growCap(b.tag, capacity))
}

// ensure provides capacity for a content-driven mutation, growing (and
// promoting) only when the current storage is too small.
func (b *Buffer) ensure(capacity int) {
	if capacity > b.Cap() {
		b.grow(capacity)
	}
}

// Growth returns the buffer's growth policy.
func (b *Buffer) Growth() Grow {
	return Grow(b.tag >> tagGrowShft)
}

// SetGrow sets the growth policy. On an Empty-kind buffer the handle is
// swapped to the shared prototype of the requested policy, since the
// shared storage itself is immutable.
func (b *Buffer) SetGrow(g Grow) {
	if g > Grow100 {
		return
	}
	if b.Kind() == KindEmpty {
		*b = emptyProtos[g]
		return
	}
	b.tag = uint32(g)<<tagGrowShft | b.tag&^tagGrowMask
}

// Heapify promotes shared or borrowed storage to owned heap storage at
// exactly the current length. Heap buffers are left alone.
func (b *Buffer) Heapify() {
	if b.tag&tagHeapBit != 0 {
		return
	}
	buf := rawAlloc(b.n + 1)
	copy(buf, b.buf[:b.n+1])
	b.buf = buf
	b.tag = (b.tag & tagGrowMask) | tagHeapBit | uint32(KindNorm)
}

// Reserve guarantees capacity for at least res bytes, applying the
// growth policy when a reallocation is needed.
func (b *Buffer) Reserve(res int) {
	if b.Cap() < res {
		b.grow(res)
	}
}

// Fit shrinks heap storage to exactly the current length. Shared and
// borrowed storage cannot shrink and is left alone. Fit is an exact
// resize: the growth policy does not apply.
func (b *Buffer) Fit() {
	if b.tag&tagHeapBit == 0 || b.Cap() == b.n {
		return
	}
	b.setCap(b.n)
}

// Resize sets the capacity exactly, without applying the growth policy.
// Shrinking below the current length truncates. Borrowed or shared
// storage that already covers the request is left alone.
func (b *Buffer) Resize(res int) {
	if res < 0 {
		res = 0
	}
	if !validCap(res) {
		res = capMax
	}
	if b.tag&tagHeapBit == 0 && b.Cap() >= res {
		return
	}
	if b.Cap() == res {
		return
	}
	truncate := res < b.n
	b.setCap(res)
	if truncate {
		b.n = res
		b.term()
	}
}

// AddCap grows capacity by at least add bytes.
func (b *Buffer) AddCap(add int) {
	if add <= 0 {
		return
	}
	newCap := b.Cap() + add
	if newCap < b.Cap() || !validCap(newCap) {
		newCap = capMax
	}
	b.grow(newCap)
}
