package strbuf

import "fmt"

// Raw allocation adapter. Go's allocator is fatal on exhaustion, which
// matches the library's no-recoverable-OOM contract; the adapter's own
// failure mode is a size that can never be satisfied, reported with the
// operation and the requested size before dying.

func rawAlloc(size int) []byte {
	if size <= 0 {
		panic(fmt.Sprintf("strbuf: alloc(%d) failure", size))
	}
	return make([]byte, size)
}

// rawRealloc returns storage of the new size holding a copy of old, up
// to the smaller of the two sizes. The tail is zeroed by allocation, so
// a sentinel exposed by growth is already written.
func rawRealloc(old []byte, size int) []byte {
	if size <= 0 {
		panic(fmt.Sprintf("strbuf: realloc(%d) failure", size))
	}
	buf := make([]byte, size)
	copy(buf, old)
	return buf
}

// rawFree releases owned storage. Dropping the reference is all Go
// needs; kept as the single point where owned storage dies.
func rawFree([]byte) {}
