// Package strbuf implements a growable, binary-safe byte buffer with
// C-string compatibility: every buffer keeps a terminating zero byte
// after its contents, so the storage can be handed to C-style consumers
// without copying.
//
// A Buffer is a small handle over a single contiguous allocation. It is
// held by value and mutated through pointer-receiver methods; a
// mutation may reallocate the storage, and the handle always tracks the
// current allocation.
//
// # Storage Kinds
//
// A buffer is backed by one of three storage kinds:
//
//   - Empty: a shared, immutable zero-length storage. Empty() costs no
//     allocation; the first mutation promotes the buffer to heap
//     storage.
//   - Stack: caller-provided storage borrowed via NewStack. Capacity is
//     fixed at creation; exceeding it promotes to heap storage and the
//     original storage is never written again.
//   - Heap: storage owned by the buffer, regrown as needed.
//
// # Growth
//
// Reallocation applies the buffer's growth policy: GrowFit allocates
// exactly what is needed, Grow25/Grow50/Grow100 add 25/50/100 percent
// headroom, capped at 1 MiB of extra bytes per reallocation.
//
// # Basic Usage
//
//	b := strbuf.FromString("hello")
//	b.CatString(", world")
//	b.Replace(0, []byte("world"), []byte("strbuf"))
//	s := b.String() // "hello, strbuf"
//	b.Free()
//
// # Concurrency
//
// A Buffer has exactly one owner and no internal locking. Sharing a
// buffer across goroutines requires external synchronization around the
// whole value.
package strbuf
