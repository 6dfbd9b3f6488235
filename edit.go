package strbuf

import (
	"bytes"
	"strings"
)

// Mutators follow one contract: clamp indices, ensure capacity (growth
// policy applied for content-driven operations, which also promotes
// shared or borrowed storage), move bytes, update the length, restore
// the sentinel.

// Copy overwrites the contents with src.
func (b *Buffer) Copy(src []byte) {
	b.ensure(len(src))
	copy(b.buf, src)
	b.n = len(src)
	b.term()
}

// CopyString is Copy with a string source.
func (b *Buffer) CopyString(s string) {
	b.ensure(len(s))
	copy(b.buf, s)
	b.n = len(s)
	b.term()
}

// Cat appends src.
func (b *Buffer) Cat(src []byte) {
	b.ensure(b.n + len(src))
	copy(b.buf[b.n:], src)
	b.n += len(src)
	b.term()
}

// CatString is Cat with a string source.
func (b *Buffer) CatString(s string) {
	b.ensure(b.n + len(s))
	copy(b.buf[b.n:], s)
	b.n += len(s)
	b.term()
}

// LCat prepends src, shifting the existing contents right.
func (b *Buffer) LCat(src []byte) {
	if len(src) == 0 {
		return
	}
	b.ensure(b.n + len(src))
	copy(b.buf[len(src):], b.buf[:b.n+1])
	copy(b.buf, src)
	b.n += len(src)
}

// Insert places src at index, shifting the tail right. Out-of-range
// indices clamp to the length, turning the insert into an append.
func (b *Buffer) Insert(index int, src []byte) {
	if index < 0 {
		index = 0
	}
	if index > b.n {
		index = b.n
	}
	if len(src) == 0 {
		return
	}
	b.ensure(b.n + len(src))
	copy(b.buf[index+len(src):], b.buf[index:b.n+1])
	copy(b.buf[index:], src)
	b.n += len(src)
}

// Overlay writes src over the bytes starting at index without shifting.
// The length extends only when the overlay runs past the current end,
// like a sparse append. Index clamps to the length.
func (b *Buffer) Overlay(index int, src []byte) {
	if index < 0 {
		index = 0
	}
	if index > b.n {
		index = b.n
	}
	overEnd := index + len(src)
	if overEnd > b.Cap() {
		b.grow(overEnd)
	}
	copy(b.buf[index:], src)
	if overEnd > b.n {
		b.n = overEnd
		b.term()
	}
}

// Remove deletes every non-overlapping occurrence of needle at or
// after index, compacting survivors leftward in one pass. Pending
// bytes are moved only when the next gap is found, so each contiguous
// survivor run costs one move. Capacity never changes.
func (b *Buffer) Remove(index int, needle []byte) {
	if index < 0 {
		index = 0
	}
	nlen := len(needle)
	if nlen == 0 || b.n == 0 || index >= b.n || b.n-index < nlen {
		return
	}
	data := b.buf
	newlen := b.n
	to, from := -1, -1
	cursor := index
	for {
		if data[cursor] != needle[0] {
			i := bytes.IndexByte(data[cursor:b.n], needle[0])
			if i < 0 {
				break
			}
			cursor += i
		}
		if b.n-cursor < nlen {
			break
		}
		if bytes.Equal(data[cursor:cursor+nlen], needle) {
			newlen -= nlen
			if to >= 0 {
				if movelen := cursor - from; movelen > 0 {
					copy(data[to:], data[from:cursor])
					to += movelen
				}
			} else {
				to = cursor
			}
			cursor += nlen
			from = cursor
			if b.n-cursor < nlen {
				break
			}
		} else {
			cursor++
			if cursor >= b.n {
				break
			}
		}
	}
	if to >= 0 {
		copy(data[to:], data[from:b.n+1])
	}
	b.n = newlen
	b.term()
}

// RemoveRange deletes the bytes in [start, end), clamping end to the
// length. No-op when the range is empty.
func (b *Buffer) RemoveRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > b.n {
		end = b.n
	}
	if start >= end {
		return
	}
	copy(b.buf[start:], b.buf[end:b.n+1])
	b.n -= end - start
}

// Reverse flips the byte order in place.
func (b *Buffer) Reverse() {
	for left, right := 0, b.n-1; left < right; left, right = left+1, right-1 {
		b.buf[left], b.buf[right] = b.buf[right], b.buf[left]
	}
}

// Truncate shrinks the buffer to index bytes. Indices at or past the
// length are a no-op; Truncate never grows.
func (b *Buffer) Truncate(index int) {
	if index < 0 {
		index = 0
	}
	if index >= b.n {
		return
	}
	b.n = index
	b.term()
}

// Trim strips leading and trailing bytes that are members of cutset.
// The cutset is a set of bytes, not a substring.
func (b *Buffer) Trim(cutset []byte) {
	if len(cutset) == 0 {
		return
	}
	b.trimFunc(func(c byte) bool {
		return bytes.IndexByte(cutset, c) >= 0
	})
}

// TrimString is Trim with the cutset given as a string.
func (b *Buffer) TrimString(cutset string) {
	if len(cutset) == 0 {
		return
	}
	b.trimFunc(func(c byte) bool {
		return strings.IndexByte(cutset, c) >= 0
	})
}

// TrimSpace strips leading and trailing US-ASCII whitespace.
func (b *Buffer) TrimSpace() {
	b.trimFunc(isASCIISpace)
}

// trimFunc strips member bytes from both ends of the whole buffer.
func (b *Buffer) trimFunc(member func(byte) bool) {
	start, end := 0, b.n
	for start < end && member(b.buf[start]) {
		start++
	}
	for start < end && member(b.buf[end-1]) {
		end--
	}
	if start != end {
		b.n = end - start
		if start > 0 {
			copy(b.buf, b.buf[start:end])
		}
	} else {
		b.n = 0
	}
	b.term()
}

// TrimRange strips member-of-cutset bytes from both ends of the
// sub-range [rstart, rend), closing the freed span. Bytes outside the
// range are untouched.
func (b *Buffer) TrimRange(rstart, rend int, cutset []byte) {
	if len(cutset) == 0 {
		return
	}
	if rend > b.n {
		rend = b.n
	}
	if rstart < 0 {
		rstart = 0
	}
	if rstart >= rend {
		return
	}

	start, end := rstart, rend
	for start < end && bytes.IndexByte(cutset, b.buf[start]) >= 0 {
		start++
	}
	for start < end && bytes.IndexByte(cutset, b.buf[end-1]) >= 0 {
		end--
	}

	kept := end - start
	if start != rstart && kept > 0 {
		copy(b.buf[rstart:], b.buf[start:end])
	}
	if start != rstart || end != rend {
		copy(b.buf[rstart+kept:], b.buf[rend:b.n+1])
	}
	b.n -= (rend - rstart) - kept
	b.term()
}

// Upper maps ASCII letters to upper case in place.
func (b *Buffer) Upper() {
	for i, c := range b.buf[:b.n] {
		if 'a' <= c && c <= 'z' {
			b.buf[i] = c - ('a' - 'A')
		}
	}
}

// Lower maps ASCII letters to lower case in place.
func (b *Buffer) Lower() {
	for i, c := range b.buf[:b.n] {
		if 'A' <= c && c <= 'Z' {
			b.buf[i] = c + ('a' - 'A')
		}
	}
}

// Replace substitutes repl for every non-overlapping occurrence of
// needle at or after index. An empty needle is a no-op; an empty repl
// degenerates to Remove.
//
// When repl is no longer than needle the pass runs in place with the
// same deferred-compaction technique as Remove. When repl is longer, a
// pre-pass counts the remaining matches so the total expansion is
// reserved in one reallocation, the unmatched tail is shifted right
// once, and the matches are filled front to back.
func (b *Buffer) Replace(index int, needle, repl []byte) {
	if index < 0 {
		index = 0
	}
	nlen, rlen := len(needle), len(repl)
	if nlen == 0 {
		return
	}
	if rlen == 0 {
		b.Remove(index, needle)
		return
	}
	if index >= b.n {
		return
	}
	if rlen <= nlen {
		b.replaceShrink(index, needle, repl)
	} else {
		b.replaceExpand(index, needle, repl)
	}
}

func (b *Buffer) replaceShrink(index int, needle, repl []byte) {
	nlen, rlen := len(needle), len(repl)
	data := b.buf
	newlen := b.n
	to, from := -1, -1
	cursor := index
	for {
		if data[cursor] != needle[0] {
			i := bytes.IndexByte(data[cursor:b.n], needle[0])
			if i < 0 {
				break
			}
			cursor += i
		}
		if b.n-cursor < nlen {
			break
		}
		if bytes.Equal(data[cursor:cursor+nlen], needle) {
			newlen -= nlen - rlen
			if to >= 0 {
				if movelen := cursor - from; movelen > 0 {
					if to != from {
						copy(data[to:], data[from:cursor])
					}
					to += movelen
				}
			} else {
				to = cursor
			}
			copy(data[to:], repl)
			to += rlen
			cursor += nlen
			from = cursor
			if b.n-cursor < nlen {
				break
			}
		} else {
			cursor++
			if cursor >= b.n {
				break
			}
		}
	}
	if to >= 0 && to != from {
		copy(data[to:], data[from:b.n+1])
	}
	b.n = newlen
	b.term()
}

func (b *Buffer) replaceExpand(index int, needle, repl []byte) {
	nlen, rlen := len(needle), len(repl)
	first := b.Find(index, needle)
	if first == NPOS {
		return
	}
	diff := rlen - nlen
	count := b.Count(first+nlen, needle) + 1
	need := b.n + diff*count
	if need > b.Cap() {
		b.grow(need)
	}
	data := b.buf

	// Shift the tail past the first match to its final offset, then
	// fill matches front to back; the gap between write and read
	// positions closes exactly at the last match.
	shift := diff * count
	tail := first + nlen
	copy(data[tail+shift:], data[tail:b.n+1])
	copy(data[first:], repl)
	to := first + rlen
	from := tail + shift
	cursor := from
	b.n += shift

	for count--; count > 0; count-- {
		for {
			if data[cursor] != needle[0] {
				// The pre-pass counted this match; the scan
				// cannot run off the end.
				cursor += bytes.IndexByte(data[cursor:b.n], needle[0])
			}
			if bytes.Equal(data[cursor:cursor+nlen], needle) {
				break
			}
			cursor++
		}
		if movelen := cursor - from; movelen > 0 {
			copy(data[to:], data[from:cursor])
			to += movelen
		}
		copy(data[to:], repl)
		to += rlen
		from = cursor + nlen
		cursor = from
	}
	b.term()
}

// ReplaceRange replaces the bytes in [start, end) with src, shifting
// the tail as needed. End clamps to the length and start clamps to
// end; start == end == Len() is a pure append.
func (b *Buffer) ReplaceRange(start, end int, src []byte) {
	if start < 0 {
		start = 0
	}
	if end > b.n {
		end = b.n
	}
	if start > end {
		start = end
	}
	rlen := end - start
	if len(src) > rlen {
		b.ensure(b.n + (len(src) - rlen))
	}
	if rlen != len(src) {
		copy(b.buf[start+len(src):], b.buf[end:b.n+1])
	}
	copy(b.buf[start:], src)
	b.n += len(src) - rlen
	b.term()
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
