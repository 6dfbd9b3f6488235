package strbuf

import "bytes"

// Scan primitives: a fast single-byte scan for the needle's edge byte,
// then a full compare at the candidate position. No needle
// preprocessing; needles are expected to be short.

// Find returns the lowest index at or after start where needle occurs,
// or NPOS. An empty needle matches nothing.
func (b *Buffer) Find(start int, needle []byte) int {
	if start < 0 {
		start = 0
	}
	nlen := len(needle)
	if nlen == 0 || b.n == 0 || start >= b.n {
		return NPOS
	}
	data := b.buf[:b.n]
	cursor := start
	for {
		if data[cursor] != needle[0] {
			i := bytes.IndexByte(data[cursor:], needle[0])
			if i < 0 {
				return NPOS
			}
			cursor += i
		}
		if b.n-cursor < nlen {
			return NPOS
		}
		if bytes.Equal(data[cursor:cursor+nlen], needle) {
			return cursor
		}
		cursor++
		if cursor >= b.n {
			return NPOS
		}
	}
}

// FindString is Find with a string needle.
func (b *Buffer) FindString(start int, needle string) int {
	return b.Find(start, []byte(needle))
}

// RFind returns the start of the last occurrence of needle whose final
// byte lies at or before start, scanning backward and aligning on the
// needle's last byte. Returns NPOS when absent; an empty needle
// matches nothing. A start at or past the length clamps to the last
// byte.
func (b *Buffer) RFind(start int, needle []byte) int {
	nlen := len(needle)
	if start < 0 || nlen == 0 || b.n == 0 {
		return NPOS
	}
	if start >= b.n {
		start = b.n - 1
	}
	data := b.buf[:b.n]
	last := nlen - 1
	cursor := start
	for {
		if data[cursor] != needle[last] {
			i := bytes.LastIndexByte(data[:cursor], needle[last])
			if i < 0 {
				return NPOS
			}
			cursor = i
		}
		// The needle ends at cursor; it must fit before it.
		if cursor+1 < nlen {
			return NPOS
		}
		if bytes.Equal(data[cursor-last:cursor+1], needle) {
			return cursor - last
		}
		if cursor == 0 {
			return NPOS
		}
		cursor--
	}
}

// Count returns the number of non-overlapping occurrences of needle at
// or after start. After a match the scan resumes past the matched run.
func (b *Buffer) Count(start int, needle []byte) int {
	if start < 0 {
		start = 0
	}
	nlen := len(needle)
	if nlen == 0 || start >= b.n {
		return 0
	}
	data := b.buf[:b.n]
	count := 0
	cursor := start
	for {
		if data[cursor] != needle[0] {
			i := bytes.IndexByte(data[cursor:], needle[0])
			if i < 0 {
				break
			}
			cursor += i
		}
		if b.n-cursor < nlen {
			break
		}
		if bytes.Equal(data[cursor:cursor+nlen], needle) {
			count++
			cursor += nlen
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
	return count
}
