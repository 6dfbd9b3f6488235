package strbuf

import (
	"bytes"

	"github.com/dshills/strbuf/utf8x"
)

const hexDigits = "0123456789ABCDEF"

func hexVal(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// at reads the byte at i, or 0 past the end. Escape parsing peeks past
// consumed digits and must not run off borrowed storage.
func (b *Buffer) at(i int) byte {
	if i < b.n {
		return b.buf[i]
	}
	return 0
}

// Unescape decodes C-style backslash escapes in place: the named
// escapes \a \b \e \f \n \r \t \v \\ \' \" \?, hex \xHH (one or two
// digits), short \uHHHH and long \UHHHHHHHH unicode escapes (short
// forms accepted, decoded to UTF-8), and octal \ooo (up to three
// digits, capped at \377). A backslash that introduces none of these
// passes through untouched.
//
// Decoding never grows the buffer, so the pass uses the same deferred
// compaction as Remove: survivors are moved left only when the next
// escape is found.
func (b *Buffer) Unescape() {
	var scratch [utf8x.SeqMax]byte
	data := b.buf
	newlen := b.n
	to, from := -1, -1
	p := 0
	for p < b.n {
		if data[p] != '\\' {
			i := bytes.IndexByte(data[p:b.n], '\\')
			if i < 0 {
				break
			}
			p += i
		}

		if to < 0 || to == from {
			to = p
		} else if movelen := p - from; movelen > 0 {
			copy(data[to:], data[from:p])
			to += movelen
		}

		introducer := b.at(p + 1)
		p += 2
		from = p
		written, removed := 1, 2
		switch introducer {
		case 'a':
			data[to] = 0x07
		case 'b':
			data[to] = 0x08
		case 'e':
			data[to] = 0x1B
		case 'f':
			data[to] = 0x0C
		case 'n':
			data[to] = 0x0A
		case 'r':
			data[to] = 0x0D
		case 't':
			data[to] = 0x09
		case 'v':
			data[to] = 0x0B
		case '\\':
			data[to] = '\\'
		case '\'':
			data[to] = '\''
		case '"':
			data[to] = '"'
		case '?':
			data[to] = '?'
		case 'x':
			if hv, ok := hexVal(b.at(p)); ok {
				c := hv
				p++
				removed++
				if hv, ok = hexVal(b.at(p)); ok {
					c = c<<4 | hv
					p++
					removed++
				}
				data[to] = c
				from = p
			} else {
				// No hex digit after \x: keep both bytes.
				from = p - 2
				written, removed = 0, 0
			}
		case 'u', 'U':
			maxDigits := 4
			if introducer == 'U' {
				maxDigits = 8
			}
			if hv, ok := hexVal(b.at(p)); ok {
				c := uint32(hv)
				p++
				removed++
				for i := 1; i < maxDigits; i++ {
					hv, ok = hexVal(b.at(p))
					if !ok {
						break
					}
					c = c<<4 | uint32(hv)
					p++
					removed++
				}
				// Invalid code points encode to nothing and
				// the whole escape disappears.
				written = utf8x.Encode(rune(c), scratch[:])
				copy(data[to:], scratch[:written])
				from = p
			} else {
				from = p - 2
				written, removed = 0, 0
			}
		default:
			p-- // back to the introducer
			if first := b.at(p); '0' <= first && first <= '7' {
				c := first - '0'
				p++
				if d := b.at(p); '0' <= d && d <= '7' {
					c = c<<3 | (d - '0')
					p++
					removed++
					// A third digit only when the value
					// still fits one byte.
					if d = b.at(p); '0' <= d && d <= '7' && first < '4' {
						c = c<<3 | (d - '0')
						p++
						removed++
					}
				}
				data[to] = c
				from = p
			} else {
				// Unrecognized introducer: literal
				// passthrough of backslash plus byte.
				p++
				from = p - 2
				written, removed = 0, 0
			}
		}

		to += written
		newlen -= removed - written
	}

	if to >= 0 && to != from {
		copy(data[to:], data[from:b.n+1])
	}
	b.n = newlen
	b.term()
}

// Escape rewrites the contents with C-style escapes: the named escapes
// for their control characters plus backslash, quote and double quote,
// \xHH for other control bytes, and every remaining byte unchanged.
// The result is built in a doubling scratch buffer and copied back.
func (b *Buffer) Escape() {
	if b.n == 0 {
		return
	}
	t := New(b.n * 2)
	t.SetGrow(Grow100)
	var one [1]byte
	for _, c := range b.buf[:b.n] {
		switch c {
		case 0x07:
			t.CatString(`\a`)
		case 0x08:
			t.CatString(`\b`)
		case 0x1B:
			t.CatString(`\e`)
		case 0x0C:
			t.CatString(`\f`)
		case 0x0A:
			t.CatString(`\n`)
		case 0x0D:
			t.CatString(`\r`)
		case 0x09:
			t.CatString(`\t`)
		case 0x0B:
			t.CatString(`\v`)
		case '\\':
			t.CatString(`\\`)
		case '\'':
			t.CatString(`\'`)
		case '"':
			t.CatString(`\"`)
		default:
			if c < 0x20 || c == 0x7F {
				t.Cat([]byte{'\\', 'x', hexDigits[c>>4], hexDigits[c&0x0F]})
			} else {
				one[0] = c
				t.Cat(one[:])
			}
		}
	}
	b.Copy(t.Bytes())
	t.Free()
}
