package strbuf

import (
	"bytes"
	"fmt"
)

// fmt reports bad verbs and argument mismatches by embedding %! marks
// in its output rather than returning an error; the formatted
// operations translate those marks into ErrFormat.
var badFormatMark = []byte("%!")

// hasFormatMark reports whether out contains one of fmt's structured
// error marks: "%!(" for missing/extra arguments and bad
// width/precision/index, or "%!<verb>(" for a wrong-type or panicking
// operand. A bare "%!" rendered from argument data matches neither
// form.
func hasFormatMark(out []byte) bool {
	for i := 0; ; {
		j := bytes.Index(out[i:], badFormatMark)
		if j < 0 {
			return false
		}
		i += j + len(badFormatMark)
		if i < len(out) && out[i] == '(' {
			return true
		}
		if i+1 < len(out) && out[i+1] == '(' {
			return true
		}
	}
}

// Copyf renders a format string over the contents. On a malformed
// format the buffer is cleared (still terminated) and ErrFormat is
// returned.
func (b *Buffer) Copyf(format string, args ...any) error {
	out := fmt.Appendf(nil, format, args...)
	if hasFormatMark(out) {
		b.Clear()
		return ErrFormat
	}
	b.Copy(out)
	return nil
}

// Catf renders a format string and appends it. On a malformed format
// the existing contents are kept unchanged and ErrFormat is returned.
func (b *Buffer) Catf(format string, args ...any) error {
	out := fmt.Appendf(nil, format, args...)
	if hasFormatMark(out) {
		b.term()
		return ErrFormat
	}
	b.Cat(out)
	return nil
}
