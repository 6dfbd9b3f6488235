package strbuf

import (
	"strings"
	"testing"
)

// FuzzEscapeRoundTrip checks that Escape followed by Unescape restores
// any input exactly.
func FuzzEscapeRoundTrip(f *testing.F) {
	f.Add([]byte("plain"))
	f.Add([]byte("tabs\tnewlines\n"))
	f.Add([]byte{0x00, 0x01, 0x7F, 0xFF})
	f.Add([]byte(`backslash \ quote " tick '`))
	f.Fuzz(func(t *testing.T, data []byte) {
		b := NewFrom(0, data)
		defer b.Free()
		b.Escape()
		b.Unescape()
		if got := b.String(); got != string(data) {
			t.Errorf("round trip of %q = %q", data, got)
		}
	})
}

// FuzzUnescapeNeverGrows checks the in-place decode invariants on
// arbitrary input: the result never exceeds the input length, the
// terminator survives, and capacity is untouched.
func FuzzUnescapeNeverGrows(f *testing.F) {
	f.Add(`\x41é\101`)
	f.Add(`\q\z\`)
	f.Add(`\u`)
	f.Add(strings.Repeat(`\n`, 50))
	f.Fuzz(func(t *testing.T, s string) {
		b := FromString(s)
		defer b.Free()
		capBefore := b.Cap()
		b.Unescape()
		if b.Len() > len(s) {
			t.Errorf("Unescape grew %q from %d to %d bytes", s, len(s), b.Len())
		}
		if b.Cap() != capBefore {
			t.Errorf("Unescape changed capacity from %d to %d", capBefore, b.Cap())
		}
		if b.buf[b.n] != 0 {
			t.Error("missing terminator after Unescape")
		}
	})
}

// FuzzReplace compares Replace against the stdlib replacer on
// arbitrary inputs.
func FuzzReplace(f *testing.F) {
	f.Add("abcabcabc", "abc", "198273")
	f.Add("aabbbbaa", "aa", "c")
	f.Add("aaaa", "aa", "b")
	f.Add("", "x", "y")
	f.Fuzz(func(t *testing.T, base, needle, repl string) {
		if len(needle) == 0 {
			return
		}
		b := FromString(base)
		defer b.Free()
		b.Replace(0, []byte(needle), []byte(repl))
		want := strings.ReplaceAll(base, needle, repl)
		if got := b.String(); got != want {
			t.Errorf("Replace(%q, %q, %q) = %q, want %q", base, needle, repl, got, want)
		}
	})
}

// FuzzFind compares the scan primitives against the stdlib index
// functions.
func FuzzFind(f *testing.F) {
	f.Add("hello world", "o")
	f.Add("aaaa", "aa")
	f.Add("", "")
	f.Fuzz(func(t *testing.T, haystack, needle string) {
		if len(needle) == 0 {
			return
		}
		b := FromString(haystack)
		defer b.Free()
		got := b.FindString(0, needle)
		want := strings.Index(haystack, needle)
		if want == -1 {
			want = NPOS
		}
		if got != want {
			t.Errorf("Find(0, %q) in %q = %d, want %d", needle, haystack, got, want)
		}
	})
}
