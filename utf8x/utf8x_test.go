package utf8x

import (
	"testing"
	"unicode/utf8"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		c    rune
		want bool
	}{
		{0, true},
		{'A', true},
		{0x7F, true},
		{0x80, true},
		{0xD7FF, true},
		{0xD800, false},
		{0xDFFF, false},
		{0xE000, true},
		{0x10FFFF, true},
		{0x110000, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.c); got != tt.want {
			t.Errorf("IsValid(%#x) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestRuneSeqLen(t *testing.T) {
	tests := []struct {
		c    rune
		want int
	}{
		{'A', 1},
		{0x7F, 1},
		{0x80, 2},
		{0x7FF, 2},
		{0x800, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{0x10FFFF, 4},
		{0xD800, 0},
		{0x110000, 0},
	}
	for _, tt := range tests {
		if got := RuneSeqLen(tt.c); got != tt.want {
			t.Errorf("RuneSeqLen(%#x) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestSeqLen(t *testing.T) {
	tests := []struct {
		first byte
		want  int
	}{
		{0x00, 1},
		{'A', 1},
		{0x7F, 1},
		{0x80, 0}, // continuation byte
		{0xBF, 0},
		{0xC0, 2},
		{0xDF, 2},
		{0xE0, 3},
		{0xEF, 3},
		{0xF0, 4},
		{0xF7, 4},
		{0xF8, 0}, // beyond the encodable range
		{0xFF, 0},
	}
	for _, tt := range tests {
		if got := SeqLen(tt.first); got != tt.want {
			t.Errorf("SeqLen(%#x) = %d, want %d", tt.first, got, tt.want)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		c    rune
		want []byte
	}{
		{'A', []byte{0x41}},
		{0xE9, []byte{0xC3, 0xA9}},
		{0x20AC, []byte{0xE2, 0x82, 0xAC}},
		{0x1F600, []byte{0xF0, 0x9F, 0x98, 0x80}},
	}
	for _, tt := range tests {
		var dst [SeqMax]byte
		n := Encode(tt.c, dst[:])
		if n != len(tt.want) {
			t.Errorf("Encode(%#x) wrote %d bytes, want %d", tt.c, n, len(tt.want))
			continue
		}
		for i, c := range tt.want {
			if dst[i] != c {
				t.Errorf("Encode(%#x) = % X, want % X", tt.c, dst[:n], tt.want)
				break
			}
		}
	}
}

func TestEncodeInvalid(t *testing.T) {
	var dst [SeqMax]byte
	for _, c := range []rune{0xD800, 0xDFFF, 0x110000, -1} {
		if n := Encode(c, dst[:]); n != 0 {
			t.Errorf("Encode(%#x) = %d, want 0", c, n)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		seq   []byte
		wantC rune
		wantN int
	}{
		{"ascii", []byte{'A'}, 'A', 1},
		{"two byte", []byte{0xC3, 0xA9}, 0xE9, 2},
		{"three byte", []byte{0xE2, 0x82, 0xAC}, 0x20AC, 3},
		{"four byte", []byte{0xF0, 0x9F, 0x98, 0x80}, 0x1F600, 4},
		{"trailing bytes ignored", []byte{0xC3, 0xA9, 'x'}, 0xE9, 2},
		{"empty", nil, 0, 0},
		{"lone continuation", []byte{0x80}, 0, 0},
		{"truncated sequence", []byte{0xE2, 0x82}, 0, 0},
		{"bad first continuation", []byte{0xE2, 0x41, 0xAC}, 0, 0},
		{"bad last continuation", []byte{0xE2, 0x82, 0x41}, 0, 0},
		{"one bad among several", []byte{0xF0, 0x9F, 0x41, 0x80}, 0, 0},
		{"lead beyond range", []byte{0xF8, 0x80, 0x80, 0x80, 0x80}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, n := Decode(tt.seq)
			if c != tt.wantC || n != tt.wantN {
				t.Errorf("Decode(% X) = (%#x, %d), want (%#x, %d)",
					tt.seq, c, n, tt.wantC, tt.wantN)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Sweep the boundaries of every sequence length.
	points := []rune{
		0, 1, 0x7F, 0x80, 0x7FF, 0x800, 0xD7FF, 0xE000,
		0xFFFF, 0x10000, 0x1F600, 0x10FFFF,
	}
	for _, c := range points {
		var dst [SeqMax]byte
		n := Encode(c, dst[:])
		if n == 0 {
			t.Errorf("Encode(%#x) failed", c)
			continue
		}
		got, gotN := Decode(dst[:n])
		if got != c || gotN != n {
			t.Errorf("Decode(Encode(%#x)) = (%#x, %d), want (%#x, %d)", c, got, gotN, c, n)
		}
	}
}

func TestEncodeMatchesStdlib(t *testing.T) {
	for c := rune(0); c <= 0x10FFFF; c += 7 {
		if !IsValid(c) {
			continue
		}
		var dst [SeqMax]byte
		n := Encode(c, dst[:])
		want := utf8.AppendRune(nil, c)
		if n != len(want) || string(dst[:n]) != string(want) {
			t.Fatalf("Encode(%#x) = % X, want % X", c, dst[:n], want)
		}
	}
}
