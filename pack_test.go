package strbuf

import (
	"bytes"
	"errors"
	"testing"
)

func TestPackerLayout(t *testing.T) {
	b := Empty()
	defer b.Free()
	NewPacker(&b).
		Byte(0xAB).
		Uint16(0x0102).
		Uint32(0x03040506).
		Uint64(0x0708090A0B0C0D0E)
	want := []byte{
		0xAB,
		0x01, 0x02,
		0x03, 0x04, 0x05, 0x06,
		0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes() = % X, want % X", b.Bytes(), want)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	b := Empty()
	defer b.Free()
	p := NewPacker(&b)
	p.Byte(0xFF).Int8(-1).Bool(true).Bool(false).
		Uint16(65535).Int16(-2).
		Uint32(4000000000).Int32(-3).
		Uint64(1 << 63).Int64(-4)

	u := NewUnpacker(b.Bytes())
	if got := u.Byte(); got != 0xFF {
		t.Errorf("Byte() = %#x, want 0xff", got)
	}
	if got := u.Int8(); got != -1 {
		t.Errorf("Int8() = %d, want -1", got)
	}
	if got := u.Bool(); !got {
		t.Error("Bool() = false, want true")
	}
	if got := u.Bool(); got {
		t.Error("Bool() = true, want false")
	}
	if got := u.Uint16(); got != 65535 {
		t.Errorf("Uint16() = %d, want 65535", got)
	}
	if got := u.Int16(); got != -2 {
		t.Errorf("Int16() = %d, want -2", got)
	}
	if got := u.Uint32(); got != 4000000000 {
		t.Errorf("Uint32() = %d, want 4000000000", got)
	}
	if got := u.Int32(); got != -3 {
		t.Errorf("Int32() = %d, want -3", got)
	}
	if got := u.Uint64(); got != 1<<63 {
		t.Errorf("Uint64() = %d, want %d", got, uint64(1)<<63)
	}
	if got := u.Int64(); got != -4 {
		t.Errorf("Int64() = %d, want -4", got)
	}
	if err := u.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
	if u.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", u.Remaining())
	}
}

func TestUnpackerShortInput(t *testing.T) {
	u := NewUnpacker([]byte{0x01, 0x02})
	if got := u.Uint16(); got != 0x0102 {
		t.Fatalf("Uint16() = %#x, want 0x0102", got)
	}
	if got := u.Uint32(); got != 0 {
		t.Errorf("short Uint32() = %d, want 0", got)
	}
	if !errors.Is(u.Err(), ErrShortInput) {
		t.Errorf("Err() = %v, want ErrShortInput", u.Err())
	}
	// The error is sticky: later reads stay failed and return zero.
	if got := u.Byte(); got != 0 {
		t.Errorf("Byte() after error = %d, want 0", got)
	}
	if !errors.Is(u.Err(), ErrShortInput) {
		t.Errorf("Err() = %v, want ErrShortInput", u.Err())
	}
}

func TestPackerBuffer(t *testing.T) {
	b := Empty()
	defer b.Free()
	p := NewPacker(&b)
	if p.Buffer() != &b {
		t.Error("Buffer() does not return the destination")
	}
}
