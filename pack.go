package strbuf

import "encoding/binary"

// Packer appends fixed-width integers to a buffer in network byte
// order (big endian). Calls chain; the buffer grows under its growth
// policy as values are appended.
//
//	var b strbuf.Buffer = strbuf.Empty()
//	strbuf.NewPacker(&b).Uint16(0x0102).Bool(true).Int64(-1)
type Packer struct {
	b *Buffer
}

// NewPacker returns a packer appending to b.
func NewPacker(b *Buffer) *Packer {
	return &Packer{b: b}
}

// Buffer returns the destination buffer.
func (p *Packer) Buffer() *Buffer {
	return p.b
}

// Byte appends one byte.
func (p *Packer) Byte(v byte) *Packer {
	var w [1]byte
	w[0] = v
	p.b.Cat(w[:])
	return p
}

// Int8 appends a signed byte.
func (p *Packer) Int8(v int8) *Packer {
	return p.Byte(byte(v))
}

// Bool appends a bool as one byte, 1 for true.
func (p *Packer) Bool(v bool) *Packer {
	if v {
		return p.Byte(1)
	}
	return p.Byte(0)
}

// Uint16 appends two bytes.
func (p *Packer) Uint16(v uint16) *Packer {
	var w [2]byte
	binary.BigEndian.PutUint16(w[:], v)
	p.b.Cat(w[:])
	return p
}

// Int16 appends two bytes.
func (p *Packer) Int16(v int16) *Packer {
	return p.Uint16(uint16(v))
}

// Uint32 appends four bytes.
func (p *Packer) Uint32(v uint32) *Packer {
	var w [4]byte
	binary.BigEndian.PutUint32(w[:], v)
	p.b.Cat(w[:])
	return p
}

// Int32 appends four bytes.
func (p *Packer) Int32(v int32) *Packer {
	return p.Uint32(uint32(v))
}

// Uint64 appends eight bytes.
func (p *Packer) Uint64(v uint64) *Packer {
	var w [8]byte
	binary.BigEndian.PutUint64(w[:], v)
	p.b.Cat(w[:])
	return p
}

// Int64 appends eight bytes.
func (p *Packer) Int64(v int64) *Packer {
	return p.Uint64(uint64(v))
}

// Unpacker reads big-endian fixed-width integers from a byte slice.
// Reads past the end of the input set a sticky ErrShortInput and
// return zero values; check Err after the last read.
type Unpacker struct {
	data []byte
	off  int
	err  error
}

// NewUnpacker returns an unpacker over data. The slice is read in
// place, not copied.
func NewUnpacker(data []byte) *Unpacker {
	return &Unpacker{data: data}
}

// Err returns the first error encountered, or nil.
func (u *Unpacker) Err() error {
	return u.err
}

// Remaining returns the number of unread bytes.
func (u *Unpacker) Remaining() int {
	return len(u.data) - u.off
}

// take claims n bytes of input, or fails the unpacker.
func (u *Unpacker) take(n int) []byte {
	if u.err != nil {
		return nil
	}
	if u.Remaining() < n {
		u.err = ErrShortInput
		return nil
	}
	v := u.data[u.off : u.off+n]
	u.off += n
	return v
}

// Byte reads one byte.
func (u *Unpacker) Byte() byte {
	v := u.take(1)
	if v == nil {
		return 0
	}
	return v[0]
}

// Int8 reads a signed byte.
func (u *Unpacker) Int8() int8 {
	return int8(u.Byte())
}

// Bool reads one byte; any nonzero value is true.
func (u *Unpacker) Bool() bool {
	return u.Byte() != 0
}

// Uint16 reads two bytes.
func (u *Unpacker) Uint16() uint16 {
	v := u.take(2)
	if v == nil {
		return 0
	}
	return binary.BigEndian.Uint16(v)
}

// Int16 reads two bytes.
func (u *Unpacker) Int16() int16 {
	return int16(u.Uint16())
}

// Uint32 reads four bytes.
func (u *Unpacker) Uint32() uint32 {
	v := u.take(4)
	if v == nil {
		return 0
	}
	return binary.BigEndian.Uint32(v)
}

// Int32 reads four bytes.
func (u *Unpacker) Int32() int32 {
	return int32(u.Uint32())
}

// Uint64 reads eight bytes.
func (u *Unpacker) Uint64() uint64 {
	v := u.take(8)
	if v == nil {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

// Int64 reads eight bytes.
func (u *Unpacker) Int64() int64 {
	return int64(u.Uint64())
}
