package strbuf

// CatInt appends the decimal representation of v. Negative values are
// converted digit by digit without negating v itself, so the signed
// minimum (whose magnitude is not representable) works.
func (b *Buffer) CatInt(v int64) {
	var digits [20]byte
	p := 0
	if v >= 0 {
		for {
			digits[p] = byte('0' + v%10)
			p++
			v /= 10
			if v == 0 {
				break
			}
		}
	} else {
		for {
			digits[p] = byte('0' - v%10)
			p++
			v /= 10
			if v == 0 {
				break
			}
		}
		digits[p] = '-'
		p++
	}
	b.catReversed(digits[:p])
}

// CatUint appends the decimal representation of v.
func (b *Buffer) CatUint(v uint64) {
	var digits [20]byte
	p := 0
	for {
		digits[p] = byte('0' + v%10)
		p++
		v /= 10
		if v == 0 {
			break
		}
	}
	b.catReversed(digits[:p])
}

// catReversed appends the bytes of rev in back-to-front order.
func (b *Buffer) catReversed(rev []byte) {
	b.ensure(b.n + len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		b.buf[b.n] = rev[i]
		b.n++
	}
	b.term()
}
