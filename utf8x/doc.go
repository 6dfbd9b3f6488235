// Package utf8x provides low-level UTF-8 codec primitives: code-point
// validity, sequence-length classification for lead bytes, and
// conversion between code points and byte sequences.
//
// Unlike the standard unicode/utf8 package, Decode reports malformed
// input with a zero length instead of substituting the replacement
// rune, and SeqLen classifies a lead byte without looking at the rest
// of the sequence. That makes the package suitable for parsers that
// need to reject or skip malformed input byte-exactly.
package utf8x
