// Package bitpack converts between byte buffers and sequences of fixed-width
// unsigned integers whose width need not divide 8.
//
// Bits are packed most-significant-bit first. Values follow each other with no
// padding; only the final partial byte is zero-filled.
package bitpack

import (
	"errors"
	"fmt"
	"iter"
)

// MaxWidth is the widest value the packer handles.
const MaxWidth = 32

var (
	ErrInvalidWidth     = errors.New("invalid bit width")
	ErrValueOutOfRange  = errors.New("value does not fit in bit width")
	ErrEncodingOverflow = errors.New("destination buffer too small")
)

// EncodedLen returns the number of bytes needed to pack count values of the
// given width.
func EncodedLen(count, width int) int {
	return (count*width + 7) / 8
}

func checkWidth(width int) error {
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidWidth, width, MaxWidth)
	}
	return nil
}

// Encode packs values into a newly allocated buffer of EncodedLen bytes.
func Encode(values []uint32, width int) ([]byte, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	dst := make([]byte, EncodedLen(len(values), width))
	if _, err := EncodeInto(dst, values, width); err != nil {
		return nil, err
	}
	return dst, nil
}

// EncodeInto packs values into dst and returns the number of bytes written.
// Any bytes of dst beyond that count are left untouched.
func EncodeInto(dst []byte, values []uint32, width int) (int, error) {
	if err := checkWidth(width); err != nil {
		return 0, err
	}
	n := EncodedLen(len(values), width)
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes for %d values of width %d, have %d",
			ErrEncodingOverflow, n, len(values), width, len(dst))
	}
	limit := uint64(1) << width
	for i, v := range values {
		if uint64(v) >= limit {
			return 0, fmt.Errorf("%w: value %d at index %d, width %d", ErrValueOutOfRange, v, i, width)
		}
	}

	clear(dst[:n])
	pos := 0
	for _, v := range values {
		remaining := width
		for remaining > 0 {
			leftover := 8 - pos%8
			take := min(remaining, leftover)
			chunk := (uint64(v) >> (remaining - take)) & (1<<take - 1)
			dst[pos>>3] |= byte(chunk << (leftover - take))
			pos += take
			remaining -= take
		}
	}
	return n, nil
}

// Reader lazily decodes fixed-width values from a byte buffer.
// It is one-shot: once drained it stays drained.
type Reader struct {
	buf   []byte
	width int
	mask  uint64
	pos   int // bit offset into buf
	value uint64
}

// NewReader returns a Reader over buf. The buffer is never modified.
// Widths outside 1..MaxWidth produce an empty sequence.
func NewReader(buf []byte, width int) *Reader {
	r := &Reader{buf: buf, width: width}
	if checkWidth(width) != nil {
		r.pos = len(buf) * 8
		return r
	}
	r.mask = 1<<width - 1
	return r
}

// Next returns the next value. ok is false once fewer than width bits remain;
// such a trailing group is discarded.
func (r *Reader) Next() (v uint32, ok bool) {
	for r.pos>>3 < len(r.buf) {
		b := uint64(r.buf[r.pos>>3])
		height := r.width - r.pos%r.width // bits still missing from the current value
		leftover := 8 - r.pos%8           // unread bits in the current byte

		b &= 0xff >> (8 - leftover)
		if shift := height - leftover; shift >= 0 {
			r.value |= b << shift
			r.pos += leftover
		} else {
			r.value |= b >> -shift
			r.pos += height
		}

		if r.pos%r.width == 0 {
			v = uint32(r.value & r.mask)
			r.value = 0
			return v, true
		}
	}
	return 0, false
}

// Values returns the remaining values of a new Reader over buf as an iterator.
func Values(buf []byte, width int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		r := NewReader(buf, width)
		for {
			v, ok := r.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Decode reads every complete value from buf.
func Decode(buf []byte, width int) []uint32 {
	if checkWidth(width) != nil {
		return nil
	}
	out := make([]uint32, 0, len(buf)*8/width)
	for v := range Values(buf, width) {
		out = append(out, v)
	}
	return out
}
