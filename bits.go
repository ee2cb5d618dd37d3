package huffpack

import (
	"bytes"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitString is an immutable sequence of bits, packed most significant bit
// first.  Any bits in the final byte beyond Len() are zero.
type BitString struct {
	data []byte
	size uint64
}

// NewBitString constructs a BitString holding the first size bits of data.
func NewBitString(data []byte, size uint64) BitString {
	assert.Assertf(ceilDiv8(size) == uint64(len(data)), "NewBitString: %d bits do not fit exactly in %d bytes", size, len(data))
	return BitString{data: data, size: size}
}

// ParseBitString parses a string of '0' and '1' characters.
func ParseBitString(str string) (BitString, error) {
	bw := NewBitStringWriter()
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			bw.WriteBit(false)
		case '1':
			bw.WriteBit(true)
		default:
			return BitString{}, errors.Errorf("huffpack: invalid bit %q at offset %d", str[i], i)
		}
	}
	return bw.BitString()
}

// Len returns the number of bits.
func (bs BitString) Len() uint64 {
	return bs.size
}

// Bytes returns the packed bits.  The caller must not modify the result.
func (bs BitString) Bytes() []byte {
	return bs.data
}

// Bit returns the i'th bit.
func (bs BitString) Bit(i uint64) uint {
	assert.Assertf(i < bs.size, "BitString.Bit: index %d out of range [0, %d)", i, bs.size)
	return uint(bs.data[i>>3]>>(7-(i&7))) & 1
}

// String returns the bits as '0' and '1' characters.
func (bs BitString) String() string {
	var sb strings.Builder
	sb.Grow(int(bs.size))
	for i := uint64(0); i < bs.size; i++ {
		sb.WriteByte('0' + byte(bs.Bit(i)))
	}
	return sb.String()
}

// BitStringWriter accumulates bits into a BitString.
type BitStringWriter struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	size uint64
	err  error
}

// NewBitStringWriter returns an empty BitStringWriter.
func NewBitStringWriter() *BitStringWriter {
	bw := &BitStringWriter{}
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

// WriteCode appends the bits of a Code.
func (bw *BitStringWriter) WriteCode(hc Code) {
	if bw.err == nil {
		bw.err = bw.w.WriteBits(hc.Bits, hc.Size)
		bw.size += uint64(hc.Size)
	}
}

// WriteBit appends a single bit.
func (bw *BitStringWriter) WriteBit(bit bool) {
	if bw.err == nil {
		bw.err = bw.w.WriteBool(bit)
		bw.size++
	}
}

// Len returns the number of bits written so far.
func (bw *BitStringWriter) Len() uint64 {
	return bw.size
}

// BitString flushes any partial byte and returns the accumulated bits.  The
// BitStringWriter must not be used afterward.
func (bw *BitStringWriter) BitString() (BitString, error) {
	if bw.err == nil {
		bw.err = bw.w.Close()
	}
	if bw.err != nil {
		return BitString{}, errors.Wrap(bw.err, "huffpack: failed to write bits")
	}
	return NewBitString(bw.buf.Bytes(), bw.size), nil
}

// PaddingFor returns the number of padding bits appended to a payload of
// size bits.  The result is always in the range [1, 8]: a payload that is
// already byte-aligned is followed by a full byte of padding.
func PaddingFor(size uint64) byte {
	return byte(8 - (size & 7))
}

// PackedLen returns the length in bytes of the packed form of a payload of
// size bits.
func PackedLen(size uint64) uint64 {
	return (8 + size + uint64(PaddingFor(size))) >> 3
}

// Pack converts a BitString into its packed form: a header byte holding the
// padding count P, the bits, and P zero bits.
func Pack(bs BitString) ([]byte, error) {
	padding := PaddingFor(bs.size)

	var buf bytes.Buffer
	buf.Grow(int(PackedLen(bs.size)))
	w := bitio.NewWriter(&buf)

	if err := w.WriteByte(padding); err != nil {
		return nil, errors.Wrap(err, "huffpack: failed to write header")
	}

	full := bs.size >> 3
	if _, err := w.Write(bs.data[:full]); err != nil {
		return nil, errors.Wrap(err, "huffpack: failed to write payload")
	}

	if rem := uint8(bs.size & 7); rem != 0 {
		if err := w.WriteBits(uint64(bs.data[full]>>(8-rem)), rem); err != nil {
			return nil, errors.Wrap(err, "huffpack: failed to write payload")
		}
	}

	if err := w.WriteBits(0, padding); err != nil {
		return nil, errors.Wrap(err, "huffpack: failed to write padding")
	}

	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "huffpack: failed to flush")
	}

	out := buf.Bytes()
	assert.Assertf(uint64(len(out)) == PackedLen(bs.size), "Pack: wrote %d bytes, expected %d", len(out), PackedLen(bs.size))
	return out, nil
}

// Unpack reverses Pack.  It returns an error wrapping ErrCorruptData if the
// buffer is empty, the padding count is outside [1, 8] or inconsistent with
// the buffer length, or any padding bit is set.
func Unpack(buf []byte) (BitString, error) {
	if len(buf) == 0 {
		return BitString{}, corruptf("empty buffer")
	}

	r := bitio.NewReader(bytes.NewReader(buf))
	padding, err := r.ReadByte()
	if err != nil {
		return BitString{}, corruptf("failed to read header: %v", err)
	}
	if padding < 1 || padding > 8 {
		return BitString{}, corruptf("padding count %d outside [1, 8]", padding)
	}

	payload := buf[1:]
	if len(payload) == 0 {
		return BitString{}, corruptf("missing payload for padding count %d", padding)
	}

	last := payload[len(payload)-1]
	mask := byte(0xff)
	if padding < 8 {
		mask = byte(1)<<padding - 1
	}
	if last&mask != 0 {
		return BitString{}, corruptf("non-zero padding bits in final byte %#02x", last)
	}

	size := uint64(len(payload))<<3 - uint64(padding)
	data := make([]byte, ceilDiv8(size))
	copy(data, payload)
	return NewBitString(data, size), nil
}
