package huffpack

import (
	"bytes"
	"strings"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Encode encodes text with the given Table and returns the packed buffer.
// Empty text encodes to an empty buffer.  Every byte of text must have a
// code in the Table.
func Encode(t *Table, text string) ([]byte, error) {
	if len(text) == 0 {
		return []byte{}, nil
	}
	if t.Len() == 0 {
		return nil, errors.Wrap(ErrEmptyCodeTable, "encode")
	}

	bw := NewBitStringWriter()
	for i := 0; i < len(text); i++ {
		hc, found := t.Encode(Symbol(text[i]))
		if !found {
			return nil, errors.Wrapf(ErrUnknownSymbol, "byte %q at offset %d", text[i], i)
		}
		bw.WriteCode(hc)
	}

	bs, err := bw.BitString()
	if err != nil {
		return nil, err
	}
	return Pack(bs)
}

// Decode reverses Encode.  An empty buffer decodes to empty text.
func Decode(t *Table, buf []byte) (string, error) {
	if len(buf) == 0 {
		return "", nil
	}
	if t.Len() == 0 {
		return "", errors.Wrap(ErrEmptyCodeTable, "decode")
	}

	bs, err := Unpack(buf)
	if err != nil {
		return "", err
	}
	return DecodeBits(t, bs)
}

// DecodeBits scans bs from left to right, emitting a Symbol each time the
// bits accumulated since the last Symbol form a code in the Table.
func DecodeBits(t *Table, bs BitString) (string, error) {
	if t.Len() == 0 {
		return "", errors.Wrap(ErrEmptyCodeTable, "decode")
	}

	var sb strings.Builder
	if t.MinSize() != 0 {
		sb.Grow(int(bs.Len() / uint64(t.MinSize())))
	}

	r := bitio.NewReader(bytes.NewReader(bs.Bytes()))
	var hc Code
	for i := uint64(0); i < bs.Len(); i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", corruptf("failed to read bit %d: %v", i, err)
		}
		if bit {
			hc = hc.Append(1)
		} else {
			hc = hc.Append(0)
		}

		if symbol, found := t.Decode(hc); found {
			sb.WriteByte(byte(symbol))
			hc = Code{}
			continue
		}

		if hc.Size >= t.MaxSize() {
			return "", corruptf("no code matches %s ending at bit %d", hc, i)
		}
	}

	if hc.Size != 0 {
		return "", corruptf("trailing bits %s match no code", hc)
	}
	return sb.String(), nil
}

// Codec compresses and decompresses text.  A Codec created by NewCodec
// derives a fresh Table from each text passed to Compress and keeps it for
// later calls to Decompress.  A Codec created by NewCodecWithTable uses the
// given Table for both directions.
//
// A Codec is not safe for concurrent use.
type Codec struct {
	table *Table
	fixed bool
}

// NewCodec returns a Codec that builds its Table from the text it
// compresses.
func NewCodec() *Codec {
	return &Codec{}
}

// NewCodecWithTable returns a Codec that always uses t.
func NewCodecWithTable(t *Table) *Codec {
	return &Codec{table: t, fixed: true}
}

// Table returns the Table used by the most recent Compress, or the Table
// given to NewCodecWithTable.  Returns nil if there is none yet.
func (c *Codec) Table() *Table {
	return c.table
}

// Compress encodes text into a packed buffer.
func (c *Codec) Compress(text string) ([]byte, error) {
	if len(text) == 0 {
		return []byte{}, nil
	}
	if !c.fixed {
		t, err := BuildTable(text)
		if err != nil {
			return nil, err
		}
		c.table = t
	}
	return Encode(c.table, text)
}

// Decompress decodes a packed buffer produced with this Codec's Table.
func (c *Codec) Decompress(buf []byte) (string, error) {
	return Decode(c.table, buf)
}
