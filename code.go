package huffpack

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// MaxCodeSize is the maximum number of bits in a Code.
const MaxCodeSize = 64

// Code represents a sequence of bits: the path from the root of a Huffman
// tree to a leaf, with 0 for a left edge and 1 for a right edge.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the
	// most significant of the Size low bits of Bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, errors.Wrapf(ErrCodeTooLong, "%d bits", len(str))
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, errors.Errorf("huffpack: invalid bit %q in code %q", str[i], str)
		}
	}
	return hc, nil
}

// Append returns the Code extended by one bit.
func (hc Code) Append(bit uint) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// Bit returns the i'th bit of the Code, counting from the first.
func (hc Code) Bit(i byte) uint {
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix reports whether prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// BitString returns the bits of this Code as '0' and '1' characters.
func (hc Code) BitString() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.BitString())
}

var _ fmt.Stringer = Code{}
