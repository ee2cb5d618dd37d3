package huffpack

import (
	"github.com/pkg/errors"
)

var (
	// ErrCorruptData is returned when a packed buffer cannot be decoded:
	// the buffer is truncated, the padding header is out of range, or the
	// trailing bits do not resolve to any code.
	ErrCorruptData = errors.New("huffpack: corrupt data")

	// ErrEmptyCodeTable is returned when decoding is attempted without a
	// populated code table.
	ErrEmptyCodeTable = errors.New("huffpack: empty code table")

	// ErrUnknownSymbol is returned when a symbol has no code in the table.
	ErrUnknownSymbol = errors.New("huffpack: unknown symbol")

	// ErrCodeTooLong is returned when the Huffman tree is deeper than
	// MaxCodeSize.
	ErrCodeTooLong = errors.New("huffpack: code too long")

	// ErrInvalidTable is returned when a loaded code table is not a valid
	// prefix code.
	ErrInvalidTable = errors.New("huffpack: invalid code table")
)

func corruptf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorruptData, format, args...)
}

func invalidTablef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidTable, format, args...)
}
