package huffpack

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestBitString(t *testing.T) {
	for _, str := range []string{"", "0", "1", "0110", "10110011", "101100111", "0000000000000001"} {
		bs, err := ParseBitString(str)
		if err != nil {
			t.Errorf("ParseBitString(%q) failed: %v", str, err)
			continue
		}
		if bs.Len() != uint64(len(str)) {
			t.Errorf("ParseBitString(%q): expected %d bits, got %d", str, len(str), bs.Len())
		}
		if uint64(len(bs.Bytes())) != ceilDiv8(bs.Len()) {
			t.Errorf("ParseBitString(%q): expected %d bytes, got %d", str, ceilDiv8(bs.Len()), len(bs.Bytes()))
		}
		if actual := bs.String(); actual != str {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", str, actual)
		}
	}
}

func TestBitStringWriter_WriteCode(t *testing.T) {
	bw := NewBitStringWriter()
	for _, str := range []string{"1", "01", "0011", "1"} {
		hc, _ := ParseCode(str)
		bw.WriteCode(hc)
	}
	bs, err := bw.BitString()
	if err != nil {
		t.Fatalf("BitString failed: %v", err)
	}
	expect := "10100111"
	if actual := bs.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestPaddingFor(t *testing.T) {
	type testRow struct {
		size   uint64
		expect byte
	}

	testData := [...]testRow{
		{0, 8},
		{1, 7},
		{3, 5},
		{7, 1},
		{8, 8},
		{9, 7},
		{16, 8},
	}
	for _, row := range testData {
		if actual := PaddingFor(row.size); actual != row.expect {
			t.Errorf("PaddingFor(%d): expected %d, got %d", row.size, row.expect, actual)
		}
	}
}

func TestPack(t *testing.T) {
	type testRow struct {
		bits   string
		expect []byte
	}

	testData := [...]testRow{
		{"", []byte{0x08, 0x00}},
		{"001", []byte{0x05, 0x20}},
		{"110", []byte{0x05, 0xc0}},
		{"0000", []byte{0x04, 0x00}},
		{"01010101", []byte{0x08, 0x55, 0x00}},
		{"111111111", []byte{0x07, 0xff, 0x80}},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			bs, _ := ParseBitString(row.bits)
			actual, err := Pack(bs)
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			if !bytes.Equal(row.expect, actual) {
				t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", row.expect, actual)
			}
			if uint64(len(actual)) != PackedLen(bs.Len()) {
				t.Errorf("expected %d bytes, got %d", PackedLen(bs.Len()), len(actual))
			}

			unpacked, err := Unpack(actual)
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if unpacked.String() != row.bits {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.bits, unpacked.String())
			}
		})
	}
}

func TestUnpack_Corrupt(t *testing.T) {
	type testRow struct {
		name string
		buf  []byte
	}

	testData := [...]testRow{
		{"empty", []byte{}},
		{"zero-padding", []byte{0x00, 0x20}},
		{"padding-too-large", []byte{0x09, 0x00, 0x00}},
		{"header-only", []byte{0x05}},
		{"padding-bits-set", []byte{0x05, 0x21}},
		{"full-padding-byte-set", []byte{0x08, 0x55, 0x01}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Unpack(row.buf)
			if !errors.Is(err, ErrCorruptData) {
				t.Errorf("expected ErrCorruptData, got %v", err)
			}
		})
	}
}
