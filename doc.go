// Package huffpack implements a lossless text compressor based on Huffman
// codes.  Symbol frequencies are counted, a Huffman tree is built with a
// min-priority queue, and the resulting prefix code is used to pack the text
// into a byte buffer.
//
// The packed format is a single header byte holding the number of padding
// bits P (1 <= P <= 8), followed by the encoded bits, most significant bit
// first, followed by P zero bits.  The code table is not stored in the
// packed buffer; it must be kept by the caller, either in the Codec that
// produced the buffer or serialized separately (see Table.MarshalYAML).
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
