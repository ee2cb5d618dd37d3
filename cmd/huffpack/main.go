// Command huffpack compresses and decompresses text files with Huffman codes.
//
// Usage:
//
//     huffpack compress notes.txt      # writes notes.bin and notes.table.yaml
//     huffpack decompress notes.bin    # writes notes_decompressed.txt
//     huffpack roundtrip notes.txt     # both, with a single code table
//     huffpack dump notes.txt          # prints the code table
//
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
