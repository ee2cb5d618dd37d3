package main

import (
	"path/filepath"
	"strings"
)

const (
	packedExt       = ".bin"
	tableExt        = ".table.yaml"
	decompressedSfx = "_decompressed.txt"
)

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func packedPath(input string) string {
	return trimExt(input) + packedExt
}

func tablePath(input string) string {
	return trimExt(input) + tableExt
}

func decompressedPath(input string) string {
	return trimExt(input) + decompressedSfx
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
