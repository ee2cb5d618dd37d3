package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
	return out.String()
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %q: %v", path, err)
	}
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %q: %v", path, err)
	}
	return string(raw)
}

func TestPaths(t *testing.T) {
	type testRow struct {
		fn     func(string) string
		input  string
		expect string
	}

	testData := [...]testRow{
		{packedPath, "notes.txt", "notes.bin"},
		{packedPath, "dir/notes", "dir/notes.bin"},
		{tablePath, "notes.txt", "notes.table.yaml"},
		{tablePath, "notes.bin", "notes.table.yaml"},
		{decompressedPath, "notes.bin", "notes_decompressed.txt"},
	}
	for _, row := range testData {
		if actual := row.fn(row.input); actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCompressDecompress(t *testing.T) {
	dir, err := ioutil.TempDir("", "huffpack")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	content := "it was the best of times, it was the worst of times\n"
	input := writeTestFile(t, dir, "tale.txt", content)

	runCommand(t, "compress", input)
	runCommand(t, "decompress", filepath.Join(dir, "tale.bin"))

	if actual := readTestFile(t, filepath.Join(dir, "tale_decompressed.txt")); actual != content {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", content, actual)
	}
}

func TestCompress_Trim(t *testing.T) {
	dir, err := ioutil.TempDir("", "huffpack")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	input := writeTestFile(t, dir, "a.txt", "aab \n\n")
	runCommand(t, "compress", "--trim", input)

	packed := readTestFile(t, filepath.Join(dir, "a.bin"))
	if expect := "\x05\xc0"; packed != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, packed)
	}
}

func TestCompress_Empty(t *testing.T) {
	dir, err := ioutil.TempDir("", "huffpack")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	input := writeTestFile(t, dir, "empty.txt", "")
	runCommand(t, "compress", input)
	runCommand(t, "decompress", filepath.Join(dir, "empty.bin"))

	if actual := readTestFile(t, filepath.Join(dir, "empty_decompressed.txt")); actual != "" {
		t.Errorf("expected empty output, got %q", actual)
	}
}

func TestRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "huffpack")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	input := writeTestFile(t, dir, "a.txt", "aab")
	out := runCommand(t, "roundtrip", input)

	if !strings.Contains(out, "3 -> 2 bytes") {
		t.Errorf("unexpected summary: %q", out)
	}
	if actual := readTestFile(t, filepath.Join(dir, "a_decompressed.txt")); actual != "aab" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "aab", actual)
	}
}

func TestDump(t *testing.T) {
	dir, err := ioutil.TempDir("", "huffpack")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	input := writeTestFile(t, dir, "a.txt", "aab")
	out := runCommand(t, "dump", input)

	expect := strings.Join([]string{
		"Table{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 1\n",
		"\tEncode('a') = \"1\"\n",
		"\tEncode('b') = \"0\"\n",
		"}\n",
	}, "")
	if out != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, out)
	}
}
