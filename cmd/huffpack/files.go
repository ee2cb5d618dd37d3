package main

import (
	"io/ioutil"
	"strings"
	"unicode"

	"github.com/chronos-tachyon/huffpack"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func readText(path string, trim bool) (string, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %q", path)
	}
	text := string(raw)
	if trim {
		text = strings.TrimRightFunc(text, unicode.IsSpace)
	}
	return text, nil
}

func writeFile(path string, data []byte) error {
	if err := ioutil.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %q", path)
	}
	logger.Infof("wrote %d bytes to %q", len(data), path)
	return nil
}

func saveTable(path string, table *huffpack.Table) error {
	raw, err := yaml.Marshal(table)
	if err != nil {
		return errors.Wrap(err, "failed to encode code table")
	}
	return writeFile(path, raw)
}

func loadTable(path string) (*huffpack.Table, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read code table %q", path)
	}
	var table huffpack.Table
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, errors.Wrapf(err, "failed to load code table %q", path)
	}
	logger.Infof("loaded %d codes from %q", table.Len(), path)
	return &table, nil
}
