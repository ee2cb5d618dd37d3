package huffpack

import (
	"encoding/json"

	"gopkg.in/yaml.v2"
)

// tableDoc is the serialized form of a Table: each symbol's byte value
// mapped to its code as a string of '0' and '1' characters.
type tableDoc struct {
	Codes map[int]string `yaml:"codes" json:"codes"`
}

func (t *Table) toDoc() tableDoc {
	doc := tableDoc{Codes: make(map[int]string, len(t.codes))}
	for symbol, hc := range t.codes {
		doc.Codes[int(symbol)] = hc.BitString()
	}
	return doc
}

func (doc tableDoc) toTable() (*Table, error) {
	codes := make(map[Symbol]Code, len(doc.Codes))
	for key, str := range doc.Codes {
		if key < 0 || key >= NumSymbols {
			return nil, invalidTablef("symbol %d outside [0, %d)", key, NumSymbols)
		}
		hc, err := ParseCode(str)
		if err != nil {
			return nil, invalidTablef("symbol %d: %v", key, err)
		}
		codes[Symbol(key)] = hc
	}
	return LoadTable(codes)
}

// MarshalYAML fulfills yaml.Marshaler.
func (t *Table) MarshalYAML() (interface{}, error) {
	return t.toDoc(), nil
}

// UnmarshalYAML fulfills yaml.Unmarshaler.  The loaded codes are validated
// as by LoadTable.
func (t *Table) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var doc tableDoc
	if err := unmarshal(&doc); err != nil {
		return err
	}
	loaded, err := doc.toTable()
	if err != nil {
		return err
	}
	*t = *loaded
	return nil
}

// MarshalJSON fulfills json.Marshaler.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.toDoc())
}

// UnmarshalJSON fulfills json.Unmarshaler.  The loaded codes are validated
// as by LoadTable.
func (t *Table) UnmarshalJSON(raw []byte) error {
	var doc tableDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	loaded, err := doc.toTable()
	if err != nil {
		return err
	}
	*t = *loaded
	return nil
}

var (
	_ yaml.Marshaler   = (*Table)(nil)
	_ yaml.Unmarshaler = (*Table)(nil)
	_ json.Marshaler   = (*Table)(nil)
	_ json.Unmarshaler = (*Table)(nil)
)
