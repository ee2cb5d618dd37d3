package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Table maps each Symbol of an alphabet to its Code, and each Code back to
// its Symbol.  A Table is immutable once constructed.
type Table struct {
	codes   map[Symbol]Code
	symbols map[Code]Symbol
	minSize byte
	maxSize byte
}

// DeriveTable walks the Huffman tree rooted at root and assigns each leaf the
// Code of its path from the root.
//
// A tree consisting of a single leaf would give that leaf an empty code, so
// it is assigned the one-bit code "0" instead.  A nil root yields an empty
// Table.
//
func DeriveTable(root *Node) (*Table, error) {
	t := newTable(0)
	if root == nil {
		return t, nil
	}

	if root.IsLeaf() {
		t.insert(root.Symbol, MakeCode(1, 0))
		return t, nil
	}

	// Walk the tree with an explicit stack.  Right children are pushed
	// first so that left subtrees are visited first.

	type stackItem struct {
		node *Node
		code Code
	}

	stack := make([]stackItem, 0, log2uint(NumSymbols)+1)
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.IsLeaf() {
			t.insert(top.node.Symbol, top.code)
			continue
		}

		assert.Assertf(top.node.Left != nil && top.node.Right != nil, "internal node with one child: %#v", top.node)
		if top.code.Size >= MaxCodeSize {
			return nil, errors.Wrapf(ErrCodeTooLong, "tree depth exceeds %d", MaxCodeSize)
		}
		stack = append(stack, stackItem{top.node.Right, top.code.Append(1)})
		stack = append(stack, stackItem{top.node.Left, top.code.Append(0)})
	}
	return t, nil
}

// BuildTable counts the frequencies in text and derives a Table from the
// resulting Huffman tree.
func BuildTable(text string) (*Table, error) {
	freqs := CountFrequencies(text)
	return DeriveTable(BuildTree(&freqs))
}

// LoadTable constructs a Table from an existing Symbol-to-Code mapping, such
// as one previously produced by DeriveTable.  The codes must be non-empty,
// distinct, and prefix-free.
func LoadTable(codes map[Symbol]Code) (*Table, error) {
	t := newTable(len(codes))
	for symbol, hc := range codes {
		if hc.Size == 0 {
			return nil, invalidTablef("empty code for symbol %d", symbol)
		}
		if hc.Size > MaxCodeSize {
			return nil, invalidTablef("code for symbol %d has %d bits, max %d", symbol, hc.Size, MaxCodeSize)
		}
		if hc.Size < MaxCodeSize && hc.Bits>>hc.Size != 0 {
			return nil, invalidTablef("code for symbol %d has stray bits above bit %d", symbol, hc.Size)
		}
		if other, found := t.symbols[hc]; found {
			return nil, invalidTablef("symbols %d and %d share code %s", other, symbol, hc)
		}
		t.insert(symbol, hc)
	}
	if a, b, found := t.findPrefix(); found {
		return nil, invalidTablef("code %s is a prefix of code %s", a, b)
	}
	return t, nil
}

func newTable(capacity int) *Table {
	return &Table{
		codes:   make(map[Symbol]Code, capacity),
		symbols: make(map[Code]Symbol, capacity),
	}
}

func (t *Table) insert(symbol Symbol, hc Code) {
	if len(t.codes) == 0 {
		t.minSize, t.maxSize = hc.Size, hc.Size
	} else if t.minSize > hc.Size {
		t.minSize = hc.Size
	} else if t.maxSize < hc.Size {
		t.maxSize = hc.Size
	}
	t.codes[symbol] = hc
	t.symbols[hc] = symbol
}

// Encode returns the Code for a Symbol.
func (t *Table) Encode(symbol Symbol) (Code, bool) {
	hc, found := t.codes[symbol]
	return hc, found
}

// Decode returns the Symbol for a Code.
func (t *Table) Decode(hc Code) (Symbol, bool) {
	symbol, found := t.symbols[hc]
	return symbol, found
}

// Len returns the number of Symbols in the Table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.codes)
}

// MinSize is the bit length of the shortest code.
func (t *Table) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *Table) MaxSize() byte {
	return t.maxSize
}

// Symbols returns the Symbols in the Table in ascending order.
func (t *Table) Symbols() []Symbol {
	out := make([]Symbol, 0, len(t.codes))
	for symbol := range t.codes {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Codes returns a copy of the Symbol-to-Code mapping.
func (t *Table) Codes() map[Symbol]Code {
	out := make(map[Symbol]Code, len(t.codes))
	for symbol, hc := range t.codes {
		out[symbol] = hc
	}
	return out
}

// EncodedSize returns the number of payload bits needed to encode text with
// the given frequencies.
func (t *Table) EncodedSize(freqs *Frequencies) (uint64, error) {
	var total uint64
	for symbol, count := range freqs {
		if count == 0 {
			continue
		}
		hc, found := t.codes[Symbol(symbol)]
		if !found {
			return 0, errors.Wrapf(ErrUnknownSymbol, "symbol %d", symbol)
		}
		total = addSaturating(total, count*uint64(hc.Size))
	}
	return total, nil
}

// IsPrefixFree returns true iff no code in the Table is a prefix of another.
func (t *Table) IsPrefixFree() bool {
	_, _, found := t.findPrefix()
	return !found
}

// findPrefix returns a pair of codes (a, b) such that a is a prefix of b.
// After sorting by bit string, a prefix always sorts immediately before some
// code it prefixes, so only neighbors need to be compared.
func (t *Table) findPrefix() (Code, Code, bool) {
	keys := make(byBitString, 0, len(t.symbols))
	for hc := range t.symbols {
		keys = append(keys, hc)
	}
	keys.Sort()
	for i := 1; i < len(keys); i++ {
		if keys[i].HasPrefix(keys[i-1]) {
			return keys[i-1], keys[i], true
		}
	}
	return Code{}, Code{}, false
}

// Dump writes a programmer-readable debugging dump of the Table's current
// state to the given writer.
func (t *Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", byte(symbol), t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byBitString {{{

type byBitString []Code

func (list byBitString) Sort() {
	sort.Sort(list)
}

func (list byBitString) Len() int {
	return len(list)
}

func (list byBitString) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

// Less orders codes lexicographically by their bits, with a code ordered
// before any longer code it prefixes.
func (list byBitString) Less(i, j int) bool {
	a, b := list[i], list[j]
	size := a.Size
	if b.Size < size {
		size = b.Size
	}
	ab := a.Bits >> (a.Size - size)
	bb := b.Bits >> (b.Size - size)
	if ab != bb {
		return ab < bb
	}
	return a.Size < b.Size
}

var _ sort.Interface = byBitString(nil)

// }}}
