package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// Node is a node in a Huffman tree.  A leaf holds a Symbol and its
// frequency.  An internal node holds exactly two children and the sum of
// their frequencies.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

// NewLeaf constructs a leaf node.
func NewLeaf(symbol Symbol, freq uint64) *Node {
	return &Node{Symbol: symbol, Freq: freq}
}

// NewInternal constructs an internal node that owns left and right.
func NewInternal(left, right *Node) *Node {
	return &Node{
		Freq:  addSaturating(left.Freq, right.Freq),
		Left:  left,
		Right: right,
	}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree constructs a Huffman tree for the given frequencies and returns
// its root.  Leaves are created in Symbol order.  The two lowest-frequency
// nodes are merged repeatedly, the first one popped becoming the left child,
// until only the root remains.
//
// If exactly one Symbol has a non-zero frequency, the root is that leaf.  If
// none do, the root is nil.
//
func BuildTree(freqs *Frequencies) *Node {
	q := NewPriorityQueue(freqs.Distinct())
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			q.Push(NewLeaf(Symbol(symbol), freq))
		}
	}
	return MergeAll(q)
}

// MergeAll drains the queue by merging its two lowest-frequency nodes until
// one node is left, and returns that node.  Returns nil for an empty queue.
func MergeAll(q *PriorityQueue) *Node {
	if q.Len() == 0 {
		return nil
	}
	for q.Len() > 1 {
		a := q.Pop()
		b := q.Pop()
		q.Push(NewInternal(a, b))
	}
	return q.Pop()
}

// DumpTree writes a programmer-readable, indented listing of the tree rooted
// at root to the given writer.
func DumpTree(w io.Writer, root *Node) (int64, error) {
	var buf bytes.Buffer
	type stackItem struct {
		node  *Node
		depth int
	}
	var stack []stackItem
	if root != nil {
		stack = append(stack, stackItem{root, 0})
	}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < top.depth; i++ {
			buf.WriteByte('\t')
		}
		if top.node.IsLeaf() {
			fmt.Fprintf(&buf, "Leaf(%q, %d)\n", byte(top.node.Symbol), top.node.Freq)
			continue
		}
		fmt.Fprintf(&buf, "Node(%d)\n", top.node.Freq)
		stack = append(stack, stackItem{top.node.Right, top.depth + 1})
		stack = append(stack, stackItem{top.node.Left, top.depth + 1})
	}
	return buf.WriteTo(w)
}
