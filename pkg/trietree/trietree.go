package trietree

import (
	"fmt"
	"iter"
	"strings"

	"github.com/khalid-nowaf/seqtrie/pkg/trie"
	"github.com/sirupsen/logrus"
)

// Tree is a trie of sequences that keeps track of how many sequences it
// stores. Every mutation goes through the tree so the count stays equal to
// the number of terminal nodes reachable from the root.
//
// The zero value is an empty tree ready to use.
type Tree[T comparable] struct {
	root  *trie.Node[T]
	count int
	log   logrus.FieldLogger
}

// initializes a new empty tree.
func New[T comparable](opts ...Option) *Tree[T] {
	o := applyOptions(opts)
	return &Tree[T]{
		root: trie.NewNode[T](),
		log:  o.log,
	}
}

// FromSeqs builds a tree holding every sequence of seqs. Duplicates are
// stored once.
func FromSeqs[T comparable](seqs [][]T, opts ...Option) *Tree[T] {
	t := New[T](opts...)
	t.Extend(seqs...)
	return t
}

// FromNode wraps an existing root. The count is derived by walking it once,
// so the tree takes ownership of root and callers must not mutate it anymore.
func FromNode[T comparable](root *trie.Node[T], opts ...Option) *Tree[T] {
	t := New[T](opts...)
	if root == nil {
		return t
	}
	t.root = root
	it := root.Iter()
	for _, ok := it.NextRef(); ok; _, ok = it.NextRef() {
		t.count++
	}
	return t
}

// returns the root, creating it for a zero value tree.
func (t *Tree[T]) node() *trie.Node[T] {
	if t.root == nil {
		t.root = trie.NewNode[T]()
	}
	return t.root
}

func (t *Tree[T]) logger() logrus.FieldLogger {
	if t.log == nil {
		t.log = defaultOptions().log
	}
	return t.log
}

// Count returns the number of stored sequences.
func (t *Tree[T]) Count() int {
	return t.count
}

func (t *Tree[T]) IsEmpty() bool {
	return t.count == 0
}

// Insert stores seq and reports whether it was new.
func (t *Tree[T]) Insert(seq []T) bool {
	if !t.node().Insert(seq) {
		return false
	}
	t.count++
	return true
}

// Extend inserts every sequence and returns how many of them were new.
func (t *Tree[T]) Extend(seqs ...[]T) int {
	added := 0
	for _, seq := range seqs {
		if t.Insert(seq) {
			added++
		}
	}
	return added
}

// Remove deletes seq, pruning the branches it leaves empty, and reports
// whether it was stored.
func (t *Tree[T]) Remove(seq []T) bool {
	if !t.node().Remove(seq) {
		return false
	}
	if t.count == 0 {
		t.logger().WithField("length", len(seq)).Error("removed a sequence from a tree counting none")
		panic("[BUG] Remove: sequence count underflow")
	}
	t.count--
	return true
}

// Query reports whether seq is stored.
//
//	| query | data | result |
//	| ----- | ---- | ------ |
//	| abcd  | abcd | true   |
//	| abc   | abcd | false  |
//	| bcd   | abcd | false  |
//	| abcde | abcd | false  |
func (t *Tree[T]) Query(seq []T) bool {
	return t.node().Query(seq)
}

// QueryPrefix tells a stored sequence (trie.ExactMatch) from a prefix of
// stored sequences (trie.PrefixMatch) and from anything else (trie.NoMatch).
func (t *Tree[T]) QueryPrefix(seq []T) trie.Match {
	return t.node().QueryPrefix(seq)
}

// QueryIter returns an iterator over the remainders of the stored sequences
// starting with prefix, or false if no stored sequence does.
func (t *Tree[T]) QueryIter(prefix []T) (*trie.Iter[T], bool) {
	return t.node().QueryIter(prefix)
}

// Iter returns an iterator over all stored sequences.
func (t *Tree[T]) Iter() *trie.Iter[T] {
	return t.node().Iter()
}

// All returns all stored sequences as a range-over-func iterator.
func (t *Tree[T]) All() iter.Seq[[]T] {
	return t.node().All()
}

// Clear removes every sequence.
func (t *Tree[T]) Clear() {
	t.logger().WithField("count", t.count).Debug("clearing tree")
	t.root = trie.NewNode[T]()
	t.count = 0
}

// Detach hands the root over to the caller and leaves the tree empty.
func (t *Tree[T]) Detach() *trie.Node[T] {
	root := t.node()
	t.logger().WithField("count", t.count).Debug("detaching root")
	t.root = trie.NewNode[T]()
	t.count = 0
	return root
}

// Equal reports whether both trees store the same sequences.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.count == other.count && t.node().Equal(other.node())
}

// Clone returns a deep copy sharing the logger.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:  t.node().Clone(),
		count: t.count,
		log:   t.log,
	}
}

// ShrinkToFit releases the map memory left behind by removals.
func (t *Tree[T]) ShrinkToFit() {
	t.logger().WithField("count", t.count).Debug("shrinking tree storage")
	t.node().Shrink()
}

// NodeCount returns the number of nodes, the root included.
func (t *Tree[T]) NodeCount() int {
	return t.node().NodeCount()
}

// String renders the tree on one line:
//
//	TrieTree{count: 1, root: (/):{(a):{[b]:{}}}}
func (t *Tree[T]) String() string {
	return fmt.Sprintf("%v", t)
}

// Format implements fmt.Formatter, with the verb and the + flag handled as
// by trie.Node.
func (t *Tree[T]) Format(f fmt.State, verb rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "TrieTree {\n%scount: %d,\n%sroot: ", indent, t.count, indent)
		t.node().Render(f, verb, true, 1)
		fmt.Fprint(f, ",\n}")
		return
	}
	fmt.Fprintf(f, "TrieTree{count: %d, root: ", t.count)
	t.node().Render(f, verb, false, 0)
	fmt.Fprint(f, "}")
}

var indent = strings.Repeat(" ", 4)
