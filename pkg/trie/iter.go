package trie

import "iter"

type (
	// one level of the depth first walk
	iteratorLevel[T comparable] struct {
		pending  bool       // node is terminal and its path was not reported yet
		keys     []T        // snapshot of the node's child keys
		nodes    []*Node[T] // children matching keys
		childIdx int        // next child to visit
	}

	// Iter walks every stored sequence of a subtree depth first.
	// The walk state lives in an explicit stack, so it can be stopped after
	// any sequence and resumed later, whatever the depth of the trie.
	// Order among siblings is unspecified.
	Iter[T comparable] struct {
		depth []iteratorLevel[T]
		path  []T
	}
)

func newIteratorLevel[T comparable](n *Node[T]) iteratorLevel[T] {
	level := iteratorLevel[T]{pending: n.terminal}
	if len(n.children) > 0 {
		level.keys = make([]T, 0, len(n.children))
		level.nodes = make([]*Node[T], 0, len(n.children))
		for key, child := range n.children {
			level.keys = append(level.keys, key)
			level.nodes = append(level.nodes, child)
		}
	}
	return level
}

// Iter returns an iterator over every sequence stored below the node,
// relative to it. A terminal receiver yields the empty sequence.
func (n *Node[T]) Iter() *Iter[T] {
	return &Iter[T]{
		depth: []iteratorLevel[T]{newIteratorLevel(n)},
	}
}

// All returns the node's sequences as a range-over-func iterator.
// Every yielded slice is a fresh copy.
func (n *Node[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		it := n.Iter()
		for seq, ok := it.Next(); ok; seq, ok = it.Next() {
			if !yield(seq) {
				return
			}
		}
	}
}

// Done reports whether the iterator is exhausted. Once true it stays true.
func (it *Iter[T]) Done() bool {
	return len(it.depth) == 0
}

// Next returns a copy of the next sequence, or false when there is none left.
func (it *Iter[T]) Next() ([]T, bool) {
	path, ok := it.NextRef()
	if !ok {
		return nil, false
	}
	return append(make([]T, 0, len(path)), path...), true
}

// NextRef is Next without the copy: the returned slice is the iterator's own
// path buffer and is only valid until the next call.
func (it *Iter[T]) NextRef() ([]T, bool) {
	for len(it.depth) > 0 {
		cur := &it.depth[len(it.depth)-1]

		if cur.pending {
			cur.pending = false
			return it.path, true
		}

		if cur.childIdx < len(cur.nodes) {
			key, child := cur.keys[cur.childIdx], cur.nodes[cur.childIdx]
			cur.childIdx++
			it.path = append(it.path, key)
			it.depth = append(it.depth, newIteratorLevel(child))
			continue
		}

		// nothing left at this level
		it.depth[len(it.depth)-1] = iteratorLevel[T]{}
		it.depth = it.depth[:len(it.depth)-1]
		if len(it.path) > 0 {
			it.path = it.path[:len(it.path)-1]
		}
	}
	return nil, false
}
