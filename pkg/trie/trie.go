package trie

// Node is a generic type representing a node in a trie.
// The sequence of keys leading from the root to a node is the sequence the
// node stands for; terminal marks that sequence as stored.
type Node[T comparable] struct {
	terminal bool           // The sequence ending here was inserted and not removed yet
	children map[T]*Node[T] // Owned child nodes, nil until the first child is added
}

// NewNode creates an empty, non terminal node.
func NewNode[T comparable]() *Node[T] {
	return &Node[T]{}
}

// IsTerminal reports whether the sequence ending at this node is stored.
func (n *Node[T]) IsTerminal() bool {
	return n.terminal
}

// checks if the node is a leaf (has no children).
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// Removable reports whether the node is dead weight: not terminal and
// without children. Such a node never survives a Remove.
func (n *Node[T]) Removable() bool {
	return !n.terminal && n.IsLeaf()
}

// Len returns the number of direct children.
func (n *Node[T]) Len() int {
	return len(n.children)
}

// Child returns the child stored under key, or nil.
func (n *Node[T]) Child(key T) *Node[T] {
	return n.children[key]
}

// returns the child under key, adding an empty one if there is none yet.
func (n *Node[T]) childOrAdd(key T) *Node[T] {
	if child, ok := n.children[key]; ok {
		return child
	}
	if n.children == nil {
		n.children = make(map[T]*Node[T], 1)
	}
	child := NewNode[T]()
	n.children[key] = child
	return child
}

// applies a function to each child of the node, in no particular order.
func (n *Node[T]) ForEachChild(f func(key T, child *Node[T])) {
	for key, child := range n.children {
		f(key, child)
	}
}

// Insert adds seq below the node and reports whether it was not stored yet.
// Nodes created on the way are kept even when the insertion fails, since a
// failing insert only means the last node was already terminal.
// The empty sequence marks the receiver itself.
func (n *Node[T]) Insert(seq []T) bool {
	current := n
	for _, key := range seq {
		current = current.childOrAdd(key)
	}
	if current.terminal {
		return false
	}
	current.terminal = true
	return true
}

// Lookup returns the node reached by consuming the whole seq, or nil if some
// element has no matching child.
func (n *Node[T]) Lookup(seq []T) *Node[T] {
	current := n
	for _, key := range seq {
		current = current.children[key]
		if current == nil {
			return nil
		}
	}
	return current
}

// QueryPrefix tells apart a stored sequence, a sequence that only reaches an
// inner node, and a sequence that leaves the trie.
//
//	| query | data |    result    |
//	| ----- | ---- | ------------ |
//	|       | abcd | PrefixMatch  |
//	| abc   | abcd | PrefixMatch  |
//	| abcd  | abcd | ExactMatch   |
//	| bcd   | abcd | NoMatch      |
//	| abcde | abcd | NoMatch      |
func (n *Node[T]) QueryPrefix(seq []T) Match {
	node := n.Lookup(seq)
	switch {
	case node == nil:
		return NoMatch
	case node.terminal:
		return ExactMatch
	default:
		return PrefixMatch
	}
}

// Query reports whether seq is stored.
func (n *Node[T]) Query(seq []T) bool {
	return n.QueryPrefix(seq) == ExactMatch
}

// QueryIter returns an iterator over the remainders of every stored sequence
// starting with prefix. It returns false if prefix cannot be matched.
func (n *Node[T]) QueryIter(prefix []T) (*Iter[T], bool) {
	node := n.Lookup(prefix)
	if node == nil {
		return nil, false
	}
	return node.Iter(), true
}

// Remove unmarks seq and reports whether it was stored. On the way back up,
// every child of the visited path that became dead weight is detached, so
// no non terminal leaf is left behind, whether the removal succeeded or not.
func (n *Node[T]) Remove(seq []T) bool {
	return n.remove(seq, true)
}

// removeUnpruned is Remove without the cleanup of dead branches.
// Dead chains left by it stay reachable but never match again, which breaks
// the invariant every other operation relies on. Keep it internal.
func (n *Node[T]) removeUnpruned(seq []T) bool {
	return n.remove(seq, false)
}

// is a helper for Remove, the recursion depth is bounded by len(seq).
func (n *Node[T]) remove(seq []T, prune bool) bool {
	if len(seq) == 0 {
		if !n.terminal {
			return false
		}
		n.terminal = false
		return true
	}

	key := seq[0]
	child, ok := n.children[key]
	if !ok {
		return false
	}

	removed := child.remove(seq[1:], prune)
	if prune && child.Removable() {
		delete(n.children, key)
	}
	return removed
}

// Equal reports whether both subtrees hold the same terminal flags under the
// same keys. Child order plays no role.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n == other {
		return true
	}
	if n.terminal != other.terminal || len(n.children) != len(other.children) {
		return false
	}
	for key, child := range n.children {
		otherChild, ok := other.children[key]
		if !ok || !child.Equal(otherChild) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the subtree.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		return nil
	}
	clone := &Node[T]{terminal: n.terminal}
	if len(n.children) > 0 {
		clone.children = make(map[T]*Node[T], len(n.children))
		for key, child := range n.children {
			clone.children[key] = child.Clone()
		}
	}
	return clone
}

// WalkBreadthFirst applies f to every node of the subtree, the receiver
// first, then level by level.
func (n *Node[T]) WalkBreadthFirst(f func(node *Node[T])) {
	queue := []*Node[T]{n}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		f(current)
		for _, child := range current.children {
			queue = append(queue, child)
		}
	}
}

// Shrink reallocates every child map of the subtree at its current size.
// Maps never give memory back on delete, so this is worth calling after many
// removals. The content is left untouched.
func (n *Node[T]) Shrink() {
	n.WalkBreadthFirst(func(node *Node[T]) {
		if len(node.children) == 0 {
			node.children = nil
			return
		}
		children := make(map[T]*Node[T], len(node.children))
		for key, child := range node.children {
			children[key] = child
		}
		node.children = children
	})
}

// NodeCount returns the number of nodes in the subtree, the receiver included.
func (n *Node[T]) NodeCount() int {
	count := 0
	n.WalkBreadthFirst(func(*Node[T]) {
		count++
	})
	return count
}
