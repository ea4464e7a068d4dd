package trie

// Match is the outcome of a prefix query.
type Match int

const (
	NoMatch     Match = iota // some element of the query has no matching child
	PrefixMatch              // the query reaches a node that is not terminal
	ExactMatch               // the query reaches a terminal node
)

func (m Match) String() string {
	switch m {
	case NoMatch:
		return "no match"
	case PrefixMatch:
		return "prefix match"
	case ExactMatch:
		return "exact match"
	}
	return "unknown match"
}

// Found reports whether the query reached a node at all.
func (m Match) Found() bool {
	return m != NoMatch
}

// Terminal returns whether the reached node is terminal, and whether a node
// was reached at all.
func (m Match) Terminal() (terminal bool, found bool) {
	return m == ExactMatch, m.Found()
}
