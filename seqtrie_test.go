package seqtrie

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/khalid-nowaf/seqtrie/pkg/trie"
	"github.com/khalid-nowaf/seqtrie/pkg/trietree"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		s        string
		sep      string
		expected []string
	}{
		{"", "", []string{}},
		{"", ".", []string{}},
		{"abc", "", []string{"a", "b", "c"}},
		{"api.foo.bar", ".", []string{"api", "foo", "bar"}},
		{"héllo", "", []string{"h", "é", "l", "l", "o"}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Split(tc.s, tc.sep), "split %q on %q", tc.s, tc.sep)
	}
}

func TestFromStrings(t *testing.T) {
	tree := FromStrings([]string{"abc", "ace", "bee", "abc"})
	assert.Equal(t, 3, tree.Count())
	assert.True(t, tree.Query(Runes("ace")))
	assert.Equal(t, trie.PrefixMatch, tree.QueryPrefix(Runes("a")))
	assert.Equal(t, trie.NoMatch, tree.QueryPrefix(Runes("c")))
}

// TestConstructorOptions verifies both constructors hand their options to the tree.
func TestConstructorOptions(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	words := FromStrings([]string{"abc"}, trietree.WithLogger(log))
	words.Clear()
	assert.Contains(t, buf.String(), "clearing tree")

	buf.Reset()
	lines := FromWords([]string{"a.b"}, ".", trietree.WithLogger(log))
	lines.ShrinkToFit()
	assert.Contains(t, buf.String(), "shrinking tree storage")
}

func TestFromWords(t *testing.T) {
	lines := []string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"}
	tree := FromWords(lines, ".")
	assert.Equal(t, len(lines), tree.Count())

	it, ok := tree.QueryIter([]string{"api", "foo"})
	assert.True(t, ok)
	var got []string
	for seq, ok := it.Next(); ok; seq, ok = it.Next() {
		got = append(got, strings.Join(seq, "."))
	}
	slices.Sort(got)
	assert.Equal(t, []string{"", "bar", "baz"}, got)
}

func ExampleFromStrings() {
	tree := FromStrings([]string{"abc"})
	fmt.Println(tree.Count(), tree.Query(Runes("abc")), tree.QueryPrefix(Runes("ab")))
	fmt.Printf("%q\n", tree)
	// Output:
	// 1 true prefix match
	// TrieTree{count: 1, root: (/):{('a'):{('b'):{['c']:{}}}}}
}
