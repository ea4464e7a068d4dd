// ## Overview
// Package trie implements a generic trie (prefix tree) of sequences.
// A Node owns its children keyed by element value and carries a terminal flag
// marking the end of an inserted sequence. Sequences can be inserted, queried
// exactly or by prefix, removed (dead branches are pruned on the way back up),
// compared structurally and enumerated lazily with Iter.
//
// ## Example usage:
//
//	root := trie.NewNode[rune]()
//	root.Insert([]rune("abc"))
//	root.Insert([]rune("ace"))
//
//	fmt.Println(root.Query([]rune("abc")))      // Output: true
//	fmt.Println(root.QueryPrefix([]rune("a")))  // Output: prefix match
//
//	// pull the remainders under "a" one at a time
//	it, _ := root.QueryIter([]rune("a"))
//	for seq, ok := it.Next(); ok; seq, ok = it.Next() {
//		fmt.Println(string(seq))
//	}
//
//	root.Remove([]rune("abc"))
//	fmt.Printf("%q\n", root) // Output: (/):{('a'):{('c'):{['e']:{}}}}
//
// A Node is not safe for concurrent use, and mutating a subtree while an Iter
// over it is still in use gives unspecified results.
package trie
