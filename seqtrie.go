// Package seqtrie stores sequences of comparable values in a prefix tree.
//
// The engine lives in pkg/trie and the counting wrapper most callers want in
// pkg/trietree. This package adds constructors for the common case of text:
// words stored one rune per element, or lines split into fields.
package seqtrie

import (
	"strings"

	"github.com/khalid-nowaf/seqtrie/pkg/trietree"
)

// Runes splits s into one element per rune.
func Runes(s string) []rune {
	return []rune(s)
}

// Split splits s into fields on sep. An empty sep gives one element per
// character, and an empty s gives the empty sequence.
func Split(s, sep string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, sep)
}

// FromStrings builds a tree of words, one rune per element.
func FromStrings(words []string, opts ...trietree.Option) *trietree.Tree[rune] {
	tree := trietree.New[rune](opts...)
	for _, word := range words {
		tree.Insert(Runes(word))
	}
	return tree
}

// FromWords builds a tree of lines split on sep.
func FromWords(lines []string, sep string, opts ...trietree.Option) *trietree.Tree[string] {
	tree := trietree.New[string](opts...)
	for _, line := range lines {
		tree.Insert(Split(line, sep))
	}
	return tree
}
