package trie

import (
	"fmt"
	"io"
	"strings"
)

const (
	indent        = "    "
	rootLabel     = "/"
	openTerminal  = "["
	closeTerminal = "]"
	openInner     = "("
	closeInner    = ")"
)

// String renders the subtree on one line, keys formatted with %v:
//
//	(/):{(a):{(b):{[c]:{}}}}
func (n *Node[T]) String() string {
	var sb strings.Builder
	n.Render(&sb, 'v', false, 0)
	return sb.String()
}

// Format implements fmt.Formatter. The verb is applied to every key, so %q
// prints rune keys as 'a'. The + flag selects the indented multi line form.
func (n *Node[T]) Format(f fmt.State, verb rune) {
	n.Render(f, verb, f.Flag('+'), 0)
}

// Render writes the subtree to w. Terminal nodes are labeled [key], the
// others (key), and the root has no key and is labeled with a slash.
// level is the indentation the first line is assumed to be at, which lets
// callers embed the pretty form in their own output.
func (n *Node[T]) Render(w io.Writer, verb rune, pretty bool, level int) {
	r := &renderer[T]{w: w, keyFormat: "%" + string(verb), pretty: pretty}
	r.node(n, rootLabel, level)
}

type renderer[T comparable] struct {
	w         io.Writer
	keyFormat string
	pretty    bool
}

func (r *renderer[T]) node(n *Node[T], label string, level int) {
	if n.terminal {
		r.write(openTerminal, label, closeTerminal)
	} else {
		r.write(openInner, label, closeInner)
	}

	cr, colon := "", ":"
	if r.pretty {
		cr, colon = "\n", ": "
	}

	r.write(colon, "{")
	if len(n.children) == 0 {
		r.write("}")
		return
	}
	r.write(cr)

	i := 0
	for key, child := range n.children {
		if r.pretty {
			r.write(strings.Repeat(indent, level+1))
		}
		r.node(child, fmt.Sprintf(r.keyFormat, key), level+1)
		i++
		if i < len(n.children) {
			r.write(",")
		}
		r.write(cr)
	}
	if r.pretty {
		r.write(strings.Repeat(indent, level))
	}
	r.write("}")
}

func (r *renderer[T]) write(parts ...string) {
	for _, s := range parts {
		_, _ = io.WriteString(r.w, s)
	}
}
