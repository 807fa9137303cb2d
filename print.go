package negentropy

import (
	"fmt"
	"io"
	"strings"
)

// String returns a hierarchical diagram of t, mostly useful when
// debugging a reconciliation round by eye. Just a wrapper for Fprint.
func (t Tree[I, M]) String() string {
	w := new(strings.Builder)
	_ = t.Fprint(w)
	return w.String()
}

// Fprint writes an indented, in-order listing of t's items to w, one per
// line, each indented by its depth in the tree. For Build(3, 7, 9, 12):
//
//	  3
//	7
//	  9
//	  12
func (t Tree[I, M]) Fprint(w io.Writer) error {
	return fprintNode(w, t.root, 0)
}

// fprintNode walks n in order -- everything smaller than items[i], then
// items[i], for each i, then everything larger -- indenting two spaces
// per level of recursion.
func fprintNode[I Item[I], M Monoid[I, M]](w io.Writer, n *node[I, M], depth int) error {
	if n == nil {
		return nil
	}

	pad := strings.Repeat("  ", depth)
	for i, item := range n.items {
		if err := fprintNode(w, n.child(i), depth+1); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%v\n", pad, item); err != nil {
			return err
		}
	}
	return fprintNode(w, n.lastChild, depth+1)
}
