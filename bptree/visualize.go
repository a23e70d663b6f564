package bptree

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Visualizer renders a Tree for debug output, the Go analogue of
// ytree.c's ytree_print_tree/ytree_print_leaves. It is deliberately
// separate from Tree itself: nothing in the mutation or search paths
// depends on it.
type Visualizer struct {
	Tree *Tree

	// Verbose mirrors ytree.c's verbose_output: when set, PrintTree prints
	// each node's identity alongside its keys. PrintLeaves ignores it.
	Verbose bool
}

var (
	internalColor = color.New(color.FgCyan)
	leafColor     = color.New(color.FgGreen)
	linkColor     = color.New(color.FgYellow)
)

// PrintTree renders the tree in level order, one rank per line,
// internal-node separator keys in cyan and leaf entries in green — the
// analogue of ytree_print_tree.
func (v *Visualizer) PrintTree() string {
	root := v.Tree.root
	if root == nil {
		return "Empty tree"
	}

	var b strings.Builder
	queue := []*node{root}
	rank := -1

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if n.parent != nil && n == n.parent.children[0] {
			newRank := pathToRoot(root, n)
			if newRank != rank {
				rank = newRank
				b.WriteByte('\n')
			}
		} else if rank == -1 {
			rank = 0
		}

		if v.Verbose {
			fmt.Fprintf(&b, "(%p)", n)
		}

		printKeys := internalColor
		if n.isLeaf {
			printKeys = leafColor
		}
		for i := 0; i < n.numKeys; i++ {
			printKeys.Fprintf(&b, "%d ", n.keys[i])
		}

		if !n.isLeaf {
			for i := 0; i <= n.numKeys; i++ {
				queue = append(queue, n.children[i])
			}
		}

		linkColor.Fprint(&b, "| ")
	}
	b.WriteByte('\n')
	return b.String()
}

func pathToRoot(root, child *node) int {
	length := 0
	c := child
	for c != root {
		c = c.parent
		length++
	}
	return length
}

// PrintLeaves renders the bottom row of the tree — the keys of every
// leaf, in ascending order, separated by the forward-leaf chain divider —
// the analogue of ytree_print_leaves.
func (v *Visualizer) PrintLeaves() string {
	root := v.Tree.root
	if root == nil {
		return "Empty tree."
	}

	c := root
	for !c.isLeaf {
		c = c.children[0]
	}

	var b strings.Builder
	for {
		for i := 0; i < c.numKeys; i++ {
			leafColor.Fprintf(&b, "%d ", c.keys[i])
		}
		if c.next == nil {
			break
		}
		linkColor.Fprint(&b, " | ")
		c = c.next
	}
	b.WriteByte('\n')
	return b.String()
}
