package bptree

import (
	"fmt"
	"io"
)

// findLeaf descends from root to the leaf that would contain key, scanning
// each internal node's keys left to right: i advances while key >=
// keys[i], then descent continues into children[i]. Equal keys therefore
// always live in the right subtree of their separator, matching I5.
func findLeaf(root *node, key int32) *node {
	return findLeafTrace(root, key, nil)
}

// findLeafTrace is findLeaf with an optional descent trace: when trace is
// non-nil, it writes each internal node's keys in brackets followed by the
// child index chosen at that level, then the final leaf's keys, the same
// output ytree.c's find_leaf produces when called with its verbose flag
// set.
func findLeafTrace(root *node, key int32, trace io.Writer) *node {
	if root == nil {
		if trace != nil {
			fmt.Fprintln(trace, "Empty tree")
		}
		return nil
	}
	c := root
	for !c.isLeaf {
		if trace != nil {
			fmt.Fprint(trace, "[")
			for i := 0; i < c.numKeys-1; i++ {
				fmt.Fprintf(trace, "%d ", c.keys[i])
			}
			fmt.Fprintf(trace, "%d] ", c.keys[c.numKeys-1])
		}

		i := 0
		for i < c.numKeys {
			if key >= c.keys[i] {
				i++
			} else {
				break
			}
		}

		if trace != nil {
			fmt.Fprintf(trace, "%d ->\n", i)
		}
		c = c.children[i]
	}
	if trace != nil {
		fmt.Fprint(trace, "Leaf [")
		for i := 0; i < c.numKeys-1; i++ {
			fmt.Fprintf(trace, "%d ", c.keys[i])
		}
		fmt.Fprintf(trace, "%d] ->\n", c.keys[c.numKeys-1])
	}
	return c
}

// Find returns the record stored under key, or nil if no such key exists.
// Cost is O(order * height) thanks to the linear scans within each node;
// this favors cache locality for the small orders this package targets and
// keeps the code simple — a caller needing larger orders could switch the
// node scan to binary search without changing any semantics.
func (t *Tree) Find(key int32) *Record {
	return t.find(key, nil)
}

// FindVerbose behaves like Find but also writes the descent trace to w,
// matching ytree.c's find_leaf(root, key, verbose=true).
func (t *Tree) FindVerbose(key int32, w io.Writer) *Record {
	return t.find(key, w)
}

func (t *Tree) find(key int32, trace io.Writer) *Record {
	leaf := findLeafTrace(t.root, key, trace)
	if leaf == nil {
		return nil
	}
	for i := 0; i < leaf.numKeys; i++ {
		if leaf.keys[i] == key {
			return leaf.records[i]
		}
	}
	return nil
}

// Pair is one (key, record) result from Range.
type Pair struct {
	Key    int32
	Record *Record
}

// Range returns every (key, record) pair with lo <= key <= hi, in
// ascending key order. It returns an empty, non-nil slice if the tree is
// empty or no keys fall in range. Unlike ytree.c's find_range — which
// sizes its output buffer as (hi - lo + 1) bytes rather than elements, an
// undercount that also miscounts sparse ranges — this grows the result
// slice dynamically, so it is correct regardless of how sparse the key
// range is.
func (t *Tree) Range(lo, hi int32) ([]Pair, error) {
	if lo > hi {
		return nil, ErrInvalidRange
	}
	out := []Pair{}
	leaf := findLeaf(t.root, lo)
	if leaf == nil {
		return out, nil
	}
	i := 0
	for i < leaf.numKeys && leaf.keys[i] < lo {
		i++
	}
	for leaf != nil {
		for ; i < leaf.numKeys && leaf.keys[i] <= hi; i++ {
			out = append(out, Pair{Key: leaf.keys[i], Record: leaf.records[i]})
		}
		if i < leaf.numKeys {
			// Stopped because keys[i] > hi: no later leaf can contain a
			// smaller key, so we're done.
			break
		}
		leaf = leaf.next
		i = 0
	}
	return out, nil
}
