package bptree

// node is the uniform node shape used as both internal node and leaf,
// distinguished by isLeaf. This generalizes ytree.c's single void**
// pointers array (which overloads child-pointer / record-pointer /
// next-leaf-link into one slot) into three typed fields, per the
// "tagged value for the pointer slot" redesign note: a leaf can only ever
// hold records and a forward link, an internal node can only ever hold
// children, so the type system rules out the whole "is this slot a child
// or a record?" class of bug instead of relying on is_leaf at every call
// site.
type node struct {
	isLeaf   bool
	numKeys  int
	keys     []int32   // len == order-1, logical length == numKeys
	records  []*Record // leaf only, len == order-1
	children []*node   // internal only, len == order
	next     *node      // leaf only: forward link to the next leaf in key order
	parent   *node      // nil for root
}

func newLeaf(order int) *node {
	return &node{
		isLeaf:  true,
		keys:    make([]int32, order-1),
		records: make([]*Record, order-1),
	}
}

func newInternal(order int) *node {
	return &node{
		isLeaf:   false,
		keys:     make([]int32, order-1),
		children: make([]*node, order),
	}
}

// leftIndex returns the index of left within parent.children — the
// pointer-array analogue of ytree.c's get_left_index. Panics if left is
// not actually a child of parent, which would mean the parent/child
// back-links (I4) have already diverged.
func (parent *node) leftIndex(left *node) int {
	for i := 0; i <= parent.numKeys; i++ {
		if parent.children[i] == left {
			return i
		}
	}
	panicStructural("child not found in parent's pointer array")
	return -1
}
