package bptree

// Delete removes key and its record from the tree. A missing key is a
// no-op. If the removed record is Data-kind and a release hook is
// installed, the hook runs on the record's bytes after the tree has fully
// repaired itself.
func (t *Tree) Delete(key int32) {
	leaf := findLeaf(t.root, key)
	if leaf == nil {
		return
	}

	var rec *Record
	found := false
	for i := 0; i < leaf.numKeys; i++ {
		if leaf.keys[i] == key {
			rec = leaf.records[i]
			found = true
			break
		}
	}
	if !found {
		return
	}

	t.deleteEntryLeaf(leaf, key)
	t.releaseRecord(rec)
}

func (t *Tree) deleteEntryLeaf(leaf *node, key int32) {
	removeEntryFromLeaf(leaf, key)
	t.repairAfterRemoval(leaf)
}

func (t *Tree) deleteEntryInternal(n *node, key int32, child *node) {
	removeEntryFromInternal(n, key, child)
	t.repairAfterRemoval(n)
}

func removeEntryFromLeaf(leaf *node, key int32) {
	i := 0
	for leaf.keys[i] != key {
		i++
	}
	for ; i < leaf.numKeys-1; i++ {
		leaf.keys[i] = leaf.keys[i+1]
		leaf.records[i] = leaf.records[i+1]
	}
	leaf.numKeys--
	leaf.keys[leaf.numKeys] = 0
	leaf.records[leaf.numKeys] = nil
}

func removeEntryFromInternal(n *node, key int32, child *node) {
	i := 0
	for n.keys[i] != key {
		i++
	}
	for i++; i < n.numKeys; i++ {
		n.keys[i-1] = n.keys[i]
	}

	numPointers := n.numKeys + 1
	i = 0
	for n.children[i] != child {
		i++
	}
	for i++; i < numPointers; i++ {
		n.children[i-1] = n.children[i]
	}

	n.numKeys--
	n.keys[n.numKeys] = 0
	for i := n.numKeys + 1; i < len(n.children); i++ {
		n.children[i] = nil
	}
}

// repairAfterRemoval restores the structural invariants after a key has
// been removed from n. This is deleteEntry's shared tail in ytree.c: the
// removal itself happens in the two typed helpers above, but the
// minimum-fill check, neighbor selection, and coalesce-vs-redistribute
// decision are identical for leaves and internal nodes.
func (t *Tree) repairAfterRemoval(n *node) {
	if n == t.root {
		t.adjustRoot()
		return
	}

	var minKeys int
	if n.isLeaf {
		minKeys = cut(t.order - 1)
	} else {
		minKeys = cut(t.order) - 1
	}
	if n.numKeys >= minKeys {
		return
	}

	neighborIndex := getNeighborIndex(n)
	kPrimeIndex := neighborIndex
	if neighborIndex == -1 {
		kPrimeIndex = 0
	}
	kPrime := n.parent.keys[kPrimeIndex]

	var neighbor *node
	if neighborIndex == -1 {
		neighbor = n.parent.children[1]
	} else {
		neighbor = n.parent.children[neighborIndex]
	}

	var capacity int
	if n.isLeaf {
		capacity = t.order
	} else {
		capacity = t.order - 1
	}

	if neighbor.numKeys+n.numKeys < capacity {
		t.logf("bptree: coalescing node (numKeys=%d) with neighbor (numKeys=%d)", n.numKeys, neighbor.numKeys)
		t.coalesceNodes(n, neighbor, neighborIndex, kPrime)
		return
	}

	t.logf("bptree: redistributing between node (numKeys=%d) and neighbor (numKeys=%d)", n.numKeys, neighbor.numKeys)
	redistributeNodes(n, neighbor, neighborIndex, kPrimeIndex, kPrime)
}

// getNeighborIndex returns the index, in n's parent's pointer array, of
// n's nearest left sibling, or -1 if n is the leftmost child (in which
// case its neighbor is the immediate right sibling instead).
func getNeighborIndex(n *node) int {
	parent := n.parent
	for i := 0; i <= parent.numKeys; i++ {
		if parent.children[i] == n {
			return i - 1
		}
	}
	panicStructural("node not found among parent's children")
	return 0
}

func (t *Tree) adjustRoot() {
	root := t.root
	if root.numKeys > 0 {
		return
	}
	t.logf("bptree: collapsing empty root (isLeaf=%v)", root.isLeaf)
	if !root.isLeaf {
		newRoot := root.children[0]
		newRoot.parent = nil
		t.root = newRoot
		return
	}
	t.root = nil
}

// coalesceNodes merges n into neighbor — always keeping neighbor on the
// left, swapping the two first if n was actually the leftmost child — and
// then removes n from its (now ex-)parent by recursing into
// deleteEntryInternal with kPrime as the separator to drop.
func (t *Tree) coalesceNodes(n, neighbor *node, neighborIndex int, kPrime int32) {
	if neighborIndex == -1 {
		n, neighbor = neighbor, n
	}

	insertionIndex := neighbor.numKeys

	if !n.isLeaf {
		neighbor.keys[insertionIndex] = kPrime
		neighbor.numKeys++

		nEnd := n.numKeys
		i := insertionIndex + 1
		for j := 0; j < nEnd; i, j = i+1, j+1 {
			neighbor.keys[i] = n.keys[j]
			neighbor.children[i] = n.children[j]
			neighbor.numKeys++
			n.numKeys--
		}
		neighbor.children[i] = n.children[nEnd]

		for k := 0; k <= neighbor.numKeys; k++ {
			neighbor.children[k].parent = neighbor
		}
	} else {
		i := insertionIndex
		for j := 0; j < n.numKeys; i, j = i+1, j+1 {
			neighbor.keys[i] = n.keys[j]
			neighbor.records[i] = n.records[j]
			neighbor.numKeys++
		}
		neighbor.next = n.next
	}

	parent := n.parent
	t.deleteEntryInternal(parent, kPrime, n)
}

// redistributeNodes borrows a single entry from neighbor to bring n back
// up to its minimum without merging. neighborIndex != -1 means neighbor
// sits to n's left (borrow from neighbor's right end, onto n's left end);
// neighborIndex == -1 means n is the leftmost child and neighbor sits to
// its right (borrow from neighbor's left end, onto n's right end).
func redistributeNodes(n, neighbor *node, neighborIndex, kPrimeIndex int, kPrime int32) {
	if neighborIndex != -1 {
		if !n.isLeaf {
			n.children[n.numKeys+1] = n.children[n.numKeys]
		}
		for i := n.numKeys; i > 0; i-- {
			n.keys[i] = n.keys[i-1]
			if n.isLeaf {
				n.records[i] = n.records[i-1]
			} else {
				n.children[i] = n.children[i-1]
			}
		}

		if !n.isLeaf {
			n.children[0] = neighbor.children[neighbor.numKeys]
			n.children[0].parent = n
			neighbor.children[neighbor.numKeys] = nil
			n.keys[0] = kPrime
			n.parent.keys[kPrimeIndex] = neighbor.keys[neighbor.numKeys-1]
		} else {
			n.records[0] = neighbor.records[neighbor.numKeys-1]
			neighbor.records[neighbor.numKeys-1] = nil
			n.keys[0] = neighbor.keys[neighbor.numKeys-1]
			n.parent.keys[kPrimeIndex] = n.keys[0]
		}
	} else {
		if n.isLeaf {
			n.keys[n.numKeys] = neighbor.keys[0]
			n.records[n.numKeys] = neighbor.records[0]
			n.parent.keys[kPrimeIndex] = neighbor.keys[1]
		} else {
			n.keys[n.numKeys] = kPrime
			n.children[n.numKeys+1] = neighbor.children[0]
			n.children[n.numKeys+1].parent = n
			n.parent.keys[kPrimeIndex] = neighbor.keys[0]
		}

		i := 0
		for ; i < neighbor.numKeys-1; i++ {
			neighbor.keys[i] = neighbor.keys[i+1]
			if neighbor.isLeaf {
				neighbor.records[i] = neighbor.records[i+1]
			} else {
				neighbor.children[i] = neighbor.children[i+1]
			}
		}
		if !neighbor.isLeaf {
			neighbor.children[i] = neighbor.children[i+1]
		}
	}

	n.numKeys++
	neighbor.numKeys--
}
