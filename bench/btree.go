package bench

import (
	gbt "github.com/google/btree"
)

// DefaultDegree is the degree of the reference B-tree.
const DefaultDegree = 32

// bTree adapts a google/btree B-tree to the Inserter interface. It never rotates.
type bTree struct {
	tree *gbt.BTreeG[int]
}

func newBTree(degree int) *bTree {
	return &bTree{tree: gbt.NewG[int](degree, func(a, b int) bool { return a < b })}
}

func (t *bTree) Insert(key int) {
	t.tree.ReplaceOrInsert(key)
}

func (t *bTree) Rotations() int { return 0 }

// Len returns the number of keys stored in the tree.
func (t *bTree) Len() int {
	return t.tree.Len()
}
