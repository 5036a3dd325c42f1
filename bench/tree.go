// Package bench measures insertion into the tree implementations of this
// module and records the results.
package bench

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/treebench/store/avl"
	"github.com/treebench/store/bst"
	"github.com/treebench/store/llrb"
	"github.com/treebench/store/treap"
)

// An Inserter is a tree under measurement.
type Inserter interface {
	// Insert inserts key. Inserting a present key is a no-op.
	Insert(key int)
	// Rotations returns the number of rotations performed so far.
	Rotations() int
}

var (
	_ Inserter = (*bst.Tree)(nil)
	_ Inserter = (*avl.Tree)(nil)
	_ Inserter = (*llrb.Tree)(nil)
	_ Inserter = (*treap.Tree)(nil)
	_ Inserter = (*bTree)(nil)
)

// A Kind names a tree implementation.
type Kind string

const (
	BST   Kind = "BST"   // Unbalanced binary search tree.
	AVL   Kind = "AVL"   // AVL tree.
	VP    Kind = "VP"    // Left-leaning red-black tree.
	Treap Kind = "TREAP" // Randomized treap.
	BTree Kind = "BTREE" // B-tree reference, not rotation based.
)

// Kinds lists the tree kinds measured by default, in run order.
var Kinds = []Kind{BST, AVL, VP, Treap}

// ErrUnknownKind is returned when a tree kind is not recognised.
var ErrUnknownKind = errors.New("bench: unknown tree kind")

// ParseKind returns the Kind named by s, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(s)); k {
	case BST, AVL, VP, Treap, BTree:
		return k, nil
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}

// NewTree returns an empty tree of the given kind. Treaps draw their
// priorities from src.
func NewTree(k Kind, src rand.Source) (Inserter, error) {
	switch k {
	case BST:
		return &bst.Tree{}, nil
	case AVL:
		return &avl.Tree{}, nil
	case VP:
		return &llrb.Tree{}, nil
	case Treap:
		return treap.New(src), nil
	case BTree:
		return newBTree(DefaultDegree), nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q", string(k))
}

// Measure inserts every key into t in order and returns the elapsed wall
// clock time.
func Measure(t Inserter, keys []int) time.Duration {
	start := time.Now()
	for _, k := range keys {
		t.Insert(k)
	}
	return time.Since(start)
}
