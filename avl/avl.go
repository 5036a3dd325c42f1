// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avl implements an insertion-only AVL tree over integer keys that
// counts the rotations it performs.
//
// Every node keeps the height of the subtree it roots. After an insertion
// each node on the path back to the root has its height recomputed and is
// rebalanced with a single or double rotation when the heights of its
// subtrees differ by more than one.
package avl

// A Node represents a node in the AVL tree.
type Node struct {
	Key         int
	Left, Right *Node
	Height      int
}

// A Tree manages the root node of an AVL tree. Public methods are exposed through this type.
type Tree struct {
	Root  *Node // Root node of the tree.
	Count int   // Number of keys stored.

	rotations int
}

// Helper methods

// height returns the height of the subtree rooted at the Node. A nil node has height 0.
func (self *Node) height() int {
	if self == nil {
		return 0
	}
	return self.Height
}

// balance returns the balance factor of the Node.
func (self *Node) balance() int {
	return self.Left.height() - self.Right.height()
}

func (self *Node) fixHeight() {
	l, r := self.Left.height(), self.Right.height()
	if l > r {
		self.Height = l + 1
	} else {
		self.Height = r + 1
	}
}

// (a,c)b -rotL-> ((a,)b,)c
func (self *Tree) rotateLeft(h *Node) (root *Node) {
	// Assumes: h has a right child.
	self.rotations++
	root = h.Right
	h.Right = root.Left
	root.Left = h
	h.fixHeight()
	root.fixHeight()
	return
}

// (a,c)b -rotR-> (,(,c)b)a
func (self *Tree) rotateRight(h *Node) (root *Node) {
	// Assumes: h has a left child.
	self.rotations++
	root = h.Left
	h.Left = root.Right
	root.Right = h
	h.fixHeight()
	root.fixHeight()
	return
}

// rebalance restores the AVL balance condition at h, assuming that both
// subtrees of h are balanced and that their heights differ by at most two.
func (self *Tree) rebalance(h *Node) *Node {
	switch b := h.balance(); {
	case b > 1:
		if h.Left.balance() < 0 {
			h.Left = self.rotateLeft(h.Left)
		}
		return self.rotateRight(h)
	case b < -1:
		if h.Right.balance() > 0 {
			h.Right = self.rotateRight(h.Right)
		}
		return self.rotateLeft(h)
	}
	return h
}

// Len returns the number of keys stored in the Tree.
func (self *Tree) Len() int {
	return self.Count
}

// Height returns the height of the Tree. An empty Tree has height 0.
func (self *Tree) Height() int {
	return self.Root.height()
}

// Rotations returns the number of rotations performed by the Tree since
// its creation. A double rotation counts as two.
func (self *Tree) Rotations() int {
	return self.rotations
}

// Insert inserts key into the Tree. Inserting a key that is already present
// leaves the Tree unaltered.
func (self *Tree) Insert(key int) {
	var d int
	self.Root, d = self.insert(self.Root, key)
	self.Count += d
}

func (self *Tree) insert(h *Node, key int) (root *Node, d int) {
	if h == nil {
		return &Node{Key: key, Height: 1}, 1
	}

	switch {
	case key == h.Key:
		return h, 0
	case key < h.Key:
		h.Left, d = self.insert(h.Left, key)
	default:
		h.Right, d = self.insert(h.Right, key)
	}

	h.fixHeight()
	root = self.rebalance(h)

	return
}

// An Operation is a function that operates on a key. If done is returned true, the
// Operation is indicating that no further work needs to be done and so the Do function should
// traverse no further.
type Operation func(key int) (done bool)

// Do performs fn on all keys stored in the tree in ascending order. A boolean is returned
// indicating whether the Do traversal was interupted by an Operation returning true.
func (self *Tree) Do(fn Operation) bool {
	if self.Root == nil {
		return false
	}
	return self.Root.do(fn)
}

func (self *Node) do(fn Operation) (done bool) {
	if self.Left != nil {
		done = self.Left.do(fn)
		if done {
			return
		}
	}
	done = fn(self.Key)
	if done {
		return
	}
	if self.Right != nil {
		done = self.Right.do(fn)
	}
	return
}
