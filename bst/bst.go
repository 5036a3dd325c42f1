// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bst implements an unbalanced binary search tree over integer keys.
//
// The tree performs no rebalancing and is intended as a baseline: sorted
// input degrades it to a linked list. Insertion descends iteratively, so
// degenerate trees do not grow the call stack.
package bst

// A Node represents a node in the tree.
type Node struct {
	Key         int
	Left, Right *Node
}

// A Tree manages the root node of a binary search tree. Public methods are exposed through this type.
type Tree struct {
	Root  *Node // Root node of the tree.
	Count int   // Number of keys stored.
}

// Len returns the number of keys stored in the Tree.
func (self *Tree) Len() int {
	return self.Count
}

// Rotations returns the number of rotations performed by the Tree. It is always zero.
func (self *Tree) Rotations() int {
	return 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty Tree has height 0.
func (self *Tree) Height() int {
	type frame struct {
		n *Node
		d int
	}
	var h int
	stack := []frame(nil)
	if self.Root != nil {
		stack = append(stack, frame{self.Root, 1})
	}
	for len(stack) != 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.d > h {
			h = f.d
		}
		if f.n.Left != nil {
			stack = append(stack, frame{f.n.Left, f.d + 1})
		}
		if f.n.Right != nil {
			stack = append(stack, frame{f.n.Right, f.d + 1})
		}
	}
	return h
}

// Insert inserts key into the Tree. Inserting a key that is already present
// leaves the Tree unaltered.
func (self *Tree) Insert(key int) {
	if self.Root == nil {
		self.Root = &Node{Key: key}
		self.Count++
		return
	}

	n := self.Root
	for {
		switch {
		case key == n.Key:
			return
		case key < n.Key:
			if n.Left == nil {
				n.Left = &Node{Key: key}
				self.Count++
				return
			}
			n = n.Left
		default:
			if n.Right == nil {
				n.Right = &Node{Key: key}
				self.Count++
				return
			}
			n = n.Right
		}
	}
}

// An Operation is a function that operates on a key. If done is returned true, the
// Operation is indicating that no further work needs to be done and so the Do function should
// traverse no further.
type Operation func(key int) (done bool)

// Do performs fn on all keys stored in the tree in ascending order. A boolean is returned
// indicating whether the Do traversal was interupted by an Operation returning true.
// The traversal is iterative so that it is safe on degenerate trees.
func (self *Tree) Do(fn Operation) bool {
	var stack []*Node
	n := self.Root
	for n != nil || len(stack) != 0 {
		for ; n != nil; n = n.Left {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fn(n.Key) {
			return true
		}
		n = n.Right
	}
	return false
}
