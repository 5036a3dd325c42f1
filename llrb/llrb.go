// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package llrb implements an insertion-only Left-Leaning Red Black tree over
// integer keys that counts the rotations it performs, as described in
//  http://www.cs.princeton.edu/~rs/talks/LLRB/LLRB.pdf
//  http://www.cs.princeton.edu/~rs/talks/LLRB/Java/RedBlackBST.java
//
// The tree operates in bottom-up 2-3 mode: 4-nodes are split by a color
// flip on the way back up the insertion path.
package llrb

// A Color represents the color of a Node. The color of a node is the color
// of the link from its parent.
type Color bool

// String returns a string representation of a Color.
func (c Color) String() string {
	if c {
		return "Black"
	}
	return "Red"
}

const (
	// Red as false give us the defined behaviour that new nodes are red. Although this
	// is incorrect for the root node, that is resolved on the first insertion.
	Red   Color = false
	Black Color = true
)

// A Node represents a node in the LLRB tree.
type Node struct {
	Key         int
	Left, Right *Node
	Color       Color
}

// A Tree manages the root node of an LLRB tree. Public methods are exposed through this type.
type Tree struct {
	Root  *Node // Root node of the tree.
	Count int   // Number of keys stored.

	rotations int
	flips     int
}

// Helper methods

// color returns the effect color of a Node. A nil node returns black.
func (self *Node) color() Color {
	if self == nil {
		return Black
	}
	return self.Color
}

// (a,c)b -rotL-> ((a,)b,)c
func (self *Tree) rotateLeft(h *Node) (root *Node) {
	// Assumes: h has a right child.
	self.rotations++
	root = h.Right
	h.Right = root.Left
	root.Left = h
	root.Color = h.Color
	h.Color = Red
	return
}

// (a,c)b -rotR-> (,(,c)b)a
func (self *Tree) rotateRight(h *Node) (root *Node) {
	// Assumes: h has a left child.
	self.rotations++
	root = h.Left
	h.Left = root.Right
	root.Right = h
	root.Color = h.Color
	h.Color = Red
	return
}

// (aR,cR)bB -flipC-> (aB,cB)bR
func (self *Tree) flipColors(h *Node) {
	self.flips++
	h.Color = Red
	if h.Left != nil {
		h.Left.Color = Black
	}
	if h.Right != nil {
		h.Right.Color = Black
	}
}

// Len returns the number of keys stored in the Tree.
func (self *Tree) Len() int {
	return self.Count
}

// Rotations returns the number of rotations performed by the Tree since
// its creation.
func (self *Tree) Rotations() int {
	return self.rotations
}

// Flips returns the number of color flips performed by the Tree since
// its creation.
func (self *Tree) Flips() int {
	return self.flips
}

// Insert inserts key into the Tree. Inserting a key that is already present
// leaves the Tree unaltered.
func (self *Tree) Insert(key int) {
	var d int
	self.Root, d = self.insert(self.Root, key)
	self.Count += d
	self.Root.Color = Black
}

func (self *Tree) insert(h *Node, key int) (root *Node, d int) {
	if h == nil {
		return &Node{Key: key}, 1
	}

	switch {
	case key == h.Key:
		return h, 0
	case key < h.Key:
		h.Left, d = self.insert(h.Left, key)
	default:
		h.Right, d = self.insert(h.Right, key)
	}

	if h.Right.color() == Red && h.Left.color() == Black {
		h = self.rotateLeft(h)
	}
	if h.Left.color() == Red && h.Left.Left.color() == Red {
		h = self.rotateRight(h)
	}
	if h.Left.color() == Red && h.Right.color() == Red {
		self.flipColors(h)
	}

	root = h

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
