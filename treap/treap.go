// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treap implements an insertion-only randomized treap over integer
// keys that counts the rotations it performs.
//
// Keys are held in binary search tree order while the randomly assigned
// node priorities are held in max-heap order. Priorities are drawn from a
// Source owned by the tree, so a seeded Source gives reproducible trees.
package treap

import (
	"math/rand"
	"time"
)

// A Source is a source of node priorities. A math/rand.Source satisfies Source.
type Source interface {
	Int63() int64
}

// A Node represents a node in the treap.
type Node struct {
	Key         int
	Priority    int64
	Left, Right *Node
}

// A Tree manages the root node of a treap. Public methods are exposed through this type.
type Tree struct {
	Root  *Node // Root node of the tree.
	Count int   // Number of keys stored.

	src       Source
	rotations int
}

// New returns an empty Tree drawing priorities from src. If src is nil
// a time-seeded source is used.
func New(src Source) *Tree {
	return &Tree{src: src}
}

func (self *Tree) priority() int64 {
	if self.src == nil {
		self.src = rand.NewSource(time.Now().UnixNano())
	}
	return self.src.Int63()
}

// (a,c)b -rotL-> ((a,)b,)c
func (self *Tree) rotateLeft(h *Node) (root *Node) {
	// Assumes: h has a right child.
	self.rotations++
	root = h.Right
	h.Right = root.Left
	root.Left = h
	return
}

// (a,c)b -rotR-> (,(,c)b)a
func (self *Tree) rotateRight(h *Node) (root *Node) {
	// Assumes: h has a left child.
	self.rotations++
	root = h.Left
	h.Left = root.Right
	root.Right = h
	return
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

// Insert inserts key into the Tree. A new node is given the next priority
// from the Tree's Source. Inserting a key that is already present leaves the
// Tree unaltered and consumes no priority.
func (self *Tree) Insert(key int) {
	var d int
	self.Root, d = self.insert(self.Root, key)
	self.Count += d
}

func (self *Tree) insert(h *Node, key int) (root *Node, d int) {
	if h == nil {
		return &Node{Key: key, Priority: self.priority()}, 1
	}

	switch {
	case key == h.Key:
		return h, 0
	case key < h.Key:
		h.Left, d = self.insert(h.Left, key)
		if h.Left.Priority > h.Priority {
			h = self.rotateRight(h)
		}
	default:
		h.Right, d = self.insert(h.Right, key)
		if h.Right.Priority > h.Priority {
			h = self.rotateLeft(h)
		}
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
