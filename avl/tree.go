// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avl implements an AVL tree: a binary search tree that keeps the
// heights of the two subtrees of every node within one of each other, which
// bounds the height of the tree to about 1.44*log2(n+2).
//
// The package-level Insert and Delete work on bare root nodes and return
// the root the caller has to adopt. Tree wraps a root together with a
// comparison function and a node count.
//
// Note: a tree is not safe for concurrent use. Access it from a single
// goroutine or guard it with a mutex.
package avl

import "cmp"

// Tree holds the root node of an AVL tree ordered by a comparison function.
type Tree[K any] struct {
	compare func(K, K) int
	root    *Node[K]
	count   int
}

// New creates an empty tree for naturally ordered keys.
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc(cmp.Compare[K])
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when its first argument is
// less than, equal to or greater than the second.
func NewFunc[K any](compare func(K, K) int) *Tree[K] {
	return &Tree[K]{compare: compare}
}

// Insert adds key to the tree. It reports whether the key was new; a
// duplicate leaves the tree as it was.
//
// Complexity: O(log n)
func (tree *Tree[K]) Insert(key K) bool {
	var added bool
	tree.root, added = insert(tree.root, key, tree.compare)
	if added {
		tree.count++
	}
	return added
}

// Delete removes key from the tree and reports whether it was present.
//
// Complexity: O(log n)
func (tree *Tree[K]) Delete(key K) bool {
	var removed bool
	tree.root, removed = remove(tree.root, key, tree.compare)
	if removed {
		tree.count--
	}
	return removed
}

// Contains reports whether key is stored in the tree.
//
// Complexity: O(log n)
func (tree *Tree[K]) Contains(key K) bool {
	node := tree.root
	for node != nil {
		switch c := tree.compare(key, node.key); {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key in the tree.
func (tree *Tree[K]) Min() (key K, found bool) {
	if tree.root == nil {
		return key, false
	}
	return minNode(tree.root).key, true
}

// Max returns the largest key in the tree.
func (tree *Tree[K]) Max() (key K, found bool) {
	if tree.root == nil {
		return key, false
	}
	return maxNode(tree.root).key, true
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.count
}

// Height returns the height of the tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Root returns the root node, nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Clear drops every key.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Check verifies the ordering, balance and height invariants of the tree
// and that the node count matches.
func (tree *Tree[K]) Check() error {
	if err := Check(tree.root, tree.compare); err != nil {
		return err
	}
	if n := Count(tree.root); n != tree.count {
		return &ViolationError{Err: ErrCount, Detail: countDetail(tree.count, n)}
	}
	return nil
}
