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

package avl

// Node holds one key of the tree. A nil *Node stands for an absent child
// or an empty tree.
type Node[K any] struct {
	key    K
	height int
	left   *Node[K]
	right  *Node[K]
}

func newNode[K any](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the root of the left subtree, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the root of the right subtree, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached height of the subtree rooted at n. It is 0 for
// a nil node and 1 for a leaf.
func (n *Node[K]) Height() int {
	return height(n)
}

// Balance returns the height of the left subtree minus the height of the
// right subtree.
func (n *Node[K]) Balance() int {
	return balanceFactor(n)
}

func (n *Node[K]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}
