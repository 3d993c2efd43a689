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

import "cmp"

// Delete removes key from the tree rooted at root and returns the new root,
// which the caller must adopt. Deleting a missing key is a no-op.
func Delete[K cmp.Ordered](root *Node[K], key K) *Node[K] {
	root, _ = remove(root, key, cmp.Compare[K])
	return root
}

// remove returns the root of the subtree after the deletion and whether a
// node was unlinked.
func remove[K any](node *Node[K], key K, compare func(K, K) int) (*Node[K], bool) {
	if node == nil {
		return nil, false // key not found
	}

	var removed bool
	switch c := compare(key, node.key); {
	case c < 0:
		node.left, removed = remove(node.left, key, compare)
	case c > 0:
		node.right, removed = remove(node.right, key, compare)
	default:
		// Zero or one child: the parent adopts whatever is left.
		if node.left == nil {
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}

		// Two children: take over the in-order successor's key, then unlink
		// the successor, which has no left child.
		successor := minNode(node.right)
		node.key = successor.key
		node.right, _ = remove(node.right, successor.key, compare)
		removed = true
	}

	if !removed {
		return node, false
	}

	updateHeight(node)
	return rebalance(node), true
}

// rebalance restores the AVL property at node after a deletion below it.
// The removed key is gone, so the children's own balance picks the case.
func rebalance[K any](node *Node[K]) *Node[K] {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}

func minNode[K any](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func maxNode[K any](node *Node[K]) *Node[K] {
	for node.right != nil {
		node = node.right
	}
	return node
}
