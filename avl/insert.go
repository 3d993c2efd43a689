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

// Insert adds key to the tree rooted at root and returns the new root,
// which the caller must adopt. Inserting a key that is already present
// leaves the tree untouched.
func Insert[K cmp.Ordered](root *Node[K], key K) *Node[K] {
	root, _ = insert(root, key, cmp.Compare[K])
	return root
}

// insert returns the root of the subtree after the insertion and whether a
// node was created.
func insert[K any](node *Node[K], key K, compare func(K, K) int) (*Node[K], bool) {
	if node == nil {
		return newNode(key), true
	}

	var added bool
	switch c := compare(key, node.key); {
	case c < 0:
		node.left, added = insert(node.left, key, compare)
	case c > 0:
		node.right, added = insert(node.right, key, compare)
	default:
		return node, false
	}

	// nothing changed below, so nothing to fix on the way up
	if !added {
		return node, false
	}

	updateHeight(node)

	// The new key sits on the only path that can be out of balance, so
	// comparing against it tells single and double rotations apart.
	balance := balanceFactor(node)
	if balance > 1 {
		if compare(key, node.left.key) < 0 {
			return rotateRight(node), true
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node), true
	}
	if balance < -1 {
		if compare(key, node.right.key) > 0 {
			return rotateLeft(node), true
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node), true
	}

	return node, true
}
