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

func height[K any](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight[K any](node *Node[K]) {
	node.height = max(height(node.left), height(node.right)) + 1
}

// positive is left-heavy, negative is right-heavy
func balanceFactor[K any](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

//	    y             x
//	   / \           / \
//	  x   C   =>    A   y
//	 / \               / \
//	A   B             B   C
func rotateRight[K any](y *Node[K]) *Node[K] {
	if y == nil || y.left == nil {
		panic("avl: right rotation requires a left child")
	}

	x := y.left
	y.left = x.right
	x.right = y

	// y is now below x, so it must be recomputed first
	updateHeight(y)
	updateHeight(x)

	return x
}

//	  x                 y
//	 / \               / \
//	A   y     =>      x   C
//	   / \           / \
//	  B   C         A   B
func rotateLeft[K any](x *Node[K]) *Node[K] {
	if x == nil || x.right == nil {
		panic("avl: left rotation requires a right child")
	}

	y := x.right
	x.right = y.left
	y.left = x

	updateHeight(x)
	updateHeight(y)

	return y
}
