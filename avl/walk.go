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

// Walk calls fn for every key under root in ascending order until fn
// returns false.
func Walk[K any](root *Node[K], fn func(K) bool) {
	walk(root, fn)
}

func walk[K any](node *Node[K], fn func(K) bool) bool {
	return node == nil || (walk(node.left, fn) && fn(node.key) && walk(node.right, fn))
}

// Keys returns the keys under root in ascending order.
func Keys[K any](root *Node[K]) []K {
	var keys []K
	walk(root, func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Count returns the number of nodes under root.
func Count[K any](root *Node[K]) int {
	if root == nil {
		return 0
	}
	return 1 + Count(root.left) + Count(root.right)
}

// Levels returns the number of nodes found at each depth under root,
// starting with the root at index 0.
func Levels[K any](root *Node[K]) []int {
	levels := make([]int, height(root))
	var visit func(node *Node[K], depth int)
	visit = func(node *Node[K], depth int) {
		if node == nil {
			return
		}
		// a stale height cache must not make us index past the end
		if depth >= len(levels) {
			levels = append(levels, 0)
		}
		levels[depth]++
		visit(node.left, depth+1)
		visit(node.right, depth+1)
	}
	visit(root, 0)
	return levels
}

// Walk calls fn for every key in ascending order until fn returns false.
func (tree *Tree[K]) Walk(fn func(K) bool) {
	walk(tree.root, fn)
}

// Keys returns all keys in ascending order.
func (tree *Tree[K]) Keys() []K {
	return Keys(tree.root)
}

// Levels returns the number of nodes at each depth.
func (tree *Tree[K]) Levels() []int {
	return Levels(tree.root)
}
