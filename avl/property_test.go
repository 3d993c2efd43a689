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

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"
	"testing/quick"
)

// op is one step of a random operation sequence.
type op struct {
	Delete bool
	Key    int8
}

func TestTreeProperties(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T, []op) bool
	}{
		{
			scenario: "every operation leaves the tree ordered, balanced and with exact heights",
			function: testInvariantsHold,
		},
		{
			scenario: "a key is found if and only if it was inserted and not deleted since",
			function: testMembership,
		},
		{
			scenario: "the length changes by one on every effective insert or delete",
			function: testSizeAccounting,
		},
		{
			scenario: "inserting a key twice produces the same tree as inserting it once",
			function: testInsertIdempotent,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			f := func(ops []op) bool { return test.function(t, ops) }
			if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
				t.Error(err)
			}
		})
	}
}

func testInvariantsHold(t *testing.T, ops []op) bool {
	tree := New[int8]()
	for i, o := range ops {
		if o.Delete {
			tree.Delete(o.Key)
		} else {
			tree.Insert(o.Key)
		}
		if err := tree.Check(); err != nil {
			t.Errorf("after operation %d (%+v): %v", i, o, err)
			return false
		}
	}
	return true
}

func testMembership(t *testing.T, ops []op) bool {
	tree := New[int8]()
	model := make(map[int8]bool)
	for _, o := range ops {
		if o.Delete {
			tree.Delete(o.Key)
			delete(model, o.Key)
		} else {
			tree.Insert(o.Key)
			model[o.Key] = true
		}
	}
	for key := -128; key < 128; key++ {
		if tree.Contains(int8(key)) != model[int8(key)] {
			t.Errorf("key %d: contains=%t, expected=%t", key, tree.Contains(int8(key)), model[int8(key)])
			return false
		}
	}
	want := make([]int8, 0, len(model))
	for key := range model {
		want = append(want, key)
	}
	slices.Sort(want)
	if got := tree.Keys(); !slices.Equal(got, want) {
		t.Errorf("keys: got %v, want %v", got, want)
		return false
	}
	return true
}

func testSizeAccounting(t *testing.T, ops []op) bool {
	tree := New[int8]()
	for _, o := range ops {
		before := tree.Len()
		present := tree.Contains(o.Key)
		want := before
		if o.Delete {
			if tree.Delete(o.Key) != present {
				t.Errorf("delete(%d) reported the wrong result", o.Key)
				return false
			}
			if present {
				want--
			}
		} else {
			if tree.Insert(o.Key) == present {
				t.Errorf("insert(%d) reported the wrong result", o.Key)
				return false
			}
			if !present {
				want++
			}
		}
		if tree.Len() != want || Count(tree.Root()) != want {
			t.Errorf("length: got %d (%d nodes), want %d", tree.Len(), Count(tree.Root()), want)
			return false
		}
	}
	return true
}

func testInsertIdempotent(t *testing.T, ops []op) bool {
	once := New[int8]()
	twice := New[int8]()
	for _, o := range ops {
		once.Insert(o.Key)
		twice.Insert(o.Key)
		twice.Insert(o.Key)
	}
	if a, b := shape(once.Root()), shape(twice.Root()); a != b {
		t.Errorf("shapes differ:\n%s\n%s", a, b)
		return false
	}
	return true
}

func TestHeightBound(t *testing.T) {
	prng := rand.New(rand.NewSource(1))
	tree := New[int]()
	for range 1 << 14 {
		tree.Insert(prng.Int())
	}
	// 1.44*log2(n+2) for n = 16384 is just above 20
	if h := tree.Height(); h > 21 {
		t.Errorf("height %d exceeds the AVL bound for %d keys", h, tree.Len())
	}

	sorted := New[int]()
	for key := range 1 << 10 {
		sorted.Insert(key)
	}
	if h := sorted.Height(); h != 11 {
		t.Errorf("sequential inserts: height %d, want 11", h)
	}
	for key := range 1 << 9 {
		sorted.Delete(key)
	}
	if err := sorted.Check(); err != nil {
		t.Error(err)
	}
}

func shape(root *Node[int8]) string {
	if root == nil {
		return "."
	}
	return "(" + shape(root.left) + " " + strconv.Itoa(int(root.key)) + " " + shape(root.right) + ")"
}
