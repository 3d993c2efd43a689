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
	"cmp"
	"errors"
	"testing"
)

func TestCheckDetectsViolations(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func() *Node[int]
		want    error
	}{
		{
			name: "valid tree",
			corrupt: func() *Node[int] {
				return build(20, 10, 30)
			},
		},
		{
			name: "key on the wrong side",
			corrupt: func() *Node[int] {
				root := build(20, 10, 30)
				root.left.key = 25
				return root
			},
			want: ErrOrder,
		},
		{
			name: "duplicate key",
			corrupt: func() *Node[int] {
				root := build(20, 10, 30)
				root.right.key = 20
				return root
			},
			want: ErrDuplicate,
		},
		{
			name: "stale height",
			corrupt: func() *Node[int] {
				root := build(20, 10, 30)
				root.height = 3
				return root
			},
			want: ErrHeight,
		},
		{
			name: "unbalanced chain",
			corrupt: func() *Node[int] {
				root := &Node[int]{key: 3, height: 3}
				root.left = &Node[int]{key: 2, height: 2}
				root.left.left = newNode(1)
				return root
			},
			want: ErrBalance,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(tc.corrupt(), cmp.Compare[int])
			if tc.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			var violation *ViolationError
			if !errors.As(err, &violation) || violation.Key == nil {
				t.Errorf("error %v does not carry the offending key", err)
			}
		})
	}
}

func TestTreeCheckCount(t *testing.T) {
	tree := New[int]()
	tree.Insert(1)
	tree.Insert(2)
	tree.count = 5

	if err := tree.Check(); !errors.Is(err, ErrCount) {
		t.Errorf("got %v, want %v", err, ErrCount)
	}
}

func build(keys ...int) *Node[int] {
	var root *Node[int]
	for _, key := range keys {
		root = Insert(root, key)
	}
	return root
}
