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
	"errors"
	"fmt"
)

var (
	// ErrOrder indicates a key on the wrong side of one of its ancestors.
	ErrOrder = errors.New("binary search order violated")

	// ErrDuplicate indicates a key stored more than once.
	ErrDuplicate = errors.New("duplicate key")

	// ErrBalance indicates subtree heights differing by more than one.
	ErrBalance = errors.New("node out of balance")

	// ErrHeight indicates a cached height that does not match the subtree.
	ErrHeight = errors.New("stale height")

	// ErrCount indicates a node count that does not match the tree.
	ErrCount = errors.New("node count mismatch")
)

// ViolationError describes the first broken invariant found by Check.
type ViolationError struct {
	Err    error
	Key    any
	Detail string
}

func (e *ViolationError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("%v: %s", e.Err, e.Detail)
	}
	return fmt.Sprintf("%v at key %v: %s", e.Err, e.Key, e.Detail)
}

func (e *ViolationError) Unwrap() error {
	return e.Err
}

// Check walks the tree under root and returns a *ViolationError for the
// first node breaking the search order, the balance or the height cache.
// Heights are recomputed from scratch so a stale cache cannot hide an
// imbalance.
func Check[K any](root *Node[K], compare func(K, K) int) error {
	_, err := check(root, nil, nil, compare)
	return err
}

// check returns the real height of the subtree. Keys must lie strictly
// between lo and hi when those are set.
func check[K any](node *Node[K], lo, hi *K, compare func(K, K) int) (int, error) {
	if node == nil {
		return 0, nil
	}

	if lo != nil {
		if err := bound(node.key, *lo, compare, +1); err != nil {
			return 0, err
		}
	}
	if hi != nil {
		if err := bound(node.key, *hi, compare, -1); err != nil {
			return 0, err
		}
	}

	lh, err := check(node.left, lo, &node.key, compare)
	if err != nil {
		return 0, err
	}
	rh, err := check(node.right, &node.key, hi, compare)
	if err != nil {
		return 0, err
	}

	actual := max(lh, rh) + 1
	if node.height != actual {
		return 0, &ViolationError{
			Err:    ErrHeight,
			Key:    node.key,
			Detail: fmt.Sprintf("cached %d, actual %d", node.height, actual),
		}
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, &ViolationError{
			Err:    ErrBalance,
			Key:    node.key,
			Detail: fmt.Sprintf("left height %d, right height %d", lh, rh),
		}
	}
	return actual, nil
}

// bound checks that key compares to limit with the wanted sign.
func bound[K any](key, limit K, compare func(K, K) int, want int) error {
	c := compare(key, limit)
	switch {
	case c == 0:
		return &ViolationError{Err: ErrDuplicate, Key: key, Detail: "also stored in an ancestor"}
	case (c > 0) != (want > 0):
		side := "left"
		if want > 0 {
			side = "right"
		}
		return &ViolationError{
			Err:    ErrOrder,
			Key:    key,
			Detail: fmt.Sprintf("found in the %s subtree of %v", side, limit),
		}
	}
	return nil
}

func countDetail(recorded, actual int) string {
	return fmt.Sprintf("recorded %d, found %d", recorded, actual)
}
